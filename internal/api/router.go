package api

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/rnwgym/gym-booking-backend/internal/auth"
	"github.com/rnwgym/gym-booking-backend/internal/bodyweight"
	bodyweightHttp "github.com/rnwgym/gym-booking-backend/internal/bodyweight/http"
	"github.com/rnwgym/gym-booking-backend/internal/catalog"
	catalogHttp "github.com/rnwgym/gym-booking-backend/internal/catalog/http"
	"github.com/rnwgym/gym-booking-backend/internal/history"
	historyHttp "github.com/rnwgym/gym-booking-backend/internal/history/http"
	"github.com/rnwgym/gym-booking-backend/internal/mw"
	"github.com/rnwgym/gym-booking-backend/internal/occupancy"
	occupancyHttp "github.com/rnwgym/gym-booking-backend/internal/occupancy/http"
	"github.com/rnwgym/gym-booking-backend/internal/pkg/metrics"
	"github.com/rnwgym/gym-booking-backend/internal/reservation"
	reservationHttp "github.com/rnwgym/gym-booking-backend/internal/reservation/http"
	"github.com/rnwgym/gym-booking-backend/internal/suggest"
	suggestHttp "github.com/rnwgym/gym-booking-backend/internal/suggest/http"
)

// Config holds the services and settings the router needs.
type Config struct {
	IsProduction       bool
	ProdOrigins        string
	CatalogService     catalog.Service
	ReservationService reservation.Service
	BodyweightService  bodyweight.Service
	HistoryService     history.Service
	OccupancyService   occupancy.Service
	SuggestService     suggest.Service
	CatalogCacheTTL    time.Duration
	RateLimitPerSec    float64
	RateLimitBurst     int
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, rate limiting)
// and registering routes for various modules.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", auth.UserIDHeader}
	r.Use(cors.New(corsConfig))

	r.Use(mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst))

	metrics.Register()
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// authMiddleware: Validates that the request carries a member identity.
	authMiddleware := auth.RequireUser()
	// cacheMiddleware: Serves repeated reads of reference data from memory.
	catalogCache := cache.New(cfg.CatalogCacheTTL, 2*cfg.CatalogCacheTTL)
	cacheMiddleware := mw.Cache(catalogCache, cfg.CatalogCacheTTL)

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	catalogHandler := catalogHttp.NewHandler(cfg.CatalogService)
	reservationHandler := reservationHttp.NewHandler(cfg.ReservationService)
	bodyweightHandler := bodyweightHttp.NewHandler(cfg.BodyweightService)
	historyHandler := historyHttp.NewHandler(cfg.HistoryService)
	occupancyHandler := occupancyHttp.NewHandler(cfg.OccupancyService)
	suggestHandler := suggestHttp.NewHandler(cfg.SuggestService)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		catalogHttp.RegisterRoutes(v1, catalogHandler, cacheMiddleware, authMiddleware)
		reservationHttp.RegisterRoutes(v1, reservationHandler, authMiddleware)
		bodyweightHttp.RegisterRoutes(v1, bodyweightHandler, authMiddleware)
		historyHttp.RegisterRoutes(v1, historyHandler, authMiddleware)
		occupancyHttp.RegisterRoutes(v1, occupancyHandler, authMiddleware)
		suggestHttp.RegisterRoutes(v1, suggestHandler)
	}

	return r
}
