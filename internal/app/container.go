package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"github.com/rnwgym/gym-booking-backend/internal/api"
	"github.com/rnwgym/gym-booking-backend/internal/bodyweight"
	"github.com/rnwgym/gym-booking-backend/internal/catalog"
	"github.com/rnwgym/gym-booking-backend/internal/history"
	"github.com/rnwgym/gym-booking-backend/internal/integrations/gemini"
	"github.com/rnwgym/gym-booking-backend/internal/occupancy"
	"github.com/rnwgym/gym-booking-backend/internal/reservation"
	"github.com/rnwgym/gym-booking-backend/internal/suggest"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction    bool
	ProdOrigins     string
	DBPool          *pgxpool.Pool
	GeminiAPIKey    string
	GeminiTimeout   time.Duration
	OccupancyTTL    time.Duration
	CatalogCacheTTL time.Duration
	RateLimitPerSec float64
	RateLimitBurst  int
	Logger          zerolog.Logger
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router  *gin.Engine
	Catalog catalog.Service
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// Catalog Module
	catalogRepo := catalog.NewPgxRepository(cfg.DBPool)
	catalogService := catalog.NewService(catalogRepo)

	// Reservation Module
	reservationRepo := reservation.NewPgxRepository(cfg.DBPool)
	reservationService := reservation.NewService(reservationRepo, catalogService, cfg.Logger)

	// Bodyweight Module
	bodyweightRepo := bodyweight.NewPgxRepository(cfg.DBPool)
	bodyweightService := bodyweight.NewService(bodyweightRepo, reservationRepo, catalogService, cfg.Logger)

	// History Module
	historyRepo := history.NewPgxRepository(cfg.DBPool)
	historyService := history.NewService(historyRepo)

	// Occupancy Module
	occupancyCache := cache.New(cfg.OccupancyTTL, 2*cfg.OccupancyTTL)
	occupancyService := occupancy.NewService(reservationRepo, catalogService, occupancyCache, cfg.OccupancyTTL)

	// Suggestion Module
	aiClient := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiTimeout, cfg.Logger)
	suggestService := suggest.NewService(catalogService, reservationRepo, aiClient, cfg.Logger)

	// API Router Config
	routerParams := api.Config{
		IsProduction:       cfg.IsProduction,
		ProdOrigins:        cfg.ProdOrigins,
		CatalogService:     catalogService,
		ReservationService: reservationService,
		BodyweightService:  bodyweightService,
		HistoryService:     historyService,
		OccupancyService:   occupancyService,
		SuggestService:     suggestService,
		CatalogCacheTTL:    cfg.CatalogCacheTTL,
		RateLimitPerSec:    cfg.RateLimitPerSec,
		RateLimitBurst:     cfg.RateLimitBurst,
	}

	// Router
	router := api.NewRouter(routerParams)

	return &Container{
		Router:  router,
		Catalog: catalogService,
	}
}
