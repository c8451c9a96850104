package gemini

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c := NewClient("test-key", time.Second, zerolog.Nop())
	c.endpoint = server.URL
	return c
}

func TestGenerateText(t *testing.T) {
	ctx := context.Background()

	t.Run("returns trimmed candidate text", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"  keep moving  "}]}}]}`))
		})

		text, err := c.GenerateText(ctx, "say something")
		require.NoError(t, err)
		assert.Equal(t, "keep moving", text)
	})

	t.Run("disabled without api key", func(t *testing.T) {
		c := NewClient("", time.Second, zerolog.Nop())

		assert.False(t, c.Enabled())
		_, err := c.GenerateText(ctx, "prompt")
		assert.ErrorIs(t, err, ErrDisabled)
	})

	t.Run("non-2xx maps to unavailable", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		})

		_, err := c.GenerateText(ctx, "prompt")
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("empty candidates map to invalid response", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"candidates":[]}`))
		})

		_, err := c.GenerateText(ctx, "prompt")
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})

	t.Run("garbage body maps to invalid response", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		})

		_, err := c.GenerateText(ctx, "prompt")
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})
}
