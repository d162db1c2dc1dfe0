package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRequestLoggerRecordsMetrics(t *testing.T) {
	metrics := NewMetrics()

	app := fiber.New()
	app.Use(RequestLogger(zap.NewNop(), metrics))
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})

	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	assert.Equal(t, int64(3), metrics.RequestTotal("/ping", http.MethodGet, http.StatusOK))
	assert.Equal(t, int64(0), metrics.RequestTotal("/ping", http.MethodGet, http.StatusNotFound))
}

func TestMetricsErrorCounter(t *testing.T) {
	metrics := NewMetrics()

	metrics.RecordError("/tickets", http.MethodPut, "VALIDATION_FAILED")
	metrics.RecordError("/tickets", http.MethodPut, "VALIDATION_FAILED")
	assert.Equal(t, int64(2), metrics.ErrorTotal("/tickets", http.MethodPut, "VALIDATION_FAILED"))
	assert.Equal(t, int64(0), metrics.ErrorTotal("/tickets", http.MethodPut, "NOT_FOUND"))

	// nil receiver is a no-op, matching the nil-safe recording methods
	var absent *Metrics
	absent.RecordRequest("/x", http.MethodGet, http.StatusOK, 0)
	assert.Equal(t, int64(0), absent.RequestTotal("/x", http.MethodGet, http.StatusOK))
}
