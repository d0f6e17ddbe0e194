package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mensunw/people-bets/internal/domain/usecase/usecasetest"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/api/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthHandler_Check(t *testing.T) {
	tp := usecasetest.NewClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)).TimeProvider(t)

	tests := []struct {
		name     string
		ping     pingFunc
		status   int
		database string
	}{
		{"healthy", func(context.Context) error { return nil }, http.StatusOK, "up"},
		{"database down", func(context.Context) error { return errors.New("connection refused") }, http.StatusServiceUnavailable, "down"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/healthz", NewHealthHandler(tt.ping, tp, testLogger).Check)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			require.Equal(t, tt.status, rec.Code)
			resp := decode[dto.HealthResponse](t, rec)
			assert.Equal(t, tt.database, resp.Database)
		})
	}
}
