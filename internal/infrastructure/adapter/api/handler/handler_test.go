package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mensunw/people-bets/internal/domain/entity"
	domainerr "github.com/mensunw/people-bets/internal/domain/error"
	coreport "github.com/mensunw/people-bets/internal/domain/port/core"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/api/middleware"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/logger"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/metrics"
	"github.com/stretchr/testify/require"
)

var (
	callerID = "6f1c2a9e-4b8d-4f3a-9c1e-2d7b5a8e0f11"
	caller   = entity.Identity{UserID: callerID, Email: "caller@example.com"}
	testNow  = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubVerifier accepts the token "good" as caller
type stubVerifier struct{}

func (stubVerifier) Verify(token string) (entity.Identity, error) {
	if token == "good" {
		return caller, nil
	}
	return entity.Identity{}, domainerr.ErrUnauthenticated
}

// newRouter returns an engine whose routes require the "good" bearer token
func newRouter(register func(r gin.IRoutes)) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler(testLogger))
	authed := r.Group("/", middleware.Authenticate(stubVerifier{}, testLogger))
	register(authed)
	return r
}

var (
	testLogger  coreport.Logger          = logger.NewNoopLogger()
	testMetrics coreport.MetricsRecorder = metrics.NewNoopRecorder()
)

func do(t *testing.T, r http.Handler, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Authorization", "Bearer good")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func newID() string { return uuid.NewString() }

var errBoom = errors.New("boom")
