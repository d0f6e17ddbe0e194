package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mensunw/people-bets/internal/domain/entity"
	"github.com/mensunw/people-bets/internal/domain/usecase/usecasetest"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/api/dto"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/api/middleware"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/auth"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/cache"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/logger"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/messaging"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const adminKey = "rebuild-key"

type harness struct {
	t      *testing.T
	clock  *usecasetest.Clock
	router *gin.Engine
	tokens *auth.TokenService
}

func newHarness(t *testing.T) *harness {
	gin.SetMode(gin.TestMode)

	clock := usecasetest.NewClock(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))
	tp := clock.TimeProvider(t)
	log := logger.NewNoopLogger()

	store := usecasetest.NewStore(t, clock.Now())
	deps := Dependencies{
		UnitOfWork:   store,
		Cache:        cache.NewNoopCache(),
		StatsTTL:     10 * time.Minute,
		Publisher:    messaging.NewLogPublisher(log),
		Metrics:      metrics.NewNoopRecorder(),
		TimeProvider: tp,
		Logger:       log,
	}

	tokens, err := auth.NewTokenService("test-secret", "people-bets", 30*24*time.Hour, tp)
	require.NoError(t, err)

	router := NewRouter(NewUseCases(deps), deps, RouterOptions{
		Verifier: tokens,
		AdminKey: adminKey,
		Database: store,
	})
	return &harness{t: t, clock: clock, router: router, tokens: tokens}
}

func (h *harness) token(userID string) string {
	token, _, err := h.tokens.Sign(entity.Identity{UserID: userID, Email: userID[:8] + "@example.com"})
	require.NoError(h.t, err)
	return token
}

func (h *harness) do(method, path, userID string, body any, headers ...string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(h.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+h.token(userID))
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestEndToEnd_StakeResolveAndPayout(t *testing.T) {
	h := newHarness(t)
	alice, bob, carol := uuid.NewString(), uuid.NewString(), uuid.NewString()

	for _, id := range []string{alice, bob, carol} {
		w := h.do(http.MethodPost, "/api/v1/profile", id, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, int64(entity.InitialBalance), decode[dto.ProfileResponse](t, w).Balance)
	}

	w := h.do(http.MethodPost, "/api/v1/propositions", alice, map[string]any{
		"title":       "Rain on Friday",
		"description": "Millimetres at the airport station",
		"target":      4.5,
		"groupId":     entity.GlobalGroupID,
		"windowEnd":   h.clock.Now().Add(time.Hour).Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	prop := decode[dto.PropositionResponse](t, w)
	assert.Equal(t, "open", prop.Status)

	stakes := []struct {
		user   string
		side   string
		amount int
	}{
		{alice, "over", 300},
		{bob, "under", 150},
		{carol, "under", 150},
	}
	for _, s := range stakes {
		w := h.do(http.MethodPost, "/api/v1/propositions/"+prop.ID+"/stakes", s.user,
			map[string]any{"side": s.side, "amount": s.amount})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w = h.do(http.MethodPost, "/api/v1/propositions/"+prop.ID+"/stakes", bob,
		map[string]any{"side": "over", "amount": 10})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = h.do(http.MethodGet, "/api/v1/propositions/"+prop.ID, bob, nil)
	require.Equal(t, http.StatusOK, w.Code)
	view := decode[dto.PropositionResponse](t, w)
	assert.Equal(t, int64(600), view.Totals.Pot)
	assert.Equal(t, 50.0, view.Odds.OverPct)
	require.NotNil(t, view.MyStake)
	assert.Equal(t, int64(300), view.PotentialWinnings)

	w = h.do(http.MethodPost, "/api/v1/propositions/"+prop.ID+"/resolve", alice, map[string]any{"winningSide": "under"})
	assert.Equal(t, http.StatusConflict, w.Code, "window still open")

	h.clock.Advance(2 * time.Hour)

	w = h.do(http.MethodPost, "/api/v1/propositions/"+prop.ID+"/stakes", carol,
		map[string]any{"side": "under", "amount": 10})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = h.do(http.MethodPost, "/api/v1/propositions/"+prop.ID+"/resolve", bob, map[string]any{"winningSide": "under"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = h.do(http.MethodPost, "/api/v1/propositions/"+prop.ID+"/resolve", alice, map[string]any{"winningSide": "under"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resolved := decode[dto.ResolveResponse](t, w)
	require.NotNil(t, resolved.Settlement)
	assert.Equal(t, int64(600), resolved.Settlement.PaidOut)
	assert.Zero(t, resolved.Settlement.Forfeited)

	w = h.do(http.MethodPost, "/api/v1/propositions/"+prop.ID+"/resolve", alice, map[string]any{"winningSide": "over"})
	assert.Equal(t, http.StatusConflict, w.Code)

	want := map[string]int64{alice: 700, bob: 1150, carol: 1150}
	for id, balance := range want {
		w := h.do(http.MethodGet, "/api/v1/profile", id, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, balance, decode[dto.ProfileResponse](t, w).Balance, id)
	}

	w = h.do(http.MethodPost, "/api/v1/leaderboard/rebuild", alice, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = h.do(http.MethodPost, "/api/v1/leaderboard/rebuild", alice, nil, middleware.AdminKeyHeader, adminKey)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 3, decode[dto.RebuildResponse](t, w).Updated)

	w = h.do(http.MethodGet, "/api/v1/leaderboard?limit=2", carol, nil)
	require.Equal(t, http.StatusOK, w.Code)
	board := decode[dto.LeaderboardResponse](t, w)
	require.Len(t, board.Entries, 2)
	assert.Equal(t, 1, board.Entries[0].Rank)
	assert.Equal(t, int64(150), board.Entries[0].NetProfit)
	assert.NotEqual(t, alice, board.Entries[1].UserID)
}

func TestEndToEnd_DailyGrant(t *testing.T) {
	h := newHarness(t)
	user := uuid.NewString()

	w := h.do(http.MethodGet, "/api/v1/daily-grant", user, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[dto.GrantStatusResponse](t, w).CanClaim)

	w = h.do(http.MethodPost, "/api/v1/daily-grant/claim", user, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	claim := decode[dto.ClaimResponse](t, w)
	assert.True(t, claim.Success)
	assert.Equal(t, int64(entity.InitialBalance+entity.DailyGrantAmount), claim.Balance)

	w = h.do(http.MethodPost, "/api/v1/daily-grant/claim", user, nil)
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	again := decode[dto.ClaimResponse](t, w)
	assert.False(t, again.Success)
	require.NotNil(t, again.NextClaimAt)
	assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), again.NextClaimAt.UTC())

	h.clock.Advance(12 * time.Hour)
	w = h.do(http.MethodPost, "/api/v1/daily-grant/claim", user, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEndToEnd_StatsConditionalGet(t *testing.T) {
	h := newHarness(t)
	user := uuid.NewString()
	path := "/api/v1/users/" + user + "/stats"

	w := h.do(http.MethodGet, path, user, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	etag := w.Header().Get("ETag")
	require.NotEmpty(t, etag)

	w = h.do(http.MethodGet, path, user, nil, "If-None-Match", etag)
	assert.Equal(t, http.StatusNotModified, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestEndToEnd_Unauthenticated(t *testing.T) {
	h := newHarness(t)

	w := h.do(http.MethodGet, "/api/v1/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = h.do(http.MethodGet, "/api/v1/profile", "", nil, "Authorization", "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = h.do(http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
