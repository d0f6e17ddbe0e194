package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mensunw/people-bets/internal/domain/entity"
	domainerr "github.com/mensunw/people-bets/internal/domain/error"
	"github.com/mensunw/people-bets/internal/domain/port/usecase"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/api/dto"
	mockusecase "github.com/mensunw/people-bets/mocks/port/usecase"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func propositionRouter(t *testing.T) (*gin.Engine, *mockusecase.MockPropositionUseCase, *mockusecase.MockStakeUseCase) {
	props := mockusecase.NewMockPropositionUseCase(t)
	stakes := mockusecase.NewMockStakeUseCase(t)
	h := NewPropositionHandler(props, stakes, testLogger, testMetrics)
	r := newRouter(func(r gin.IRoutes) {
		r.POST("/propositions", h.Create)
		r.GET("/propositions/:propositionId", h.Get)
		r.POST("/propositions/:propositionId/stakes", h.PlaceStake)
		r.POST("/propositions/:propositionId/resolve", h.Resolve)
		r.GET("/groups/:groupId/propositions", h.ListByGroup)
	})
	return r, props, stakes
}

func sampleProposition(id, groupID string) *entity.Proposition {
	return &entity.Proposition{
		ID:          id,
		Title:       "Ann's 5k time",
		Description: "Minutes to finish the Sunday 5k",
		Target:      decimal.RequireFromString("24.5"),
		GroupID:     groupID,
		CreatorID:   callerID,
		WindowEnd:   testNow.Add(48 * time.Hour),
		Status:      entity.StatusOpen,
		CreatedAt:   testNow,
	}
}

func TestPropositionHandler_Create(t *testing.T) {
	r, props, _ := propositionRouter(t)
	gid := newID()
	windowEnd := testNow.Add(48 * time.Hour)

	props.EXPECT().CreateProposition(mock.Anything, callerID, usecase.CreatePropositionInput{
		Title:       "Ann's 5k time",
		Description: "Minutes to finish the Sunday 5k",
		Target:      "24.5",
		GroupID:     gid,
		WindowEnd:   windowEnd,
	}).Return(sampleProposition(newID(), gid), nil)

	rec := do(t, r, http.MethodPost, "/propositions", map[string]any{
		"title":       "Ann's 5k time",
		"description": "Minutes to finish the Sunday 5k",
		"target":      24.5,
		"groupId":     gid,
		"windowEnd":   windowEnd,
	})

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	resp := decode[dto.PropositionResponse](t, rec)
	assert.Equal(t, "24.5", resp.Target)
	assert.Equal(t, "open", resp.Status)
	assert.Equal(t, int64(0), resp.Totals.Pot)
}

func TestPropositionHandler_CreateRejectsBadInput(t *testing.T) {
	r, props, _ := propositionRouter(t)

	rec := do(t, r, http.MethodPost, "/propositions", `{"title":"x","description":"long enough text","target":"abc","groupId":"`+newID()+`","windowEnd":"2026-03-03T00:00:00Z"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, r, http.MethodPost, "/propositions", map[string]any{
		"title": "Ann's 5k time", "description": "Minutes to finish", "target": 10, "groupId": "nope", "windowEnd": testNow,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	gid := newID()
	props.EXPECT().CreateProposition(mock.Anything, callerID, mock.Anything).
		Return(nil, domainerr.NewAuthorizationError(callerID, "create proposition", "only the group leader can create propositions"))
	rec = do(t, r, http.MethodPost, "/propositions", map[string]any{
		"title": "Ann's 5k time", "description": "Minutes to finish", "target": "10", "groupId": gid, "windowEnd": testNow.Add(time.Hour),
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPropositionHandler_Get(t *testing.T) {
	r, props, _ := propositionRouter(t)
	pid := newID()
	prop := sampleProposition(pid, newID())
	stake := &entity.Stake{ID: newID(), PropositionID: pid, UserID: callerID, Side: entity.SideUnder, Amount: 150, CreatedAt: testNow}

	props.EXPECT().GetProposition(mock.Anything, pid, callerID).Return(&usecase.PropositionView{
		Proposition:       prop,
		Status:            entity.StatusOpen,
		Totals:            entity.PoolTotals{TotalOver: 300, TotalUnder: 300, Stakers: 3},
		Odds:              entity.Odds{OverPct: 50, UnderPct: 50},
		MyStake:           stake,
		PotentialWinnings: 300,
	}, nil)

	rec := do(t, r, http.MethodGet, "/propositions/"+pid, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[dto.PropositionResponse](t, rec)
	assert.Equal(t, int64(600), resp.Totals.Pot)
	require.NotNil(t, resp.MyStake)
	assert.Equal(t, "under", resp.MyStake.Side)
	assert.Equal(t, int64(300), resp.PotentialWinnings)
	assert.Nil(t, resp.WinningSide)
}

func TestPropositionHandler_ListByGroup(t *testing.T) {
	r, props, _ := propositionRouter(t)
	gid := newID()
	props.EXPECT().ListByGroup(mock.Anything, gid, callerID).Return([]*usecase.PropositionView{
		{Proposition: sampleProposition(newID(), gid), Status: entity.StatusClosed},
	}, nil)

	rec := do(t, r, http.MethodGet, "/groups/"+gid+"/propositions", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[dto.PropositionListResponse](t, rec)
	require.Len(t, resp.Propositions, 1)
	assert.Equal(t, "closed", resp.Propositions[0].Status)
}

func TestPropositionHandler_PlaceStake(t *testing.T) {
	pid := newID()

	t.Run("accepted", func(t *testing.T) {
		r, _, stakes := propositionRouter(t)
		stakes.EXPECT().PlaceStake(mock.Anything, pid, callerID, "over", "300").Return(&usecase.PlaceStakeResult{
			Stake:   &entity.Stake{ID: newID(), PropositionID: pid, UserID: callerID, Side: entity.SideOver, Amount: 300},
			Balance: 700,
			Totals:  entity.PoolTotals{TotalOver: 300, Stakers: 1},
			Odds:    entity.Odds{OverPct: 100},
		}, nil)

		rec := do(t, r, http.MethodPost, "/propositions/"+pid+"/stakes", `{"side":"over","amount":300}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		resp := decode[dto.PlaceStakeResponse](t, rec)
		assert.Equal(t, int64(700), resp.Balance)
		assert.Equal(t, int64(300), resp.Totals.TotalOver)
	})

	tests := []struct {
		name   string
		err    error
		status int
		code   int
	}{
		{"insufficient funds", domainerr.NewInsufficientFundsError(callerID, 5000, 1000), http.StatusUnprocessableEntity, domainerr.CodeInsufficientFunds},
		{"betting closed", domainerr.NewBettingClosedError(pid, "closed", "betting window has ended"), http.StatusConflict, domainerr.CodeBettingClosed},
		{"duplicate stake", domainerr.NewDuplicateStakeError(pid, callerID), http.StatusConflict, domainerr.CodeDuplicateStake},
		{"conflict", domainerr.ErrConflict, http.StatusConflict, domainerr.CodeConflict},
		{"validation", domainerr.NewValidationError("amount", "must be a positive whole number"), http.StatusBadRequest, domainerr.CodeValidation},
		{"unexpected", errBoom, http.StatusInternalServerError, domainerr.CodeInternalServer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, stakes := propositionRouter(t)
			stakes.EXPECT().PlaceStake(mock.Anything, pid, callerID, "under", "5000").Return(nil, tt.err)

			rec := do(t, r, http.MethodPost, "/propositions/"+pid+"/stakes", `{"side":"under","amount":"5000"}`)

			assert.Equal(t, tt.status, rec.Code)
			body := decode[dto.ErrorResponse](t, rec)
			assert.Equal(t, tt.code, body.Code)
			if tt.status == http.StatusInternalServerError {
				assert.Equal(t, "Internal server error", body.Message)
			}
		})
	}
}

func TestPropositionHandler_Resolve(t *testing.T) {
	pid := newID()

	t.Run("settles", func(t *testing.T) {
		r, props, _ := propositionRouter(t)
		props.EXPECT().Resolve(mock.Anything, pid, callerID, "under").Return(&usecase.ResolveResult{
			Success: true,
			Message: "Proposition resolved",
			Settlement: &entity.Settlement{
				PropositionID: pid,
				WinningSide:   entity.SideUnder,
				Totals:        entity.PoolTotals{TotalOver: 300, TotalUnder: 300, Stakers: 3},
				WinningTotal:  300,
				Payouts: []entity.Payout{
					{StakeID: newID(), UserID: newID(), Stake: 150, Amount: 300},
					{StakeID: newID(), UserID: newID(), Stake: 150, Amount: 300},
				},
				PaidOut: 600,
			},
		}, nil)

		rec := do(t, r, http.MethodPost, "/propositions/"+pid+"/resolve", dto.ResolveRequest{WinningSide: "under"})

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[dto.ResolveResponse](t, rec)
		assert.True(t, resp.Success)
		require.NotNil(t, resp.Settlement)
		assert.Len(t, resp.Settlement.Payouts, 2)
		assert.Equal(t, int64(600), resp.Settlement.PaidOut)
	})

	t.Run("not the creator", func(t *testing.T) {
		r, props, _ := propositionRouter(t)
		props.EXPECT().Resolve(mock.Anything, pid, callerID, "over").
			Return(nil, domainerr.NewAuthorizationError(callerID, "resolve proposition", "only the creator can resolve"))

		rec := do(t, r, http.MethodPost, "/propositions/"+pid+"/resolve", dto.ResolveRequest{WinningSide: "over"})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("already resolved", func(t *testing.T) {
		r, props, _ := propositionRouter(t)
		props.EXPECT().Resolve(mock.Anything, pid, callerID, "over").
			Return(nil, domainerr.NewInvalidStateError(pid, "resolved", "proposition is already resolved"))

		rec := do(t, r, http.MethodPost, "/propositions/"+pid+"/resolve", dto.ResolveRequest{WinningSide: "over"})
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, domainerr.CodeInvalidState, decode[dto.ErrorResponse](t, rec).Code)
	})

	t.Run("missing side", func(t *testing.T) {
		r, _, _ := propositionRouter(t)
		rec := do(t, r, http.MethodPost, "/propositions/"+pid+"/resolve", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
