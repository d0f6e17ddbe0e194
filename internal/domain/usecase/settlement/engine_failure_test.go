package settlement

import (
	"context"
	"errors"
	"testing"

	"github.com/mensunw/people-bets/internal/domain/entity"
	errs "github.com/mensunw/people-bets/internal/domain/error"
	"github.com/mensunw/people-bets/internal/domain/usecase/ledger"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/logger"
	persistencemocks "github.com/mensunw/people-bets/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSettleStoreFailures(t *testing.T) {
	ctx := context.Background()
	under := entity.SideUnder
	prop := &entity.Proposition{
		ID:          "prop-9",
		GroupID:     entity.GlobalGroupID,
		CreatorID:   creatorID,
		WindowEnd:   now.Add(-1),
		Status:      entity.StatusResolved,
		WinningSide: &under,
	}
	stakes := []*entity.Stake{
		{ID: "stake-1", PropositionID: prop.ID, UserID: userA, Side: entity.SideOver, Amount: 100, CreatedAt: now},
	}

	t.Run("Listing stakes fails", func(t *testing.T) {
		uow := persistencemocks.NewMockUnitOfWork(t)
		stakeRepo := persistencemocks.NewMockStakeRepository(t)
		storeErr := errors.New("connection reset")

		uow.EXPECT().GetStakeRepository(mock.Anything).Return(stakeRepo).Once()
		stakeRepo.EXPECT().ListByProposition(mock.Anything, prop.ID).Return(nil, storeErr).Once()

		log := logger.NewNoopLogger()
		result, err := NewEngine(uow, ledger.NewService(uow, log), log).Settle(ctx, prop, now)

		assert.Nil(t, result)
		assert.Equal(t, storeErr, err)
	})

	t.Run("Second settlement record is rejected", func(t *testing.T) {
		uow := persistencemocks.NewMockUnitOfWork(t)
		stakeRepo := persistencemocks.NewMockStakeRepository(t)
		settlements := persistencemocks.NewMockSettlementRepository(t)

		uow.EXPECT().GetStakeRepository(mock.Anything).Return(stakeRepo).Once()
		stakeRepo.EXPECT().ListByProposition(mock.Anything, prop.ID).Return(stakes, nil).Once()
		uow.EXPECT().GetSettlementRepository(mock.Anything).Return(settlements).Once()
		settlements.EXPECT().Create(mock.Anything, mock.MatchedBy(func(s *entity.Settlement) bool {
			return s.PropositionID == prop.ID && s.Forfeited == 100 && s.PaidOut == 0
		})).Return(errs.ErrDuplicateKey).Once()

		log := logger.NewNoopLogger()
		result, err := NewEngine(uow, ledger.NewService(uow, log), log).Settle(ctx, prop, now)

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, errs.ErrDuplicateKey))
	})
}
