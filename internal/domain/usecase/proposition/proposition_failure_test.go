package proposition

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/mensunw/people-bets/internal/domain/entity"
	errs "github.com/mensunw/people-bets/internal/domain/error"
	"github.com/mensunw/people-bets/internal/domain/usecase/ledger"
	"github.com/mensunw/people-bets/internal/domain/usecase/settlement"
	"github.com/mensunw/people-bets/internal/domain/usecase/usecasetest"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/logger"
	coremocks "github.com/mensunw/people-bets/mocks/port/core"
	messagingmocks "github.com/mensunw/people-bets/mocks/port/messaging"
	persistencemocks "github.com/mensunw/people-bets/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestResolveStoreFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	clock := usecasetest.NewClock(start)
	log := logger.NewNoopLogger()

	uow := persistencemocks.NewMockUnitOfWork(t)
	props := persistencemocks.NewMockPropositionRepository(t)
	metrics := coremocks.NewMockMetricsRecorder(t)
	publisher := messagingmocks.NewMockEventPublisher(t)

	prop := &entity.Proposition{
		ID:        "prop-1",
		GroupID:   entity.GlobalGroupID,
		CreatorID: creatorID,
		WindowEnd: start.Add(-1),
		Status:    entity.StatusOpen,
		CreatedAt: start.Add(-1),
	}
	storeErr := fmt.Errorf("%w: connection refused", errs.ErrStoreUnavailable)

	uow.EXPECT().Begin(ctx).Return(ctx, nil).Once()
	uow.EXPECT().GetPropositionRepository(ctx).Return(props).Once()
	props.EXPECT().GetForUpdate(ctx, "prop-1").Return(prop, nil).Once()
	props.EXPECT().Update(ctx, mock.MatchedBy(func(p *entity.Proposition) bool {
		return p.Status == entity.StatusResolved
	})).Return(storeErr).Once()
	uow.EXPECT().Rollback(ctx).Return(nil).Once()
	metrics.EXPECT().OperationFailed("resolve", errs.CodeStoreUnavailable).Once()

	ledgerService := ledger.NewService(uow, log)
	uc := NewPropositionUseCase(uow, settlement.NewEngine(uow, ledgerService, log), publisher, metrics, clock.TimeProvider(t), log)

	result, err := uc.Resolve(ctx, "prop-1", creatorID, "over")

	assert.Nil(t, result)
	assert.True(t, errors.Is(err, errs.ErrStoreUnavailable))
}
