package user

import (
	"context"
	"errors"

	"github.com/mensunw/people-bets/internal/domain/entity"
	errs "github.com/mensunw/people-bets/internal/domain/error"
	coreport "github.com/mensunw/people-bets/internal/domain/port/core"
	"github.com/mensunw/people-bets/internal/domain/port/persistence"
	"github.com/mensunw/people-bets/internal/domain/usecase/ledger"
)

// UserUseCase handles profile bootstrap and lookup
type UserUseCase struct {
	uow          persistence.UnitOfWork
	ledger       *ledger.Service
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(
	uow persistence.UnitOfWork,
	ledgerService *ledger.Service,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UserUseCase {
	return &UserUseCase{
		uow:          uow,
		ledger:       ledgerService,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetProfile returns the profile of an existing user
func (u *UserUseCase) GetProfile(ctx context.Context, userID string) (*entity.Profile, error) {
	user, err := u.uow.GetUserRepository(ctx).GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile := entity.UserToProfile(user, u.timeProvider.Now())
	return &profile, nil
}

// Bootstrap returns the caller's profile, creating it on first use with the
// initial balance, a signup ledger entry and a Global membership
func (u *UserUseCase) Bootstrap(ctx context.Context, identity entity.Identity, usernameHint string) (*entity.Profile, error) {
	if err := entity.ValidateUserID(identity.UserID); err != nil {
		return nil, err
	}

	profile, err := u.GetProfile(ctx, identity.UserID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, errs.ErrUserNotFound) {
		return nil, err
	}

	now := u.timeProvider.Now()
	user, err := entity.NewUser(identity.UserID, usernameHint, entity.InitialBalance, now)
	if err != nil {
		return nil, err
	}

	err = persistence.RunInTransaction(ctx, u.uow, func(txCtx context.Context) error {
		if err := u.uow.GetUserRepository(txCtx).Create(txCtx, user); err != nil {
			return err
		}

		opening := ledger.Movement{
			UserID:    user.ID,
			Kind:      entity.LedgerSignupBonus,
			Amount:    entity.InitialBalance,
			Reference: entity.SignupReference(user.ID),
		}
		if err := u.ledger.Record(txCtx, user, opening, now); err != nil {
			return err
		}

		membership := entity.NewMembership(entity.GlobalGroupID, user.ID, now)
		if err := u.uow.GetGroupRepository(txCtx).AddMember(txCtx, membership); err != nil && !errors.Is(err, errs.ErrAlreadyMember) {
			return err
		}
		return nil
	})

	if errors.Is(err, errs.ErrDuplicateKey) {
		// A concurrent bootstrap for the same identity committed first
		u.logger.Debug("Profile created concurrently, reloading", map[string]any{
			"user_id": identity.UserID,
		})
		return u.GetProfile(ctx, identity.UserID)
	}
	if err != nil {
		u.logger.Error("Failed to bootstrap profile", map[string]any{
			"user_id": identity.UserID,
			"error":   err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Profile created", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
		"balance":  user.Balance(),
	})

	created := entity.UserToProfile(user, now)
	return &created, nil
}
