package memory

import (
	"context"
	"sort"
	"time"

	"github.com/mensunw/people-bets/internal/domain/entity"
	errs "github.com/mensunw/people-bets/internal/domain/error"
)

type userRepository struct{ store *Store }

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var user *entity.User
	err := r.store.read(ctx, func(st *state) error {
		u, ok := st.users[id]
		if !ok {
			return errs.ErrUserNotFound
		}
		user = u.Clone()
		return nil
	})
	return user, err
}

// GetForUpdate needs no extra locking: transactions are already exclusive
func (r *userRepository) GetForUpdate(ctx context.Context, id string) (*entity.User, error) {
	return r.GetByID(ctx, id)
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return r.store.write(ctx, func(st *state) error {
		if _, ok := st.users[user.ID]; ok {
			return errs.ErrDuplicateKey
		}
		st.users[user.ID] = user.Clone()
		return nil
	})
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	return r.store.write(ctx, func(st *state) error {
		if _, ok := st.users[user.ID]; !ok {
			return errs.ErrUserNotFound
		}
		st.users[user.ID] = user.Clone()
		return nil
	})
}

func (r *userRepository) GetUsernames(ctx context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	err := r.store.read(ctx, func(st *state) error {
		for _, id := range ids {
			if u, ok := st.users[id]; ok {
				names[id] = u.Username
			}
		}
		return nil
	})
	return names, err
}

type groupRepository struct{ store *Store }

func (r *groupRepository) Create(ctx context.Context, group *entity.Group) error {
	return r.store.write(ctx, func(st *state) error {
		if _, ok := st.groups[group.ID]; ok {
			return errs.ErrDuplicateKey
		}
		st.groups[group.ID] = *group
		return nil
	})
}

func (r *groupRepository) GetByID(ctx context.Context, id string) (*entity.Group, error) {
	var group *entity.Group
	err := r.store.read(ctx, func(st *state) error {
		g, ok := st.groups[id]
		if !ok {
			return errs.ErrGroupNotFound
		}
		group = &g
		return nil
	})
	return group, err
}

func sortGroups(groups []*entity.Group) {
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Name != groups[j].Name {
			return groups[i].Name < groups[j].Name
		}
		return groups[i].ID < groups[j].ID
	})
}

func (r *groupRepository) ListForUser(ctx context.Context, userID string) ([]*entity.Group, error) {
	groups := []*entity.Group{}
	err := r.store.read(ctx, func(st *state) error {
		for gid, ms := range st.members {
			if _, ok := ms[userID]; !ok {
				continue
			}
			if g, ok := st.groups[gid]; ok {
				groups = append(groups, &g)
			}
		}
		return nil
	})
	sortGroups(groups)
	return groups, err
}

func (r *groupRepository) ListPublic(ctx context.Context) ([]*entity.Group, error) {
	groups := []*entity.Group{}
	err := r.store.read(ctx, func(st *state) error {
		for _, g := range st.groups {
			if !g.IsPrivate {
				g := g
				groups = append(groups, &g)
			}
		}
		return nil
	})
	sortGroups(groups)
	return groups, err
}

func (r *groupRepository) AddMember(ctx context.Context, membership *entity.Membership) error {
	return r.store.write(ctx, func(st *state) error {
		if _, ok := st.groups[membership.GroupID]; !ok {
			return errs.ErrGroupNotFound
		}
		ms, ok := st.members[membership.GroupID]
		if !ok {
			ms = make(map[string]entity.Membership)
			st.members[membership.GroupID] = ms
		}
		if _, exists := ms[membership.UserID]; exists {
			return errs.ErrAlreadyMember
		}
		ms[membership.UserID] = *membership
		return nil
	})
}

func (r *groupRepository) RemoveMember(ctx context.Context, groupID, userID string) error {
	return r.store.write(ctx, func(st *state) error {
		ms := st.members[groupID]
		if _, ok := ms[userID]; !ok {
			return errs.ErrMembershipNotFound
		}
		delete(ms, userID)
		return nil
	})
}

func (r *groupRepository) IsMember(ctx context.Context, groupID, userID string) (bool, error) {
	var member bool
	err := r.store.read(ctx, func(st *state) error {
		_, member = st.members[groupID][userID]
		return nil
	})
	return member, err
}

func (r *groupRepository) ListMembers(ctx context.Context, groupID string) ([]*entity.Membership, error) {
	members := []*entity.Membership{}
	err := r.store.read(ctx, func(st *state) error {
		for _, m := range st.members[groupID] {
			m := m
			members = append(members, &m)
		}
		return nil
	})
	sort.Slice(members, func(i, j int) bool {
		if !members[i].JoinedAt.Equal(members[j].JoinedAt) {
			return members[i].JoinedAt.Before(members[j].JoinedAt)
		}
		return members[i].UserID < members[j].UserID
	})
	return members, err
}

type propositionRepository struct{ store *Store }

func (r *propositionRepository) Create(ctx context.Context, proposition *entity.Proposition) error {
	return r.store.write(ctx, func(st *state) error {
		if _, ok := st.propositions[proposition.ID]; ok {
			return errs.ErrDuplicateKey
		}
		st.propositions[proposition.ID] = proposition.Clone()
		return nil
	})
}

func (r *propositionRepository) GetByID(ctx context.Context, id string) (*entity.Proposition, error) {
	var prop *entity.Proposition
	err := r.store.read(ctx, func(st *state) error {
		p, ok := st.propositions[id]
		if !ok {
			return errs.ErrPropositionNotFound
		}
		prop = p.Clone()
		return nil
	})
	return prop, err
}

func (r *propositionRepository) GetForUpdate(ctx context.Context, id string) (*entity.Proposition, error) {
	return r.GetByID(ctx, id)
}

func (r *propositionRepository) Update(ctx context.Context, proposition *entity.Proposition) error {
	return r.store.write(ctx, func(st *state) error {
		if _, ok := st.propositions[proposition.ID]; !ok {
			return errs.ErrPropositionNotFound
		}
		st.propositions[proposition.ID] = proposition.Clone()
		return nil
	})
}

func (r *propositionRepository) ListByGroup(ctx context.Context, groupID string) ([]*entity.Proposition, error) {
	props := []*entity.Proposition{}
	err := r.store.read(ctx, func(st *state) error {
		for _, p := range st.propositions {
			if p.GroupID == groupID {
				props = append(props, p.Clone())
			}
		}
		return nil
	})
	sort.Slice(props, func(i, j int) bool {
		if !props[i].CreatedAt.Equal(props[j].CreatedAt) {
			return props[i].CreatedAt.After(props[j].CreatedAt)
		}
		return props[i].ID > props[j].ID
	})
	return props, err
}

type stakeRepository struct{ store *Store }

func (r *stakeRepository) Create(ctx context.Context, stake *entity.Stake) error {
	return r.store.write(ctx, func(st *state) error {
		for _, s := range st.stakes {
			if s.PropositionID == stake.PropositionID && s.UserID == stake.UserID {
				return errs.NewDuplicateStakeError(stake.PropositionID, stake.UserID)
			}
		}
		st.stakes = append(st.stakes, *stake)
		return nil
	})
}

func (r *stakeRepository) GetByUserAndProposition(ctx context.Context, propositionID, userID string) (*entity.Stake, error) {
	var found *entity.Stake
	err := r.store.read(ctx, func(st *state) error {
		for _, s := range st.stakes {
			if s.PropositionID == propositionID && s.UserID == userID {
				s := s
				found = &s
				return nil
			}
		}
		return errs.ErrNotFound
	})
	return found, err
}

func (r *stakeRepository) ListByProposition(ctx context.Context, propositionID string) ([]*entity.Stake, error) {
	stakes := []*entity.Stake{}
	err := r.store.read(ctx, func(st *state) error {
		for _, s := range st.stakes {
			if s.PropositionID == propositionID {
				s := s
				stakes = append(stakes, &s)
			}
		}
		return nil
	})
	return stakes, err
}

func (r *stakeRepository) TotalsByPropositions(ctx context.Context, propositionIDs []string) (map[string]entity.PoolTotals, error) {
	totals := make(map[string]entity.PoolTotals, len(propositionIDs))
	err := r.store.read(ctx, func(st *state) error {
		byProp := poolsOf(st)
		for _, id := range propositionIDs {
			totals[id] = byProp[id]
		}
		return nil
	})
	return totals, err
}

// poolsOf aggregates every proposition's pool in one pass
func poolsOf(st *state) map[string]entity.PoolTotals {
	grouped := make(map[string][]*entity.Stake)
	for i := range st.stakes {
		s := &st.stakes[i]
		grouped[s.PropositionID] = append(grouped[s.PropositionID], s)
	}
	pools := make(map[string]entity.PoolTotals, len(grouped))
	for id, stakes := range grouped {
		pools[id] = entity.TotalsOf(stakes)
	}
	return pools
}

func (r *stakeRepository) ListSettled(ctx context.Context) ([]entity.SettledStake, error) {
	settled := []entity.SettledStake{}
	err := r.store.read(ctx, func(st *state) error {
		pools := poolsOf(st)
		for _, s := range st.stakes {
			p, ok := st.propositions[s.PropositionID]
			if !ok || p.Status != entity.StatusResolved || p.WinningSide == nil || p.ResolvedAt == nil {
				continue
			}
			settled = append(settled, entity.SettledStake{
				StakeID:       s.ID,
				PropositionID: s.PropositionID,
				UserID:        s.UserID,
				Side:          s.Side,
				Amount:        s.Amount,
				StakedAt:      s.CreatedAt,
				WinningSide:   *p.WinningSide,
				Totals:        pools[s.PropositionID],
				ResolvedAt:    *p.ResolvedAt,
			})
		}
		return nil
	})
	return settled, err
}

func (r *stakeRepository) ListByUserSince(ctx context.Context, userID string, since time.Time) ([]entity.StakeRecord, error) {
	records := []entity.StakeRecord{}
	err := r.store.read(ctx, func(st *state) error {
		pools := poolsOf(st)
		for _, s := range st.stakes {
			if s.UserID != userID || s.CreatedAt.Before(since) {
				continue
			}
			record := entity.StakeRecord{
				StakeID:  s.ID,
				Amount:   s.Amount,
				Side:     s.Side,
				StakedAt: s.CreatedAt,
				Totals:   pools[s.PropositionID],
			}
			if p, ok := st.propositions[s.PropositionID]; ok && p.Status == entity.StatusResolved && p.WinningSide != nil {
				record.Resolved = true
				record.WinningSide = *p.WinningSide
			}
			records = append(records, record)
		}
		return nil
	})
	sort.SliceStable(records, func(i, j int) bool { return records[i].StakedAt.Before(records[j].StakedAt) })
	return records, err
}

type ledgerRepository struct{ store *Store }

func (r *ledgerRepository) Create(ctx context.Context, entry *entity.LedgerEntry) error {
	return r.store.write(ctx, func(st *state) error {
		if _, ok := st.ledgerRefs[entry.Reference]; ok {
			return errs.ErrDuplicateKey
		}
		st.ledgerRefs[entry.Reference] = struct{}{}
		st.ledger = append(st.ledger, *entry)
		return nil
	})
}

func (r *ledgerRepository) ExistsByReference(ctx context.Context, reference string) (bool, error) {
	var exists bool
	err := r.store.read(ctx, func(st *state) error {
		_, exists = st.ledgerRefs[reference]
		return nil
	})
	return exists, err
}

func (r *ledgerRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.LedgerEntry, error) {
	entries := []*entity.LedgerEntry{}
	err := r.store.read(ctx, func(st *state) error {
		for i := len(st.ledger) - 1; i >= 0; i-- {
			if st.ledger[i].UserID != userID {
				continue
			}
			e := st.ledger[i]
			entries = append(entries, &e)
			if limit > 0 && len(entries) == limit {
				break
			}
		}
		return nil
	})
	return entries, err
}

type leaderboardRepository struct{ store *Store }

func (r *leaderboardRepository) ReplaceAll(ctx context.Context, entries []*entity.LeaderboardEntry) error {
	return r.store.write(ctx, func(st *state) error {
		st.leaderboard = make(map[string]entity.LeaderboardEntry, len(entries))
		for _, e := range entries {
			st.leaderboard[e.UserID] = *e
		}
		return nil
	})
}

func (r *leaderboardRepository) Top(ctx context.Context, sortBy entity.LeaderboardSort, limit int) ([]*entity.LeaderboardEntry, error) {
	entries := []*entity.LeaderboardEntry{}
	err := r.store.read(ctx, func(st *state) error {
		for _, e := range st.leaderboard {
			e := e
			if u, ok := st.users[e.UserID]; ok {
				e.Username = u.Username
			}
			entries = append(entries, &e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	entity.SortLeaderboard(entries, sortBy)
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

type settlementRepository struct{ store *Store }

func (r *settlementRepository) Create(ctx context.Context, settlement *entity.Settlement) error {
	return r.store.write(ctx, func(st *state) error {
		if _, ok := st.settlements[settlement.PropositionID]; ok {
			return errs.ErrDuplicateKey
		}
		s := *settlement
		s.Payouts = append([]entity.Payout(nil), settlement.Payouts...)
		s.Stakers = nil
		st.settlements[settlement.PropositionID] = s
		return nil
	})
}

func (r *settlementRepository) GetByProposition(ctx context.Context, propositionID string) (*entity.Settlement, error) {
	var found *entity.Settlement
	err := r.store.read(ctx, func(st *state) error {
		s, ok := st.settlements[propositionID]
		if !ok {
			return errs.ErrNotFound
		}
		s.Payouts = append([]entity.Payout(nil), s.Payouts...)
		found = &s
		return nil
	})
	return found, err
}
