package services

import (
	"context"
	"errors"

	"tripmate/internal/ledger"
	"tripmate/internal/permissions"
	"tripmate/internal/store"
)

// StatsService produces the trip expense summary. Members and expenses are
// read inside one transaction so the average is never computed against a
// participant count from a different snapshot.
type StatsService struct {
	Store store.Store
}

func NewStatsService(s store.Store) *StatsService {
	return &StatsService{Store: s}
}

func (s *StatsService) TripStats(ctx context.Context, actorID, tripID int) (ledger.Stats, error) {
	var stats ledger.Stats
	err := s.Store.WithTx(ctx, func(tx store.Store) error {
		if _, err := tx.Trips().GetByID(ctx, tripID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrTripNotFound
			}
			return err
		}

		isMember, err := tx.Members().IsMember(ctx, tripID, actorID)
		if err != nil {
			return err
		}
		if permissions.CanActAsMember(isMember) != permissions.Allowed {
			return ErrTripNotFound
		}

		memberIDs, err := tx.Members().ListMemberIDs(ctx, tripID)
		if err != nil {
			return err
		}
		expenses, err := tx.Expenses().ListByTrip(ctx, tripID)
		if err != nil {
			return err
		}

		stats = ledger.Compute(expenses, memberIDs)
		return nil
	})
	return stats, err
}
