package services

import (
	"context"
	"errors"

	"tripmate/internal/permissions"
	"tripmate/internal/store"
	"tripmate/pkg/utils"
)

// MembershipService applies the removal and leave rules on top of the
// membership store. Races between a leave and a removal converge benignly:
// whichever loses sees the row already gone and still reports success.
type MembershipService struct {
	Store store.Store
}

func NewMembershipService(s store.Store) *MembershipService {
	return &MembershipService{Store: s}
}

// RemoveParticipant is the owner-driven removal path. The owner's own row is
// untouchable while they remain owner.
func (s *MembershipService) RemoveParticipant(ctx context.Context, actorID, tripID, targetID int) error {
	trip, err := s.Store.Trips().GetByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTripNotFound
		}
		return err
	}

	targetIsMember, err := s.Store.Members().IsMember(ctx, tripID, targetID)
	if err != nil {
		return err
	}

	switch permissions.CanRemoveMember(actorID, targetID, trip.OwnerID, targetIsMember) {
	case permissions.Forbidden:
		if targetID == trip.OwnerID {
			return ErrOwnerImmovable
		}
		return ErrNotOwner
	case permissions.NotFound:
		// Already removed, possibly by a concurrent leave.
		utils.Logger.Debugf("remove of user %d on trip %d: already not a member", targetID, tripID)
		return nil
	}

	if err := s.Store.Members().RemoveMember(ctx, tripID, targetID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}
	return nil
}

// Leave is self-removal for non-owner members. Owners are rejected explicitly
// rather than silently succeeding.
func (s *MembershipService) Leave(ctx context.Context, actorID, tripID int) error {
	trip, err := s.Store.Trips().GetByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTripNotFound
		}
		return err
	}

	isMember, err := s.Store.Members().IsMember(ctx, tripID, actorID)
	if err != nil {
		return err
	}

	switch permissions.CanLeave(actorID, trip.OwnerID, isMember) {
	case permissions.Forbidden:
		return ErrOwnerCannotLeave
	case permissions.NotFound:
		utils.Logger.Debugf("leave of user %d on trip %d: already not a member", actorID, tripID)
		return nil
	}

	if err := s.Store.Members().RemoveMember(ctx, tripID, actorID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}
	return nil
}
