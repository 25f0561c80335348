package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"tripmate/internal/models"
	"tripmate/internal/permissions"
	"tripmate/internal/store"
	"tripmate/pkg/utils"
)

// Mailer dispatches the invite email. Delivery is best-effort: invitation
// creation reports success even when sending fails.
type Mailer interface {
	SendInviteEmail(toEmail, inviteLink, tripName, inviterEmail string, expiresAt time.Time) error
}

type SMTPMailer struct{}

func (SMTPMailer) SendInviteEmail(toEmail, inviteLink, tripName, inviterEmail string, expiresAt time.Time) error {
	return utils.SendTripInviteEmail(toEmail, tripName, inviterEmail, inviteLink, expiresAt)
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// InviteService owns the invitation lifecycle. It is the only writer that
// turns a pending invite into a membership row.
type InviteService struct {
	Store   store.Store
	Mailer  Mailer
	BaseURL string
	TTL     time.Duration

	// now is overridable in tests; expiry is always derived from it.
	now func() time.Time
}

func NewInviteService(s store.Store, m Mailer, baseURL string, ttl time.Duration) *InviteService {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &InviteService{
		Store:   s,
		Mailer:  m,
		BaseURL: strings.TrimRight(baseURL, "/"),
		TTL:     ttl,
		now:     time.Now,
	}
}

func (s *InviteService) inviteLink(token string) string {
	return fmt.Sprintf("%s/invite/%s", s.BaseURL, token)
}

// Create issues a pending invitation for email on the trip and dispatches the
// invite link. Duplicate pending invites and already-member emails are
// rejected with distinct errors.
func (s *InviteService) Create(ctx context.Context, actor utils.Principal, tripID int, email string) (models.TripInvitation, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return models.TripInvitation{}, "", ErrInvalidEmail
	}

	trip, err := s.Store.Trips().GetByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.TripInvitation{}, "", ErrTripNotFound
		}
		return models.TripInvitation{}, "", err
	}

	isMember, err := s.Store.Members().IsMember(ctx, tripID, actor.ID)
	if err != nil {
		return models.TripInvitation{}, "", err
	}
	if permissions.CanActAsMember(isMember) != permissions.Allowed {
		return models.TripInvitation{}, "", ErrTripNotFound
	}

	invitee, err := s.Store.Users().GetByEmail(ctx, email)
	if err == nil {
		member, err := s.Store.Members().IsMember(ctx, tripID, invitee.ID)
		if err != nil {
			return models.TripInvitation{}, "", err
		}
		if member {
			return models.TripInvitation{}, "", ErrAlreadyMember
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		return models.TripInvitation{}, "", err
	}

	token, fingerprint, err := utils.GenerateInviteToken()
	if err != nil {
		return models.TripInvitation{}, "", err
	}

	now := s.now()
	invite := models.TripInvitation{
		TripID:    tripID,
		Email:     email,
		Token:     fingerprint,
		Status:    models.InviteStatusPending,
		InvitedBy: actor.ID,
		ExpiresAt: now.Add(s.TTL),
	}
	// The duplicate check and the insert share one transaction so two
	// concurrent creates for the same email cannot both commit.
	err = s.Store.WithTx(ctx, func(tx store.Store) error {
		pending, err := tx.Invites().HasPending(ctx, tripID, email, now)
		if err != nil {
			return err
		}
		if pending {
			return ErrAlreadyInvited
		}
		return tx.Invites().Create(ctx, &invite)
	})
	if err != nil {
		return models.TripInvitation{}, "", err
	}

	link := s.inviteLink(token)
	if err := s.Mailer.SendInviteEmail(email, link, trip.Name, actor.Email, invite.ExpiresAt); err != nil {
		utils.Logger.Errorf("failed to send invite email to %s: %v", email, err)
		return invite, link, ErrInviteEmailFailed
	}
	return invite, link, nil
}

// Resend invalidates the old token immediately: the row is replaced with a
// fresh token and a fresh expiry in one transaction, not renewed in place.
func (s *InviteService) Resend(ctx context.Context, actor utils.Principal, tripID, inviteID int) (models.TripInvitation, string, error) {
	trip, err := s.Store.Trips().GetByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.TripInvitation{}, "", ErrTripNotFound
		}
		return models.TripInvitation{}, "", err
	}

	isMember, err := s.Store.Members().IsMember(ctx, tripID, actor.ID)
	if err != nil {
		return models.TripInvitation{}, "", err
	}
	if permissions.CanActAsMember(isMember) != permissions.Allowed {
		return models.TripInvitation{}, "", ErrTripNotFound
	}

	old, err := s.Store.Invites().GetByID(ctx, inviteID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.TripInvitation{}, "", ErrInviteNotFound
		}
		return models.TripInvitation{}, "", err
	}
	if old.TripID != tripID {
		return models.TripInvitation{}, "", ErrInviteNotFound
	}
	if old.Status == models.InviteStatusAccepted {
		return models.TripInvitation{}, "", ErrInviteNotPending
	}

	token, fingerprint, err := utils.GenerateInviteToken()
	if err != nil {
		return models.TripInvitation{}, "", err
	}

	invite := models.TripInvitation{
		TripID:    tripID,
		Email:     old.Email,
		Token:     fingerprint,
		Status:    models.InviteStatusPending,
		InvitedBy: old.InvitedBy,
		ExpiresAt: s.now().Add(s.TTL),
	}
	err = s.Store.WithTx(ctx, func(tx store.Store) error {
		if err := tx.Invites().Delete(ctx, old.ID); err != nil && !errors.Is(err, store.ErrNotFound) {
			return err
		}
		return tx.Invites().Create(ctx, &invite)
	})
	if err != nil {
		return models.TripInvitation{}, "", err
	}

	link := s.inviteLink(token)
	if err := s.Mailer.SendInviteEmail(invite.Email, link, trip.Name, actor.Email, invite.ExpiresAt); err != nil {
		utils.Logger.Errorf("failed to resend invite email to %s: %v", invite.Email, err)
		return invite, link, ErrInviteEmailFailed
	}
	return invite, link, nil
}

// Cancel hard-deletes the invitation. Only the trip owner or the original
// inviter may cancel; a row that is already gone is NotFound, never treated
// as a security failure.
func (s *InviteService) Cancel(ctx context.Context, actor utils.Principal, inviteID int) error {
	invite, err := s.Store.Invites().GetByID(ctx, inviteID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInviteNotFound
		}
		return err
	}

	trip, err := s.Store.Trips().GetByID(ctx, invite.TripID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInviteNotFound
		}
		return err
	}

	if actor.ID != trip.OwnerID && actor.ID != invite.InvitedBy {
		return ErrNotOwner
	}

	if err := s.Store.Invites().Delete(ctx, invite.ID); err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	return nil
}

// Accept consumes the token and adds the caller as a member in one
// transaction, so no observer can see a consumed token without its membership
// row. Exactly one of two concurrent accepts wins; the loser gets
// ErrInviteNotFound. A lock conflict is retried once.
func (s *InviteService) Accept(ctx context.Context, actor utils.Principal, token string) (int, error) {
	fingerprint, err := utils.FingerprintInviteToken(token)
	if err != nil {
		return 0, ErrInviteNotFound
	}

	tripID, err := s.acceptOnce(ctx, actor, fingerprint)
	if errors.Is(err, store.ErrBusy) {
		time.Sleep(50 * time.Millisecond)
		tripID, err = s.acceptOnce(ctx, actor, fingerprint)
	}
	return tripID, err
}

func (s *InviteService) acceptOnce(ctx context.Context, actor utils.Principal, fingerprint string) (int, error) {
	var tripID int
	err := s.Store.WithTx(ctx, func(tx store.Store) error {
		invite, err := tx.Invites().GetByTokenHash(ctx, fingerprint)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInviteNotFound
			}
			return err
		}

		if invite.Status == models.InviteStatusAccepted {
			return ErrInviteNotFound
		}
		if invite.IsExpired(s.now()) {
			return ErrInviteExpired
		}
		if !strings.EqualFold(invite.Email, actor.Email) {
			return ErrEmailMismatch
		}

		won, err := tx.Invites().MarkAccepted(ctx, invite.ID)
		if err != nil {
			return err
		}
		if !won {
			return ErrInviteNotFound
		}

		if _, err := tx.Members().AddMember(ctx, invite.TripID, actor.ID); err != nil {
			return err
		}
		tripID = invite.TripID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return tripID, nil
}

// ListPending returns the live pending invites for a trip. Rows past their
// expiry are filtered out even when their stored status still reads pending.
func (s *InviteService) ListPending(ctx context.Context, actor utils.Principal, tripID int) ([]models.TripInvitation, error) {
	trip, err := s.Store.Trips().GetByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}

	if permissions.CanManageTrip(actor.ID, trip.OwnerID) != permissions.Allowed {
		return nil, ErrNotOwner
	}

	return s.Store.Invites().ListPending(ctx, tripID, s.now())
}
