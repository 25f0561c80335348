// Package store defines the persistence contracts for the trip core. The
// MySQL driver lives in internal/repositories; tests substitute in-memory
// fakes. WithTx is the single transaction boundary: everything executed
// inside the callback sees one consistent snapshot and commits atomically.
package store

import (
	"context"
	"errors"
	"time"

	"tripmate/internal/models"
)

var (
	// ErrNotFound is returned by every getter when no row matches.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a unique constraint rejects a write.
	ErrConflict = errors.New("record already exists")
	// ErrBusy marks a transaction that lost a lock conflict and may be
	// retried.
	ErrBusy = errors.New("transaction conflict")
)

type Store interface {
	Trips() TripStore
	Members() MembershipStore
	Invites() InviteStore
	Expenses() ExpenseStore
	Users() UserStore

	// WithTx runs fn against a Store bound to a single transaction,
	// committing on nil and rolling back on error.
	WithTx(ctx context.Context, fn func(tx Store) error) error
}

type TripStore interface {
	Create(ctx context.Context, trip *models.Trip) error
	GetByID(ctx context.Context, id int) (models.Trip, error)
	ListByMember(ctx context.Context, userID int) ([]models.Trip, error)
	Update(ctx context.Context, trip models.Trip) error
	Delete(ctx context.Context, id int) error
}

// MembershipStore is the single source of truth for "is user X a member of
// trip T". No other table may be consulted to infer membership.
type MembershipStore interface {
	IsMember(ctx context.Context, tripID, userID int) (bool, error)
	// AddMember is idempotent: re-adding an existing member is a no-op
	// success and returns the existing row. This is the backstop against
	// double-accept races.
	AddMember(ctx context.Context, tripID, userID int) (models.TripMember, error)
	// RemoveMember returns ErrNotFound when no such row exists.
	RemoveMember(ctx context.Context, tripID, userID int) error
	CountMembers(ctx context.Context, tripID int) (int, error)
	ListMemberIDs(ctx context.Context, tripID int) ([]int, error)
}

type InviteStore interface {
	Create(ctx context.Context, invite *models.TripInvitation) error
	GetByID(ctx context.Context, id int) (models.TripInvitation, error)
	GetByTokenHash(ctx context.Context, tokenHash string) (models.TripInvitation, error)
	// HasPending reports whether a non-expired pending invite exists for
	// the email on the trip.
	HasPending(ctx context.Context, tripID int, email string, now time.Time) (bool, error)
	ListPending(ctx context.Context, tripID int, now time.Time) ([]models.TripInvitation, error)
	// MarkAccepted flips pending to accepted and reports whether this call
	// won the transition. A false return means the token was already
	// consumed by a concurrent accept.
	MarkAccepted(ctx context.Context, id int) (bool, error)
	// Delete returns ErrNotFound when the row is already gone.
	Delete(ctx context.Context, id int) error
	// ExpireStale flags pending rows past their deadline. Storage hygiene
	// only; expiry is always re-derived at read time.
	ExpireStale(ctx context.Context, now time.Time) (int64, error)
}

type ExpenseStore interface {
	Create(ctx context.Context, expense *models.Expense) error
	GetByID(ctx context.Context, id int) (models.Expense, error)
	ListByTrip(ctx context.Context, tripID int) ([]models.Expense, error)
	Update(ctx context.Context, expense models.Expense) error
	Delete(ctx context.Context, id int) error
}

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	GetByAccountID(ctx context.Context, accountID string) (models.User, error)
}
