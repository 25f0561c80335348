package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tripmate/internal/models"
	"tripmate/internal/store"
)

// fakeStore is an in-memory store.Store used by the service tests. WithTx
// holds txMu for the whole callback, so transactions are serialized the way
// the real store's locking reads serialize them.
type fakeStore struct {
	mu       sync.Mutex
	txMu     sync.Mutex
	nextID   int
	trips    map[int]models.Trip
	members  map[int]map[int]bool
	invites  map[int]models.TripInvitation
	expenses map[int]models.Expense
	users    map[int]models.User
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		trips:    make(map[int]models.Trip),
		members:  make(map[int]map[int]bool),
		invites:  make(map[int]models.TripInvitation),
		expenses: make(map[int]models.Expense),
		users:    make(map[int]models.User),
	}
}

func (f *fakeStore) id() int {
	f.nextID++
	return f.nextID
}

func (f *fakeStore) Trips() store.TripStore         { return fakeTrips{f} }
func (f *fakeStore) Members() store.MembershipStore { return fakeMembers{f} }
func (f *fakeStore) Invites() store.InviteStore     { return fakeInvites{f} }
func (f *fakeStore) Expenses() store.ExpenseStore   { return fakeExpenses{f} }
func (f *fakeStore) Users() store.UserStore         { return fakeUsers{f} }

func (f *fakeStore) WithTx(ctx context.Context, fn func(tx store.Store) error) error {
	f.txMu.Lock()
	defer f.txMu.Unlock()
	return fn(f)
}

func addMember(t *testing.T, f *fakeStore, ctx context.Context, tripID, userID int) {
	t.Helper()
	row, err := f.Members().AddMember(ctx, tripID, userID)
	require.NoError(t, err)
	require.Equal(t, tripID, row.TripID)
	require.Equal(t, userID, row.UserID)
}

// seedTrip creates a trip with its owner membership, like trip creation does.
func (f *fakeStore) seedTrip(ownerID int, name string) models.Trip {
	f.mu.Lock()
	defer f.mu.Unlock()
	trip := models.Trip{ID: f.id(), Name: name, OwnerID: ownerID}
	f.trips[trip.ID] = trip
	f.members[trip.ID] = map[int]bool{ownerID: true}
	return trip
}

func (f *fakeStore) seedUser(email string) models.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	user := models.User{ID: f.id(), Email: email}
	f.users[user.ID] = user
	return user
}

type fakeTrips struct{ f *fakeStore }

func (t fakeTrips) Create(ctx context.Context, trip *models.Trip) error {
	t.f.mu.Lock()
	defer t.f.mu.Unlock()
	trip.ID = t.f.id()
	t.f.trips[trip.ID] = *trip
	return nil
}

func (t fakeTrips) GetByID(ctx context.Context, id int) (models.Trip, error) {
	t.f.mu.Lock()
	defer t.f.mu.Unlock()
	trip, ok := t.f.trips[id]
	if !ok {
		return models.Trip{}, store.ErrNotFound
	}
	return trip, nil
}

func (t fakeTrips) ListByMember(ctx context.Context, userID int) ([]models.Trip, error) {
	t.f.mu.Lock()
	defer t.f.mu.Unlock()
	trips := make([]models.Trip, 0)
	for tripID, members := range t.f.members {
		if members[userID] {
			trips = append(trips, t.f.trips[tripID])
		}
	}
	return trips, nil
}

func (t fakeTrips) Update(ctx context.Context, trip models.Trip) error {
	t.f.mu.Lock()
	defer t.f.mu.Unlock()
	if _, ok := t.f.trips[trip.ID]; !ok {
		return store.ErrNotFound
	}
	t.f.trips[trip.ID] = trip
	return nil
}

func (t fakeTrips) Delete(ctx context.Context, id int) error {
	t.f.mu.Lock()
	defer t.f.mu.Unlock()
	if _, ok := t.f.trips[id]; !ok {
		return store.ErrNotFound
	}
	delete(t.f.trips, id)
	return nil
}

type fakeMembers struct{ f *fakeStore }

func (m fakeMembers) IsMember(ctx context.Context, tripID, userID int) (bool, error) {
	m.f.mu.Lock()
	defer m.f.mu.Unlock()
	return m.f.members[tripID][userID], nil
}

func (m fakeMembers) AddMember(ctx context.Context, tripID, userID int) (models.TripMember, error) {
	m.f.mu.Lock()
	defer m.f.mu.Unlock()
	if m.f.members[tripID] == nil {
		m.f.members[tripID] = make(map[int]bool)
	}
	m.f.members[tripID][userID] = true
	return models.TripMember{ID: m.f.id(), TripID: tripID, UserID: userID}, nil
}

func (m fakeMembers) RemoveMember(ctx context.Context, tripID, userID int) error {
	m.f.mu.Lock()
	defer m.f.mu.Unlock()
	if !m.f.members[tripID][userID] {
		return store.ErrNotFound
	}
	delete(m.f.members[tripID], userID)
	return nil
}

func (m fakeMembers) CountMembers(ctx context.Context, tripID int) (int, error) {
	m.f.mu.Lock()
	defer m.f.mu.Unlock()
	return len(m.f.members[tripID]), nil
}

func (m fakeMembers) ListMemberIDs(ctx context.Context, tripID int) ([]int, error) {
	m.f.mu.Lock()
	defer m.f.mu.Unlock()
	ids := make([]int, 0)
	for id := range m.f.members[tripID] {
		ids = append(ids, id)
	}
	return ids, nil
}

type fakeInvites struct{ f *fakeStore }

func (i fakeInvites) Create(ctx context.Context, invite *models.TripInvitation) error {
	i.f.mu.Lock()
	defer i.f.mu.Unlock()
	invite.ID = i.f.id()
	i.f.invites[invite.ID] = *invite
	return nil
}

func (i fakeInvites) GetByID(ctx context.Context, id int) (models.TripInvitation, error) {
	i.f.mu.Lock()
	defer i.f.mu.Unlock()
	invite, ok := i.f.invites[id]
	if !ok {
		return models.TripInvitation{}, store.ErrNotFound
	}
	return invite, nil
}

func (i fakeInvites) GetByTokenHash(ctx context.Context, tokenHash string) (models.TripInvitation, error) {
	i.f.mu.Lock()
	defer i.f.mu.Unlock()
	for _, invite := range i.f.invites {
		if invite.Token == tokenHash {
			return invite, nil
		}
	}
	return models.TripInvitation{}, store.ErrNotFound
}

func (i fakeInvites) HasPending(ctx context.Context, tripID int, email string, now time.Time) (bool, error) {
	i.f.mu.Lock()
	defer i.f.mu.Unlock()
	for _, invite := range i.f.invites {
		if invite.TripID == tripID && invite.Email == email &&
			invite.Status == models.InviteStatusPending && now.Before(invite.ExpiresAt) {
			return true, nil
		}
	}
	return false, nil
}

func (i fakeInvites) ListPending(ctx context.Context, tripID int, now time.Time) ([]models.TripInvitation, error) {
	i.f.mu.Lock()
	defer i.f.mu.Unlock()
	invites := make([]models.TripInvitation, 0)
	for _, invite := range i.f.invites {
		if invite.TripID == tripID && invite.Status == models.InviteStatusPending && now.Before(invite.ExpiresAt) {
			invites = append(invites, invite)
		}
	}
	return invites, nil
}

func (i fakeInvites) MarkAccepted(ctx context.Context, id int) (bool, error) {
	i.f.mu.Lock()
	defer i.f.mu.Unlock()
	invite, ok := i.f.invites[id]
	if !ok || invite.Status != models.InviteStatusPending {
		return false, nil
	}
	invite.Status = models.InviteStatusAccepted
	i.f.invites[id] = invite
	return true, nil
}

func (i fakeInvites) Delete(ctx context.Context, id int) error {
	i.f.mu.Lock()
	defer i.f.mu.Unlock()
	if _, ok := i.f.invites[id]; !ok {
		return store.ErrNotFound
	}
	delete(i.f.invites, id)
	return nil
}

func (i fakeInvites) ExpireStale(ctx context.Context, now time.Time) (int64, error) {
	i.f.mu.Lock()
	defer i.f.mu.Unlock()
	var n int64
	for id, invite := range i.f.invites {
		if invite.Status == models.InviteStatusPending && now.After(invite.ExpiresAt) {
			invite.Status = models.InviteStatusExpired
			i.f.invites[id] = invite
			n++
		}
	}
	return n, nil
}

type fakeExpenses struct{ f *fakeStore }

func (e fakeExpenses) Create(ctx context.Context, expense *models.Expense) error {
	e.f.mu.Lock()
	defer e.f.mu.Unlock()
	expense.ID = e.f.id()
	e.f.expenses[expense.ID] = *expense
	return nil
}

func (e fakeExpenses) GetByID(ctx context.Context, id int) (models.Expense, error) {
	e.f.mu.Lock()
	defer e.f.mu.Unlock()
	expense, ok := e.f.expenses[id]
	if !ok {
		return models.Expense{}, store.ErrNotFound
	}
	return expense, nil
}

func (e fakeExpenses) ListByTrip(ctx context.Context, tripID int) ([]models.Expense, error) {
	e.f.mu.Lock()
	defer e.f.mu.Unlock()
	expenses := make([]models.Expense, 0)
	for _, expense := range e.f.expenses {
		if expense.TripID == tripID {
			expenses = append(expenses, expense)
		}
	}
	return expenses, nil
}

func (e fakeExpenses) Update(ctx context.Context, expense models.Expense) error {
	e.f.mu.Lock()
	defer e.f.mu.Unlock()
	if _, ok := e.f.expenses[expense.ID]; !ok {
		return store.ErrNotFound
	}
	e.f.expenses[expense.ID] = expense
	return nil
}

func (e fakeExpenses) Delete(ctx context.Context, id int) error {
	e.f.mu.Lock()
	defer e.f.mu.Unlock()
	if _, ok := e.f.expenses[id]; !ok {
		return store.ErrNotFound
	}
	delete(e.f.expenses, id)
	return nil
}

type fakeUsers struct{ f *fakeStore }

func (u fakeUsers) Create(ctx context.Context, user *models.User) error {
	u.f.mu.Lock()
	defer u.f.mu.Unlock()
	user.ID = u.f.id()
	u.f.users[user.ID] = *user
	return nil
}

func (u fakeUsers) GetByID(ctx context.Context, id int) (models.User, error) {
	u.f.mu.Lock()
	defer u.f.mu.Unlock()
	user, ok := u.f.users[id]
	if !ok {
		return models.User{}, store.ErrNotFound
	}
	return user, nil
}

func (u fakeUsers) GetByEmail(ctx context.Context, email string) (models.User, error) {
	u.f.mu.Lock()
	defer u.f.mu.Unlock()
	for _, user := range u.f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, store.ErrNotFound
}

func (u fakeUsers) GetByAccountID(ctx context.Context, accountID string) (models.User, error) {
	u.f.mu.Lock()
	defer u.f.mu.Unlock()
	for _, user := range u.f.users {
		if user.Email == accountID || user.Username == accountID {
			return user, nil
		}
	}
	return models.User{}, store.ErrNotFound
}
