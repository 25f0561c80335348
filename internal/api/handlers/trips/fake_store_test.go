package trips

import (
	"context"
	"sync"

	"tripmate/internal/models"
	"tripmate/internal/store"
)

// fakeStore backs the handler tests with just the trip and membership
// tables. The other sub-stores are never reached by the handlers under test.
type fakeStore struct {
	mu      sync.Mutex
	nextID  int
	trips   map[int]models.Trip
	members map[int]map[int]bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		trips:   make(map[int]models.Trip),
		members: make(map[int]map[int]bool),
	}
}

func (f *fakeStore) Trips() store.TripStore         { return fakeTrips{f} }
func (f *fakeStore) Members() store.MembershipStore { return fakeMembers{f} }
func (f *fakeStore) Invites() store.InviteStore     { return nil }
func (f *fakeStore) Expenses() store.ExpenseStore   { return nil }
func (f *fakeStore) Users() store.UserStore         { return nil }

func (f *fakeStore) WithTx(ctx context.Context, fn func(tx store.Store) error) error {
	return fn(f)
}

type fakeTrips struct{ f *fakeStore }

func (t fakeTrips) Create(ctx context.Context, trip *models.Trip) error {
	t.f.mu.Lock()
	defer t.f.mu.Unlock()
	t.f.nextID++
	trip.ID = t.f.nextID
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
	for id, trip := range t.f.trips {
		if t.f.members[id][userID] {
			trips = append(trips, trip)
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
	m.f.nextID++
	return models.TripMember{ID: m.f.nextID, TripID: tripID, UserID: userID}, nil
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
