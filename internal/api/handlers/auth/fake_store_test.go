package auth

import (
	"context"
	"sync"

	"tripmate/internal/models"
	"tripmate/internal/store"
)

// fakeStore backs the handler tests with just the user table; the auth
// handlers never touch the other stores.
type fakeStore struct {
	mu     sync.Mutex
	nextID int
	users  map[int]models.User
}

func newFakeStore() *fakeStore {
	return &fakeStore{users: make(map[int]models.User)}
}

func (f *fakeStore) Trips() store.TripStore         { return nil }
func (f *fakeStore) Members() store.MembershipStore { return nil }
func (f *fakeStore) Invites() store.InviteStore     { return nil }
func (f *fakeStore) Expenses() store.ExpenseStore   { return nil }
func (f *fakeStore) Users() store.UserStore         { return fakeUsers{f} }

func (f *fakeStore) WithTx(ctx context.Context, fn func(tx store.Store) error) error {
	return fn(f)
}

type fakeUsers struct{ f *fakeStore }

func (u fakeUsers) Create(ctx context.Context, user *models.User) error {
	u.f.mu.Lock()
	defer u.f.mu.Unlock()
	for _, existing := range u.f.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return store.ErrConflict
		}
	}
	u.f.nextID++
	user.ID = u.f.nextID
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
