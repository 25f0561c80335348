package mysql

import (
	"context"
	"database/sql"

	"tripmate/internal/models"
	"tripmate/internal/store"
)

type userStore struct {
	q querier
}

const userColumns = "id, first_name, last_name, username, email, password, created_at, updated_at"

func (s *userStore) Create(ctx context.Context, user *models.User) error {
	res, err := s.q.ExecContext(ctx, `
		INSERT INTO users (first_name, last_name, username, email, password)
		VALUES (?, ?, ?, ?, ?)
	`, user.FirstName, user.LastName, user.Username, user.Email, user.Password)
	if err != nil {
		if isDuplicate(err) {
			return store.ErrConflict
		}
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	user.ID = int(id)
	return nil
}

func (s *userStore) GetByID(ctx context.Context, id int) (models.User, error) {
	return s.getOne(ctx, "WHERE id = ?", id)
}

func (s *userStore) GetByEmail(ctx context.Context, email string) (models.User, error) {
	return s.getOne(ctx, "WHERE email = ?", email)
}

// GetByAccountID resolves a login identifier that may be either a username or
// an email.
func (s *userStore) GetByAccountID(ctx context.Context, accountID string) (models.User, error) {
	var user models.User
	err := s.q.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE username = ? OR email = ?",
		accountID, accountID,
	).Scan(
		&user.ID, &user.FirstName, &user.LastName, &user.Username,
		&user.Email, &user.Password, &user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return models.User{}, store.ErrNotFound
	}
	return user, err
}

func (s *userStore) getOne(ctx context.Context, where string, arg any) (models.User, error) {
	var user models.User
	err := s.q.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users "+where, arg,
	).Scan(
		&user.ID, &user.FirstName, &user.LastName, &user.Username,
		&user.Email, &user.Password, &user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return models.User{}, store.ErrNotFound
	}
	return user, err
}
