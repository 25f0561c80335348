package mysql

import (
	"context"
	"database/sql"
	"time"

	"tripmate/internal/models"
	"tripmate/internal/store"
)

// DATETIME columns are stored as UTC strings, matching the driver's default
// string mode.
const sqlTimeFormat = "2006-01-02 15:04:05"

type inviteStore struct {
	q querier
}

func (s *inviteStore) Create(ctx context.Context, invite *models.TripInvitation) error {
	res, err := s.q.ExecContext(ctx, `
		INSERT INTO trip_invitations (trip_id, email, token, status, invited_by, expires_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, invite.TripID, invite.Email, invite.Token, invite.Status, invite.InvitedBy,
		invite.ExpiresAt.UTC().Format(sqlTimeFormat))
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
	invite.ID = int(id)
	return nil
}

func (s *inviteStore) GetByID(ctx context.Context, id int) (models.TripInvitation, error) {
	return s.getOne(ctx, "WHERE id = ?", id)
}

func (s *inviteStore) GetByTokenHash(ctx context.Context, tokenHash string) (models.TripInvitation, error) {
	return s.getOne(ctx, "WHERE token = ?", tokenHash)
}

func (s *inviteStore) getOne(ctx context.Context, where string, arg any) (models.TripInvitation, error) {
	var invite models.TripInvitation
	var expiresAt string
	err := s.q.QueryRowContext(ctx, `
		SELECT id, trip_id, email, token, status, invited_by, expires_at, created_at
		FROM trip_invitations `+where, arg,
	).Scan(
		&invite.ID, &invite.TripID, &invite.Email, &invite.Token,
		&invite.Status, &invite.InvitedBy, &expiresAt, &invite.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return models.TripInvitation{}, store.ErrNotFound
	}
	if err != nil {
		return models.TripInvitation{}, err
	}

	invite.ExpiresAt, err = time.Parse(sqlTimeFormat, expiresAt)
	if err != nil {
		return models.TripInvitation{}, err
	}
	return invite, nil
}

func (s *inviteStore) HasPending(ctx context.Context, tripID int, email string, now time.Time) (bool, error) {
	// FOR UPDATE makes the check a locking read inside the create
	// transaction, serializing concurrent creates for the same email.
	var count int
	err := s.q.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM trip_invitations
		WHERE trip_id = ? AND email = ? AND status = ? AND expires_at > ?
		FOR UPDATE
	`, tripID, email, models.InviteStatusPending, now.UTC().Format(sqlTimeFormat)).Scan(&count)
	return count > 0, err
}

func (s *inviteStore) ListPending(ctx context.Context, tripID int, now time.Time) ([]models.TripInvitation, error) {
	rows, err := s.q.QueryContext(ctx, `
		SELECT id, trip_id, email, token, status, invited_by, expires_at, created_at
		FROM trip_invitations
		WHERE trip_id = ? AND status = ? AND expires_at > ?
		ORDER BY created_at DESC
	`, tripID, models.InviteStatusPending, now.UTC().Format(sqlTimeFormat))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invites := make([]models.TripInvitation, 0)
	for rows.Next() {
		var invite models.TripInvitation
		var expiresAt string
		if err := rows.Scan(
			&invite.ID, &invite.TripID, &invite.Email, &invite.Token,
			&invite.Status, &invite.InvitedBy, &expiresAt, &invite.CreatedAt,
		); err != nil {
			return nil, err
		}
		if invite.ExpiresAt, err = time.Parse(sqlTimeFormat, expiresAt); err != nil {
			return nil, err
		}
		invites = append(invites, invite)
	}
	return invites, rows.Err()
}

func (s *inviteStore) MarkAccepted(ctx context.Context, id int) (bool, error) {
	// The status predicate makes this the double-accept gate: only one
	// concurrent accept sees an affected row.
	res, err := s.q.ExecContext(ctx, `
		UPDATE trip_invitations SET status = ? WHERE id = ? AND status = ?
	`, models.InviteStatusAccepted, id, models.InviteStatusPending)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *inviteStore) Delete(ctx context.Context, id int) error {
	res, err := s.q.ExecContext(ctx, "DELETE FROM trip_invitations WHERE id = ?", id)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *inviteStore) ExpireStale(ctx context.Context, now time.Time) (int64, error) {
	res, err := s.q.ExecContext(ctx, `
		UPDATE trip_invitations SET status = ?
		WHERE expires_at < ? AND status = ?
	`, models.InviteStatusExpired, now.UTC().Format(sqlTimeFormat), models.InviteStatusPending)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
