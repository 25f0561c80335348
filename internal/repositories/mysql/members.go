package mysql

import (
	"context"

	"tripmate/internal/models"
	"tripmate/internal/store"
)

type membershipStore struct {
	q querier
}

func (s *membershipStore) IsMember(ctx context.Context, tripID, userID int) (bool, error) {
	var exists bool
	err := s.q.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM trip_members WHERE trip_id = ? AND user_id = ?)",
		tripID, userID,
	).Scan(&exists)
	return exists, err
}

func (s *membershipStore) AddMember(ctx context.Context, tripID, userID int) (models.TripMember, error) {
	// The unique key on (trip_id, user_id) makes re-adding a no-op, which is
	// what protects a double-accept from inserting a second row.
	_, err := s.q.ExecContext(ctx, `
		INSERT INTO trip_members (trip_id, user_id) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE user_id = user_id
	`, tripID, userID)
	if err != nil {
		return models.TripMember{}, err
	}

	// Read the row back rather than trusting LastInsertId, which is zero on
	// the duplicate-key path.
	var member models.TripMember
	err = s.q.QueryRowContext(ctx,
		"SELECT id, trip_id, user_id, added_at FROM trip_members WHERE trip_id = ? AND user_id = ?",
		tripID, userID,
	).Scan(&member.ID, &member.TripID, &member.UserID, &member.AddedAt)
	return member, err
}

func (s *membershipStore) RemoveMember(ctx context.Context, tripID, userID int) error {
	res, err := s.q.ExecContext(ctx,
		"DELETE FROM trip_members WHERE trip_id = ? AND user_id = ?",
		tripID, userID,
	)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *membershipStore) CountMembers(ctx context.Context, tripID int) (int, error) {
	var count int
	err := s.q.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM trip_members WHERE trip_id = ?", tripID,
	).Scan(&count)
	return count, err
}

func (s *membershipStore) ListMemberIDs(ctx context.Context, tripID int) ([]int, error) {
	rows, err := s.q.QueryContext(ctx,
		"SELECT user_id FROM trip_members WHERE trip_id = ?", tripID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]int, 0)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
