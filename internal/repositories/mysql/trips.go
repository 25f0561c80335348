package mysql

import (
	"context"
	"database/sql"

	"tripmate/internal/models"
	"tripmate/internal/store"
)

type tripStore struct {
	q querier
}

func (s *tripStore) Create(ctx context.Context, trip *models.Trip) error {
	res, err := s.q.ExecContext(ctx, `
		INSERT INTO trips (name, description, location, start_date, end_date, owner_id)
		VALUES (?, ?, ?, ?, ?, ?)
	`, trip.Name, trip.Description, trip.Location, trip.StartDate, trip.EndDate, trip.OwnerID)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	trip.ID = int(id)
	return nil
}

func (s *tripStore) GetByID(ctx context.Context, id int) (models.Trip, error) {
	var trip models.Trip
	err := s.q.QueryRowContext(ctx, `
		SELECT id, name, description, location, start_date, end_date, owner_id, created_at, updated_at
		FROM trips WHERE id = ?
	`, id).Scan(
		&trip.ID, &trip.Name, &trip.Description, &trip.Location,
		&trip.StartDate, &trip.EndDate, &trip.OwnerID,
		&trip.CreatedAt, &trip.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return models.Trip{}, store.ErrNotFound
	}
	return trip, err
}

func (s *tripStore) ListByMember(ctx context.Context, userID int) ([]models.Trip, error) {
	rows, err := s.q.QueryContext(ctx, `
		SELECT t.id, t.name, t.description, t.location, t.start_date, t.end_date, t.owner_id, t.created_at, t.updated_at
		FROM trips t
		JOIN trip_members m ON m.trip_id = t.id
		WHERE m.user_id = ?
		ORDER BY t.start_date
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trips := make([]models.Trip, 0)
	for rows.Next() {
		var trip models.Trip
		if err := rows.Scan(
			&trip.ID, &trip.Name, &trip.Description, &trip.Location,
			&trip.StartDate, &trip.EndDate, &trip.OwnerID,
			&trip.CreatedAt, &trip.UpdatedAt,
		); err != nil {
			return nil, err
		}
		trips = append(trips, trip)
	}
	return trips, rows.Err()
}

func (s *tripStore) Update(ctx context.Context, trip models.Trip) error {
	res, err := s.q.ExecContext(ctx, `
		UPDATE trips SET name = ?, description = ?, location = ?, start_date = ?, end_date = ?
		WHERE id = ?
	`, trip.Name, trip.Description, trip.Location, trip.StartDate, trip.EndDate, trip.ID)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		// RowsAffected is also 0 for a no-change update, so confirm the row
		// exists before reporting NotFound.
		if _, err := s.GetByID(ctx, trip.ID); err != nil {
			return err
		}
	}
	return nil
}

func (s *tripStore) Delete(ctx context.Context, id int) error {
	res, err := s.q.ExecContext(ctx, "DELETE FROM trips WHERE id = ?", id)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}
