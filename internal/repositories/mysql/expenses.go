package mysql

import (
	"context"
	"database/sql"

	"tripmate/internal/models"
	"tripmate/internal/store"
)

type expenseStore struct {
	q querier
}

func (s *expenseStore) Create(ctx context.Context, expense *models.Expense) error {
	res, err := s.q.ExecContext(ctx, `
		INSERT INTO expenses (trip_id, paid_by, title, amount, category)
		VALUES (?, ?, ?, ?, ?)
	`, expense.TripID, expense.PaidBy, expense.Title, expense.Amount, expense.Category)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	expense.ID = int(id)
	return nil
}

func (s *expenseStore) GetByID(ctx context.Context, id int) (models.Expense, error) {
	var expense models.Expense
	err := s.q.QueryRowContext(ctx, `
		SELECT id, trip_id, paid_by, title, amount, category, created_at
		FROM expenses WHERE id = ?
	`, id).Scan(
		&expense.ID, &expense.TripID, &expense.PaidBy, &expense.Title,
		&expense.Amount, &expense.Category, &expense.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return models.Expense{}, store.ErrNotFound
	}
	return expense, err
}

func (s *expenseStore) ListByTrip(ctx context.Context, tripID int) ([]models.Expense, error) {
	rows, err := s.q.QueryContext(ctx, `
		SELECT id, trip_id, paid_by, title, amount, category, created_at
		FROM expenses
		WHERE trip_id = ?
		ORDER BY created_at DESC
	`, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := make([]models.Expense, 0)
	for rows.Next() {
		var expense models.Expense
		if err := rows.Scan(
			&expense.ID, &expense.TripID, &expense.PaidBy, &expense.Title,
			&expense.Amount, &expense.Category, &expense.CreatedAt,
		); err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	return expenses, rows.Err()
}

func (s *expenseStore) Update(ctx context.Context, expense models.Expense) error {
	_, err := s.q.ExecContext(ctx, `
		UPDATE expenses SET title = ?, amount = ?, category = ? WHERE id = ?
	`, expense.Title, expense.Amount, expense.Category, expense.ID)
	return err
}

func (s *expenseStore) Delete(ctx context.Context, id int) error {
	res, err := s.q.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", id)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}
