// Package mysql implements the store contracts over database/sql. A Store is
// either bound to the *sql.DB directly or, inside WithTx, to a single
// transaction, so the same query code serves both paths.
package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"tripmate/internal/store"
	"tripmate/pkg/utils"
)

// querier is the subset of *sql.DB and *sql.Tx the stores use.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db *sql.DB
	q  querier
}

func New(db *sql.DB) *Store {
	return &Store{db: db, q: db}
}

func (s *Store) Trips() store.TripStore         { return &tripStore{q: s.q} }
func (s *Store) Members() store.MembershipStore { return &membershipStore{q: s.q} }
func (s *Store) Invites() store.InviteStore     { return &inviteStore{q: s.q} }
func (s *Store) Expenses() store.ExpenseStore   { return &expenseStore{q: s.q} }
func (s *Store) Users() store.UserStore         { return &userStore{q: s.q} }

func (s *Store) WithTx(ctx context.Context, fn func(tx store.Store) error) error {
	if s.db == nil {
		// Already inside a transaction; nested calls share it.
		return fn(s)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	if err := fn(&Store{q: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			utils.Logger.Errorf("rollback failed: %v", rbErr)
		}
		if isLockConflict(err) {
			return fmt.Errorf("%w: %v", store.ErrBusy, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		tx.Rollback()
		if isLockConflict(err) {
			return fmt.Errorf("%w: %v", store.ErrBusy, err)
		}
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

const (
	mysqlDuplicateEntry  = 1062
	mysqlLockWaitExpired = 1205
	mysqlDeadlock        = 1213
)

func isDuplicate(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == mysqlDuplicateEntry
}

func isLockConflict(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && (me.Number == mysqlDeadlock || me.Number == mysqlLockWaitExpired)
}
