// repository/store.go
package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/clublibertad/clubfees-backend/services"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx so the same queries can run
// inside and outside a transaction.
type DBTX interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// Store implements services.Store on top of PostgreSQL.
type Store struct {
	db *sql.DB // nil when the store is transaction-scoped
	q  DBTX
}

// NewStore creates a store over the shared database connection
func NewStore(db *sql.DB) *Store {
	return &Store{db: db, q: db}
}

// InTx runs fn against a transaction-scoped store. If the store is already
// transaction-scoped, fn joins the current transaction.
func (s *Store) InTx(fn func(services.Store) error) error {
	if s.db == nil {
		return fn(s)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	if err := fn(&Store{q: tx}); err != nil {
		return err
	}

	return tx.Commit()
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation (error code 23505)
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
