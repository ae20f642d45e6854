// Package store holds the purchase transaction and the account balance
// operations. Controllers stay thin; everything with an invariant to
// keep lives here.
package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// balanceCheckViolated reports whether err is the balance >= 0 check
// constraint firing. The conditional UPDATE already guards against
// underflow; the constraint is the storage-level backstop.
func balanceCheckViolated(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23514" ||
		errors.Is(err, gorm.ErrCheckConstraintViolated)
}
