package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// TxFunc is the unit of work run inside a transaction.
type TxFunc func(ctx context.Context, tx *sqlx.Tx) error

// Transactor runs a TxFunc in one database transaction. The transaction commits when
// fn returns nil and rolls back on error or panic.
type Transactor interface {
	WithTx(ctx context.Context, fn TxFunc) error
}

type transactorImpl struct {
	db *sqlx.DB
}

func NewTransactor(conn *Connection) Transactor {
	return &transactorImpl{db: conn.Write}
}

func (t *transactorImpl) WithTx(ctx context.Context, fn TxFunc) (err error) {
	tx, err := t.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			rollback(tx)
			panic(p)
		}

		if err != nil {
			rollback(tx)
		}
	}()

	if err = fn(ctx, tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func rollback(tx *sqlx.Tx) {
	if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
		log.Error().Err(rbErr).Msg("failed to rollback transaction")
	}
}
