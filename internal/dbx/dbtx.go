// Package dbx decouples repositories from the transaction boundary. Each
// repository is written against DBTX and does not know whether it runs on a
// live connection or inside a transaction; services choose per call, using
// WithTx when several mutations must land together (closing a combo record
// credits the deposit, deletes the record and appends the ledger event as
// one unit).
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the slice of database/sql that repositories use. Both *sql.DB and
// *sql.Tx satisfy it.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx runs fn inside a transaction: commit when fn returns nil, rollback
// when it returns an error or panics. Panics are rethrown after rollback.
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//	    if err := combos.NewPostgresRepository(tx).Delete(ctx, address); err != nil {
//	        return err
//	    }
//	    return events.NewPostgresRepository(tx).Append(ctx, ev)
//	})
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	err = fn(ctx, tx)
	return err
}
