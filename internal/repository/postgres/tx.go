package postgres

import (
	"context"
	"database/sql"
	"time"

	"credtrack/internal/repository"
)

const defaultTxTimeout = 5 * time.Second

// AtomicPostgres implements repository.AtomicStores over a database/sql
// transaction. The function argument receives stores bound to the transaction;
// every mutation through them commits together or not at all.
type AtomicPostgres struct {
	db      *sql.DB
	timeout time.Duration
}

func NewAtomicPostgres(db *sql.DB) *AtomicPostgres {
	return &AtomicPostgres{db: db}
}

var _ repository.AtomicStores = (*AtomicPostgres)(nil)

func (a *AtomicPostgres) RunInTx(ctx context.Context, fn func(tx repository.TxStores) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	timeout := a.timeout
	if timeout == 0 {
		timeout = defaultTxTimeout
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	// Read-committed (the driver default) is enough: the account re-read in
	// step 1 happens inside the transaction, so a second concurrent archival
	// of the same id observes the committed delete and fails NotFound.
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stores := repository.TxStores{
		Accounts:          NewAccountPostgres(tx),
		ArchivedAccounts:  NewArchivedAccountPostgres(tx),
		Documents:         NewDocumentPostgres(tx, repository.SpaceActive),
		ArchivedDocuments: NewDocumentPostgres(tx, repository.SpaceArchived),
	}

	if err := fn(stores); err != nil {
		return err
	}

	return tx.Commit()
}
