package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"credtrack/internal/model"
	"credtrack/internal/repository"
)

func TestAtomicPostgres_CommitsOnSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM accounts WHERE id = ?").
		WithArgs("acct-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	atomic := NewAtomicPostgres(db)
	err = atomic.RunInTx(context.Background(), func(tx repository.TxStores) error {
		return tx.Accounts.Delete(context.Background(), "acct-1")
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAtomicPostgres_RollsBackOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO archived_accounts").
		WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	atomic := NewAtomicPostgres(db)
	err = atomic.RunInTx(context.Background(), func(tx repository.TxStores) error {
		_, err := tx.ArchivedAccounts.Create(context.Background(), &model.ArchivedAccount{
			ID: "arch-1", LoginID: "alopez", Role: model.RoleUser, ArchivedAt: time.Now(),
		})
		return err
	})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAtomicPostgres_CancelledContext(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	atomic := NewAtomicPostgres(db)
	err = atomic.RunInTx(ctx, func(tx repository.TxStores) error { return nil })

	assert.ErrorIs(t, err, context.Canceled)
}
