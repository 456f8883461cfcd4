package postgres

import (
	"context"
	"database/sql"
	"errors"

	"credtrack/internal/apperror"
	"credtrack/internal/model"
	"credtrack/internal/repository"
)

// ArchivedAccountPostgres is a PostgreSQL implementation of
// repository.ArchivedAccountStore.
type ArchivedAccountPostgres struct {
	q Querier
}

func NewArchivedAccountPostgres(q Querier) *ArchivedAccountPostgres {
	return &ArchivedAccountPostgres{q: q}
}

var _ repository.ArchivedAccountStore = (*ArchivedAccountPostgres)(nil)

func (r *ArchivedAccountPostgres) Create(ctx context.Context, acct *model.ArchivedAccount) (*model.ArchivedAccount, error) {
	const q = `
		INSERT INTO archived_accounts (id, login_id, secret_hash, display_name, role, archived_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, login_id, secret_hash, display_name, role, archived_at
	`
	row := r.q.QueryRowContext(ctx, q,
		acct.ID, acct.LoginID, acct.SecretHash, acct.DisplayName, acct.Role, acct.ArchivedAt,
	)
	var out model.ArchivedAccount
	if err := row.Scan(&out.ID, &out.LoginID, &out.SecretHash, &out.DisplayName, &out.Role, &out.ArchivedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ArchivedAccountPostgres) FindByID(ctx context.Context, id string) (*model.ArchivedAccount, error) {
	const q = `
		SELECT id, login_id, secret_hash, display_name, role, archived_at
		FROM archived_accounts WHERE id = $1
	`
	row := r.q.QueryRowContext(ctx, q, id)
	var a model.ArchivedAccount
	if err := row.Scan(&a.ID, &a.LoginID, &a.SecretHash, &a.DisplayName, &a.Role, &a.ArchivedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.Wrap(err, apperror.CodeNotFound, "archived account not found")
		}
		return nil, err
	}
	return &a, nil
}
