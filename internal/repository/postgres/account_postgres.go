package postgres

import (
	"context"
	"database/sql"
	"errors"

	"credtrack/internal/apperror"
	"credtrack/internal/model"
	"credtrack/internal/repository"
)

// AccountPostgres is a PostgreSQL implementation of repository.AccountStore.
// It uses parameterized queries only and contains no business logic.
type AccountPostgres struct {
	q Querier
}

func NewAccountPostgres(q Querier) *AccountPostgres {
	return &AccountPostgres{q: q}
}

var _ repository.AccountStore = (*AccountPostgres)(nil)

const accountColumns = "id, login_id, secret_hash, display_name, role, created_at"

func scanAccount(row interface{ Scan(...any) error }) (*model.Account, error) {
	var a model.Account
	if err := row.Scan(&a.ID, &a.LoginID, &a.SecretHash, &a.DisplayName, &a.Role, &a.CreatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AccountPostgres) Create(ctx context.Context, acct *model.Account) (*model.Account, error) {
	const q = `
		INSERT INTO accounts (id, login_id, secret_hash, display_name, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + accountColumns
	row := r.q.QueryRowContext(ctx, q,
		acct.ID, acct.LoginID, acct.SecretHash, acct.DisplayName, acct.Role, acct.CreatedAt,
	)
	return scanAccount(row)
}

func (r *AccountPostgres) FindByID(ctx context.Context, id string) (*model.Account, error) {
	const q = `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	a, err := scanAccount(r.q.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.Wrap(err, apperror.CodeNotFound, "account not found")
		}
		return nil, err
	}
	return a, nil
}

func (r *AccountPostgres) FindByLoginID(ctx context.Context, loginID string) (*model.Account, error) {
	const q = `SELECT ` + accountColumns + ` FROM accounts WHERE login_id = $1`
	a, err := scanAccount(r.q.QueryRowContext(ctx, q, loginID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.Wrap(err, apperror.CodeNotFound, "account not found")
		}
		return nil, err
	}
	return a, nil
}

func (r *AccountPostgres) ListByRole(ctx context.Context, role model.Role) ([]model.Account, error) {
	const q = `SELECT ` + accountColumns + ` FROM accounts WHERE role = $1 ORDER BY display_name, id`
	rows, err := r.q.QueryContext(ctx, q, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := make([]model.Account, 0)
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *a)
	}
	return accounts, rows.Err()
}

func (r *AccountPostgres) Count(ctx context.Context) (int, error) {
	const q = `SELECT COUNT(*) FROM accounts`
	var n int
	if err := r.q.QueryRowContext(ctx, q).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Delete removes an account and reports NotFound when no row matched.
func (r *AccountPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM accounts WHERE id = $1`
	res, err := r.q.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperror.New(apperror.CodeNotFound, "account not found")
	}
	return nil
}
