package postgres

import (
	"context"
	"database/sql"
	"errors"

	"credtrack/internal/apperror"
	"credtrack/internal/model"
	"credtrack/internal/repository"
)

// CompanyDocumentPostgres is a PostgreSQL implementation of
// repository.CompanyDocumentStore.
type CompanyDocumentPostgres struct {
	q Querier
}

func NewCompanyDocumentPostgres(q Querier) *CompanyDocumentPostgres {
	return &CompanyDocumentPostgres{q: q}
}

var _ repository.CompanyDocumentStore = (*CompanyDocumentPostgres)(nil)

const companyColumns = "id, doc_type, storage_url, resource_kind, expires_at, created_at"

func (r *CompanyDocumentPostgres) Create(ctx context.Context, doc *model.CompanyDocument) (*model.CompanyDocument, error) {
	const q = `
		INSERT INTO company_documents (id, doc_type, storage_url, resource_kind, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + companyColumns
	row := r.q.QueryRowContext(ctx, q,
		doc.ID, doc.DocType, doc.StorageURL, doc.ResourceKind, doc.ExpiresAt, doc.CreatedAt,
	)
	var out model.CompanyDocument
	if err := row.Scan(&out.ID, &out.DocType, &out.StorageURL, &out.ResourceKind, &out.ExpiresAt, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *CompanyDocumentPostgres) FindByID(ctx context.Context, id string) (*model.CompanyDocument, error) {
	const q = `SELECT ` + companyColumns + ` FROM company_documents WHERE id = $1`
	row := r.q.QueryRowContext(ctx, q, id)
	var d model.CompanyDocument
	if err := row.Scan(&d.ID, &d.DocType, &d.StorageURL, &d.ResourceKind, &d.ExpiresAt, &d.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.Wrap(err, apperror.CodeNotFound, "company document not found")
		}
		return nil, err
	}
	return &d, nil
}

func (r *CompanyDocumentPostgres) List(ctx context.Context) ([]model.CompanyDocument, error) {
	const q = `SELECT ` + companyColumns + ` FROM company_documents ORDER BY created_at DESC, id DESC`
	rows, err := r.q.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := make([]model.CompanyDocument, 0)
	for rows.Next() {
		var d model.CompanyDocument
		if err := rows.Scan(&d.ID, &d.DocType, &d.StorageURL, &d.ResourceKind, &d.ExpiresAt, &d.CreatedAt); err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// Delete removes a company document and reports NotFound when no row matched.
func (r *CompanyDocumentPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM company_documents WHERE id = $1`
	res, err := r.q.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperror.New(apperror.CodeNotFound, "company document not found")
	}
	return nil
}
