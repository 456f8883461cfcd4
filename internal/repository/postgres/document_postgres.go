package postgres

import (
	"context"
	"database/sql"
	"errors"

	"credtrack/internal/apperror"
	"credtrack/internal/model"
	"credtrack/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentStore
// bound to exactly one document space. The table is resolved from the typed
// space constant at construction; request input never picks a table name.
type DocumentPostgres struct {
	q     Querier
	table string
}

func NewDocumentPostgres(q Querier, space repository.DocumentSpace) *DocumentPostgres {
	return &DocumentPostgres{q: q, table: documentTable(space)}
}

var _ repository.DocumentStore = (*DocumentPostgres)(nil)

func documentTable(space repository.DocumentSpace) string {
	switch space {
	case repository.SpaceArchived:
		return "archived_documents"
	default:
		return "documents"
	}
}

const documentColumns = "id, account_id, doc_type, storage_url, owner_name, resource_kind, expires_at, created_at"

func scanDocument(row interface{ Scan(...any) error }) (*model.Document, error) {
	var d model.Document
	if err := row.Scan(&d.ID, &d.AccountID, &d.DocType, &d.StorageURL, &d.OwnerName, &d.ResourceKind, &d.ExpiresAt, &d.CreatedAt); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DocumentPostgres) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	q := `
		INSERT INTO ` + r.table + ` (id, account_id, doc_type, storage_url, owner_name, resource_kind, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + documentColumns
	row := r.q.QueryRowContext(ctx, q,
		doc.ID, doc.AccountID, doc.DocType, doc.StorageURL, doc.OwnerName, doc.ResourceKind, doc.ExpiresAt, doc.CreatedAt,
	)
	return scanDocument(row)
}

func (r *DocumentPostgres) FindByID(ctx context.Context, id string) (*model.Document, error) {
	q := `SELECT ` + documentColumns + ` FROM ` + r.table + ` WHERE id = $1`
	d, err := scanDocument(r.q.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.Wrap(err, apperror.CodeNotFound, "document not found")
		}
		return nil, err
	}
	return d, nil
}

func (r *DocumentPostgres) ListByOwner(ctx context.Context, accountID string) ([]model.Document, error) {
	q := `SELECT ` + documentColumns + ` FROM ` + r.table + ` WHERE account_id = $1 ORDER BY created_at DESC, id DESC`
	rows, err := r.q.QueryContext(ctx, q, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := make([]model.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *d)
	}
	return docs, rows.Err()
}

func (r *DocumentPostgres) CountByType(ctx context.Context) (map[string]int, error) {
	q := `SELECT doc_type, COUNT(*) FROM ` + r.table + ` GROUP BY doc_type`
	rows, err := r.q.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var docType string
		var n int
		if err := rows.Scan(&docType, &n); err != nil {
			return nil, err
		}
		counts[docType] = n
	}
	return counts, rows.Err()
}

// Delete removes a document and reports NotFound when no row matched.
func (r *DocumentPostgres) Delete(ctx context.Context, id string) error {
	q := `DELETE FROM ` + r.table + ` WHERE id = $1`
	res, err := r.q.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperror.New(apperror.CodeNotFound, "document not found")
	}
	return nil
}
