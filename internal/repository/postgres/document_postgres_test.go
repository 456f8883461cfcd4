package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"credtrack/internal/apperror"
	"credtrack/internal/model"
	"credtrack/internal/repository"
)

var documentCols = []string{"id", "account_id", "doc_type", "storage_url", "owner_name", "resource_kind", "expires_at", "created_at"}

func TestDocumentPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDocumentPostgres(db, repository.SpaceActive)
	ctx := context.Background()

	now := time.Now().UTC()
	doc := &model.Document{
		ID:           "doc-1",
		AccountID:    "acct-1",
		DocType:      "license",
		StorageURL:   "https://objects/credentials/license_1.pdf",
		OwnerName:    "A. Lopez",
		ResourceKind: "document-viewable",
		CreatedAt:    now,
	}

	rows := sqlmock.NewRows(documentCols).
		AddRow(doc.ID, doc.AccountID, doc.DocType, doc.StorageURL, doc.OwnerName, doc.ResourceKind, nil, doc.CreatedAt)

	mock.ExpectQuery("INSERT INTO documents").
		WithArgs(doc.ID, doc.AccountID, doc.DocType, doc.StorageURL, doc.OwnerName, doc.ResourceKind, doc.ExpiresAt, doc.CreatedAt).
		WillReturnRows(rows)

	out, err := repo.Create(ctx, doc)

	assert.NoError(t, err)
	assert.Equal(t, doc.ID, out.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_SpaceSelectsTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM archived_documents WHERE account_id = ?").
		WithArgs("arch-1").
		WillReturnRows(sqlmock.NewRows(documentCols).
			AddRow("doc-1", "arch-1", "license", "url", "A. Lopez", "raw-binary", nil, time.Now()))

	archived := NewDocumentPostgres(db, repository.SpaceArchived)
	docs, err := archived.ListByOwner(ctx, "arch-1")

	assert.NoError(t, err)
	assert.Len(t, docs, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_FindByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDocumentPostgres(db, repository.SpaceActive)

	mock.ExpectQuery("SELECT (.+) FROM documents WHERE id = ?").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	doc, err := repo.FindByID(context.Background(), "missing")

	assert.Nil(t, doc)
	assert.True(t, apperror.HasCode(err, apperror.CodeNotFound))
}

func TestDocumentPostgres_CountByType(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDocumentPostgres(db, repository.SpaceActive)

	mock.ExpectQuery("SELECT doc_type, COUNT\\(\\*\\) FROM documents GROUP BY doc_type").
		WillReturnRows(sqlmock.NewRows([]string{"doc_type", "count"}).
			AddRow("license", 3).
			AddRow("certification", 1))

	counts, err := repo.CountByType(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, map[string]int{"license": 3, "certification": 1}, counts)
}

func TestDocumentPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDocumentPostgres(db, repository.SpaceActive)
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM documents WHERE id = ?").
			WithArgs("doc-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, "doc-1"))
	})

	t.Run("missing row is NotFound", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM documents WHERE id = ?").
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(ctx, "missing")
		assert.True(t, apperror.HasCode(err, apperror.CodeNotFound))
	})
}

func TestParseSpace(t *testing.T) {
	tests := []struct {
		in     string
		want   repository.DocumentSpace
		wantOK bool
	}{
		{"", repository.SpaceActive, true},
		{"active", repository.SpaceActive, true},
		{"archived", repository.SpaceArchived, true},
		{"documents; DROP TABLE documents", repository.SpaceActive, false},
	}
	for _, tt := range tests {
		got, ok := repository.ParseSpace(tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
		assert.Equal(t, tt.wantOK, ok, "input %q", tt.in)
	}
}
