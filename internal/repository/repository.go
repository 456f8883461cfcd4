// Package repository contains the data access layer abstractions. It defines
// the per-entity stores, the typed selector between the active and archived
// document spaces, and the atomic-transaction capability used by the archival
// transition. Implementations live in subpackages (e.g., postgres).
package repository

import (
	"context"

	"credtrack/internal/model"
)

// DocumentSpace is a closed, typed choice between the two document tables.
// Implementations resolve it through an exhaustive switch; a caller-supplied
// string never reaches a query.
type DocumentSpace int

const (
	SpaceActive DocumentSpace = iota
	SpaceArchived
)

// ParseSpace maps the request-level space selector to its typed value.
// The zero value (active) is returned for anything unrecognized along with ok=false.
func ParseSpace(s string) (DocumentSpace, bool) {
	switch s {
	case "", "active":
		return SpaceActive, true
	case "archived":
		return SpaceArchived, true
	default:
		return SpaceActive, false
	}
}

// AccountStore persists active accounts.
// Delete reports NotFound when the id does not exist, so callers can
// distinguish "already gone" from "deleted".
type AccountStore interface {
	Create(ctx context.Context, acct *model.Account) (*model.Account, error)
	FindByID(ctx context.Context, id string) (*model.Account, error)
	FindByLoginID(ctx context.Context, loginID string) (*model.Account, error)
	ListByRole(ctx context.Context, role model.Role) ([]model.Account, error)
	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, id string) error
}

// ArchivedAccountStore persists former accounts. The archived space is
// append-only apart from reads; nothing moves back to the active space.
type ArchivedAccountStore interface {
	Create(ctx context.Context, acct *model.ArchivedAccount) (*model.ArchivedAccount, error)
	FindByID(ctx context.Context, id string) (*model.ArchivedAccount, error)
}

// DocumentStore persists documents in exactly one space, fixed at
// construction time by a DocumentSpace value.
type DocumentStore interface {
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)
	FindByID(ctx context.Context, id string) (*model.Document, error)
	ListByOwner(ctx context.Context, accountID string) ([]model.Document, error)
	CountByType(ctx context.Context) (map[string]int, error)
	Delete(ctx context.Context, id string) error
}

// CompanyDocumentStore persists organization-wide documents.
type CompanyDocumentStore interface {
	Create(ctx context.Context, doc *model.CompanyDocument) (*model.CompanyDocument, error)
	FindByID(ctx context.Context, id string) (*model.CompanyDocument, error)
	List(ctx context.Context) ([]model.CompanyDocument, error)
	Delete(ctx context.Context, id string) error
}

// TxStores exposes every store touched by the archival transition, scoped to
// one in-flight transaction.
type TxStores struct {
	Accounts          AccountStore
	ArchivedAccounts  ArchivedAccountStore
	Documents         DocumentStore
	ArchivedDocuments DocumentStore
}

// AtomicStores runs fn inside a single transaction boundary: every store
// mutation made through the TxStores argument commits together or not at all.
// Implementations roll back on any error from fn and on commit failure.
type AtomicStores interface {
	RunInTx(ctx context.Context, fn func(tx TxStores) error) error
}
