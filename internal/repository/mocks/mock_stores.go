package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"credtrack/internal/model"
	"credtrack/internal/repository"
)

type MockAccountStore struct {
	mock.Mock
}

func (m *MockAccountStore) Create(ctx context.Context, acct *model.Account) (*model.Account, error) {
	args := m.Called(ctx, acct)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *MockAccountStore) FindByID(ctx context.Context, id string) (*model.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *MockAccountStore) FindByLoginID(ctx context.Context, loginID string) (*model.Account, error) {
	args := m.Called(ctx, loginID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *MockAccountStore) ListByRole(ctx context.Context, role model.Role) ([]model.Account, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Account), args.Error(1)
}

func (m *MockAccountStore) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockAccountStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockArchivedAccountStore struct {
	mock.Mock
}

func (m *MockArchivedAccountStore) Create(ctx context.Context, acct *model.ArchivedAccount) (*model.ArchivedAccount, error) {
	args := m.Called(ctx, acct)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ArchivedAccount), args.Error(1)
}

func (m *MockArchivedAccountStore) FindByID(ctx context.Context, id string) (*model.ArchivedAccount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ArchivedAccount), args.Error(1)
}

type MockDocumentStore struct {
	mock.Mock
}

func (m *MockDocumentStore) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockDocumentStore) FindByID(ctx context.Context, id string) (*model.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockDocumentStore) ListByOwner(ctx context.Context, accountID string) ([]model.Document, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}

func (m *MockDocumentStore) CountByType(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *MockDocumentStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCompanyDocumentStore struct {
	mock.Mock
}

func (m *MockCompanyDocumentStore) Create(ctx context.Context, doc *model.CompanyDocument) (*model.CompanyDocument, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CompanyDocument), args.Error(1)
}

func (m *MockCompanyDocumentStore) FindByID(ctx context.Context, id string) (*model.CompanyDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CompanyDocument), args.Error(1)
}

func (m *MockCompanyDocumentStore) List(ctx context.Context) ([]model.CompanyDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CompanyDocument), args.Error(1)
}

func (m *MockCompanyDocumentStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// FakeAtomicStores runs the transaction body against a fixed set of stores,
// optionally failing at the begin or commit boundary. Rollback semantics are
// the callee's concern; tests assert only that no further store calls were
// made after a failure.
type FakeAtomicStores struct {
	Stores    repository.TxStores
	BeginErr  error
	CommitErr error
}

func (f *FakeAtomicStores) RunInTx(ctx context.Context, fn func(tx repository.TxStores) error) error {
	if f.BeginErr != nil {
		return f.BeginErr
	}
	if err := fn(f.Stores); err != nil {
		return err
	}
	return f.CommitErr
}
