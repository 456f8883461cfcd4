package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"credtrack/internal/model"
	"credtrack/internal/repository"
	"credtrack/internal/service"
)

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) Login(ctx context.Context, loginID, secret string) (*service.LoginResult, error) {
	args := m.Called(ctx, loginID, secret)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LoginResult), args.Error(1)
}

func (m *MockAccountService) Create(ctx context.Context, in service.CreateAccountInput) (*model.Account, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *MockAccountService) ListEmployees(ctx context.Context) ([]model.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Account), args.Error(1)
}

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Upload(ctx context.Context, ownerID string, in service.UploadInput) (*model.Document, error) {
	args := m.Called(ctx, ownerID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockDocumentService) ListByOwner(ctx context.Context, accountID string, space repository.DocumentSpace) ([]model.Document, error) {
	args := m.Called(ctx, accountID, space)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}

func (m *MockDocumentService) Delete(ctx context.Context, id string, space repository.DocumentSpace) error {
	args := m.Called(ctx, id, space)
	return args.Error(0)
}

type MockArchiveService struct {
	mock.Mock
}

func (m *MockArchiveService) Archive(ctx context.Context, accountID string) (string, error) {
	args := m.Called(ctx, accountID)
	return args.String(0), args.Error(1)
}

type MockCompanyDocumentService struct {
	mock.Mock
}

func (m *MockCompanyDocumentService) Upload(ctx context.Context, in service.UploadInput) (*model.CompanyDocument, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CompanyDocument), args.Error(1)
}

func (m *MockCompanyDocumentService) List(ctx context.Context) ([]model.CompanyDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CompanyDocument), args.Error(1)
}

func (m *MockCompanyDocumentService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) Aggregate(ctx context.Context) (*service.Statistics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Statistics), args.Error(1)
}
