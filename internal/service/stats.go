package service

import (
	"context"

	"credtrack/internal/apperror"
	"credtrack/internal/repository"
)

// Statistics is a point-in-time rollup over the active space.
type Statistics struct {
	ActiveAccountCount  int            `json:"active_account_count"`
	DocumentCountByType map[string]int `json:"document_count_by_type"`
}

// StatsService recomputes the rollup on every call; nothing is cached.
type StatsService interface {
	Aggregate(ctx context.Context) (*Statistics, error)
}

type statsService struct {
	accounts  repository.AccountStore
	documents repository.DocumentStore
}

func NewStatsService(accounts repository.AccountStore, documents repository.DocumentStore) StatsService {
	return &statsService{accounts: accounts, documents: documents}
}

func (s *statsService) Aggregate(ctx context.Context) (*Statistics, error) {
	accountCount, err := s.accounts.Count(ctx)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodePersistence, "account count failed")
	}
	byType, err := s.documents.CountByType(ctx)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodePersistence, "document count failed")
	}
	return &Statistics{
		ActiveAccountCount:  accountCount,
		DocumentCountByType: byType,
	}, nil
}
