package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"credtrack/internal/apperror"
	"credtrack/internal/classify"
	"credtrack/internal/model"
	"credtrack/internal/repository"
	"credtrack/internal/storage"
)

// CompanyDocumentService handles organization-wide documents. Same upload
// pipeline as employee documents, minus the owner.
type CompanyDocumentService interface {
	Upload(ctx context.Context, in UploadInput) (*model.CompanyDocument, error)
	List(ctx context.Context) ([]model.CompanyDocument, error)
	Delete(ctx context.Context, id string) error
}

type companyDocumentService struct {
	store      storage.Storage
	classifier *classify.Classifier
	repo       repository.CompanyDocumentStore
}

func NewCompanyDocumentService(store storage.Storage, classifier *classify.Classifier, repo repository.CompanyDocumentStore) CompanyDocumentService {
	return &companyDocumentService{store: store, classifier: classifier, repo: repo}
}

func (s *companyDocumentService) Upload(ctx context.Context, in UploadInput) (*model.CompanyDocument, error) {
	plan, key, err := planUpload(s.classifier, in)
	if err != nil {
		return nil, err
	}

	objInfo, err := s.store.Put(ctx, key, in.Reader, storage.PutObjectOptions{
		Size:        in.Size,
		ContentType: in.ContentType,
		Metadata: map[string]string{
			"original-filename": in.Filename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	doc := &model.CompanyDocument{
		ID:           uuid.NewString(),
		DocType:      in.DeclaredType,
		StorageURL:   objInfo.Key,
		ResourceKind: string(plan.ResourceKind),
		ExpiresAt:    in.ExpiresAt,
		CreatedAt:    time.Now().UTC(),
	}
	stored, err := s.repo.Create(ctx, doc)
	if err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, apperror.Wrap(err, apperror.CodePersistence, "company document save failed")
	}
	return stored, nil
}

func (s *companyDocumentService) List(ctx context.Context) ([]model.CompanyDocument, error) {
	docs, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodePersistence, "company document list failed")
	}
	return docs, nil
}

func (s *companyDocumentService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperror.New(apperror.CodeValidation, "document id is required")
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, doc.StorageURL); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	return s.repo.Delete(ctx, id)
}
