package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"credtrack/internal/apperror"
	"credtrack/internal/classify"
	"credtrack/internal/model"
	"credtrack/internal/repository"
	"credtrack/internal/storage"
)

// artifactPrefix is the folder every credential object lives under in the bucket.
const artifactPrefix = "credentials"

// UploadInput carries one multipart upload.
type UploadInput struct {
	DeclaredType string
	Filename     string
	ContentType  string
	Size         int64
	Reader       io.Reader
	ExpiresAt    *time.Time
}

// DocumentService handles uploads and space-scoped document access. The
// artifact bytes always reach object storage before any row is written, so no
// database transaction ever spans network I/O to the object store.
type DocumentService interface {
	// Upload classifies the artifact, streams it to object storage, and
	// persists its metadata for the owning account.
	Upload(ctx context.Context, ownerID string, in UploadInput) (*model.Document, error)

	// ListByOwner returns one account's documents from the chosen space.
	ListByOwner(ctx context.Context, accountID string, space repository.DocumentSpace) ([]model.Document, error)

	// Delete removes one document from the chosen space along with its
	// stored artifact.
	Delete(ctx context.Context, id string, space repository.DocumentSpace) error
}

type documentService struct {
	store      storage.Storage
	classifier *classify.Classifier
	active     repository.DocumentStore
	archived   repository.DocumentStore
	accounts   repository.AccountStore
}

func NewDocumentService(
	store storage.Storage,
	classifier *classify.Classifier,
	active repository.DocumentStore,
	archived repository.DocumentStore,
	accounts repository.AccountStore,
) DocumentService {
	return &documentService{
		store:      store,
		classifier: classifier,
		active:     active,
		archived:   archived,
		accounts:   accounts,
	}
}

func (s *documentService) bySpace(space repository.DocumentSpace) repository.DocumentStore {
	if space == repository.SpaceArchived {
		return s.archived
	}
	return s.active
}

func (s *documentService) Upload(ctx context.Context, ownerID string, in UploadInput) (*model.Document, error) {
	plan, key, err := planUpload(s.classifier, in)
	if err != nil {
		return nil, err
	}

	owner, err := s.accounts.FindByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	// Object first, row second; a failed row insert rolls the object back.
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

	doc := &model.Document{
		ID:           uuid.NewString(),
		AccountID:    owner.ID,
		DocType:      in.DeclaredType,
		StorageURL:   objInfo.Key,
		OwnerName:    owner.DisplayName,
		ResourceKind: string(plan.ResourceKind),
		ExpiresAt:    in.ExpiresAt,
		CreatedAt:    time.Now().UTC(),
	}
	stored, err := s.active.Create(ctx, doc)
	if err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, apperror.Wrap(err, apperror.CodePersistence, "document save failed")
	}
	return stored, nil
}

func (s *documentService) ListByOwner(ctx context.Context, accountID string, space repository.DocumentSpace) ([]model.Document, error) {
	if accountID == "" {
		return nil, apperror.New(apperror.CodeValidation, "account id is required")
	}
	docs, err := s.bySpace(space).ListByOwner(ctx, accountID)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodePersistence, "document list failed")
	}
	return docs, nil
}

func (s *documentService) Delete(ctx context.Context, id string, space repository.DocumentSpace) error {
	if id == "" {
		return apperror.New(apperror.CodeValidation, "document id is required")
	}
	repo := s.bySpace(space)

	doc, err := repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	// Storage first; if this fails the row keeps pointing at a real object.
	if err := s.store.Delete(ctx, doc.StorageURL); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	return repo.Delete(ctx, id)
}

// planUpload validates the input, runs classification, and builds the object
// key. Shared with the company document flow.
func planUpload(classifier *classify.Classifier, in UploadInput) (classify.StoragePlan, string, error) {
	if in.Reader == nil {
		return classify.StoragePlan{}, "", apperror.New(apperror.CodeValidation, "file is required")
	}
	if in.DeclaredType == "" {
		return classify.StoragePlan{}, "", apperror.New(apperror.CodeValidation, "document type is required")
	}

	plan := classifier.Classify(in.DeclaredType, in.ContentType, in.Filename)
	if !plan.Accept {
		return classify.StoragePlan{}, "", apperror.New(plan.Reason, "file must be a PDF")
	}

	ext := plan.Format
	if ext == "" {
		ext = strings.TrimPrefix(path.Ext(in.Filename), ".")
	}
	key := artifactPrefix + "/" + plan.CanonicalName
	if ext != "" {
		key += "." + ext
	}
	return plan, key, nil
}
