package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"credtrack/internal/apperror"
	"credtrack/internal/model"
	"credtrack/internal/repository"
)

// ArchiveService moves an employee and every document they own from the
// active space to the archived space as one atomic transition.
type ArchiveService interface {
	// Archive runs the transition for one account and returns the id minted
	// in the archived space. Fails with NotFound when the active-space id
	// does not exist, including when a prior call already archived it.
	Archive(ctx context.Context, accountID string) (string, error)
}

type archiveService struct {
	atomic repository.AtomicStores
}

func NewArchiveService(atomic repository.AtomicStores) ArchiveService {
	return &archiveService{atomic: atomic}
}

// Archive performs five writes inside one transaction: insert the archived
// account, copy each document with its owner rewritten, delete the active
// documents, delete the active account. Any failure rolls everything back and
// surfaces as TransactionError; the caller may retry safely because a
// committed prior attempt makes the in-transaction re-read fail NotFound.
func (s *archiveService) Archive(ctx context.Context, accountID string) (string, error) {
	if accountID == "" {
		return "", apperror.New(apperror.CodeValidation, "account id is required")
	}

	var archivedID string
	err := s.atomic.RunInTx(ctx, func(tx repository.TxStores) error {
		acct, err := tx.Accounts.FindByID(ctx, accountID)
		if err != nil {
			return err
		}

		archived, err := tx.ArchivedAccounts.Create(ctx, &model.ArchivedAccount{
			ID:          uuid.NewString(),
			LoginID:     acct.LoginID,
			SecretHash:  acct.SecretHash,
			DisplayName: acct.DisplayName,
			Role:        acct.Role,
			ArchivedAt:  time.Now().UTC(),
		})
		if err != nil {
			return err
		}

		docs, err := tx.Documents.ListByOwner(ctx, accountID)
		if err != nil {
			return err
		}

		// Copy first, then delete, so a failure partway through never leaves
		// a document present in neither space once the rollback runs.
		for _, doc := range docs {
			moved := doc
			moved.ID = uuid.NewString()
			moved.AccountID = archived.ID
			if _, err := tx.ArchivedDocuments.Create(ctx, &moved); err != nil {
				return err
			}
		}
		for _, doc := range docs {
			if err := tx.Documents.Delete(ctx, doc.ID); err != nil {
				return err
			}
		}

		if err := tx.Accounts.Delete(ctx, accountID); err != nil {
			return err
		}

		archivedID = archived.ID
		return nil
	})
	if err != nil {
		// A missing account is the caller's mistake, not a broken transaction.
		if apperror.HasCode(err, apperror.CodeNotFound) {
			return "", err
		}
		return "", apperror.Wrap(err, apperror.CodeTransaction, "archival transition failed")
	}
	return archivedID, nil
}
