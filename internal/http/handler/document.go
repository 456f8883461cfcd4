package handler

import (
	"mime/multipart"
	"time"

	"github.com/gofiber/fiber/v2"

	"credtrack/internal/apperror"
	"credtrack/internal/http/middleware"
	"credtrack/internal/repository"
	"credtrack/internal/service"
)

// uploadInputFromForm builds the service input from a multipart request.
// Field names: file, doc_type, expires_at (optional, YYYY-MM-DD).
func uploadInputFromForm(c *fiber.Ctx) (service.UploadInput, *multipart.FileHeader, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return service.UploadInput{}, nil, apperror.New(apperror.CodeValidation, "file is required")
	}

	in := service.UploadInput{
		DeclaredType: c.FormValue("doc_type"),
		Filename:     fh.Filename,
		ContentType:  fh.Header.Get("Content-Type"),
		Size:         fh.Size,
	}
	if in.ContentType == "" {
		in.ContentType = "application/octet-stream"
	}
	if v := c.FormValue("expires_at"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return service.UploadInput{}, nil, apperror.New(apperror.CodeValidation, "expires_at must be YYYY-MM-DD")
		}
		in.ExpiresAt = &t
	}
	return in, fh, nil
}

// UploadDocument stores a compliance document for the authenticated caller.
func UploadDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := middleware.IdentityFromCtx(c)
		if !ok {
			return apperror.New(apperror.CodeUnauthenticated, "missing bearer token")
		}

		in, fh, err := uploadInputFromForm(c)
		if err != nil {
			return err
		}
		f, err := fh.Open()
		if err != nil {
			return apperror.New(apperror.CodeValidation, "cannot open uploaded file")
		}
		defer f.Close()
		in.Reader = f

		doc, err := svc.Upload(c.UserContext(), id.AccountID, in)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(doc)
	}
}

// spaceFromQuery parses the ?space= selector into its typed value once;
// only the typed value travels further.
func spaceFromQuery(c *fiber.Ctx) (repository.DocumentSpace, error) {
	space, ok := repository.ParseSpace(c.Query("space"))
	if !ok {
		return repository.SpaceActive, apperror.New(apperror.CodeValidation, "space must be active or archived")
	}
	return space, nil
}

// ListAccountDocuments returns one account's documents from the chosen space.
func ListAccountDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		space, err := spaceFromQuery(c)
		if err != nil {
			return err
		}
		docs, err := svc.ListByOwner(c.UserContext(), c.Params("accountId"), space)
		if err != nil {
			return err
		}
		return c.JSON(docs)
	}
}

// DeleteDocument removes one document from the chosen space.
func DeleteDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		space, err := spaceFromQuery(c)
		if err != nil {
			return err
		}
		if err := svc.Delete(c.UserContext(), c.Params("id"), space); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
