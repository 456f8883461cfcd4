package handler

import (
	"github.com/gofiber/fiber/v2"

	"credtrack/internal/apperror"
	"credtrack/internal/service"
)

// UploadCompanyDocument stores an organization-wide document.
func UploadCompanyDocument(svc service.CompanyDocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
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

		doc, err := svc.Upload(c.UserContext(), in)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(doc)
	}
}

// ListCompanyDocuments returns every organization-wide document.
func ListCompanyDocuments(svc service.CompanyDocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		docs, err := svc.List(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(docs)
	}
}

// DeleteCompanyDocument removes one organization-wide document.
func DeleteCompanyDocument(svc service.CompanyDocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
