package handler

import (
	"github.com/gofiber/fiber/v2"

	"credtrack/internal/apperror"
	"credtrack/internal/service"
)

type loginRequest struct {
	LoginID string `json:"login_id"`
	Secret  string `json:"secret"`
}

// Login verifies a credential and returns a signed token plus the account's
// role and display name.
func Login(svc service.AccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req loginRequest
		if err := c.BodyParser(&req); err != nil {
			return apperror.New(apperror.CodeValidation, "malformed request body")
		}
		res, err := svc.Login(c.UserContext(), req.LoginID, req.Secret)
		if err != nil {
			return err
		}
		return c.JSON(res)
	}
}

// ListEmployees returns the active user-role accounts.
func ListEmployees(svc service.AccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		employees, err := svc.ListEmployees(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(employees)
	}
}

// CreateEmployee provisions a new active account.
func CreateEmployee(svc service.AccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.CreateAccountInput
		if err := c.BodyParser(&in); err != nil {
			return apperror.New(apperror.CodeValidation, "malformed request body")
		}
		acct, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(acct)
	}
}

// ArchiveEmployee runs the archival transition for one account.
func ArchiveEmployee(svc service.ArchiveService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		archivedID, err := svc.Archive(c.UserContext(), c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"archived_id": archivedID})
	}
}
