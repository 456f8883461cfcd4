package handler

import (
	"github.com/gofiber/fiber/v2"

	"credtrack/internal/service"
)

// Statistics returns the current rollup over the active space.
func Statistics(svc service.StatsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := svc.Aggregate(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(stats)
	}
}
