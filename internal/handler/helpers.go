package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Helpers for identity stashed in the context by the auth middleware

func getActorUID(c *fiber.Ctx) string {
	uid := c.Locals("user_uid")
	if uid == nil {
		return "system"
	}
	return uid.(string)
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
