package handler

import (
	"go-stockdocs/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles self-registration
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req service.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	result := h.authService.Register(&req)
	if !result.Success {
		return c.Status(400).JSON(result)
	}

	return c.Status(201).JSON(result)
}

// Login handles user authentication
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Email and password are required"})
	}

	response, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		switch err {
		case service.ErrUserNotFound:
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(401).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return c.JSON(response)
}

// Whoami resolves the subject of the presented token
// GET /api/v1/auth/whoami
func (h *AuthHandler) Whoami(c *fiber.Ctx) error {
	uid := c.Locals("user_uid")
	if uid == nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	user, err := h.authService.Validate(uid.(string))
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(user)
}
