package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/fincalc-service/internal/api/dto"
	"github.com/spec-kit/fincalc-service/internal/auth"
	"github.com/spec-kit/fincalc-service/internal/service"
	"github.com/spec-kit/fincalc-service/internal/validation"
	apperrors "github.com/spec-kit/fincalc-service/pkg/util/errorutil"
)

// UsersHandler exposes registration, login and profile endpoints.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{users: userService}
}

// Register handles POST /user/register.
func (h *UsersHandler) Register(c *fiber.Ctx) error {
	var req dto.UserRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("Invalid JSON data")
	}
	if msgs := validation.RegistrationInput(req.Name, req.Email, req.Password); len(msgs) > 0 {
		return apperrors.NewValidationError(msgs)
	}

	user, err := h.users.Register(c.UserContext(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "User registered successfully",
		"user_id": user.ID,
	})
}

// Login handles POST /user/login.
func (h *UsersHandler) Login(c *fiber.Ctx) error {
	var req dto.UserLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("Invalid JSON data")
	}
	if msgs := validation.LoginInput(req.Email, req.Password); len(msgs) > 0 {
		return apperrors.NewValidationError(msgs)
	}

	user, token, expiresIn, err := h.users.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"message":    "Login successful",
		"token":      token,
		"expires_in": expiresIn,
		"user":       dto.UserSummary{ID: user.ID, Email: user.Email},
	})
}

// Profile handles GET /user/profile.
func (h *UsersHandler) Profile(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized()
	}

	user, err := h.users.Profile(c.UserContext(), identity.UserID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user": dto.UserProfile{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		},
	})
}
