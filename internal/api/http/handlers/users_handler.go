package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-service/internal/api/dto"
	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/service"
)

// UsersHandler exposes registration, login, and email verification.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{users: userService}
}

// Register handles POST /auth/users/register.
func (h *UsersHandler) Register(c *fiber.Ctx) error {
	var req dto.UserRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return fiber.NewError(http.StatusBadRequest, "name, email, password required")
	}

	ok, err := h.users.Register(c.Context(), service.RegisterInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		CompanyID: req.CompanyID,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{"registered": ok},
	})
}

// Login handles POST /auth/users/login. The result is either a session
// token or the account's state name when it cannot log in yet.
func (h *UsersHandler) Login(c *fiber.Ctx) error {
	var req dto.UserLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email and password required")
	}

	result, err := h.users.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	switch domain.UserState(result) {
	case domain.UserStatePending, domain.UserStateInReview:
		return c.JSON(fiber.Map{
			"data": fiber.Map{"state": result},
		})
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{"token": result},
	})
}

// VerifyEmail handles GET /auth/users/verify?code=. Redeeming the emailed
// code moves the account into manager review.
func (h *UsersHandler) VerifyEmail(c *fiber.Ctx) error {
	code := c.Query("code")
	if code == "" {
		return fiber.NewError(http.StatusBadRequest, "code required")
	}

	if err := h.users.VerifyEmail(c.Context(), code); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{"verified": true},
	})
}
