package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-service/internal/api/dto"
	"github.com/spec-kit/hr-service/internal/auth"
	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/service"
	apperrors "github.com/spec-kit/hr-service/pkg/util"
)

// ManagerHandler exposes the manager review surface: accounts waiting for a
// decision, customer listings, employee listings, and permit authorization.
type ManagerHandler struct {
	users    *service.UserService
	managers *service.ManagerService
	tokens   *auth.TokenManager
}

// NewManagerHandler constructs handler.
func NewManagerHandler(userService *service.UserService, managerService *service.ManagerService, tokens *auth.TokenManager) *ManagerHandler {
	return &ManagerHandler{users: userService, managers: managerService, tokens: tokens}
}

// Customers handles GET /manager/customers.
func (h *ManagerHandler) Customers(c *fiber.Ctx) error {
	users, err := h.users.ListCustomers(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromUsers(users)})
}

// UsersOnWait handles GET /manager/users/on-wait.
func (h *ManagerHandler) UsersOnWait(c *fiber.Ctx) error {
	users, err := h.users.ListUsersOnWait(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromUsers(users)})
}

// AuthorizeUser handles POST /manager/users/authorize.
func (h *ManagerHandler) AuthorizeUser(c *fiber.Ctx) error {
	var req dto.UserAuthorizationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.UserID == "" {
		return fiber.NewError(http.StatusBadRequest, "user_id required")
	}

	user, err := h.users.Authorize(c.Context(), req.UserID, req.Answer)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromUser(user)})
}

// Employees handles GET /manager/employees?company_id=.
func (h *ManagerHandler) Employees(c *fiber.Ctx) error {
	companyID := c.Query("company_id")
	if companyID == "" {
		return fiber.NewError(http.StatusBadRequest, "company_id required")
	}

	employees, err := h.managers.EmployeesByCompany(c.Context(), companyID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromUsers(employees)})
}

// PendingPermits handles GET /manager/permits.
func (h *ManagerHandler) PendingPermits(c *fiber.Ctx) error {
	permits, err := h.managers.PendingPermits(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromPermits(permits)})
}

// AuthorizePermit handles POST /manager/permits/authorize. The token inside
// the payload is verified before the decision is applied.
func (h *ManagerHandler) AuthorizePermit(c *fiber.Ctx) error {
	var req dto.HolidayAuthorizeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.PermitID == "" {
		return fiber.NewError(http.StatusBadRequest, "permit_id required")
	}

	if _, err := h.tokens.VerifyToken(req.Token); err != nil {
		return apperrors.NewInvalidToken()
	}

	ok, err := h.managers.AuthorizePermit(c.Context(), req.PermitID, req.Answer)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ok})
}

// RequestPermit handles POST /permits for the authenticated employee.
func (h *ManagerHandler) RequestPermit(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.PermitRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	permit, err := h.managers.RequestPermit(c.Context(), principal.User.ID, service.PermitInput{
		Type:        domain.PermitType(req.Type),
		StartDate:   req.StartDate.Truncate(24 * time.Hour),
		EndDate:     req.EndDate.Truncate(24 * time.Hour),
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.FromPermit(permit)})
}
