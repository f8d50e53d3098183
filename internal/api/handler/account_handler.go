package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quickbasket/commerce-api/internal/core/domain"
	"github.com/quickbasket/commerce-api/internal/core/ports"
)

// AccountHandler serves the authenticated user and admin projections.
type AccountHandler struct {
	service ports.AccountService
}

func NewAccountHandler(service ports.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// userProfile is the public projection of an account. Never carries hash
// material.
type userProfile struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Role             string `json:"role"`
	BiometricEnabled bool   `json:"biometricEnabled"`
}

func toProfile(u *domain.User) userProfile {
	return userProfile{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		Role:             string(u.Role),
		BiometricEnabled: u.BiometricEnabled,
	}
}

// Role returns the authenticated user's role.
//
// @Summary      Get own role
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  messageResponse
// @Router       /user/role [get]
func (h *AccountHandler) Role(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	role, err := h.service.GetRole(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return fail(c, http.StatusNotFound, "User not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"role": role, "success": true})
}

// ListUsers returns all accounts. Admin only.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Failure      403  {object}  messageResponse
// @Router       /admin/users [get]
func (h *AccountHandler) ListUsers(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	profiles := make([]userProfile, 0, len(users))
	for i := range users {
		profiles = append(profiles, toProfile(&users[i]))
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "users": profiles})
}

// ListCartItems returns every cart line in the store. Admin only.
//
// @Summary      List all cart items
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Failure      403  {object}  messageResponse
// @Router       /admin/cartitems [get]
func (h *AccountHandler) ListCartItems(c echo.Context) error {
	items, err := h.service.ListCartItems(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "cartItems": items})
}

// Profile returns the authenticated admin's own profile.
//
// @Summary      Get admin profile
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  messageResponse
// @Router       /admin/profile [get]
func (h *AccountHandler) Profile(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.service.GetProfile(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return fail(c, http.StatusNotFound, "User not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "admin": toProfile(user)})
}
