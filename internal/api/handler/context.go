package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quickbasket/commerce-api/internal/core/domain"
)

// ctxIdentity extracts the claims injected by the Auth middleware and
// fast-fails before any service call: a missing user id means the middleware
// did not run or the token carried no subject.
func ctxIdentity(c echo.Context) (userID string, role domain.Role, err error) {
	userID, _ = c.Get("user_id").(string)
	if userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	roleStr, _ := c.Get("role").(string)
	return userID, domain.Role(roleStr), nil
}
