package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quickbasket/commerce-api/internal/api/metrics"
	"github.com/quickbasket/commerce-api/internal/core/domain"
	"github.com/quickbasket/commerce-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup registers a new account and opens its first session.
//
// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Registration details, biometricData optional"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Signup(c.Request().Context(), ports.SignupInput{
		Name:          req.Name,
		Email:         req.Email,
		Password:      req.Password,
		BiometricData: req.BiometricData,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserExists):
			return fail(c, http.StatusConflict, "User already exists, you can login")
		case errors.Is(err, domain.ErrInvalidInput):
			return fail(c, http.StatusBadRequest, "name, email and password are required")
		}
		return err
	}

	metrics.SignupsTotal.Inc()
	return c.JSON(http.StatusCreated, newAuthResponse("Signup successful", result))
}

// Login authenticates with email and password. An unknown account and a
// wrong password produce the same response.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      403   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrAuthFailed) {
			metrics.LoginsTotal.WithLabelValues("password", "failure").Inc()
			return fail(c, http.StatusForbidden, "Auth failed: email or password is wrong")
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("password", "success").Inc()
	return c.JSON(http.StatusOK, newAuthResponse("Login Success", result))
}

// BiometricLogin authenticates with an enrolled biometric assertion. Its
// failure reasons are distinguishable, unlike Login's.
//
// @Summary      Biometric login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      biometricLoginRequest  true  "Email and biometric assertion"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Router       /auth/biometric-login [post]
func (h *AuthHandler) BiometricLogin(c echo.Context) error {
	var req biometricLoginRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}

	result, err := h.authService.BiometricLogin(c.Request().Context(), req.Email, req.BiometricData)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("biometric", "failure").Inc()
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return fail(c, http.StatusBadRequest, "Email and biometric data are required")
		case errors.Is(err, domain.ErrUserNotFound):
			return fail(c, http.StatusForbidden, "User not found")
		case errors.Is(err, domain.ErrBiometricNotEnabled):
			return fail(c, http.StatusForbidden, "Biometric authentication not enabled for this user")
		case errors.Is(err, domain.ErrBiometricFailed):
			return fail(c, http.StatusForbidden, "Biometric authentication failed")
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("biometric", "success").Inc()
	return c.JSON(http.StatusOK, newAuthResponse("Biometric Login Success", result))
}

// AddBiometric enrolls (or re-enrolls) the biometric credential for a user.
//
// @Summary      Add biometric credential
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      addBiometricRequest  true  "User id and biometric assertion"
// @Success      200   {object}  biometricToggleResponse
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /auth/add-biometric [post]
func (h *AuthHandler) AddBiometric(c echo.Context) error {
	var req addBiometricRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}

	err := h.authService.AddBiometric(c.Request().Context(), req.UserID, req.BiometricData)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return fail(c, http.StatusBadRequest, "User ID and biometric data are required")
		case errors.Is(err, domain.ErrUserNotFound):
			return fail(c, http.StatusNotFound, "User not found")
		}
		return err
	}

	metrics.BiometricEnrollmentsTotal.WithLabelValues("added").Inc()
	return c.JSON(http.StatusOK, biometricToggleResponse{
		Message:          "Biometric added successfully",
		Success:          true,
		BiometricEnabled: true,
	})
}

// RemoveBiometric clears the biometric credential. Idempotent.
//
// @Summary      Remove biometric credential
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      removeBiometricRequest  true  "User id"
// @Success      200   {object}  biometricToggleResponse
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /auth/remove-biometric [post]
func (h *AuthHandler) RemoveBiometric(c echo.Context) error {
	var req removeBiometricRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}

	err := h.authService.RemoveBiometric(c.Request().Context(), req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return fail(c, http.StatusBadRequest, "User ID is required")
		case errors.Is(err, domain.ErrUserNotFound):
			return fail(c, http.StatusNotFound, "User not found")
		}
		return err
	}

	metrics.BiometricEnrollmentsTotal.WithLabelValues("removed").Inc()
	return c.JSON(http.StatusOK, biometricToggleResponse{
		Message:          "Biometric removed successfully",
		Success:          true,
		BiometricEnabled: false,
	})
}

// BiometricStatus reports whether an account has biometric login enabled.
//
// @Summary      Biometric enrollment status
// @Tags         auth
// @Produce      json
// @Param        email  path      string  true  "Account email"
// @Success      200    {object}  biometricStatusResponse
// @Failure      404    {object}  messageResponse
// @Router       /auth/biometric-status/{email} [get]
func (h *AuthHandler) BiometricStatus(c echo.Context) error {
	status, err := h.authService.BiometricStatus(c.Request().Context(), c.Param("email"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return fail(c, http.StatusNotFound, "User not found")
		}
		return err
	}

	return c.JSON(http.StatusOK, biometricStatusResponse{
		Success:          true,
		BiometricEnabled: status.BiometricEnabled,
		Email:            status.Email,
		Name:             status.Name,
	})
}

// Refresh rotates the session tokens. Each refresh token works exactly once.
//
// @Summary      Rotate refresh token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      refreshRequest  true  "Current refresh token"
// @Success      200   {object}  refreshResponse
// @Failure      401   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Router       /auth/refresh-token [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}
	if req.RefreshToken == "" {
		return fail(c, http.StatusUnauthorized, "Refresh token is required")
	}

	result, err := h.authService.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRefreshToken) {
			metrics.TokenRefreshTotal.WithLabelValues("invalid").Inc()
			return fail(c, http.StatusForbidden, "Invalid refresh token")
		}
		return err
	}

	metrics.TokenRefreshTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, refreshResponse{
		Success:      true,
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		JWTToken:     result.JWTToken,
		UserID:       result.UserID,
	})
}

// Logout revokes the session holding the presented refresh token. Responds
// success even when no session holds it.
//
// @Summary      Log out
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      logoutRequest  true  "Refresh token to revoke"
// @Success      200   {object}  messageResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	var req logoutRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}

	if err := h.authService.Logout(c.Request().Context(), req.RefreshToken); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Logged out successfully", Success: true})
}

func newAuthResponse(message string, result *ports.AuthResult) authResponse {
	return authResponse{
		Message:          message,
		Success:          true,
		AccessToken:      result.AccessToken,
		RefreshToken:     result.RefreshToken,
		JWTToken:         result.JWTToken,
		Name:             result.Name,
		Email:            result.Email,
		Role:             string(result.Role),
		UserID:           result.UserID,
		BiometricEnabled: result.BiometricEnabled,
	}
}

// fail renders the canonical error envelope.
func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, messageResponse{Message: message, Success: false})
}
