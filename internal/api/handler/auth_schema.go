package handler

// Request and response schemas for the auth endpoints. JSON field names are
// part of the wire contract consumed by existing clients; keep them camelCase.

type signupRequest struct {
	Name          string `json:"name"          validate:"required"`
	Email         string `json:"email"         validate:"required,email"`
	Password      string `json:"password"      validate:"required,min=4"`
	BiometricData string `json:"biometricData"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type biometricLoginRequest struct {
	Email         string `json:"email"`
	BiometricData string `json:"biometricData"`
}

type addBiometricRequest struct {
	UserID        string `json:"userId"`
	BiometricData string `json:"biometricData"`
}

type removeBiometricRequest struct {
	UserID string `json:"userId"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type logoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type authResponse struct {
	Message          string `json:"message"`
	Success          bool   `json:"success"`
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	JWTToken         string `json:"jwtToken"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Role             string `json:"role"`
	UserID           string `json:"userId"`
	BiometricEnabled bool   `json:"biometricEnabled"`
}

type refreshResponse struct {
	Success      bool   `json:"success"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	JWTToken     string `json:"jwtToken"`
	UserID       string `json:"userId"`
}

type biometricToggleResponse struct {
	Message          string `json:"message"`
	Success          bool   `json:"success"`
	BiometricEnabled bool   `json:"biometricEnabled"`
}

type biometricStatusResponse struct {
	Success          bool   `json:"success"`
	BiometricEnabled bool   `json:"biometricEnabled"`
	Email            string `json:"email"`
	Name             string `json:"name"`
}

type messageResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}
