package handler

import (
	"log/slog"
	"net/http"

	"canopy/internal/delivery/http/response"
	"canopy/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication-related handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// loginResponse shapes the login payload for clients. The password hash
// never leaves the usecase layer.
type loginResponse struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	UserID       string   `json:"user_id"`
	Email        string   `json:"email"`
	Roles        []string `json:"roles"`
}

// Login handles the user login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, loginResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		UserID:       output.User.ID.String(),
		Email:        output.User.Email,
		Roles:        output.Roles.ToStrings(),
	}, "Login successful")
}

// meResponse shapes the current-account payload for clients.
type meResponse struct {
	UserID    string   `json:"user_id"`
	Email     string   `json:"email"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Roles     []string `json:"roles"`
	Role      string   `json:"role"`
	Company   string   `json:"company,omitempty"`
}

// Me handles the request for the current account and its party links.
func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	output, err := h.uc.Me(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	resp := meResponse{
		UserID:    output.User.ID.String(),
		Email:     output.User.Email,
		FirstName: output.User.FirstName,
		LastName:  output.User.LastName,
		Roles:     output.Roles.ToStrings(),
		Role:      string(output.Identity.PrimaryRole()),
	}
	if output.Identity.Customer != nil {
		resp.Company = output.Identity.Customer.CompanyName
	}
	if output.Identity.Supplier != nil && resp.Company == "" {
		resp.Company = output.Identity.Supplier.CompanyName
	}

	return response.Success(c, http.StatusOK, resp, "Account retrieved successfully")
}
