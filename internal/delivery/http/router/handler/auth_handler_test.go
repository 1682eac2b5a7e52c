package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"canopy/internal/domain/entity"
	"canopy/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuthUsecase is a minimal stand-in for the auth usecase in handler tests.
type fakeAuthUsecase struct {
	loginOutput *usecase.LoginOutput
	loginErr    error
	meOutput    *usecase.MeOutput
	meErr       error
}

func (f *fakeAuthUsecase) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	return f.loginOutput, f.loginErr
}

func (f *fakeAuthUsecase) Me(ctx context.Context, userID uuid.UUID) (*usecase.MeOutput, error) {
	return f.meOutput, f.meErr
}

func TestAuthHandler_Login_Integration(t *testing.T) {
	userID := uuid.New()
	uc := &fakeAuthUsecase{
		loginOutput: &usecase.LoginOutput{
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
			User: &entity.User{
				ID:    userID,
				Email: "maria@coop.example",
			},
			Roles: entity.Roles{entity.RoleCustomer},
		},
	}
	handler := NewAuthHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"maria@coop.example","password":"secret"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Login(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)

	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, "access-token")
	assert.Contains(t, responseBody, "refresh-token")
	assert.Contains(t, responseBody, "maria@coop.example")
	assert.Contains(t, responseBody, `"roles":["customer"]`)
	// The password hash never appears in the login payload.
	assert.NotContains(t, responseBody, "password")
}

func TestAuthHandler_Me_MissingUserID(t *testing.T) {
	handler := NewAuthHandler(&fakeAuthUsecase{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Me(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}
