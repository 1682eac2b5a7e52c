package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimedRoles_DropsMalformedEntries(t *testing.T) {
	claims := jwt.MapClaims{
		"roles": []any{"supplier", 42, "customer", nil},
	}

	roles := claimedRoles(claims)

	assert.Equal(t, []string{"supplier", "customer"}, roles)
}

func TestClaimedRoles_MissingClaim(t *testing.T) {
	roles := claimedRoles(jwt.MapClaims{})

	assert.Empty(t, roles)
}

func TestRequireRole(t *testing.T) {
	m := &AuthMiddleware{}
	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	newCtx := func(rec *httptest.ResponseRecorder) echo.Context {
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		return echo.New().NewContext(req, rec)
	}

	t.Run("role present", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := newCtx(rec)
		c.Set("roles", []string{"supplier"})

		err := m.RequireRole("supplier")(next)(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("role missing", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := newCtx(rec)
		c.Set("roles", []string{"customer"})

		err := m.RequireRole("supplier")(next)(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("roles never set", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := newCtx(rec)

		err := m.RequireRole("supplier")(next)(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestAuthenticate_RejectsMissingOrMalformedHeader(t *testing.T) {
	m := &AuthMiddleware{}
	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	cases := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not a bearer token", header: "Basic abc123"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			err := m.Authenticate(next)(c)

			require.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}
