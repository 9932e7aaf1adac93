package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wazard-api/internal/domain/entity"
	apphttp "github.com/jhoicas/wazard-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/wazard-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testAccountID = int64(7)
	testEmail     = "jefe@wazard.io"
	testIssuer    = "wazard-api-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

func tokenFor(t *testing.T, accountID int64, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, accountID, testEmail, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func tokenForRole(t *testing.T, role string) string {
	return tokenFor(t, testAccountID, role)
}

func doGet(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_EmployerAccedeRutaEmployer(t *testing.T) {
	app := buildTestApp(entity.RoleEmployer)
	resp := doGet(t, app, "/protected", tokenForRole(t, entity.RoleEmployer))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, entity.RoleEmployer, body["role"])
}

func TestRequireRole_MultiRol(t *testing.T) {
	app := buildTestApp(entity.RoleEmployer, entity.RoleEmployee)
	resp := doGet(t, app, "/protected", tokenForRole(t, entity.RoleEmployee))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_EmployeeBloqueadoEnRutaEmployer(t *testing.T) {
	app := buildTestApp(entity.RoleEmployer)
	resp := doGet(t, app, "/protected", tokenForRole(t, entity.RoleEmployee))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestRequireRole_TokenSinRol_Retorna401(t *testing.T) {
	app := buildTestApp(entity.RoleEmployer)
	resp := doGet(t, app, "/protected", tokenForRole(t, ""))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE")
}

func TestRequireRole_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(entity.RoleEmployer)
	resp := doGet(t, app, "/protected", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestRequireRole_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(entity.RoleEmployer)
	resp := doGet(t, app, "/protected", "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

func TestAuthMiddleware_FormatoSinBearer_Retorna401(t *testing.T) {
	app := buildTestApp(entity.RoleEmployer)
	resp := doGet(t, app, "/protected", "Basic abc")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware: extracción de claims del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"account_id": apphttp.GetAccountID(c),
			"email":      apphttp.GetEmail(c),
			"role":       apphttp.GetRole(c),
		})
	})

	resp := doGet(t, app, "/me", tokenForRole(t, entity.RoleEmployee))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		AccountID int64  `json:"account_id"`
		Email     string `json:"email"`
		Role      string `json:"role"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testAccountID, body.AccountID)
	assert.Equal(t, testEmail, body.Email)
	assert.Equal(t, entity.RoleEmployee, body.Role)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Certification
// ──────────────────────────────────────────────────────────────────────────────

func buildCertifiedApp() *fiber.App {
	app := fiber.New()
	app.Get("/mine/:accountId",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.Certification("accountId"),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)
	return app
}

func TestCertification(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		auth       func(t *testing.T) string
		wantStatus int
	}{
		{
			name:       "misma cuenta",
			path:       "/mine/7",
			auth:       func(t *testing.T) string { return tokenFor(t, 7, entity.RoleEmployee) },
			wantStatus: http.StatusOK,
		},
		{
			name:       "otra cuenta",
			path:       "/mine/8",
			auth:       func(t *testing.T) string { return tokenFor(t, 7, entity.RoleEmployee) },
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "sin token",
			path:       "/mine/7",
			auth:       func(t *testing.T) string { return "" },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "parametro no numerico",
			path:       "/mine/abc",
			auth:       func(t *testing.T) string { return tokenFor(t, 7, entity.RoleEmployee) },
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "token sin cuenta",
			path:       "/mine/7",
			auth:       func(t *testing.T) string { return tokenFor(t, 0, entity.RoleEmployee) },
			wantStatus: http.StatusUnauthorized,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doGet(t, buildCertifiedApp(), tt.path, tt.auth(t))
			defer resp.Body.Close()
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
