package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offline-ticketing/ticketing-service/internal/domain"
	apperrors "github.com/offline-ticketing/ticketing-service/pkg/util"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func newGuardedApp(t *testing.T) (*fiber.App, *TokenManager, *stubUserRepo) {
	t.Helper()

	tm := NewTokenManager("middleware-secret", 60)
	repo := &stubUserRepo{users: map[string]*domain.User{}}
	middleware := NewMiddleware(tm, repo)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"code": domainErr.Code})
		},
	})
	group := app.Group("/tickets", middleware.Handle)
	group.Get("/", RequireRole(domain.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendString("all tickets")
	})
	group.Get("/my", RequireRole(domain.RoleEmployee), func(c *fiber.Ctx) error {
		return c.SendString("my tickets")
	})
	return app, tm, repo
}

func seedPrincipal(t *testing.T, tm *TokenManager, repo *stubUserRepo, id string, role domain.Role) string {
	t.Helper()
	user := &domain.User{ID: id, FullName: "Test " + string(role), Email: id + "@test.com", Role: role}
	repo.users[id] = user
	token, _, err := tm.GenerateToken(user)
	require.NoError(t, err)
	return token
}

func TestMiddlewareMissingToken(t *testing.T) {
	app, _, _ := newGuardedApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/tickets/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareMalformedHeader(t *testing.T) {
	app, _, _ := newGuardedApp(t)

	req := httptest.NewRequest(http.MethodGet, "/tickets/", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareUnknownSubject(t *testing.T) {
	app, tm, _ := newGuardedApp(t)
	// valid token, but the user row is gone
	token, _, err := tm.GenerateToken(&domain.User{ID: "ghost", Role: domain.RoleAdmin})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/tickets/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRoleGuardForbidsWrongRole(t *testing.T) {
	app, tm, repo := newGuardedApp(t)
	employeeToken := seedPrincipal(t, tm, repo, "emp-1", domain.RoleEmployee)

	req := httptest.NewRequest(http.MethodGet, "/tickets/", nil)
	req.Header.Set("Authorization", "Bearer "+employeeToken)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/tickets/my", nil)
	req.Header.Set("Authorization", "Bearer "+employeeToken)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRoleGuardAllowsMatchingRole(t *testing.T) {
	app, tm, repo := newGuardedApp(t)
	adminToken := seedPrincipal(t, tm, repo, "adm-1", domain.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/tickets/", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/tickets/my", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
