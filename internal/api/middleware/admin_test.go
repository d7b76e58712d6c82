package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/bistro-api/internal/core/domain"
)

type stubUserRepo struct {
	findByEmailFn func(ctx context.Context, email string) (*domain.User, error)
}

func (s *stubUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	panic("not used")
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.findByEmailFn(ctx, email)
}

func (s *stubUserRepo) List(ctx context.Context) ([]*domain.User, error) { panic("not used") }
func (s *stubUserRepo) PromoteToAdmin(ctx context.Context, id string) error {
	panic("not used")
}
func (s *stubUserRepo) Delete(ctx context.Context, id string) error { panic("not used") }
func (s *stubUserRepo) Count(ctx context.Context) (int64, error)    { panic("not used") }

func TestAdminOnly_StoredAdminAllowed(t *testing.T) {
	e := echo.New()
	repo := &stubUserRepo{
		findByEmailFn: func(_ context.Context, email string) (*domain.User, error) {
			if email != "boss@example.com" {
				t.Fatalf("unexpected lookup: %s", email)
			}
			return &domain.User{Email: email, Role: domain.RoleAdmin}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextKeyEmail, "boss@example.com")

	called := false
	mw := AdminOnly(repo)
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

// A token may claim role admin, but only the role stored right now counts.
func TestAdminOnly_StaleAdminClaimForbidden(t *testing.T) {
	e := echo.New()
	repo := &stubUserRepo{
		findByEmailFn: func(_ context.Context, email string) (*domain.User, error) {
			return &domain.User{Email: email, Role: domain.RoleStandard}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextKeyEmail, "demoted@example.com")
	c.Set(ContextKeyRole, domain.RoleAdmin)

	mw := AdminOnly(repo)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestAdminOnly_UnknownUserForbidden(t *testing.T) {
	e := echo.New()
	repo := &stubUserRepo{
		findByEmailFn: func(_ context.Context, email string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextKeyEmail, "ghost@example.com")

	mw := AdminOnly(repo)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestAdminOnly_MissingClaimsForbidden(t *testing.T) {
	e := echo.New()
	repo := &stubUserRepo{
		findByEmailFn: func(_ context.Context, email string) (*domain.User, error) {
			t.Fatalf("store should not be consulted without an email claim")
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := AdminOnly(repo)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
