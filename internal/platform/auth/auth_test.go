package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func TestManager_IssueAndVerify(t *testing.T) {
	m := NewManager("secret", time.Hour)

	token, err := m.Issue("acct-1", "Dr. Asha", "asha@example.com")
	if err != nil {
		t.Fatal(err)
	}

	claims, err := m.Verify(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.Subject != "acct-1" || claims.Name != "Dr. Asha" || claims.Email != "asha@example.com" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestManager_RejectsWrongSecret(t *testing.T) {
	token, err := NewManager("secret-a", time.Hour).Issue("acct-1", "n", "e")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := NewManager("secret-b", time.Hour).Verify(token); err == nil {
		t.Error("token verified with wrong secret")
	}
}

func TestManager_RejectsExpiredToken(t *testing.T) {
	m := NewManager("secret", -time.Minute)

	token, err := m.Issue("acct-1", "n", "e")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.Verify(token); err == nil {
		t.Error("expired token verified")
	}
}

func TestMiddleware_PutsIdentityOnContext(t *testing.T) {
	m := NewManager("secret", time.Hour)
	token, err := m.Issue("acct-1", "Dr. Asha", "asha@example.com")
	if err != nil {
		t.Fatal(err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error {
		ctx := c.Request().Context()
		if AccountIDFromContext(ctx) != "acct-1" {
			t.Errorf("account id = %q", AccountIDFromContext(ctx))
		}
		if NameFromContext(ctx) != "Dr. Asha" {
			t.Errorf("name = %q", NameFromContext(ctx))
		}
		if EmailFromContext(ctx) != "asha@example.com" {
			t.Errorf("email = %q", EmailFromContext(ctx))
		}
		return c.String(http.StatusOK, "ok")
	}

	if err := m.Middleware()(handler)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMiddleware_RejectsMissingHeader(t *testing.T) {
	m := NewManager("secret", time.Hour)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	handler := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }

	err := m.Middleware()(handler)(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestMiddleware_RejectsMalformedHeader(t *testing.T) {
	m := NewManager("secret", time.Hour)

	for _, header := range []string{"Basic abc", "Bearer", "garbage"} {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", header)
		c := e.NewContext(req, httptest.NewRecorder())

		handler := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }

		err := m.Middleware()(handler)(c)
		httpErr, ok := err.(*echo.HTTPError)
		if !ok || httpErr.Code != http.StatusUnauthorized {
			t.Errorf("header %q: expected 401, got %v", header, err)
		}
	}
}
