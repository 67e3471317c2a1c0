package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"team-portal/backend/members-service/middleware"
	"team-portal/backend/members-service/models"
	"team-portal/backend/members-service/utils"
)

type fakeRevoker struct {
	revoked map[string]bool
}

func (f fakeRevoker) IsRevoked(token string) bool { return f.revoked[token] }

func TestJWTAuthMiddlewareMissingHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	handler := middleware.JWTAuthMiddleware(nil, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestJWTAuthMiddlewareInvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	handler := middleware.JWTAuthMiddleware(nil, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with an invalid token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestJWTAuthMiddlewareBuildsSession(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := utils.GenerateToken("user-1", "ana@example.com", models.RoleMember)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	var got models.Session
	handler := middleware.JWTAuthMiddleware(nil, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := middleware.SessionFromContext(r.Context())
		if !ok {
			t.Fatal("expected session in request context")
		}
		got = session
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	want := models.Session{UserID: "user-1", Email: "ana@example.com", Role: models.RoleMember}
	if got != want {
		t.Fatalf("session mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestJWTAuthMiddlewareRevokedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := utils.GenerateToken("user-1", "ana@example.com", models.RoleMember)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	revoker := fakeRevoker{revoked: map[string]bool{token: true}}
	handler := middleware.JWTAuthMiddleware(revoker, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with a revoked token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for revoked token, got %d", rr.Code)
	}
}

func TestRequireAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cases := []struct {
		role string
		want int
	}{
		{models.RoleAdmin, http.StatusOK},
		{models.RoleMember, http.StatusForbidden},
	}

	for _, tc := range cases {
		token, err := utils.GenerateToken("user-1", "ana@example.com", tc.role)
		if err != nil {
			t.Fatalf("generate token: %v", err)
		}

		handler := middleware.JWTAuthMiddleware(nil, middleware.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})))

		req := httptest.NewRequest(http.MethodGet, "/api/members/all", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != tc.want {
			t.Fatalf("role %q: expected %d, got %d", tc.role, tc.want, rr.Code)
		}
	}
}

func TestRequireAdminWithoutSession(t *testing.T) {
	handler := middleware.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a session")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/members/all", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rr.Code)
	}
}
