package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"team-portal/backend/members-service/handlers"
	"team-portal/backend/members-service/services"
)

func TestLoginRejectsMalformedRequests(t *testing.T) {
	handler := handlers.NewAuthHandler(services.NewAuthService(nil, nil, nil))

	cases := []struct {
		name string
		body string
	}{
		{"broken json", `{"email":`},
		{"missing password", `{"email":"ana@example.com"}`},
		{"not an email", `{"email":"ana","password":"secret"}`},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tc.body))
		rr := httptest.NewRecorder()
		handler.Login(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", tc.name, rr.Code)
		}
	}
}

func TestForgotPasswordRequiresValidEmail(t *testing.T) {
	handler := handlers.NewAuthHandler(services.NewAuthService(nil, nil, nil))

	req := httptest.NewRequest(http.MethodPost, "/api/auth/forgot-password", strings.NewReader(`{"email":"not-an-email"}`))
	rr := httptest.NewRecorder()
	handler.ForgotPassword(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestResetPasswordRequiresTokenAndStrongPassword(t *testing.T) {
	handler := handlers.NewAuthHandler(services.NewAuthService(nil, nil, nil))

	req := httptest.NewRequest(http.MethodPost, "/api/auth/reset-password", strings.NewReader(`{"token":"abc","newPassword":"short"}`))
	rr := httptest.NewRecorder()
	handler.ResetPassword(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a too-short password, got %d", rr.Code)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	authService := services.NewAuthService(nil, nil, nil)
	handler := handlers.NewAuthHandler(authService)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rr := httptest.NewRecorder()
	handler.Logout(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !authService.IsRevoked("some-token") {
		t.Fatal("expected the token to be revoked after logout")
	}
}

func TestLogoutWithoutTokenFails(t *testing.T) {
	handler := handlers.NewAuthHandler(services.NewAuthService(nil, nil, nil))

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rr := httptest.NewRecorder()
	handler.Logout(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}
