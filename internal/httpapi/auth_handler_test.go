package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/umarhameed12/ghani-glass-backend-repo/internal/service"
)

func TestSigninReturnsTokenEnvelope(t *testing.T) {
	router := newTestRouter(Services{
		Auth: stubAuth{
			signinFn: func(_ context.Context, input service.SigninInput) (service.AuthResult, error) {
				if input.Username != "umar" || input.Password != "glassworks" {
					t.Fatalf("unexpected input: %+v", input)
				}
				return service.AuthResult{
					User:  service.UserDTO{ID: 3, Username: "umar"},
					Token: "signed.jwt.token",
				}, nil
			},
		},
	})

	body := strings.NewReader(`{"username":"umar","password":"glassworks"}`)
	recorder, resp := doRequest(t, router, http.MethodPost, "/api/v1/auth/signin", body)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if resp.Message != "Signed in successfully" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
	if !strings.Contains(string(resp.Data), "signed.jwt.token") {
		t.Fatalf("expected token in payload, got %s", resp.Data)
	}
}

func TestMeRequiresBearerToken(t *testing.T) {
	tokens := newTestTokens()
	router := NewRouter(Services{
		Auth: stubAuth{
			meFn: func(_ context.Context, userID uint) (service.UserDTO, error) {
				if userID != 3 {
					t.Fatalf("expected claims user id 3, got %d", userID)
				}
				return service.UserDTO{ID: userID, Username: "umar"}, nil
			},
		},
	}, tokens, zap.NewNop())

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			if recorder.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, recorder.Code)
			}
		})
	}

	token, err := tokens.Generate(3, "umar")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid token, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if !strings.Contains(recorder.Body.String(), `"umar"`) {
		t.Fatalf("expected profile payload, got %s", recorder.Body.String())
	}
}
