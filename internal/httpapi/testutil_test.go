package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/umarhameed12/ghani-glass-backend-repo/internal/auth"
)

func newTestTokens() *auth.Tokens {
	return auth.NewTokens([]byte("test-secret"), time.Hour)
}

func newTestRouter(services Services) http.Handler {
	return NewRouter(services, newTestTokens(), zap.NewNop())
}

type testResponse struct {
	Status     bool            `json:"status"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Pagination *Pagination     `json:"pagination"`
	Errors     []string        `json:"errors"`
	Error      string          `json:"error"`
	IsUpdate   *bool           `json:"isUpdate"`
}

func doRequest(t *testing.T, handler http.Handler, method, target string, body io.Reader) (*httptest.ResponseRecorder, testResponse) {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	var parsed testResponse
	if recorder.Body.Len() > 0 && recorder.Header().Get("Content-Type") == "application/json" {
		if err := json.Unmarshal(recorder.Body.Bytes(), &parsed); err != nil {
			t.Fatalf("decode response %q: %v", recorder.Body.String(), err)
		}
	}
	return recorder, parsed
}
