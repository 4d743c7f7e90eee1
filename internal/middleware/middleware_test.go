package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type mockValidator struct {
	learnerID int
	err       error
	token     string
}

func (m *mockValidator) ValidateAccessToken(token string) (int, error) {
	m.token = token
	return m.learnerID, m.err
}

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		setup          func(r *http.Request)
		validator      *mockValidator
		expectedStatus int
		expectedToken  string
		expectedBody   string
	}{
		{
			name:           "bearer header",
			setup:          func(r *http.Request) { r.Header.Set("Authorization", "Bearer abc") },
			validator:      &mockValidator{learnerID: 42},
			expectedStatus: http.StatusOK,
			expectedToken:  "abc",
		},
		{
			name:           "cookie",
			setup:          func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "access_token", Value: "xyz"}) },
			validator:      &mockValidator{learnerID: 42},
			expectedStatus: http.StatusOK,
			expectedToken:  "xyz",
		},
		{
			name:           "malformed header",
			setup:          func(r *http.Request) { r.Header.Set("Authorization", "Token abc") },
			validator:      &mockValidator{learnerID: 42},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "authentication required",
		},
		{
			name:           "missing token",
			setup:          func(r *http.Request) {},
			validator:      &mockValidator{},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "authentication required",
		},
		{
			name:           "invalid token",
			setup:          func(r *http.Request) { r.Header.Set("Authorization", "Bearer bad") },
			validator:      &mockValidator{err: errors.New("token is invalid")},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "invalid or expired token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID int
			var gotOK bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotID, gotOK = GetLearnerID(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/vocabulary", nil)
			tt.setup(req)
			w := httptest.NewRecorder()

			AuthMiddleware(tt.validator)(next).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.True(t, gotOK)
				assert.Equal(t, tt.validator.learnerID, gotID)
				assert.Equal(t, tt.expectedToken, tt.validator.token)
			} else {
				assert.False(t, gotOK)
				assert.Contains(t, w.Body.String(), tt.expectedBody)
				assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			}
		})
	}
}

func TestGetLearnerID(t *testing.T) {
	_, ok := GetLearnerID(context.Background())
	assert.False(t, ok)

	id, ok := GetLearnerID(WithLearnerID(context.Background(), 9))
	assert.True(t, ok)
	assert.Equal(t, 9, id)
}

func TestRequestIDMiddleware(t *testing.T) {
	t.Run("generates id", func(t *testing.T) {
		var got string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = GetRequestID(r.Context())
		})
		w := httptest.NewRecorder()

		RequestIDMiddleware(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, got)
		assert.Equal(t, got, w.Header().Get("X-Request-ID"))
	})

	t.Run("keeps incoming id", func(t *testing.T) {
		var got string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = GetRequestID(r.Context())
		})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "req-1")
		w := httptest.NewRecorder()

		RequestIDMiddleware(next).ServeHTTP(w, req)

		assert.Equal(t, "req-1", got)
		assert.Equal(t, "req-1", w.Header().Get("X-Request-ID"))
	})

	assert.Empty(t, GetRequestID(context.Background()))
}

func TestRecoveryMiddleware(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	w := httptest.NewRecorder()

	require.NotPanics(t, func() {
		RecoveryMiddleware(zap.New(core))(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
	assert.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
}

func TestCORSMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		allowed        []string
		origin         string
		method         string
		expectedOrigin string
		expectedStatus int
	}{
		{name: "wildcard", allowed: []string{"*"}, origin: "http://a.test", method: http.MethodGet, expectedOrigin: "*", expectedStatus: http.StatusOK},
		{name: "listed origin", allowed: []string{"http://A.test"}, origin: "http://a.test", method: http.MethodGet, expectedOrigin: "http://a.test", expectedStatus: http.StatusOK},
		{name: "unlisted origin", allowed: []string{"http://a.test"}, origin: "http://b.test", method: http.MethodGet, expectedOrigin: "", expectedStatus: http.StatusOK},
		{name: "no origin", allowed: []string{"*"}, origin: "", method: http.MethodGet, expectedOrigin: "", expectedStatus: http.StatusOK},
		{name: "preflight", allowed: []string{"*"}, origin: "http://a.test", method: http.MethodOptions, expectedOrigin: "*", expectedStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			w := httptest.NewRecorder()

			CORSMiddleware(tt.allowed)(http.HandlerFunc(okHandler)).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedOrigin, w.Header().Get("Access-Control-Allow-Origin"))
			assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PATCH")
		})
	}
}

func TestLoggerMiddleware(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	w := httptest.NewRecorder()

	RequestIDMiddleware(LoggerMiddleware(zap.New(core))(next)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/progress?language=italian", nil))

	entries := logs.FilterMessage("HTTP request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(http.StatusTeapot), fields["status"])
	assert.Equal(t, "/api/v1/progress", fields["path"])
	assert.Equal(t, "language=italian", fields["query"])
	assert.NotEmpty(t, fields["request_id"])
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	t.Run("declared length too large", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("a", 20)))
		w := httptest.NewRecorder()

		RequestSizeLimitMiddleware(10)(http.HandlerFunc(okHandler)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.JSONEq(t, `{"error":"request body too large"}`, w.Body.String())
	})

	t.Run("body within limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("small"))
		w := httptest.NewRecorder()

		RequestSizeLimitMiddleware(DefaultMaxRequestSize)(http.HandlerFunc(okHandler)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
