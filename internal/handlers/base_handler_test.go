package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lingoread/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestBaseHandler_RespondServiceError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "validation error",
			err:            &models.ValidationError{Field: "originalWord", Message: "is required"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"originalWord: is required"}`,
		},
		{
			name:           "wrapped not found",
			err:            fmt.Errorf("lookup: %w", &models.NotFoundError{Resource: "vocabulary item", ID: "a"}),
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"vocabulary item a not found"}`,
		},
		{
			name:           "precondition failed",
			err:            &models.PreconditionError{Message: "changed"},
			expectedStatus: http.StatusPreconditionFailed,
			expectedBody:   `{"error":"changed"}`,
		},
		{
			name:           "internal error is not leaked",
			err:            errors.New("dial tcp: connection refused"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"failed to do it"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &BaseHandler{logger: zap.NewNop()}
			w := httptest.NewRecorder()

			h.respondServiceError(w, httptest.NewRequest(http.MethodGet, "/", nil), tt.err, "failed to do it")

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		})
	}
}

func TestLanguagesHandler_GetAll(t *testing.T) {
	h := NewLanguagesHandler(zap.NewNop())
	router := newTestRouter(0, h.RegisterRoutes)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/languages", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `{"id":"italian","code":"it","name":"Italian"}`)
	assert.Contains(t, w.Body.String(), `"korean"`)
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"read_article", "saved_word"}, splitList("read_article, ,saved_word,"))
}
