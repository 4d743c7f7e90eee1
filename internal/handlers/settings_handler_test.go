package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lingoread/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSettingsHandler_Get(t *testing.T) {
	svc := &mockSettingsService{settings: &models.LearnerSettings{LearnerID: testLearnerID, SelectedLanguage: models.LanguageItalian}}
	router := newTestRouter(testLearnerID, NewSettingsHandler(svc, zap.NewNop()).RegisterRoutes)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/settings", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"learnerId":7,"selectedLanguage":"italian","email":"","remindersEnabled":false}`, w.Body.String())
}

func TestSettingsHandler_Update(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &mockSettingsService{settings: &models.LearnerSettings{LearnerID: testLearnerID, SelectedLanguage: models.LanguageSpanish}}
		router := newTestRouter(testLearnerID, NewSettingsHandler(svc, zap.NewNop()).RegisterRoutes)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/settings", strings.NewReader(`{"selectedLanguage":"spanish"}`)))

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, svc.request)
		require.NotNil(t, svc.request.SelectedLanguage)
		assert.Equal(t, models.LanguageSpanish, *svc.request.SelectedLanguage)
		assert.Nil(t, svc.request.Email)
		assert.Nil(t, svc.request.RemindersEnabled)
	})

	t.Run("reminders without email", func(t *testing.T) {
		svc := &mockSettingsService{err: &models.ValidationError{Field: "email", Message: "is required to enable reminders"}}
		router := newTestRouter(testLearnerID, NewSettingsHandler(svc, zap.NewNop()).RegisterRoutes)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/settings", strings.NewReader(`{"remindersEnabled":true}`)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProgressHandler_Summary(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &mockProgressService{summary: &models.ProgressSummary{Language: models.LanguageItalian, TotalWords: 4, MasteredWords: 1, MasteryPercentage: 25}}
		router := newTestRouter(testLearnerID, NewProgressHandler(svc, zap.NewNop()).RegisterRoutes)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/progress?language=italian", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "italian", svc.language)
		assert.Contains(t, w.Body.String(), `"masteryPercentage":25`)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		svc := &mockProgressService{}
		router := newTestRouter(0, NewProgressHandler(svc, zap.NewNop()).RegisterRoutes)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/progress", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, svc.language)
	})
}
