package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/lingoread/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testSnapshot() models.ProgressSnapshot {
	last := time.Date(2025, 3, 9, 20, 0, 0, 0, time.UTC)
	next := last.AddDate(0, 0, 3)
	return models.ProgressSnapshot{
		Language: models.LanguageFrench,
		Items: []models.VocabularyItem{
			{ID: "a", LearnerID: 7, OriginalWord: "chat", TranslatedWord: "cat", Language: models.LanguageFrench,
				ReviewCount: 1, LastReviewed: &last, NextReview: &next, CreatedAt: last},
		},
		Activity: []models.ActivityRecord{
			{ID: 1, LearnerID: 7, ActionKind: models.ActionReadArticle, TargetKind: models.TargetArticle,
				TargetID: "article-1", Language: models.LanguageFrench, Timestamp: last},
		},
		Streak: models.StudyStreak{Days: 2, LastActivity: last},
	}
}

func TestNewProgressCache(t *testing.T) {
	db, _ := redismock.NewClientMock()
	logger := zap.NewNop()

	cache := NewProgressCache(db, time.Minute, logger)

	assert.NotNil(t, cache)
	assert.Equal(t, db, cache.redis)
	assert.Equal(t, time.Minute, cache.ttl)
	assert.Equal(t, logger, cache.logger)
}

func TestProgressKey(t *testing.T) {
	assert.Equal(t, "progress:7:french", ProgressKey(7, models.LanguageFrench))
}

func TestProgressCache_Get(t *testing.T) {
	snapshot := testSnapshot()
	encoded, err := json.Marshal(snapshot)
	require.NoError(t, err)

	tests := []struct {
		name          string
		setupMock     func(redismock.ClientMock)
		expectedError bool
		expected      *models.ProgressSnapshot
	}{
		{
			name: "hit",
			setupMock: func(mock redismock.ClientMock) {
				mock.ExpectGet("progress:7:french").SetVal(string(encoded))
			},
			expected: &snapshot,
		},
		{
			name: "miss",
			setupMock: func(mock redismock.ClientMock) {
				mock.ExpectGet("progress:7:french").RedisNil()
			},
		},
		{
			name: "corrupted entry",
			setupMock: func(mock redismock.ClientMock) {
				mock.ExpectGet("progress:7:french").SetVal("{not json")
			},
		},
		{
			name: "redis error",
			setupMock: func(mock redismock.ClientMock) {
				mock.ExpectGet("progress:7:french").SetErr(errors.New("connection refused"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := redismock.NewClientMock()
			cache := NewProgressCache(db, time.Minute, zap.NewNop())
			tt.setupMock(mock)

			result, err := cache.Get(context.Background(), 7, models.LanguageFrench)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProgressCache_Set(t *testing.T) {
	snapshot := testSnapshot()
	encoded, err := json.Marshal(snapshot)
	require.NoError(t, err)

	tests := []struct {
		name          string
		ttl           time.Duration
		setupMock     func(redismock.ClientMock)
		expectedError bool
	}{
		{
			name: "success",
			ttl:  5 * time.Minute,
			setupMock: func(mock redismock.ClientMock) {
				mock.ExpectSet("progress:7:french", encoded, 5*time.Minute).SetVal("OK")
			},
		},
		{
			name: "no expiry",
			ttl:  -1,
			setupMock: func(mock redismock.ClientMock) {
				mock.ExpectSet("progress:7:french", encoded, 0).SetVal("OK")
			},
		},
		{
			name: "redis error",
			ttl:  time.Minute,
			setupMock: func(mock redismock.ClientMock) {
				mock.ExpectSet("progress:7:french", encoded, time.Minute).SetErr(errors.New("connection refused"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := redismock.NewClientMock()
			cache := NewProgressCache(db, tt.ttl, zap.NewNop())
			tt.setupMock(mock)

			err := cache.Set(context.Background(), 7, snapshot)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProgressCache_Invalidate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		cache := NewProgressCache(db, time.Minute, zap.NewNop())
		mock.ExpectDel("progress:7:french").SetVal(1)

		err := cache.Invalidate(context.Background(), 7, models.LanguageFrench)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis error", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		cache := NewProgressCache(db, time.Minute, zap.NewNop())
		mock.ExpectDel("progress:7:french").SetErr(errors.New("connection refused"))

		err := cache.Invalidate(context.Background(), 7, models.LanguageFrench)

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
