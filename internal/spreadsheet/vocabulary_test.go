package spreadsheet

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/lingoread/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow(SheetName, cell, &r))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestWrite(t *testing.T) {
	reviewed := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)
	next := reviewed.AddDate(0, 0, 3)
	items := []models.VocabularyItem{
		{
			OriginalWord: "gatto", TranslatedWord: "cat", OriginalSentence: "Il gatto dorme.",
			SourceID: "article-12", ReviewCount: 1, LastReviewed: &reviewed, NextReview: &next,
			CreatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{OriginalWord: "cane", TranslatedWord: "dog", CreatedAt: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, items))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, Header, rows[0])
	assert.Equal(t, "gatto", rows[1][0])
	assert.Equal(t, "cat", rows[1][1])
	assert.Equal(t, "Il gatto dorme.", rows[1][2])
	assert.Equal(t, "article-12", rows[1][4])
	assert.Equal(t, "1", rows[1][7])
	assert.Equal(t, "2025-03-02T09:00:00Z", rows[1][8])
	assert.Equal(t, "2025-03-05T09:00:00Z", rows[1][9])
	assert.Equal(t, "cane", rows[2][0])
}

func TestWrite_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil))

	requests, err := Read(&buf)
	require.NoError(t, err)
	assert.Empty(t, requests)
}

func TestRead(t *testing.T) {
	tests := []struct {
		name          string
		rows          [][]any
		expected      []models.CreateVocabularyRequest
		expectedError bool
	}{
		{
			name: "with header",
			rows: [][]any{
				{"Word", "Translation", "Sentence"},
				{"gatto", "cat", "Il gatto dorme."},
				{" cane ", "dog"},
			},
			expected: []models.CreateVocabularyRequest{
				{OriginalWord: "gatto", TranslatedWord: "cat", OriginalSentence: "Il gatto dorme."},
				{OriginalWord: "cane", TranslatedWord: "dog"},
			},
		},
		{
			name: "without header",
			rows: [][]any{
				{"chat", "cat", "", "", "song-3", "La vie en rose"},
			},
			expected: []models.CreateVocabularyRequest{
				{OriginalWord: "chat", TranslatedWord: "cat", SourceID: "song-3", SourceTitle: "La vie en rose"},
			},
		},
		{
			name: "blank rows skipped",
			rows: [][]any{
				{"word", "translation"},
				{"", ""},
				{"Hund", "dog"},
			},
			expected: []models.CreateVocabularyRequest{
				{OriginalWord: "Hund", TranslatedWord: "dog"},
			},
		},
		{
			name: "missing translation",
			rows: [][]any{
				{"Word", "Translation"},
				{"Katze", ""},
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requests, err := Read(workbook(t, tt.rows))

			if tt.expectedError {
				var vErr *models.ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, "row 2", vErr.Field)
				assert.Nil(t, requests)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, requests)
			}
		})
	}
}

func TestRead_NotAWorkbook(t *testing.T) {
	requests, err := Read(strings.NewReader("word,translation\ngatto,cat\n"))

	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "file", vErr.Field)
	assert.Nil(t, requests)
}
