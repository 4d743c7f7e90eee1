// Package spreadsheet converts vocabulary lists to and from xlsx workbooks
package spreadsheet

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/lingoread/backend/internal/models"
	"github.com/xuri/excelize/v2"
)

// SheetName is the sheet exported vocabulary is written to
const SheetName = "Sheet1"

// Header is the first row of an exported workbook
// Import reads the first six columns in this order.
var Header = []string{
	"Word", "Translation", "Sentence", "Sentence translation", "Source ID", "Source title",
	"Mastered", "Reviews", "Last reviewed", "Next review", "Created",
}

// Write renders items into an xlsx workbook, one item per row below the header
func Write(w io.Writer, items []models.VocabularyItem) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetRow(SheetName, "A1", &Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	lastHeaderCell, err := excelize.CoordinatesToCellName(len(Header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, "A1", lastHeaderCell, style); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}
	if err := f.SetColWidth(SheetName, "A", "F", 24); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}

	for i, item := range items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{
			item.OriginalWord,
			item.TranslatedWord,
			item.OriginalSentence,
			item.TranslatedSentence,
			item.SourceID,
			item.SourceTitle,
			item.Mastered,
			item.ReviewCount,
			formatTime(item.LastReviewed),
			formatTime(item.NextReview),
			item.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// Read parses the first sheet of an xlsx workbook into save requests
//
// A header row is detected by its first cell and skipped. Blank rows are skipped, rows with only
// one of word and translation are rejected with a ValidationError naming the row.
// The returned requests carry no language, the caller decides it.
func Read(r io.Reader) ([]models.CreateVocabularyRequest, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &models.ValidationError{Field: "file", Message: "not a valid xlsx workbook"}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &models.ValidationError{Field: "file", Message: "workbook has no sheets"}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}

	requests := make([]models.CreateVocabularyRequest, 0, len(rows))
	for i, row := range rows {
		if i == 0 && isHeader(row) {
			continue
		}

		req := models.CreateVocabularyRequest{
			OriginalWord:       cell(row, 0),
			TranslatedWord:     cell(row, 1),
			OriginalSentence:   cell(row, 2),
			TranslatedSentence: cell(row, 3),
			SourceID:           cell(row, 4),
			SourceTitle:        cell(row, 5),
		}
		if req.OriginalWord == "" && req.TranslatedWord == "" {
			continue
		}
		if req.OriginalWord == "" || req.TranslatedWord == "" {
			return nil, &models.ValidationError{
				Field:   "row " + strconv.Itoa(i+1),
				Message: "word and translation are required",
			}
		}
		requests = append(requests, req)
	}

	return requests, nil
}

func isHeader(row []string) bool {
	return strings.EqualFold(cell(row, 0), Header[0])
}

func cell(row []string, index int) string {
	if index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
