package content

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/journalquiz/internal/models"
	"github.com/xuri/excelize/v2"
)

// XLSXFile reads the first sheet of a workbook whose first row is the
// header.
type XLSXFile struct {
	Path string
	// Sheet overrides the sheet to read.
	Sheet string
}

func (s *XLSXFile) Load(_ context.Context) ([]models.QuizItem, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open quiz file: %w", err)
	}
	defer f.Close()

	return decodeSheet(f, s.Sheet)
}

func decodeXLSX(r io.Reader) ([]models.QuizItem, error) {
	return decodeSheet(r, "")
}

func decodeSheet(r io.Reader, sheet string) ([]models.QuizItem, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer wb.Close()

	if sheet == "" {
		sheet = wb.GetSheetName(0)
	}
	rows, err := wb.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return fromTable(rows)
}
