package content

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/journalquiz/internal/models"
)

// CSVFile reads a comma-separated table whose first row is the header.
type CSVFile struct {
	Path string
}

func (s *CSVFile) Load(_ context.Context) ([]models.QuizItem, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open quiz file: %w", err)
	}
	defer f.Close()

	return decodeCSV(f)
}

func decodeCSV(r io.Reader) ([]models.QuizItem, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedItem, err)
	}
	return fromTable(rows)
}
