package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/journalquiz/internal/models"
)

// JSONFile reads an array of flat records from a local file.
type JSONFile struct {
	Path string
}

func (s *JSONFile) Load(_ context.Context) ([]models.QuizItem, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open quiz file: %w", err)
	}
	defer f.Close()

	return decodeJSON(f)
}

func decodeJSON(r io.Reader) ([]models.QuizItem, error) {
	var records []record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedItem, err)
	}

	items := make([]models.QuizItem, 0, len(records))
	for n, rec := range records {
		item := rec.item()
		if err := validate(item, n+1); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
