package content

import (
	"bytes"
	"context"
	_ "embed"

	"github.com/dmitrijs2005/journalquiz/internal/models"
)

//go:embed data/quizzes.json
var bundle []byte

// Embedded is the exercise bundle compiled into the binary.
type Embedded struct{}

func (Embedded) Load(_ context.Context) ([]models.QuizItem, error) {
	return decodeJSON(bytes.NewReader(bundle))
}
