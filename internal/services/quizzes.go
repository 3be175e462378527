package services

import (
	"context"

	"github.com/dmitrijs2005/journalquiz/internal/dbx"
	"github.com/dmitrijs2005/journalquiz/internal/logging"
	"github.com/dmitrijs2005/journalquiz/internal/models"
	"github.com/dmitrijs2005/journalquiz/internal/repositories/kv"
	"github.com/jmoiron/sqlx"
)

// CustomQuizService keeps the learner-authored exercises that are appended
// after the built-in sequence. Load makes it usable directly as a quiz
// source.
type CustomQuizService interface {
	Load(ctx context.Context) ([]models.QuizItem, error)
	Add(ctx context.Context, items ...models.QuizItem) error
	Clear(ctx context.Context) error
}

type customQuizService struct {
	db     *sqlx.DB
	logger logging.Logger
}

func NewCustomQuizService(db *sqlx.DB, logger logging.Logger) CustomQuizService {
	return &customQuizService{db: db, logger: logger}
}

func (s *customQuizService) Load(ctx context.Context) ([]models.QuizItem, error) {
	var items []models.QuizItem
	if _, err := loadJSON(ctx, kv.NewRepository(s.db), customQuizzesKey, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Add appends items, preserving the order of those already stored.
func (s *customQuizService) Add(ctx context.Context, items ...models.QuizItem) error {
	if len(items) == 0 {
		return nil
	}
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := kv.NewRepository(tx)

		var stored []models.QuizItem
		if _, err := loadJSON(ctx, repo, customQuizzesKey, &stored); err != nil {
			return err
		}
		return saveJSON(ctx, repo, customQuizzesKey, append(stored, items...))
	})
	if err != nil {
		return err
	}
	s.logger.Info(ctx, "custom quizzes added", "count", len(items))
	return nil
}

func (s *customQuizService) Clear(ctx context.Context) error {
	return kv.NewRepository(s.db).Delete(ctx, customQuizzesKey)
}
