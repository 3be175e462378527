package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/journalquiz/internal/config"
	"github.com/dmitrijs2005/journalquiz/internal/content"
	"github.com/dmitrijs2005/journalquiz/internal/logging"
	"github.com/dmitrijs2005/journalquiz/internal/models"
	"github.com/dmitrijs2005/journalquiz/internal/quiz"
	"github.com/dmitrijs2005/journalquiz/internal/repositories/kv"
	"github.com/dmitrijs2005/journalquiz/internal/services"
	"github.com/jmoiron/sqlx"
)

type App struct {
	config     *config.Config
	db         *sqlx.DB
	identity   services.IdentityService
	quizzes    services.CustomQuizService
	controller *quiz.Controller
	user       *models.User
	logger     logging.Logger
	reader     *bufio.Reader
	out        io.Writer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(c.LogLevel, c.LogFormat, os.Stderr)

	db, err := kv.Open(ctx, c.DatabaseDriver, c.DatabaseDSN)
	if err != nil {
		logger.Error(ctx, "error initializing database", "driver", c.DatabaseDriver, "err", err)
		return nil, err
	}

	src, err := contentSource(c)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	identity := services.NewIdentityService(db, logger)
	quizzes := services.NewCustomQuizService(db, logger)

	return &App{
		config:     c,
		db:         db,
		identity:   identity,
		quizzes:    quizzes,
		controller: quiz.NewController(identity, src, quizzes, logger),
		logger:     logger,
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
	}, nil
}

// contentSource picks where the built-in exercises come from: a local file,
// an S3 object, or the bundle compiled into the binary.
func contentSource(c *config.Config) (content.Source, error) {
	switch {
	case c.ContentPath != "":
		src, err := content.ForPath(c.ContentPath)
		if err != nil {
			return nil, fmt.Errorf("content path: %w", err)
		}
		return src, nil
	case c.ContentS3Bucket != "":
		return content.NewS3Object(content.S3Config{
			Bucket:       c.ContentS3Bucket,
			Key:          c.ContentS3Key,
			Region:       c.S3Region,
			BaseEndpoint: c.S3BaseEndpoint,
			AccessKey:    c.S3AccessKey,
			SecretKey:    c.S3SecretKey,
		}), nil
	default:
		return content.Embedded{}, nil
	}
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.db.Close(); err != nil {
			a.logger.Warn(ctx, "closing database", "err", err)
		}
	}()
	a.Root(ctx)
}

// isLoggedIn follows the persisted session, which can exist while the quiz
// itself failed to load.
func (a *App) isLoggedIn() bool {
	return a.user != nil
}
