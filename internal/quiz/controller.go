package quiz

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/journalquiz/internal/logging"
	"github.com/dmitrijs2005/journalquiz/internal/models"
)

// SessionStore is the part of the identity store the controller needs.
type SessionStore interface {
	CurrentSession(ctx context.Context) (*models.User, error)
	SaveProgress(ctx context.Context, index int) error
	ResetProgress(ctx context.Context) error
}

// Source supplies an ordered list of quiz items.
type Source interface {
	Load(ctx context.Context) ([]models.QuizItem, error)
}

// Extend returns a new sequence made of builtin followed by custom. Neither
// input is modified.
func Extend(builtin, custom []models.QuizItem) []models.QuizItem {
	seq := make([]models.QuizItem, 0, len(builtin)+len(custom))
	seq = append(seq, builtin...)
	return append(seq, custom...)
}

type Controller struct {
	store   SessionStore
	builtin Source
	custom  Source
	logger  logging.Logger

	user     *models.User
	items    []models.QuizItem
	index    int
	current  *models.QuizItem
	state    State
	feedback Feedback
	controls Controls
}

// NewController builds a controller in StateAwaitingAuth. custom may be nil.
func NewController(store SessionStore, builtin, custom Source, logger logging.Logger) *Controller {
	return &Controller{
		store:   store,
		builtin: builtin,
		custom:  custom,
		logger:  logger,
		state:   StateAwaitingAuth,
	}
}

// Initialize binds the active session, loads the sequence and shows the
// item at the saved progress. Without a session the controller stays in
// StateAwaitingAuth and ErrNoActiveSession is returned so the caller can
// hand over to login. An empty sequence yields ErrEmptyQuizData.
func (c *Controller) Initialize(ctx context.Context) error {
	c.reset()

	user, err := c.store.CurrentSession(ctx)
	if err != nil {
		return fmt.Errorf("read session: %w", err)
	}
	if user == nil {
		return ErrNoActiveSession
	}

	items, err := c.loadSequence(ctx)
	if err != nil {
		return err
	}

	c.user = user
	c.items = items

	if len(items) == 0 {
		c.state = StateNoData
		return ErrEmptyQuizData
	}

	start := user.Progress
	if start < 0 {
		start = 0
	}
	if start > len(items) {
		start = len(items)
	}

	c.logger.Debug(ctx, "quiz initialized", "user_id", user.ID, "items", len(items), "start", start)
	return c.LoadQuestion(start)
}

func (c *Controller) loadSequence(ctx context.Context) ([]models.QuizItem, error) {
	var builtin, custom []models.QuizItem
	var err error

	if c.builtin != nil {
		if builtin, err = c.builtin.Load(ctx); err != nil {
			return nil, fmt.Errorf("load quiz items: %w", err)
		}
	}
	if c.custom != nil {
		if custom, err = c.custom.Load(ctx); err != nil {
			return nil, fmt.Errorf("load custom quiz items: %w", err)
		}
	}
	return Extend(builtin, custom), nil
}

// Clear drops the session context, e.g. after logout.
func (c *Controller) Clear() {
	c.reset()
}

func (c *Controller) reset() {
	c.user = nil
	c.items = nil
	c.index = 0
	c.current = nil
	c.state = StateAwaitingAuth
	c.feedback = FeedbackNone
	c.controls = Controls{}
}

// LoadQuestion shows the item at index. An index at or past the end of the
// sequence completes the quiz and clears the interactive surface.
func (c *Controller) LoadQuestion(index int) error {
	if c.user == nil || len(c.items) == 0 {
		return ErrInvalidTransition
	}
	if index < 0 {
		return ErrIndexOutOfRange
	}

	c.feedback = FeedbackNone

	if index >= len(c.items) {
		c.index = len(c.items)
		c.current = nil
		c.controls = Controls{}
		c.state = StateCompleted
		return nil
	}

	c.index = index
	c.current = &c.items[index]
	c.controls = Controls{Validate: true, Solution: true}
	c.state = StateDisplaying
	return nil
}

// Validate checks an attempt at the current item. Incorrect attempts may be
// retried any number of times. A correct attempt hides validation and
// solution and offers Advance.
func (c *Controller) Validate(rows models.Rows, journal string) (bool, error) {
	if c.state != StateDisplaying && c.state != StateValidatedIncorrect {
		return false, ErrInvalidTransition
	}

	if !Check(*c.current, rows, journal) {
		c.state = StateValidatedIncorrect
		c.feedback = FeedbackIncorrect
		return false, nil
	}

	c.state = StateValidatedCorrect
	c.feedback = FeedbackCorrect
	c.controls = Controls{Advance: true}
	return true, nil
}

// Advance moves past a correctly answered item and persists the new
// position before showing it.
func (c *Controller) Advance(ctx context.Context) error {
	if c.state != StateValidatedCorrect {
		return ErrInvalidTransition
	}

	next := c.index + 1
	if err := c.store.SaveProgress(ctx, next); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	c.user.Progress = next

	return c.LoadQuestion(next)
}

// JumpTo shows the item at index without touching saved progress.
func (c *Controller) JumpTo(index int) error {
	if c.state == StateAwaitingAuth || c.state == StateNoData {
		return ErrInvalidTransition
	}
	if index < 0 || index >= len(c.items) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(c.items))
	}
	return c.LoadQuestion(index)
}

// ShowSolution returns the answer key of the current item.
func (c *Controller) ShowSolution() (models.QuizItem, error) {
	if c.current == nil {
		return models.QuizItem{}, ErrInvalidTransition
	}
	return *c.current, nil
}

// Reset rewinds saved progress to the first item and reloads the sequence.
func (c *Controller) Reset(ctx context.Context) error {
	if err := c.store.ResetProgress(ctx); err != nil {
		return fmt.Errorf("reset progress: %w", err)
	}
	return c.Initialize(ctx)
}

// Search looks up items of the loaded sequence.
func (c *Controller) Search(query string) []SearchResult {
	return Search(c.items, query)
}

func (c *Controller) State() State { return c.state }

func (c *Controller) Feedback() Feedback { return c.feedback }

func (c *Controller) Controls() Controls { return c.controls }

// Index is the position of the displayed item, or Len once completed.
func (c *Controller) Index() int { return c.index }

func (c *Controller) Len() int { return len(c.items) }

// User is the session the controller was initialized with.
func (c *Controller) User() *models.User { return c.user }

// Current returns the displayed item, or nil when none is displayed.
func (c *Controller) Current() *models.QuizItem { return c.current }
