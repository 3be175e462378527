package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/journalquiz/internal/chart"
	"github.com/dmitrijs2005/journalquiz/internal/content"
	"github.com/dmitrijs2005/journalquiz/internal/models"
	"github.com/dmitrijs2005/journalquiz/internal/quiz"
)

// startQuiz (re)initializes the controller from the active session and
// shows where the learner stands.
func (a *App) startQuiz(ctx context.Context) error {
	err := a.controller.Initialize(ctx)
	switch {
	case err == nil, errors.Is(err, quiz.ErrEmptyQuizData), errors.Is(err, quiz.ErrNoActiveSession):
		renderQuestion(a.out, a.controller)
		if errors.Is(err, quiz.ErrNoActiveSession) {
			return nil
		}
		return err
	default:
		a.logger.Error(ctx, "quiz initialization failed", "err", err)
		fmt.Fprintln(a.out, "Impossible de charger le quiz.")
		return err
	}
}

// Show renders the current exercise, retrying the load when a session exists
// but the quiz never started.
func (a *App) Show(ctx context.Context) error {
	if a.controller.State() == quiz.StateAwaitingAuth {
		return a.startQuiz(ctx)
	}
	renderQuestion(a.out, a.controller)
	return nil
}

// Answer reads the journal code and three rows and validates them.
func (a *App) Answer(ctx context.Context) error {
	if !a.controller.Controls().Validate {
		fmt.Fprintln(a.out, "Aucune question à valider.")
		return quiz.ErrInvalidTransition
	}

	rows, journal, err := a.readEntry()
	if err != nil {
		return err
	}

	ok, err := a.controller.Validate(rows, journal)
	if err != nil {
		a.logger.Error(ctx, "validate failed", "err", err)
		return err
	}
	a.logger.Debug(ctx, "answer checked", "index", a.controller.Index(), "correct", ok)

	fmt.Fprintln(a.out, a.controller.Feedback().Message())
	renderControls(a.out, a.controller.Controls())
	return nil
}

func (a *App) readEntry() (models.Rows, string, error) {
	var rows models.Rows

	journal, err := getSimpleText(a.reader, "Journal (ACH, VTE, BQE, CAI...)", a.out)
	if err != nil {
		return rows, "", err
	}
	for i := range rows {
		account, debit, credit, err := getRow(a.reader, i+1, a.out)
		if err != nil {
			return rows, "", err
		}
		rows[i] = quiz.ParseRow(account, debit, credit)
	}
	return rows, journal, nil
}

func (a *App) Solution(_ context.Context) error {
	item, err := a.controller.ShowSolution()
	if err != nil {
		fmt.Fprintln(a.out, "Aucune question affichée.")
		return err
	}
	renderEntry(a.out, item)
	return nil
}

func (a *App) Next(ctx context.Context) error {
	if err := a.controller.Advance(ctx); err != nil {
		if errors.Is(err, quiz.ErrInvalidTransition) {
			fmt.Fprintln(a.out, "Répondez correctement avant de passer à la suite.")
		} else {
			a.logger.Error(ctx, "advance failed", "err", err)
		}
		return err
	}
	renderQuestion(a.out, a.controller)
	return nil
}

// Jump shows exercise n (1-based) without saving progress.
func (a *App) Jump(_ context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: jump <n>")
		return nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(a.out, "Numéro invalide: %s\n", args[0])
		return err
	}
	if err := a.controller.JumpTo(n - 1); err != nil {
		if errors.Is(err, quiz.ErrIndexOutOfRange) {
			fmt.Fprintf(a.out, "Choisissez un exercice entre 1 et %d.\n", a.controller.Len())
		}
		return err
	}
	renderQuestion(a.out, a.controller)
	return nil
}

func (a *App) Search(_ context.Context, args []string) error {
	query := strings.Join(args, " ")
	results := a.controller.Search(query)
	if len(results) == 0 {
		if len([]rune(query)) < quiz.MinSearchLength {
			fmt.Fprintf(a.out, "Tapez au moins %d caractères.\n", quiz.MinSearchLength)
		} else {
			fmt.Fprintln(a.out, "Aucun résultat.")
		}
		return nil
	}
	for _, r := range results {
		fmt.Fprintf(a.out, "%d: %s\n", r.Index+1, r.Question)
	}
	return nil
}

func (a *App) Reset(ctx context.Context) error {
	if err := a.controller.Reset(ctx); err != nil && !errors.Is(err, quiz.ErrEmptyQuizData) {
		a.logger.Error(ctx, "reset failed", "err", err)
		return err
	}
	renderQuestion(a.out, a.controller)
	return nil
}

func (a *App) Account(_ context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: account <numéro>")
		return nil
	}
	acc, err := chart.Lookup(args[0])
	if err != nil {
		fmt.Fprintf(a.out, "Compte inconnu: %s\n", args[0])
		return err
	}
	renderAccount(a.out, acc)
	return nil
}

// AddQuiz prompts for a new exercise and appends it to the custom list.
func (a *App) AddQuiz(ctx context.Context) error {
	question, err := getSimpleText(a.reader, "Question", a.out)
	if err != nil {
		return err
	}
	document, err := getSimpleText(a.reader, "Document (facultatif)", a.out)
	if err != nil {
		return err
	}
	rows, journal, err := a.readEntry()
	if err != nil {
		return err
	}
	if question == "" || journal == "" {
		fmt.Fprintln(a.out, "La question et le journal sont obligatoires.")
		return content.ErrMalformedItem
	}

	item := models.QuizItem{Question: question, Document: document, Journal: journal, Rows: rows}
	return a.addItems(ctx, item)
}

// Import appends every exercise of a JSON, CSV or XLSX file to the custom
// list.
func (a *App) Import(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: import <fichier.json|csv|xlsx>")
		return nil
	}
	src, err := content.ForPath(args[0])
	if err != nil {
		fmt.Fprintln(a.out, "Format non pris en charge.")
		return err
	}
	items, err := src.Load(ctx)
	if err != nil {
		a.logger.Error(ctx, "import failed", "path", args[0], "err", err)
		fmt.Fprintf(a.out, "Import impossible: %v\n", err)
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "Aucun exercice dans ce fichier.")
		return nil
	}
	return a.addItems(ctx, items...)
}

// ClearQuizzes drops every custom exercise and reloads the sequence.
func (a *App) ClearQuizzes(ctx context.Context) error {
	if err := a.quizzes.Clear(ctx); err != nil {
		a.logger.Error(ctx, "clearing custom quizzes failed", "err", err)
		return err
	}
	fmt.Fprintln(a.out, "Exercices personnalisés supprimés.")
	return a.startQuiz(ctx)
}

func (a *App) addItems(ctx context.Context, items ...models.QuizItem) error {
	if err := a.quizzes.Add(ctx, items...); err != nil {
		a.logger.Error(ctx, "saving custom quizzes failed", "err", err)
		return err
	}
	fmt.Fprintf(a.out, "%d exercice(s) ajouté(s).\n", len(items))
	return a.startQuiz(ctx)
}
