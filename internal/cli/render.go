package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dmitrijs2005/journalquiz/internal/chart"
	"github.com/dmitrijs2005/journalquiz/internal/models"
	"github.com/dmitrijs2005/journalquiz/internal/quiz"
)

func renderQuestion(w io.Writer, c *quiz.Controller) {
	switch c.State() {
	case quiz.StateAwaitingAuth:
		fmt.Fprintln(w, "Connectez-vous ou créez un compte (login, register).")
		return
	case quiz.StateNoData:
		fmt.Fprintln(w, quiz.MsgNoData)
		return
	case quiz.StateCompleted:
		fmt.Fprintln(w, quiz.MsgCompleted)
		fmt.Fprintln(w, "Tapez 'reset' pour recommencer ou 'jump N' pour revoir un exercice.")
		return
	}

	item := c.Current()
	fmt.Fprintf(w, "Exercice %d/%d\n", c.Index()+1, c.Len())
	fmt.Fprintln(w, item.Question)
	if item.Document != "" {
		fmt.Fprintf(w, "Document: %s\n", item.Document)
	}
	if msg := c.Feedback().Message(); msg != "" {
		fmt.Fprintln(w, msg)
	}
	renderControls(w, c.Controls())
}

func renderControls(w io.Writer, ctl quiz.Controls) {
	var cmds []string
	if ctl.Validate {
		cmds = append(cmds, "answer")
	}
	if ctl.Solution {
		cmds = append(cmds, "solution")
	}
	if ctl.Advance {
		cmds = append(cmds, "next")
	}
	if len(cmds) > 0 {
		fmt.Fprintf(w, "Commandes: %v\n", cmds)
	}
}

// renderEntry prints the journal code and the non-empty rows as a table,
// labelling known accounts from the chart.
func renderEntry(w io.Writer, item models.QuizItem) {
	fmt.Fprintf(w, "Journal: %s\n", item.Journal)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Compte\tIntitulé\tDébit\tCrédit")
	for _, r := range item.Rows {
		if r.IsEmpty() {
			continue
		}
		title := ""
		if acc, err := chart.Lookup(r.Account); err == nil {
			title = acc.Titre
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Account, title, amountCell(r.Debit), amountCell(r.Credit))
	}
	_ = tw.Flush()
}

func amountCell(a models.Amount) string {
	if a.IsZero() {
		return ""
	}
	return a.String()
}

func renderAccount(w io.Writer, acc chart.Account) {
	fmt.Fprintf(w, "%s  %s\n", acc.Numero, acc.Titre)
	fmt.Fprintf(w, "FR: %s\n", acc.ExplanationFR())
	fmt.Fprintf(w, "Darija: %s\n", acc.ExplanationDarija())
}
