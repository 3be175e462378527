package models

import "strings"

// RowCount is the fixed number of accounting rows in every exercise.
// Exercises with fewer real entries pad with empty rows.
const RowCount = 3

// Row is one line of an accounting entry.
type Row struct {
	Account string `json:"account"`
	Debit   Amount `json:"debit"`
	Credit  Amount `json:"credit"`
}

// IsEmpty reports a padding row: no account and no amounts.
func (r Row) IsEmpty() bool {
	return strings.TrimSpace(r.Account) == "" && r.Debit.IsZero() && r.Credit.IsZero()
}

// Rows is the fixed-size triple compared during validation.
type Rows [RowCount]Row

// QuizItem is one exercise: a prompt, the document the learner books, and
// the canonical answer.
type QuizItem struct {
	Question string `json:"question"`
	Document string `json:"document"`
	Journal  string `json:"journal"`
	Rows     Rows   `json:"rows"`
}
