package quiz

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/journalquiz/internal/models"
)

// MinSearchLength is the shortest query Search answers.
const MinSearchLength = 2

// SearchResult points at one item of the sequence.
type SearchResult struct {
	Index    int
	Question string
}

// Search returns the items whose question contains query (case-insensitive)
// or whose account labels or non-zero amounts contain it, in sequence order.
func Search(items []models.QuizItem, query string) []SearchResult {
	q := strings.ToLower(query)
	if utf8.RuneCountInString(q) < MinSearchLength {
		return nil
	}

	var results []SearchResult
	for i, item := range items {
		if matchesQuery(item, q) {
			results = append(results, SearchResult{Index: i, Question: item.Question})
		}
	}
	return results
}

func matchesQuery(item models.QuizItem, q string) bool {
	if strings.Contains(strings.ToLower(item.Question), q) {
		return true
	}
	for _, r := range item.Rows {
		if r.Account != "" && strings.Contains(r.Account, q) {
			return true
		}
	}
	for _, r := range item.Rows {
		for _, a := range []models.Amount{r.Debit, r.Credit} {
			if !a.IsZero() && strings.Contains(amountText(a), q) {
				return true
			}
		}
	}
	return false
}

// amountText is the shortest decimal form of a: "1200", "1200.5".
func amountText(a models.Amount) string {
	return strconv.FormatFloat(float64(a)/100, 'f', -1, 64)
}
