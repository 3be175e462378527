package quiz

import (
	"errors"
	"math"
	"strings"

	"github.com/dmitrijs2005/journalquiz/internal/models"
)

// Check reports whether journal and rows answer item. The journal code must
// be identical (case-sensitive); only then are the rows compared.
func Check(item models.QuizItem, rows models.Rows, journal string) bool {
	if journal != item.Journal {
		return false
	}
	return MatchRows(item.Rows, rows)
}

// MatchRows compares submitted and canonical as multisets. Each submitted
// row consumes the first unused canonical row equal to it; a canonical row
// is never matched twice.
func MatchRows(canonical, submitted models.Rows) bool {
	var used [models.RowCount]bool

	for _, s := range submitted {
		matched := false
		for i, c := range canonical {
			if used[i] || !sameRow(s, c) {
				continue
			}
			used[i] = true
			matched = true
			break
		}
		if !matched {
			return false
		}
	}
	return true
}

// unmatched marks a typed amount that parsed as a number but cannot be held
// exactly in cents. ParseAmount never returns it, so it equals no canonical
// amount.
const unmatched models.Amount = math.MinInt64

// sameRow compares accounts as trimmed strings and amounts as numbers.
func sameRow(a, b models.Row) bool {
	if a.Debit == unmatched || a.Credit == unmatched || b.Debit == unmatched || b.Credit == unmatched {
		return false
	}
	return strings.TrimSpace(a.Account) == strings.TrimSpace(b.Account) &&
		a.Debit == b.Debit &&
		a.Credit == b.Credit
}

// ParseRow builds a row from raw form input. Unparsable or blank amounts
// count as zero. Amounts finer than a cent or out of range never match.
func ParseRow(account, debit, credit string) models.Row {
	return models.Row{
		Account: strings.TrimSpace(account),
		Debit:   parseTypedAmount(debit),
		Credit:  parseTypedAmount(credit),
	}
}

func parseTypedAmount(s string) models.Amount {
	a, err := models.ParseAmount(s)
	switch {
	case errors.Is(err, models.ErrAmountPrecision), errors.Is(err, models.ErrAmountRange):
		return unmatched
	case err != nil:
		return 0
	}
	return a
}
