package content

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/journalquiz/internal/models"
)

// Columns is the header of tabular quiz files, in order.
var Columns = []string{
	"question", "facture", "journal",
	"cpt_1", "mnt_d1", "mnt_c1",
	"cpt_2", "mnt_d2", "mnt_c2",
	"cpt_3", "mnt_d3", "mnt_c3",
}

// account is an account label that may be encoded as a JSON number.
type account string

func (a *account) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch x := v.(type) {
	case nil:
		*a = ""
	case string:
		*a = account(strings.TrimSpace(x))
	case float64:
		*a = account(strconv.FormatFloat(x, 'f', -1, 64))
	default:
		return fmt.Errorf("account: unexpected %s", string(b))
	}
	return nil
}

type record struct {
	Question string        `json:"question"`
	Facture  string        `json:"facture"`
	Journal  string        `json:"journal"`
	Cpt1     account       `json:"cpt_1"`
	MntD1    models.Amount `json:"mnt_d1"`
	MntC1    models.Amount `json:"mnt_c1"`
	Cpt2     account       `json:"cpt_2"`
	MntD2    models.Amount `json:"mnt_d2"`
	MntC2    models.Amount `json:"mnt_c2"`
	Cpt3     account       `json:"cpt_3"`
	MntD3    models.Amount `json:"mnt_d3"`
	MntC3    models.Amount `json:"mnt_c3"`
}

func (r record) item() models.QuizItem {
	return models.QuizItem{
		Question: strings.TrimSpace(r.Question),
		Document: strings.TrimSpace(r.Facture),
		Journal:  strings.TrimSpace(r.Journal),
		Rows: models.Rows{
			{Account: string(r.Cpt1), Debit: r.MntD1, Credit: r.MntC1},
			{Account: string(r.Cpt2), Debit: r.MntD2, Credit: r.MntC2},
			{Account: string(r.Cpt3), Debit: r.MntD3, Credit: r.MntC3},
		},
	}
}

// recordFromFields builds a record from a header-keyed table row.
func recordFromFields(fields map[string]string) (record, error) {
	r := record{
		Question: fields["question"],
		Facture:  fields["facture"],
		Journal:  fields["journal"],
		Cpt1:     account(strings.TrimSpace(fields["cpt_1"])),
		Cpt2:     account(strings.TrimSpace(fields["cpt_2"])),
		Cpt3:     account(strings.TrimSpace(fields["cpt_3"])),
	}

	amounts := []struct {
		col string
		dst *models.Amount
	}{
		{"mnt_d1", &r.MntD1}, {"mnt_c1", &r.MntC1},
		{"mnt_d2", &r.MntD2}, {"mnt_c2", &r.MntC2},
		{"mnt_d3", &r.MntD3}, {"mnt_c3", &r.MntC3},
	}
	for _, a := range amounts {
		v, err := models.ParseAmount(fields[a.col])
		if err != nil {
			return record{}, fmt.Errorf("%s: %w", a.col, err)
		}
		*a.dst = v
	}
	return r, nil
}

func validate(item models.QuizItem, n int) error {
	if item.Question == "" {
		return fmt.Errorf("%w: item %d has no question", ErrMalformedItem, n)
	}
	if item.Journal == "" {
		return fmt.Errorf("%w: item %d has no journal", ErrMalformedItem, n)
	}
	return nil
}

// fromTable turns a header row plus data rows into items. Header names are
// matched case-insensitively; unknown columns are ignored and blank rows
// skipped.
func fromTable(rows [][]string) ([]models.QuizItem, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}

	var items []models.QuizItem
	for n, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		fields := make(map[string]string, len(header))
		for i, v := range row {
			if i < len(header) {
				fields[header[i]] = v
			}
		}
		rec, err := recordFromFields(fields)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrMalformedItem, n+2, err)
		}
		item := rec.item()
		if err := validate(item, n+1); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func blankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
