package quiz

import (
	"testing"

	"github.com/dmitrijs2005/journalquiz/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSearch(t *testing.T) {
	items := []models.QuizItem{
		{
			Question: "Achat de marchandises à crédit",
			Rows:     models.Rows{row("6111", 120000, 0), row("34552", 24000, 0), row("4411", 0, 144000)},
		},
		{
			Question: "Vente de produits finis",
			Rows:     models.Rows{row("3421", 60000, 0), row("7121", 0, 50000), row("4455", 0, 10000)},
		},
		{
			Question: "Règlement fournisseur par chèque",
			Rows:     models.Rows{row("4411", 144000, 0), row("5141", 0, 144000)},
		},
	}

	tests := []struct {
		name  string
		query string
		want  []int
	}{
		{"too short", "a", nil},
		{"empty", "", nil},
		{"question case-insensitive", "VENTE", []int{1}},
		{"question accent", "règlement", []int{2}},
		{"account label", "4411", []int{0, 2}},
		{"amount", "1440", []int{0, 2}},
		{"account or amount", "12", []int{0, 1}},
		{"no match", "immobilisation", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(items, tt.query)
			var idx []int
			for _, r := range got {
				idx = append(idx, r.Index)
				assert.Equal(t, items[r.Index].Question, r.Question)
			}
			assert.Equal(t, tt.want, idx)
		})
	}
}

func TestSearch_AmountsWithoutPadding(t *testing.T) {
	items := []models.QuizItem{
		{Question: "Frais bancaires", Rows: models.Rows{row("6147", 120050, 0), row("5141", 0, 120050)}},
	}

	assert.Len(t, Search(items, "1200.5"), 1)
	assert.Empty(t, Search(items, "00.50"))
	assert.Empty(t, Search(items, ".50"))
}

func TestAmountText(t *testing.T) {
	assert.Equal(t, "1200", amountText(120000))
	assert.Equal(t, "1200.5", amountText(120050))
	assert.Equal(t, "0.05", amountText(5))
	assert.Equal(t, "-15.25", amountText(-1525))
}
