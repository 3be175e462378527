// Package chart is the embedded chart of accounts (plan comptable) used to
// explain account numbers in French and Darija.
package chart

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

var ErrUnknownAccount = errors.New("unknown account")

// Fallback texts shown when an account has no explanation.
const (
	NoExplanationFR     = "Pas d'explication disponible en Français."
	NoExplanationDarija = "ماكاينش شي شرح بالدارجة هنا."
)

// Account is one entry of the chart.
type Account struct {
	Numero      string `json:"numero"`
	Titre       string `json:"titre"`
	Explication string `json:"explication"`
	ExpDarija   string `json:"exp_darija"`
}

// ExplanationFR returns the French explanation or its fallback.
func (a Account) ExplanationFR() string {
	if strings.TrimSpace(a.Explication) == "" {
		return NoExplanationFR
	}
	return a.Explication
}

// ExplanationDarija returns the Darija explanation or its fallback.
func (a Account) ExplanationDarija() string {
	if strings.TrimSpace(a.ExpDarija) == "" {
		return NoExplanationDarija
	}
	return a.ExpDarija
}

//go:embed data/accounts.json
var raw []byte

var (
	once     sync.Once
	accounts []Account
	byNumero map[string]Account
	loadErr  error
)

func load() {
	once.Do(func() {
		if err := json.Unmarshal(raw, &accounts); err != nil {
			loadErr = fmt.Errorf("decode chart of accounts: %w", err)
			return
		}
		sort.Slice(accounts, func(i, j int) bool { return accounts[i].Numero < accounts[j].Numero })
		byNumero = make(map[string]Account, len(accounts))
		for _, a := range accounts {
			byNumero[a.Numero] = a
		}
	})
}

// Lookup finds an account by its number.
func Lookup(numero string) (Account, error) {
	load()
	if loadErr != nil {
		return Account{}, loadErr
	}
	a, ok := byNumero[strings.TrimSpace(numero)]
	if !ok {
		return Account{}, fmt.Errorf("%w: %q", ErrUnknownAccount, numero)
	}
	return a, nil
}

// All returns the chart sorted by account number.
func All() ([]Account, error) {
	load()
	if loadErr != nil {
		return nil, loadErr
	}
	out := make([]Account, len(accounts))
	copy(out, accounts)
	return out, nil
}
