package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrAmountPrecision = errors.New("amount finer than a cent")
	ErrAmountRange     = errors.New("amount out of range")
)

// MaxAmount bounds the magnitude ParseAmount accepts, in cents. It keeps
// every parsed value exact in a float64 and far from the int64 limits.
const MaxAmount Amount = 1e15

// Amount is a money value in cents. The zero value means "not used".
type Amount int64

// ParseAmount reads a decimal amount such as "1200", "1200.5" or
// "1 200,50". Blank input is zero. Values with more than two significant
// decimals fail with ErrAmountPrecision and values beyond MaxAmount with
// ErrAmountRange; both also match ErrInvalidAmount.
func ParseAmount(s string) (Amount, error) {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\u00a0', '\u202f', '\t':
			return -1
		case ',':
			return '.'
		}
		return r
	}, s)
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if math.Abs(f*100) > float64(MaxAmount) {
		return 0, fmt.Errorf("%w: %w: %q", ErrInvalidAmount, ErrAmountRange, s)
	}
	if decimals(f) > 2 {
		return 0, fmt.Errorf("%w: %w: %q", ErrInvalidAmount, ErrAmountPrecision, s)
	}
	return Amount(math.Round(f * 100)), nil
}

// decimals counts the fractional digits of the shortest decimal form of f,
// so "1.50", "15e-1" and "1.5" all give 1.
func decimals(f float64) int {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	i := strings.IndexByte(s, '.')
	if i < 0 {
		return 0
	}
	return len(s) - i - 1
}

func (a Amount) IsZero() bool { return a == 0 }

// String formats whole amounts without decimals ("1200") and the rest with
// two ("1200.50").
func (a Amount) String() string {
	if a%100 == 0 {
		return strconv.FormatInt(int64(a)/100, 10)
	}
	sign := ""
	v := int64(a)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON accepts a number, a numeric string, an empty string or null.
func (a *Amount) UnmarshalJSON(b []byte) error {
	var v any
	dec := json.NewDecoder(strings.NewReader(string(b)))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return err
	}
	switch x := v.(type) {
	case nil:
		*a = 0
		return nil
	case json.Number:
		p, err := ParseAmount(x.String())
		if err != nil {
			return err
		}
		*a = p
		return nil
	case string:
		p, err := ParseAmount(x)
		if err != nil {
			return err
		}
		*a = p
		return nil
	case bool:
		if !x {
			*a = 0
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidAmount, string(b))
}
