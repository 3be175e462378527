package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    Amount
		wantErr bool
	}{
		{in: "", want: 0},
		{in: "   ", want: 0},
		{in: "1200", want: 120000},
		{in: "1200.5", want: 120050},
		{in: "1 200,50", want: 120050},
		{in: "0.1", want: 10},
		{in: "-15", want: -1500},
		{in: "12abc", wantErr: true},
		{in: "NaN", wantErr: true},
		{in: "1200.500", want: 120050},
		{in: "1.5e3", want: 150000},
		{in: "1000.004", wantErr: true},
		{in: "999.996", wantErr: true},
		{in: "1e300", wantErr: true},
		{in: "-1e300", wantErr: true},
		{in: "10000000000000.01", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAmount_ErrorKinds(t *testing.T) {
	_, err := ParseAmount("1000,004")
	assert.ErrorIs(t, err, ErrAmountPrecision)
	assert.NotErrorIs(t, err, ErrAmountRange)

	_, err = ParseAmount("-1e300")
	assert.ErrorIs(t, err, ErrAmountRange)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	got, err := ParseAmount("10000000000000")
	require.NoError(t, err)
	assert.Equal(t, MaxAmount, got)

	_, err = ParseAmount("abc")
	assert.NotErrorIs(t, err, ErrAmountPrecision)
	assert.NotErrorIs(t, err, ErrAmountRange)
}

func TestAmount_String(t *testing.T) {
	assert.Equal(t, "0", Amount(0).String())
	assert.Equal(t, "1200", Amount(120000).String())
	assert.Equal(t, "1200.50", Amount(120050).String())
	assert.Equal(t, "-0.05", Amount(-5).String())
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	var got struct {
		A Amount `json:"a"`
		B Amount `json:"b"`
		C Amount `json:"c"`
		D Amount `json:"d"`
	}
	err := json.Unmarshal([]byte(`{"a": 512, "b": "99.9", "c": null, "d": ""}`), &got)
	require.NoError(t, err)

	assert.Equal(t, Amount(51200), got.A)
	assert.Equal(t, Amount(9990), got.B)
	assert.Zero(t, got.C)
	assert.Zero(t, got.D)

	var bad Amount
	assert.Error(t, json.Unmarshal([]byte(`{"x":1}`), &bad))
}

func TestQuizItem_JSONShape(t *testing.T) {
	item := QuizItem{
		Question: "q",
		Journal:  "ACH",
		Rows:     Rows{{Account: "6111", Debit: 100000}},
	}
	b, err := json.Marshal(item)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"debit":1000`)

	var back QuizItem
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, item, back)
	assert.True(t, back.Rows[2].IsEmpty())
}
