package handler

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type betStruct struct {
	Bet   decimal.Decimal `validate:"gt=0"`
	Count int             `validate:"gte=1,lte=10"`
}

func TestValidator_DecimalBet(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name    string
		bet     decimal.Decimal
		wantErr bool
	}{
		{"positive", decimal.NewFromInt(1), false},
		{"fraction", decimal.RequireFromString("0.01"), false},
		{"zero", decimal.Zero, true},
		{"negative", decimal.NewFromInt(-5), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(betStruct{Bet: tt.bet, Count: 1})
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, FormatValidationError(err), "bet")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	err := GetValidator().ValidateStruct(betStruct{Bet: decimal.NewFromInt(1), Count: 11})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, map[string]string{"count": "Must be at most 10"}, fields)

	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(errors.New("boom")))
}
