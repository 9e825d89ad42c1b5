package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID_SegueOFormato(t *testing.T) {
	id, err := GenerateID("cli")
	require.NoError(t, err)
	assert.Regexp(t, `^cli-\d+-[a-z0-9]{6}$`, id)
}

func TestGenerateID_NaoRepeteEmSequencia(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := GenerateID("prd")
		require.NoError(t, err)
		assert.False(t, seen[id], "id repetido: %s", id)
		seen[id] = true
	}
}

func TestFormatInvoiceNumber(t *testing.T) {
	assert.Equal(t, "INV-2025-001", FormatInvoiceNumber(2025, 1))
	assert.Equal(t, "INV-2025-042", FormatInvoiceNumber(2025, 42))
	assert.Equal(t, "INV-2026-1000", FormatInvoiceNumber(2026, 1000))
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2025-06-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), date)

	date, err = ParseDate("")
	require.NoError(t, err)
	assert.True(t, date.IsZero())

	_, err = ParseDate("15/06/2025")
	assert.Error(t, err)
}

func TestDateBefore(t *testing.T) {
	ref := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		dateStr string
		want    bool
	}{
		{name: "Dia anterior", dateStr: "2025-06-14", want: true},
		{name: "Mesmo dia ignora a hora", dateStr: "2025-06-15", want: false},
		{name: "Dia seguinte", dateStr: "2025-06-16", want: false},
		{name: "Vazia", dateStr: "", want: false},
		{name: "Mal formatada", dateStr: "14/06/2025", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DateBefore(tt.dateStr, ref))
		})
	}
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 2602.22, RoundWithTwoDecimalPlace(2602.2199999999998))
	assert.Equal(t, 10.56, RoundWithTwoDecimalPlace(10.556))
	assert.Equal(t, -10.56, RoundWithTwoDecimalPlace(-10.556))
	assert.Equal(t, 100.0, RoundWithTwoDecimalPlace(100))
}
