package screen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{amount: 5420000000, want: "₹542.0 Cr"},
		{amount: 15500000, want: "₹1.6 Cr"},
		{amount: 10000000, want: "₹1.0 Cr"},
		{amount: 9999999, want: "₹100.0 L"},
		{amount: 4200000, want: "₹42.0 L"},
		{amount: 100000, want: "₹1.0 L"},
		{amount: 99999, want: "₹99,999"},
		{amount: 1234, want: "₹1,234"},
		{amount: 999, want: "₹999"},
		{amount: 0, want: "₹0"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatINR(tt.amount))
		})
	}
}

func TestGroupIndian(t *testing.T) {
	assert.Equal(t, "12,34,567", groupIndian("1234567"))
	assert.Equal(t, "1,00,00,000", groupIndian("10000000"))
	assert.Equal(t, "12,345", groupIndian("12345"))
	assert.Equal(t, "123", groupIndian("123"))
}

func TestLevelText(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{100, "Expert"}, {90, "Expert"}, {89, "Advanced"}, {70, "Advanced"},
		{69, "Intermediate"}, {50, "Intermediate"}, {49, "Beginner"}, {30, "Beginner"},
		{29, "Novice"}, {0, "Novice"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelText(tt.level), "level %d", tt.level)
	}
}

func TestBand(t *testing.T) {
	assert.Equal(t, "high", Band(80))
	assert.Equal(t, "medium", Band(79))
	assert.Equal(t, "medium", Band(60))
	assert.Equal(t, "low", Band(59))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Power Syst", truncate("Power System Analysis", 10))
	assert.Equal(t, "SCADA", truncate("SCADA", 10))
	assert.Equal(t, "₹₹", truncate("₹₹₹", 2))
}
