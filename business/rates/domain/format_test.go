package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		rate string
		want string
	}{
		{"0.1045", "10.45%"},
		{"0.10", "10.00%"},
		{"0.0955", "9.55%"},
		{"0.003", "0.30%"},
		{"0", "0.00%"},
		{"-0.0005", "-0.05%"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatPercent(decimal.RequireFromString(tt.rate)); got != tt.want {
				t.Errorf("FormatPercent(%s) = %q, want %q", tt.rate, got, tt.want)
			}
		})
	}
}

func TestFormatSpread(t *testing.T) {
	tests := []struct {
		spread string
		want   string
	}{
		{"0.0030", "S+30"},
		{"0.0080", "S+80"},
		{"0.0075", "S+75"},
		{"0", "S+0"},
		{"-0.0005", "S-5"},
		{"0.001", "S+10"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatSpread(decimal.RequireFromString(tt.spread)); got != tt.want {
				t.Errorf("FormatSpread(%s) = %q, want %q", tt.spread, got, tt.want)
			}
		})
	}
}

func TestFormatRate(t *testing.T) {
	rate := decimal.RequireFromString("0.0030")

	if got := FormatRate(rate, ExposureFixed); got != "0.30%" {
		t.Errorf("FormatRate(fixed) = %q, want %q", got, "0.30%")
	}
	if got := FormatRate(rate, ExposureFloating); got != "S+30" {
		t.Errorf("FormatRate(floating) = %q, want %q", got, "S+30")
	}
}
