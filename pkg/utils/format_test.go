package utils

import "testing"

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{1234.5, "$1,234.50"},
		{1000000, "$1,000,000.00"},
		{-9876.54, "-$9,876.54"},
		{999.99, "$999.99"},
	}
	for _, c := range cases {
		if got := FormatCurrency(c.in); got != c.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(12.345); got != "+12.35%" {
		t.Errorf("positive: got %q", got)
	}
	if got := FormatPercent(-3.2); got != "-3.20%" {
		t.Errorf("negative: got %q", got)
	}
	if got := FormatPercent(0); got != "0.00%" {
		t.Errorf("zero: got %q", got)
	}
}

func TestFormatPnL(t *testing.T) {
	if got := FormatPnL(250); got != "+$250.00" {
		t.Errorf("gain: got %q", got)
	}
	if got := FormatPnL(-120.5); got != "-$120.50" {
		t.Errorf("loss: got %q", got)
	}
}

func TestFormatCompact(t *testing.T) {
	if got := FormatCompact(2500000); got != "2.50M" {
		t.Errorf("millions: got %q", got)
	}
	if got := FormatCompact(45000); got != "45.0K" {
		t.Errorf("thousands: got %q", got)
	}
	if got := FormatCompact(500); got != "$500.00" {
		t.Errorf("small: got %q", got)
	}
}
