package utils

import (
	"strings"
	"testing"
	"time"
)

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func TestFormatRub(t *testing.T) {
	tests := map[float64]string{
		0:         "0",
		999:       "999",
		123456:    "123456",
		1250000.4: "1250000",
	}
	for in, want := range tests {
		got := FormatRub(in)
		if !strings.HasSuffix(got, " ₽") {
			t.Errorf("FormatRub(%v) = %q, want ₽ suffix", in, got)
		}
		if digits(got) != want {
			t.Errorf("FormatRub(%v) = %q, want digits %s", in, got, want)
		}
	}

	if got := FormatRub(123456); got == "123456 ₽" {
		t.Errorf("FormatRub(123456) = %q, want digit grouping", got)
	}
}

func TestFormatPercent(t *testing.T) {
	tests := map[float64]string{
		8.5:     "+8.50%",
		0:       "0.00%",
		-3.2149: "-3.21%",
	}
	for in, want := range tests {
		if got := FormatPercent(in); got != want {
			t.Errorf("FormatPercent(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatUptime(t *testing.T) {
	tests := map[int]string{
		0:     "0h 0m",
		59:    "0h 0m",
		3661:  "1h 1m",
		86400: "24h 0m",
		-5:    "0h 0m",
	}
	for in, want := range tests {
		if got := FormatUptime(in); got != want {
			t.Errorf("FormatUptime(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatAgo(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		t    time.Time
		want string
	}{
		{time.Time{}, "never"},
		{now, "just now"},
		{now.Add(-time.Minute), "1 minute ago"},
		{now.Add(-42 * time.Minute), "42 minutes ago"},
		{now.Add(-90 * time.Minute), "1h 30m ago"},
	}
	for _, test := range tests {
		if got := FormatAgo(test.t, now); got != test.want {
			t.Errorf("FormatAgo(%v) = %q, want %q", test.t, got, test.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	if got := FormatClock(time.Time{}); got != "--:--" {
		t.Errorf("FormatClock(zero) = %q", got)
	}
	if got := FormatClock(time.Date(2025, 1, 1, 7, 5, 0, 0, time.UTC)); got != "07:05" {
		t.Errorf("FormatClock = %q, want 07:05", got)
	}
}
