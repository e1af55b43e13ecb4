// Package utils provides formatting helpers for the dashboard.
package utils

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ruPrinter = message.NewPrinter(language.Russian)

// FormatRub formats an amount in roubles with Russian digit grouping.
func FormatRub(amount float64) string {
	return ruPrinter.Sprintf("%d", int64(math.Round(amount))) + " ₽"
}

// FormatPercent formats a percentage with sign and two decimals.
func FormatPercent(value float64) string {
	sign := ""
	if value > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.2f%%", sign, value)
}

// FormatUptime formats seconds as "Xh Ym".
func FormatUptime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	d := time.Duration(seconds) * time.Second
	return fmt.Sprintf("%dh %dm", int(d.Hours()), int(d.Minutes())%60)
}

// FormatClock formats t as HH:MM in its own location.
func FormatClock(t time.Time) string {
	if t.IsZero() {
		return "--:--"
	}
	return t.Format("15:04")
}

// FormatAgo formats the time elapsed between t and now, rounded to minutes.
func FormatAgo(t, now time.Time) string {
	if t.IsZero() {
		return "never"
	}
	mins := int(now.Sub(t).Round(time.Minute).Minutes())
	switch {
	case mins <= 0:
		return "just now"
	case mins == 1:
		return "1 minute ago"
	case mins < 60:
		return fmt.Sprintf("%d minutes ago", mins)
	}
	return fmt.Sprintf("%dh %dm ago", mins/60, mins%60)
}
