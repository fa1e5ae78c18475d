// Package duration parses and formats countdown lengths in classic (m:ss) and
// decimal-day notation. One decimal minute is a ten-thousandth of a day.
package duration

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DecimalMinute is 1/10000 of a day
const DecimalMinute = 24 * time.Hour / 10000

// Accepted input ranges
const (
	MinClassic = time.Second
	MaxClassic = 10 * time.Minute
	MinDecimal = 0.1
	MaxDecimal = 100.0
)

var (
	ErrFormat = errors.New("unrecognized duration format")
	ErrRange  = errors.New("duration out of range")
)

var (
	reMinSec   = regexp.MustCompile(`^(\d+):(\d\d)$`)
	reMinTenth = regexp.MustCompile(`^(\d+)\.(\d)$`)
	reMinutes  = regexp.MustCompile(`^\d+$`)
	reDecimal  = regexp.MustCompile(`^\d+(\.\d)?$`)
)

// ParseClassic accepts "m", "m:ss" or "m.d" (d tenths of a minute) between 0:01 and 10:00
func ParseClassic(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)

	var minutes, seconds int
	switch {
	case reMinSec.MatchString(s):
		m := reMinSec.FindStringSubmatch(s)
		minutes, _ = strconv.Atoi(m[1])
		seconds, _ = strconv.Atoi(m[2])
	case reMinTenth.MatchString(s):
		m := reMinTenth.FindStringSubmatch(s)
		minutes, _ = strconv.Atoi(m[1])
		tenths, _ := strconv.Atoi(m[2])
		seconds = tenths * 6
	case reMinutes.MatchString(s):
		minutes, _ = strconv.Atoi(s)
	default:
		return 0, fmt.Errorf("%w: %q (use 3, 1:41 or 2.5)", ErrFormat, s)
	}

	if seconds >= 60 {
		return 0, fmt.Errorf("%w: %q has %d seconds", ErrRange, s, seconds)
	}

	d := time.Duration(minutes)*time.Minute + time.Duration(seconds)*time.Second
	if d < MinClassic || d > MaxClassic {
		return 0, fmt.Errorf("%w: %q (0:01 to 10:00)", ErrRange, s)
	}
	return d, nil
}

// ParseDecimal accepts decimal minutes "m" or "m.d" between 0.1 and 100.0
func ParseDecimal(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if !reDecimal.MatchString(s) {
		return 0, fmt.Errorf("%w: %q (use 42 or 3.1)", ErrFormat, s)
	}

	minutes, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrFormat, s, err)
	}
	if minutes < MinDecimal || minutes > MaxDecimal {
		return 0, fmt.Errorf("%w: %q (0.1 to 100.0)", ErrRange, s)
	}

	return FromDecimal(minutes), nil
}

// Parse dispatches on the display mode
func Parse(s string, decimal bool) (time.Duration, error) {
	if decimal {
		return ParseDecimal(s)
	}
	return ParseClassic(s)
}

// FromDecimal converts decimal minutes to a duration, rounded to a tenth
func FromDecimal(minutes float64) time.Duration {
	tenths := math.Round(minutes * 10)
	return time.Duration(tenths * float64(DecimalMinute) / 10)
}

// ToDecimal converts a duration to decimal minutes
func ToDecimal(d time.Duration) float64 {
	return float64(d) / float64(DecimalMinute)
}

// FormatClassic renders whole minutes and zero-padded seconds, truncating fractions
func FormatClassic(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int64(d / time.Minute)
	seconds := int64(d/time.Second) % 60
	return strconv.FormatInt(minutes, 10) + ":" + fmt.Sprintf("%02d", seconds)
}

// FormatDecimal renders decimal minutes with one fractional digit, rounding ties up
func FormatDecimal(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	tenths := math.Floor(ToDecimal(d)*10 + 0.5)
	return strconv.FormatFloat(tenths/10, 'f', 1, 64)
}

// Format dispatches on the display mode
func Format(d time.Duration, decimal bool) string {
	if decimal {
		return FormatDecimal(d)
	}
	return FormatClassic(d)
}

// Items returns the default marker count: one per second in classic mode,
// one per tenth of a decimal minute in decimal mode
func Items(d time.Duration, decimal bool) int {
	if d <= 0 {
		return 0
	}
	if decimal {
		return int(math.Round(ToDecimal(d) * 10))
	}
	return int(math.Round(d.Seconds()))
}
