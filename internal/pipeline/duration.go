package pipeline

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"go-activity-stats/internal/model"
)

// ParseClock parses "MM:SS" or "HH:MM:SS". Parts are not normalized, so
// "61:00" is 61 minutes.
func ParseClock(s string) (time.Duration, error) {
	parts := strings.Split(s, ":")

	var hours, minutes, seconds string
	switch len(parts) {
	case 2:
		hours, minutes, seconds = "0", parts[0], parts[1]
	case 3:
		hours, minutes, seconds = parts[0], parts[1], parts[2]
	default:
		return 0, &model.DurationError{Value: s, Reason: fmt.Sprintf("want 2 or 3 parts, got %d", len(parts))}
	}

	h, err := clockPart(s, hours)
	if err != nil {
		return 0, err
	}
	m, err := clockPart(s, minutes)
	if err != nil {
		return 0, err
	}
	sec, err := clockPart(s, seconds)
	if err != nil {
		return 0, err
	}

	var total time.Duration
	for _, part := range []struct {
		n    int64
		unit time.Duration
	}{{h, time.Hour}, {m, time.Minute}, {sec, time.Second}} {
		if part.n > math.MaxInt64/int64(part.unit) {
			return 0, &model.DurationError{Value: s, Reason: "out of range"}
		}
		d := time.Duration(part.n) * part.unit
		if total > math.MaxInt64-d {
			return 0, &model.DurationError{Value: s, Reason: "out of range"}
		}
		total += d
	}
	return total, nil
}

// clockPart accepts only plain ASCII digits; signs and spaces are rejected.
func clockPart(whole, part string) (int64, error) {
	if part == "" {
		return 0, &model.DurationError{Value: whole, Reason: "empty part"}
	}
	for _, r := range part {
		if r < '0' || r > '9' {
			return 0, &model.DurationError{Value: whole, Reason: fmt.Sprintf("part %q is not a non-negative integer", part)}
		}
	}
	n, err := strconv.ParseInt(part, 10, 64)
	if err != nil {
		return 0, &model.DurationError{Value: whole, Reason: err.Error()}
	}
	return n, nil
}

// FormatClock renders d as H:MM:SS rounded to the second. Hours are not
// folded into days.
func FormatClock(d time.Duration) string {
	d = d.Round(time.Second)
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	return fmt.Sprintf("%s%d:%02d:%02d", sign, h, m, s)
}
