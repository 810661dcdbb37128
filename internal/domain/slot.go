package domain

import (
	"fmt"
	"time"
)

const minutesPerDay = 24 * 60

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// NormalizeDate validates a calendar date and returns it in ISO 8601
// date-only form.
func NormalizeDate(s string) (string, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t.Format(dateLayout), nil
}

// NormalizeClock validates a 24-hour time of day and returns it zero-padded
// as HH:MM. Zero-padded clock strings order lexicographically in time order,
// which is what Overlaps relies on.
func NormalizeClock(s string) (string, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	return t.Format(clockLayout), nil
}

func minuteOfDay(hhmm string) (int, error) {
	t, err := time.Parse(clockLayout, hhmm)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", hhmm)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func formatMinuteOfDay(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// EndTime adds durationMinutes to start on a 24-hour clock. Meetings may end
// exactly at midnight (rendered as 24:00, the open end of the interval) but
// must not cross it; a longer duration is rejected.
func EndTime(start string, durationMinutes int) (string, error) {
	if durationMinutes <= 0 {
		return "", fmt.Errorf("duration must be positive, got %d", durationMinutes)
	}

	startMin, err := minuteOfDay(start)
	if err != nil {
		return "", err
	}

	endMin := startMin + durationMinutes
	if endMin > minutesPerDay {
		return "", fmt.Errorf("meeting starting at %s with duration %dm would cross midnight", start, durationMinutes)
	}

	return formatMinuteOfDay(endMin), nil
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Equal start times count as overlapping. Inputs
// must be normalized HH:MM strings so that string order equals time order.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && bStart < aEnd
}
