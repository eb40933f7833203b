package scheduling

import (
	"fmt"
	"strconv"
	"strings"
)

// ToMinutes converts a 24h "HH:mm" string to minutes from midnight.
func ToMinutes(t string) (int, error) {
	parts := strings.Split(t, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: expected HH:mm", t)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", t, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", t, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q: out of 24h range", t)
	}
	return h*60 + m, nil
}

// ToTimeString converts minutes from midnight back to a zero-padded "HH:mm".
// Only defined for values in [0, 1440).
func ToTimeString(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Overlaps reports whether two half-open intervals [startA, endA) and
// [startB, endB) intersect. Back-to-back intervals (endA == startB) do not
// overlap; back-to-back bookings are allowed.
func Overlaps(startA, endA, startB, endB int) bool {
	return startA < endB && endA > startB
}
