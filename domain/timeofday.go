package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTimeOfDay splits an "HH:MM" 24-hour string into its components.
func ParseTimeOfDay(value string) (hours, minutes int, err error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed time %q", value)
	}
	hours, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed time %q: %w", value, err)
	}
	minutes, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed time %q: %w", value, err)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, 0, fmt.Errorf("time %q out of range", value)
	}
	return hours, minutes, nil
}

// TimeOfDay builds the canonical zero-padded "HH:MM" value from picker
// output.
func TimeOfDay(hours, minutes int) string {
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

// FormatTime renders an "HH:MM" value as 12-hour clock with AM/PM, e.g.
// "13:05" -> "1:05 PM" and "00:30" -> "12:30 AM". Malformed input is
// returned unchanged so display never fails on a bad row.
func FormatTime(value string) string {
	hours, minutes, err := ParseTimeOfDay(value)
	if err != nil {
		return value
	}
	period := "AM"
	if hours >= 12 {
		period = "PM"
	}
	hours12 := hours % 12
	if hours12 == 0 {
		hours12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", hours12, minutes, period)
}
