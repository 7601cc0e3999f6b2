package tzdb

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const (
	maxOffsetHours = 23
	maxOffsetMins  = 59
)

var offsetRE = regexp.MustCompile(`^([+-])(\d{2})(?::?(\d{2}))?$`)

// ParseOffset interprets the string as a numeric offset from UTC. It
// recognises 'Z' and offsets of the forms +HH, +HHMM and +HH:MM (or the
// same with a leading '-'). A zero offset gives time.UTC, any other
// offset gives a fixed zone with an empty name. The second return value
// is false if the string is not an offset.
func ParseOffset(s string) (*time.Location, bool) {
	if s == "Z" || s == "z" {
		return time.UTC, true
	}

	parts := offsetRE.FindStringSubmatch(s)
	if parts == nil {
		return nil, false
	}

	hours, _ := strconv.Atoi(parts[2])

	var mins int
	if parts[3] != "" {
		mins, _ = strconv.Atoi(parts[3])
	}

	if hours > maxOffsetHours || mins > maxOffsetMins {
		return nil, false
	}

	secs := (hours*60 + mins) * 60
	if parts[1] == "-" {
		secs = -secs
	}

	if secs == 0 {
		return time.UTC, true
	}

	return time.FixedZone("", secs), true
}

// FormatOffset returns the offset (in seconds east of UTC) in the form
// +HH:MM
func FormatOffset(secs int) string {
	sign := '+'
	if secs < 0 {
		sign = '-'
		secs = -secs
	}

	mins := secs / 60

	return fmt.Sprintf("%c%02d:%02d", sign, mins/60, mins%60)
}
