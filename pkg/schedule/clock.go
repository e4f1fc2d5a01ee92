package schedule

import (
	"errors"
	"fmt"
)

// MinutesPerDay is the number of minutes in one wall-clock day.
const MinutesPerDay = 24 * 60

// DefaultAnchor is the wake-time anchor used when a schedule does not
// specify one. 06:00 is a typical wake time.
const DefaultAnchor Clock = 6 * 60

// ErrInvalidClock is returned by [ParseClock] when the input is not a
// zero-padded 24-hour "HH:MM" string.
var ErrInvalidClock = errors.New("clock must be a 24-hour HH:MM string")

// Clock is a wall-clock time of day with minute resolution, stored as
// minutes since midnight. The zero value is midnight.
//
// Clock carries no date and no timezone. Two blocks on the same Day are
// compared purely by their Clock values relative to the day's anchor.
type Clock int

// ParseClock parses a zero-padded 24-hour "HH:MM" string (e.g. "06:00",
// "23:45"). It returns [ErrInvalidClock] (wrapped with the offending input)
// for anything else, including out-of-range components and missing padding.
func ParseClock(s string) (Clock, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	h, ok1 := twoDigits(s[0], s[1])
	m, ok2 := twoDigits(s[3], s[4])
	if !ok1 || !ok2 || h > 23 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return Clock(h*60 + m), nil
}

// MustClock is like [ParseClock] but panics on malformed input.
// Intended for constants and tests.
func MustClock(s string) Clock {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}

// twoDigits decodes two ASCII digit bytes into an int.
func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}

// Hour returns the hour component (0-23).
func (c Clock) Hour() int { return int(c) / 60 }

// Minute returns the minute component (0-59).
func (c Clock) Minute() int { return int(c) % 60 }

// Minutes returns the clock as minutes since midnight.
func (c Clock) Minutes() int { return int(c) }

// String formats the clock as zero-padded "HH:MM".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// MarshalText implements encoding.TextMarshaler, emitting "HH:MM".
func (c Clock) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting the same
// strict "HH:MM" form as [ParseClock]. This is what lets Clock round-trip
// through JSON and TOML manifests.
func (c *Clock) UnmarshalText(text []byte) error {
	parsed, err := ParseClock(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
