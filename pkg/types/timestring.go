package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeString is a clock time in "HH:MM" form. The database column keeps
// seconds ("HH:MM:SS"), so scanning tolerates both and truncates.
type TimeString string

var (
	// ErrInvalidFormat is returned when the value is not a valid HH:MM time
	ErrInvalidFormat = errors.New("types: invalid time string format, expected HH:MM")
)

const (
	layoutShort = "15:04"
	layoutFull  = "15:04:05"
)

// NewTimeString builds a TimeString from the clock part of t
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(layoutShort))
}

// NewTimeStringFromString parses "HH:MM" or "HH:MM:SS" input
func NewTimeStringFromString(s string) (TimeString, error) {
	if t, err := time.Parse(layoutShort, s); err == nil {
		return NewTimeString(t), nil
	}
	if t, err := time.Parse(layoutFull, s); err == nil {
		return NewTimeString(t), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
}

// String returns the "HH:MM" representation
func (ts TimeString) String() string {
	return string(ts)
}

// IsZero reports whether the value is unset
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// Validate checks the HH:MM format
func (ts TimeString) Validate() error {
	if _, err := time.Parse(layoutShort, string(ts)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, ts)
	}
	return nil
}

// Truncated returns the first five characters of an arbitrary time string,
// normalizing "HH:MM:SS" values coming from the database
func Truncated(s string) string {
	if len(s) > 5 {
		return s[:5]
	}
	return s
}

func (ts TimeString) parse() (time.Time, error) {
	return time.Parse(layoutShort, string(ts))
}

// IsBefore reports whether ts is strictly earlier than other
func (ts TimeString) IsBefore(other TimeString) bool {
	a, errA := ts.parse()
	b, errB := other.parse()
	if errA != nil || errB != nil {
		return false
	}
	return a.Before(b)
}

// IsAfter reports whether ts is strictly later than other
func (ts TimeString) IsAfter(other TimeString) bool {
	a, errA := ts.parse()
	b, errB := other.parse()
	if errA != nil || errB != nil {
		return false
	}
	return a.After(b)
}

// AddMinutes returns the time shifted forward by the given minutes
func (ts TimeString) AddMinutes(minutes int) (TimeString, error) {
	t, err := ts.parse()
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, ts)
	}
	return NewTimeString(t.Add(time.Duration(minutes) * time.Minute)), nil
}

// Value implements driver.Valuer, persisting with seconds
func (ts TimeString) Value() (driver.Value, error) {
	if ts.IsZero() {
		return nil, nil
	}
	if err := ts.Validate(); err != nil {
		return nil, err
	}
	return string(ts) + ":00", nil
}

// Scan implements sql.Scanner for TIME columns
func (ts *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*ts = ""
		return nil
	case time.Time:
		*ts = NewTimeString(v)
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*ts = parsed
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*ts = parsed
		return nil
	default:
		return fmt.Errorf("types: cannot scan %T into TimeString", src)
	}
}
