package domain

import (
	"strings"
	"time"
)

// GraduationStatus tracks where a student is in their learning package.
// The values are the product's Indonesian labels and are stored as-is.
type GraduationStatus string

const (
	GraduationNotYet  GraduationStatus = "Belum Lulus"
	GraduationDone    GraduationStatus = "Lulus"
	GraduationOnLeave GraduationStatus = "Cuti"
)

// Student is an enrolled learner
type Student struct {
	ID               int64
	Name             string
	Phone            *string
	Email            *string
	PackageID        *int64
	JoinDate         time.Time
	ManualUsage      int // sessions consumed before this system existed
	GraduationStatus GraduationStatus
	Status           string // lifecycle: active / inactive

	// Joined display data
	PackageName          *string
	PackageCode          *string
	PackageTotalSessions *int
}

// IsActive reports whether the student is in the active lifecycle state
func (s *Student) IsActive() bool {
	return s.Status == "active"
}

// ShortName returns the first two words of the name for compact displays
func (s *Student) ShortName() string {
	parts := strings.Fields(s.Name)
	if len(parts) > 2 {
		parts = parts[:2]
	}
	if len(parts) == 0 {
		return "Unknown"
	}
	return strings.Join(parts, " ")
}

// WhatsAppPhone normalizes the phone number for wa.me links: a leading 0 is
// replaced with the country code and non-digits are stripped. Returns ""
// when no phone is set.
func (s *Student) WhatsAppPhone() string {
	if s.Phone == nil {
		return ""
	}
	phone := strings.TrimSpace(*s.Phone)
	if phone == "" {
		return ""
	}
	if strings.HasPrefix(phone, "0") {
		phone = phoneCountryPrefix + phone[1:]
	}
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return digits.String()
}

// ParseGraduationStatus validates a raw graduation status string
func ParseGraduationStatus(s string) (GraduationStatus, bool) {
	for _, valid := range ValidGraduationStatuses {
		if GraduationStatus(s) == valid {
			return valid, true
		}
	}
	return "", false
}
