package domain

import (
	"time"

	"github.com/bimbelceria/BC-AdminService/pkg/types"
)

// BookingStatus represents the attendance state of a booking
type BookingStatus string

const (
	StatusScheduled BookingStatus = "scheduled"
	StatusDone      BookingStatus = "done"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking is one scheduled class meeting for one student. It is the raw
// "who/when/where" ledger row; session numbers and material names are always
// derived from it, never stored.
type Booking struct {
	ID        int64
	Date      time.Time
	Time      types.TimeString
	Status    BookingStatus
	Topic     *string
	StudentID int64

	// Nullable so that deleting an instructor or location does not destroy
	// the booking history
	InstructorID *int64
	LocationID   *int64

	// Joined display data
	StudentName        string
	StudentPackageID   *int64
	PackageCode        *string
	PackageName        *string
	InstructorName     *string
	InstructorNickname *string
	LocationName       *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsDone reports whether the student attended this class
func (b *Booking) IsDone() bool {
	return b.Status == StatusDone
}

// IsCancelled reports whether this class was cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsPending reports whether the class has not been checked in yet
func (b *Booking) IsPending() bool {
	return b.Status == StatusScheduled
}

// TopicOrFallback returns the free-text topic, or "-" when empty
func (b *Booking) TopicOrFallback() string {
	if b.Topic == nil || *b.Topic == "" {
		return FallbackLabel
	}
	return *b.Topic
}

// InstructorLabel returns the compact instructor label for grid displays
func (b *Booking) InstructorLabel() string {
	if b.InstructorNickname == nil || *b.InstructorNickname == "" {
		return UndefinedGroupLabel
	}
	return *b.InstructorNickname
}

// LocationLabel returns the location name for grid displays
func (b *Booking) LocationLabel() string {
	if b.LocationName == nil || *b.LocationName == "" {
		return UndefinedGroupLabel
	}
	return *b.LocationName
}

// BookingsFilter narrows booking list queries
type BookingsFilter struct {
	StudentID    *int64     // all bookings of one student
	StartDate    *time.Time // inclusive range start
	EndDate      *time.Time // inclusive range end
	Status       *BookingStatus
	InstructorID *int64
}

// ParseBookingStatus validates a raw status string
func ParseBookingStatus(s string) (BookingStatus, bool) {
	for _, valid := range ValidBookingStatuses {
		if BookingStatus(s) == valid {
			return valid, true
		}
	}
	return "", false
}
