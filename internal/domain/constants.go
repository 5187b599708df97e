package domain

// Time format constants
const (
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	TimeFormat  = "15:04"      // HH:MM
	MonthFormat = "2006-01"    // YYYY-MM
)

// Timeline grid bounds: cells run hourly from 08:00 through 21:00
const (
	TimelineStartHour = 8
	TimelineEndHour   = 21
)

// FallbackLabel is shown where a curriculum-derived value does not exist
const FallbackLabel = "-"

// UndefinedGroupLabel is used when a booking lost its instructor or location
// reference (the row was deleted after scheduling)
const UndefinedGroupLabel = "undefined"

// Phone normalization for WhatsApp links: a leading "0" becomes the
// Indonesian country code
const phoneCountryPrefix = "62"

// ValidBookingStatuses all statuses a booking may take
var ValidBookingStatuses = []BookingStatus{
	StatusScheduled,
	StatusDone,
	StatusCancelled,
}

// ValidGraduationStatuses all graduation states a student may take
var ValidGraduationStatuses = []GraduationStatus{
	GraduationNotYet,
	GraduationDone,
	GraduationOnLeave,
}
