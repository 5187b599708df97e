package list_bookings

// Request narrows the labelled booking list. All fields are optional; an
// empty request returns the entire ledger.
type Request struct {
	StartDate    string // "2025-01-01", inclusive
	EndDate      string // "2025-01-31", inclusive
	StudentID    *int64
	InstructorID *int64
	Status       *string
}

// Response is the labelled booking list in schedule order
type Response struct {
	Bookings []BookingEntry `json:"bookings"`
}

// BookingEntry is one booking with its derived session label
type BookingEntry struct {
	ID           int64   `json:"id"`
	Date         string  `json:"date"`
	Time         string  `json:"time"`
	Status       string  `json:"status"`
	Topic        *string `json:"topic,omitempty"`
	StudentID    int64   `json:"studentId"`
	StudentName  string  `json:"studentName"`
	PackageCode  *string `json:"packageCode,omitempty"`
	Instructor   *string `json:"instructor,omitempty"`
	Location     *string `json:"location,omitempty"`
	SessionLabel string  `json:"sessionLabel"` // "Sesi 2/6" or "Extra #7"
	MaterialName string  `json:"materialName"`
	MaterialCode string  `json:"materialCode"`
}
