package get_timeline

// Request asks for one month of the schedule grid
type Request struct {
	Month        string // "2025-01"
	InstructorID *int64 // narrow the grid to one instructor
}

// Response is the schedule grid for one month. Cells is keyed by
// "YYYY-MM-DD_HH:MM"; a key is absent when nothing is scheduled there.
type Response struct {
	Month string                 `json:"month"`
	Days  []string               `json:"days"`  // every date of the month
	Hours []string               `json:"hours"` // "08:00" .. "21:00"
	Cells map[string][]CellGroup `json:"cells"`
}

// CellGroup is one class card: everyone taught by the same instructor at the
// same place in the same slot
type CellGroup struct {
	Instructor string      `json:"instructor"` // nickname, "undefined" when unassigned
	Location   string      `json:"location"`   // name, "undefined" when unassigned
	Entries    []CellEntry `json:"entries"`
}

// CellEntry is one student on a class card
type CellEntry struct {
	BookingID    int64  `json:"bookingId"`
	StudentID    int64  `json:"studentId"`
	StudentName  string `json:"studentName"` // shortened to two words
	PackageCode  string `json:"packageCode,omitempty"`
	SessionLabel string `json:"sessionLabel"` // "#2", or "#7" on overflow
	MaterialCode string `json:"materialCode"`
	Status       string `json:"status"`
}
