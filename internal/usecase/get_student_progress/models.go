package get_student_progress

// Request asks for one student's learning progress
type Request struct {
	StudentID int64
}

// Response is the progress sheet of one student: who they are, how much of
// the package they consumed, and the fully labelled session history
type Response struct {
	Student  StudentSummary `json:"student"`
	Usage    UsageSummary   `json:"usage"`
	Sessions []SessionEntry `json:"sessions"`
}

// StudentSummary is the header block of the progress sheet
type StudentSummary struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Phone            *string `json:"phone,omitempty"`
	WhatsAppPhone    string  `json:"whatsappPhone,omitempty"`
	PackageName      *string `json:"packageName,omitempty"`
	PackageCode      *string `json:"packageCode,omitempty"`
	JoinDate         string  `json:"joinDate"`
	GraduationStatus string  `json:"graduationStatus"`
}

// UsageSummary is the consumption block of the progress sheet
type UsageSummary struct {
	TotalSessions  int    `json:"totalSessions"`
	BookingCount   int    `json:"bookingCount"`
	ManualUsage    int    `json:"manualUsage"`
	UsedSessions   int    `json:"usedSessions"`
	Remaining      int    `json:"remaining"`
	RemainingLabel string `json:"remainingLabel"`
	IsOver         bool   `json:"isOver"`
}

// SessionEntry is one row of the session history, in attendance order
type SessionEntry struct {
	BookingID    int64   `json:"bookingId"`
	Number       int     `json:"number"` // 1-based position in the history
	Date         string  `json:"date"`
	Time         string  `json:"time"`
	Label        string  `json:"label"` // "Algebra (Sesi 1/2)" or "Extra #4"
	MaterialCode string  `json:"materialCode"`
	Status       string  `json:"status"`
	Topic        *string `json:"topic,omitempty"`
	Instructor   *string `json:"instructor,omitempty"`
	Location     *string `json:"location,omitempty"`
}
