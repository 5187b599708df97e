package models

import (
	"errors"
	"time"

	"github.com/bimbelceria/BC-AdminService/internal/domain"
	"github.com/bimbelceria/BC-AdminService/internal/infra/storage/booking"
)

var (
	// ErrInvalidDate is returned when a date is not YYYY-MM-DD
	ErrInvalidDate = errors.New("invalid date format")

	// ErrInvalidGraduationStatus is returned on an unknown graduation status
	ErrInvalidGraduationStatus = errors.New("invalid graduation status")
)

// Request models

// CreateStudentRequest enrolls a new student
type CreateStudentRequest struct {
	Name             string  `json:"name"`
	Phone            *string `json:"phone,omitempty"`
	Email            *string `json:"email,omitempty"`
	PackageID        *int64  `json:"packageId,omitempty"`
	JoinDate         string  `json:"joinDate"` // "2025-01-15"
	ManualUsage      int     `json:"manualUsage,omitempty"`
	GraduationStatus *string `json:"graduationStatus,omitempty"`
}

// ToDomain converts the request into a domain student
func (r *CreateStudentRequest) ToDomain() (*domain.Student, error) {
	joinDate, err := ParseDate(r.JoinDate)
	if err != nil {
		return nil, err
	}

	graduation := domain.GraduationNotYet
	if r.GraduationStatus != nil {
		parsed, ok := domain.ParseGraduationStatus(*r.GraduationStatus)
		if !ok {
			return nil, ErrInvalidGraduationStatus
		}
		graduation = parsed
	}

	return &domain.Student{
		Name:             r.Name,
		Phone:            r.Phone,
		Email:            r.Email,
		PackageID:        r.PackageID,
		JoinDate:         joinDate,
		ManualUsage:      r.ManualUsage,
		GraduationStatus: graduation,
		Status:           "active",
	}, nil
}

// UpdateStudentRequest edits an enrolled student
type UpdateStudentRequest struct {
	Name             string  `json:"name"`
	Phone            *string `json:"phone,omitempty"`
	Email            *string `json:"email,omitempty"`
	PackageID        *int64  `json:"packageId,omitempty"`
	JoinDate         string  `json:"joinDate"`
	ManualUsage      int     `json:"manualUsage"`
	GraduationStatus string  `json:"graduationStatus"`
}

// Response models

// StudentResponse is one student with usage figures
type StudentResponse struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	ShortName        string  `json:"shortName"`
	Phone            *string `json:"phone,omitempty"`
	WhatsAppPhone    string  `json:"whatsappPhone,omitempty"`
	Email            *string `json:"email,omitempty"`
	PackageID        *int64  `json:"packageId,omitempty"`
	PackageName      *string `json:"packageName,omitempty"`
	PackageCode      *string `json:"packageCode,omitempty"`
	JoinDate         string  `json:"joinDate"`
	ManualUsage      int     `json:"manualUsage"`
	GraduationStatus string  `json:"graduationStatus"`
	Status           string  `json:"status"`

	// Usage figures derived from bookings, never stored
	TotalSessions  int     `json:"totalSessions"`
	BookingCount   int     `json:"bookingCount"`
	UsedSessions   int     `json:"usedSessions"`
	Remaining      int     `json:"remaining"`
	RemainingLabel string  `json:"remainingLabel"`
	LastBookingAt  *string `json:"lastBookingAt,omitempty"` // "2025-01-15"
}

// StudentListResponse is the student roster
type StudentListResponse struct {
	Students []StudentResponse `json:"students"`
}

// Conversion

// FromDomainStudent converts a domain student plus their booking activity
// into a DTO
func FromDomainStudent(s *domain.Student, activity booking.StudentActivity) *StudentResponse {
	if s == nil {
		return nil
	}

	totalSessions := 0
	if s.PackageTotalSessions != nil {
		totalSessions = *s.PackageTotalSessions
	}
	usage := domain.CalculateUsage(totalSessions, activity.BookingCount, s.ManualUsage)

	resp := &StudentResponse{
		ID:               s.ID,
		Name:             s.Name,
		ShortName:        s.ShortName(),
		Phone:            s.Phone,
		WhatsAppPhone:    s.WhatsAppPhone(),
		Email:            s.Email,
		PackageID:        s.PackageID,
		PackageName:      s.PackageName,
		PackageCode:      s.PackageCode,
		JoinDate:         s.JoinDate.Format(domain.DateFormat),
		ManualUsage:      s.ManualUsage,
		GraduationStatus: string(s.GraduationStatus),
		Status:           s.Status,
		TotalSessions:    usage.TotalSessions,
		BookingCount:     usage.BookingCount,
		UsedSessions:     usage.UsedSessions,
		Remaining:        usage.Remaining,
		RemainingLabel:   usage.RemainingLabel(),
	}

	if activity.LastDate != nil {
		lastStr := activity.LastDate.Format(domain.DateFormat)
		resp.LastBookingAt = &lastStr
	}

	return resp
}

// FromDomainStudentList converts the roster with per-student activity
func FromDomainStudentList(students []*domain.Student, activity map[int64]booking.StudentActivity) *StudentListResponse {
	resp := &StudentListResponse{
		Students: make([]StudentResponse, 0, len(students)),
	}

	for _, s := range students {
		if studentResp := FromDomainStudent(s, activity[s.ID]); studentResp != nil {
			resp.Students = append(resp.Students, *studentResp)
		}
	}

	return resp
}

// ParseDate parses a calendar date in the wire format
func ParseDate(s string) (time.Time, error) {
	date, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return date, nil
}
