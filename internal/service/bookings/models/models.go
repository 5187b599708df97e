package models

import (
	"errors"
	"time"

	"github.com/bimbelceria/BC-AdminService/internal/domain"
	"github.com/bimbelceria/BC-AdminService/pkg/types"
)

var (
	// ErrInvalidStatus is returned on an unknown booking status
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidDate is returned when a date is not YYYY-MM-DD
	ErrInvalidDate = errors.New("invalid date format")

	// ErrInvalidTime is returned when a time is not HH:MM
	ErrInvalidTime = errors.New("invalid time format")
)

// Request models

// CreateBookingRequest schedules one class for one student
type CreateBookingRequest struct {
	StudentID    int64   `json:"studentId"`
	Date         string  `json:"date"` // "2025-01-15"
	Time         string  `json:"time"` // "14:00"
	InstructorID *int64  `json:"instructorId,omitempty"`
	LocationID   *int64  `json:"locationId,omitempty"`
	Topic        *string `json:"topic,omitempty"`
}

// ToDomain converts the request into a domain booking
func (r *CreateBookingRequest) ToDomain() (*domain.Booking, error) {
	date, err := ParseDate(r.Date)
	if err != nil {
		return nil, err
	}
	bookingTime, err := ParseTime(r.Time)
	if err != nil {
		return nil, err
	}

	return &domain.Booking{
		Date:         date,
		Time:         bookingTime,
		Status:       domain.StatusScheduled,
		Topic:        r.Topic,
		StudentID:    r.StudentID,
		InstructorID: r.InstructorID,
		LocationID:   r.LocationID,
	}, nil
}

// BulkCreateBookingRequest schedules the same slot for several students at
// once, one booking row per student
type BulkCreateBookingRequest struct {
	StudentIDs   []int64 `json:"studentIds"`
	Date         string  `json:"date"`
	Time         string  `json:"time"`
	InstructorID *int64  `json:"instructorId,omitempty"`
	LocationID   *int64  `json:"locationId,omitempty"`
	Topic        *string `json:"topic,omitempty"`
}

// ToDomain converts the bulk request into one domain booking per student
func (r *BulkCreateBookingRequest) ToDomain() ([]*domain.Booking, error) {
	date, err := ParseDate(r.Date)
	if err != nil {
		return nil, err
	}
	bookingTime, err := ParseTime(r.Time)
	if err != nil {
		return nil, err
	}

	bookings := make([]*domain.Booking, 0, len(r.StudentIDs))
	for _, studentID := range r.StudentIDs {
		bookings = append(bookings, &domain.Booking{
			Date:         date,
			Time:         bookingTime,
			Status:       domain.StatusScheduled,
			Topic:        r.Topic,
			StudentID:    studentID,
			InstructorID: r.InstructorID,
			LocationID:   r.LocationID,
		})
	}
	return bookings, nil
}

// UpdateBookingRequest reschedules or reassigns one class
type UpdateBookingRequest struct {
	Date         string  `json:"date"`
	Time         string  `json:"time"`
	InstructorID *int64  `json:"instructorId,omitempty"`
	LocationID   *int64  `json:"locationId,omitempty"`
	Topic        *string `json:"topic,omitempty"`
}

// UpdateStatusRequest records attendance for one class
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response models

// BookingResponse is one class meeting with its joined display data
type BookingResponse struct {
	ID        int64   `json:"id"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Status    string  `json:"status"`
	Topic     *string `json:"topic,omitempty"`
	StudentID int64   `json:"studentId"`

	InstructorID *int64 `json:"instructorId,omitempty"`
	LocationID   *int64 `json:"locationId,omitempty"`

	StudentName        string  `json:"studentName"`
	PackageCode        *string `json:"packageCode,omitempty"`
	PackageName        *string `json:"packageName,omitempty"`
	InstructorName     *string `json:"instructorName,omitempty"`
	InstructorNickname *string `json:"instructorNickname,omitempty"`
	LocationName       *string `json:"locationName,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse is a list of class meetings
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// AttendanceStats summarizes one day of classes
type AttendanceStats struct {
	Total     int `json:"total"`
	Done      int `json:"done"`
	Cancelled int `json:"cancelled"`
	Scheduled int `json:"scheduled"`
}

// AttendanceResponse is the check-in sheet for one date
type AttendanceResponse struct {
	Date     string            `json:"date"`
	Stats    AttendanceStats   `json:"stats"`
	Bookings []BookingResponse `json:"bookings"`
}

// DashboardStatsResponse is the landing page counters
type DashboardStatsResponse struct {
	ActiveStudents int `json:"activeStudents"`
	BookingsToday  int `json:"bookingsToday"`
	Instructors    int `json:"instructors"`
}

// Conversion

// FromDomainBooking converts a domain booking into a DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}
	return &BookingResponse{
		ID:                 b.ID,
		Date:               b.Date.Format(domain.DateFormat),
		Time:               b.Time.String(),
		Status:             string(b.Status),
		Topic:              b.Topic,
		StudentID:          b.StudentID,
		InstructorID:       b.InstructorID,
		LocationID:         b.LocationID,
		StudentName:        b.StudentName,
		PackageCode:        b.PackageCode,
		PackageName:        b.PackageName,
		InstructorName:     b.InstructorName,
		InstructorNickname: b.InstructorNickname,
		LocationName:       b.LocationName,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// FromDomainBookingList converts a list of domain bookings into a DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		if bookingResp := FromDomainBooking(b); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}
	return resp
}

// ToDomainBookingStatus validates and converts a raw status string
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	parsed, ok := domain.ParseBookingStatus(status)
	if !ok {
		return "", ErrInvalidStatus
	}
	return parsed, nil
}

// ParseDate parses a calendar date in the wire format
func ParseDate(s string) (time.Time, error) {
	date, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return date, nil
}

// ParseTime parses a wall clock time in the wire format
func ParseTime(s string) (types.TimeString, error) {
	bookingTime, err := types.NewTimeStringFromString(s)
	if err != nil {
		return "", ErrInvalidTime
	}
	return bookingTime, nil
}
