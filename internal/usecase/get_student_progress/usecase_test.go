package get_student_progress

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bimbelceria/BC-AdminService/internal/domain"
	studentRepo "github.com/bimbelceria/BC-AdminService/internal/infra/storage/student"
	"github.com/bimbelceria/BC-AdminService/pkg/types"
)

type fakeStudentRepo struct {
	student *domain.Student
}

func (f *fakeStudentRepo) GetByID(_ context.Context, _ int64) (*domain.Student, error) {
	if f.student == nil {
		return nil, studentRepo.ErrStudentNotFound
	}
	return f.student, nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) List(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeCurriculumRepo struct {
	entries []*domain.CurriculumEntry
}

func (f *fakeCurriculumRepo) ListByPackage(_ context.Context, _ int64) ([]*domain.CurriculumEntry, error) {
	return f.entries, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(s string) time.Time {
	d, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return d
}

func historyBooking(id int64, day, clock string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:        id,
		Date:      date(day),
		Time:      types.TimeString(clock),
		Status:    status,
		StudentID: 1,
	}
}

func testStudent() *domain.Student {
	phone := "081234567890"
	packageID := int64(5)
	packageName := "Paket Intensif"
	packageCode := "INT"
	total := 3

	return &domain.Student{
		ID:                   1,
		Name:                 "Budi Santoso Wijaya",
		Phone:                &phone,
		PackageID:            &packageID,
		JoinDate:             date("2024-11-01"),
		ManualUsage:          1,
		GraduationStatus:     domain.GraduationNotYet,
		Status:               "active",
		PackageName:          &packageName,
		PackageCode:          &packageCode,
		PackageTotalSessions: &total,
	}
}

func TestExecuteBuildsProgressSheet(t *testing.T) {
	bookings := []*domain.Booking{
		historyBooking(2, "2025-01-08", "10:00", domain.StatusScheduled),
		historyBooking(1, "2025-01-01", "10:00", domain.StatusDone),
	}

	curriculum := []*domain.CurriculumEntry{
		{Material: domain.Material{Name: "Aljabar", Code: "ALJ", SessionCount: 2}},
		{Material: domain.Material{Name: "Geometri", Code: "GEO", SessionCount: 1}},
	}

	uc := NewUseCase(
		&fakeStudentRepo{student: testStudent()},
		&fakeBookingRepo{bookings: bookings},
		&fakeCurriculumRepo{entries: curriculum},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{StudentID: 1})
	require.NoError(t, err)

	assert.Equal(t, "Budi Santoso Wijaya", resp.Student.Name)
	assert.Equal(t, "6281234567890", resp.Student.WhatsAppPhone)
	assert.Equal(t, "2024-11-01", resp.Student.JoinDate)
	assert.Equal(t, "Belum Lulus", resp.Student.GraduationStatus)

	// 2 bookings + 1 migrated session against a 3-session package
	assert.Equal(t, 3, resp.Usage.TotalSessions)
	assert.Equal(t, 2, resp.Usage.BookingCount)
	assert.Equal(t, 1, resp.Usage.ManualUsage)
	assert.Equal(t, 3, resp.Usage.UsedSessions)
	assert.Equal(t, 0, resp.Usage.Remaining)
	assert.Equal(t, "0", resp.Usage.RemainingLabel)
	assert.False(t, resp.Usage.IsOver)

	require.Len(t, resp.Sessions, 2)
	// Chronological, not insertion, order
	assert.Equal(t, int64(1), resp.Sessions[0].BookingID)
	assert.Equal(t, 1, resp.Sessions[0].Number)
	assert.Equal(t, "Aljabar (Sesi 1/2)", resp.Sessions[0].Label)
	assert.Equal(t, "done", resp.Sessions[0].Status)

	assert.Equal(t, int64(2), resp.Sessions[1].BookingID)
	assert.Equal(t, 2, resp.Sessions[1].Number)
	assert.Equal(t, "Aljabar (Sesi 2/2)", resp.Sessions[1].Label)
}

func TestExecuteOverrunShowsOverLabel(t *testing.T) {
	student := testStudent()
	total := 1
	student.PackageTotalSessions = &total
	student.ManualUsage = 2

	uc := NewUseCase(
		&fakeStudentRepo{student: student},
		&fakeBookingRepo{bookings: []*domain.Booking{
			historyBooking(1, "2025-01-01", "10:00", domain.StatusDone),
		}},
		&fakeCurriculumRepo{entries: nil},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{StudentID: 1})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Usage.UsedSessions)
	assert.Equal(t, -2, resp.Usage.Remaining)
	assert.True(t, resp.Usage.IsOver)
	assert.Equal(t, "Over 2", resp.Usage.RemainingLabel)
}

func TestExecuteStudentWithoutPackage(t *testing.T) {
	topic := "Konsultasi"
	booking := historyBooking(1, "2025-01-01", "10:00", domain.StatusScheduled)
	booking.Topic = &topic

	uc := NewUseCase(
		&fakeStudentRepo{student: &domain.Student{
			ID:               1,
			Name:             "Siti",
			JoinDate:         date("2025-01-01"),
			GraduationStatus: domain.GraduationNotYet,
			Status:           "active",
		}},
		&fakeBookingRepo{bookings: []*domain.Booking{booking}},
		&fakeCurriculumRepo{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{StudentID: 1})
	require.NoError(t, err)

	require.Len(t, resp.Sessions, 1)
	assert.Equal(t, "Extra #1", resp.Sessions[0].Label)
	assert.Equal(t, 0, resp.Usage.TotalSessions)
	assert.Equal(t, "Over 1", resp.Usage.RemainingLabel)
}

func TestExecuteStudentNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeStudentRepo{},
		&fakeBookingRepo{},
		&fakeCurriculumRepo{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{StudentID: 42})
	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestExecuteRejectsNonPositiveID(t *testing.T) {
	uc := NewUseCase(
		&fakeStudentRepo{},
		&fakeBookingRepo{},
		&fakeCurriculumRepo{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{StudentID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
