package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bimbelceria/BC-AdminService/internal/domain"
	studentRepo "github.com/bimbelceria/BC-AdminService/internal/infra/storage/student"
	"github.com/bimbelceria/BC-AdminService/internal/service/bookings/models"
	"github.com/bimbelceria/BC-AdminService/pkg/types"
)

type fakeBookingRepo struct {
	bookings    []*domain.Booking
	countToday  int
	listErr     error
	countedDate time.Time
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	b.ID = int64(len(f.bookings) + 1)
	f.bookings = append(f.bookings, b)
	return b, nil
}

func (f *fakeBookingRepo) CreateBatch(_ context.Context, bookings []*domain.Booking) error {
	f.bookings = append(f.bookings, bookings...)
	return nil
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	for _, b := range f.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeBookingRepo) List(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, f.listErr
}

func (f *fakeBookingRepo) Update(_ context.Context, _ *domain.Booking) error { return nil }

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, _ int64, _ domain.BookingStatus) error {
	return nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, _ int64) error { return nil }

func (f *fakeBookingRepo) CountByDate(_ context.Context, date time.Time) (int, error) {
	f.countedDate = date
	return f.countToday, nil
}

type fakeStudentRepo struct {
	students    map[int64]*domain.Student
	countActive int
}

func (f *fakeStudentRepo) GetByID(_ context.Context, id int64) (*domain.Student, error) {
	s, ok := f.students[id]
	if !ok {
		return nil, studentRepo.ErrStudentNotFound
	}
	return s, nil
}

func (f *fakeStudentRepo) CountActive(_ context.Context) (int, error) {
	return f.countActive, nil
}

type fakeInstructorRepo struct {
	instructors []*domain.Instructor
}

func (f *fakeInstructorRepo) List(_ context.Context) ([]*domain.Instructor, error) {
	return f.instructors, nil
}

type fakeAuthClient struct {
	roles map[string]string
	err   error
}

func (f *fakeAuthClient) GetRole(_ context.Context, userID string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.roles[userID], nil
}

type fixedClock struct {
	now time.Time
}

func (f fixedClock) Now() time.Time { return f.now }

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

func newService(bookings *fakeBookingRepo, students *fakeStudentRepo, auth *fakeAuthClient) *Service {
	if students == nil {
		students = &fakeStudentRepo{students: map[int64]*domain.Student{}}
	}
	if auth == nil {
		auth = &fakeAuthClient{roles: map[string]string{}}
	}
	return NewService(
		bookings,
		students,
		&fakeInstructorRepo{},
		auth,
		fixedClock{now: date("2025-01-15")},
		nopLogger{},
	)
}

func TestCreateRejectsUnknownStudent(t *testing.T) {
	svc := newService(&fakeBookingRepo{}, nil, nil)

	_, err := svc.Create(context.Background(), &models.CreateBookingRequest{
		StudentID: 42,
		Date:      "2025-01-20",
		Time:      "10:00",
	})
	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestCreateRejectsMalformedInput(t *testing.T) {
	svc := newService(&fakeBookingRepo{}, &fakeStudentRepo{
		students: map[int64]*domain.Student{1: {ID: 1, Name: "Budi"}},
	}, nil)

	tests := []struct {
		name    string
		req     *models.CreateBookingRequest
		wantErr error
	}{
		{
			name:    "bad date",
			req:     &models.CreateBookingRequest{StudentID: 1, Date: "20-01-2025", Time: "10:00"},
			wantErr: ErrInvalidBookingDate,
		},
		{
			name:    "bad time",
			req:     &models.CreateBookingRequest{StudentID: 1, Date: "2025-01-20", Time: "25:61"},
			wantErr: ErrInvalidBookingTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAttendanceCountsStatuses(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, Date: date("2025-01-15"), Time: types.TimeString("08:00"), Status: domain.StatusDone, StudentName: "Budi"},
		{ID: 2, Date: date("2025-01-15"), Time: types.TimeString("09:00"), Status: domain.StatusDone, StudentName: "Siti"},
		{ID: 3, Date: date("2025-01-15"), Time: types.TimeString("10:00"), Status: domain.StatusCancelled, StudentName: "Andi"},
		{ID: 4, Date: date("2025-01-15"), Time: types.TimeString("11:00"), Status: domain.StatusScheduled, StudentName: "Dewi"},
	}}
	svc := newService(repo, nil, nil)

	resp, err := svc.Attendance(context.Background(), "2025-01-15")
	require.NoError(t, err)

	assert.Equal(t, "2025-01-15", resp.Date)
	assert.Equal(t, 4, resp.Stats.Total)
	assert.Equal(t, 2, resp.Stats.Done)
	assert.Equal(t, 1, resp.Stats.Cancelled)
	assert.Equal(t, 1, resp.Stats.Scheduled)
	assert.Len(t, resp.Bookings, 4)
}

func TestAttendanceRejectsBadDate(t *testing.T) {
	svc := newService(&fakeBookingRepo{}, nil, nil)

	_, err := svc.Attendance(context.Background(), "kemarin")
	assert.ErrorIs(t, err, ErrInvalidBookingDate)
}

func TestDashboardStats(t *testing.T) {
	repo := &fakeBookingRepo{countToday: 6}
	students := &fakeStudentRepo{students: map[int64]*domain.Student{}, countActive: 12}
	svc := NewService(
		repo,
		students,
		&fakeInstructorRepo{instructors: []*domain.Instructor{
			{ID: 1, Name: "Sari"},
			{ID: 2, Name: "Dimas"},
		}},
		&fakeAuthClient{},
		fixedClock{now: date("2025-01-15")},
		nopLogger{},
	)

	resp, err := svc.DashboardStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 12, resp.ActiveStudents)
	assert.Equal(t, 6, resp.BookingsToday)
	assert.Equal(t, 2, resp.Instructors)
	assert.Equal(t, date("2025-01-15"), repo.countedDate)
}

func TestDeleteRequiresAdmin(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, Date: date("2025-01-15"), Time: types.TimeString("08:00"), Status: domain.StatusScheduled},
	}}

	t.Run("staff denied", func(t *testing.T) {
		svc := newService(repo, nil, &fakeAuthClient{roles: map[string]string{"7": "staff"}})
		err := svc.Delete(context.Background(), 1, "7")
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("degraded lookup denied", func(t *testing.T) {
		svc := newService(repo, nil, &fakeAuthClient{err: errors.New("timeout")})
		err := svc.Delete(context.Background(), 1, "7")
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("admin allowed", func(t *testing.T) {
		svc := newService(repo, nil, &fakeAuthClient{roles: map[string]string{"7": "admin"}})
		err := svc.Delete(context.Background(), 1, "7")
		assert.NoError(t, err)
	})
}
