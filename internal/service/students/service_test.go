package students

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bimbelceria/BC-AdminService/internal/domain"
	"github.com/bimbelceria/BC-AdminService/internal/infra/storage/booking"
	studentRepo "github.com/bimbelceria/BC-AdminService/internal/infra/storage/student"
	"github.com/bimbelceria/BC-AdminService/internal/service/students/models"
)

type fakeStudentRepo struct {
	students map[int64]*domain.Student
	nextID   int64
}

func (f *fakeStudentRepo) Create(_ context.Context, s *domain.Student) (*domain.Student, error) {
	f.nextID++
	s.ID = f.nextID
	f.students[s.ID] = s
	return s, nil
}

func (f *fakeStudentRepo) GetByID(_ context.Context, id int64) (*domain.Student, error) {
	s, ok := f.students[id]
	if !ok {
		return nil, studentRepo.ErrStudentNotFound
	}
	return s, nil
}

func (f *fakeStudentRepo) List(_ context.Context, onlyActive bool) ([]*domain.Student, error) {
	list := make([]*domain.Student, 0, len(f.students))
	for id := int64(1); id <= f.nextID; id++ {
		s, ok := f.students[id]
		if !ok {
			continue
		}
		if onlyActive && !s.IsActive() {
			continue
		}
		list = append(list, s)
	}
	return list, nil
}

func (f *fakeStudentRepo) Update(_ context.Context, s *domain.Student) error {
	if _, ok := f.students[s.ID]; !ok {
		return studentRepo.ErrStudentNotFound
	}
	f.students[s.ID] = s
	return nil
}

func (f *fakeStudentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.students[id]; !ok {
		return studentRepo.ErrStudentNotFound
	}
	delete(f.students, id)
	return nil
}

type fakeBookingRepo struct {
	activity map[int64]booking.StudentActivity

	// IDs passed to ActivityForStudent, to check single-student reads
	// stay single-student
	activityQueries []int64
}

func (f *fakeBookingRepo) ActivityByStudent(_ context.Context) (map[int64]booking.StudentActivity, error) {
	return f.activity, nil
}

func (f *fakeBookingRepo) ActivityForStudent(_ context.Context, studentID int64) (booking.StudentActivity, error) {
	f.activityQueries = append(f.activityQueries, studentID)
	return f.activity[studentID], nil
}

func (f *fakeBookingRepo) List(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return nil, nil
}

type fakeAuthClient struct {
	roles map[string]string
}

func (f *fakeAuthClient) GetRole(_ context.Context, userID string) (string, error) {
	return f.roles[userID], nil
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

func newService(activity map[int64]booking.StudentActivity) (*Service, *fakeStudentRepo, *fakeBookingRepo) {
	repo := &fakeStudentRepo{students: map[int64]*domain.Student{}}
	bookings := &fakeBookingRepo{activity: activity}
	svc := NewService(
		repo,
		bookings,
		&fakeAuthClient{roles: map[string]string{"7": "admin"}},
		nopLogger{},
	)
	return svc, repo, bookings
}

func TestCreateDefaults(t *testing.T) {
	svc, repo, _ := newService(nil)
	phone := "081234567890"

	resp, err := svc.Create(context.Background(), &models.CreateStudentRequest{
		Name:     "Budi Santoso Wijaya",
		Phone:    &phone,
		JoinDate: "2025-01-15",
	})
	require.NoError(t, err)

	assert.Equal(t, "Budi Santoso", resp.ShortName)
	assert.Equal(t, "6281234567890", resp.WhatsAppPhone)
	assert.Equal(t, "Belum Lulus", resp.GraduationStatus)
	assert.Equal(t, "active", resp.Status)

	stored := repo.students[resp.ID]
	require.NotNil(t, stored)
	assert.Equal(t, domain.GraduationNotYet, stored.GraduationStatus)
}

func TestCreateValidation(t *testing.T) {
	svc, _, _ := newService(nil)

	_, err := svc.Create(context.Background(), &models.CreateStudentRequest{JoinDate: "2025-01-15"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), &models.CreateStudentRequest{Name: "Budi", JoinDate: "15/01/2025"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	bogus := "Sudah Lulus Banget"
	_, err = svc.Create(context.Background(), &models.CreateStudentRequest{
		Name:             "Budi",
		JoinDate:         "2025-01-15",
		GraduationStatus: &bogus,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByIDMergesBookingActivity(t *testing.T) {
	last := date("2025-01-10")
	svc, repo, bookings := newService(map[int64]booking.StudentActivity{
		1: {BookingCount: 4, LastDate: &last},
	})

	total := 10
	repo.nextID = 1
	repo.students[1] = &domain.Student{
		ID:                   1,
		Name:                 "Budi",
		JoinDate:             date("2024-11-01"),
		ManualUsage:          3,
		GraduationStatus:     domain.GraduationNotYet,
		Status:               "active",
		PackageTotalSessions: &total,
	}

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 10, resp.TotalSessions)
	assert.Equal(t, 4, resp.BookingCount)
	assert.Equal(t, 7, resp.UsedSessions)
	assert.Equal(t, 3, resp.Remaining)
	assert.Equal(t, "3", resp.RemainingLabel)
	require.NotNil(t, resp.LastBookingAt)
	assert.Equal(t, "2025-01-10", *resp.LastBookingAt)

	// One student fetched, one student aggregated
	assert.Equal(t, []int64{1}, bookings.activityQueries)
}

func TestListOnlyActive(t *testing.T) {
	svc, repo, _ := newService(nil)

	repo.nextID = 2
	repo.students[1] = &domain.Student{ID: 1, Name: "Budi", JoinDate: date("2024-11-01"), Status: "active"}
	repo.students[2] = &domain.Student{ID: 2, Name: "Siti", JoinDate: date("2024-11-01"), Status: "inactive"}

	resp, err := svc.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, resp.Students, 1)
	assert.Equal(t, "Budi", resp.Students[0].Name)

	resp, err = svc.List(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, resp.Students, 2)
}

func TestDeleteRequiresAdmin(t *testing.T) {
	svc, repo, _ := newService(nil)
	repo.nextID = 1
	repo.students[1] = &domain.Student{ID: 1, Name: "Budi", JoinDate: date("2024-11-01"), Status: "active"}

	err := svc.Delete(context.Background(), 1, "staff-user")
	assert.ErrorIs(t, err, ErrAccessDenied)

	err = svc.Delete(context.Background(), 1, "7")
	assert.NoError(t, err)

	err = svc.Delete(context.Background(), 1, "7")
	assert.ErrorIs(t, err, ErrStudentNotFound)
}
