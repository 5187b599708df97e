package list_bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bimbelceria/BC-AdminService/internal/domain"
	"github.com/bimbelceria/BC-AdminService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) List(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeCurriculumRepo struct {
	byPackage map[int64][]*domain.CurriculumEntry
}

func (f *fakeCurriculumRepo) ListAll(_ context.Context) (map[int64][]*domain.CurriculumEntry, error) {
	return f.byPackage, nil
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

func ledgerBooking(id, studentID int64, day string, status domain.BookingStatus) *domain.Booking {
	packageID := int64(5)
	return &domain.Booking{
		ID:               id,
		Date:             date(day),
		Time:             types.TimeString("10:00"),
		Status:           status,
		StudentID:        studentID,
		StudentName:      "Budi",
		StudentPackageID: &packageID,
	}
}

func testCurricula() map[int64][]*domain.CurriculumEntry {
	return map[int64][]*domain.CurriculumEntry{
		5: {
			{Material: domain.Material{Name: "Aljabar", Code: "ALJ", SessionCount: 2}},
		},
	}
}

func TestExecuteLabelsFollowFullHistory(t *testing.T) {
	bookings := []*domain.Booking{
		ledgerBooking(1, 1, "2025-01-01", domain.StatusDone),
		ledgerBooking(2, 1, "2025-01-08", domain.StatusScheduled),
		ledgerBooking(3, 1, "2025-01-15", domain.StatusScheduled),
	}

	uc := NewUseCase(
		&fakeBookingRepo{bookings: bookings},
		&fakeCurriculumRepo{byPackage: testCurricula()},
		nopLogger{},
	)

	// Filtering to one week must not renumber the sessions
	resp, err := uc.Execute(context.Background(), &Request{
		StartDate: "2025-01-08",
		EndDate:   "2025-01-15",
	})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 2)

	assert.Equal(t, int64(2), resp.Bookings[0].ID)
	assert.Equal(t, "Sesi 2/2", resp.Bookings[0].SessionLabel)
	assert.Equal(t, "Aljabar", resp.Bookings[0].MaterialName)

	assert.Equal(t, int64(3), resp.Bookings[1].ID)
	assert.Equal(t, "Extra #3", resp.Bookings[1].SessionLabel)
}

func TestExecuteFilters(t *testing.T) {
	instructorID := int64(7)
	withInstructor := func(b *domain.Booking) *domain.Booking {
		b.InstructorID = &instructorID
		return b
	}

	bookings := []*domain.Booking{
		withInstructor(ledgerBooking(1, 1, "2025-01-01", domain.StatusDone)),
		ledgerBooking(2, 2, "2025-01-02", domain.StatusScheduled),
		ledgerBooking(3, 2, "2025-01-03", domain.StatusCancelled),
	}

	uc := NewUseCase(
		&fakeBookingRepo{bookings: bookings},
		&fakeCurriculumRepo{byPackage: testCurricula()},
		nopLogger{},
	)

	t.Run("by student", func(t *testing.T) {
		studentID := int64(2)
		resp, err := uc.Execute(context.Background(), &Request{StudentID: &studentID})
		require.NoError(t, err)
		require.Len(t, resp.Bookings, 2)
		assert.Equal(t, int64(2), resp.Bookings[0].ID)
		assert.Equal(t, int64(3), resp.Bookings[1].ID)
	})

	t.Run("by instructor", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), &Request{InstructorID: &instructorID})
		require.NoError(t, err)
		require.Len(t, resp.Bookings, 1)
		assert.Equal(t, int64(1), resp.Bookings[0].ID)
	})

	t.Run("by status", func(t *testing.T) {
		status := "cancelled"
		resp, err := uc.Execute(context.Background(), &Request{Status: &status})
		require.NoError(t, err)
		require.Len(t, resp.Bookings, 1)
		assert.Equal(t, int64(3), resp.Bookings[0].ID)
	})

	t.Run("empty request returns everything", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), &Request{})
		require.NoError(t, err)
		assert.Len(t, resp.Bookings, 3)
	})
}

func TestExecuteValidation(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeCurriculumRepo{},
		nopLogger{},
	)

	negative := int64(-1)
	badStatus := "unknown"

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{name: "bad start date", req: &Request{StartDate: "01-01-2025"}, wantErr: ErrInvalidDate},
		{name: "bad end date", req: &Request{EndDate: "soon"}, wantErr: ErrInvalidDate},
		{name: "inverted range", req: &Request{StartDate: "2025-01-31", EndDate: "2025-01-01"}, wantErr: ErrInvalidInput},
		{name: "non-positive student", req: &Request{StudentID: &negative}, wantErr: ErrInvalidInput},
		{name: "non-positive instructor", req: &Request{InstructorID: &negative}, wantErr: ErrInvalidInput},
		{name: "unknown status", req: &Request{Status: &badStatus}, wantErr: ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
