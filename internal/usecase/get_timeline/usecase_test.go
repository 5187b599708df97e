package get_timeline

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

func gridBooking(id, studentID int64, name, day, clock string) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		Date:        date(day),
		Time:        types.TimeString(clock),
		Status:      domain.StatusScheduled,
		StudentID:   studentID,
		StudentName: name,
	}
}

func withCard(b *domain.Booking, instructorID int64, nickname, location string) *domain.Booking {
	b.InstructorID = &instructorID
	b.InstructorNickname = &nickname
	b.LocationName = &location
	return b
}

func TestExecuteBuildsMonthGrid(t *testing.T) {
	bookings := []*domain.Booking{
		withCard(gridBooking(1, 1, "Budi Santoso Wijaya", "2025-01-06", "10:00"), 7, "Kak Sari", "Depok"),
		withCard(gridBooking(2, 2, "Siti Rahma", "2025-01-06", "10:00"), 7, "Kak Sari", "Depok"),
		// Same slot, different instructor: separate card
		withCard(gridBooking(3, 3, "Andi", "2025-01-06", "10:00"), 8, "Kak Dimas", "Depok"),
		// Outside the month: resolved but not rendered
		gridBooking(4, 1, "Budi Santoso Wijaya", "2025-02-01", "10:00"),
	}

	uc := NewUseCase(
		&fakeBookingRepo{bookings: bookings},
		&fakeCurriculumRepo{byPackage: map[int64][]*domain.CurriculumEntry{}},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Month: "2025-01"})
	require.NoError(t, err)

	assert.Equal(t, "2025-01", resp.Month)
	assert.Len(t, resp.Days, 31)
	assert.Equal(t, "2025-01-01", resp.Days[0])
	assert.Equal(t, "2025-01-31", resp.Days[30])
	assert.Equal(t, "08:00", resp.Hours[0])
	assert.Equal(t, "21:00", resp.Hours[len(resp.Hours)-1])

	groups := resp.Cells["2025-01-06_10:00"]
	require.Len(t, groups, 2)

	assert.Equal(t, "Kak Sari", groups[0].Instructor)
	assert.Equal(t, "Depok", groups[0].Location)
	require.Len(t, groups[0].Entries, 2)
	assert.Equal(t, "Budi Santoso", groups[0].Entries[0].StudentName)
	assert.Equal(t, "Siti Rahma", groups[0].Entries[1].StudentName)

	assert.Equal(t, "Kak Dimas", groups[1].Instructor)
	require.Len(t, groups[1].Entries, 1)

	// The February booking must not leak into January cells
	assert.NotContains(t, resp.Cells, "2025-02-01_10:00")
}

func TestExecuteSessionNumbersSpanMonths(t *testing.T) {
	packageID := int64(5)
	student := func(b *domain.Booking) *domain.Booking {
		b.StudentPackageID = &packageID
		return b
	}

	bookings := []*domain.Booking{
		student(gridBooking(1, 1, "Budi", "2024-12-30", "10:00")),
		student(gridBooking(2, 1, "Budi", "2025-01-06", "10:00")),
	}

	curricula := map[int64][]*domain.CurriculumEntry{
		packageID: {
			{Material: domain.Material{Name: "Aljabar", Code: "ALJ", SessionCount: 3}},
		},
	}

	uc := NewUseCase(
		&fakeBookingRepo{bookings: bookings},
		&fakeCurriculumRepo{byPackage: curricula},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Month: "2025-01"})
	require.NoError(t, err)

	groups := resp.Cells["2025-01-06_10:00"]
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Entries, 1)

	// Second session overall, even though it is January's first
	assert.Equal(t, "#2", groups[0].Entries[0].SessionLabel)
	assert.Equal(t, "ALJ", groups[0].Entries[0].MaterialCode)
}

func TestExecuteUnassignedBookingsShareTheUndefinedCard(t *testing.T) {
	bookings := []*domain.Booking{
		gridBooking(1, 1, "Budi", "2025-01-06", "10:00"),
		gridBooking(2, 2, "Siti", "2025-01-06", "10:00"),
	}

	uc := NewUseCase(
		&fakeBookingRepo{bookings: bookings},
		&fakeCurriculumRepo{byPackage: map[int64][]*domain.CurriculumEntry{}},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Month: "2025-01"})
	require.NoError(t, err)

	groups := resp.Cells["2025-01-06_10:00"]
	require.Len(t, groups, 1)
	assert.Equal(t, "undefined", groups[0].Instructor)
	assert.Equal(t, "undefined", groups[0].Location)
	assert.Len(t, groups[0].Entries, 2)
}

func TestExecuteInstructorFilter(t *testing.T) {
	bookings := []*domain.Booking{
		withCard(gridBooking(1, 1, "Budi", "2025-01-06", "10:00"), 7, "Kak Sari", "Depok"),
		withCard(gridBooking(2, 2, "Siti", "2025-01-06", "10:00"), 8, "Kak Dimas", "Depok"),
		gridBooking(3, 3, "Andi", "2025-01-06", "10:00"),
	}

	uc := NewUseCase(
		&fakeBookingRepo{bookings: bookings},
		&fakeCurriculumRepo{byPackage: map[int64][]*domain.CurriculumEntry{}},
		nopLogger{},
	)

	instructorID := int64(7)
	resp, err := uc.Execute(context.Background(), &Request{Month: "2025-01", InstructorID: &instructorID})
	require.NoError(t, err)

	groups := resp.Cells["2025-01-06_10:00"]
	require.Len(t, groups, 1)
	assert.Equal(t, "Kak Sari", groups[0].Instructor)
	require.Len(t, groups[0].Entries, 1)
	assert.Equal(t, int64(1), groups[0].Entries[0].BookingID)
}

func TestExecuteInvalidMonth(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeCurriculumRepo{},
		nopLogger{},
	)

	tests := []struct {
		name  string
		month string
	}{
		{name: "empty", month: ""},
		{name: "wrong layout", month: "01-2025"},
		{name: "full date", month: "2025-01-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &Request{Month: tt.month})
			assert.Error(t, err)
		})
	}
}
