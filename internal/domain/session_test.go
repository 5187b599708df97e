package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bimbelceria/BC-AdminService/pkg/types"
)

func day(s string) time.Time {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func booking(id int64, date, clock string) *Booking {
	return &Booking{
		ID:   id,
		Date: day(date),
		Time: types.TimeString(clock),
	}
}

func TestResolveSessions(t *testing.T) {
	slots := ExpandCurriculum([]CurriculumEntry{
		entry("Aljabar", "ALJ", 2),
		entry("Geometri", "GEO", 1),
	})

	t.Run("orders by date then time", func(t *testing.T) {
		bookings := []*Booking{
			booking(3, "2025-01-10", "10:00"),
			booking(1, "2025-01-05", "13:00"),
			booking(2, "2025-01-05", "09:00"),
		}

		resolved := ResolveSessions(bookings, slots)
		require.Len(t, resolved, 3)

		assert.Equal(t, int64(2), resolved[0].BookingID)
		assert.Equal(t, int64(1), resolved[1].BookingID)
		assert.Equal(t, int64(3), resolved[2].BookingID)

		assert.Equal(t, "Sesi 1/2", resolved[0].SessionLabel())
		assert.Equal(t, "Sesi 2/2", resolved[1].SessionLabel())
		assert.Equal(t, "Sesi 1/1", resolved[2].SessionLabel())
		assert.Equal(t, "Aljabar (Sesi 1/2)", resolved[0].DisplayLabel())
	})

	t.Run("overflow past the curriculum", func(t *testing.T) {
		topic := "Persiapan UTBK"
		bookings := []*Booking{
			booking(1, "2025-01-01", "08:00"),
			booking(2, "2025-01-02", "08:00"),
			booking(3, "2025-01-03", "08:00"),
			booking(4, "2025-01-04", "08:00"),
			booking(5, "2025-01-05", "08:00"),
		}
		bookings[3].Topic = &topic

		resolved := ResolveSessions(bookings, slots)
		require.Len(t, resolved, 5)

		assert.False(t, resolved[2].Overflow)
		assert.True(t, resolved[3].Overflow)
		assert.Equal(t, "Extra #4", resolved[3].SessionLabel())
		assert.Equal(t, "Extra #4", resolved[3].DisplayLabel())
		assert.Equal(t, "Persiapan UTBK", resolved[3].MaterialName)

		// No topic: the material name falls back to "-"
		assert.Equal(t, "Extra #5", resolved[4].SessionLabel())
		assert.Equal(t, FallbackLabel, resolved[4].MaterialName)
	})

	t.Run("no curriculum means overflow from the start", func(t *testing.T) {
		bookings := []*Booking{booking(1, "2025-01-01", "08:00")}

		resolved := ResolveSessions(bookings, nil)
		require.Len(t, resolved, 1)
		assert.True(t, resolved[0].Overflow)
		assert.Equal(t, "Extra #1", resolved[0].SessionLabel())
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, ResolveSessions(nil, slots))
	})
}

func TestResolveSessionsWalksCurriculumInOrder(t *testing.T) {
	slots := ExpandCurriculum([]CurriculumEntry{
		entry("Algebra", "ALG", 2),
		entry("Geometry", "GEO", 1),
	})

	topic := "Review bab 3"
	bookings := []*Booking{
		booking(1, "2024-01-01", "10:00"),
		booking(2, "2024-01-08", "10:00"),
		booking(3, "2024-01-15", "10:00"),
		booking(4, "2024-01-22", "10:00"),
	}
	bookings[3].Topic = &topic

	resolved := ResolveSessions(bookings, slots)
	require.Len(t, resolved, 4)

	assert.Equal(t, "Algebra (Sesi 1/2)", resolved[0].DisplayLabel())
	assert.Equal(t, "Algebra (Sesi 2/2)", resolved[1].DisplayLabel())
	assert.Equal(t, "Geometry (Sesi 1/1)", resolved[2].DisplayLabel())
	assert.Equal(t, "Extra #4", resolved[3].DisplayLabel())
	assert.Equal(t, "Review bab 3", resolved[3].MaterialName)
}

func TestResolveSessionsIsRepeatable(t *testing.T) {
	slots := ExpandCurriculum([]CurriculumEntry{
		entry("Aljabar", "ALJ", 2),
	})
	bookings := []*Booking{
		booking(3, "2025-01-10", "10:00"),
		booking(1, "2025-01-05", "13:00"),
		booking(2, "2025-01-05", "09:00"),
	}

	first := ResolveSessions(bookings, slots)
	second := ResolveSessions(bookings, slots)
	assert.Equal(t, first, second)

	// The resolver sorts its own copy; the caller's slice keeps its order
	gotOrder := []int64{bookings[0].ID, bookings[1].ID, bookings[2].ID}
	assert.Equal(t, []int64{3, 1, 2}, gotOrder)
}

func TestResolvedSessionCompactLabel(t *testing.T) {
	assert.Equal(t, "#2", ResolvedSession{Position: 2, MaterialTotal: 6}.CompactLabel())
	assert.Equal(t, "#7", ResolvedSession{Index: 6, Overflow: true}.CompactLabel())
}

func TestResolveAllSessions(t *testing.T) {
	pkgA := int64(10)
	curricula := map[int64][]CurriculumEntry{
		pkgA: {entry("Aljabar", "ALJ", 1)},
	}

	withPackage := func(b *Booking, studentID int64, packageID *int64) *Booking {
		b.StudentID = studentID
		b.StudentPackageID = packageID
		return b
	}

	bookings := []*Booking{
		withPackage(booking(1, "2025-01-01", "08:00"), 1, &pkgA),
		withPackage(booking(2, "2025-01-02", "08:00"), 1, &pkgA),
		withPackage(booking(3, "2025-01-01", "08:00"), 2, nil),
	}

	resolved := ResolveAllSessions(bookings, curricula)
	require.Len(t, resolved, 3)

	// Student 1 consumes the one-slot curriculum, then overflows
	assert.Equal(t, "Sesi 1/1", resolved[1].SessionLabel())
	assert.Equal(t, "Extra #2", resolved[2].SessionLabel())

	// Student 2 has no package: overflow numbering independent of student 1
	assert.Equal(t, "Extra #1", resolved[3].SessionLabel())
}

func TestCalculateUsage(t *testing.T) {
	tests := []struct {
		name          string
		total         int
		bookings      int
		manual        int
		wantUsed      int
		wantRemaining int
		wantOver      bool
		wantLabel     string
	}{
		{name: "unused package", total: 10, wantRemaining: 10, wantLabel: "10"},
		{name: "partially used", total: 10, bookings: 3, manual: 2, wantUsed: 5, wantRemaining: 5, wantLabel: "5"},
		{name: "exactly consumed", total: 10, bookings: 10, wantUsed: 10, wantRemaining: 0, wantLabel: "0"},
		{name: "overrun", total: 10, bookings: 9, manual: 4, wantUsed: 13, wantRemaining: -3, wantOver: true, wantLabel: "Over 3"},
		{name: "no package", total: 0, bookings: 2, wantUsed: 2, wantRemaining: -2, wantOver: true, wantLabel: "Over 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usage := CalculateUsage(tt.total, tt.bookings, tt.manual)
			assert.Equal(t, tt.wantUsed, usage.UsedSessions)
			assert.Equal(t, tt.wantRemaining, usage.Remaining)
			assert.Equal(t, tt.wantOver, usage.IsOver())
			assert.Equal(t, tt.wantLabel, usage.RemainingLabel())
		})
	}
}
