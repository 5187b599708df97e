package domain

import (
	"fmt"
	"sort"
	"strconv"
)

// ResolvedSession is the display label pair computed for one booking by
// matching its chronological position against the expanded curriculum.
// Labels are always derived fresh: editing or deleting a past booking shifts
// every later session number of that student. That is intentional, the
// ledger stays raw and the numbering stays a pure function of it.
type ResolvedSession struct {
	BookingID     int64
	Index         int  // 0-based chronological position in the student's history
	Overflow      bool // true once the history outgrew the curriculum
	MaterialName  string
	MaterialCode  string
	Position      int // 1-based position within the material, 0 on overflow
	MaterialTotal int // session_count of the material, 0 on overflow
}

// SessionLabel formats the session counter: "Sesi 2/6" inside the
// curriculum, "Extra #7" beyond it
func (r ResolvedSession) SessionLabel() string {
	if r.Overflow {
		return fmt.Sprintf("Extra #%d", r.Index+1)
	}
	return fmt.Sprintf("Sesi %d/%d", r.Position, r.MaterialTotal)
}

// CompactLabel is the short counter used on the timeline cards: "#2" for the
// position within the material, or the plain history number on overflow
func (r ResolvedSession) CompactLabel() string {
	if r.Overflow {
		return fmt.Sprintf("#%d", r.Index+1)
	}
	return fmt.Sprintf("#%d", r.Position)
}

// DisplayLabel combines material and session counter, e.g.
// "Algebra (Sesi 1/2)" or "Extra #4"
func (r ResolvedSession) DisplayLabel() string {
	if r.Overflow {
		return r.SessionLabel()
	}
	return fmt.Sprintf("%s (%s)", r.MaterialName, r.SessionLabel())
}

// ResolveSessions assigns every booking of one student its session slot.
// Bookings may arrive in any order; chronological attendance order is
// defined by (date, time) ascending, ties keeping the input order. Bookings
// past the end of the expanded sequence resolve to overflow labels with the
// material falling back to the booking's free-text topic (or "-").
//
// The result is in chronological order and covers every input booking
// exactly once. A student without a package or curriculum simply gets
// overflow labels from the first booking on; that is not an error.
func ResolveSessions(bookings []*Booking, slots []SessionSlot) []ResolvedSession {
	ordered := make([]*Booking, len(bookings))
	copy(ordered, bookings)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].Date.Equal(ordered[j].Date) {
			return ordered[i].Date.Before(ordered[j].Date)
		}
		return ordered[i].Time.IsBefore(ordered[j].Time)
	})

	resolved := make([]ResolvedSession, len(ordered))
	for i, b := range ordered {
		if i < len(slots) {
			slot := slots[i]
			resolved[i] = ResolvedSession{
				BookingID:     b.ID,
				Index:         i,
				MaterialName:  slot.MaterialName,
				MaterialCode:  slot.MaterialCode,
				Position:      slot.Position,
				MaterialTotal: slot.MaterialTotal,
			}
			continue
		}
		resolved[i] = ResolvedSession{
			BookingID:    b.ID,
			Index:        i,
			Overflow:     true,
			MaterialName: b.TopicOrFallback(),
			MaterialCode: FallbackLabel,
		}
	}
	return resolved
}

// ResolveAllSessions resolves session labels for bookings spanning many
// students in one pass. Bookings are grouped per student, each group is
// matched against the curriculum of the student's package, and the result is
// keyed by booking ID. Students whose package has no curriculum resolve to
// overflow labels throughout.
func ResolveAllSessions(bookings []*Booking, curriculaByPackage map[int64][]CurriculumEntry) map[int64]ResolvedSession {
	byStudent := make(map[int64][]*Booking)
	for _, b := range bookings {
		byStudent[b.StudentID] = append(byStudent[b.StudentID], b)
	}

	resolved := make(map[int64]ResolvedSession, len(bookings))
	for _, history := range byStudent {
		var slots []SessionSlot
		if packageID := history[0].StudentPackageID; packageID != nil {
			slots = ExpandCurriculum(curriculaByPackage[*packageID])
		}
		for _, session := range ResolveSessions(history, slots) {
			resolved[session.BookingID] = session
		}
	}
	return resolved
}

// SessionUsage summarizes how much of a package a student has consumed
type SessionUsage struct {
	TotalSessions int
	BookingCount  int
	ManualUsage   int
	UsedSessions  int
	Remaining     int
}

// CalculateUsage combines booking history with migrated usage. Remaining may
// go negative; it is surfaced as an overrun, never clamped.
func CalculateUsage(totalSessions, bookingCount, manualUsage int) SessionUsage {
	used := bookingCount + manualUsage
	return SessionUsage{
		TotalSessions: totalSessions,
		BookingCount:  bookingCount,
		ManualUsage:   manualUsage,
		UsedSessions:  used,
		Remaining:     totalSessions - used,
	}
}

// IsOver reports whether the student consumed more sessions than the
// package holds
func (u SessionUsage) IsOver() bool {
	return u.Remaining < 0
}

// RemainingLabel renders the remaining counter, "Over N" on overrun
func (u SessionUsage) RemainingLabel() string {
	if u.Remaining < 0 {
		return fmt.Sprintf("Over %d", -u.Remaining)
	}
	return strconv.Itoa(u.Remaining)
}
