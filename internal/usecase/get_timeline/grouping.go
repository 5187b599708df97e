package get_timeline

import (
	"fmt"

	"github.com/bimbelceria/BC-AdminService/internal/domain"
)

// cellKey addresses one grid cell: one date, one starting hour
func cellKey(b *domain.Booking) string {
	return fmt.Sprintf("%s_%s", b.Date.Format(domain.DateFormat), b.Time.String())
}

// groupKey merges bookings into one class card when instructor and location
// match. Unassigned bookings share the "undefined"/"undefined" card.
type groupKey struct {
	instructor string
	location   string
}

// buildCells folds the month's bookings into grid cells. Within a cell,
// bookings sharing an instructor and location merge into one card; card order
// and entry order follow the ledger order of the input.
func buildCells(bookings []*domain.Booking, resolved map[int64]domain.ResolvedSession) map[string][]CellGroup {
	cells := make(map[string][]CellGroup)
	groupIndex := make(map[string]map[groupKey]int)

	for _, b := range bookings {
		key := cellKey(b)
		gk := groupKey{
			instructor: b.InstructorLabel(),
			location:   b.LocationLabel(),
		}

		if groupIndex[key] == nil {
			groupIndex[key] = make(map[groupKey]int)
		}
		idx, ok := groupIndex[key][gk]
		if !ok {
			cells[key] = append(cells[key], CellGroup{
				Instructor: gk.instructor,
				Location:   gk.location,
			})
			idx = len(cells[key]) - 1
			groupIndex[key][gk] = idx
		}

		cells[key][idx].Entries = append(cells[key][idx].Entries, buildEntry(b, resolved[b.ID]))
	}

	return cells
}

func buildEntry(b *domain.Booking, session domain.ResolvedSession) CellEntry {
	student := domain.Student{Name: b.StudentName}

	packageCode := ""
	if b.PackageCode != nil {
		packageCode = *b.PackageCode
	}

	return CellEntry{
		BookingID:    b.ID,
		StudentID:    b.StudentID,
		StudentName:  student.ShortName(),
		PackageCode:  packageCode,
		SessionLabel: session.CompactLabel(),
		MaterialCode: session.MaterialCode,
		Status:       string(b.Status),
	}
}

// monthHours renders the visible hour rows of the grid
func monthHours() []string {
	hours := make([]string, 0, domain.TimelineEndHour-domain.TimelineStartHour+1)
	for h := domain.TimelineStartHour; h <= domain.TimelineEndHour; h++ {
		hours = append(hours, fmt.Sprintf("%02d:00", h))
	}
	return hours
}
