package domain

// SessionSlot is one unit of a package's expanded curriculum sequence,
// corresponding to one class meeting
type SessionSlot struct {
	MaterialName  string
	MaterialCode  string
	Position      int // 1-based position within the material
	MaterialTotal int // session_count of the material
}

// ExpandCurriculum turns a package's curriculum rows into the flat ordered
// sequence of session slots: each material is repeated session_count times.
// Entries must arrive ordered by sort_order ascending; ties keep the
// store-returned order. A missing or zero session_count counts as one
// session. An empty curriculum yields an empty sequence.
func ExpandCurriculum(entries []CurriculumEntry) []SessionSlot {
	slots := make([]SessionSlot, 0, len(entries))
	for _, entry := range entries {
		total := entry.Material.SessionCount
		if total <= 0 {
			total = 1
		}
		for i := 1; i <= total; i++ {
			slots = append(slots, SessionSlot{
				MaterialName:  entry.Material.Name,
				MaterialCode:  entry.Material.Code,
				Position:      i,
				MaterialTotal: total,
			})
		}
	}
	return slots
}

// CurriculumLength returns the raw sum of session_count over the curriculum
// materials, the value packages.total_sessions must be kept equal to. Unlike
// ExpandCurriculum it does not promote zero counts to one: the stored total
// mirrors the materials exactly.
func CurriculumLength(entries []CurriculumEntry) int {
	total := 0
	for _, entry := range entries {
		if entry.Material.SessionCount > 0 {
			total += entry.Material.SessionCount
		}
	}
	return total
}
