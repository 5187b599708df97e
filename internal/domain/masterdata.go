package domain

// Instructor is a teacher. The nickname is the compact label used all over
// the timeline grid.
type Instructor struct {
	ID       int64
	Name     string
	Nickname string
	Phone    *string
}

// Location is a teaching venue. Duration is the advisory default class
// length in minutes; it never blocks overlapping bookings.
type Location struct {
	ID       int64
	Name     string
	Duration int
}

// Material is a teachable topic spanning one or more class sessions
type Material struct {
	ID           int64
	Name         string
	Code         string
	SessionCount int
}

// Package is a purchased bundle of sessions. TotalSessions is denormalized:
// it must always equal the sum of session_count over the curriculum materials
// and is recomputed inside the same transaction as any curriculum change.
type Package struct {
	ID            int64
	Name          string
	Code          string
	TotalSessions int
}

// CurriculumEntry links a material into a package's ordered sequence
type CurriculumEntry struct {
	ID        int64
	PackageID int64
	SortOrder int
	Material  Material
}
