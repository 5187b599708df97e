package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func entry(name, code string, count int) CurriculumEntry {
	return CurriculumEntry{
		Material: Material{Name: name, Code: code, SessionCount: count},
	}
}

func TestExpandCurriculum(t *testing.T) {
	tests := []struct {
		name    string
		entries []CurriculumEntry
		want    []SessionSlot
	}{
		{
			name:    "empty curriculum",
			entries: nil,
			want:    []SessionSlot{},
		},
		{
			name: "single material repeated session_count times",
			entries: []CurriculumEntry{
				entry("Aljabar", "ALJ", 3),
			},
			want: []SessionSlot{
				{MaterialName: "Aljabar", MaterialCode: "ALJ", Position: 1, MaterialTotal: 3},
				{MaterialName: "Aljabar", MaterialCode: "ALJ", Position: 2, MaterialTotal: 3},
				{MaterialName: "Aljabar", MaterialCode: "ALJ", Position: 3, MaterialTotal: 3},
			},
		},
		{
			name: "materials keep curriculum order",
			entries: []CurriculumEntry{
				entry("Aljabar", "ALJ", 2),
				entry("Geometri", "GEO", 1),
			},
			want: []SessionSlot{
				{MaterialName: "Aljabar", MaterialCode: "ALJ", Position: 1, MaterialTotal: 2},
				{MaterialName: "Aljabar", MaterialCode: "ALJ", Position: 2, MaterialTotal: 2},
				{MaterialName: "Geometri", MaterialCode: "GEO", Position: 1, MaterialTotal: 1},
			},
		},
		{
			name: "zero session_count counts as one",
			entries: []CurriculumEntry{
				entry("Pretest", "PRE", 0),
				entry("Aljabar", "ALJ", 2),
			},
			want: []SessionSlot{
				{MaterialName: "Pretest", MaterialCode: "PRE", Position: 1, MaterialTotal: 1},
				{MaterialName: "Aljabar", MaterialCode: "ALJ", Position: 1, MaterialTotal: 2},
				{MaterialName: "Aljabar", MaterialCode: "ALJ", Position: 2, MaterialTotal: 2},
			},
		},
		{
			name: "negative session_count counts as one",
			entries: []CurriculumEntry{
				entry("Pretest", "PRE", -3),
			},
			want: []SessionSlot{
				{MaterialName: "Pretest", MaterialCode: "PRE", Position: 1, MaterialTotal: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpandCurriculum(tt.entries)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpandCurriculumIsRepeatable(t *testing.T) {
	entries := []CurriculumEntry{
		entry("Aljabar", "ALJ", 2),
		entry("Geometri", "GEO", 1),
	}

	first := ExpandCurriculum(entries)
	second := ExpandCurriculum(entries)
	assert.Equal(t, first, second)
	assert.Equal(t, "Aljabar", entries[0].Material.Name)
	assert.Equal(t, 2, entries[0].Material.SessionCount)
}

func TestCurriculumLength(t *testing.T) {
	tests := []struct {
		name    string
		entries []CurriculumEntry
		want    int
	}{
		{name: "empty", entries: nil, want: 0},
		{
			name: "sums session counts",
			entries: []CurriculumEntry{
				entry("Aljabar", "ALJ", 2),
				entry("Geometri", "GEO", 4),
			},
			want: 6,
		},
		{
			// Unlike ExpandCurriculum, the stored total does not promote
			// zero counts to one
			name: "zero counts are not promoted",
			entries: []CurriculumEntry{
				entry("Pretest", "PRE", 0),
				entry("Aljabar", "ALJ", 2),
			},
			want: 2,
		},
		{
			name: "negative counts are ignored",
			entries: []CurriculumEntry{
				entry("Pretest", "PRE", -1),
				entry("Aljabar", "ALJ", 3),
			},
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CurriculumLength(tt.entries))
		})
	}
}
