package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStudentShortName(t *testing.T) {
	tests := []struct {
		name    string
		student string
		want    string
	}{
		{name: "single word", student: "Budi", want: "Budi"},
		{name: "two words", student: "Budi Santoso", want: "Budi Santoso"},
		{name: "long name truncated", student: "Budi Santoso Wijaya Kusuma", want: "Budi Santoso"},
		{name: "extra whitespace collapsed", student: "  Budi   Santoso  ", want: "Budi Santoso"},
		{name: "empty name", student: "", want: "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Student{Name: tt.student}
			assert.Equal(t, tt.want, s.ShortName())
		})
	}
}

func TestStudentWhatsAppPhone(t *testing.T) {
	phone := func(s string) *string { return &s }

	tests := []struct {
		name  string
		phone *string
		want  string
	}{
		{name: "nil phone", phone: nil, want: ""},
		{name: "empty phone", phone: phone(""), want: ""},
		{name: "leading zero replaced with country code", phone: phone("081234567890"), want: "6281234567890"},
		{name: "already international", phone: phone("6281234567890"), want: "6281234567890"},
		{name: "formatting stripped", phone: phone("0812-3456-7890"), want: "6281234567890"},
		{name: "plus prefix stripped", phone: phone("+62 812 3456 7890"), want: "6281234567890"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Student{Phone: tt.phone}
			assert.Equal(t, tt.want, s.WhatsAppPhone())
		})
	}
}

func TestParseGraduationStatus(t *testing.T) {
	got, ok := ParseGraduationStatus("Lulus")
	assert.True(t, ok)
	assert.Equal(t, GraduationDone, got)

	_, ok = ParseGraduationStatus("lulus")
	assert.False(t, ok)
}

func TestParseBookingStatus(t *testing.T) {
	got, ok := ParseBookingStatus("cancelled")
	assert.True(t, ok)
	assert.Equal(t, StatusCancelled, got)

	_, ok = ParseBookingStatus("unknown")
	assert.False(t, ok)
}

func TestBookingLabels(t *testing.T) {
	nickname := "Kak Sari"
	location := "Cabang Depok"

	b := &Booking{InstructorNickname: &nickname, LocationName: &location}
	assert.Equal(t, "Kak Sari", b.InstructorLabel())
	assert.Equal(t, "Cabang Depok", b.LocationLabel())

	empty := &Booking{}
	assert.Equal(t, UndefinedGroupLabel, empty.InstructorLabel())
	assert.Equal(t, UndefinedGroupLabel, empty.LocationLabel())
	assert.Equal(t, FallbackLabel, empty.TopicOrFallback())
}
