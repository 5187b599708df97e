package models

import (
	"github.com/bimbelceria/BC-AdminService/internal/domain"
)

// CreateInstructorRequest registers a new instructor
type CreateInstructorRequest struct {
	Name     string  `json:"name"`
	Nickname string  `json:"nickname"`
	Phone    *string `json:"phone,omitempty"`
}

// ToDomain converts the request into a domain instructor
func (r *CreateInstructorRequest) ToDomain() *domain.Instructor {
	return &domain.Instructor{
		Name:     r.Name,
		Nickname: r.Nickname,
		Phone:    r.Phone,
	}
}

// InstructorResponse is one instructor
type InstructorResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Nickname string  `json:"nickname"`
	Phone    *string `json:"phone,omitempty"`
}

// InstructorListResponse is the instructor roster
type InstructorListResponse struct {
	Instructors []InstructorResponse `json:"instructors"`
}

// FromDomainInstructor converts a domain instructor into a DTO
func FromDomainInstructor(i *domain.Instructor) *InstructorResponse {
	if i == nil {
		return nil
	}
	return &InstructorResponse{
		ID:       i.ID,
		Name:     i.Name,
		Nickname: i.Nickname,
		Phone:    i.Phone,
	}
}

// FromDomainInstructorList converts the roster into a DTO
func FromDomainInstructorList(instructors []*domain.Instructor) *InstructorListResponse {
	resp := &InstructorListResponse{
		Instructors: make([]InstructorResponse, 0, len(instructors)),
	}
	for _, i := range instructors {
		if instructorResp := FromDomainInstructor(i); instructorResp != nil {
			resp.Instructors = append(resp.Instructors, *instructorResp)
		}
	}
	return resp
}
