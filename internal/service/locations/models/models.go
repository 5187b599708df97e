package models

import (
	"github.com/bimbelceria/BC-AdminService/internal/domain"
)

// CreateLocationRequest registers a new class location
type CreateLocationRequest struct {
	Name     string `json:"name"`
	Duration int    `json:"duration"` // class length in minutes
}

// ToDomain converts the request into a domain location
func (r *CreateLocationRequest) ToDomain() *domain.Location {
	return &domain.Location{
		Name:     r.Name,
		Duration: r.Duration,
	}
}

// LocationResponse is one class location
type LocationResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Duration int    `json:"duration"`
}

// LocationListResponse is the list of class locations
type LocationListResponse struct {
	Locations []LocationResponse `json:"locations"`
}

// FromDomainLocation converts a domain location into a DTO
func FromDomainLocation(l *domain.Location) *LocationResponse {
	if l == nil {
		return nil
	}
	return &LocationResponse{
		ID:       l.ID,
		Name:     l.Name,
		Duration: l.Duration,
	}
}

// FromDomainLocationList converts the location list into a DTO
func FromDomainLocationList(locations []*domain.Location) *LocationListResponse {
	resp := &LocationListResponse{
		Locations: make([]LocationResponse, 0, len(locations)),
	}
	for _, l := range locations {
		if locationResp := FromDomainLocation(l); locationResp != nil {
			resp.Locations = append(resp.Locations, *locationResp)
		}
	}
	return resp
}
