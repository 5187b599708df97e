package models

import (
	"github.com/bimbelceria/BC-AdminService/internal/domain"
)

// CreateMaterialRequest registers a new teaching material
type CreateMaterialRequest struct {
	Name         string `json:"name"`
	Code         string `json:"code"`
	SessionCount int    `json:"sessionCount"`
}

// ToDomain converts the request into a domain material
func (r *CreateMaterialRequest) ToDomain() *domain.Material {
	return &domain.Material{
		Name:         r.Name,
		Code:         r.Code,
		SessionCount: r.SessionCount,
	}
}

// MaterialResponse is one teaching material
type MaterialResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Code         string `json:"code"`
	SessionCount int    `json:"sessionCount"`
}

// MaterialListResponse is the material catalog
type MaterialListResponse struct {
	Materials []MaterialResponse `json:"materials"`
}

// FromDomainMaterial converts a domain material into a DTO
func FromDomainMaterial(m *domain.Material) *MaterialResponse {
	if m == nil {
		return nil
	}
	return &MaterialResponse{
		ID:           m.ID,
		Name:         m.Name,
		Code:         m.Code,
		SessionCount: m.SessionCount,
	}
}

// FromDomainMaterialList converts the catalog into a DTO
func FromDomainMaterialList(materials []*domain.Material) *MaterialListResponse {
	resp := &MaterialListResponse{
		Materials: make([]MaterialResponse, 0, len(materials)),
	}
	for _, m := range materials {
		if materialResp := FromDomainMaterial(m); materialResp != nil {
			resp.Materials = append(resp.Materials, *materialResp)
		}
	}
	return resp
}
