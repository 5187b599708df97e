package models

import (
	"github.com/bimbelceria/BC-AdminService/internal/domain"
)

// Request models

// CreatePackageRequest registers a new tutoring package
type CreatePackageRequest struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// ToDomain converts the request into a domain package. The session total
// starts at zero and is recomputed whenever the curriculum changes.
func (r *CreatePackageRequest) ToDomain() *domain.Package {
	return &domain.Package{
		Name: r.Name,
		Code: r.Code,
	}
}

// AddCurriculumEntryRequest appends a material to a package curriculum
type AddCurriculumEntryRequest struct {
	MaterialID int64 `json:"materialId"`
}

// Response models

// PackageResponse is one tutoring package
type PackageResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Code          string `json:"code"`
	TotalSessions int    `json:"totalSessions"`
}

// PackageListResponse is the package catalog
type PackageListResponse struct {
	Packages []PackageResponse `json:"packages"`
}

// CurriculumEntryResponse is one material in the teaching order
type CurriculumEntryResponse struct {
	ID           int64  `json:"id"`
	SortOrder    int    `json:"sortOrder"`
	MaterialID   int64  `json:"materialId"`
	MaterialName string `json:"materialName"`
	MaterialCode string `json:"materialCode"`
	SessionCount int    `json:"sessionCount"`
}

// CurriculumResponse is a package with its full teaching order
type CurriculumResponse struct {
	Package PackageResponse           `json:"package"`
	Entries []CurriculumEntryResponse `json:"entries"`
}

// Conversion

// FromDomainPackage converts a domain package into a DTO
func FromDomainPackage(p *domain.Package) *PackageResponse {
	if p == nil {
		return nil
	}
	return &PackageResponse{
		ID:            p.ID,
		Name:          p.Name,
		Code:          p.Code,
		TotalSessions: p.TotalSessions,
	}
}

// FromDomainPackageList converts the catalog into a DTO
func FromDomainPackageList(list []*domain.Package) *PackageListResponse {
	resp := &PackageListResponse{
		Packages: make([]PackageResponse, 0, len(list)),
	}
	for _, p := range list {
		if packageResp := FromDomainPackage(p); packageResp != nil {
			resp.Packages = append(resp.Packages, *packageResp)
		}
	}
	return resp
}

// FromDomainCurriculum converts a package and its entries into a DTO
func FromDomainCurriculum(p *domain.Package, entries []*domain.CurriculumEntry) *CurriculumResponse {
	resp := &CurriculumResponse{
		Entries: make([]CurriculumEntryResponse, 0, len(entries)),
	}
	if packageResp := FromDomainPackage(p); packageResp != nil {
		resp.Package = *packageResp
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, CurriculumEntryResponse{
			ID:           e.ID,
			SortOrder:    e.SortOrder,
			MaterialID:   e.Material.ID,
			MaterialName: e.Material.Name,
			MaterialCode: e.Material.Code,
			SessionCount: e.Material.SessionCount,
		})
	}
	return resp
}
