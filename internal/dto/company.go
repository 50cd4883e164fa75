package dto

import (
	"time"

	"github.com/samprox/erp_backend/internal/core/domain"
)

// CreateCompanyRequest defines the data needed to register a group company.
// The code prefix is fixed at onboarding; changing it later would silently
// start a new namespace of customer codes.
type CreateCompanyRequest struct {
	Key        string `json:"key" binding:"required,max=64"`
	Name       string `json:"name" binding:"required,max=255"`
	CodePrefix string `json:"codePrefix" binding:"codeprefix"`
}

// CompanyResponse defines the data returned for a company.
type CompanyResponse struct {
	CompanyID     string    `json:"companyID"`
	Key           string    `json:"key"`
	Name          string    `json:"name"`
	CodePrefix    string    `json:"codePrefix"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToCompanyResponse converts a domain.Company to CompanyResponse DTO
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID:     c.CompanyID,
		Key:           c.Key,
		Name:          c.Name,
		CodePrefix:    c.CodePrefix,
		CreatedAt:     c.CreatedAt,
		CreatedBy:     c.CreatedBy,
		LastUpdatedAt: c.LastUpdatedAt,
		LastUpdatedBy: c.LastUpdatedBy,
	}
}

// ToListCompanyResponse converts a slice of domain.Company to response DTOs
func ToListCompanyResponse(companies []domain.Company) []CompanyResponse {
	res := make([]CompanyResponse, len(companies))
	for i, c := range companies {
		res[i] = ToCompanyResponse(&c)
	}
	return res
}
