package dto

import (
	"time"

	"github.com/samprox/erp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCustomerRequest defines the data needed to create a customer.
// CustomerCode is accepted for backwards compatibility with older clients but
// is always discarded; the allocator assigns the real code.
type CreateCustomerRequest struct {
	Name            string           `json:"name" binding:"required,max=255"`
	AreaCode        string           `json:"areaCode" binding:"max=32"`
	City            string           `json:"city" binding:"max=128"`
	District        string           `json:"district" binding:"max=128"`
	Province        string           `json:"province" binding:"max=128"`
	CompanyID       string           `json:"companyID" binding:"required"`
	ManagedByUserID string           `json:"managedByUserID"`
	CreditLimit     *decimal.Decimal `json:"creditLimit"`
	CustomerCode    string           `json:"customerCode"` // Ignored on create
}

// UpdateCustomerRequest defines the fields allowed to change on a customer.
// Pointers differentiate omitted fields from zero values. There is no
// CustomerCode field: the code is immutable.
type UpdateCustomerRequest struct {
	Name            *string          `json:"name"`
	AreaCode        *string          `json:"areaCode"`
	City            *string          `json:"city"`
	District        *string          `json:"district"`
	Province        *string          `json:"province"`
	CompanyID       *string          `json:"companyID"`
	ManagedByUserID *string          `json:"managedByUserID"`
	CreditLimit     *decimal.Decimal `json:"creditLimit"`
	IsActive        *bool            `json:"isActive"`
}

// ListCustomersParams defines query parameters for listing customers.
type ListCustomersParams struct {
	Query           string `form:"q"`
	CompanyID       string `form:"companyID"`
	ManagedByUserID string `form:"managedBy"`
	Limit           int    `form:"limit,default=20"`
	NextToken       string `form:"nextToken"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	CustomerID      string          `json:"customerID"`
	CustomerCode    string          `json:"customerCode"`
	Name            string          `json:"name"`
	AreaCode        string          `json:"areaCode,omitempty"`
	City            string          `json:"city,omitempty"`
	District        string          `json:"district,omitempty"`
	Province        string          `json:"province,omitempty"`
	CompanyID       string          `json:"companyID"`
	ManagedByUserID string          `json:"managedByUserID"`
	CreditLimit     decimal.Decimal `json:"creditLimit"`
	IsActive        bool            `json:"isActive"`
	CreatedAt       time.Time       `json:"createdAt"`
	LastUpdatedAt   time.Time       `json:"lastUpdatedAt"`
}

// ListCustomersResponse wraps a page of customers with the follow-up cursor.
type ListCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
	NextToken string             `json:"nextToken,omitempty"`
}

// NextCodeResponse carries a non-reserving preview of the next customer code.
type NextCodeResponse struct {
	NextCode string `json:"nextCode"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse DTO
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:      c.CustomerID,
		CustomerCode:    c.CustomerCode,
		Name:            c.Name,
		AreaCode:        c.AreaCode,
		City:            c.City,
		District:        c.District,
		Province:        c.Province,
		CompanyID:       c.CompanyID,
		ManagedByUserID: c.ManagedByUserID,
		CreditLimit:     c.CreditLimit,
		IsActive:        c.IsActive,
		CreatedAt:       c.CreatedAt,
		LastUpdatedAt:   c.LastUpdatedAt,
	}
}

// ToListCustomersResponse converts a page of domain customers plus cursor
func ToListCustomersResponse(customers []domain.Customer, nextToken string) ListCustomersResponse {
	res := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		res[i] = ToCustomerResponse(&c)
	}
	return ListCustomersResponse{Customers: res, NextToken: nextToken}
}
