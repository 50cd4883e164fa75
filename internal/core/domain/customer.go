package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer represents a non-Samprox customer. CustomerCode is assigned by the
// allocator at creation time and is immutable afterwards; any client-supplied
// value is discarded.
type Customer struct {
	CustomerID      string          `json:"customerID"` // Primary Key (UUID)
	CustomerCode    string          `json:"customerCode"`
	Name            string          `json:"name"`
	AreaCode        string          `json:"areaCode"`
	City            string          `json:"city"`
	District        string          `json:"district"`
	Province        string          `json:"province"`
	CompanyID       string          `json:"companyID"`
	ManagedByUserID string          `json:"managedByUserID"`
	CreditLimit     decimal.Decimal `json:"creditLimit"`
	IsActive        bool            `json:"isActive"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
