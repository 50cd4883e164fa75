package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer maps the customers table. customer_code carries a unique index; the
// allocator relies on it to turn lost creation races into retries.
type Customer struct {
	CustomerID      string          `db:"customer_id"`
	CustomerCode    string          `db:"customer_code"`
	Name            string          `db:"name"`
	AreaCode        string          `db:"area_code"`
	City            string          `db:"city"`
	District        string          `db:"district"`
	Province        string          `db:"province"`
	CompanyID       string          `db:"company_id"`
	ManagedByUserID string          `db:"managed_by_user_id"`
	CreditLimit     decimal.Decimal `db:"credit_limit"`
	IsActive        bool            `db:"is_active"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
