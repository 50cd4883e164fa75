package domain

import "time"

// Role identifies what a user is allowed to do in the ERP.
type Role string

const (
	RoleAdmin          Role = "admin"
	RoleSales          Role = "sales"
	RoleOutsideManager Role = "outside_manager"
	RoleFinanceManager Role = "finance_manager"
)

// User represents a user of the application in the domain.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	PasswordHash string `json:"-"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
