package models

// Company maps the companies table.
type Company struct {
	CompanyID  string `db:"company_id"`
	Key        string `db:"key"`
	Name       string `db:"name"`
	CodePrefix string `db:"code_prefix"` // May be empty (default Samprox company)
	AuditFields
}
