package domain

// Company represents one of the group companies customers can belong to.
// CodePrefix is prepended to every customer code issued for the company and is
// stable for the lifetime of the record; the default Samprox company carries an
// empty prefix, so its codes are bare {YY}{NNNN}.
type Company struct {
	CompanyID  string `json:"companyID"` // Primary Key (UUID)
	Key        string `json:"key"`       // Stable short key, e.g. "exsol-engineering"
	Name       string `json:"name"`
	CodePrefix string `json:"codePrefix"` // 0-4 printable characters, may be empty
	AuditFields
}
