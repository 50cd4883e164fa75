package domain

// CodeSequence is the persisted per (company, 2-digit year) counter behind
// customer code allocation. LastNumber only ever grows; issued values are never
// reused even when the customer record is later deleted.
type CodeSequence struct {
	CompanyID  string `json:"companyID"`
	YearYY     string `json:"yearYY"` // Exactly two digits, e.g. "26"
	LastNumber int64  `json:"lastNumber"`
}
