package models

// CodeSequence maps the customer_code_sequences table. The unique constraint on
// (company_id, year_yy) is what makes concurrent allocation safe.
type CodeSequence struct {
	SequenceID int64  `db:"sequence_id"`
	CompanyID  string `db:"company_id"`
	YearYY     string `db:"year_yy"`
	LastNumber int64  `db:"last_number"`
}
