package models

import "github.com/shopspring/decimal"

// RegistrantYearRecord is the tax_registrations row, one per (temple, mobile, year).
type RegistrantYearRecord struct {
	RecordID          string          `db:"record_id"`
	TempleID          string          `db:"temple_id"`
	Mobile            *string         `db:"mobile"` // Nullable
	RegistrantName    string          `db:"registrant_name"`
	Year              int             `db:"year"`
	TaxAmount         decimal.Decimal `db:"tax_amount"`
	AmountPaid        decimal.Decimal `db:"amount_paid"`
	OutstandingAmount decimal.Decimal `db:"outstanding_amount"`
	SupersededBy      *string         `db:"superseded_by"` // Nullable
	AuditFields
}
