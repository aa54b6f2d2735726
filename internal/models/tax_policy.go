package models

import "github.com/shopspring/decimal"

// TaxYearPolicy is the tax_year_policies row for one (temple, year).
type TaxYearPolicy struct {
	PolicyID             string          `db:"policy_id"`
	TempleID             string          `db:"temple_id"`
	Year                 int             `db:"year"`
	TaxAmount            decimal.Decimal `db:"tax_amount"`
	IsActive             bool            `db:"is_active"`
	IncludePreviousYears bool            `db:"include_previous_years"`
	Description          string          `db:"description"`
	AuditFields
}
