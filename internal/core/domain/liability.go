package domain

import "github.com/shopspring/decimal"

// LiabilityStatus classifies a year in a liability breakdown.
type LiabilityStatus string

const (
	StatusOwedPreviousYear      LiabilityStatus = "owedPreviousYear"
	StatusCurrentYearNew        LiabilityStatus = "currentYearNew"
	StatusCurrentYearRegistered LiabilityStatus = "currentYearRegistered"
	StatusSettled               LiabilityStatus = "settled"
)

// LiabilityBreakdownEntry is one year of a cumulative liability. Derived, never persisted.
type LiabilityBreakdownEntry struct {
	Year      int             `json:"year"`
	AmountDue decimal.Decimal `json:"outstanding"`
	Status    LiabilityStatus `json:"status"`
	// RecordID names the earlier record an owed amount is read from.
	// Empty for backfilled years and the current year.
	RecordID string `json:"-"`
}

// CumulativeLiabilityResult is what a registrant owes across years at a point in time.
type CumulativeLiabilityResult struct {
	CumulativeOutstanding   decimal.Decimal           `json:"cumulativeOutstanding"`
	CurrentYearTax          decimal.Decimal           `json:"currentYearTax"`
	TotalTaxDue             decimal.Decimal           `json:"totalTaxDue"`
	YearBreakdown           []LiabilityBreakdownEntry `json:"yearBreakdown"`
	HasExistingRegistration bool                      `json:"hasExistingRegistration"`
	// CumulativeLookup is false when the registrant could not be identified
	// and only the current year was assessed.
	CumulativeLookup bool `json:"cumulativeLookup"`
}

// IsNewUser mirrors HasExistingRegistration for callers that ask the other way round.
func (r CumulativeLiabilityResult) IsNewUser() bool {
	return !r.HasExistingRegistration
}

// CarriedRecordIDs lists the earlier records whose outstanding amounts are
// part of CumulativeOutstanding, in year order. A filing based on this result
// takes those amounts over.
func (r CumulativeLiabilityResult) CarriedRecordIDs() []string {
	var ids []string
	for _, entry := range r.YearBreakdown {
		if entry.Status == StatusOwedPreviousYear && entry.RecordID != "" {
			ids = append(ids, entry.RecordID)
		}
	}
	return ids
}
