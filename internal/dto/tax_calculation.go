package dto

import (
	"github.com/SscSPs/temple_admin_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CumulativeLiabilityQuery holds the query parameters of a cumulative lookup.
type CumulativeLiabilityQuery struct {
	CurrentYear int    `form:"currentYear" binding:"omitempty,gt=0"`
	AmountPaid  string `form:"amountPaid"` // Decimal string, empty means nothing paid yet
}

// BreakdownEntryResponse is one year of the liability breakdown.
type BreakdownEntryResponse struct {
	Year        int             `json:"year"`
	Outstanding decimal.Decimal `json:"outstanding"`
	Status      string          `json:"status"`
}

// CumulativeLiabilityResponse is the calculation result together with the reconciled payment.
type CumulativeLiabilityResponse struct {
	CumulativeOutstanding   decimal.Decimal          `json:"cumulativeOutstanding"`
	CurrentYearTax          decimal.Decimal          `json:"currentYearTax"`
	TotalTaxDue             decimal.Decimal          `json:"totalTaxDue"`
	YearBreakdown           []BreakdownEntryResponse `json:"yearBreakdown"`
	HasExistingRegistration bool                     `json:"hasExistingRegistration"`
	IsNewUser               bool                     `json:"isNewUser"`
	CumulativeLookup        bool                     `json:"cumulativeLookup"`
	AmountPaid              decimal.Decimal          `json:"amountPaid"`
	OutstandingAmount       decimal.Decimal          `json:"outstandingAmount"`
}

// ToCumulativeLiabilityResponse converts a calculation result and reconciled payment to the response DTO.
func ToCumulativeLiabilityResponse(r *domain.CumulativeLiabilityResult, amountPaid, outstanding decimal.Decimal) CumulativeLiabilityResponse {
	breakdown := make([]BreakdownEntryResponse, len(r.YearBreakdown))
	for i, e := range r.YearBreakdown {
		breakdown[i] = BreakdownEntryResponse{
			Year:        e.Year,
			Outstanding: e.AmountDue,
			Status:      string(e.Status),
		}
	}
	return CumulativeLiabilityResponse{
		CumulativeOutstanding:   r.CumulativeOutstanding,
		CurrentYearTax:          r.CurrentYearTax,
		TotalTaxDue:             r.TotalTaxDue,
		YearBreakdown:           breakdown,
		HasExistingRegistration: r.HasExistingRegistration,
		IsNewUser:               r.IsNewUser(),
		CumulativeLookup:        r.CumulativeLookup,
		AmountPaid:              amountPaid,
		OutstandingAmount:       outstanding,
	}
}
