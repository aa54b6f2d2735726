package dto

import (
	"time"

	"github.com/SscSPs/temple_admin_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpsertTaxPolicyRequest defines the data needed to create or update the policy of one year.
// The year itself comes from the path.
type UpsertTaxPolicyRequest struct {
	TaxAmount            decimal.Decimal `json:"taxAmount" binding:"decgt=0"`
	Description          string          `json:"description" binding:"max=500"`
	IsActive             *bool           `json:"isActive"` // Defaults to true when omitted
	IncludePreviousYears bool            `json:"includePreviousYears"`
}

// BulkToggleRequest flips includePreviousYears on every policy year of the temple.
type BulkToggleRequest struct {
	IncludePreviousYears *bool `json:"includePreviousYears" binding:"required"`
}

// BulkToggleResponse reports how many policy rows the toggle touched.
type BulkToggleResponse struct {
	Updated int64 `json:"updated"`
}

// TaxPolicyResponse defines the data returned for a tax year policy.
type TaxPolicyResponse struct {
	PolicyID             string          `json:"id"`
	Year                 int             `json:"year"`
	TaxAmount            decimal.Decimal `json:"tax_amount"`
	IsActive             bool            `json:"is_active"`
	IncludePreviousYears bool            `json:"include_previous_years"`
	Description          string          `json:"description"`
	CreatedAt            time.Time       `json:"created_at"`
	CreatedBy            string          `json:"created_by"`
	LastUpdatedAt        time.Time       `json:"updated_at"`
	LastUpdatedBy        string          `json:"updated_by"`
}

// ToTaxPolicyResponse converts a domain.TaxYearPolicy to TaxPolicyResponse DTO.
func ToTaxPolicyResponse(p *domain.TaxYearPolicy) TaxPolicyResponse {
	return TaxPolicyResponse{
		PolicyID:             p.PolicyID,
		Year:                 p.Year,
		TaxAmount:            p.TaxAmount,
		IsActive:             p.IsActive,
		IncludePreviousYears: p.IncludePreviousYears,
		Description:          p.Description,
		CreatedAt:            p.CreatedAt,
		CreatedBy:            p.CreatedBy,
		LastUpdatedAt:        p.LastUpdatedAt,
		LastUpdatedBy:        p.LastUpdatedBy,
	}
}

// ToListTaxPolicyResponse converts a slice of domain.TaxYearPolicy to a slice of TaxPolicyResponse DTOs
func ToListTaxPolicyResponse(policies []domain.TaxYearPolicy) []TaxPolicyResponse {
	res := make([]TaxPolicyResponse, len(policies))
	for i := range policies {
		res[i] = ToTaxPolicyResponse(&policies[i])
	}
	return res
}
