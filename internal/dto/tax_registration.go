package dto

import (
	"time"

	"github.com/SscSPs/temple_admin_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTaxRegistrationRequest defines the data a clerk submits for one registrant and year.
type CreateTaxRegistrationRequest struct {
	Mobile         string           `json:"mobile"` // Optional, normalized server side
	RegistrantName string           `json:"registrantName" binding:"max=200"`
	Year           int              `json:"year" binding:"required,gt=0"`
	AmountPaid     decimal.Decimal  `json:"amountPaid" binding:"decgte=0"`
	TaxAmount      *decimal.Decimal `json:"taxAmount" binding:"omitempty,decgte=0"` // Manual override of the current year's tax
}

// TaxRegistrationResponse defines the data returned for a persisted registration snapshot.
type TaxRegistrationResponse struct {
	RecordID          string          `json:"id"`
	Mobile            *string         `json:"mobile"`
	RegistrantName    string          `json:"registrantName"`
	Year              int             `json:"year"`
	TaxAmount         decimal.Decimal `json:"taxAmount"`
	AmountPaid        decimal.Decimal `json:"amountPaid"`
	OutstandingAmount decimal.Decimal `json:"outstandingAmount"`
	SupersededBy      *string         `json:"supersededBy,omitempty"` // Later record carrying this outstanding amount
	CreatedAt         time.Time       `json:"createdAt"`
	CreatedBy         string          `json:"createdBy"`
}

// CreateTaxRegistrationResponse is the saved snapshot plus the calculation it was assessed from.
type CreateTaxRegistrationResponse struct {
	Registration TaxRegistrationResponse     `json:"registration"`
	Calculation  CumulativeLiabilityResponse `json:"calculation"`
}

// ListTaxRegistrationsParams defines parameters for listing registrations.
type ListTaxRegistrationsParams struct {
	Mobile    string `form:"mobile"`
	Limit     int    `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken string `form:"nextToken"`
}

// ListTaxRegistrationsResponse is one page of registrations.
type ListTaxRegistrationsResponse struct {
	Registrations []TaxRegistrationResponse `json:"registrations"`
	NextToken     *string                   `json:"nextToken,omitempty"`
}

// ToTaxRegistrationResponse converts a domain.RegistrantYearRecord to TaxRegistrationResponse DTO.
func ToTaxRegistrationResponse(r *domain.RegistrantYearRecord) TaxRegistrationResponse {
	return TaxRegistrationResponse{
		RecordID:          r.RecordID,
		Mobile:            r.Mobile,
		RegistrantName:    r.RegistrantName,
		Year:              r.Year,
		TaxAmount:         r.TaxAmount,
		AmountPaid:        r.AmountPaid,
		OutstandingAmount: r.OutstandingAmount,
		SupersededBy:      r.SupersededBy,
		CreatedAt:         r.CreatedAt,
		CreatedBy:         r.CreatedBy,
	}
}

// ToTaxRegistrationResponses converts a slice of domain.RegistrantYearRecord to []TaxRegistrationResponse.
func ToTaxRegistrationResponses(records []domain.RegistrantYearRecord) []TaxRegistrationResponse {
	res := make([]TaxRegistrationResponse, len(records))
	for i := range records {
		res[i] = ToTaxRegistrationResponse(&records[i])
	}
	return res
}
