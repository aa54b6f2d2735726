package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/temple_admin_app/internal/apperrors"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// YearRange bounds the years a temple may configure a tax policy for.
type YearRange struct {
	Min int
	Max int
}

// DefaultYearRange is used when configuration does not override it.
var DefaultYearRange = YearRange{Min: 2020, Max: 2050}

// Contains reports whether year lies within the range, inclusive.
func (r YearRange) Contains(year int) bool {
	return year >= r.Min && year <= r.Max
}

// TaxYearPolicy is the temple-wide tax configuration for a single year.
// There is at most one policy per (temple, year).
type TaxYearPolicy struct {
	PolicyID             string          `json:"policyID"`
	TempleID             string          `json:"templeID" validate:"required"`
	Year                 int             `json:"year"`
	TaxAmount            decimal.Decimal `json:"taxAmount" validate:"decgt=0"`
	IsActive             bool            `json:"isActive"`
	IncludePreviousYears bool            `json:"includePreviousYears"` // New registrants are backfilled for this year
	Description          string          `json:"description" validate:"max=500"`
	AuditFields
}

// Validate checks the policy against the struct rules and the configured year range.
func (p TaxYearPolicy) Validate(years YearRange) error {
	if !years.Contains(p.Year) {
		return apperrors.NewValidationFailedError(
			fmt.Sprintf("year %d is outside the allowed range %d-%d", p.Year, years.Min, years.Max))
	}
	if err := validate.Struct(p); err != nil {
		return toValidationError(err)
	}
	return nil
}

// toValidationError flattens validator errors into a single ErrValidation.
func toValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.NewAppError(400, "invalid input", fmt.Errorf("%w: %v", apperrors.ErrValidation, err))
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s failed on '%s=%s'", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
		}
	}
	return apperrors.NewValidationFailedError(strings.Join(msgs, "; "))
}
