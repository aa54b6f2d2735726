package domain

import (
	"strings"
	"unicode"

	"github.com/SscSPs/temple_admin_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// MobileLength is the number of digits in a normalized mobile number.
const MobileLength = 10

// RegistrantYearRecord is the tax registration a person filed for one year.
// OutstandingAmount is a snapshot taken at save time and is not kept in sync
// with later policy changes. When a later filing carries the unpaid remainder
// forward, this record is marked superseded instead of being rewritten.
type RegistrantYearRecord struct {
	RecordID          string          `json:"recordID"`
	TempleID          string          `json:"templeID" validate:"required"`
	Mobile            *string         `json:"mobile" validate:"omitempty,numeric,len=10"` // Nil when filed without a mobile
	RegistrantName    string          `json:"registrantName" validate:"max=200"`
	Year              int             `json:"year" validate:"gt=0"`
	TaxAmount         decimal.Decimal `json:"taxAmount" validate:"decgte=0"` // Total due at filing time, carried arrears included
	AmountPaid        decimal.Decimal `json:"amountPaid" validate:"decgte=0"`
	OutstandingAmount decimal.Decimal `json:"outstandingAmount" validate:"decgte=0"`
	// SupersededBy is set once a later record has taken over this record's
	// outstanding amount. The amounts here are left untouched.
	SupersededBy *string `json:"supersededBy,omitempty"`
	AuditFields
}

// Validate checks the struct rules plus the outstanding snapshot invariant.
func (r RegistrantYearRecord) Validate() error {
	if err := validate.Struct(r); err != nil {
		return toValidationError(err)
	}
	expected := r.TaxAmount.Sub(r.AmountPaid)
	if expected.IsNegative() {
		expected = decimal.Zero
	}
	if !r.OutstandingAmount.Equal(expected) {
		return apperrors.NewValidationFailedError("outstandingAmount must equal max(0, taxAmount - amountPaid)")
	}
	return nil
}

// IsSettled reports whether nothing is left to pay on this record.
func (r RegistrantYearRecord) IsSettled() bool {
	return !r.OutstandingAmount.IsPositive()
}

// IsSuperseded reports whether a later record carries this record's outstanding amount.
func (r RegistrantYearRecord) IsSuperseded() bool {
	return r.SupersededBy != nil
}

// MobileDigits returns the ASCII digits of raw in order.
func MobileDigits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeMobile strips everything but digits and requires exactly ten of them.
func NormalizeMobile(raw string) (string, error) {
	normalized := MobileDigits(raw)
	if len(normalized) != MobileLength {
		return "", apperrors.NewInvalidIdentifierError("mobile number must contain exactly 10 digits")
	}
	return normalized, nil
}

// HasAnyRecord decides whether a registrant is existing (true) or new (false).
// Any record counts, whatever its year or payment status.
func HasAnyRecord(records []RegistrantYearRecord) bool {
	return len(records) > 0
}
