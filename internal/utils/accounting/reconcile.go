package accounting

import (
	"github.com/SscSPs/temple_admin_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Reconcile returns max(0, totalTaxDue - amountPaid). Negative inputs are rejected.
// Overpayment never produces a negative balance, and a larger payment never
// yields a larger outstanding amount.
func Reconcile(totalTaxDue, amountPaid decimal.Decimal) (decimal.Decimal, error) {
	if amountPaid.IsNegative() {
		return decimal.Zero, apperrors.NewValidationFailedError("amountPaid cannot be negative")
	}
	if totalTaxDue.IsNegative() {
		return decimal.Zero, apperrors.NewValidationFailedError("totalTaxDue cannot be negative")
	}
	outstanding := totalTaxDue.Sub(amountPaid)
	if outstanding.IsNegative() {
		return decimal.Zero, nil
	}
	return outstanding, nil
}
