package services

import (
	"context"

	"github.com/SscSPs/temple_admin_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TaxCalculationSvcFacade exposes the liability engine.
type TaxCalculationSvcFacade interface {
	// CalculateCumulative computes what the registrant behind rawMobile owes up to currentYear.
	// A blank or malformed mobile yields a single-year result instead of an error.
	CalculateCumulative(ctx context.Context, templeID string, rawMobile string, currentYear int) (*domain.CumulativeLiabilityResult, error)

	// ReconcilePayment returns max(0, totalTaxDue - amountPaid).
	ReconcilePayment(ctx context.Context, totalTaxDue, amountPaid decimal.Decimal) (decimal.Decimal, error)
}
