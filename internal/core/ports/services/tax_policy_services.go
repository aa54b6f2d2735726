package services

import (
	"context"

	"github.com/SscSPs/temple_admin_app/internal/core/domain"
	"github.com/SscSPs/temple_admin_app/internal/dto"
)

// TaxPolicyReaderSvc defines read operations for tax year policies
type TaxPolicyReaderSvc interface {
	// GetPolicyForYear retrieves the active policy for a year.
	// Returns apperrors.ErrNotFound when the year is unconfigured or inactive.
	GetPolicyForYear(ctx context.Context, templeID string, year int) (*domain.TaxYearPolicy, error)

	// ListPolicies retrieves every configured year, active or not.
	ListPolicies(ctx context.Context, templeID string) ([]domain.TaxYearPolicy, error)
}

// TaxPolicyWriterSvc defines write operations for tax year policies
type TaxPolicyWriterSvc interface {
	// UpsertPolicy creates or updates the policy of a year.
	UpsertPolicy(ctx context.Context, templeID string, year int, req dto.UpsertTaxPolicyRequest, userID string) (*domain.TaxYearPolicy, error)

	// SetIncludePreviousYears sets the backfill flag on every policy year atomically.
	// Persisted registrant outstanding amounts are left untouched.
	SetIncludePreviousYears(ctx context.Context, templeID string, value bool, userID string) (int64, error)
}

// TaxPolicySvcFacade combines all tax policy service interfaces
type TaxPolicySvcFacade interface {
	TaxPolicyReaderSvc
	TaxPolicyWriterSvc
}
