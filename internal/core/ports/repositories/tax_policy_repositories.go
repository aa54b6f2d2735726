package repositories

import (
	"context"

	"github.com/SscSPs/temple_admin_app/internal/core/domain"
)

// TaxPolicyReader defines read operations for tax year policies
type TaxPolicyReader interface {
	// FindPolicyByYear retrieves the policy for a temple and year. Returns apperrors.ErrNotFound when unconfigured.
	FindPolicyByYear(ctx context.Context, templeID string, year int) (*domain.TaxYearPolicy, error)

	// ListPolicies retrieves every policy of a temple, active or not, ordered by year ascending.
	ListPolicies(ctx context.Context, templeID string) ([]domain.TaxYearPolicy, error)

	// ListActivePolicies retrieves active policies ordered by year ascending, read as one snapshot.
	ListActivePolicies(ctx context.Context, templeID string) ([]domain.TaxYearPolicy, error)
}

// TaxPolicyWriter defines write operations for tax year policies
type TaxPolicyWriter interface {
	// UpsertPolicy creates or updates the single policy row for (temple, year) and returns the stored row.
	UpsertPolicy(ctx context.Context, policy domain.TaxYearPolicy) (*domain.TaxYearPolicy, error)

	// SetIncludePreviousYears flips the backfill flag on every policy of a temple
	// in one transaction and returns the number of rows touched.
	SetIncludePreviousYears(ctx context.Context, templeID string, value bool, updatedBy string) (int64, error)
}

// TaxPolicyRepositoryFacade combines all tax policy repository interfaces
type TaxPolicyRepositoryFacade interface {
	TaxPolicyReader
	TaxPolicyWriter
}

// TaxPolicyRepositoryWithTx extends TaxPolicyRepositoryFacade with transaction capabilities
type TaxPolicyRepositoryWithTx interface {
	TaxPolicyRepositoryFacade
	TransactionManager
}
