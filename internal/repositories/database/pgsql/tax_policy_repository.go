package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/SscSPs/temple_admin_app/internal/apperrors"
	"github.com/SscSPs/temple_admin_app/internal/core/domain"
	portsrepo "github.com/SscSPs/temple_admin_app/internal/core/ports/repositories"
	"github.com/SscSPs/temple_admin_app/internal/models"
	"github.com/SscSPs/temple_admin_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTaxPolicyRepository struct {
	BaseRepository
}

// newPgxTaxPolicyRepository creates a new repository for tax year policies.
func newPgxTaxPolicyRepository(pool *pgxpool.Pool) portsrepo.TaxPolicyRepositoryWithTx {
	return &PgxTaxPolicyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TaxPolicyRepositoryWithTx = (*PgxTaxPolicyRepository)(nil)

const taxPolicySelect = `
SELECT
	policy_id, temple_id, year, tax_amount, is_active, include_previous_years, description,
	created_at, created_by, last_updated_at, last_updated_by, version
FROM tax_year_policies
`

func scanTaxPolicy(row pgx.CollectableRow) (models.TaxYearPolicy, error) {
	var p models.TaxYearPolicy
	err := row.Scan(
		&p.PolicyID,
		&p.TempleID,
		&p.Year,
		&p.TaxAmount,
		&p.IsActive,
		&p.IncludePreviousYears,
		&p.Description,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
		&p.Version,
	)
	return p, err
}

// getPolicies runs the shared select with a filter. A single statement is one
// snapshot in Postgres, so a concurrent bulk toggle is seen entirely or not at all.
func (r *PgxTaxPolicyRepository) getPolicies(ctx context.Context, filterQuery string, args ...any) ([]domain.TaxYearPolicy, error) {
	rows, err := r.Pool.Query(ctx, taxPolicySelect+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query tax policies", err)
	}
	defer rows.Close()

	modelPolicies, err := pgx.CollectRows(rows, scanTaxPolicy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.TaxYearPolicy{}, nil
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect tax policy rows", err)
	}
	return mapping.ToDomainTaxYearPolicySlice(modelPolicies), nil
}

// FindPolicyByYear retrieves the policy row for a temple and year.
func (r *PgxTaxPolicyRepository) FindPolicyByYear(ctx context.Context, templeID string, year int) (*domain.TaxYearPolicy, error) {
	policies, err := r.getPolicies(ctx, `WHERE temple_id = $1 AND year = $2`, templeID, year)
	if err != nil {
		return nil, err
	}
	if len(policies) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &policies[0], nil
}

// ListPolicies retrieves every policy of the temple.
func (r *PgxTaxPolicyRepository) ListPolicies(ctx context.Context, templeID string) ([]domain.TaxYearPolicy, error) {
	return r.getPolicies(ctx, `WHERE temple_id = $1 ORDER BY year ASC`, templeID)
}

// ListActivePolicies retrieves only the active policies of the temple.
func (r *PgxTaxPolicyRepository) ListActivePolicies(ctx context.Context, templeID string) ([]domain.TaxYearPolicy, error) {
	return r.getPolicies(ctx, `WHERE temple_id = $1 AND is_active = true ORDER BY year ASC`, templeID)
}

// UpsertPolicy inserts the (temple, year) row or updates it in place.
func (r *PgxTaxPolicyRepository) UpsertPolicy(ctx context.Context, policy domain.TaxYearPolicy) (*domain.TaxYearPolicy, error) {
	m := mapping.ToModelTaxYearPolicy(policy)
	query := `
		INSERT INTO tax_year_policies (
			policy_id, temple_id, year, tax_amount, is_active, include_previous_years, description,
			created_at, created_by, last_updated_at, last_updated_by, version
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 1)
		ON CONFLICT (temple_id, year) DO UPDATE SET
			tax_amount = EXCLUDED.tax_amount,
			is_active = EXCLUDED.is_active,
			include_previous_years = EXCLUDED.include_previous_years,
			description = EXCLUDED.description,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by,
			version = tax_year_policies.version + 1
		RETURNING policy_id, temple_id, year, tax_amount, is_active, include_previous_years, description,
			created_at, created_by, last_updated_at, last_updated_by, version;
	`
	rows, err := r.Pool.Query(ctx, query,
		m.PolicyID,
		m.TempleID,
		m.Year,
		m.TaxAmount,
		m.IsActive,
		m.IncludePreviousYears,
		m.Description,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, fmt.Sprintf("failed to upsert tax policy for year %d", m.Year), err)
	}
	stored, err := pgx.CollectExactlyOneRow(rows, scanTaxPolicy)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, fmt.Sprintf("failed to read upserted tax policy for year %d", m.Year), err)
	}
	result := mapping.ToDomainTaxYearPolicy(stored)
	return &result, nil
}

// SetIncludePreviousYears updates every policy row of the temple in one transaction.
func (r *PgxTaxPolicyRepository) SetIncludePreviousYears(ctx context.Context, templeID string, value bool, updatedBy string) (int64, error) {
	var updated int64
	err := r.WithinTx(ctx, func(tx pgx.Tx) error {
		// lock the temple's rows so concurrent upserts queue behind the toggle
		if _, err := tx.Exec(ctx, `SELECT 1 FROM tax_year_policies WHERE temple_id = $1 FOR UPDATE`, templeID); err != nil {
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to lock tax policies", err)
		}
		tag, err := tx.Exec(ctx, `
			UPDATE tax_year_policies
			SET include_previous_years = $1, last_updated_at = NOW(), last_updated_by = $2, version = version + 1
			WHERE temple_id = $3;
		`, value, updatedBy, templeID)
		if err != nil {
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to toggle include_previous_years", err)
		}
		updated = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}
