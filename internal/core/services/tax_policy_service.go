package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/temple_admin_app/internal/apperrors"
	"github.com/SscSPs/temple_admin_app/internal/core/domain"
	portsrepo "github.com/SscSPs/temple_admin_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/temple_admin_app/internal/core/ports/services"
	"github.com/SscSPs/temple_admin_app/internal/dto"
	"github.com/SscSPs/temple_admin_app/internal/platform/metrics"
	"github.com/SscSPs/temple_admin_app/internal/utils"
	"github.com/google/uuid"
)

// taxPolicyService implements the TaxPolicySvcFacade interface
type taxPolicyService struct {
	BaseService
	policyRepo portsrepo.TaxPolicyRepositoryFacade
	years      domain.YearRange
}

// TaxPolicyOption is a functional option for configuring the tax policy service
type TaxPolicyOption func(*taxPolicyService)

// WithYearRange overrides the default range of configurable years
func WithYearRange(years domain.YearRange) TaxPolicyOption {
	return func(s *taxPolicyService) {
		s.years = years
	}
}

// WithTaxPolicyMetrics adds metrics reporting
func WithTaxPolicyMetrics(m *metrics.Metrics) TaxPolicyOption {
	return func(s *taxPolicyService) {
		s.Metrics = m
	}
}

// NewTaxPolicyService creates a new tax policy service with the provided options
func NewTaxPolicyService(repo portsrepo.TaxPolicyRepositoryFacade, options ...TaxPolicyOption) portssvc.TaxPolicySvcFacade {
	svc := &taxPolicyService{
		policyRepo: repo,
		years:      domain.DefaultYearRange,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TaxPolicySvcFacade = (*taxPolicyService)(nil)

func (s *taxPolicyService) GetPolicyForYear(ctx context.Context, templeID string, year int) (*domain.TaxYearPolicy, error) {
	policy, err := s.policyRepo.FindPolicyByYear(ctx, templeID, year)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("no tax configured for year %d", year))
		}
		s.LogError(ctx, err, "Failed to get tax policy", slog.Int("year", year))
		return nil, fmt.Errorf("failed to get tax policy for year %d: %w", year, err)
	}
	if !policy.IsActive {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("tax for year %d is not active", year))
	}
	return policy, nil
}

func (s *taxPolicyService) ListPolicies(ctx context.Context, templeID string) ([]domain.TaxYearPolicy, error) {
	policies, err := s.policyRepo.ListPolicies(ctx, templeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list tax policies")
		return nil, fmt.Errorf("failed to list tax policies: %w", err)
	}
	if policies == nil {
		return []domain.TaxYearPolicy{}, nil
	}
	return policies, nil
}

func (s *taxPolicyService) UpsertPolicy(ctx context.Context, templeID string, year int, req dto.UpsertTaxPolicyRequest, userID string) (*domain.TaxYearPolicy, error) {
	now := time.Now()
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	policy := domain.TaxYearPolicy{
		PolicyID:             uuid.NewString(), // Kept only when the year is new
		TempleID:             templeID,
		Year:                 year,
		TaxAmount:            req.TaxAmount,
		IsActive:             isActive,
		IncludePreviousYears: req.IncludePreviousYears,
		Description:          req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
			Version:       1,
		},
	}
	if err := policy.Validate(s.years); err != nil {
		s.LogWarn(ctx, "Rejected tax policy", slog.Int("year", year), slog.String("error", err.Error()))
		return nil, err
	}

	stored, err := s.policyRepo.UpsertPolicy(ctx, policy)
	if err != nil {
		s.LogError(ctx, err, "Failed to upsert tax policy", slog.Int("year", year))
		return nil, fmt.Errorf("failed to save tax policy for year %d: %w", year, err)
	}

	s.Metrics.IncrementPolicyUpsert()
	s.LogInfo(ctx, "Tax policy saved",
		slog.Int("year", stored.Year),
		slog.String("tax_amount", utils.FormatAmount(stored.TaxAmount)),
		slog.Bool("include_previous_years", stored.IncludePreviousYears),
		slog.Int64("version", stored.Version))
	return stored, nil
}

func (s *taxPolicyService) SetIncludePreviousYears(ctx context.Context, templeID string, value bool, userID string) (int64, error) {
	updated, err := s.policyRepo.SetIncludePreviousYears(ctx, templeID, value, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to toggle include previous years", slog.Bool("value", value))
		return 0, fmt.Errorf("failed to update include previous years: %w", err)
	}

	s.Metrics.IncrementBulkToggle()
	s.LogInfo(ctx, "Include previous years toggled",
		slog.Bool("value", value),
		slog.Int64("updated", updated))
	return updated, nil
}
