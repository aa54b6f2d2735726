package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/temple_admin_app/internal/apperrors"
	"github.com/SscSPs/temple_admin_app/internal/core/domain"
	portsrepo "github.com/SscSPs/temple_admin_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/temple_admin_app/internal/core/ports/services"
	"github.com/SscSPs/temple_admin_app/internal/platform/metrics"
	"github.com/SscSPs/temple_admin_app/internal/utils"
	"github.com/SscSPs/temple_admin_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// taxCalculationService loads policy and history snapshots and runs the liability calculator.
type taxCalculationService struct {
	BaseService
	policyRepo portsrepo.TaxPolicyReader
	recordRepo portsrepo.RegistrantRecordReader
	years      domain.YearRange
}

// TaxCalculationOption is a functional option for configuring the calculation service
type TaxCalculationOption func(*taxCalculationService)

// WithCalculationYearRange bounds the years a calculation may target
func WithCalculationYearRange(years domain.YearRange) TaxCalculationOption {
	return func(s *taxCalculationService) {
		s.years = years
	}
}

// WithTaxCalculationMetrics adds metrics reporting
func WithTaxCalculationMetrics(m *metrics.Metrics) TaxCalculationOption {
	return func(s *taxCalculationService) {
		s.Metrics = m
	}
}

// NewTaxCalculationService creates a new calculation service.
func NewTaxCalculationService(policyRepo portsrepo.TaxPolicyReader, recordRepo portsrepo.RegistrantRecordReader, options ...TaxCalculationOption) portssvc.TaxCalculationSvcFacade {
	svc := &taxCalculationService{
		policyRepo: policyRepo,
		recordRepo: recordRepo,
		years:      domain.DefaultYearRange,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TaxCalculationSvcFacade = (*taxCalculationService)(nil)

func (s *taxCalculationService) CalculateCumulative(ctx context.Context, templeID string, rawMobile string, currentYear int) (*domain.CumulativeLiabilityResult, error) {
	start := time.Now()
	if !s.years.Contains(currentYear) {
		return nil, apperrors.NewValidationFailedError(
			fmt.Sprintf("year %d is outside the allowed range %d-%d", currentYear, s.years.Min, s.years.Max))
	}

	mobile, err := domain.NormalizeMobile(rawMobile)
	if err != nil {
		// mobile is optional at entry, so a bad one only narrows the lookup
		s.LogDebug(ctx, "Skipping cumulative lookup",
			slog.String("reason", err.Error()),
			slog.Int("digits", len(domain.MobileDigits(rawMobile))),
		)
		return s.calculateSingleYear(ctx, templeID, currentYear, start)
	}

	var (
		policies []domain.TaxYearPolicy
		history  []domain.RegistrantYearRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		policies, err = s.policyRepo.ListActivePolicies(gctx, templeID)
		if err != nil {
			return fmt.Errorf("failed to load tax policies: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		history, err = s.recordRepo.FindRecordsByMobile(gctx, templeID, mobile)
		if err != nil {
			return fmt.Errorf("failed to load registrant history: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load calculation snapshot", slog.Int("current_year", currentYear))
		return nil, err
	}

	result := accounting.CalculateCumulativeLiability(policies, history, currentYear)
	s.Metrics.ObserveCalculation(metrics.ModeCumulative, start)
	s.LogInfo(ctx, "Cumulative liability calculated",
		slog.Int("current_year", currentYear),
		slog.Bool("existing_registrant", result.HasExistingRegistration),
		slog.Int("breakdown_years", len(result.YearBreakdown)),
		slog.String("total_tax_due", utils.FormatAmount(result.TotalTaxDue)))
	return &result, nil
}

func (s *taxCalculationService) calculateSingleYear(ctx context.Context, templeID string, currentYear int, start time.Time) (*domain.CumulativeLiabilityResult, error) {
	policies, err := s.policyRepo.ListActivePolicies(ctx, templeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load tax policies", slog.Int("current_year", currentYear))
		return nil, fmt.Errorf("failed to load tax policies: %w", err)
	}
	result := accounting.CalculateSingleYearLiability(policies, currentYear)
	s.Metrics.ObserveCalculation(metrics.ModeSingleYear, start)
	return &result, nil
}

func (s *taxCalculationService) ReconcilePayment(ctx context.Context, totalTaxDue, amountPaid decimal.Decimal) (decimal.Decimal, error) {
	outstanding, err := accounting.Reconcile(totalTaxDue, amountPaid)
	if err != nil {
		s.LogWarn(ctx, "Rejected payment reconciliation",
			slog.String("total_tax_due", totalTaxDue.String()),
			slog.String("amount_paid", amountPaid.String()))
		return decimal.Zero, err
	}
	return outstanding, nil
}
