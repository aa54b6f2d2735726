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
	"github.com/SscSPs/temple_admin_app/internal/utils/pagination"
	"github.com/google/uuid"
)

const (
	defaultRegistrationPageSize = 20
	maxRegistrationPageSize     = 100
)

// taxRegistrationService persists registration snapshots assessed by the calculation service.
type taxRegistrationService struct {
	BaseService
	recordRepo  portsrepo.RegistrantRecordRepositoryFacade
	calculation portssvc.TaxCalculationSvcFacade
}

// TaxRegistrationOption is a functional option for configuring the registration service
type TaxRegistrationOption func(*taxRegistrationService)

// WithTaxRegistrationMetrics adds metrics reporting
func WithTaxRegistrationMetrics(m *metrics.Metrics) TaxRegistrationOption {
	return func(s *taxRegistrationService) {
		s.Metrics = m
	}
}

// NewTaxRegistrationService creates a new registration service.
func NewTaxRegistrationService(recordRepo portsrepo.RegistrantRecordRepositoryFacade, calculation portssvc.TaxCalculationSvcFacade, options ...TaxRegistrationOption) portssvc.TaxRegistrationSvcFacade {
	svc := &taxRegistrationService{
		recordRepo:  recordRepo,
		calculation: calculation,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TaxRegistrationSvcFacade = (*taxRegistrationService)(nil)

func (s *taxRegistrationService) SubmitRegistration(ctx context.Context, templeID string, req dto.CreateTaxRegistrationRequest, userID string) (*domain.RegistrantYearRecord, *domain.CumulativeLiabilityResult, error) {
	if req.AmountPaid.IsNegative() {
		return nil, nil, apperrors.NewValidationFailedError("amountPaid must not be negative")
	}
	if req.TaxAmount != nil && req.TaxAmount.IsNegative() {
		return nil, nil, apperrors.NewValidationFailedError("taxAmount must not be negative")
	}

	var mobile *string
	if req.Mobile != "" {
		normalized, err := domain.NormalizeMobile(req.Mobile)
		if err != nil {
			s.LogWarn(ctx, "Saving registration without mobile", slog.String("reason", err.Error()))
		} else {
			mobile = &normalized
		}
	}

	result, err := s.calculation.CalculateCumulative(ctx, templeID, req.Mobile, req.Year)
	if err != nil {
		return nil, nil, err
	}

	// The filing takes over every arrear in the result, so it is assessed the
	// full total. A manual amount replaces only the current year's tax.
	currentTax := result.CurrentYearTax
	if req.TaxAmount != nil {
		currentTax = *req.TaxAmount
	}
	assessed := result.CumulativeOutstanding.Add(currentTax)
	outstanding, err := s.calculation.ReconcilePayment(ctx, assessed, req.AmountPaid)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	record := domain.RegistrantYearRecord{
		RecordID:          uuid.NewString(),
		TempleID:          templeID,
		Mobile:            mobile,
		RegistrantName:    req.RegistrantName,
		Year:              req.Year,
		TaxAmount:         assessed,
		AmountPaid:        req.AmountPaid,
		OutstandingAmount: outstanding,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
			Version:       1,
		},
	}
	if err := record.Validate(); err != nil {
		return nil, nil, err
	}

	carried := result.CarriedRecordIDs()
	if err := s.recordRepo.SaveRecord(ctx, record, carried); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			s.LogWarn(ctx, "Duplicate tax registration", slog.Int("year", req.Year), slog.Int("carried_records", len(carried)))
			return nil, nil, err
		}
		s.LogError(ctx, err, "Failed to save tax registration", slog.Int("year", req.Year))
		return nil, nil, fmt.Errorf("failed to save tax registration: %w", err)
	}

	s.Metrics.IncrementRegistration(result.IsNewUser())
	s.LogInfo(ctx, "Tax registration saved",
		slog.String("record_id", record.RecordID),
		slog.Int("year", record.Year),
		slog.Bool("new_registrant", result.IsNewUser()),
		slog.Int("carried_records", len(carried)),
		slog.String("tax_amount", utils.FormatAmount(record.TaxAmount)),
		slog.String("outstanding_amount", utils.FormatAmount(record.OutstandingAmount)))
	return &record, result, nil
}

func (s *taxRegistrationService) ListRegistrations(ctx context.Context, templeID string, params dto.ListTaxRegistrationsParams) (*dto.ListTaxRegistrationsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultRegistrationPageSize
	}
	if limit > maxRegistrationPageSize {
		limit = maxRegistrationPageSize
	}

	filter := portsrepo.RecordListFilter{Limit: limit + 1}
	if params.Mobile != "" {
		mobile, err := domain.NormalizeMobile(params.Mobile)
		if err != nil {
			return nil, err
		}
		filter.Mobile = &mobile
	}
	if params.NextToken != "" {
		year, createdAt, id, err := pagination.DecodeYearCursorToken(params.NextToken)
		if err != nil {
			s.LogWarn(ctx, "Invalid registration page token", slog.String("error", err.Error()))
			return nil, apperrors.NewValidationFailedError("invalid nextToken")
		}
		filter.After = &portsrepo.RecordCursor{Year: year, CreatedAt: createdAt, RecordID: id}
	}

	records, err := s.recordRepo.ListRecords(ctx, templeID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list tax registrations")
		return nil, fmt.Errorf("failed to list tax registrations: %w", err)
	}

	var nextToken *string
	if len(records) > limit {
		records = records[:limit]
		last := records[len(records)-1]
		token := pagination.EncodeYearCursorToken(last.Year, last.CreatedAt, last.RecordID)
		nextToken = &token
	}

	return &dto.ListTaxRegistrationsResponse{
		Registrations: dto.ToTaxRegistrationResponses(records),
		NextToken:     nextToken,
	}, nil
}
