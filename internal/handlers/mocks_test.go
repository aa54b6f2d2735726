package handlers_test

import (
	"context"

	"github.com/SscSPs/temple_admin_app/internal/core/domain"
	portssvc "github.com/SscSPs/temple_admin_app/internal/core/ports/services"
	"github.com/SscSPs/temple_admin_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock TaxPolicyService ---
type MockTaxPolicyService struct {
	mock.Mock
}

func (m *MockTaxPolicyService) GetPolicyForYear(ctx context.Context, templeID string, year int) (*domain.TaxYearPolicy, error) {
	args := m.Called(ctx, templeID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxYearPolicy), args.Error(1)
}

func (m *MockTaxPolicyService) ListPolicies(ctx context.Context, templeID string) ([]domain.TaxYearPolicy, error) {
	args := m.Called(ctx, templeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaxYearPolicy), args.Error(1)
}

func (m *MockTaxPolicyService) UpsertPolicy(ctx context.Context, templeID string, year int, req dto.UpsertTaxPolicyRequest, userID string) (*domain.TaxYearPolicy, error) {
	args := m.Called(ctx, templeID, year, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxYearPolicy), args.Error(1)
}

func (m *MockTaxPolicyService) SetIncludePreviousYears(ctx context.Context, templeID string, value bool, userID string) (int64, error) {
	args := m.Called(ctx, templeID, value, userID)
	return args.Get(0).(int64), args.Error(1)
}

var _ portssvc.TaxPolicySvcFacade = (*MockTaxPolicyService)(nil)

// --- Mock TaxCalculationService ---
type MockTaxCalculationService struct {
	mock.Mock
}

func (m *MockTaxCalculationService) CalculateCumulative(ctx context.Context, templeID string, rawMobile string, currentYear int) (*domain.CumulativeLiabilityResult, error) {
	args := m.Called(ctx, templeID, rawMobile, currentYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CumulativeLiabilityResult), args.Error(1)
}

func (m *MockTaxCalculationService) ReconcilePayment(ctx context.Context, totalTaxDue, amountPaid decimal.Decimal) (decimal.Decimal, error) {
	args := m.Called(ctx, totalTaxDue, amountPaid)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

var _ portssvc.TaxCalculationSvcFacade = (*MockTaxCalculationService)(nil)

// --- Mock TaxRegistrationService ---
type MockTaxRegistrationService struct {
	mock.Mock
}

func (m *MockTaxRegistrationService) SubmitRegistration(ctx context.Context, templeID string, req dto.CreateTaxRegistrationRequest, userID string) (*domain.RegistrantYearRecord, *domain.CumulativeLiabilityResult, error) {
	args := m.Called(ctx, templeID, req, userID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.RegistrantYearRecord), args.Get(1).(*domain.CumulativeLiabilityResult), args.Error(2)
}

func (m *MockTaxRegistrationService) ListRegistrations(ctx context.Context, templeID string, params dto.ListTaxRegistrationsParams) (*dto.ListTaxRegistrationsResponse, error) {
	args := m.Called(ctx, templeID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTaxRegistrationsResponse), args.Error(1)
}

var _ portssvc.TaxRegistrationSvcFacade = (*MockTaxRegistrationService)(nil)
