package handlers_test

import (
	"net/http"
	"time"

	"github.com/SscSPs/temple_admin_app/internal/apperrors"
	"github.com/SscSPs/temple_admin_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func newRegistrantResult() *domain.CumulativeLiabilityResult {
	return &domain.CumulativeLiabilityResult{
		CumulativeOutstanding: decimal.NewFromInt(220),
		CurrentYearTax:        decimal.NewFromInt(150),
		TotalTaxDue:           decimal.NewFromInt(370),
		YearBreakdown: []domain.LiabilityBreakdownEntry{
			{Year: 2023, AmountDue: decimal.NewFromInt(100), Status: domain.StatusOwedPreviousYear},
			{Year: 2024, AmountDue: decimal.NewFromInt(120), Status: domain.StatusOwedPreviousYear},
			{Year: 2025, AmountDue: decimal.NewFromInt(150), Status: domain.StatusCurrentYearNew},
		},
		CumulativeLookup: true,
	}
}

func (suite *HandlerTestSuite) TestCumulative_Success() {
	result := newRegistrantResult()
	suite.mockCalculation.On("CalculateCumulative", mock.Anything, testTempleID, "9876543210", 2025).Return(result, nil).Once()
	suite.mockCalculation.On("ReconcilePayment", mock.Anything, result.TotalTaxDue, decimal.RequireFromString("300.50")).
		Return(decimal.RequireFromString("69.50"), nil).Once()

	w := suite.do(http.MethodGet, "/api/tax-calculations/cumulative/9876543210?currentYear=2025&amountPaid=300.50", nil)

	suite.Equal(http.StatusOK, w.Code)
	var data map[string]any
	env := suite.decode(w, &data)
	suite.True(env.Success)
	suite.Equal("220", data["cumulativeOutstanding"])
	suite.Equal("150", data["currentYearTax"])
	suite.Equal("370", data["totalTaxDue"])
	suite.Equal(false, data["hasExistingRegistration"])
	suite.Equal(true, data["isNewUser"])
	suite.Equal("69.5", data["outstandingAmount"])

	breakdown, ok := data["yearBreakdown"].([]any)
	suite.Require().True(ok)
	suite.Require().Len(breakdown, 3)
	first := breakdown[0].(map[string]any)
	suite.Equal(float64(2023), first["year"])
	suite.Equal("100", first["outstanding"])
	suite.Equal("owedPreviousYear", first["status"])
	suite.mockCalculation.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCumulative_DefaultsToCurrentYear() {
	year := time.Now().Year()
	result := &domain.CumulativeLiabilityResult{
		YearBreakdown: []domain.LiabilityBreakdownEntry{{Year: year, Status: domain.StatusCurrentYearNew}},
	}
	suite.mockCalculation.On("CalculateCumulative", mock.Anything, testTempleID, "abc", year).Return(result, nil).Once()
	suite.mockCalculation.On("ReconcilePayment", mock.Anything, mock.Anything, mock.Anything).Return(decimal.Zero, nil).Once()

	w := suite.do(http.MethodGet, "/api/tax-calculations/cumulative/abc", nil)

	suite.Equal(http.StatusOK, w.Code)
	var data map[string]any
	suite.decode(w, &data)
	suite.Equal(false, data["cumulativeLookup"])
	suite.mockCalculation.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCumulative_InvalidAmountPaid() {
	w := suite.do(http.MethodGet, "/api/tax-calculations/cumulative/9876543210?currentYear=2025&amountPaid=lots", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCalculation.AssertNotCalled(suite.T(), "CalculateCumulative", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCumulative_NegativePaymentRejected() {
	result := newRegistrantResult()
	suite.mockCalculation.On("CalculateCumulative", mock.Anything, testTempleID, "9876543210", 2025).Return(result, nil).Once()
	suite.mockCalculation.On("ReconcilePayment", mock.Anything, mock.Anything, mock.Anything).
		Return(decimal.Zero, apperrors.NewValidationFailedError("amountPaid cannot be negative")).Once()

	w := suite.do(http.MethodGet, "/api/tax-calculations/cumulative/9876543210?currentYear=2025&amountPaid=-5", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	env := suite.decode(w, nil)
	suite.Equal("amountPaid cannot be negative", env.Message)
}

func (suite *HandlerTestSuite) TestCumulative_YearOutOfRange() {
	suite.mockCalculation.On("CalculateCumulative", mock.Anything, testTempleID, "9876543210", 1990).
		Return(nil, apperrors.NewValidationFailedError("year 1990 is outside the allowed range 2020-2050")).Once()

	w := suite.do(http.MethodGet, "/api/tax-calculations/cumulative/9876543210?currentYear=1990", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCalculation.AssertNotCalled(suite.T(), "ReconcilePayment", mock.Anything, mock.Anything, mock.Anything)
}
