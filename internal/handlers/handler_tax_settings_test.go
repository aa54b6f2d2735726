package handlers_test

import (
	"net/http"

	"github.com/SscSPs/temple_admin_app/internal/apperrors"
	"github.com/SscSPs/temple_admin_app/internal/core/domain"
	"github.com/SscSPs/temple_admin_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func samplePolicy(year int, amount int64) *domain.TaxYearPolicy {
	return &domain.TaxYearPolicy{
		PolicyID:  "policy-1",
		TempleID:  testTempleID,
		Year:      year,
		TaxAmount: decimal.NewFromInt(amount),
		IsActive:  true,
	}
}

func (suite *HandlerTestSuite) TestGetPolicyForYear_Success() {
	suite.mockPolicy.On("GetPolicyForYear", mock.Anything, testTempleID, 2025).Return(samplePolicy(2025, 150), nil).Once()

	w := suite.do(http.MethodGet, "/api/tax-settings/year/2025", nil)

	suite.Equal(http.StatusOK, w.Code)
	var data map[string]any
	env := suite.decode(w, &data)
	suite.True(env.Success)
	suite.Equal("150", data["tax_amount"])
	suite.Equal(float64(2025), data["year"])
	suite.mockPolicy.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestGetPolicyForYear_Unconfigured() {
	suite.mockPolicy.On("GetPolicyForYear", mock.Anything, testTempleID, 2030).
		Return(nil, apperrors.NewNotFoundError("no tax configured for year 2030")).Once()

	w := suite.do(http.MethodGet, "/api/tax-settings/year/2030", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	env := suite.decode(w, nil)
	suite.False(env.Success)
	suite.Equal("no tax configured for year 2030", env.Message)
}

func (suite *HandlerTestSuite) TestGetPolicyForYear_InvalidYear() {
	w := suite.do(http.MethodGet, "/api/tax-settings/year/next", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPolicy.AssertNotCalled(suite.T(), "GetPolicyForYear", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestListPolicies_ServiceError() {
	suite.mockPolicy.On("ListPolicies", mock.Anything, testTempleID).Return(nil, assert.AnError).Once()

	w := suite.do(http.MethodGet, "/api/tax-settings", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	env := suite.decode(w, nil)
	suite.Equal("Failed to list tax settings", env.Message)
	suite.NotContains(w.Body.String(), assert.AnError.Error())
}

func (suite *HandlerTestSuite) TestUpsertPolicy_Success() {
	body := map[string]any{"taxAmount": 150, "description": "Annual", "includePreviousYears": true}
	suite.mockPolicy.On("UpsertPolicy", mock.Anything, testTempleID, 2025, mock.MatchedBy(func(req dto.UpsertTaxPolicyRequest) bool {
		return req.TaxAmount.Equal(decimal.NewFromInt(150)) && req.IncludePreviousYears && req.IsActive == nil
	}), testUserID).Return(samplePolicy(2025, 150), nil).Once()

	w := suite.do(http.MethodPut, "/api/tax-settings/year/2025", body)

	suite.Equal(http.StatusOK, w.Code)
	env := suite.decode(w, nil)
	suite.True(env.Success)
	suite.Equal("Tax setting for 2025 saved", env.Message)
	suite.mockPolicy.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestUpsertPolicy_ValidationError() {
	suite.mockPolicy.On("UpsertPolicy", mock.Anything, testTempleID, 2019, mock.Anything, testUserID).
		Return(nil, apperrors.NewValidationFailedError("year 2019 is outside the allowed range 2020-2050")).Once()

	w := suite.do(http.MethodPut, "/api/tax-settings/year/2019", map[string]any{"taxAmount": 150})

	suite.Equal(http.StatusBadRequest, w.Code)
	env := suite.decode(w, nil)
	suite.False(env.Success)
	suite.Equal("year 2019 is outside the allowed range 2020-2050", env.Message)
}

func (suite *HandlerTestSuite) TestUpsertPolicy_NonPositiveAmountRejectedOnBind() {
	for _, amount := range []any{0, "-5", "0.00"} {
		w := suite.do(http.MethodPut, "/api/tax-settings/year/2025", map[string]any{"taxAmount": amount})

		suite.Equal(http.StatusBadRequest, w.Code, "taxAmount %v", amount)
		suite.Contains(w.Body.String(), "decgt")
	}
	suite.mockPolicy.AssertNotCalled(suite.T(), "UpsertPolicy", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestBulkToggle_Success() {
	suite.mockPolicy.On("SetIncludePreviousYears", mock.Anything, testTempleID, false, testUserID).Return(int64(4), nil).Once()

	w := suite.do(http.MethodPost, "/api/tax-settings/bulk-toggle", map[string]any{"includePreviousYears": false})

	suite.Equal(http.StatusOK, w.Code)
	var data dto.BulkToggleResponse
	env := suite.decode(w, &data)
	suite.True(env.Success)
	suite.Equal("Include previous years disabled for all tax years", env.Message)
	suite.Equal(int64(4), data.Updated)
}

func (suite *HandlerTestSuite) TestBulkToggle_MissingValue() {
	w := suite.do(http.MethodPost, "/api/tax-settings/bulk-toggle", map[string]any{})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPolicy.AssertNotCalled(suite.T(), "SetIncludePreviousYears", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
