package handlers_test

import (
	"net/http"

	"github.com/SscSPs/temple_admin_app/internal/apperrors"
	"github.com/SscSPs/temple_admin_app/internal/core/domain"
	"github.com/SscSPs/temple_admin_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestCreateRegistration_Success() {
	mobile := "9876543210"
	record := &domain.RegistrantYearRecord{
		RecordID:          "record-1",
		TempleID:          testTempleID,
		Mobile:            &mobile,
		RegistrantName:    "Ramesh",
		Year:              2025,
		TaxAmount:         decimal.NewFromInt(370),
		AmountPaid:        decimal.NewFromInt(300),
		OutstandingAmount: decimal.NewFromInt(70),
	}
	suite.mockRegistrar.On("SubmitRegistration", mock.Anything, testTempleID, mock.MatchedBy(func(req dto.CreateTaxRegistrationRequest) bool {
		return req.Mobile == mobile && req.Year == 2025 && req.AmountPaid.Equal(decimal.NewFromInt(300)) && req.TaxAmount == nil
	}), testUserID).Return(record, newRegistrantResult(), nil).Once()

	w := suite.do(http.MethodPost, "/api/tax-registrations", map[string]any{
		"mobile":         mobile,
		"registrantName": "Ramesh",
		"year":           2025,
		"amountPaid":     "300",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var data dto.CreateTaxRegistrationResponse
	env := suite.decode(w, &data)
	suite.True(env.Success)
	suite.Equal("record-1", data.Registration.RecordID)
	suite.True(data.Registration.OutstandingAmount.Equal(decimal.NewFromInt(70)))
	suite.True(data.Calculation.TotalTaxDue.Equal(decimal.NewFromInt(370)))
	suite.True(data.Calculation.IsNewUser)
	suite.mockRegistrar.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCreateRegistration_Duplicate() {
	suite.mockRegistrar.On("SubmitRegistration", mock.Anything, testTempleID, mock.Anything, testUserID).
		Return(nil, nil, apperrors.NewConflictError("tax registration for 9876543210 in 2025 already exists")).Once()

	w := suite.do(http.MethodPost, "/api/tax-registrations", map[string]any{"mobile": "9876543210", "year": 2025})

	suite.Equal(http.StatusConflict, w.Code)
	env := suite.decode(w, nil)
	suite.False(env.Success)
	suite.Contains(env.Message, "already exists")
}

func (suite *HandlerTestSuite) TestCreateRegistration_MissingYear() {
	w := suite.do(http.MethodPost, "/api/tax-registrations", map[string]any{"mobile": "9876543210"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockRegistrar.AssertNotCalled(suite.T(), "SubmitRegistration", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateRegistration_NegativeAmountsRejectedOnBind() {
	for _, body := range []map[string]any{
		{"mobile": "9876543210", "year": 2025, "amountPaid": "-0.01"},
		{"mobile": "9876543210", "year": 2025, "amountPaid": "10", "taxAmount": -1},
	} {
		w := suite.do(http.MethodPost, "/api/tax-registrations", body)
		suite.Equal(http.StatusBadRequest, w.Code, "%v", body)
		suite.Contains(w.Body.String(), "decgte")
	}
	suite.mockRegistrar.AssertNotCalled(suite.T(), "SubmitRegistration", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateRegistration_ReportsOutstandingAgainstTotal() {
	mobile := "9876543210"
	record := &domain.RegistrantYearRecord{
		RecordID:          "record-2025",
		TempleID:          testTempleID,
		Mobile:            &mobile,
		Year:              2025,
		TaxAmount:         decimal.NewFromInt(270),
		AmountPaid:        decimal.NewFromInt(100),
		OutstandingAmount: decimal.NewFromInt(170),
	}
	result := &domain.CumulativeLiabilityResult{
		CumulativeOutstanding: decimal.NewFromInt(120),
		CurrentYearTax:        decimal.NewFromInt(150),
		TotalTaxDue:           decimal.NewFromInt(270),
		YearBreakdown: []domain.LiabilityBreakdownEntry{
			{Year: 2024, AmountDue: decimal.NewFromInt(120), Status: domain.StatusOwedPreviousYear, RecordID: "record-2024"},
			{Year: 2025, AmountDue: decimal.NewFromInt(150), Status: domain.StatusCurrentYearRegistered},
		},
		HasExistingRegistration: true,
		CumulativeLookup:        true,
	}
	suite.mockRegistrar.On("SubmitRegistration", mock.Anything, testTempleID, mock.Anything, testUserID).
		Return(record, result, nil).Once()

	w := suite.do(http.MethodPost, "/api/tax-registrations", map[string]any{"mobile": mobile, "year": 2025, "amountPaid": 100})

	suite.Equal(http.StatusCreated, w.Code)
	var data dto.CreateTaxRegistrationResponse
	suite.decode(w, &data)
	suite.True(data.Calculation.TotalTaxDue.Equal(decimal.NewFromInt(270)))
	suite.True(data.Calculation.OutstandingAmount.Equal(decimal.NewFromInt(170)))
	suite.True(data.Registration.TaxAmount.Equal(decimal.NewFromInt(270)))
	suite.NotContains(w.Body.String(), "record-2024")
}

func (suite *HandlerTestSuite) TestListRegistrations_Success() {
	next := "token-2"
	page := &dto.ListTaxRegistrationsResponse{
		Registrations: []dto.TaxRegistrationResponse{{RecordID: "record-1", Year: 2025}},
		NextToken:     &next,
	}
	suite.mockRegistrar.On("ListRegistrations", mock.Anything, testTempleID, dto.ListTaxRegistrationsParams{
		Mobile: "9876543210",
		Limit:  5,
	}).Return(page, nil).Once()

	w := suite.do(http.MethodGet, "/api/tax-registrations?mobile=9876543210&limit=5", nil)

	suite.Equal(http.StatusOK, w.Code)
	var data dto.ListTaxRegistrationsResponse
	suite.decode(w, &data)
	suite.Len(data.Registrations, 1)
	suite.Require().NotNil(data.NextToken)
	suite.Equal(next, *data.NextToken)
}

func (suite *HandlerTestSuite) TestListRegistrations_DefaultLimit() {
	suite.mockRegistrar.On("ListRegistrations", mock.Anything, testTempleID, dto.ListTaxRegistrationsParams{Limit: 20}).
		Return(&dto.ListTaxRegistrationsResponse{Registrations: []dto.TaxRegistrationResponse{}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/tax-registrations", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockRegistrar.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestListRegistrations_LimitTooLarge() {
	w := suite.do(http.MethodGet, "/api/tax-registrations?limit=500", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockRegistrar.AssertNotCalled(suite.T(), "ListRegistrations", mock.Anything, mock.Anything, mock.Anything)
}
