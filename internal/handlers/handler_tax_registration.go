package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/temple_admin_app/internal/core/ports/services"
	"github.com/SscSPs/temple_admin_app/internal/dto"
	"github.com/SscSPs/temple_admin_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// taxRegistrationHandler handles HTTP requests related to tax registrations.
type taxRegistrationHandler struct {
	registrationService portssvc.TaxRegistrationSvcFacade
}

func newTaxRegistrationHandler(rs portssvc.TaxRegistrationSvcFacade) *taxRegistrationHandler {
	return &taxRegistrationHandler{
		registrationService: rs,
	}
}

// RegisterTaxRegistrationRoutes registers routes related to tax registrations.
func RegisterTaxRegistrationRoutes(rg *gin.RouterGroup, registrationService portssvc.TaxRegistrationSvcFacade) {
	h := newTaxRegistrationHandler(registrationService)

	registrations := rg.Group("/tax-registrations")
	{
		registrations.POST("", h.createRegistration)
		registrations.GET("", h.listRegistrations)
	}
}

// createRegistration godoc
// @Summary Submit a tax registration
// @Description Assesses the registrant for the year and stores taxAmount, amountPaid and outstandingAmount as a frozen snapshot.
// @Description The calculation's outstandingAmount is what remains on the saved record.
// @Tags tax-registrations
// @Accept json
// @Produce json
// @Param X-Temple-ID header string true "Temple ID"
// @Param registration body dto.CreateTaxRegistrationRequest true "Registration details"
// @Success 201 {object} dto.APIResponse{data=dto.CreateTaxRegistrationResponse}
// @Failure 400 {object} dto.APIResponse "Invalid input"
// @Failure 409 {object} dto.APIResponse "Registration for the year already exists"
// @Failure 500 {object} dto.APIResponse "Failed to save tax registration"
// @Security BearerAuth
// @Router /tax-registrations [post]
func (h *taxRegistrationHandler) createRegistration(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	templeID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.CreateTaxRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTaxRegistration", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request format: "+err.Error()))
		return
	}

	logger.Info("Received tax registration", slog.Int("year", req.Year))
	record, result, err := h.registrationService.SubmitRegistration(c.Request.Context(), templeID, req, userID)
	if err != nil {
		respondError(c, logger, err, "save tax registration")
		return
	}

	c.JSON(http.StatusCreated, dto.APIResponse{
		Success: true,
		Message: "Tax registration saved",
		Data: dto.CreateTaxRegistrationResponse{
			Registration: dto.ToTaxRegistrationResponse(record),
			Calculation:  dto.ToCumulativeLiabilityResponse(result, record.AmountPaid, record.OutstandingAmount),
		},
	})
}

// listRegistrations godoc
// @Summary List tax registrations
// @Description Pages through saved registrations, newest year first
// @Tags tax-registrations
// @Produce json
// @Param X-Temple-ID header string true "Temple ID"
// @Param mobile query string false "Filter by mobile number"
// @Param limit query int false "Page size (max 100)" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.APIResponse{data=dto.ListTaxRegistrationsResponse}
// @Failure 400 {object} dto.APIResponse "Invalid query parameters"
// @Failure 500 {object} dto.APIResponse "Failed to list tax registrations"
// @Security BearerAuth
// @Router /tax-registrations [get]
func (h *taxRegistrationHandler) listRegistrations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	templeID, _, ok := requestScope(c)
	if !ok {
		return
	}

	var params dto.ListTaxRegistrationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListTaxRegistrations", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid query parameters: "+err.Error()))
		return
	}

	page, err := h.registrationService.ListRegistrations(c.Request.Context(), templeID, params)
	if err != nil {
		respondError(c, logger, err, "list tax registrations")
		return
	}

	logger.Info("Tax registrations listed", slog.Int("count", len(page.Registrations)))
	c.JSON(http.StatusOK, dto.OK(page))
}
