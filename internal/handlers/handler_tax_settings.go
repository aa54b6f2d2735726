package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/SscSPs/temple_admin_app/internal/core/ports/services"
	"github.com/SscSPs/temple_admin_app/internal/dto"
	"github.com/SscSPs/temple_admin_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// taxSettingsHandler handles HTTP requests related to tax year policies.
type taxSettingsHandler struct {
	policyService portssvc.TaxPolicySvcFacade
}

// newTaxSettingsHandler creates a new taxSettingsHandler.
func newTaxSettingsHandler(ps portssvc.TaxPolicySvcFacade) *taxSettingsHandler {
	return &taxSettingsHandler{
		policyService: ps,
	}
}

// RegisterTaxSettingsRoutes registers routes related to tax settings.
func RegisterTaxSettingsRoutes(rg *gin.RouterGroup, policyService portssvc.TaxPolicySvcFacade) {
	h := newTaxSettingsHandler(policyService)

	settings := rg.Group("/tax-settings")
	{
		settings.GET("", h.listPolicies)
		settings.GET("/year/:year", h.getPolicyForYear)
		settings.PUT("/year/:year", h.upsertPolicy)
		settings.POST("/bulk-toggle", h.bulkToggle)
	}
}

func parseYearParam(c *gin.Context) (int, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year <= 0 {
		c.JSON(http.StatusBadRequest, dto.Fail("year must be a positive integer"))
		return 0, false
	}
	return year, true
}

// listPolicies godoc
// @Summary List tax settings
// @Description Retrieves the tax policy of every configured year, active or not, ordered by year
// @Tags tax-settings
// @Produce json
// @Param X-Temple-ID header string true "Temple ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.TaxPolicyResponse}
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 500 {object} dto.APIResponse "Failed to list tax settings"
// @Security BearerAuth
// @Router /tax-settings [get]
func (h *taxSettingsHandler) listPolicies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	templeID, _, ok := requestScope(c)
	if !ok {
		return
	}

	policies, err := h.policyService.ListPolicies(c.Request.Context(), templeID)
	if err != nil {
		respondError(c, logger, err, "list tax settings")
		return
	}

	logger.Info("Tax settings listed", slog.Int("count", len(policies)))
	c.JSON(http.StatusOK, dto.OK(dto.ToListTaxPolicyResponse(policies)))
}

// getPolicyForYear godoc
// @Summary Get the tax setting of a year
// @Description Retrieves the active tax policy of one year. Unconfigured or inactive years answer success=false.
// @Tags tax-settings
// @Produce json
// @Param X-Temple-ID header string true "Temple ID"
// @Param year path int true "Tax year"
// @Success 200 {object} dto.APIResponse{data=dto.TaxPolicyResponse}
// @Failure 400 {object} dto.APIResponse "Invalid year"
// @Failure 404 {object} dto.APIResponse "No tax configured for the year"
// @Security BearerAuth
// @Router /tax-settings/year/{year} [get]
func (h *taxSettingsHandler) getPolicyForYear(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	templeID, _, ok := requestScope(c)
	if !ok {
		return
	}
	year, ok := parseYearParam(c)
	if !ok {
		return
	}

	policy, err := h.policyService.GetPolicyForYear(c.Request.Context(), templeID, year)
	if err != nil {
		respondError(c, logger, err, "retrieve tax setting")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToTaxPolicyResponse(policy)))
}

// upsertPolicy godoc
// @Summary Create or update the tax setting of a year
// @Description Stores the single policy row for the year, creating it when missing
// @Tags tax-settings
// @Accept json
// @Produce json
// @Param X-Temple-ID header string true "Temple ID"
// @Param year path int true "Tax year"
// @Param policy body dto.UpsertTaxPolicyRequest true "Policy details"
// @Success 200 {object} dto.APIResponse{data=dto.TaxPolicyResponse}
// @Failure 400 {object} dto.APIResponse "Invalid input"
// @Failure 500 {object} dto.APIResponse "Failed to save tax setting"
// @Security BearerAuth
// @Router /tax-settings/year/{year} [put]
func (h *taxSettingsHandler) upsertPolicy(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	templeID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	year, ok := parseYearParam(c)
	if !ok {
		return
	}

	var req dto.UpsertTaxPolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpsertTaxPolicy", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request format: "+err.Error()))
		return
	}

	logger.Info("Received request to save tax setting", slog.Int("year", year))
	policy, err := h.policyService.UpsertPolicy(c.Request.Context(), templeID, year, req, userID)
	if err != nil {
		respondError(c, logger, err, "save tax setting")
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Message: fmt.Sprintf("Tax setting for %d saved", policy.Year),
		Data:    dto.ToTaxPolicyResponse(policy),
	})
}

// bulkToggle godoc
// @Summary Toggle include previous years for all years
// @Description Sets includePreviousYears on every configured year at once. Saved registrations are not recalculated.
// @Tags tax-settings
// @Accept json
// @Produce json
// @Param X-Temple-ID header string true "Temple ID"
// @Param toggle body dto.BulkToggleRequest true "New flag value"
// @Success 200 {object} dto.APIResponse{data=dto.BulkToggleResponse}
// @Failure 400 {object} dto.APIResponse "Invalid input"
// @Failure 500 {object} dto.APIResponse "Failed to update tax settings"
// @Security BearerAuth
// @Router /tax-settings/bulk-toggle [post]
func (h *taxSettingsHandler) bulkToggle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	templeID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.BulkToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for BulkToggle", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request format: "+err.Error()))
		return
	}
	value := *req.IncludePreviousYears

	updated, err := h.policyService.SetIncludePreviousYears(c.Request.Context(), templeID, value, userID)
	if err != nil {
		respondError(c, logger, err, "update tax settings")
		return
	}

	state := "disabled"
	if value {
		state = "enabled"
	}
	c.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Message: fmt.Sprintf("Include previous years %s for all tax years", state),
		Data:    dto.BulkToggleResponse{Updated: updated},
	})
}
