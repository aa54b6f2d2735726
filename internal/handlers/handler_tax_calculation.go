package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/temple_admin_app/internal/core/ports/services"
	"github.com/SscSPs/temple_admin_app/internal/dto"
	"github.com/SscSPs/temple_admin_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// taxCalculationHandler handles HTTP requests for liability lookups.
type taxCalculationHandler struct {
	calculationService portssvc.TaxCalculationSvcFacade
}

func newTaxCalculationHandler(cs portssvc.TaxCalculationSvcFacade) *taxCalculationHandler {
	return &taxCalculationHandler{
		calculationService: cs,
	}
}

// RegisterTaxCalculationRoutes registers routes related to tax calculations.
func RegisterTaxCalculationRoutes(rg *gin.RouterGroup, calculationService portssvc.TaxCalculationSvcFacade) {
	h := newTaxCalculationHandler(calculationService)

	calculations := rg.Group("/tax-calculations")
	{
		calculations.GET("/cumulative/:mobile", h.getCumulativeLiability)
	}
}

// getCumulativeLiability godoc
// @Summary Calculate cumulative tax liability
// @Description Computes what the registrant behind a mobile number owes up to currentYear and reconciles amountPaid against it.
// @Description A malformed mobile yields a current-year-only result with cumulativeLookup=false.
// @Tags tax-calculations
// @Produce json
// @Param X-Temple-ID header string true "Temple ID"
// @Param mobile path string true "Registrant mobile number"
// @Param currentYear query int false "Assessment year, defaults to the current calendar year"
// @Param amountPaid query string false "Amount already paid, decimal"
// @Success 200 {object} dto.APIResponse{data=dto.CumulativeLiabilityResponse}
// @Failure 400 {object} dto.APIResponse "Invalid year or amount"
// @Failure 500 {object} dto.APIResponse "Failed to calculate tax"
// @Security BearerAuth
// @Router /tax-calculations/cumulative/{mobile} [get]
func (h *taxCalculationHandler) getCumulativeLiability(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	templeID, _, ok := requestScope(c)
	if !ok {
		return
	}

	var query dto.CumulativeLiabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query for cumulative calculation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid query parameters: "+err.Error()))
		return
	}
	if query.CurrentYear == 0 {
		query.CurrentYear = time.Now().Year()
	}
	amountPaid := decimal.Zero
	if query.AmountPaid != "" {
		parsed, err := decimal.NewFromString(query.AmountPaid)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Fail("amountPaid must be a decimal number"))
			return
		}
		amountPaid = parsed
	}

	ctx := c.Request.Context()
	result, err := h.calculationService.CalculateCumulative(ctx, templeID, c.Param("mobile"), query.CurrentYear)
	if err != nil {
		respondError(c, logger, err, "calculate tax")
		return
	}
	outstanding, err := h.calculationService.ReconcilePayment(ctx, result.TotalTaxDue, amountPaid)
	if err != nil {
		respondError(c, logger, err, "calculate tax")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToCumulativeLiabilityResponse(result, amountPaid, outstanding)))
}
