package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/money_valuation/internal/apperrors"
	portssvc "github.com/SscSPs/money_valuation/internal/core/ports/services"
	"github.com/SscSPs/money_valuation/internal/dto"
	"github.com/SscSPs/money_valuation/internal/middleware"
	"github.com/gin-gonic/gin"
)

// valuationHandler handles HTTP requests for valuation reports and balances.
type valuationHandler struct {
	valuationService portssvc.ValuationSvcFacade
}

// newValuationHandler creates a new valuationHandler.
func newValuationHandler(vs portssvc.ValuationSvcFacade) *valuationHandler {
	return &valuationHandler{
		valuationService: vs,
	}
}

// RegisterValuationRoutes registers routes related to valuation.
func RegisterValuationRoutes(rg *gin.RouterGroup, valuationService portssvc.ValuationSvcFacade) {
	h := newValuationHandler(valuationService)

	valuations := rg.Group("/valuations")
	{
		valuations.GET("", h.getValuation)
		valuations.GET("/revaluations", h.listRevaluations)
	}
	rg.GET("/balances", h.getBalance)
}

// getValuation godoc
// @Summary Run a valuation for a period
// @Description Values every transaction line in the period in base currency, splits tax, and derives currency revaluations
// @Tags valuations
// @Produce  json
// @Param   from query string true "Start date (YYYY-MM-DD), inclusive"
// @Param   to query string true "End date (YYYY-MM-DD), inclusive"
// @Success 200 {object} dto.ValuationReportResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "Ledger cannot be valued"
// @Failure 500 {object} map[string]string "Failed to run valuation"
// @Security BearerAuth
// @Router /valuations [get]
func (h *valuationHandler) getValuation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.PeriodQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query for GetValuation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	period, err := query.ToPeriod()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger = logger.With(slog.String("from", query.From), slog.String("to", query.To))
	logger.Info("Received request to run valuation")

	report, err := h.valuationService.RunValuation(c.Request.Context(), period)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to run valuation")
		return
	}

	logger.Info("Valuation completed successfully", slog.Int("lines", len(report.Lines)), slog.Int("skipped", len(report.Skipped)))
	c.JSON(http.StatusOK, dto.ToValuationReportResponse(report))
}

// listRevaluations godoc
// @Summary List currency revaluations for a period
// @Description Retrieves the unrealized gain or loss entries caused by exchange rate changes in the period
// @Tags valuations
// @Produce  json
// @Param   from query string true "Start date (YYYY-MM-DD), inclusive"
// @Param   to query string true "End date (YYYY-MM-DD), inclusive"
// @Success 200 {object} dto.ListRevaluationsResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "Ledger cannot be valued"
// @Failure 500 {object} map[string]string "Failed to list revaluations"
// @Security BearerAuth
// @Router /valuations/revaluations [get]
func (h *valuationHandler) listRevaluations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.PeriodQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query for ListRevaluations", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	period, err := query.ToPeriod()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entries, err := h.valuationService.ListRevaluations(c.Request.Context(), period)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list revaluations")
		return
	}

	logger.Info("Revaluations listed successfully", slog.Int("count", len(entries)))
	c.JSON(http.StatusOK, dto.ListRevaluationsResponse{
		From:         query.From,
		To:           query.To,
		Revaluations: dto.ToListRevaluationResponse(entries),
	})
}

// getBalance godoc
// @Summary Get a money account balance
// @Description Retrieves the balance of a bank or cash account after all activity on the given date
// @Tags balances
// @Produce  json
// @Param   account query string true "Money account name"
// @Param   asOf query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve balance"
// @Security BearerAuth
// @Router /balances [get]
func (h *valuationHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.BalanceQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query for GetBalance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	asOf, err := query.AsOfDate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger = logger.With(slog.String("account_name", query.Account), slog.String("as_of", query.AsOf))

	balance, err := h.valuationService.BalanceAsOf(c.Request.Context(), query.Account, asOf)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve balance")
		return
	}

	logger.Info("Balance retrieved successfully")
	c.JSON(http.StatusOK, dto.BalanceResponse{
		AccountName: query.Account,
		AsOf:        query.AsOf,
		Balance:     balance,
	})
}

// respondServiceError maps service errors onto HTTP statuses.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsFatal(err):
		logger.Error("Ledger cannot be valued", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
