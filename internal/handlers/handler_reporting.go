package handlers

import (
	"log/slog"
	"net/http"

	"github.com/sidharthsanthos/PKRA/internal/core/domain"
	portssvc "github.com/sidharthsanthos/PKRA/internal/core/ports/services"
	"github.com/sidharthsanthos/PKRA/internal/dto"
	"github.com/sidharthsanthos/PKRA/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for the stats views.
type reportingHandler struct {
	reportingService portssvc.ReportingSvc
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvc) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers reporting routes under a cycle.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvc) {
	h := newReportingHandler(reportingService)

	cycle := rg.Group("/cycles/:cycleID")
	{
		cycle.GET("/summary", h.getCycleSummary)
		cycle.GET("/statuses", h.listStatuses)
	}
}

// getCycleSummary godoc
// @Summary Get a cycle's collection summary
// @Description Totals received, pending, spent, and cash on hand, with per-mode and per-division breakdowns.
// @Tags reporting
// @Produce  json
// @Param   cycleID path string true "Cycle ID"
// @Success 200 {object} dto.CycleSummaryResponse
// @Failure 404 {object} map[string]string "Cycle not found"
// @Router /cycles/{cycleID}/summary [get]
func (h *reportingHandler) getCycleSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cycleID := c.Param("cycleID")

	summary, err := h.reportingService.CycleSummary(c.Request.Context(), cycleID)
	if err != nil {
		logger.Warn("Failed to get cycle summary", slog.String("cycle_id", cycleID), slog.String("error", err.Error()))
		respondWithError(c, err, "Failed to retrieve summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToCycleSummaryResponse(summary))
}

// listStatuses godoc
// @Summary List per-house statuses for a cycle
// @Description Lists houses joined with their payment statuses, optionally filtered by status.
// @Tags reporting
// @Produce  json
// @Param   cycleID path string true "Cycle ID"
// @Param   status query string false "Status filter (PENDING, PARTIAL, COMPLETED)"
// @Success 200 {object} dto.ListStatusesResponse
// @Failure 400 {object} map[string]string "Invalid status filter"
// @Failure 404 {object} map[string]string "Cycle not found"
// @Router /cycles/{cycleID}/statuses [get]
func (h *reportingHandler) listStatuses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cycleID := c.Param("cycleID")

	var params dto.ListStatusesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListStatuses", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	var status *domain.PaymentStatus
	if params.Status != "" {
		s := domain.PaymentStatus(params.Status)
		status = &s
	}

	rows, err := h.reportingService.ListStatuses(c.Request.Context(), cycleID, status)
	if err != nil {
		logger.Warn("Failed to list statuses", slog.String("cycle_id", cycleID), slog.String("error", err.Error()))
		respondWithError(c, err, "Failed to list statuses")
		return
	}

	c.JSON(http.StatusOK, dto.ToListStatusesResponse(rows))
}
