package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/sidharthsanthos/PKRA/internal/core/ports/services"
	"github.com/sidharthsanthos/PKRA/internal/dto"
	"github.com/sidharthsanthos/PKRA/internal/middleware"
	"github.com/gin-gonic/gin"
)

// cycleHandler handles HTTP requests related to association cycles.
type cycleHandler struct {
	cycleService portssvc.CycleSvcFacade
}

// newCycleHandler creates a new cycleHandler.
func newCycleHandler(cs portssvc.CycleSvcFacade) *cycleHandler {
	return &cycleHandler{
		cycleService: cs,
	}
}

// registerCycleRoutes registers routes related to cycles.
func registerCycleRoutes(rg *gin.RouterGroup, cycleService portssvc.CycleSvcFacade) {
	h := newCycleHandler(cycleService)

	cycles := rg.Group("/cycles")
	{
		cycles.POST("", h.createCycle)
		cycles.GET("", h.listCycles)
		cycles.GET("/current", h.getCurrentCycle)
		cycles.GET("/:cycleID", h.getCycle)
		cycles.PUT("/:cycleID", h.updateCycle)
	}
}

// createCycle godoc
// @Summary Open a new collection year
// @Description Creates a cycle with its annual fee and due date. At most one cycle per year.
// @Tags cycles
// @Accept  json
// @Produce  json
// @Param   cycle body dto.CreateCycleRequest true "Cycle details"
// @Success 201 {object} dto.CycleResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Cycle for the year already exists"
// @Router /cycles [post]
func (h *cycleHandler) createCycle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCycle", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	operatorID, ok := middleware.GetOperatorFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-Operator-ID header is required"})
		return
	}

	cycle, err := h.cycleService.CreateCycle(c.Request.Context(), req, operatorID)
	if err != nil {
		logger.Warn("Failed to create cycle", slog.Int("year", req.Year), slog.String("error", err.Error()))
		respondWithError(c, err, "Failed to create cycle")
		return
	}

	logger.Info("Cycle created", slog.String("cycle_id", cycle.CycleID), slog.Int("year", cycle.Year))
	c.JSON(http.StatusCreated, dto.ToCycleResponse(cycle))
}

// listCycles godoc
// @Summary List cycles
// @Description Lists all cycles, newest collection year first.
// @Tags cycles
// @Produce  json
// @Success 200 {object} dto.ListCyclesResponse
// @Router /cycles [get]
func (h *cycleHandler) listCycles(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	cycles, err := h.cycleService.ListCycles(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list cycles", slog.String("error", err.Error()))
		respondWithError(c, err, "Failed to list cycles")
		return
	}

	c.JSON(http.StatusOK, dto.ToListCyclesResponse(cycles))
}

// getCurrentCycle godoc
// @Summary Get the current cycle
// @Description Resolves the cycle new payments default to, per the fiscal rollover rule.
// @Tags cycles
// @Produce  json
// @Success 200 {object} dto.CycleResponse
// @Failure 404 {object} map[string]string "No cycle opened for the current collection year"
// @Router /cycles/current [get]
func (h *cycleHandler) getCurrentCycle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	cycle, err := h.cycleService.CurrentCycle(c.Request.Context(), time.Now().UTC())
	if err != nil {
		logger.Warn("Failed to resolve current cycle", slog.String("error", err.Error()))
		respondWithError(c, err, "Failed to resolve current cycle")
		return
	}

	c.JSON(http.StatusOK, dto.ToCycleResponse(cycle))
}

// getCycle godoc
// @Summary Get a cycle by ID
// @Tags cycles
// @Produce  json
// @Param   cycleID path string true "Cycle ID"
// @Success 200 {object} dto.CycleResponse
// @Failure 404 {object} map[string]string "Cycle not found"
// @Router /cycles/{cycleID} [get]
func (h *cycleHandler) getCycle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cycleID := c.Param("cycleID")

	cycle, err := h.cycleService.GetCycleByID(c.Request.Context(), cycleID)
	if err != nil {
		logger.Warn("Failed to get cycle", slog.String("cycle_id", cycleID), slog.String("error", err.Error()))
		respondWithError(c, err, "Failed to retrieve cycle")
		return
	}

	c.JSON(http.StatusOK, dto.ToCycleResponse(cycle))
}

// updateCycle godoc
// @Summary Correct a cycle's fee or due date
// @Description Updates fee/due date. Existing house statuses are not recomputed by this call.
// @Tags cycles
// @Accept  json
// @Produce  json
// @Param   cycleID path string true "Cycle ID"
// @Param   cycle body dto.UpdateCycleRequest true "Fields to update"
// @Success 200 {object} dto.CycleResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Cycle not found"
// @Router /cycles/{cycleID} [put]
func (h *cycleHandler) updateCycle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cycleID := c.Param("cycleID")

	var req dto.UpdateCycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCycle", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	operatorID, ok := middleware.GetOperatorFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-Operator-ID header is required"})
		return
	}

	cycle, err := h.cycleService.UpdateCycle(c.Request.Context(), cycleID, req, operatorID)
	if err != nil {
		logger.Warn("Failed to update cycle", slog.String("cycle_id", cycleID), slog.String("error", err.Error()))
		respondWithError(c, err, "Failed to update cycle")
		return
	}

	c.JSON(http.StatusOK, dto.ToCycleResponse(cycle))
}
