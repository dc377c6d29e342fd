package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/sidharthsanthos/PKRA/internal/core/ports/services"
	"github.com/sidharthsanthos/PKRA/internal/dto"
	"github.com/sidharthsanthos/PKRA/internal/middleware"
	"github.com/gin-gonic/gin"
)

// paymentHandler handles HTTP requests for the dues ledger and its
// materialized statuses.
type paymentHandler struct {
	paymentService    portssvc.PaymentSvcFacade
	reconcilerService portssvc.ReconcilerSvc
}

// newPaymentHandler creates a new paymentHandler.
func newPaymentHandler(ps portssvc.PaymentSvcFacade, rs portssvc.ReconcilerSvc) *paymentHandler {
	return &paymentHandler{
		paymentService:    ps,
		reconcilerService: rs,
	}
}

// registerPaymentRoutes registers ledger routes under a cycle.
func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade, reconcilerService portssvc.ReconcilerSvc) {
	h := newPaymentHandler(paymentService, reconcilerService)

	cycle := rg.Group("/cycles/:cycleID")
	{
		cycle.POST("/payments", h.recordPayment)
		cycle.GET("/payments", h.listCyclePayments)
		cycle.POST("/reconcile", h.sweepCycle)

		house := cycle.Group("/houses/:houseNumber")
		{
			house.GET("/payments", h.listHousePayments)
			house.GET("/status", h.getHouseStatus)
			house.POST("/reconcile", h.reconcileHouse)
		}
	}
}

// recordPayment godoc
// @Summary Record a payment
// @Description Appends a ledger entry and updates the house's status atomically. Rejected payments leave no trace.
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   cycleID path string true "Cycle ID"
// @Param   payment body dto.RecordPaymentRequest true "Payment details"
// @Success 201 {object} dto.RecordPaymentResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "House or cycle not found"
// @Failure 409 {object} map[string]string "Receipt number already used this cycle"
// @Failure 422 {object} map[string]string "Payment exceeds remaining balance"
// @Router /cycles/{cycleID}/payments [post]
func (h *paymentHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cycleID := c.Param("cycleID")

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	operatorID, ok := middleware.GetOperatorFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-Operator-ID header is required"})
		return
	}

	payment, status, err := h.paymentService.RecordPayment(c.Request.Context(), cycleID, req, operatorID)
	if err != nil {
		logger.Warn("Failed to record payment",
			slog.String("cycle_id", cycleID),
			slog.String("house_number", req.HouseNumber),
			slog.String("error", err.Error()),
		)
		respondWithError(c, err, "Failed to record payment")
		return
	}

	c.JSON(http.StatusCreated, dto.RecordPaymentResponse{
		Payment: dto.ToPaymentResponse(payment),
		Status:  dto.ToStatusResponse(status),
	})
}

// listCyclePayments godoc
// @Summary List a cycle's payments
// @Description Lists ledger entries for a cycle, most recent first, optionally filtered by mode.
// @Tags payments
// @Produce  json
// @Param   cycleID path string true "Cycle ID"
// @Param   mode query string false "Payment mode (CASH or UPI)"
// @Param   limit query int false "Page size"
// @Param   nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 404 {object} map[string]string "Cycle not found"
// @Router /cycles/{cycleID}/payments [get]
func (h *paymentHandler) listCyclePayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cycleID := c.Param("cycleID")

	var params dto.ListPaymentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListCyclePayments", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.paymentService.ListPaymentsByCycle(c.Request.Context(), cycleID, params)
	if err != nil {
		logger.Warn("Failed to list cycle payments", slog.String("cycle_id", cycleID), slog.String("error", err.Error()))
		respondWithError(c, err, "Failed to list payments")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// listHousePayments godoc
// @Summary List a house's payments for a cycle
// @Tags payments
// @Produce  json
// @Param   cycleID path string true "Cycle ID"
// @Param   houseNumber path string true "House number"
// @Param   limit query int false "Page size"
// @Param   nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 404 {object} map[string]string "House not found"
// @Router /cycles/{cycleID}/houses/{houseNumber}/payments [get]
func (h *paymentHandler) listHousePayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cycleID := c.Param("cycleID")
	houseNumber := c.Param("houseNumber")

	var params dto.ListPaymentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListHousePayments", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.paymentService.ListPaymentsByHouse(c.Request.Context(), cycleID, houseNumber, params)
	if err != nil {
		logger.Warn("Failed to list house payments",
			slog.String("cycle_id", cycleID),
			slog.String("house_number", houseNumber),
			slog.String("error", err.Error()),
		)
		respondWithError(c, err, "Failed to list payments")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getHouseStatus godoc
// @Summary Get a house's payment status for a cycle
// @Description Returns paid, pending, and completion status. An untouched pair reads as a zeroed PENDING status.
// @Tags payments
// @Produce  json
// @Param   cycleID path string true "Cycle ID"
// @Param   houseNumber path string true "House number"
// @Success 200 {object} dto.HouseStatusResponse
// @Failure 404 {object} map[string]string "House or cycle not found"
// @Router /cycles/{cycleID}/houses/{houseNumber}/status [get]
func (h *paymentHandler) getHouseStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cycleID := c.Param("cycleID")
	houseNumber := c.Param("houseNumber")

	resp, err := h.paymentService.GetHouseStatus(c.Request.Context(), cycleID, houseNumber)
	if err != nil {
		logger.Warn("Failed to get house status",
			slog.String("cycle_id", cycleID),
			slog.String("house_number", houseNumber),
			slog.String("error", err.Error()),
		)
		respondWithError(c, err, "Failed to retrieve status")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// reconcileHouse godoc
// @Summary Rebuild one house's status from the ledger
// @Description Recomputes the (house, cycle) status row. Idempotent; safe to call at any time.
// @Tags reconcile
// @Produce  json
// @Param   cycleID path string true "Cycle ID"
// @Param   houseNumber path string true "House number"
// @Success 200 {object} dto.ReconcileResponse
// @Failure 404 {object} map[string]string "House or cycle not found"
// @Router /cycles/{cycleID}/houses/{houseNumber}/reconcile [post]
func (h *paymentHandler) reconcileHouse(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cycleID := c.Param("cycleID")
	houseNumber := c.Param("houseNumber")

	operatorID, ok := middleware.GetOperatorFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-Operator-ID header is required"})
		return
	}

	status, err := h.reconcilerService.Reconcile(c.Request.Context(), cycleID, houseNumber, operatorID)
	if err != nil {
		logger.Warn("Failed to reconcile house",
			slog.String("cycle_id", cycleID),
			slog.String("house_number", houseNumber),
			slog.String("error", err.Error()),
		)
		respondWithError(c, err, "Failed to reconcile")
		return
	}

	c.JSON(http.StatusOK, dto.ReconcileResponse{Status: dto.ToStatusResponse(status)})
}

// sweepCycle godoc
// @Summary Verify and repair all statuses of a cycle
// @Description Recomputes every status row of the cycle from the ledger, reporting how many had drifted.
// @Tags reconcile
// @Produce  json
// @Param   cycleID path string true "Cycle ID"
// @Success 200 {object} dto.SweepResponse
// @Failure 404 {object} map[string]string "Cycle not found"
// @Router /cycles/{cycleID}/reconcile [post]
func (h *paymentHandler) sweepCycle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cycleID := c.Param("cycleID")

	operatorID, ok := middleware.GetOperatorFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-Operator-ID header is required"})
		return
	}

	repaired, err := h.reconcilerService.SweepCycle(c.Request.Context(), cycleID, operatorID)
	if err != nil {
		logger.Warn("Failed to sweep cycle", slog.String("cycle_id", cycleID), slog.String("error", err.Error()))
		respondWithError(c, err, "Failed to sweep cycle")
		return
	}

	c.JSON(http.StatusOK, dto.SweepResponse{CycleID: cycleID, RepairedCount: repaired})
}
