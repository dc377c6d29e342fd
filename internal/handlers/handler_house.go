package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/sidharthsanthos/PKRA/internal/core/ports/services"
	"github.com/sidharthsanthos/PKRA/internal/dto"
	"github.com/sidharthsanthos/PKRA/internal/middleware"
	"github.com/gin-gonic/gin"
)

// houseHandler handles HTTP requests related to the house directory.
type houseHandler struct {
	houseService portssvc.HouseSvcFacade
}

// newHouseHandler creates a new houseHandler.
func newHouseHandler(hs portssvc.HouseSvcFacade) *houseHandler {
	return &houseHandler{
		houseService: hs,
	}
}

// registerHouseRoutes registers routes related to houses.
func registerHouseRoutes(rg *gin.RouterGroup, houseService portssvc.HouseSvcFacade) {
	h := newHouseHandler(houseService)

	houses := rg.Group("/houses")
	{
		houses.POST("", h.createHouse)
		houses.GET("", h.listHouses)
		houses.GET("/:houseNumber", h.getHouse)
		houses.PUT("/:houseNumber", h.updateHouse)
	}
}

// createHouse godoc
// @Summary Onboard a new house
// @Tags houses
// @Accept  json
// @Produce  json
// @Param   house body dto.CreateHouseRequest true "House details"
// @Success 201 {object} dto.HouseResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "House number already exists"
// @Router /houses [post]
func (h *houseHandler) createHouse(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateHouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateHouse", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	operatorID, ok := middleware.GetOperatorFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-Operator-ID header is required"})
		return
	}

	house, err := h.houseService.CreateHouse(c.Request.Context(), req, operatorID)
	if err != nil {
		logger.Warn("Failed to create house", slog.String("house_number", req.HouseNumber), slog.String("error", err.Error()))
		respondWithError(c, err, "Failed to create house")
		return
	}

	logger.Info("House created", slog.String("house_number", house.HouseNumber))
	c.JSON(http.StatusCreated, dto.ToHouseResponse(house))
}

// listHouses godoc
// @Summary List houses
// @Description Lists houses, optionally filtered by division and owner name substring.
// @Tags houses
// @Produce  json
// @Param   division query string false "Division (A-E)"
// @Param   name query string false "Owner name substring, case-insensitive"
// @Success 200 {object} dto.ListHousesResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Router /houses [get]
func (h *houseHandler) listHouses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListHousesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListHouses", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	houses, err := h.houseService.ListHouses(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list houses", slog.String("error", err.Error()))
		respondWithError(c, err, "Failed to list houses")
		return
	}

	c.JSON(http.StatusOK, dto.ToListHousesResponse(houses))
}

// getHouse godoc
// @Summary Get a house by number
// @Tags houses
// @Produce  json
// @Param   houseNumber path string true "House number"
// @Success 200 {object} dto.HouseResponse
// @Failure 404 {object} map[string]string "House not found"
// @Router /houses/{houseNumber} [get]
func (h *houseHandler) getHouse(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	houseNumber := c.Param("houseNumber")

	house, err := h.houseService.GetHouseByNumber(c.Request.Context(), houseNumber)
	if err != nil {
		logger.Warn("Failed to get house", slog.String("house_number", houseNumber), slog.String("error", err.Error()))
		respondWithError(c, err, "Failed to retrieve house")
		return
	}

	c.JSON(http.StatusOK, dto.ToHouseResponse(house))
}

// updateHouse godoc
// @Summary Correct a house's details
// @Description Updates owner, division or phone. Omitted fields are unchanged.
// @Tags houses
// @Accept  json
// @Produce  json
// @Param   houseNumber path string true "House number"
// @Param   house body dto.UpdateHouseRequest true "Fields to update"
// @Success 200 {object} dto.HouseResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "House not found"
// @Router /houses/{houseNumber} [put]
func (h *houseHandler) updateHouse(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	houseNumber := c.Param("houseNumber")

	var req dto.UpdateHouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateHouse", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	operatorID, ok := middleware.GetOperatorFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-Operator-ID header is required"})
		return
	}

	house, err := h.houseService.UpdateHouse(c.Request.Context(), houseNumber, req, operatorID)
	if err != nil {
		logger.Warn("Failed to update house", slog.String("house_number", houseNumber), slog.String("error", err.Error()))
		respondWithError(c, err, "Failed to update house")
		return
	}

	c.JSON(http.StatusOK, dto.ToHouseResponse(house))
}
