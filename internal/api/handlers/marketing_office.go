package handlers

import (
	"net/http"

	"crm-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MarketingOfficeHandler handles HTTP requests for marketing office operations
type MarketingOfficeHandler struct {
	marketingOfficeService service.MarketingOfficeServiceInterface
}

// NewMarketingOfficeHandler creates a new marketing office handler
func NewMarketingOfficeHandler(marketingOfficeService service.MarketingOfficeServiceInterface) *MarketingOfficeHandler {
	return &MarketingOfficeHandler{
		marketingOfficeService: marketingOfficeService,
	}
}

// ListMarketingOffices handles GET /marketing-offices
// @Summary List marketing offices
// @Description Get all marketing offices with pagination, optionally filtered by country
// @Tags marketing-offices
// @Accept json
// @Produce json
// @Param country query string false "ISO 3166-1 alpha-2 country code filter"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {object} service.MarketingOfficeListResponse "Successfully retrieved marketing offices"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /marketing-offices [get]
func (h *MarketingOfficeHandler) ListMarketingOffices(c *gin.Context) {
	page, pageSize := parsePagination(c)

	resp, err := h.marketingOfficeService.GetAll(c.Query("country"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateMarketingOffice handles POST /marketing-offices
// @Summary Create a marketing office
// @Description Create a new marketing office with a unique 4-character code
// @Tags marketing-offices
// @Accept json
// @Produce json
// @Param office body service.CreateMarketingOfficeRequest true "Marketing office to create"
// @Success 201 {object} service.MarketingOfficeResponse "Successfully created marketing office"
// @Failure 400 {object} map[string]interface{} "Validation failed or code already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /marketing-offices [post]
func (h *MarketingOfficeHandler) CreateMarketingOffice(c *gin.Context) {
	var req service.CreateMarketingOfficeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.marketingOfficeService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetMarketingOffice handles GET /marketing-offices/:code
// @Summary Get a marketing office
// @Description Get a marketing office by its code
// @Tags marketing-offices
// @Accept json
// @Produce json
// @Param code path string true "Marketing office code"
// @Success 200 {object} service.MarketingOfficeResponse "Successfully retrieved marketing office"
// @Failure 404 {object} ErrorResponse "Marketing office not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /marketing-offices/{code} [get]
func (h *MarketingOfficeHandler) GetMarketingOffice(c *gin.Context) {
	resp, err := h.marketingOfficeService.GetByCode(c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateMarketingOffice handles PUT /marketing-offices/:code
// @Summary Update a marketing office
// @Description Update a marketing office; the code itself is immutable
// @Tags marketing-offices
// @Accept json
// @Produce json
// @Param code path string true "Marketing office code"
// @Param office body service.UpdateMarketingOfficeRequest true "Fields to update"
// @Success 200 {object} service.MarketingOfficeResponse "Successfully updated marketing office"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 404 {object} ErrorResponse "Marketing office not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /marketing-offices/{code} [put]
func (h *MarketingOfficeHandler) UpdateMarketingOffice(c *gin.Context) {
	var req service.UpdateMarketingOfficeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.marketingOfficeService.Update(c.Param("code"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteMarketingOffice handles DELETE /marketing-offices/:code
// @Summary Delete a marketing office
// @Description Delete a marketing office by its code
// @Tags marketing-offices
// @Accept json
// @Produce json
// @Param code path string true "Marketing office code"
// @Success 204 "Successfully deleted marketing office"
// @Failure 404 {object} ErrorResponse "Marketing office not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /marketing-offices/{code} [delete]
func (h *MarketingOfficeHandler) DeleteMarketingOffice(c *gin.Context) {
	if err := h.marketingOfficeService.Delete(c.Param("code")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
