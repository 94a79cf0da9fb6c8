package handlers

import (
	"net/http"

	"crm-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SalesChannelHandler handles HTTP requests for sales channel operations
type SalesChannelHandler struct {
	salesChannelService service.SalesChannelServiceInterface
}

// NewSalesChannelHandler creates a new sales channel handler
func NewSalesChannelHandler(salesChannelService service.SalesChannelServiceInterface) *SalesChannelHandler {
	return &SalesChannelHandler{
		salesChannelService: salesChannelService,
	}
}

// ListSalesChannels handles GET /sales-channels
// @Summary List sales channels
// @Description Get all sales channels with pagination support
// @Tags sales-channels
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {object} service.SalesChannelListResponse "Successfully retrieved sales channels"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /sales-channels [get]
func (h *SalesChannelHandler) ListSalesChannels(c *gin.Context) {
	page, pageSize := parsePagination(c)

	resp, err := h.salesChannelService.GetAll(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateSalesChannel handles POST /sales-channels
// @Summary Create a sales channel
// @Description Create a new sales channel with a unique 4-character code
// @Tags sales-channels
// @Accept json
// @Produce json
// @Param salesChannel body service.CreateSalesChannelRequest true "Sales channel to create"
// @Success 201 {object} service.SalesChannelResponse "Successfully created sales channel"
// @Failure 400 {object} map[string]interface{} "Validation failed or code already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /sales-channels [post]
func (h *SalesChannelHandler) CreateSalesChannel(c *gin.Context) {
	var req service.CreateSalesChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.salesChannelService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetSalesChannel handles GET /sales-channels/:code
// @Summary Get a sales channel
// @Description Get a sales channel by its code
// @Tags sales-channels
// @Accept json
// @Produce json
// @Param code path string true "Sales channel code"
// @Success 200 {object} service.SalesChannelResponse "Successfully retrieved sales channel"
// @Failure 404 {object} ErrorResponse "Sales channel not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /sales-channels/{code} [get]
func (h *SalesChannelHandler) GetSalesChannel(c *gin.Context) {
	resp, err := h.salesChannelService.GetByCode(c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateSalesChannel handles PUT /sales-channels/:code
// @Summary Update a sales channel
// @Description Update a sales channel; the code itself is immutable
// @Tags sales-channels
// @Accept json
// @Produce json
// @Param code path string true "Sales channel code"
// @Param salesChannel body service.UpdateSalesChannelRequest true "Fields to update"
// @Success 200 {object} service.SalesChannelResponse "Successfully updated sales channel"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 404 {object} ErrorResponse "Sales channel not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /sales-channels/{code} [put]
func (h *SalesChannelHandler) UpdateSalesChannel(c *gin.Context) {
	var req service.UpdateSalesChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.salesChannelService.Update(c.Param("code"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteSalesChannel handles DELETE /sales-channels/:code
// @Summary Delete a sales channel
// @Description Delete a sales channel by its code
// @Tags sales-channels
// @Accept json
// @Produce json
// @Param code path string true "Sales channel code"
// @Success 204 "Successfully deleted sales channel"
// @Failure 404 {object} ErrorResponse "Sales channel not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /sales-channels/{code} [delete]
func (h *SalesChannelHandler) DeleteSalesChannel(c *gin.Context) {
	if err := h.salesChannelService.Delete(c.Param("code")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
