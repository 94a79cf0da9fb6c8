package handlers

import (
	"net/http"

	"crm-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MarketingChannelHandler handles HTTP requests for marketing channel operations
type MarketingChannelHandler struct {
	marketingChannelService service.MarketingChannelServiceInterface
}

// NewMarketingChannelHandler creates a new marketing channel handler
func NewMarketingChannelHandler(marketingChannelService service.MarketingChannelServiceInterface) *MarketingChannelHandler {
	return &MarketingChannelHandler{
		marketingChannelService: marketingChannelService,
	}
}

// ListMarketingChannels handles GET /marketing-channels
// @Summary List marketing channels
// @Description Get all marketing channels with pagination, optionally filtered by medium label
// @Tags marketing-channels
// @Accept json
// @Produce json
// @Param medium query string false "Medium label filter (e.g. 'Email', 'Social Media')"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {object} service.MarketingChannelListResponse "Successfully retrieved marketing channels"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /marketing-channels [get]
func (h *MarketingChannelHandler) ListMarketingChannels(c *gin.Context) {
	page, pageSize := parsePagination(c)

	resp, err := h.marketingChannelService.GetAll(c.Query("medium"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateMarketingChannel handles POST /marketing-channels
// @Summary Create a marketing channel
// @Description Create a new marketing channel with a unique name
// @Tags marketing-channels
// @Accept json
// @Produce json
// @Param channel body service.CreateMarketingChannelRequest true "Marketing channel to create"
// @Success 201 {object} service.MarketingChannelResponse "Successfully created marketing channel"
// @Failure 400 {object} map[string]interface{} "Validation failed or name already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /marketing-channels [post]
func (h *MarketingChannelHandler) CreateMarketingChannel(c *gin.Context) {
	var req service.CreateMarketingChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.marketingChannelService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetMarketingChannel handles GET /marketing-channels/:id
// @Summary Get a marketing channel
// @Description Get a marketing channel by its ID
// @Tags marketing-channels
// @Accept json
// @Produce json
// @Param id path string true "Marketing channel ID"
// @Success 200 {object} service.MarketingChannelResponse "Successfully retrieved marketing channel"
// @Failure 404 {object} ErrorResponse "Marketing channel not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /marketing-channels/{id} [get]
func (h *MarketingChannelHandler) GetMarketingChannel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.marketingChannelService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateMarketingChannel handles PUT /marketing-channels/:id
// @Summary Update a marketing channel
// @Description Update a marketing channel's fields
// @Tags marketing-channels
// @Accept json
// @Produce json
// @Param id path string true "Marketing channel ID"
// @Param channel body service.UpdateMarketingChannelRequest true "Fields to update"
// @Success 200 {object} service.MarketingChannelResponse "Successfully updated marketing channel"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 404 {object} ErrorResponse "Marketing channel not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /marketing-channels/{id} [put]
func (h *MarketingChannelHandler) UpdateMarketingChannel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateMarketingChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.marketingChannelService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteMarketingChannel handles DELETE /marketing-channels/:id
// @Summary Delete a marketing channel
// @Description Delete a marketing channel by its ID
// @Tags marketing-channels
// @Accept json
// @Produce json
// @Param id path string true "Marketing channel ID"
// @Success 204 "Successfully deleted marketing channel"
// @Failure 404 {object} ErrorResponse "Marketing channel not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /marketing-channels/{id} [delete]
func (h *MarketingChannelHandler) DeleteMarketingChannel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.marketingChannelService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
