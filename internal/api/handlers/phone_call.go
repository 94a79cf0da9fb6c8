package handlers

import (
	"net/http"

	"crm-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PhoneCallHandler handles HTTP requests for phone call operations
type PhoneCallHandler struct {
	phoneCallService service.PhoneCallServiceInterface
}

// NewPhoneCallHandler creates a new phone call handler
func NewPhoneCallHandler(phoneCallService service.PhoneCallServiceInterface) *PhoneCallHandler {
	return &PhoneCallHandler{
		phoneCallService: phoneCallService,
	}
}

// ListPhoneCalls handles GET /phone-calls
// @Summary List phone calls
// @Description Get all phone calls with pagination, optionally filtered by status label
// @Tags phone-calls
// @Accept json
// @Produce json
// @Param status query string false "Status label filter (e.g. 'Planned', 'Completed')"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {object} service.PhoneCallListResponse "Successfully retrieved phone calls"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /phone-calls [get]
func (h *PhoneCallHandler) ListPhoneCalls(c *gin.Context) {
	page, pageSize := parsePagination(c)

	resp, err := h.phoneCallService.GetAll(c.Query("status"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreatePhoneCall handles POST /phone-calls
// @Summary Create a phone call
// @Description Log a new phone call activity
// @Tags phone-calls
// @Accept json
// @Produce json
// @Param phoneCall body service.CreatePhoneCallRequest true "Phone call to create"
// @Success 201 {object} service.PhoneCallResponse "Successfully created phone call"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 404 {object} ErrorResponse "Referenced lead not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /phone-calls [post]
func (h *PhoneCallHandler) CreatePhoneCall(c *gin.Context) {
	var req service.CreatePhoneCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.phoneCallService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetPhoneCall handles GET /phone-calls/:id
// @Summary Get a phone call
// @Description Get a phone call by its ID
// @Tags phone-calls
// @Accept json
// @Produce json
// @Param id path string true "Phone call ID"
// @Success 200 {object} service.PhoneCallResponse "Successfully retrieved phone call"
// @Failure 404 {object} ErrorResponse "Phone call not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /phone-calls/{id} [get]
func (h *PhoneCallHandler) GetPhoneCall(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.phoneCallService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdatePhoneCall handles PUT /phone-calls/:id
// @Summary Update a phone call
// @Description Update a phone call; end time must remain after start time
// @Tags phone-calls
// @Accept json
// @Produce json
// @Param id path string true "Phone call ID"
// @Param phoneCall body service.UpdatePhoneCallRequest true "Fields to update"
// @Success 200 {object} service.PhoneCallResponse "Successfully updated phone call"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 404 {object} ErrorResponse "Phone call not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /phone-calls/{id} [put]
func (h *PhoneCallHandler) UpdatePhoneCall(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdatePhoneCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.phoneCallService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeletePhoneCall handles DELETE /phone-calls/:id
// @Summary Delete a phone call
// @Description Delete a phone call by its ID
// @Tags phone-calls
// @Accept json
// @Produce json
// @Param id path string true "Phone call ID"
// @Success 204 "Successfully deleted phone call"
// @Failure 404 {object} ErrorResponse "Phone call not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /phone-calls/{id} [delete]
func (h *PhoneCallHandler) DeletePhoneCall(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.phoneCallService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
