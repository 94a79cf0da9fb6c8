package handlers

import (
	"net/http"

	"crm-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LeadHandler handles HTTP requests for lead operations
type LeadHandler struct {
	leadService      service.LeadServiceInterface
	phoneCallService service.PhoneCallServiceInterface
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadService service.LeadServiceInterface, phoneCallService service.PhoneCallServiceInterface) *LeadHandler {
	return &LeadHandler{
		leadService:      leadService,
		phoneCallService: phoneCallService,
	}
}

// ListLeads handles GET /leads
// @Summary List leads
// @Description Get all leads with pagination, optionally filtered by status label
// @Tags leads
// @Accept json
// @Produce json
// @Param status query string false "Status label filter (e.g. 'New', 'Qualified')"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {object} service.LeadListResponse "Successfully retrieved leads"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leads [get]
func (h *LeadHandler) ListLeads(c *gin.Context) {
	page, pageSize := parsePagination(c)

	resp, err := h.leadService.GetAll(c.Query("status"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SearchLeads handles GET /leads/search
// @Summary Search leads
// @Description Search leads by name, email or company
// @Tags leads
// @Accept json
// @Produce json
// @Param q query string true "Search query"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {object} service.LeadListResponse "Successfully retrieved leads"
// @Failure 400 {object} ErrorResponse "q is required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leads/search [get]
func (h *LeadHandler) SearchLeads(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}

	page, pageSize := parsePagination(c)

	resp, err := h.leadService.Search(query, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateLead handles POST /leads
// @Summary Create a lead
// @Description Create a new lead with a unique email
// @Tags leads
// @Accept json
// @Produce json
// @Param lead body service.CreateLeadRequest true "Lead to create"
// @Success 201 {object} service.LeadResponse "Successfully created lead"
// @Failure 400 {object} map[string]interface{} "Validation failed or email already exists"
// @Failure 404 {object} ErrorResponse "Referenced channel not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leads [post]
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var req service.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.leadService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetLead handles GET /leads/:id
// @Summary Get a lead
// @Description Get a lead by its ID
// @Tags leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Success 200 {object} service.LeadResponse "Successfully retrieved lead"
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leads/{id} [get]
func (h *LeadHandler) GetLead(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.leadService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetLeadPhoneCalls handles GET /leads/:id/phone-calls
// @Summary List a lead's phone calls
// @Description Get phone calls recorded against a lead, with pagination
// @Tags leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {object} service.PhoneCallListResponse "Successfully retrieved phone calls"
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leads/{id}/phone-calls [get]
func (h *LeadHandler) GetLeadPhoneCalls(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	page, pageSize := parsePagination(c)

	resp, err := h.phoneCallService.GetByLead(id, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateLead handles PUT /leads/:id
// @Summary Update a lead
// @Description Update a lead's fields
// @Tags leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Param lead body service.UpdateLeadRequest true "Fields to update"
// @Success 200 {object} service.LeadResponse "Successfully updated lead"
// @Failure 400 {object} map[string]interface{} "Validation failed or email already exists"
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leads/{id} [put]
func (h *LeadHandler) UpdateLead(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.leadService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteLead handles DELETE /leads/:id
// @Summary Delete a lead
// @Description Delete a lead by its ID
// @Tags leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Success 204 "Successfully deleted lead"
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leads/{id} [delete]
func (h *LeadHandler) DeleteLead(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.leadService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
