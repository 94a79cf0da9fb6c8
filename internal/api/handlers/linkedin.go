package handlers

import (
	"net/http"

	"crm-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LinkedInHandler handles HTTP requests for the LinkedIn integration
type LinkedInHandler struct {
	linkedInService service.LinkedInServiceInterface
}

// NewLinkedInHandler creates a new LinkedIn handler
func NewLinkedInHandler(linkedInService service.LinkedInServiceInterface) *LinkedInHandler {
	return &LinkedInHandler{
		linkedInService: linkedInService,
	}
}

// Start handles GET /linkedin/auth/start
// @Summary Start LinkedIn authorization
// @Description Get the LinkedIn OAuth authorization URL
// @Tags linkedin
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Authorization URL"
// @Failure 503 {object} ErrorResponse "LinkedIn integration not configured"
// @Security BearerAuth
// @Router /linkedin/auth/start [get]
func (h *LinkedInHandler) Start(c *gin.Context) {
	state := uuid.New().String()

	url, err := h.linkedInService.AuthURL(state)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url, "state": state})
}

// Callback handles GET /linkedin/auth/callback
// @Summary Complete LinkedIn authorization
// @Description Exchange the authorization code for an access token
// @Tags linkedin
// @Accept json
// @Produce json
// @Param code query string true "Authorization code"
// @Success 200 {object} service.LinkedInTokenResponse "Access token"
// @Failure 400 {object} ErrorResponse "code is required"
// @Failure 503 {object} ErrorResponse "LinkedIn integration not configured"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /linkedin/auth/callback [get]
func (h *LinkedInHandler) Callback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code is required"})
		return
	}

	resp, err := h.linkedInService.ExchangeCode(c.Request.Context(), code)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ImportLeads handles POST /linkedin/import
// @Summary Import leads from LinkedIn
// @Description Import a batch of campaign leads; leads with known emails are skipped
// @Tags linkedin
// @Accept json
// @Produce json
// @Param import body service.LinkedInImportRequest true "Leads to import"
// @Success 200 {object} service.LeadImportResult "Import summary"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /linkedin/import [post]
func (h *LinkedInHandler) ImportLeads(c *gin.Context) {
	var req service.LinkedInImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.linkedInService.ImportLeads(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
