package handlers

import (
	"net/http"

	"crm-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DirectoryHandler handles HTTP requests for corporate directory lookups
type DirectoryHandler struct {
	directoryService service.DirectoryServiceInterface
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(directoryService service.DirectoryServiceInterface) *DirectoryHandler {
	return &DirectoryHandler{
		directoryService: directoryService,
	}
}

// UserSearch handles GET /directory/users/search
// @Summary Search directory users
// @Description Search the corporate directory by common name prefix, used to pick lead owners
// @Tags directory
// @Accept json
// @Produce json
// @Param q query string true "Name prefix to search for"
// @Success 200 {array} service.DirectoryUser "Successfully retrieved users"
// @Failure 400 {object} ErrorResponse "q is required"
// @Failure 503 {object} ErrorResponse "Directory search not configured"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /directory/users/search [get]
func (h *DirectoryHandler) UserSearch(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}

	users, err := h.directoryService.SearchUsers(query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}
