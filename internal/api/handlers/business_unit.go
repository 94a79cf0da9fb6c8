package handlers

import (
	"net/http"

	"crm-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BusinessUnitHandler handles HTTP requests for business unit operations
type BusinessUnitHandler struct {
	businessUnitService service.BusinessUnitServiceInterface
}

// NewBusinessUnitHandler creates a new business unit handler
func NewBusinessUnitHandler(businessUnitService service.BusinessUnitServiceInterface) *BusinessUnitHandler {
	return &BusinessUnitHandler{
		businessUnitService: businessUnitService,
	}
}

// ListBusinessUnits handles GET /business-units
// @Summary List business units
// @Description Get all business units with pagination support
// @Tags business-units
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {object} service.BusinessUnitListResponse "Successfully retrieved business units"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /business-units [get]
func (h *BusinessUnitHandler) ListBusinessUnits(c *gin.Context) {
	page, pageSize := parsePagination(c)

	resp, err := h.businessUnitService.GetAll(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateBusinessUnit handles POST /business-units
// @Summary Create a business unit
// @Description Create a new business unit with a unique 4-character code
// @Tags business-units
// @Accept json
// @Produce json
// @Param businessUnit body service.CreateBusinessUnitRequest true "Business unit to create"
// @Success 201 {object} service.BusinessUnitResponse "Successfully created business unit"
// @Failure 400 {object} map[string]interface{} "Validation failed or code already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /business-units [post]
func (h *BusinessUnitHandler) CreateBusinessUnit(c *gin.Context) {
	var req service.CreateBusinessUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.businessUnitService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetBusinessUnit handles GET /business-units/:code
// @Summary Get a business unit
// @Description Get a business unit by its code
// @Tags business-units
// @Accept json
// @Produce json
// @Param code path string true "Business unit code"
// @Success 200 {object} service.BusinessUnitResponse "Successfully retrieved business unit"
// @Failure 404 {object} ErrorResponse "Business unit not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /business-units/{code} [get]
func (h *BusinessUnitHandler) GetBusinessUnit(c *gin.Context) {
	resp, err := h.businessUnitService.GetByCode(c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetBusinessUnitChildren handles GET /business-units/:code/children
// @Summary List child business units
// @Description Get the direct children of a business unit
// @Tags business-units
// @Accept json
// @Produce json
// @Param code path string true "Business unit code"
// @Success 200 {array} service.BusinessUnitResponse "Successfully retrieved children"
// @Failure 404 {object} ErrorResponse "Business unit not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /business-units/{code}/children [get]
func (h *BusinessUnitHandler) GetBusinessUnitChildren(c *gin.Context) {
	resp, err := h.businessUnitService.GetChildren(c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateBusinessUnit handles PUT /business-units/:code
// @Summary Update a business unit
// @Description Update a business unit; the code itself is immutable
// @Tags business-units
// @Accept json
// @Produce json
// @Param code path string true "Business unit code"
// @Param businessUnit body service.UpdateBusinessUnitRequest true "Fields to update"
// @Success 200 {object} service.BusinessUnitResponse "Successfully updated business unit"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 404 {object} ErrorResponse "Business unit not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /business-units/{code} [put]
func (h *BusinessUnitHandler) UpdateBusinessUnit(c *gin.Context) {
	var req service.UpdateBusinessUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.businessUnitService.Update(c.Param("code"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteBusinessUnit handles DELETE /business-units/:code
// @Summary Delete a business unit
// @Description Delete a business unit by its code
// @Tags business-units
// @Accept json
// @Produce json
// @Param code path string true "Business unit code"
// @Success 204 "Successfully deleted business unit"
// @Failure 404 {object} ErrorResponse "Business unit not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /business-units/{code} [delete]
func (h *BusinessUnitHandler) DeleteBusinessUnit(c *gin.Context) {
	if err := h.businessUnitService.Delete(c.Param("code")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
