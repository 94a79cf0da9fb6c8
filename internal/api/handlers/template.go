package handlers

import (
	"io"
	"net/http"

	"crm-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TemplateHandler handles HTTP requests for template operations
type TemplateHandler struct {
	templateService service.TemplateServiceInterface
	maxUploadBytes  int64
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(templateService service.TemplateServiceInterface, maxUploadBytes int64) *TemplateHandler {
	return &TemplateHandler{
		templateService: templateService,
		maxUploadBytes:  maxUploadBytes,
	}
}

// ListTemplates handles GET /templates
// @Summary List templates
// @Description Get all templates with pagination, optionally filtered by format label
// @Tags templates
// @Accept json
// @Produce json
// @Param format query string false "Format label filter (e.g. 'Text Based', 'HTML', 'File Based')"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {object} service.TemplateListResponse "Successfully retrieved templates"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /templates [get]
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	page, pageSize := parsePagination(c)

	resp, err := h.templateService.GetAll(c.Query("format"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateTemplate handles POST /templates
// @Summary Create a template
// @Description Create a new template with a unique name
// @Tags templates
// @Accept json
// @Produce json
// @Param template body service.CreateTemplateRequest true "Template to create"
// @Success 201 {object} service.TemplateResponse "Successfully created template"
// @Failure 400 {object} map[string]interface{} "Validation failed or name already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /templates [post]
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	var req service.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.templateService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetTemplate handles GET /templates/:id
// @Summary Get a template
// @Description Get a template by its ID
// @Tags templates
// @Accept json
// @Produce json
// @Param id path string true "Template ID"
// @Success 200 {object} service.TemplateResponse "Successfully retrieved template"
// @Failure 404 {object} ErrorResponse "Template not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /templates/{id} [get]
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.templateService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateTemplate handles PUT /templates/:id
// @Summary Update a template
// @Description Update a template; format and body are re-checked together
// @Tags templates
// @Accept json
// @Produce json
// @Param id path string true "Template ID"
// @Param template body service.UpdateTemplateRequest true "Fields to update"
// @Success 200 {object} service.TemplateResponse "Successfully updated template"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 404 {object} ErrorResponse "Template not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /templates/{id} [put]
func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.templateService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteTemplate handles DELETE /templates/:id
// @Summary Delete a template
// @Description Delete a template and its attachments
// @Tags templates
// @Accept json
// @Produce json
// @Param id path string true "Template ID"
// @Success 204 "Successfully deleted template"
// @Failure 404 {object} ErrorResponse "Template not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /templates/{id} [delete]
func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.templateService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadAttachment handles POST /templates/:id/attachments
// @Summary Upload a template attachment
// @Description Upload a file attachment; re-uploading identical content returns the existing attachment
// @Tags templates
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Template ID"
// @Param file formData file true "File to attach"
// @Success 200 {object} service.AttachmentResponse "Identical attachment already existed"
// @Success 201 {object} service.AttachmentResponse "Successfully stored attachment"
// @Failure 400 {object} map[string]interface{} "Validation failed or file too large"
// @Failure 404 {object} ErrorResponse "Template not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /templates/{id}/attachments [post]
func (h *TemplateHandler) UploadAttachment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	// Reject oversized bodies before buffering the file
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+1024)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
		return
	}

	upload := &service.AttachmentUpload{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Content:     content,
	}

	resp, reused, err := h.templateService.UploadAttachment(id, upload)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusCreated
	if reused {
		status = http.StatusOK
	}
	c.JSON(status, resp)
}

// ListAttachments handles GET /templates/:id/attachments
// @Summary List template attachments
// @Description List attachment metadata for a template
// @Tags templates
// @Accept json
// @Produce json
// @Param id path string true "Template ID"
// @Success 200 {array} service.AttachmentResponse "Successfully retrieved attachments"
// @Failure 404 {object} ErrorResponse "Template not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /templates/{id}/attachments [get]
func (h *TemplateHandler) ListAttachments(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.templateService.ListAttachments(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DownloadAttachment handles GET /templates/:id/attachments/:attachmentId/content
// @Summary Download a template attachment
// @Description Stream the attachment bytes with the stored content type
// @Tags templates
// @Produce octet-stream
// @Param id path string true "Template ID"
// @Param attachmentId path string true "Attachment ID"
// @Success 200 {file} binary "Attachment content"
// @Failure 404 {object} ErrorResponse "Attachment not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /templates/{id}/attachments/{attachmentId}/content [get]
func (h *TemplateHandler) DownloadAttachment(c *gin.Context) {
	attachmentID, ok := parseIDParam(c, "attachmentId")
	if !ok {
		return
	}

	content, err := h.templateService.GetAttachmentContent(attachmentID)
	if err != nil {
		respondError(c, err)
		return
	}

	contentType := content.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Header("Content-Disposition", `attachment; filename="`+content.FileName+`"`)
	c.Data(http.StatusOK, contentType, content.Content)
}

// DeleteAttachment handles DELETE /templates/:id/attachments/:attachmentId
// @Summary Delete a template attachment
// @Description Delete an attachment by its ID
// @Tags templates
// @Accept json
// @Produce json
// @Param id path string true "Template ID"
// @Param attachmentId path string true "Attachment ID"
// @Success 204 "Successfully deleted attachment"
// @Failure 404 {object} ErrorResponse "Attachment not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /templates/{id}/attachments/{attachmentId} [delete]
func (h *TemplateHandler) DeleteAttachment(c *gin.Context) {
	attachmentID, ok := parseIDParam(c, "attachmentId")
	if !ok {
		return
	}

	if err := h.templateService.DeleteAttachment(attachmentID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
