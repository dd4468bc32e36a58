// Package ticket exposes the ticket lifecycle over HTTP.
package ticket

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "helpdesk/internal/domain/ticket"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC     usecases.CreateTicketExecutor
	getTicketUC        usecases.GetTicketExecutor
	listTicketsUC      usecases.ListTicketsExecutor
	updateTicketUC     usecases.UpdateTicketExecutor
	deleteTicketUC     usecases.DeleteTicketExecutor
	getStatisticsUC    usecases.GetStatisticsExecutor
	addAnnotationUC    usecases.AddAnnotationExecutor
	listAnnotationsUC  usecases.ListAnnotationsExecutor
	deleteAnnotationUC usecases.DeleteAnnotationExecutor
	uploadAttachmentUC usecases.UploadAttachmentExecutor
	getAttachmentUC    usecases.GetAttachmentExecutor
	logger             logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
	getStatisticsUC usecases.GetStatisticsExecutor,
	addAnnotationUC usecases.AddAnnotationExecutor,
	listAnnotationsUC usecases.ListAnnotationsExecutor,
	deleteAnnotationUC usecases.DeleteAnnotationExecutor,
	uploadAttachmentUC usecases.UploadAttachmentExecutor,
	getAttachmentUC usecases.GetAttachmentExecutor,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:     createTicketUC,
		getTicketUC:        getTicketUC,
		listTicketsUC:      listTicketsUC,
		updateTicketUC:     updateTicketUC,
		deleteTicketUC:     deleteTicketUC,
		getStatisticsUC:    getStatisticsUC,
		addAnnotationUC:    addAnnotationUC,
		listAnnotationsUC:  listAnnotationsUC,
		deleteAnnotationUC: deleteAnnotationUC,
		uploadAttachmentUC: uploadAttachmentUC,
		getAttachmentUC:    getAttachmentUC,
		logger:             logger.NewLogger(),
	}
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	result, err := h.listTicketsUC.Execute(c.Request.Context(), parseListTicketsQuery(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Tickets)
}

// UpdateTicket handles PATCH /tickets/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), req.ToCommand(ticketID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

// DeleteTicket handles DELETE /tickets/:id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket deleted successfully", result)
}

// GetStatistics handles GET /tickets/statistics
func (h *TicketHandler) GetStatistics(c *gin.Context) {
	result, err := h.getStatisticsUC.Execute(c.Request.Context(), usecases.GetStatisticsQuery{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"total":      result.Total,
		"byStatus":   result.ByStatus,
		"byPriority": result.ByPriority,
	})
}

// AddAnnotation handles POST /tickets/:id/annotations
func (h *TicketHandler) AddAnnotation(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddAnnotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add annotation", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := usecases.AddAnnotationCommand{
		TicketID: ticketID,
		Text:     req.Text,
		Author:   req.Author,
	}

	result, err := h.addAnnotationUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Annotation added successfully")
}

// ListAnnotations handles GET /tickets/:id/annotations
func (h *TicketHandler) ListAnnotations(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listAnnotationsUC.Execute(c.Request.Context(), usecases.ListAnnotationsQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// DeleteAnnotation handles DELETE /tickets/:id/annotations/:annotationId
func (h *TicketHandler) DeleteAnnotation(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	annotationID, err := parseUintParam(c, "annotationId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteAnnotationCommand{
		TicketID:     ticketID,
		AnnotationID: annotationID,
	}

	result, err := h.deleteAnnotationUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Annotation deleted successfully", result)
}

// UploadAttachment handles POST /tickets/:id/attachments
func (h *TicketHandler) UploadAttachment(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "A file field is required")
		return
	}

	// Checked here as well so oversized bodies are refused before the
	// multipart part is even opened.
	if fileHeader.Size > domain.MaxAttachmentSize {
		utils.ErrorResponse(c, http.StatusBadRequest, "File exceeds the maximum allowed size")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	cmd := usecases.UploadAttachmentCommand{
		TicketID:     ticketID,
		OriginalName: fileHeader.Filename,
		Size:         fileHeader.Size,
		ContentType:  fileHeader.Header.Get("Content-Type"),
		Content:      file,
		Uploader:     c.PostForm("user"),
	}

	result, err := h.uploadAttachmentUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "File attached successfully")
}

// GetAttachment handles GET /tickets/:id/files/:fileIndex
func (h *TicketHandler) GetAttachment(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	fileIndex, err := strconv.Atoi(c.Param("fileIndex"))
	if err != nil || fileIndex < 0 {
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid file index"))
		return
	}

	query := usecases.GetAttachmentQuery{
		TicketID:  ticketID,
		FileIndex: fileIndex,
	}

	result, err := h.getAttachmentUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// ?download=1 streams the bytes; the default response is the metadata
	// with the public /uploads path.
	if c.Query("download") != "" {
		c.FileAttachment(result.FilePath, result.Attachment.OriginalName)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Attachment)
}

func parseTicketID(c *gin.Context) (uint, error) {
	return parseUintParam(c, "id")
}

func parseUintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		return 0, errors.NewValidationError("Invalid " + name)
	}
	return uint(value), nil
}
