package ticket

import (
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/chamados/servicedesk/internal/application/ticket/usecases"
	"github.com/chamados/servicedesk/internal/infrastructure/upload"
	"github.com/chamados/servicedesk/internal/interfaces/dto"
	"github.com/chamados/servicedesk/internal/shared/errors"
	"github.com/chamados/servicedesk/internal/shared/logger"
	"github.com/chamados/servicedesk/internal/shared/utils"
)

// attachmentsField is the multipart field that carries ticket files.
const attachmentsField = "attachments"

type TicketHandler struct {
	createTicketUC     usecases.CreateTicketExecutor
	getTicketUC        usecases.GetTicketExecutor
	listTicketsUC      usecases.ListTicketsExecutor
	patchTicketUC      usecases.PatchTicketExecutor
	deleteTicketUC     usecases.DeleteTicketExecutor
	addAttachmentsUC   usecases.AddAttachmentsExecutor
	removeAttachmentUC usecases.RemoveAttachmentExecutor
	addInteractionUC   usecases.AddInteractionExecutor
	assignTicketUC     usecases.AssignTicketExecutor
	logger             logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	patchTicketUC usecases.PatchTicketExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
	addAttachmentsUC usecases.AddAttachmentsExecutor,
	removeAttachmentUC usecases.RemoveAttachmentExecutor,
	addInteractionUC usecases.AddInteractionExecutor,
	assignTicketUC usecases.AssignTicketExecutor,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:     createTicketUC,
		getTicketUC:        getTicketUC,
		listTicketsUC:      listTicketsUC,
		patchTicketUC:      patchTicketUC,
		deleteTicketUC:     deleteTicketUC,
		addAttachmentsUC:   addAttachmentsUC,
		removeAttachmentUC: removeAttachmentUC,
		addInteractionUC:   addInteractionUC,
		assignTicketUC:     assignTicketUC,
		logger:             logger,
	}
}

// ListTickets handles GET /api/tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	h.list(c, usecases.ScopeQueue)
}

// ListMyTickets handles GET /api/tickets/mine
func (h *TicketHandler) ListMyTickets(c *gin.Context) {
	h.list(c, usecases.ScopeMine)
}

func (h *TicketHandler) list(c *gin.Context, scope usecases.ListScope) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	tickets, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{Actor: actor, Scope: scope})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", tickets)
}

// GetTicket handles GET /api/tickets/:id. With ?format=html every interaction also carries messageHtml.
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetTicketQuery{
		TicketID:   ticketID,
		RenderHTML: strings.EqualFold(c.Query("format"), "html"),
	}
	result, err := h.getTicketUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateTicket handles POST /api/tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.CreateTicketRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	files, err := formFiles(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(files, actor))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// PatchTicket handles PATCH /api/tickets/:id
func (h *TicketHandler) PatchTicket(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.PatchTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for patch ticket", "ticket_id", ticketID, "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.patchTicketUC.Execute(c.Request.Context(), req.ToCommand(ticketID, actor))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

// DeleteTicket handles DELETE /api/tickets/:id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{TicketID: ticketID, Actor: actor}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket deleted successfully", nil)
}

// AddAttachments handles POST /api/tickets/:id/attachments
func (h *TicketHandler) AddAttachments(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	files, err := formFiles(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if len(files) == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "no files were uploaded")
		return
	}

	cmd := usecases.AddAttachmentsCommand{TicketID: ticketID, Files: files, Actor: actor}
	attachments, err := h.addAttachmentsUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, attachments, "Attachments added successfully")
}

// RemoveAttachment handles DELETE /api/tickets/:id/attachments/:storedName
func (h *TicketHandler) RemoveAttachment(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.RemoveAttachmentCommand{
		TicketID:   ticketID,
		StoredName: c.Param("storedName"),
		Actor:      actor,
	}
	if err := h.removeAttachmentUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Attachment removed successfully", nil)
}

// AddInteraction handles POST /api/tickets/:id/interactions
func (h *TicketHandler) AddInteraction(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.InteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	cmd := usecases.AddInteractionCommand{TicketID: ticketID, Message: req.Message, Actor: actor}
	result, err := h.addInteractionUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Interaction added successfully")
}

// AssignTicket handles PUT /api/tickets/:id/assignee. An empty body assigns the caller.
func (h *TicketHandler) AssignTicket(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.AssignRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponseWithError(c, utils.BindError(err))
			return
		}
	}

	cmd := usecases.AssignTicketCommand{TicketID: ticketID, Login: req.Login, Actor: actor}
	result, err := h.assignTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket assigned successfully", result)
}

func parseTicketID(c *gin.Context) (string, error) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return "", errors.NewValidationError("ticket ID is required")
	}
	return id, nil
}

// formFiles collects the uploaded attachments. A request without a multipart body has none.
func formFiles(c *gin.Context) ([]upload.File, error) {
	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		return nil, nil
	}
	form, err := c.MultipartForm()
	if err != nil {
		return nil, errors.NewValidationError("invalid multipart form", err.Error())
	}

	headers := form.File[attachmentsField]
	files := make([]upload.File, 0, len(headers))
	for _, fh := range headers {
		files = append(files, toUploadFile(fh))
	}
	return files, nil
}

func toUploadFile(fh *multipart.FileHeader) upload.File {
	return upload.File{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}
