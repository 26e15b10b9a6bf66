package ticket

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"litrevu/internal/application/ticket/usecases"
	"litrevu/internal/interfaces/http/middleware"
	"litrevu/internal/shared/config"
	"litrevu/internal/shared/logger"
	"litrevu/internal/shared/utils"
)

// ImageStore saves uploaded ticket images and returns their stored names.
type ImageStore interface {
	Save(file *multipart.FileHeader) (string, error)
}

type TicketHandler struct {
	createTicketUC usecases.CreateTicketExecutor
	getTicketUC    usecases.GetTicketExecutor
	updateTicketUC usecases.UpdateTicketExecutor
	deleteTicketUC usecases.DeleteTicketExecutor
	images         ImageStore
	cookieCfg      config.CookieConfig
	logger         logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
	images ImageStore,
	cookieCfg config.CookieConfig,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC: createTicketUC,
		getTicketUC:    getTicketUC,
		updateTicketUC: updateTicketUC,
		deleteTicketUC: deleteTicketUC,
		images:         images,
		cookieCfg:      cookieCfg,
		logger:         logger.NewLogger(),
	}
}

// ShowCreate handles GET /tickets/create/.
func (h *TicketHandler) ShowCreate(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"page":  "ticket_create",
		"flash": utils.ConsumeFlash(c, h.cookieCfg),
	})
}

// Create handles POST /tickets/create/.
func (h *TicketHandler) Create(c *gin.Context) {
	var req TicketFormRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warnw("invalid ticket form", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.FormErrorMessage(err, "title is required"))
		return
	}

	imagePath, ok := h.saveUploadedImage(c)
	if !ok {
		return
	}

	cmd := req.ToCreateCommand(middleware.ViewerID(c), imagePath)
	if _, err := h.createTicketUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.RedirectResponse(c, "/home/")
}

// ShowUpdate handles GET /tickets/update/:ticket_id/.
func (h *TicketHandler) ShowUpdate(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "ticket_id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		TicketID: ticketID,
		ViewerID: middleware.ViewerID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"page":   "ticket_update",
		"flash":  utils.ConsumeFlash(c, h.cookieCfg),
		"ticket": result,
	})
}

// Edit handles POST /tickets/update/:ticket_id/, dispatching on the tagged
// action field.
func (h *TicketHandler) Edit(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "ticket_id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req EditActionRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warnw("invalid ticket edit form", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.FormErrorMessage(err, "action must be update or delete"))
		return
	}

	switch req.Action {
	case "update":
		imagePath, ok := h.saveUploadedImage(c)
		if !ok {
			return
		}

		cmd := usecases.UpdateTicketCommand{
			TicketID:     ticketID,
			EditorID:     middleware.ViewerID(c),
			Title:        req.Title,
			Description:  req.Description,
			NewImagePath: imagePath,
		}
		if _, err := h.updateTicketUC.Execute(c.Request.Context(), cmd); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
	case "delete":
		cmd := usecases.DeleteTicketCommand{
			TicketID: ticketID,
			EditorID: middleware.ViewerID(c),
		}
		if err := h.deleteTicketUC.Execute(c.Request.Context(), cmd); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
	}

	utils.RedirectResponse(c, "/posts/")
}

// saveUploadedImage stores the optional image form file. The bool result is
// false when a response has already been written.
func (h *TicketHandler) saveUploadedImage(c *gin.Context) (string, bool) {
	file, err := c.FormFile("image")
	if err != nil {
		// No file attached.
		return "", true
	}

	name, err := h.images.Save(file)
	if err != nil {
		h.logger.Warnw("failed to store uploaded image", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return "", false
	}
	return name, true
}
