package review

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"litrevu/internal/application/review/usecases"
	ticketusecases "litrevu/internal/application/ticket/usecases"
	"litrevu/internal/interfaces/http/middleware"
	"litrevu/internal/shared/config"
	"litrevu/internal/shared/logger"
	"litrevu/internal/shared/utils"
)

// ImageStore saves uploaded ticket images for the combined form flow.
type ImageStore interface {
	Save(file *multipart.FileHeader) (string, error)
}

type ReviewHandler struct {
	createReviewUC   usecases.CreateReviewExecutor
	createCombinedUC usecases.CreateTicketWithReviewExecutor
	getDetailUC      usecases.GetReviewDetailExecutor
	updateReviewUC   usecases.UpdateReviewExecutor
	deleteReviewUC   usecases.DeleteReviewExecutor
	addCommentUC     usecases.AddCommentExecutor
	getTicketUC      ticketusecases.GetTicketExecutor
	images           ImageStore
	cookieCfg        config.CookieConfig
	logger           logger.Interface
}

func NewReviewHandler(
	createReviewUC usecases.CreateReviewExecutor,
	createCombinedUC usecases.CreateTicketWithReviewExecutor,
	getDetailUC usecases.GetReviewDetailExecutor,
	updateReviewUC usecases.UpdateReviewExecutor,
	deleteReviewUC usecases.DeleteReviewExecutor,
	addCommentUC usecases.AddCommentExecutor,
	getTicketUC ticketusecases.GetTicketExecutor,
	images ImageStore,
	cookieCfg config.CookieConfig,
) *ReviewHandler {
	return &ReviewHandler{
		createReviewUC:   createReviewUC,
		createCombinedUC: createCombinedUC,
		getDetailUC:      getDetailUC,
		updateReviewUC:   updateReviewUC,
		deleteReviewUC:   deleteReviewUC,
		addCommentUC:     addCommentUC,
		getTicketUC:      getTicketUC,
		images:           images,
		cookieCfg:        cookieCfg,
		logger:           logger.NewLogger(),
	}
}

// ShowCreateForTicket handles GET /reviews/create/:ticket_id/. The ticket
// being answered is part of the render context.
func (h *ReviewHandler) ShowCreateForTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "ticket_id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	t, err := h.getTicketUC.Execute(c.Request.Context(), ticketusecases.GetTicketQuery{
		TicketID: ticketID,
		ViewerID: middleware.ViewerID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"page":   "review_create",
		"flash":  utils.ConsumeFlash(c, h.cookieCfg),
		"ticket": t,
	})
}

// CreateForTicket handles POST /reviews/create/:ticket_id/.
func (h *ReviewHandler) CreateForTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "ticket_id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ReviewFormRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warnw("invalid review form", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.FormErrorMessage(err, "rating and headline are required"))
		return
	}

	result, err := h.createReviewUC.Execute(c.Request.Context(), req.ToCreateCommand(ticketID, middleware.ViewerID(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if result.AlreadyReviewed {
		utils.SetFlash(c, h.cookieCfg, "this ticket already has a review")
	}

	utils.RedirectResponse(c, "/home/")
}

// ShowCreateWithTicket handles GET /reviews/create/.
func (h *ReviewHandler) ShowCreateWithTicket(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"page":  "review_create_combined",
		"flash": utils.ConsumeFlash(c, h.cookieCfg),
	})
}

// CreateWithTicket handles POST /reviews/create/, creating a ticket and its
// review from one form.
func (h *ReviewHandler) CreateWithTicket(c *gin.Context) {
	var req CombinedFormRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warnw("invalid combined review form", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.FormErrorMessage(err, "title, rating and headline are required"))
		return
	}

	imagePath, ok := h.saveUploadedImage(c)
	if !ok {
		return
	}

	cmd := req.ToCommand(middleware.ViewerID(c), imagePath)
	if _, err := h.createCombinedUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.RedirectResponse(c, "/home/")
}

// Detail handles GET /reviews/:review_id/.
func (h *ReviewHandler) Detail(c *gin.Context) {
	reviewID, err := utils.ParseIDParam(c, "review_id", "review")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	detail, err := h.getDetailUC.Execute(c.Request.Context(), usecases.GetReviewDetailQuery{
		ReviewID: reviewID,
		ViewerID: middleware.ViewerID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"page":   "review_detail",
		"flash":  utils.ConsumeFlash(c, h.cookieCfg),
		"review": detail,
	})
}

// AddComment handles POST /reviews/:review_id/. Blank comments are allowed.
func (h *ReviewHandler) AddComment(c *gin.Context) {
	reviewID, err := utils.ParseIDParam(c, "review_id", "review")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CommentFormRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warnw("invalid comment form", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid comment form")
		return
	}

	cmd := usecases.AddCommentCommand{
		ReviewID: reviewID,
		AuthorID: middleware.ViewerID(c),
		Content:  req.Content,
	}
	if _, err := h.addCommentUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.RedirectResponse(c, "/reviews/"+c.Param("review_id")+"/")
}

// ShowUpdate handles GET /reviews/update/:review_id/.
func (h *ReviewHandler) ShowUpdate(c *gin.Context) {
	reviewID, err := utils.ParseIDParam(c, "review_id", "review")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	detail, err := h.getDetailUC.Execute(c.Request.Context(), usecases.GetReviewDetailQuery{
		ReviewID: reviewID,
		ViewerID: middleware.ViewerID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"page":   "review_update",
		"flash":  utils.ConsumeFlash(c, h.cookieCfg),
		"review": detail,
	})
}

// Edit handles POST /reviews/update/:review_id/, dispatching on the tagged
// action field.
func (h *ReviewHandler) Edit(c *gin.Context) {
	reviewID, err := utils.ParseIDParam(c, "review_id", "review")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req EditActionRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warnw("invalid review edit form", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.FormErrorMessage(err, "action must be update or delete"))
		return
	}

	switch req.Action {
	case "update":
		if req.Rating == nil || req.Headline == "" {
			utils.ErrorResponse(c, http.StatusBadRequest, "rating and headline are required")
			return
		}

		cmd := usecases.UpdateReviewCommand{
			ReviewID: reviewID,
			EditorID: middleware.ViewerID(c),
			Rating:   *req.Rating,
			Headline: req.Headline,
			Body:     req.Body,
		}
		if _, err := h.updateReviewUC.Execute(c.Request.Context(), cmd); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
	case "delete":
		cmd := usecases.DeleteReviewCommand{
			ReviewID: reviewID,
			EditorID: middleware.ViewerID(c),
		}
		if err := h.deleteReviewUC.Execute(c.Request.Context(), cmd); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
	}

	utils.RedirectResponse(c, "/posts/")
}

// saveUploadedImage stores the optional image form file. The bool result is
// false when a response has already been written.
func (h *ReviewHandler) saveUploadedImage(c *gin.Context) (string, bool) {
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
