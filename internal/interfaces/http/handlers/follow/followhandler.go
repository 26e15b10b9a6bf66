package follow

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"litrevu/internal/application/user/usecases"
	"litrevu/internal/interfaces/http/middleware"
	"litrevu/internal/shared/config"
	"litrevu/internal/shared/logger"
	"litrevu/internal/shared/utils"
)

type FollowRequest struct {
	Username string `form:"username" binding:"required"`
}

type FollowHandler struct {
	followUC         usecases.FollowUserExecutor
	unfollowUC       usecases.UnfollowUserExecutor
	listFollowingsUC usecases.ListFollowingsExecutor
	cookieCfg        config.CookieConfig
	logger           logger.Interface
}

func NewFollowHandler(
	followUC usecases.FollowUserExecutor,
	unfollowUC usecases.UnfollowUserExecutor,
	listFollowingsUC usecases.ListFollowingsExecutor,
	cookieCfg config.CookieConfig,
) *FollowHandler {
	return &FollowHandler{
		followUC:         followUC,
		unfollowUC:       unfollowUC,
		listFollowingsUC: listFollowingsUC,
		cookieCfg:        cookieCfg,
		logger:           logger.NewLogger(),
	}
}

// List handles GET /followings/ with both sides of the follow graph.
func (h *FollowHandler) List(c *gin.Context) {
	result, err := h.listFollowingsUC.Execute(c.Request.Context(), usecases.ListFollowingsQuery{
		ViewerID: middleware.ViewerID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"page":       "followings",
		"flash":      utils.ConsumeFlash(c, h.cookieCfg),
		"followings": result.Followings,
		"followers":  result.Followers,
	})
}

// Follow handles POST /followings/, looking the target up by username.
func (h *FollowHandler) Follow(c *gin.Context) {
	var req FollowRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warnw("invalid follow form", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.FormErrorMessage(err, "username is required"))
		return
	}

	result, err := h.followUC.Execute(c.Request.Context(), usecases.FollowUserCommand{
		ViewerID:       middleware.ViewerID(c),
		TargetUsername: req.Username,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	switch {
	case result.SelfFollow:
		utils.SetFlash(c, h.cookieCfg, "you cannot follow yourself")
	case result.AlreadyFollowing:
		utils.SetFlash(c, h.cookieCfg, "you are already following "+result.FollowedUsername)
	}

	utils.RedirectResponse(c, "/followings/")
}

// Unfollow handles GET /followings/unfollow/:user_id/.
func (h *FollowHandler) Unfollow(c *gin.Context) {
	targetID, err := utils.ParseIDParam(c, "user_id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.unfollowUC.Execute(c.Request.Context(), usecases.UnfollowUserCommand{
		ViewerID: middleware.ViewerID(c),
		TargetID: targetID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	switch {
	case result.SelfUnfollow:
		utils.SetFlash(c, h.cookieCfg, "you cannot unfollow yourself")
	case !result.WasFollowing:
		utils.SetFlash(c, h.cookieCfg, "you were not following that user")
	}

	utils.RedirectResponse(c, "/followings/")
}
