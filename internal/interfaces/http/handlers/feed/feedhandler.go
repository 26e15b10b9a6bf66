package feed

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"litrevu/internal/application/feed/usecases"
	"litrevu/internal/interfaces/http/middleware"
	"litrevu/internal/shared/config"
	"litrevu/internal/shared/logger"
	"litrevu/internal/shared/utils"
)

type FeedHandler struct {
	homeFeedUC usecases.GetHomeFeedExecutor
	ownPostsUC usecases.GetOwnPostsExecutor
	cookieCfg  config.CookieConfig
	logger     logger.Interface
}

func NewFeedHandler(
	homeFeedUC usecases.GetHomeFeedExecutor,
	ownPostsUC usecases.GetOwnPostsExecutor,
	cookieCfg config.CookieConfig,
) *FeedHandler {
	return &FeedHandler{
		homeFeedUC: homeFeedUC,
		ownPostsUC: ownPostsUC,
		cookieCfg:  cookieCfg,
		logger:     logger.NewLogger(),
	}
}

// Home handles GET /home/.
func (h *FeedHandler) Home(c *gin.Context) {
	result, err := h.homeFeedUC.Execute(c.Request.Context(), usecases.GetHomeFeedQuery{
		ViewerID: middleware.ViewerID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"page":   "home",
		"viewer": middleware.ViewerUsername(c),
		"flash":  utils.ConsumeFlash(c, h.cookieCfg),
		"posts":  result.Posts,
	})
}

// OwnPosts handles GET /posts/.
func (h *FeedHandler) OwnPosts(c *gin.Context) {
	result, err := h.ownPostsUC.Execute(c.Request.Context(), usecases.GetOwnPostsQuery{
		ViewerID: middleware.ViewerID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"page":   "posts",
		"viewer": middleware.ViewerUsername(c),
		"flash":  utils.ConsumeFlash(c, h.cookieCfg),
		"posts":  result.Posts,
	})
}
