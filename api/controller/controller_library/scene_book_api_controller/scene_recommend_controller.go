package scene_book_api_controller

import (
	"net/http"

	"github.com/Super-Badmen-Viper/NineShelf/api/controller"
	"github.com/Super-Badmen-Viper/NineShelf/domain/domain_library/scene_book/scene_book_models"
	"github.com/Super-Badmen-Viper/NineShelf/usecase/usecase_library/scene_book_usecase"
	"github.com/gin-gonic/gin"
)

type RecommendController struct {
	RecommendUsecase *scene_book_usecase.RecommendUsecase
}

func NewRecommendController(recommendUsecase *scene_book_usecase.RecommendUsecase) *RecommendController {
	return &RecommendController{
		RecommendUsecase: recommendUsecase,
	}
}

// GetBookRecommendations 无请求参数：画像完全由当前书库快照推导。
// 冷启动（无收藏）时返回空列表而非错误
func (c *RecommendController) GetBookRecommendations(ctx *gin.Context) {
	recommendResults, err := c.RecommendUsecase.GetRecommendations(ctx.Request.Context())
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	if recommendResults == nil {
		recommendResults = []scene_book_models.RecommendedBook{}
	}

	controller.SuccessResponse(ctx, "recommendations", recommendResults, len(recommendResults))
}
