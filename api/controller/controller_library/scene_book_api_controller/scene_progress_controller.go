package scene_book_api_controller

import (
	"net/http"
	"strconv"

	"github.com/Super-Badmen-Viper/NineShelf/api/controller"
	"github.com/Super-Badmen-Viper/NineShelf/usecase/usecase_library/scene_book_usecase"
	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressUsecase *scene_book_usecase.ProgressUsecase
}

func NewProgressController(progressUsecase *scene_book_usecase.ProgressUsecase) *ProgressController {
	return &ProgressController{
		ProgressUsecase: progressUsecase,
	}
}

func (c *ProgressController) GetProgress(ctx *gin.Context) {
	bookID := ctx.Query("book_id")
	if bookID == "" {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_BOOK_ID", "book_id参数不能为空")
		return
	}

	progress, err := c.ProgressUsecase.GetByBookID(ctx.Request.Context(), bookID)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}
	if progress == nil {
		controller.ErrorResponse(ctx, http.StatusNotFound, "NO_DATA", "未找到进度数据")
		return
	}

	controller.SuccessResponse(ctx, "progress", progress, 1)
}

func (c *ProgressController) UpsertProgress(ctx *gin.Context) {
	params := struct {
		BookID   string `form:"book_id" binding:"required"`
		Percent  string `form:"percent" binding:"required"`
		Position string `form:"position"`
		AudioPos string `form:"audio_pos"`
	}{}

	if err := ctx.ShouldBind(&params); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	percent, err := strconv.ParseFloat(params.Percent, 64)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PERCENT", "percent参数必须是数字")
		return
	}

	var audioPos float64
	if params.AudioPos != "" {
		audioPos, err = strconv.ParseFloat(params.AudioPos, 64)
		if err != nil {
			controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_AUDIO_POS", "audio_pos参数必须是数字")
			return
		}
	}

	progress, err := c.ProgressUsecase.UpsertProgress(
		ctx.Request.Context(),
		params.BookID,
		percent,
		params.Position,
		audioPos,
	)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	controller.SuccessResponse(ctx, "progress", progress, 1)
}

func (c *ProgressController) MarkAbandoned(ctx *gin.Context) {
	params := struct {
		BookID string `form:"book_id" binding:"required"`
	}{}

	if err := ctx.ShouldBind(&params); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	if err := c.ProgressUsecase.MarkAbandoned(ctx.Request.Context(), params.BookID); err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	controller.SuccessResponse(ctx, "abandoned", params.BookID, 1)
}
