package scene_book_api_controller

import (
	"net/http"
	"strconv"

	"github.com/Super-Badmen-Viper/NineShelf/api/controller"
	"github.com/Super-Badmen-Viper/NineShelf/domain"
	"github.com/Super-Badmen-Viper/NineShelf/usecase/usecase_library/scene_book_usecase"
	"github.com/gin-gonic/gin"
)

type BookController struct {
	BookUsecase *scene_book_usecase.BookUsecase
}

func NewBookController(bookUsecase *scene_book_usecase.BookUsecase) *BookController {
	return &BookController{
		BookUsecase: bookUsecase,
	}
}

func (c *BookController) GetBookItems(ctx *gin.Context) {
	params := domain.SortOrder{
		Sort:  ctx.DefaultQuery("sort", "sort_title"),
		Order: ctx.DefaultQuery("order", "asc"),
	}

	if params.Order != "asc" && params.Order != "desc" {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ORDER", "order参数必须是asc或desc")
		return
	}

	books, err := c.BookUsecase.GetAllSorted(ctx.Request.Context(), params.Sort, params.Order == "asc")
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	controller.SuccessResponse(ctx, "books", books, len(books))
}

func (c *BookController) GetBookByID(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ID", "id参数不能为空")
		return
	}

	book, err := c.BookUsecase.GetByID(ctx.Request.Context(), id)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusNotFound, "NO_DATA", "未找到书目数据")
		return
	}

	controller.SuccessResponse(ctx, "book", book, 1)
}

func (c *BookController) SearchBooks(ctx *gin.Context) {
	params := struct {
		Keyword string `form:"keyword" binding:"required"`
		Limit   string `form:"limit"`
	}{
		Keyword: ctx.Query("keyword"),
		Limit:   ctx.DefaultQuery("limit", "50"),
	}

	if params.Keyword == "" {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_KEYWORD", "keyword参数不能为空")
		return
	}

	limit, err := strconv.ParseInt(params.Limit, 10, 64)
	if err != nil || limit <= 0 {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_LIMIT", "limit参数必须是正整数")
		return
	}

	books, err := c.BookUsecase.Search(ctx.Request.Context(), params.Keyword, limit)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	controller.SuccessResponse(ctx, "books", books, len(books))
}

func (c *BookController) UpdateBookStatus(ctx *gin.Context) {
	params := struct {
		ID     string `form:"id" binding:"required"`
		Status string `form:"status" binding:"required,oneof=unread in_progress finished abandoned"`
	}{}

	if err := ctx.ShouldBind(&params); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	if err := c.BookUsecase.SetStatus(ctx.Request.Context(), params.ID, params.Status); err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	controller.SuccessResponse(ctx, "updated", params.ID, 1)
}

func (c *BookController) UpdateBookRating(ctx *gin.Context) {
	params := struct {
		ID     string `form:"id" binding:"required"`
		Rating string `form:"rating"` // 空值表示清除评分
	}{}

	if err := ctx.ShouldBind(&params); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	if params.Rating == "" {
		if err := c.BookUsecase.ClearRating(ctx.Request.Context(), params.ID); err != nil {
			controller.ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
			return
		}
		controller.SuccessResponse(ctx, "updated", params.ID, 1)
		return
	}

	rating, err := strconv.ParseFloat(params.Rating, 64)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_RATING", "rating参数必须是数字")
		return
	}

	if err := c.BookUsecase.SetRating(ctx.Request.Context(), params.ID, rating); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_RATING", err.Error())
		return
	}

	controller.SuccessResponse(ctx, "updated", params.ID, 1)
}

func (c *BookController) DeleteBook(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ID", "id参数不能为空")
		return
	}

	if err := c.BookUsecase.Delete(ctx.Request.Context(), id); err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	controller.SuccessResponse(ctx, "deleted", id, 1)
}
