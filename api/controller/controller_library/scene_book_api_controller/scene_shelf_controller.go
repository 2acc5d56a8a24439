package scene_book_api_controller

import (
	"net/http"

	"github.com/Super-Badmen-Viper/NineShelf/api/controller"
	"github.com/Super-Badmen-Viper/NineShelf/usecase/usecase_library/scene_book_usecase"
	"github.com/gin-gonic/gin"
)

type ShelfController struct {
	ShelfUsecase *scene_book_usecase.ShelfUsecase
}

func NewShelfController(shelfUsecase *scene_book_usecase.ShelfUsecase) *ShelfController {
	return &ShelfController{
		ShelfUsecase: shelfUsecase,
	}
}

func (c *ShelfController) GetShelfItems(ctx *gin.Context) {
	shelves, err := c.ShelfUsecase.GetAll(ctx.Request.Context())
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	controller.SuccessResponse(ctx, "shelves", shelves, len(shelves))
}

func (c *ShelfController) CreateShelf(ctx *gin.Context) {
	params := struct {
		Name    string `form:"name" binding:"required"`
		Comment string `form:"comment"`
	}{}

	if err := ctx.ShouldBind(&params); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	shelf, err := c.ShelfUsecase.CreateShelf(ctx.Request.Context(), params.Name, params.Comment)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusConflict, "SHELF_EXISTS", err.Error())
		return
	}

	controller.SuccessResponse(ctx, "shelf", shelf, 1)
}

func (c *ShelfController) DeleteShelf(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ID", "id参数不能为空")
		return
	}

	if err := c.ShelfUsecase.Delete(ctx.Request.Context(), id); err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	controller.SuccessResponse(ctx, "deleted", id, 1)
}

func (c *ShelfController) AddBookToShelf(ctx *gin.Context) {
	params := struct {
		ShelfID string `form:"shelf_id" binding:"required"`
		BookID  string `form:"book_id" binding:"required"`
	}{}

	if err := ctx.ShouldBind(&params); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	if err := c.ShelfUsecase.AddBook(ctx.Request.Context(), params.ShelfID, params.BookID); err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	controller.SuccessResponse(ctx, "added", params.BookID, 1)
}

func (c *ShelfController) RemoveBookFromShelf(ctx *gin.Context) {
	params := struct {
		ShelfID string `form:"shelf_id" binding:"required"`
		BookID  string `form:"book_id" binding:"required"`
	}{}

	if err := ctx.ShouldBind(&params); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	if err := c.ShelfUsecase.RemoveBook(ctx.Request.Context(), params.ShelfID, params.BookID); err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	controller.SuccessResponse(ctx, "removed", params.BookID, 1)
}
