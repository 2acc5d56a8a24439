package scene_book_api_controller

import (
	"net/http"

	"github.com/Super-Badmen-Viper/NineShelf/api/controller"
	"github.com/Super-Badmen-Viper/NineShelf/usecase/usecase_library/scene_book_import"
	"github.com/gin-gonic/gin"
)

type ImportController struct {
	ImportUsecase *scene_book_import.BookImportUsecase
}

func NewImportController(importUsecase *scene_book_import.BookImportUsecase) *ImportController {
	return &ImportController{
		ImportUsecase: importUsecase,
	}
}

func (c *ImportController) ScanFolder(ctx *gin.Context) {
	params := struct {
		FolderPath string `form:"folder_path" binding:"required"`
	}{}

	if err := ctx.ShouldBind(&params); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	summary, err := c.ImportUsecase.ScanFolder(ctx.Request.Context(), params.FolderPath)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	controller.SuccessResponse(ctx, "summary", summary, summary.Imported)
}
