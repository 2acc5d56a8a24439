package scene_book_api_route

import (
	"github.com/Super-Badmen-Viper/NineShelf/api/controller/controller_library/scene_book_api_controller"
	"github.com/Super-Badmen-Viper/NineShelf/bootstrap"
	"github.com/Super-Badmen-Viper/NineShelf/domain"
	"github.com/Super-Badmen-Viper/NineShelf/mongo"
	"github.com/Super-Badmen-Viper/NineShelf/repository/repository_library/scene_book_repository"
	"github.com/Super-Badmen-Viper/NineShelf/usecase/usecase_library/scene_book_import"
	"github.com/gin-gonic/gin"
)

func NewImportRouter(
	env *bootstrap.Env,
	db mongo.Database,
	group *gin.RouterGroup,
) {
	bookRepo := scene_book_repository.NewBookRepository(db, domain.CollectionLibrarySceneBook)
	importUsecase := scene_book_import.NewBookImportUsecase(bookRepo, env.ScanTimeoutMinutes)
	importCtrl := scene_book_api_controller.NewImportController(importUsecase)

	importGroup := group.Group("/import")
	{
		// POST /import/scan?folder_path=/books
		importGroup.POST("/scan", importCtrl.ScanFolder)
	}
}
