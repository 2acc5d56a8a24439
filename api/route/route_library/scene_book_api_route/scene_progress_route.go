package scene_book_api_route

import (
	"time"

	"github.com/Super-Badmen-Viper/NineShelf/api/controller/controller_library/scene_book_api_controller"
	"github.com/Super-Badmen-Viper/NineShelf/domain"
	"github.com/Super-Badmen-Viper/NineShelf/mongo"
	"github.com/Super-Badmen-Viper/NineShelf/repository/repository_library/scene_book_repository"
	"github.com/Super-Badmen-Viper/NineShelf/usecase/usecase_library/scene_book_usecase"
	"github.com/gin-gonic/gin"
)

func NewProgressRouter(
	timeout time.Duration,
	db mongo.Database,
	group *gin.RouterGroup,
) {
	progressRepo := scene_book_repository.NewProgressRepository(db, domain.CollectionLibrarySceneProgress)
	bookRepo := scene_book_repository.NewBookRepository(db, domain.CollectionLibrarySceneBook)
	progressUsecase := scene_book_usecase.NewProgressUsecase(progressRepo, bookRepo, timeout)
	progressCtrl := scene_book_api_controller.NewProgressController(progressUsecase)

	progressGroup := group.Group("/progress")
	{
		// GET /progress?book_id=xxx
		progressGroup.GET("", progressCtrl.GetProgress)

		// PUT /progress?book_id=xxx&percent=42.5&position=ch3&audio_pos=1800
		progressGroup.PUT("", progressCtrl.UpsertProgress)

		// PUT /progress/abandon?book_id=xxx
		progressGroup.PUT("/abandon", progressCtrl.MarkAbandoned)
	}
}
