package scene_book_api_route

import (
	"time"

	"github.com/Super-Badmen-Viper/NineShelf/api/controller/controller_library/scene_book_api_controller"
	"github.com/Super-Badmen-Viper/NineShelf/bootstrap"
	"github.com/Super-Badmen-Viper/NineShelf/domain"
	"github.com/Super-Badmen-Viper/NineShelf/mongo"
	"github.com/Super-Badmen-Viper/NineShelf/repository/repository_library/external_metadata"
	"github.com/Super-Badmen-Viper/NineShelf/repository/repository_library/scene_book_repository"
	"github.com/Super-Badmen-Viper/NineShelf/usecase/usecase_library/scene_book_usecase"
	"github.com/gin-gonic/gin"
)

func NewRecommendRouter(
	env *bootstrap.Env,
	timeout time.Duration,
	db mongo.Database,
	group *gin.RouterGroup,
) {
	// 初始化repository
	bookRepo := scene_book_repository.NewBookRepository(db, domain.CollectionLibrarySceneBook)
	externalRepo := external_metadata.NewOpenLibraryRepository(env.ExternalSourceBaseURL)

	// 初始化usecase
	recommendUsecase := scene_book_usecase.NewRecommendUsecase(bookRepo, externalRepo, timeout)

	// 初始化controller
	recommendCtrl := scene_book_api_controller.NewRecommendController(recommendUsecase)

	// 注册路由
	recommendGroup := group.Group("/recommend")
	{
		// 基于书库快照的个性化推荐
		// GET /recommend/books
		recommendGroup.GET("/books", recommendCtrl.GetBookRecommendations)
	}
}
