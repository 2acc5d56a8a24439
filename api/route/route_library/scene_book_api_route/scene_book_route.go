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

func NewBookRouter(
	timeout time.Duration,
	db mongo.Database,
	group *gin.RouterGroup,
) {
	// 初始化repository
	bookRepo := scene_book_repository.NewBookRepository(db, domain.CollectionLibrarySceneBook)

	// 初始化usecase
	bookUsecase := scene_book_usecase.NewBookUsecase(bookRepo, timeout)

	// 初始化controller
	bookCtrl := scene_book_api_controller.NewBookController(bookUsecase)

	// 注册路由
	bookGroup := group.Group("/books")
	{
		// GET /books?sort=sort_title&order=asc
		bookGroup.GET("", bookCtrl.GetBookItems)

		// GET /books/search?keyword=xxx&limit=50
		bookGroup.GET("/search", bookCtrl.SearchBooks)

		// GET /books/:id
		bookGroup.GET("/:id", bookCtrl.GetBookByID)

		// PUT /books/status?id=xxx&status=finished
		bookGroup.PUT("/status", bookCtrl.UpdateBookStatus)

		// PUT /books/rating?id=xxx&rating=4.5
		bookGroup.PUT("/rating", bookCtrl.UpdateBookRating)

		// DELETE /books/:id
		bookGroup.DELETE("/:id", bookCtrl.DeleteBook)
	}
}
