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

func NewShelfRouter(
	timeout time.Duration,
	db mongo.Database,
	group *gin.RouterGroup,
) {
	shelfRepo := scene_book_repository.NewShelfRepository(db, domain.CollectionLibrarySceneShelf)
	shelfUsecase := scene_book_usecase.NewShelfUsecase(shelfRepo, timeout)
	shelfCtrl := scene_book_api_controller.NewShelfController(shelfUsecase)

	shelfGroup := group.Group("/shelves")
	{
		// GET /shelves
		shelfGroup.GET("", shelfCtrl.GetShelfItems)

		// POST /shelves?name=xxx&comment=yyy
		shelfGroup.POST("", shelfCtrl.CreateShelf)

		// DELETE /shelves/:id
		shelfGroup.DELETE("/:id", shelfCtrl.DeleteShelf)

		// POST /shelves/books?shelf_id=xxx&book_id=yyy
		shelfGroup.POST("/books", shelfCtrl.AddBookToShelf)

		// DELETE /shelves/books?shelf_id=xxx&book_id=yyy
		shelfGroup.DELETE("/books", shelfCtrl.RemoveBookFromShelf)
	}
}
