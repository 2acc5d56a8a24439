package route_app

import (
	"time"

	"github.com/Super-Badmen-Viper/NineShelf/api/controller/controller_app"
	"github.com/Super-Badmen-Viper/NineShelf/domain"
	"github.com/Super-Badmen-Viper/NineShelf/mongo"
	"github.com/Super-Badmen-Viper/NineShelf/repository/repository_app/repository_app_config"
	"github.com/Super-Badmen-Viper/NineShelf/usecase/usecase_app/usecase_app_config"
	"github.com/gin-gonic/gin"
)

func NewAppConfigRouter(
	timeout time.Duration,
	db mongo.Database,
	group *gin.RouterGroup,
) {
	appConfigRepo := repository_app_config.NewAppConfigRepository(db, domain.CollectionLibraryAppConfigs)
	folderConfigRepo := repository_app_config.NewAppFolderConfigRepository(db, domain.CollectionLibraryAppFolderConfigs)

	appConfigUsecase := usecase_app_config.NewAppConfigUsecase(appConfigRepo, timeout)
	folderConfigUsecase := usecase_app_config.NewAppFolderConfigUsecase(folderConfigRepo, timeout)

	configCtrl := controller_app.NewAppConfigController(appConfigUsecase, folderConfigUsecase)

	configGroup := group.Group("/app_configs")
	{
		// GET /app_configs
		configGroup.GET("", configCtrl.GetAppConfigs)

		// PUT /app_configs
		configGroup.PUT("", configCtrl.ReplaceAppConfigs)

		// GET /app_configs/folders
		configGroup.GET("/folders", configCtrl.GetFolderConfigs)

		// PUT /app_configs/folders
		configGroup.PUT("/folders", configCtrl.ReplaceFolderConfigs)
	}
}
