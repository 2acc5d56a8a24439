package usecase_app_config

import (
	"time"

	"github.com/Super-Badmen-Viper/NineShelf/domain/domain_app/domain_app_config"
	"github.com/Super-Badmen-Viper/NineShelf/repository/repository_app/repository_app_config"
	"github.com/Super-Badmen-Viper/NineShelf/usecase"
)

// AppFolderConfigUsecase implements the usecase interface for library folder configuration.
// It embeds the generic ConfigUsecase to handle the core GetAll/ReplaceAll logic.
type AppFolderConfigUsecase struct {
	usecase.ConfigUsecase[domain_app_config.AppFolderConfig]
}

// NewAppFolderConfigUsecase creates a new usecase for library folder configuration.
// It uses the generic NewConfigUsecase constructor for consistency.
func NewAppFolderConfigUsecase(repo repository_app_config.AppFolderConfigRepository, timeout time.Duration) domain_app_config.AppFolderConfigUsecase {
	baseUsecase := usecase.NewConfigUsecase[domain_app_config.AppFolderConfig](repo, timeout)
	return &AppFolderConfigUsecase{
		ConfigUsecase: baseUsecase,
	}
}
