package repository_app_config

import (
	"github.com/Super-Badmen-Viper/NineShelf/domain"
	"github.com/Super-Badmen-Viper/NineShelf/domain/domain_app/domain_app_config"
	"github.com/Super-Badmen-Viper/NineShelf/mongo"
	"github.com/Super-Badmen-Viper/NineShelf/repository"
)

// AppFolderConfigRepository is an alias for the generic ConfigRepository.
// It handles collections of library folder configuration items.
type AppFolderConfigRepository interface {
	domain.ConfigRepository[domain_app_config.AppFolderConfig]
}

// NewAppFolderConfigRepository creates a new repository for library folder configurations.
// It uses the generic ConfigMongoRepository implementation.
func NewAppFolderConfigRepository(db mongo.Database, collection string) AppFolderConfigRepository {
	return repository.NewConfigMongoRepository[domain_app_config.AppFolderConfig](db, collection)
}
