package repository_app_config

import (
	"github.com/Super-Badmen-Viper/NineShelf/domain"
	"github.com/Super-Badmen-Viper/NineShelf/domain/domain_app/domain_app_config"
	"github.com/Super-Badmen-Viper/NineShelf/mongo"
	"github.com/Super-Badmen-Viper/NineShelf/repository"
)

// AppServerConfigRepository is an alias for the generic BaseRepository.
// It handles remote server configuration entries.
type AppServerConfigRepository interface {
	domain.BaseRepository[domain_app_config.AppServerConfig]
}

// NewAppServerConfigRepository creates a new repository for server configurations.
// It uses the generic BaseMongoRepository implementation.
func NewAppServerConfigRepository(db mongo.Database, collection string) AppServerConfigRepository {
	return repository.NewBaseMongoRepository[domain_app_config.AppServerConfig](db, collection)
}
