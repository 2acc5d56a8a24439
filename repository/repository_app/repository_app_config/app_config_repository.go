package repository_app_config

import (
	"github.com/Super-Badmen-Viper/NineShelf/domain"
	"github.com/Super-Badmen-Viper/NineShelf/domain/domain_app/domain_app_config"
	"github.com/Super-Badmen-Viper/NineShelf/mongo"
	"github.com/Super-Badmen-Viper/NineShelf/repository"
)

// AppConfigRepository is an alias for the generic ConfigRepository.
// It handles key/value application configuration items.
type AppConfigRepository interface {
	domain.ConfigRepository[domain_app_config.AppConfig]
}

// NewAppConfigRepository creates a new repository for app configurations.
// It uses the generic ConfigMongoRepository implementation.
func NewAppConfigRepository(db mongo.Database, collection string) AppConfigRepository {
	return repository.NewConfigMongoRepository[domain_app_config.AppConfig](db, collection)
}
