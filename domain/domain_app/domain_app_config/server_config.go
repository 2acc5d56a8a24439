package domain_app_config

import (
	"time"

	"github.com/Super-Badmen-Viper/NineShelf/usecase"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AppServerConfig struct {
	ID          primitive.ObjectID `bson:"_id"`
	ServerName  string             `bson:"server_name"`
	URL         string             `bson:"url"`
	UserName    string             `bson:"user_name"`
	LastLoginAt time.Time          `bson:"last_login_at,omitempty"`
	Type        string             `bson:"type"`
}

// AppServerConfigUsecase defines the usecase interface for app server configuration.
// It embeds the generic BaseUsecase to provide standard CRUD operations.
type AppServerConfigUsecase interface {
	usecase.BaseUsecase[AppServerConfig]
}
