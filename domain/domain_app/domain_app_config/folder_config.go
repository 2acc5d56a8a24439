package domain_app_config

import (
	"github.com/Super-Badmen-Viper/NineShelf/usecase"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AppFolderConfig 媒体库文件夹配置：每条记录对应一个被扫描的根目录
type AppFolderConfig struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	FolderPath string             `bson:"folder_path"`
	FolderType string             `bson:"folder_type"` // ebook 或 audiobook
}

// AppFolderConfigUsecase defines the usecase interface for library folder configuration.
// It embeds the generic ConfigUsecase to provide standard GetAll/ReplaceAll operations.
type AppFolderConfigUsecase interface {
	usecase.ConfigUsecase[AppFolderConfig]
}
