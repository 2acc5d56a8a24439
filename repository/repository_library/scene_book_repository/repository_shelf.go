package scene_book_repository

import (
	"context"

	"github.com/Super-Badmen-Viper/NineShelf/domain"
	"github.com/Super-Badmen-Viper/NineShelf/domain/domain_library/scene_book/scene_book_interface"
	"github.com/Super-Badmen-Viper/NineShelf/domain/domain_library/scene_book/scene_book_models"
	"github.com/Super-Badmen-Viper/NineShelf/mongo"
	"github.com/Super-Badmen-Viper/NineShelf/repository"
	"go.mongodb.org/mongo-driver/bson"
)

type shelfRepository struct {
	domain.BaseRepository[scene_book_models.Shelf]
}

func NewShelfRepository(db mongo.Database, collection string) scene_book_interface.ShelfRepository {
	return &shelfRepository{
		BaseRepository: repository.NewBaseMongoRepository[scene_book_models.Shelf](db, collection),
	}
}

// GetByName 根据书架名称获取书架
func (r *shelfRepository) GetByName(ctx context.Context, name string) (*scene_book_models.Shelf, error) {
	return r.GetOneByFilter(ctx, bson.M{"name": name})
}
