package scene_book_repository

import (
	"context"

	"github.com/Super-Badmen-Viper/NineShelf/domain"
	"github.com/Super-Badmen-Viper/NineShelf/domain/domain_library/scene_book/scene_book_interface"
	"github.com/Super-Badmen-Viper/NineShelf/domain/domain_library/scene_book/scene_book_models"
	"github.com/Super-Badmen-Viper/NineShelf/mongo"
	"github.com/Super-Badmen-Viper/NineShelf/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type progressRepository struct {
	domain.BaseRepository[scene_book_models.ReadingProgress]
}

func NewProgressRepository(db mongo.Database, collection string) scene_book_interface.ProgressRepository {
	return &progressRepository{
		BaseRepository: repository.NewBaseMongoRepository[scene_book_models.ReadingProgress](db, collection),
	}
}

// GetByBookID 根据书目ID获取进度记录
func (r *progressRepository) GetByBookID(ctx context.Context, bookID primitive.ObjectID) (*scene_book_models.ReadingProgress, error) {
	return r.GetOneByFilter(ctx, bson.M{"book_id": bookID})
}
