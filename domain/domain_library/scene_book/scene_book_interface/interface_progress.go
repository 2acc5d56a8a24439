package scene_book_interface

import (
	"context"

	"github.com/Super-Badmen-Viper/NineShelf/domain"
	"github.com/Super-Badmen-Viper/NineShelf/domain/domain_library/scene_book/scene_book_models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProgressRepository interface {
	domain.BaseRepository[scene_book_models.ReadingProgress]

	GetByBookID(ctx context.Context, bookID primitive.ObjectID) (*scene_book_models.ReadingProgress, error)
}
