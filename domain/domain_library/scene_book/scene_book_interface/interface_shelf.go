package scene_book_interface

import (
	"context"

	"github.com/Super-Badmen-Viper/NineShelf/domain"
	"github.com/Super-Badmen-Viper/NineShelf/domain/domain_library/scene_book/scene_book_models"
)

type ShelfRepository interface {
	domain.BaseRepository[scene_book_models.Shelf]

	GetByName(ctx context.Context, name string) (*scene_book_models.Shelf, error)
}
