package scene_book_interface

import (
	"context"

	"github.com/Super-Badmen-Viper/NineShelf/domain"
	"github.com/Super-Badmen-Viper/NineShelf/domain/domain_library/scene_book/scene_book_models"
)

type BookRepository interface {
	domain.SortableRepository[scene_book_models.BookMetadata]

	GetByPath(ctx context.Context, path string) (*scene_book_models.BookMetadata, error)
	Search(ctx context.Context, keyword string, limit int64) ([]*scene_book_models.BookMetadata, error)
}
