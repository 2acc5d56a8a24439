package scene_book_repository

import (
	"context"
	"fmt"

	"github.com/Super-Badmen-Viper/NineShelf/domain"
	"github.com/Super-Badmen-Viper/NineShelf/domain/domain_library/scene_book/scene_book_interface"
	"github.com/Super-Badmen-Viper/NineShelf/domain/domain_library/scene_book/scene_book_models"
	"github.com/Super-Badmen-Viper/NineShelf/domain/domain_util"
	"github.com/Super-Badmen-Viper/NineShelf/mongo"
	"github.com/Super-Badmen-Viper/NineShelf/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type bookRepository struct {
	domain.SortableRepository[scene_book_models.BookMetadata]
	db         mongo.Database
	collection string
}

func NewBookRepository(db mongo.Database, collection string) scene_book_interface.BookRepository {
	return &bookRepository{
		SortableRepository: repository.NewSortableMongoRepository[scene_book_models.BookMetadata](db, collection),
		db:                 db,
		collection:         collection,
	}
}

// GetByPath 根据文件路径获取书目（用于扫描去重）
func (r *bookRepository) GetByPath(ctx context.Context, path string) (*scene_book_models.BookMetadata, error) {
	return r.GetOneByFilter(ctx, bson.M{"path": path})
}

// Search 按书名/作者/拼音模糊检索
func (r *bookRepository) Search(ctx context.Context, keyword string, limit int64) ([]*scene_book_models.BookMetadata, error) {
	if keyword == "" {
		return nil, nil
	}

	folded := domain_util.NormalizeTitle(keyword)
	filter := bson.M{
		"$or": []bson.M{
			{"title": bson.M{"$regex": keyword, "$options": "i"}},
			{"author": bson.M{"$regex": keyword, "$options": "i"}},
			{"title_fold": bson.M{"$regex": folded}},
			{"title_pinyin": bson.M{"$regex": folded}},
			{"author_pinyin": bson.M{"$regex": folded}},
		},
	}

	coll := r.db.Collection(r.collection)
	opts := options.Find().SetLimit(limit).SetSort(bson.D{{Key: "sort_title", Value: 1}})
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search books: %w", err)
	}
	defer cursor.Close(ctx)

	var books []*scene_book_models.BookMetadata
	for cursor.Next(ctx) {
		var book scene_book_models.BookMetadata
		if err := cursor.Decode(&book); err != nil {
			return nil, fmt.Errorf("failed to decode book: %w", err)
		}
		books = append(books, &book)
	}

	return books, nil
}
