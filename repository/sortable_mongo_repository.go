package repository

import (
	"context"
	"fmt"

	"github.com/Super-Badmen-Viper/NineShelf/domain"
	"github.com/Super-Badmen-Viper/NineShelf/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SortableMongoRepository 可排序MongoDB Repository实现
type SortableMongoRepository[T any] struct {
	*BaseMongoRepository[T]
}

// NewSortableMongoRepository 创建支持排序查询的Repository实例
func NewSortableMongoRepository[T any](db mongo.Database, collection string) domain.SortableRepository[T] {
	return &SortableMongoRepository[T]{
		BaseMongoRepository: &BaseMongoRepository[T]{
			db:         db,
			collection: collection,
		},
	}
}

// GetAllSorted 按指定字段排序获取所有实体
func (r *SortableMongoRepository[T]) GetAllSorted(ctx context.Context, sortField string, ascending bool) ([]*T, error) {
	direction := 1
	if !ascending {
		direction = -1
	}

	coll := r.db.Collection(r.collection)
	opts := options.Find().SetSort(bson.D{{Key: sortField, Value: direction}})

	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find entities: %w", err)
	}
	defer cursor.Close(ctx)

	var entities []*T
	for cursor.Next(ctx) {
		var entity T
		if err := cursor.Decode(&entity); err != nil {
			return nil, fmt.Errorf("failed to decode entity: %w", err)
		}
		entities = append(entities, &entity)
	}

	return entities, nil
}

// GetPaginatedSorted 按指定字段排序分页查询
func (r *SortableMongoRepository[T]) GetPaginatedSorted(ctx context.Context, filter interface{}, skip, limit int64, sortField string, ascending bool) ([]*T, error) {
	direction := 1
	if !ascending {
		direction = -1
	}

	coll := r.db.Collection(r.collection)
	opts := options.Find().
		SetSort(bson.D{{Key: sortField, Value: direction}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find entities: %w", err)
	}
	defer cursor.Close(ctx)

	var entities []*T
	for cursor.Next(ctx) {
		var entity T
		if err := cursor.Decode(&entity); err != nil {
			return nil, fmt.Errorf("failed to decode entity: %w", err)
		}
		entities = append(entities, &entity)
	}

	return entities, nil
}
