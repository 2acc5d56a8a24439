package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Super-Badmen-Viper/NineShelf/domain"
	"github.com/Super-Badmen-Viper/NineShelf/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConfigMongoRepository 配置类MongoDB Repository实现
type ConfigMongoRepository[T any] struct {
	*BaseMongoRepository[T]
}

// NewConfigMongoRepository 创建新的配置Repository实例
func NewConfigMongoRepository[T any](db mongo.Database, collection string) domain.ConfigRepository[T] {
	baseRepo := &BaseMongoRepository[T]{
		db:         db,
		collection: collection,
	}
	return &ConfigMongoRepository[T]{
		BaseMongoRepository: baseRepo,
	}
}

// Get 获取配置（单例模式，获取第一个配置）
func (r *ConfigMongoRepository[T]) Get(ctx context.Context) (*T, error) {
	coll := r.db.Collection(r.collection)
	var config T
	err := coll.FindOne(ctx, bson.M{}).Decode(&config)
	if err != nil {
		return nil, fmt.Errorf("configuration not found: %w", err)
	}
	return &config, nil
}

// Upsert 更新配置
func (r *ConfigMongoRepository[T]) Upsert(ctx context.Context, config *T) error {
	if config == nil {
		return errors.New("config cannot be nil")
	}

	id := r.getEntityID(config)
	if id.IsZero() {
		return errors.New("config ID cannot be empty")
	}

	r.setTimestamps(config, false)

	coll := r.db.Collection(r.collection)
	filter := bson.M{"_id": id}
	update := bson.M{"$set": config}
	opts := options.Update().SetUpsert(true)

	if _, err := coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to update config: %w", err)
	}

	return nil
}

// GetAll 获取所有配置
func (r *ConfigMongoRepository[T]) GetAll(ctx context.Context) ([]*T, error) {
	return r.BaseMongoRepository.GetAll(ctx)
}

// ReplaceAll 替换所有配置（非事务模式）
func (r *ConfigMongoRepository[T]) ReplaceAll(ctx context.Context, configs []*T) error {
	coll := r.db.Collection(r.collection)

	// 先清空现有配置
	if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to delete existing configs: %w", err)
	}

	if len(configs) == 0 {
		return nil
	}

	docs := make([]interface{}, len(configs))
	for i, config := range configs {
		r.setTimestamps(config, true)
		docs[i] = config
	}

	if _, err := coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert new configs: %w", err)
	}

	return nil
}
