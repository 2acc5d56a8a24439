package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/Super-Badmen-Viper/NineShelf/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func CreateIndexes(db Database) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// User Collection
	userCollection := db.Collection(domain.CollectionUser)
	createIndex(ctx, userCollection, bson.D{{Key: "email", Value: 1}}, "email")

	// Book Collection - 书目索引 + 拼音优化
	bookCollection := db.Collection(domain.CollectionLibrarySceneBook)
	createIndex(ctx, bookCollection, bson.D{{Key: "title_fold", Value: 1}}, "title_fold")
	createIndex(ctx, bookCollection, bson.D{{Key: "author", Value: 1}}, "author")
	createIndex(ctx, bookCollection, bson.D{{Key: "genres", Value: 1}}, "genres")
	createIndex(ctx, bookCollection, bson.D{{Key: "tags", Value: 1}}, "tags")
	createIndex(ctx, bookCollection, bson.D{{Key: "format", Value: 1}}, "format")
	createIndex(ctx, bookCollection, bson.D{{Key: "status", Value: 1}}, "status")
	createIndex(ctx, bookCollection, bson.D{{Key: "rating", Value: -1}}, "rating")
	createIndex(ctx, bookCollection, bson.D{{Key: "path", Value: 1}}, "path")
	createIndex(ctx, bookCollection, bson.D{{Key: "created_at", Value: -1}}, "created_at")
	// 拼音索引
	createIndex(ctx, bookCollection, bson.D{{Key: "title_pinyin", Value: 1}}, "title_pinyin")
	createIndex(ctx, bookCollection, bson.D{{Key: "author_pinyin", Value: 1}}, "author_pinyin")
	// 复合索引优化
	createIndex(ctx, bookCollection, bson.D{
		{Key: "status", Value: 1},
		{Key: "rating", Value: -1}}, "status_rating_compound")
	createIndex(ctx, bookCollection, bson.D{
		{Key: "author", Value: 1},
		{Key: "status", Value: 1}}, "author_status_compound")

	// Shelf Collection
	shelfCollection := db.Collection(domain.CollectionLibrarySceneShelf)
	createIndex(ctx, shelfCollection, bson.D{{Key: "name", Value: 1}}, "name")
	createIndex(ctx, shelfCollection, bson.D{{Key: "updated_at", Value: -1}}, "updated_at")

	// Reading Progress Collection
	progressCollection := db.Collection(domain.CollectionLibrarySceneProgress)
	createIndex(ctx, progressCollection, bson.D{{Key: "book_id", Value: 1}}, "book_id")
	createIndex(ctx, progressCollection, bson.D{{Key: "updated_at", Value: -1}}, "updated_at")
}

func createIndex(
	ctx context.Context,
	collection Collection,
	keys bson.D,
	name string,
) {
	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetName(name).SetBackground(true),
	}

	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		fmt.Printf("创建索引 '%s' 失败: %v\n", name, err)
	}
}

func DropAllIndexes(db Database) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	collections := []string{
		domain.CollectionLibrarySceneBook,
		domain.CollectionLibrarySceneShelf,
		domain.CollectionLibrarySceneProgress,
	}

	for _, collName := range collections {
		collection := db.Collection(collName)
		if _, err := collection.Indexes().DropAll(ctx); err != nil {
			fmt.Printf("删除 '%s' 索引失败: %v\n", collName, err)
		}
	}
}
