package scene_book_usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Super-Badmen-Viper/NineShelf/domain/domain_library/scene_book/scene_book_interface"
	"github.com/Super-Badmen-Viper/NineShelf/domain/domain_library/scene_book/scene_book_models"
	"github.com/Super-Badmen-Viper/NineShelf/usecase"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ShelfUsecase struct {
	usecase.BaseUsecase[scene_book_models.Shelf]
	repo    scene_book_interface.ShelfRepository
	timeout time.Duration
}

func NewShelfUsecase(repo scene_book_interface.ShelfRepository, timeout time.Duration) *ShelfUsecase {
	return &ShelfUsecase{
		BaseUsecase: usecase.NewBaseUsecase[scene_book_models.Shelf](repo, timeout),
		repo:        repo,
		timeout:     timeout,
	}
}

// CreateShelf 创建书架，名称不允许重复
func (uc *ShelfUsecase) CreateShelf(ctx context.Context, name, comment string) (*scene_book_models.Shelf, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if name == "" {
		return nil, errors.New("shelf name cannot be empty")
	}

	existing, err := uc.repo.GetByName(ctx, name)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to check shelf name: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("shelf already exists: %s", name)
	}

	shelf := &scene_book_models.Shelf{
		Name:    name,
		Comment: comment,
		BookIDs: []primitive.ObjectID{},
	}
	if err := uc.repo.Create(ctx, shelf); err != nil {
		return nil, fmt.Errorf("failed to create shelf: %w", err)
	}

	return shelf, nil
}

// GetByName 根据名称获取书架
func (uc *ShelfUsecase) GetByName(ctx context.Context, name string) (*scene_book_models.Shelf, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if name == "" {
		return nil, errors.New("shelf name cannot be empty")
	}

	return uc.repo.GetByName(ctx, name)
}

// AddBook 向书架添加书目，已存在时幂等返回
func (uc *ShelfUsecase) AddBook(ctx context.Context, shelfID, bookID string) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	shelfObjID, bookObjID, err := parseShelfBookIDs(shelfID, bookID)
	if err != nil {
		return err
	}

	// $addToSet保证并发追加时书目不重复
	update := bson.M{"$addToSet": bson.M{"book_ids": bookObjID}}
	if _, err := uc.repo.UpdateByID(ctx, shelfObjID, update); err != nil {
		return fmt.Errorf("failed to add book to shelf: %w", err)
	}

	return nil
}

// RemoveBook 从书架移除书目
func (uc *ShelfUsecase) RemoveBook(ctx context.Context, shelfID, bookID string) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	shelfObjID, bookObjID, err := parseShelfBookIDs(shelfID, bookID)
	if err != nil {
		return err
	}

	update := bson.M{"$pull": bson.M{"book_ids": bookObjID}}
	if _, err := uc.repo.UpdateByID(ctx, shelfObjID, update); err != nil {
		return fmt.Errorf("failed to remove book from shelf: %w", err)
	}

	return nil
}

func parseShelfBookIDs(shelfID, bookID string) (primitive.ObjectID, primitive.ObjectID, error) {
	shelfObjID, err := primitive.ObjectIDFromHex(shelfID)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, fmt.Errorf("invalid shelf id: %w", err)
	}
	bookObjID, err := primitive.ObjectIDFromHex(bookID)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, fmt.Errorf("invalid book id: %w", err)
	}
	return shelfObjID, bookObjID, nil
}
