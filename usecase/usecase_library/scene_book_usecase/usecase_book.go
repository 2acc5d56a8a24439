package scene_book_usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Super-Badmen-Viper/NineShelf/domain/domain_library/scene_book/scene_book_interface"
	"github.com/Super-Badmen-Viper/NineShelf/domain/domain_library/scene_book/scene_book_models"
	"github.com/Super-Badmen-Viper/NineShelf/usecase"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookUsecase struct {
	usecase.BaseUsecase[scene_book_models.BookMetadata]
	repo    scene_book_interface.BookRepository
	timeout time.Duration
}

func NewBookUsecase(repo scene_book_interface.BookRepository, timeout time.Duration) *BookUsecase {
	return &BookUsecase{
		BaseUsecase: usecase.NewBaseUsecase[scene_book_models.BookMetadata](repo, timeout),
		repo:        repo,
		timeout:     timeout,
	}
}

// 书目列表允许的排序字段
var validBookSortFields = map[string]bool{
	"title":      true,
	"sort_title": true,
	"author":     true,
	"year":       true,
	"rating":     true,
	"status":     true,
	"added_at":   true,
	"created_at": true,
	"updated_at": true,
	"size":       true,
	"duration":   true,
}

// GetAllSorted 按指定字段排序获取全部书目
func (uc *BookUsecase) GetAllSorted(
	ctx context.Context,
	sortField string,
	ascending bool,
) ([]*scene_book_models.BookMetadata, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if !validBookSortFields[strings.ToLower(sortField)] {
		return nil, fmt.Errorf("invalid sort field: %s", sortField)
	}

	return uc.repo.GetAllSorted(ctx, sortField, ascending)
}

// Search 按书名/作者/拼音模糊检索
func (uc *BookUsecase) Search(
	ctx context.Context,
	keyword string,
	limit int64,
) ([]*scene_book_models.BookMetadata, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if keyword == "" {
		return nil, errors.New("keyword cannot be empty")
	}
	if limit <= 0 {
		limit = 50
	}

	return uc.repo.Search(ctx, keyword, limit)
}

// SetStatus 更新书目生命周期状态
func (uc *BookUsecase) SetStatus(ctx context.Context, id string, status string) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	switch status {
	case scene_book_models.BookStatusUnread,
		scene_book_models.BookStatusInProgress,
		scene_book_models.BookStatusFinished,
		scene_book_models.BookStatusAbandoned:
	default:
		return fmt.Errorf("invalid status: %s", status)
	}

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid id format: %w", err)
	}

	if _, err := uc.repo.UpdateByID(ctx, objID, bson.M{"$set": bson.M{"status": status}}); err != nil {
		return fmt.Errorf("failed to update book status: %w", err)
	}

	return nil
}

// SetRating 设置用户评分，取值范围 [1,5]
func (uc *BookUsecase) SetRating(ctx context.Context, id string, rating float64) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating out of range [1,5]: %v", rating)
	}

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid id format: %w", err)
	}

	if _, err := uc.repo.UpdateByID(ctx, objID, bson.M{"$set": bson.M{"rating": rating}}); err != nil {
		return fmt.Errorf("failed to update book rating: %w", err)
	}

	return nil
}

// ClearRating 清除用户评分，恢复为未评分状态
func (uc *BookUsecase) ClearRating(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid id format: %w", err)
	}

	if _, err := uc.repo.UpdateByID(ctx, objID, bson.M{"$unset": bson.M{"rating": ""}}); err != nil {
		return fmt.Errorf("failed to clear book rating: %w", err)
	}

	return nil
}
