package scene_book_usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Super-Badmen-Viper/NineShelf/domain/domain_library/scene_book/scene_book_interface"
	"github.com/Super-Badmen-Viper/NineShelf/domain/domain_library/scene_book/scene_book_models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProgressUsecase struct {
	progressRepo scene_book_interface.ProgressRepository
	bookRepo     scene_book_interface.BookRepository
	timeout      time.Duration
}

func NewProgressUsecase(
	progressRepo scene_book_interface.ProgressRepository,
	bookRepo scene_book_interface.BookRepository,
	timeout time.Duration,
) *ProgressUsecase {
	return &ProgressUsecase{
		progressRepo: progressRepo,
		bookRepo:     bookRepo,
		timeout:      timeout,
	}
}

// GetByBookID 获取指定书目的进度，不存在时返回nil
func (uc *ProgressUsecase) GetByBookID(ctx context.Context, bookID string) (*scene_book_models.ReadingProgress, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	bookObjID, err := primitive.ObjectIDFromHex(bookID)
	if err != nil {
		return nil, fmt.Errorf("invalid book id: %w", err)
	}

	progress, err := uc.progressRepo.GetByBookID(ctx, bookObjID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	return progress, err
}

// UpsertProgress 记录阅读/收听进度，每本书仅保留一条进度记录。
// 进度>0时书目状态推进为阅读中，达到100时推进为已读完。
func (uc *ProgressUsecase) UpsertProgress(
	ctx context.Context,
	bookID string,
	percent float64,
	position string,
	audioPos float64,
) (*scene_book_models.ReadingProgress, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if percent < 0 || percent > 100 {
		return nil, fmt.Errorf("percent out of range [0,100]: %v", percent)
	}
	if audioPos < 0 {
		return nil, fmt.Errorf("audio position cannot be negative: %v", audioPos)
	}

	bookObjID, err := primitive.ObjectIDFromHex(bookID)
	if err != nil {
		return nil, fmt.Errorf("invalid book id: %w", err)
	}

	book, err := uc.bookRepo.GetByID(ctx, bookObjID)
	if err != nil {
		return nil, fmt.Errorf("failed to get book: %w", err)
	}

	progress, err := uc.progressRepo.GetByBookID(ctx, bookObjID)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}

	now := time.Now().UTC()
	if progress == nil {
		progress = &scene_book_models.ReadingProgress{
			BookID:    bookObjID,
			StartedAt: now,
		}
	}
	progress.Percent = percent
	progress.Position = position
	progress.AudioPos = audioPos
	if percent >= 100 && progress.FinishedAt.IsZero() {
		progress.FinishedAt = now
	}

	if progress.ID.IsZero() {
		if err := uc.progressRepo.Create(ctx, progress); err != nil {
			return nil, fmt.Errorf("failed to create progress: %w", err)
		}
	} else {
		if err := uc.progressRepo.Update(ctx, progress); err != nil {
			return nil, fmt.Errorf("failed to update progress: %w", err)
		}
	}

	if err := uc.advanceBookStatus(ctx, book, percent); err != nil {
		return nil, err
	}

	return progress, nil
}

// MarkAbandoned 标记书目为已弃读，进度记录保留
func (uc *ProgressUsecase) MarkAbandoned(ctx context.Context, bookID string) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	bookObjID, err := primitive.ObjectIDFromHex(bookID)
	if err != nil {
		return fmt.Errorf("invalid book id: %w", err)
	}

	update := bson.M{"$set": bson.M{"status": scene_book_models.BookStatusAbandoned}}
	if _, err := uc.bookRepo.UpdateByID(ctx, bookObjID, update); err != nil {
		return fmt.Errorf("failed to mark book abandoned: %w", err)
	}

	return nil
}

// advanceBookStatus 依据进度推进书目状态，只前进不回退
func (uc *ProgressUsecase) advanceBookStatus(
	ctx context.Context,
	book *scene_book_models.BookMetadata,
	percent float64,
) error {
	var next string
	switch {
	case percent >= 100:
		next = scene_book_models.BookStatusFinished
	case percent > 0 && book.Status == scene_book_models.BookStatusUnread:
		next = scene_book_models.BookStatusInProgress
	default:
		return nil
	}

	if book.Status == next {
		return nil
	}

	update := bson.M{"$set": bson.M{"status": next}}
	if _, err := uc.bookRepo.UpdateByID(ctx, book.ID, update); err != nil {
		return fmt.Errorf("failed to advance book status: %w", err)
	}

	return nil
}
