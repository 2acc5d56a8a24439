package scene_book_usecase

import (
	"context"
	"testing"
	"time"

	"github.com/Super-Badmen-Viper/NineShelf/domain/domain_library/scene_book/scene_book_interface"
	"github.com/Super-Badmen-Viper/NineShelf/domain/domain_library/scene_book/scene_book_models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeProgressRepository struct {
	scene_book_interface.ProgressRepository
	existing *scene_book_models.ReadingProgress
	created  *scene_book_models.ReadingProgress
	updated  *scene_book_models.ReadingProgress
}

func (f *fakeProgressRepository) GetByBookID(
	context.Context,
	primitive.ObjectID,
) (*scene_book_models.ReadingProgress, error) {
	if f.existing == nil {
		return nil, mongo.ErrNoDocuments
	}
	return f.existing, nil
}

func (f *fakeProgressRepository) Create(_ context.Context, p *scene_book_models.ReadingProgress) error {
	f.created = p
	return nil
}

func (f *fakeProgressRepository) Update(_ context.Context, p *scene_book_models.ReadingProgress) error {
	f.updated = p
	return nil
}

type statusTrackingBookRepository struct {
	scene_book_interface.BookRepository
	book          *scene_book_models.BookMetadata
	statusUpdates []bson.M
}

func (f *statusTrackingBookRepository) GetByID(
	context.Context,
	primitive.ObjectID,
) (*scene_book_models.BookMetadata, error) {
	return f.book, nil
}

func (f *statusTrackingBookRepository) UpdateByID(
	_ context.Context,
	_ primitive.ObjectID,
	update bson.M,
) (bool, error) {
	f.statusUpdates = append(f.statusUpdates, update)
	return true, nil
}

func TestUpsertProgress_CreatesAndMarksInProgress(t *testing.T) {
	book := &scene_book_models.BookMetadata{
		ID:     primitive.NewObjectID(),
		Status: scene_book_models.BookStatusUnread,
	}
	progressRepo := &fakeProgressRepository{}
	bookRepo := &statusTrackingBookRepository{book: book}
	uc := NewProgressUsecase(progressRepo, bookRepo, 5*time.Second)

	progress, err := uc.UpsertProgress(context.Background(), book.ID.Hex(), 42.5, "ch3", 0)

	require.NoError(t, err)
	require.NotNil(t, progressRepo.created)
	assert.InDelta(t, 42.5, progress.Percent, 1e-9)
	assert.Equal(t, "ch3", progress.Position)
	assert.False(t, progress.StartedAt.IsZero())
	assert.True(t, progress.FinishedAt.IsZero())

	require.Len(t, bookRepo.statusUpdates, 1)
	set := bookRepo.statusUpdates[0]["$set"].(bson.M)
	assert.Equal(t, scene_book_models.BookStatusInProgress, set["status"])
}

func TestUpsertProgress_FullPercentMarksFinished(t *testing.T) {
	book := &scene_book_models.BookMetadata{
		ID:     primitive.NewObjectID(),
		Status: scene_book_models.BookStatusInProgress,
	}
	existing := &scene_book_models.ReadingProgress{
		ID:     primitive.NewObjectID(),
		BookID: book.ID,
	}
	progressRepo := &fakeProgressRepository{existing: existing}
	bookRepo := &statusTrackingBookRepository{book: book}
	uc := NewProgressUsecase(progressRepo, bookRepo, 5*time.Second)

	progress, err := uc.UpsertProgress(context.Background(), book.ID.Hex(), 100, "", 7200)

	require.NoError(t, err)
	require.NotNil(t, progressRepo.updated)
	assert.False(t, progress.FinishedAt.IsZero())

	require.Len(t, bookRepo.statusUpdates, 1)
	set := bookRepo.statusUpdates[0]["$set"].(bson.M)
	assert.Equal(t, scene_book_models.BookStatusFinished, set["status"])
}

func TestUpsertProgress_NoStatusChangeWhenAlreadyInProgress(t *testing.T) {
	book := &scene_book_models.BookMetadata{
		ID:     primitive.NewObjectID(),
		Status: scene_book_models.BookStatusInProgress,
	}
	progressRepo := &fakeProgressRepository{}
	bookRepo := &statusTrackingBookRepository{book: book}
	uc := NewProgressUsecase(progressRepo, bookRepo, 5*time.Second)

	_, err := uc.UpsertProgress(context.Background(), book.ID.Hex(), 50, "", 0)

	require.NoError(t, err)
	assert.Empty(t, bookRepo.statusUpdates)
}

func TestUpsertProgress_RejectsInvalidPercent(t *testing.T) {
	uc := NewProgressUsecase(&fakeProgressRepository{}, &statusTrackingBookRepository{}, 5*time.Second)

	_, err := uc.UpsertProgress(context.Background(), primitive.NewObjectID().Hex(), 120, "", 0)
	assert.Error(t, err)

	_, err = uc.UpsertProgress(context.Background(), primitive.NewObjectID().Hex(), -1, "", 0)
	assert.Error(t, err)
}

func TestMarkAbandoned(t *testing.T) {
	bookRepo := &statusTrackingBookRepository{}
	uc := NewProgressUsecase(&fakeProgressRepository{}, bookRepo, 5*time.Second)

	err := uc.MarkAbandoned(context.Background(), primitive.NewObjectID().Hex())

	require.NoError(t, err)
	require.Len(t, bookRepo.statusUpdates, 1)
	set := bookRepo.statusUpdates[0]["$set"].(bson.M)
	assert.Equal(t, scene_book_models.BookStatusAbandoned, set["status"])
}
