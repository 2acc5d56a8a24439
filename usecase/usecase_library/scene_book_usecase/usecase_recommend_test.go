package scene_book_usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Super-Badmen-Viper/NineShelf/domain/domain_library/scene_book/scene_book_interface"
	"github.com/Super-Badmen-Viper/NineShelf/domain/domain_library/scene_book/scene_book_models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeBookRepository 只实现推荐编排用到的GetAll，其余方法未实现
type fakeBookRepository struct {
	scene_book_interface.BookRepository
	books []*scene_book_models.BookMetadata
	err   error
}

func (f *fakeBookRepository) GetAll(context.Context) ([]*scene_book_models.BookMetadata, error) {
	return f.books, f.err
}

type fakeExternalRepository struct {
	mu        sync.Mutex
	responses map[string][]scene_book_models.ExternalBookItem
	errs      map[string]error
	calls     []string
}

func (f *fakeExternalRepository) SearchByGenre(
	_ context.Context,
	genre string,
	_ int,
) ([]scene_book_models.ExternalBookItem, error) {
	f.mu.Lock()
	f.calls = append(f.calls, genre)
	f.mu.Unlock()
	if err, ok := f.errs[genre]; ok {
		return nil, err
	}
	return f.responses[genre], nil
}

func newTestRecommendUsecase(
	books []*scene_book_models.BookMetadata,
	bookErr error,
	external *fakeExternalRepository,
) *RecommendUsecase {
	if external == nil {
		external = &fakeExternalRepository{}
	}
	return NewRecommendUsecase(
		&fakeBookRepository{books: books, err: bookErr},
		external,
		5*time.Second,
	)
}

func finishedBook(title, author string, genres []string, rating float64) *scene_book_models.BookMetadata {
	return &scene_book_models.BookMetadata{
		ID:     primitive.NewObjectID(),
		Title:  title,
		Author: author,
		Genres: genres,
		Format: "epub",
		Status: scene_book_models.BookStatusFinished,
		Rating: ratingOf(rating),
	}
}

func unreadBook(title, author string, genres []string) *scene_book_models.BookMetadata {
	return &scene_book_models.BookMetadata{
		ID:     primitive.NewObjectID(),
		Title:  title,
		Author: author,
		Genres: genres,
		Format: "epub",
		Status: scene_book_models.BookStatusUnread,
	}
}

func TestGetRecommendations_ColdStartReturnsEmpty(t *testing.T) {
	books := []*scene_book_models.BookMetadata{
		unreadBook("Dune", "Herbert", []string{"scifi"}),
		{
			ID:     primitive.NewObjectID(),
			Title:  "Unrated Finished",
			Status: scene_book_models.BookStatusFinished,
			Rating: nil, // 无评分不构成收藏
		},
		{
			ID:     primitive.NewObjectID(),
			Title:  "Low Rated",
			Status: scene_book_models.BookStatusFinished,
			Rating: ratingOf(2),
		},
	}
	uc := newTestRecommendUsecase(books, nil, nil)

	result, err := uc.GetRecommendations(context.Background())

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestGetRecommendations_CatalogErrorPropagates(t *testing.T) {
	uc := newTestRecommendUsecase(nil, errors.New("connection refused"), nil)

	_, err := uc.GetRecommendations(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog snapshot")
}

func TestGetRecommendations_LocalOnlyWhenSufficient(t *testing.T) {
	external := &fakeExternalRepository{}
	books := []*scene_book_models.BookMetadata{
		finishedBook("Fav", "A", []string{"fantasy"}, 5),
		unreadBook("C1", "A", []string{"fantasy"}),
		unreadBook("C2", "B", []string{"fantasy"}),
		unreadBook("C3", "C", []string{"fantasy"}),
	}
	uc := newTestRecommendUsecase(books, nil, external)

	result, err := uc.GetRecommendations(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 3)
	// 本地候选充足时不触发外部查询
	assert.Empty(t, external.calls)
	for _, item := range result {
		assert.False(t, item.IsExternal)
	}
}

func TestGetRecommendations_OrderedByScoreDescending(t *testing.T) {
	books := []*scene_book_models.BookMetadata{
		finishedBook("Fav", "A", []string{"fantasy"}, 5),
		unreadBook("GenreOnly", "B", []string{"fantasy"}),
		unreadBook("SameAuthor", "A", []string{"horror"}),
		unreadBook("Both", "A", []string{"fantasy"}),
	}
	uc := newTestRecommendUsecase(books, nil, nil)

	result, err := uc.GetRecommendations(context.Background())

	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.Equal(t, "Both", result[0].Book.Title)
	assert.Equal(t, "SameAuthor", result[1].Book.Title)
	assert.Equal(t, "GenreOnly", result[2].Book.Title)
	for i := 1; i < len(result); i++ {
		assert.GreaterOrEqual(t, result[i-1].Score, result[i].Score)
	}
}

func TestGetRecommendations_TruncatesToLimit(t *testing.T) {
	books := []*scene_book_models.BookMetadata{
		finishedBook("Fav", "A", []string{"fantasy"}, 5),
	}
	for i := 0; i < 20; i++ {
		books = append(books, unreadBook("Candidate"+string(rune('A'+i)), "B", []string{"fantasy"}))
	}
	uc := newTestRecommendUsecase(books, nil, nil)

	result, err := uc.GetRecommendations(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, TopN)
}

func TestGetRecommendations_ZeroScoreCandidatesDiscarded(t *testing.T) {
	books := []*scene_book_models.BookMetadata{
		finishedBook("Fav", "A", []string{"fantasy"}, 5),
		{
			ID:     primitive.NewObjectID(),
			Title:  "NoOverlap",
			Author: "Z",
			Genres: []string{"cooking"},
			Format: "pdf",
			Status: scene_book_models.BookStatusUnread,
		},
	}
	// 零分候选被丢弃后本地不足，触发外部补充（无结果）
	external := &fakeExternalRepository{}
	uc := newTestRecommendUsecase(books, nil, external)

	result, err := uc.GetRecommendations(context.Background())

	require.NoError(t, err)
	assert.Empty(t, result)
	assert.Equal(t, []string{"fantasy"}, external.calls)
}

func TestGetRecommendations_ExternalFailureIsolated(t *testing.T) {
	catalogDupTitle := "Existing Book"
	books := []*scene_book_models.BookMetadata{
		finishedBook("Fav1", "A", []string{"fantasy", "scifi"}, 5),
		finishedBook("Fav2", "A", []string{"fantasy"}, 4),
		finishedBook(catalogDupTitle, "B", []string{"scifi"}, 3),
		unreadBook("Local1", "A", []string{"horror"}),
		unreadBook("Local2", "B", []string{"fantasy"}),
	}
	external := &fakeExternalRepository{
		errs: map[string]error{
			"scifi": errors.New("timeout"),
		},
		responses: map[string][]scene_book_models.ExternalBookItem{
			"fantasy": {
				{SourceKey: "/works/1", Title: "Fresh Pick", Author: "A", Genres: []string{"fantasy"}},
				{SourceKey: "/works/2", Title: "existing book", Author: "C", Genres: []string{"fantasy"}},
			},
		},
	}
	uc := newTestRecommendUsecase(books, nil, external)

	result, err := uc.GetRecommendations(context.Background())

	// 单个体裁查询失败不影响整体结果
	require.NoError(t, err)

	var locals, externals int
	for _, item := range result {
		if item.IsExternal {
			externals++
			// 与本地书库标题撞车的外部条目已剔除
			assert.NotEqual(t, "existing book", item.External.Title)
		} else {
			locals++
		}
	}
	assert.Equal(t, 2, locals)
	assert.Equal(t, 1, externals)
	assert.LessOrEqual(t, len(result), TopN)
}

func TestGetRecommendations_ExternalDedupedByTitleAcrossGenres(t *testing.T) {
	books := []*scene_book_models.BookMetadata{
		finishedBook("Fav1", "A", []string{"fantasy", "scifi"}, 5),
		unreadBook("Local1", "A", []string{"horror"}),
	}
	external := &fakeExternalRepository{
		responses: map[string][]scene_book_models.ExternalBookItem{
			"fantasy": {
				{SourceKey: "/works/1", Title: "Shared Title", Author: "A", Genres: []string{"fantasy"}},
			},
			"scifi": {
				{SourceKey: "/works/2", Title: "SHARED TITLE", Author: "B", Genres: []string{"scifi"}},
			},
		},
	}
	uc := newTestRecommendUsecase(books, nil, external)

	result, err := uc.GetRecommendations(context.Background())

	require.NoError(t, err)

	var externalCount int
	for _, item := range result {
		if item.IsExternal {
			externalCount++
			// 多体裁返回同一标题时保留首个出现（体裁权重顺序）
			assert.Equal(t, "/works/1", item.External.SourceKey)
		}
	}
	assert.Equal(t, 1, externalCount)
}

func TestGetRecommendations_NoCandidatesReturnsEmpty(t *testing.T) {
	// 书库只有收藏、没有未读/阅读中的候选
	books := []*scene_book_models.BookMetadata{
		finishedBook("Fav", "A", []string{"fantasy"}, 5),
	}
	external := &fakeExternalRepository{
		responses: map[string][]scene_book_models.ExternalBookItem{
			"fantasy": {
				{SourceKey: "/works/1", Title: "External Pick", Author: "Y", Genres: []string{"fantasy"}},
			},
		},
	}
	uc := newTestRecommendUsecase(books, nil, external)

	result, err := uc.GetRecommendations(context.Background())

	require.NoError(t, err)
	assert.Empty(t, result)
	// 候选为空时不得触发外部查询
	assert.Empty(t, external.calls)
}

func TestGetRecommendations_LocalsPrecedeExternalsOnEqualScore(t *testing.T) {
	localMatch := unreadBook("LocalMatch", "Z", []string{"fantasy"})
	// 格式不与画像重叠，保证与仅体裁匹配的外部条目严格同分
	localMatch.Format = "pdf"
	books := []*scene_book_models.BookMetadata{
		finishedBook("Fav", "A", []string{"fantasy"}, 5),
		localMatch,
	}
	external := &fakeExternalRepository{
		responses: map[string][]scene_book_models.ExternalBookItem{
			"fantasy": {
				// 仅体裁匹配，与本地候选同分
				{SourceKey: "/works/1", Title: "External Match", Author: "Y", Genres: []string{"fantasy"}},
			},
		},
	}
	uc := newTestRecommendUsecase(books, nil, external)

	result, err := uc.GetRecommendations(context.Background())

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.InDelta(t, result[0].Score, result[1].Score, 1e-9)
	assert.False(t, result[0].IsExternal)
	assert.True(t, result[1].IsExternal)
}
