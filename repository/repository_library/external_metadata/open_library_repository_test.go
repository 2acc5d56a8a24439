package external_metadata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchByGenre(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/subjects/science-fiction.json", r.URL.Path)
		assert.Equal(t, "8", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"works": [
				{
					"key": "/works/OL1W",
					"title": "Dune",
					"authors": [{"name": "Frank Herbert"}],
					"subject": ["science fiction", "ecology"],
					"cover_id": 123,
					"first_publish_year": 1965
				},
				{
					"key": "/works/OL2W",
					"title": ""
				},
				{
					"key": "/works/OL3W",
					"title": "Foundation"
				}
			]
		}`))
	}))
	defer server.Close()

	repo := NewOpenLibraryRepository(server.URL)
	items, err := repo.SearchByGenre(context.Background(), "Science Fiction", 8)

	require.NoError(t, err)
	require.Len(t, items, 2) // 无标题条目被剔除

	assert.Equal(t, "/works/OL1W", items[0].SourceKey)
	assert.Equal(t, "Dune", items[0].Title)
	assert.Equal(t, "Frank Herbert", items[0].Author)
	assert.Equal(t, []string{"science fiction", "ecology"}, items[0].Genres)
	assert.Equal(t, 1965, items[0].Year)
	assert.Contains(t, items[0].CoverURL, "123")

	// subject缺失时退化为查询体裁本身
	assert.Equal(t, []string{"Science Fiction"}, items[1].Genres)
	assert.Empty(t, items[1].Author)
}

func TestSearchByGenre_TruncatesToLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"works": [
			{"key": "/works/1", "title": "A"},
			{"key": "/works/2", "title": "B"},
			{"key": "/works/3", "title": "C"}
		]}`))
	}))
	defer server.Close()

	repo := NewOpenLibraryRepository(server.URL)
	items, err := repo.SearchByGenre(context.Background(), "fantasy", 2)

	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestSearchByGenre_ServerErrorReturned(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	repo := NewOpenLibraryRepository(server.URL)
	_, err := repo.SearchByGenre(context.Background(), "fantasy", 8)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}

func TestSearchByGenre_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	repo := NewOpenLibraryRepository(server.URL)
	_, err := repo.SearchByGenre(context.Background(), "fantasy", 8)

	require.Error(t, err)
}

func TestSearchByGenre_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"works": []}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	repo := NewOpenLibraryRepository(server.URL)
	_, err := repo.SearchByGenre(ctx, "fantasy", 8)

	require.Error(t, err)
}

func TestSearchByGenre_InvalidArguments(t *testing.T) {
	repo := NewOpenLibraryRepository("")

	_, err := repo.SearchByGenre(context.Background(), "", 8)
	assert.Error(t, err)

	_, err = repo.SearchByGenre(context.Background(), "fantasy", 0)
	assert.Error(t, err)
}
