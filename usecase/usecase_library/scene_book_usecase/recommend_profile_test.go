package scene_book_usecase

import (
	"math"
	"testing"

	"github.com/Super-Badmen-Viper/NineShelf/domain/domain_library/scene_book/scene_book_models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ratingOf(v float64) *float64 {
	return &v
}

func TestBuildPreferenceProfile_SingleFavorite(t *testing.T) {
	favorites := []*scene_book_models.BookMetadata{
		{
			Title:  "The Hobbit",
			Author: "A",
			Genres: []string{"Fantasy"},
			Format: "epub",
			Status: scene_book_models.BookStatusFinished,
			Rating: ratingOf(5),
		},
	}

	profile := BuildPreferenceProfile(favorites)

	assert.InDelta(t, 1.0, profile["genre:fantasy"], 1e-9)
	assert.InDelta(t, 1.5, profile["author:a"], 1e-9)
	assert.InDelta(t, 0.5, profile["format:epub"], 1e-9)
	assert.Len(t, profile, 3)
}

func TestBuildPreferenceProfile_AccumulatesAcrossFavorites(t *testing.T) {
	favorites := []*scene_book_models.BookMetadata{
		{Author: "A", Genres: []string{"Fantasy"}, Format: "epub", Rating: ratingOf(5)},
		{Author: "A", Genres: []string{"Fantasy"}, Format: "mp3", Rating: ratingOf(4)},
		{Author: "a ", Genres: []string{" fantasy"}, Format: "epub", Rating: ratingOf(3)},
	}

	profile := BuildPreferenceProfile(favorites)

	// 同一作者的多本收藏权重持续累加，大小写与空白不影响归并
	assert.InDelta(t, (1.0+0.8+0.6)*1.5, profile["author:a"], 1e-9)
	assert.InDelta(t, 1.0+0.8+0.6, profile["genre:fantasy"], 1e-9)
	assert.InDelta(t, (1.0+0.6)*0.5, profile["format:epub"], 1e-9)
}

func TestBuildPreferenceProfile_MissingRatingUsesDefault(t *testing.T) {
	favorites := []*scene_book_models.BookMetadata{
		{Genres: []string{"History"}, Rating: nil},
	}

	profile := BuildPreferenceProfile(favorites)

	assert.InDelta(t, 0.6, profile["genre:history"], 1e-9)
}

func TestBuildPreferenceProfile_SkipsEmptyValues(t *testing.T) {
	favorites := []*scene_book_models.BookMetadata{
		{Author: "  ", Genres: []string{"", "  "}, Format: "", Rating: ratingOf(5)},
	}

	profile := BuildPreferenceProfile(favorites)

	assert.Empty(t, profile)
}

func TestScoreAgainstProfile_GenreOnlyMatch(t *testing.T) {
	profile := scene_book_models.PreferenceProfile{
		"genre:fantasy": 1.0,
		"author:a":      1.5,
		"format:epub":   0.5,
	}
	norm := profile.Norm()
	require.InDelta(t, math.Sqrt(3.5), norm, 1e-9)

	candidate := &scene_book_models.BookMetadata{
		Author: "B",
		Genres: []string{"Fantasy"},
		Format: "pdf",
	}

	score, matched := scoreAgainstProfile(profile, norm, localFeatureKeys(candidate))

	assert.InDelta(t, 1.0/math.Sqrt(3.5), score, 1e-4) // ≈0.535
	assert.Equal(t, []string{"fantasy"}, matched)
}

func TestScoreAgainstProfile_AuthorOutranksGenre(t *testing.T) {
	profile := scene_book_models.PreferenceProfile{
		"genre:fantasy": 1.0,
		"author:a":      1.5,
		"format:epub":   0.5,
	}
	norm := profile.Norm()

	genreCandidate := &scene_book_models.BookMetadata{Genres: []string{"Fantasy"}}
	authorCandidate := &scene_book_models.BookMetadata{Author: "A", Genres: []string{"Horror"}}

	genreScore, _ := scoreAgainstProfile(profile, norm, localFeatureKeys(genreCandidate))
	authorScore, matched := scoreAgainstProfile(profile, norm, localFeatureKeys(authorCandidate))

	assert.InDelta(t, 1.5/math.Sqrt(3.5), authorScore, 1e-4) // ≈0.802
	assert.Greater(t, authorScore, genreScore)
	assert.Equal(t, []string{"a"}, matched)
}

func TestScoreAgainstProfile_ZeroNormYieldsZero(t *testing.T) {
	profile := scene_book_models.PreferenceProfile{}

	score, matched := scoreAgainstProfile(profile, profile.Norm(), []string{"genre:fantasy"})

	assert.Zero(t, score)
	assert.Nil(t, matched)
}

func TestScoreAgainstProfile_NoOverlapYieldsZero(t *testing.T) {
	profile := scene_book_models.PreferenceProfile{"genre:fantasy": 1.0}

	candidate := &scene_book_models.BookMetadata{Genres: []string{"History"}, Author: "B"}
	score, matched := scoreAgainstProfile(profile, profile.Norm(), localFeatureKeys(candidate))

	assert.Zero(t, score)
	assert.Empty(t, matched)
}

func TestScoreAgainstProfile_DuplicateCandidateFeaturesCountOnce(t *testing.T) {
	profile := scene_book_models.PreferenceProfile{"genre:fantasy": 1.0}
	norm := profile.Norm()

	keys := []string{"genre:fantasy", "genre:fantasy"}
	score, matched := scoreAgainstProfile(profile, norm, keys)

	assert.InDelta(t, 1.0, score, 1e-9)
	assert.Equal(t, []string{"fantasy"}, matched)
}

func TestExternalFeatureKeys_MissingFieldsDegradeGracefully(t *testing.T) {
	item := &scene_book_models.ExternalBookItem{Title: "Unknown"}

	assert.Empty(t, externalFeatureKeys(item))

	item.Genres = []string{"Fantasy"}
	item.Author = "A"
	assert.Equal(t, []string{"genre:fantasy", "author:a"}, externalFeatureKeys(item))
}
