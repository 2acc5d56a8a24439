package scene_book_models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeatureKey(t *testing.T) {
	assert.Equal(t, "genre:fantasy", FeatureKey(FeatureKindGenre, " Fantasy "))
	assert.Equal(t, "author:le guin", FeatureKey(FeatureKindAuthor, "Le Guin"))
	// 体裁与格式同名时键不冲突
	assert.NotEqual(t, FeatureKey(FeatureKindGenre, "epub"), FeatureKey(FeatureKindFormat, "epub"))
}

func TestFeatureValue(t *testing.T) {
	assert.Equal(t, "fantasy", FeatureValue("genre:fantasy"))
	assert.Equal(t, "plain", FeatureValue("plain"))
}

func TestPreferenceProfileNorm(t *testing.T) {
	profile := PreferenceProfile{
		"genre:fantasy": 1.0,
		"author:a":      1.5,
		"format:epub":   0.5,
	}
	assert.InDelta(t, math.Sqrt(3.5), profile.Norm(), 1e-9)

	assert.Zero(t, PreferenceProfile{}.Norm())
}

func TestPreferenceProfileTopGenres(t *testing.T) {
	profile := PreferenceProfile{
		"genre:fantasy": 2.0,
		"genre:scifi":   1.5,
		"genre:horror":  1.0,
		"genre:history": 0.5,
		"author:a":      9.9, // 非体裁特征不参与
	}

	assert.Equal(t, []string{"fantasy", "scifi", "horror"}, profile.TopGenres(3))
	assert.Equal(t, []string{"fantasy"}, profile.TopGenres(1))
}

func TestPreferenceProfileTopGenresTieBreak(t *testing.T) {
	profile := PreferenceProfile{
		"genre:scifi":   1.0,
		"genre:fantasy": 1.0,
	}

	// 同权重时按值升序，保证结果确定
	assert.Equal(t, []string{"fantasy", "scifi"}, profile.TopGenres(3))
}

func TestBookFormatClassification(t *testing.T) {
	assert.True(t, IsTextFormat("epub"))
	assert.True(t, IsAudioFormat("m4b"))
	assert.True(t, IsBookFormat("pdf"))
	assert.False(t, IsBookFormat("exe"))
	assert.False(t, IsTextFormat("mp3"))
}

func TestShelfContainsBook(t *testing.T) {
	shelf := Shelf{}
	assert.False(t, shelf.ContainsBook(shelf.ID))
}
