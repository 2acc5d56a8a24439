package scene_book_usecase

import (
	"strings"

	"github.com/Super-Badmen-Viper/NineShelf/domain/domain_library/scene_book/scene_book_models"
)

// 画像权重常量
const (
	AuthorBoost  = 1.5       // 作者特征加权系数（同作者续读意愿远高于松散的体裁匹配）
	FormatWeight = 0.5       // 载体格式为弱信号
	DefaultBase  = 3.0 / 5.0 // 评分缺失时的兜底基础权重
)

// BuildPreferenceProfile 从收藏快照构建偏好画像。
// 每个收藏项的基础权重 w = 评分/5，对其全部体裁与标签累加 +w，
// 作者累加 +w*AuthorBoost，格式累加 +w*FormatWeight。
// 多个收藏项共享同一特征时权重持续累加。
func BuildPreferenceProfile(favorites []*scene_book_models.BookMetadata) scene_book_models.PreferenceProfile {
	profile := make(scene_book_models.PreferenceProfile)

	for _, book := range favorites {
		weight := DefaultBase
		if book.Rating != nil {
			weight = *book.Rating / 5.0
		}

		for _, genre := range book.Genres {
			accumulate(profile, scene_book_models.FeatureKindGenre, genre, weight)
		}
		for _, tag := range book.Tags {
			accumulate(profile, scene_book_models.FeatureKindTag, tag, weight)
		}
		accumulate(profile, scene_book_models.FeatureKindAuthor, book.Author, weight*AuthorBoost)
		accumulate(profile, scene_book_models.FeatureKindFormat, book.Format, weight*FormatWeight)
	}

	return profile
}

func accumulate(profile scene_book_models.PreferenceProfile, kind, value string, weight float64) {
	if strings.TrimSpace(value) == "" {
		return
	}
	profile[scene_book_models.FeatureKey(kind, value)] += weight
}

// localFeatureKeys 提取本地候选书目的特征键集合（仅记录存在性，不加权）
func localFeatureKeys(book *scene_book_models.BookMetadata) []string {
	keys := make([]string, 0, len(book.Genres)+len(book.Tags)+2)
	for _, genre := range book.Genres {
		keys = appendFeatureKey(keys, scene_book_models.FeatureKindGenre, genre)
	}
	for _, tag := range book.Tags {
		keys = appendFeatureKey(keys, scene_book_models.FeatureKindTag, tag)
	}
	keys = appendFeatureKey(keys, scene_book_models.FeatureKindAuthor, book.Author)
	keys = appendFeatureKey(keys, scene_book_models.FeatureKindFormat, book.Format)
	return keys
}

// externalFeatureKeys 提取外部存根的特征键集合。
// 外部来源字段可能不完整，缺失的集合按空处理
func externalFeatureKeys(item *scene_book_models.ExternalBookItem) []string {
	keys := make([]string, 0, len(item.Genres)+1)
	for _, genre := range item.Genres {
		keys = appendFeatureKey(keys, scene_book_models.FeatureKindGenre, genre)
	}
	keys = appendFeatureKey(keys, scene_book_models.FeatureKindAuthor, item.Author)
	return keys
}

func appendFeatureKey(keys []string, kind, value string) []string {
	if strings.TrimSpace(value) == "" {
		return keys
	}
	return append(keys, scene_book_models.FeatureKey(kind, value))
}

// scoreAgainstProfile 计算候选特征集合与画像的相似度得分。
// 得分 = 命中特征的画像权重点积 / 画像L2范数（仅对画像向量归一化，
// 候选向量按0/1隐式处理）。画像范数为零时得分定义为零。
// 返回值包含去前缀、去重后的命中特征值，用于结果解释。
func scoreAgainstProfile(
	profile scene_book_models.PreferenceProfile,
	norm float64,
	candidateKeys []string,
) (float64, []string) {
	if norm == 0 {
		return 0, nil
	}

	var dot float64
	seenKeys := make(map[string]struct{}, len(candidateKeys))
	seenValues := make(map[string]struct{}, len(candidateKeys))
	matched := make([]string, 0)

	for _, key := range candidateKeys {
		if _, dup := seenKeys[key]; dup {
			continue
		}
		seenKeys[key] = struct{}{}

		weight, ok := profile[key]
		if !ok || weight <= 0 {
			continue
		}
		dot += weight

		value := scene_book_models.FeatureValue(key)
		if _, dup := seenValues[value]; !dup {
			seenValues[value] = struct{}{}
			matched = append(matched, value)
		}
	}

	return dot / norm, matched
}
