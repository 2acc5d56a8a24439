package scene_book_models

import (
	"math"
	"sort"
	"strings"
)

// 特征键种类标签，避免跨种类的值冲突（如体裁 "epub" 与格式 "epub"）
const (
	FeatureKindGenre  = "genre"
	FeatureKindTag    = "tag"
	FeatureKindAuthor = "author"
	FeatureKindFormat = "format"
)

// FeatureKey 组合特征键：<kind>:<value>，值经过小写和去空格规范化
func FeatureKey(kind, value string) string {
	return kind + ":" + strings.ToLower(strings.TrimSpace(value))
}

// FeatureValue 去除特征键的种类前缀，得到面向用户的匹配说明值
func FeatureValue(key string) string {
	if idx := strings.Index(key, ":"); idx >= 0 {
		return key[idx+1:]
	}
	return key
}

// PreferenceProfile 用户偏好画像：特征键到非负权重的映射。
// 每次推荐请求基于当前收藏快照重新构建，不做持久化。
type PreferenceProfile map[string]float64

// Norm 画像权重向量的L2范数
func (p PreferenceProfile) Norm() float64 {
	var sum float64
	for _, w := range p {
		sum += w * w
	}
	return math.Sqrt(sum)
}

// TopGenres 按权重降序返回画像中前n个体裁特征的值（去除种类前缀）
func (p PreferenceProfile) TopGenres(n int) []string {
	type genreWeight struct {
		value  string
		weight float64
	}
	genres := make([]genreWeight, 0)
	prefix := FeatureKindGenre + ":"
	for key, w := range p {
		if strings.HasPrefix(key, prefix) {
			genres = append(genres, genreWeight{value: key[len(prefix):], weight: w})
		}
	}
	sort.SliceStable(genres, func(i, j int) bool {
		if genres[i].weight != genres[j].weight {
			return genres[i].weight > genres[j].weight
		}
		return genres[i].value < genres[j].value
	})
	if len(genres) > n {
		genres = genres[:n]
	}
	values := make([]string, len(genres))
	for i, g := range genres {
		values[i] = g.value
	}
	return values
}

// ExternalBookItem 外部来源的书目存根，字段可能不完整；
// 缺失的集合字段在特征提取时按空集合处理
type ExternalBookItem struct {
	SourceKey string   `bson:"source_key" json:"source_key"` // 外部来源的唯一标识（如 OpenLibrary work key）
	Title     string   `bson:"title" json:"title"`           // 书名
	Author    string   `bson:"author" json:"author"`         // 作者名称
	Genres    []string `bson:"genres" json:"genres"`         // 体裁标签
	CoverURL  string   `bson:"cover_url" json:"cover_url"`   // 封面图的 URL 地址（如有）
	Year      int      `bson:"year" json:"year"`             // 首次出版年份
}

// RecommendedBook 推荐结果单元：本地书目或外部存根之一，
// 附带相似度得分与匹配特征说明
type RecommendedBook struct {
	Book            *BookMetadata     `json:"book,omitempty"`     // 本地书目（本地来源时非空）
	External        *ExternalBookItem `json:"external,omitempty"` // 外部存根（外部来源时非空）
	Score           float64           `json:"score"`              // 相似度得分（≥0，通常≤1）
	MatchedFeatures []string          `json:"matched_features"`   // 匹配特征值（去前缀、去重）
	IsExternal      bool              `json:"is_external"`        // 是否来自外部来源
}
