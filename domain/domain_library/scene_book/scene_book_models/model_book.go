package scene_book_models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 生命周期状态
const (
	BookStatusUnread     = "unread"      // 未读
	BookStatusInProgress = "in_progress" // 阅读中/收听中
	BookStatusFinished   = "finished"    // 已读完
	BookStatusAbandoned  = "abandoned"   // 已弃读
)

// BookMetadata 书目核心元数据结构
type BookMetadata struct {
	// 系统保留字段 (综合)
	ID        primitive.ObjectID `bson:"_id"`        // 文档唯一标识符
	CreatedAt time.Time          `bson:"created_at"` // 文档创建时间
	UpdatedAt time.Time          `bson:"updated_at"` // 文档最后更新时间
	Path      string             `bson:"path"`       // 书籍文件的存储路径
	Suffix    string             `bson:"suffix"`     // 文件格式后缀（如 epub、m4b 等）
	Size      int64              `bson:"size"`       // 文件大小（字节）

	// 基础元数据 (go.senan.xyz/taglib、github.com/dhowden/tag)
	Title        string   `bson:"title"`         // 书名
	Author       string   `bson:"author"`        // 作者名称
	Narrator     string   `bson:"narrator"`      // 朗读者名称（有声书）
	Publisher    string   `bson:"publisher"`     // 出版方名称
	Description  string   `bson:"description"`   // 内容简介
	Genres       []string `bson:"genres"`        // 体裁标签（如 fantasy、history 等）
	Tags         []string `bson:"tags"`          // 自定义标签
	Language     string   `bson:"language"`      // 主要语言（使用 ISO 639-2 标准代码）
	Year         int      `bson:"year"`          // 出版年份
	SeriesName   string   `bson:"series_name"`   // 所属系列名称（如有）
	SeriesIndex  int      `bson:"series_index"`  // 系列内序号（如有）
	Format       string   `bson:"format"`        // 载体格式（文本: epub/pdf/mobi/azw3/txt，音频: mp3/m4a/m4b/flac）
	TitlePinyin  []string `bson:"title_pinyin"`  // 书名的拼音表示（用于搜索和排序）
	AuthorPinyin []string `bson:"author_pinyin"` // 作者名称的拼音表示（用于搜索和排序）

	// 基础元数据: 索引排序信息
	TitleFold string `bson:"title_fold"` // 规范化书名（大小写折叠，用于去重和排序）
	SortTitle string `bson:"sort_title"` // 排序用书名（去除冠词，如 "The"）

	// 阅读状态 (综合)
	Status  string    `bson:"status"`           // 生命周期状态（unread/in_progress/finished/abandoned）
	Rating  *float64  `bson:"rating,omitempty"` // 用户评分 [1,5]，未评分时缺失
	AddedAt time.Time `bson:"added_at"`         // 入库时间

	// 基础元数据: 视觉元素
	HasCoverArt bool   `bson:"has_cover_art"` // 是否包含封面图
	CoverURL    string `bson:"cover_url"`     // 封面图的 URL 地址（如有）

	// 音频分析 (github.com/abema/go-mp4)
	Duration float64 `bson:"duration"` // 有声书时长（秒）
	BitRate  int     `bson:"bit_rate"` // 比特率（bps）
}

// 文本载体格式
var textFormats = map[string]struct{}{
	"epub": {}, "pdf": {}, "mobi": {}, "azw3": {}, "txt": {},
}

// 音频载体格式
var audioFormats = map[string]struct{}{
	"mp3": {}, "m4a": {}, "m4b": {}, "flac": {},
}

func IsTextFormat(format string) bool {
	_, ok := textFormats[format]
	return ok
}

func IsAudioFormat(format string) bool {
	_, ok := audioFormats[format]
	return ok
}

func IsBookFormat(format string) bool {
	return IsTextFormat(format) || IsAudioFormat(format)
}
