package scene_book_import

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Super-Badmen-Viper/NineShelf/domain/domain_library/scene_book/scene_book_models"
	"github.com/Super-Badmen-Viper/NineShelf/domain/domain_util"
	mp4 "github.com/abema/go-mp4"
	"github.com/dhowden/tag"
	"go.senan.xyz/taglib"
)

type BookMetadataExtractor struct{}

// Extract 从书籍文件提取元数据。
// 文本格式从文件名推导书名，音频格式优先读取内嵌标签
func (e *BookMetadataExtractor) Extract(path string, info os.FileInfo) (*scene_book_models.BookMetadata, error) {
	suffix := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if !scene_book_models.IsBookFormat(suffix) {
		return nil, fmt.Errorf("unsupported format: %s", suffix)
	}

	now := time.Now().UTC()
	book := &scene_book_models.BookMetadata{
		CreatedAt: now,
		UpdatedAt: now,
		AddedAt:   now,
		Path:      path,
		Suffix:    suffix,
		Size:      info.Size(),
		Format:    suffix,
		Status:    scene_book_models.BookStatusUnread,
	}

	if scene_book_models.IsAudioFormat(suffix) {
		e.extractAudioTags(path, suffix, book)
	}

	if book.Title == "" {
		book.Title = titleFromFilename(path)
	}

	book.TitleFold = domain_util.NormalizeTitle(book.Title)
	book.SortTitle = domain_util.SortTitle(book.Title)
	book.TitlePinyin = domain_util.PinyinKeys(book.Title)
	if book.Author != "" {
		book.AuthorPinyin = domain_util.PinyinKeys(book.Author)
	}

	return book, nil
}

// extractAudioTags 读取有声书的内嵌标签。
// taglib为主读取器，失败时降级到dhowden/tag
func (e *BookMetadataExtractor) extractAudioTags(path, suffix string, book *scene_book_models.BookMetadata) {
	tags, err := taglib.ReadTags(path)
	if err != nil {
		log.Printf("标签读取失败[%s]: %v, 降级到备用读取器", path, err)
		e.extractAudioTagsFallback(path, book)
	} else {
		book.Title = firstTag(tags, taglib.Title)
		book.Author = firstTag(tags, taglib.Artist)
		book.Narrator = firstTag(tags, taglib.Composer)
		book.Description = firstTag(tags, taglib.Comment)
		book.Language = firstTag(tags, taglib.Language)
		book.SeriesName = firstTag(tags, taglib.Album)
		if genre := firstTag(tags, taglib.Genre); genre != "" {
			book.Genres = splitListTag(genre)
		}
		if year := firstTag(tags, taglib.Date); year != "" {
			book.Year = parseYear(year)
		}
		if track := firstTag(tags, taglib.TrackNumber); track != "" {
			if idx, err := strconv.Atoi(strings.SplitN(track, "/", 2)[0]); err == nil {
				book.SeriesIndex = idx
			}
		}
	}

	properties, err := taglib.ReadProperties(path)
	if err == nil && properties.Length > 0 {
		book.Duration = properties.Length.Seconds()
		book.BitRate = int(properties.Bitrate)
	}

	// m4a/m4b容器的时长经常缺失，直接解析容器补齐
	if book.Duration == 0 && (suffix == "m4a" || suffix == "m4b") {
		if duration, err := probeMP4Duration(path); err != nil {
			log.Printf("容器时长解析失败[%s]: %v", path, err)
		} else {
			book.Duration = duration
		}
	}
}

// extractAudioTagsFallback 备用标签读取器
func (e *BookMetadataExtractor) extractAudioTagsFallback(path string, book *scene_book_models.BookMetadata) {
	file, err := os.Open(path)
	if err != nil {
		log.Printf("文件打开失败[%s]: %v", path, err)
		return
	}
	defer func(file *os.File) {
		if err := file.Close(); err != nil {
			log.Printf("文件关闭失败[%s]: %v", path, err)
		}
	}(file)

	meta, err := tag.ReadFrom(file)
	if err != nil {
		log.Printf("备用标签读取失败[%s]: %v", path, err)
		return
	}

	book.Title = strings.TrimSpace(meta.Title())
	book.Author = strings.TrimSpace(meta.Artist())
	book.Narrator = strings.TrimSpace(meta.Composer())
	book.Description = strings.TrimSpace(meta.Comment())
	book.SeriesName = strings.TrimSpace(meta.Album())
	if genre := strings.TrimSpace(meta.Genre()); genre != "" {
		book.Genres = splitListTag(genre)
	}
	book.Year = meta.Year()
	if idx, _ := meta.Track(); idx > 0 {
		book.SeriesIndex = idx
	}
	if meta.Picture() != nil {
		book.HasCoverArt = true
	}
}

// probeMP4Duration 解析MP4容器获取时长（秒）
func probeMP4Duration(path string) (float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer func(file *os.File) {
		if err := file.Close(); err != nil {
			log.Printf("文件关闭失败[%s]: %v", path, err)
		}
	}(file)

	probe, err := mp4.Probe(file)
	if err != nil {
		return 0, fmt.Errorf("mp4 probe failed: %w", err)
	}
	if probe.Timescale == 0 {
		return 0, fmt.Errorf("mp4 timescale is zero")
	}

	return float64(probe.Duration) / float64(probe.Timescale), nil
}

// titleFromFilename 从文件名推导书名，
// 兼容 "作者 - 书名" 命名惯例
func titleFromFilename(path string) string {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if idx := strings.Index(name, " - "); idx > 0 {
		name = name[idx+3:]
	}
	return strings.TrimSpace(name)
}

func firstTag(tags map[string][]string, key string) string {
	values := tags[key]
	if len(values) > 0 {
		return strings.TrimSpace(values[0])
	}
	return ""
}

// splitListTag 拆分多值标签（分号/斜杠/逗号分隔）
func splitListTag(value string) []string {
	parts := strings.FieldsFunc(value, func(r rune) bool {
		return r == ';' || r == '/' || r == ','
	})
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func parseYear(value string) int {
	if len(value) >= 4 {
		if year, err := strconv.Atoi(value[:4]); err == nil {
			return year
		}
	}
	return 0
}
