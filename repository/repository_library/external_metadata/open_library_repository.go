package external_metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Super-Badmen-Viper/NineShelf/domain/domain_library/scene_book/scene_book_interface"
	"github.com/Super-Badmen-Viper/NineShelf/domain/domain_library/scene_book/scene_book_models"
)

const defaultRequestTimeout = 10 * time.Second

// openLibrarySubjectResponse OpenLibrary subjects接口响应体（只解析需要的字段）
type openLibrarySubjectResponse struct {
	Works []struct {
		Key     string `json:"key"`
		Title   string `json:"title"`
		Authors []struct {
			Name string `json:"name"`
		} `json:"authors"`
		Subject          []string `json:"subject"`
		CoverID          int64    `json:"cover_id"`
		FirstPublishYear int      `json:"first_publish_year"`
	} `json:"works"`
}

type openLibraryRepository struct {
	baseURL string
	client  *http.Client
}

// NewOpenLibraryRepository 创建OpenLibrary外部书目查询实例。
// baseURL为空时使用官方服务地址。
func NewOpenLibraryRepository(baseURL string) scene_book_interface.ExternalBookRepository {
	if baseURL == "" {
		baseURL = "https://openlibrary.org"
	}
	return &openLibraryRepository{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: defaultRequestTimeout,
		},
	}
}

// SearchByGenre 按体裁查询外部书目，单次调用最多返回limit条。
// 网络错误、超时、响应格式错误都以error返回，由调用方决定容错策略。
func (r *openLibraryRepository) SearchByGenre(ctx context.Context, genre string, limit int) ([]scene_book_models.ExternalBookItem, error) {
	if genre == "" {
		return nil, fmt.Errorf("genre cannot be empty")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than 0")
	}

	// OpenLibrary的subject标识为小写、连字符分隔
	subject := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(genre)), " ", "-")
	endpoint := fmt.Sprintf("%s/subjects/%s.json?limit=%d", r.baseURL, url.PathEscape(subject), limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("subject lookup failed [%s]: %w", genre, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("subject lookup failed [%s]: unexpected status %d", genre, resp.StatusCode)
	}

	var payload openLibrarySubjectResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode subject response [%s]: %w", genre, err)
	}

	items := make([]scene_book_models.ExternalBookItem, 0, len(payload.Works))
	for _, work := range payload.Works {
		if work.Title == "" {
			continue
		}

		item := scene_book_models.ExternalBookItem{
			SourceKey: work.Key,
			Title:     work.Title,
			Genres:    work.Subject,
			Year:      work.FirstPublishYear,
		}
		if len(work.Authors) > 0 {
			item.Author = work.Authors[0].Name
		}
		if len(item.Genres) == 0 {
			// 响应缺失subject时，退化为查询体裁本身
			item.Genres = []string{genre}
		}
		if work.CoverID > 0 {
			item.CoverURL = fmt.Sprintf("https://covers.openlibrary.org/b/id/%d-M.jpg", work.CoverID)
		}

		items = append(items, item)
		if len(items) >= limit {
			break
		}
	}

	return items, nil
}
