package scene_book_usecase

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/Super-Badmen-Viper/NineShelf/domain/domain_library/scene_book/scene_book_interface"
	"github.com/Super-Badmen-Viper/NineShelf/domain/domain_library/scene_book/scene_book_models"
	"github.com/Super-Badmen-Viper/NineShelf/domain/domain_util"
)

// 推荐编排常量
const (
	MinRating           = 3.0 // 收藏判定的最低评分
	TopN                = 12  // 最终结果上限
	MinLocalCandidates  = 3   // 本地候选充足性阈值，低于该值触发外部补充
	TopGenreCount       = 3   // 外部补充时取画像前N个体裁
	ExternalFetchLimit  = 8   // 单个体裁的外部查询数量上限
	ExternalResultLimit = 6   // 外部结果保留上限
)

type RecommendUsecase struct {
	bookRepo     scene_book_interface.BookRepository
	externalRepo scene_book_interface.ExternalBookRepository
	timeout      time.Duration
}

func NewRecommendUsecase(
	bookRepo scene_book_interface.BookRepository,
	externalRepo scene_book_interface.ExternalBookRepository,
	timeout time.Duration,
) *RecommendUsecase {
	return &RecommendUsecase{
		bookRepo:     bookRepo,
		externalRepo: externalRepo,
		timeout:      timeout,
	}
}

// GetRecommendations 基于当前书库快照生成排序后的推荐列表。
// 收藏为空时直接返回空结果（冷启动策略）。
// 仅书库读取失败会作为硬错误返回，外部查询失败一律吞掉并记录日志。
func (uc *RecommendUsecase) GetRecommendations(ctx context.Context) ([]scene_book_models.RecommendedBook, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	books, err := uc.bookRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog snapshot: %w", err)
	}

	favorites, candidates := partitionCatalog(books)
	if len(favorites) == 0 {
		return []scene_book_models.RecommendedBook{}, nil
	}
	// 没有任何未读/阅读中的书目时直接返回空结果，不触发外部补充
	if len(candidates) == 0 {
		return []scene_book_models.RecommendedBook{}, nil
	}

	profile := BuildPreferenceProfile(favorites)
	norm := profile.Norm()

	locals := scoreLocalCandidates(profile, norm, candidates)
	sortByScore(locals)
	if len(locals) > TopN {
		locals = locals[:TopN]
	}

	if len(locals) >= MinLocalCandidates {
		return locals, nil
	}

	externals := uc.fetchExternalCandidates(ctx, profile, norm, books)
	if len(externals) == 0 {
		return locals, nil
	}

	// 本地结果在前拼接，稳定排序保证同分时本地优先
	merged := append(locals, externals...)
	sortByScore(merged)
	if len(merged) > TopN {
		merged = merged[:TopN]
	}

	return merged, nil
}

// partitionCatalog 划分书库快照：
// 收藏 = 已读完且评分≥MinRating，候选 = 未读或阅读中
func partitionCatalog(
	books []*scene_book_models.BookMetadata,
) (favorites, candidates []*scene_book_models.BookMetadata) {
	for _, book := range books {
		switch {
		case book.Status == scene_book_models.BookStatusFinished &&
			book.Rating != nil && *book.Rating >= MinRating:
			favorites = append(favorites, book)
		case book.Status == scene_book_models.BookStatusUnread ||
			book.Status == scene_book_models.BookStatusInProgress:
			candidates = append(candidates, book)
		}
	}
	return favorites, candidates
}

// scoreLocalCandidates 对本地候选逐一打分，零分（无任何特征重叠）直接丢弃
func scoreLocalCandidates(
	profile scene_book_models.PreferenceProfile,
	norm float64,
	candidates []*scene_book_models.BookMetadata,
) []scene_book_models.RecommendedBook {
	scored := make([]scene_book_models.RecommendedBook, 0, len(candidates))
	for _, book := range candidates {
		score, matched := scoreAgainstProfile(profile, norm, localFeatureKeys(book))
		if score <= 0 {
			continue
		}
		scored = append(scored, scene_book_models.RecommendedBook{
			Book:            book,
			Score:           score,
			MatchedFeatures: matched,
		})
	}
	return scored
}

// fetchExternalCandidates 外部补充：按画像前TopGenreCount个体裁并发查询外部来源，
// 单个体裁查询失败仅记录日志并按零结果处理，不影响其余分支。
// 返回结果已对整个书库快照去重、打分、按标题去重并截断。
func (uc *RecommendUsecase) fetchExternalCandidates(
	ctx context.Context,
	profile scene_book_models.PreferenceProfile,
	norm float64,
	catalog []*scene_book_models.BookMetadata,
) []scene_book_models.RecommendedBook {
	genres := profile.TopGenres(TopGenreCount)
	if len(genres) == 0 {
		return nil
	}

	// 按体裁索引收集结果，保证合并顺序与体裁顺序一致、与完成顺序无关
	results := make([][]scene_book_models.ExternalBookItem, len(genres))
	var wg sync.WaitGroup
	for i, genre := range genres {
		wg.Add(1)
		go func(idx int, g string) {
			defer wg.Done()
			items, err := uc.externalRepo.SearchByGenre(ctx, g, ExternalFetchLimit)
			if err != nil {
				log.Printf("external candidate lookup failed for genre %s: %v", g, err)
				return
			}
			results[idx] = items
		}(i, genre)
	}
	wg.Wait()

	localIDs := make(map[string]struct{}, len(catalog))
	localTitles := make(map[string]struct{}, len(catalog))
	for _, book := range catalog {
		localIDs[book.ID.Hex()] = struct{}{}
		localTitles[domain_util.NormalizeTitle(book.Title)] = struct{}{}
	}

	seenTitles := make(map[string]struct{})
	externals := make([]scene_book_models.RecommendedBook, 0)
	for _, items := range results {
		for i := range items {
			item := items[i]
			title := domain_util.NormalizeTitle(item.Title)

			// 与本地书库按标识或标题撞车的外部条目一律剔除，
			// 用户已拥有的书（无论是否读过）不允许再次出现
			if _, owned := localIDs[item.SourceKey]; owned {
				continue
			}
			if _, owned := localTitles[title]; owned {
				continue
			}
			// 多个体裁查询返回同一标题时保留首次出现
			if _, dup := seenTitles[title]; dup {
				continue
			}

			score, matched := scoreAgainstProfile(profile, norm, externalFeatureKeys(&item))
			if score <= 0 {
				continue
			}

			seenTitles[title] = struct{}{}
			externals = append(externals, scene_book_models.RecommendedBook{
				External:        &item,
				Score:           score,
				MatchedFeatures: matched,
				IsExternal:      true,
			})
		}
	}

	sortByScore(externals)
	if len(externals) > ExternalResultLimit {
		externals = externals[:ExternalResultLimit]
	}
	return externals
}

// sortByScore 按得分降序稳定排序，同分保留发现顺序
func sortByScore(items []scene_book_models.RecommendedBook) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score > items[j].Score
	})
}
