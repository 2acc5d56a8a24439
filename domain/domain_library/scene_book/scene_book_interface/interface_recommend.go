package scene_book_interface

import (
	"context"

	"github.com/Super-Badmen-Viper/NineShelf/domain/domain_library/scene_book/scene_book_models"
)

// RecommendUsecase 推荐引擎对外契约：无输入参数，
// 个性化完全来自调用时的书目快照
type RecommendUsecase interface {
	GetRecommendations(ctx context.Context) ([]scene_book_models.RecommendedBook, error)
}

// ExternalBookRepository 外部书目查询能力（尽力而为）：
// 单次调用可能超时或失败，由推荐编排方捕获并按零结果处理
type ExternalBookRepository interface {
	SearchByGenre(ctx context.Context, genre string, limit int) ([]scene_book_models.ExternalBookItem, error)
}
