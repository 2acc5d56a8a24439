package scene_book_interface

import (
	"context"
)

// ImportSummary 单次扫描的统计结果
type ImportSummary struct {
	Scanned  int `json:"scanned"`  // 扫描到的候选文件数
	Imported int `json:"imported"` // 成功入库的书目数
	Skipped  int `json:"skipped"`  // 跳过的文件数（非书籍格式或解析失败）
}

type BookImportUsecase interface {
	ScanFolder(ctx context.Context, folderPath string) (*ImportSummary, error)
}
