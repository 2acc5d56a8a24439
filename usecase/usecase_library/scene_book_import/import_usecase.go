package scene_book_import

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/Super-Badmen-Viper/NineShelf/domain/domain_library/scene_book/scene_book_interface"
	"github.com/Super-Badmen-Viper/NineShelf/domain/domain_library/scene_book/scene_book_models"
	"github.com/h2non/filetype"
	"go.mongodb.org/mongo-driver/mongo"
)

type BookImportUsecase struct {
	bookRepo   scene_book_interface.BookRepository
	extractor  BookMetadataExtractor
	workerPool chan struct{}
	timeout    time.Duration
}

func NewBookImportUsecase(
	bookRepo scene_book_interface.BookRepository,
	timeoutMinutes int,
) *BookImportUsecase {
	workerCount := runtime.NumCPU() * 2
	if workerCount < 4 {
		workerCount = 4
	}

	return &BookImportUsecase{
		bookRepo:   bookRepo,
		workerPool: make(chan struct{}, workerCount),
		timeout:    time.Duration(timeoutMinutes) * time.Minute,
	}
}

// ScanFolder 扫描指定目录并入库新书目。
// 路径已存在的文件直接跳过，新书目统一以未读状态批量写入。
func (uc *BookImportUsecase) ScanFolder(ctx context.Context, folderPath string) (*scene_book_interface.ImportSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	stat, err := os.Stat(folderPath)
	if err != nil {
		return nil, fmt.Errorf("folder not accessible: %w", err)
	}
	if !stat.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", folderPath)
	}

	summary := &scene_book_interface.ImportSummary{}
	var mu sync.Mutex
	var wg sync.WaitGroup
	var imported []*scene_book_models.BookMetadata

	err = filepath.Walk(folderPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			log.Printf("文件遍历错误: %v", err)
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if info.IsDir() || !uc.shouldProcess(path) {
			return nil
		}

		mu.Lock()
		summary.Scanned++
		mu.Unlock()

		wg.Add(1)
		uc.workerPool <- struct{}{}
		go func(path string, info os.FileInfo) {
			defer wg.Done()
			defer func() { <-uc.workerPool }()

			book, err := uc.processFile(ctx, path, info)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Printf("书目处理跳过[%s]: %v", path, err)
				summary.Skipped++
				return
			}
			if book == nil {
				summary.Skipped++
				return
			}
			imported = append(imported, book)
		}(path, info)

		return nil
	})
	wg.Wait()

	if err != nil {
		return nil, fmt.Errorf("folder scan failed: %w", err)
	}

	if len(imported) > 0 {
		count, err := uc.bookRepo.BulkUpsert(ctx, imported)
		if err != nil {
			return nil, fmt.Errorf("failed to persist books: %w", err)
		}
		summary.Imported = count
	}

	return summary, nil
}

// shouldProcess 按扩展名过滤候选文件
func (uc *BookImportUsecase) shouldProcess(path string) bool {
	suffix := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	return scene_book_models.IsBookFormat(suffix)
}

// processFile 处理单个文件：去重、内容校验、元数据提取。
// 已入库的路径返回nil书目（计入跳过）
func (uc *BookImportUsecase) processFile(
	ctx context.Context,
	path string,
	info os.FileInfo,
) (*scene_book_models.BookMetadata, error) {
	existing, err := uc.bookRepo.GetByPath(ctx, path)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("path lookup failed: %w", err)
	}
	if existing != nil {
		return nil, nil
	}

	// m4b容器不在文件头识别库的覆盖范围内，仅按扩展名放行
	suffix := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if scene_book_models.IsAudioFormat(suffix) && suffix != "m4b" {
		if err := verifyAudioContent(path); err != nil {
			return nil, err
		}
	}

	return uc.extractor.Extract(path, info)
}

// verifyAudioContent 校验文件头，剔除扩展名伪装的非音频文件
func verifyAudioContent(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("file open failed: %w", err)
	}
	defer func(file *os.File) {
		if err := file.Close(); err != nil {
			log.Printf("文件关闭失败[%s]: %v", path, err)
		}
	}(file)

	head := make([]byte, 261)
	n, err := file.Read(head)
	if err != nil {
		return fmt.Errorf("file header read failed: %w", err)
	}

	if !filetype.IsAudio(head[:n]) {
		return fmt.Errorf("content is not audio")
	}

	return nil
}
