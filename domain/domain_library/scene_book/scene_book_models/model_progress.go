package scene_book_models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReadingProgress 阅读/收听进度
type ReadingProgress struct {
	ID         primitive.ObjectID `bson:"_id"`                   // 文档唯一标识符
	CreatedAt  time.Time          `bson:"created_at"`            // 文档创建时间
	UpdatedAt  time.Time          `bson:"updated_at"`            // 文档最后更新时间
	BookID     primitive.ObjectID `bson:"book_id"`               // 关联书目ID
	Percent    float64            `bson:"percent"`               // 进度百分比 [0,100]
	Position   string             `bson:"position"`              // 文本书的阅读位置（章节/CFI）
	AudioPos   float64            `bson:"audio_pos"`             // 有声书的收听位置（秒）
	StartedAt  time.Time          `bson:"started_at,omitempty"`  // 开始阅读时间
	FinishedAt time.Time          `bson:"finished_at,omitempty"` // 读完时间（如有）
}
