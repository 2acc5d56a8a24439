package scene_book_models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Shelf 虚拟书架
type Shelf struct {
	ID        primitive.ObjectID   `bson:"_id"`        // 文档唯一标识符
	CreatedAt time.Time            `bson:"created_at"` // 文档创建时间
	UpdatedAt time.Time            `bson:"updated_at"` // 文档最后更新时间
	Name      string               `bson:"name"`       // 书架名称
	Comment   string               `bson:"comment"`    // 书架备注
	BookIDs   []primitive.ObjectID `bson:"book_ids"`   // 书架内书目ID列表（有序，不重复）
}

// ContainsBook 检查书架是否已包含指定书目
func (s *Shelf) ContainsBook(bookID primitive.ObjectID) bool {
	for _, id := range s.BookIDs {
		if id == bookID {
			return true
		}
	}
	return false
}
