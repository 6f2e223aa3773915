package models

import (
	"time"
)

// Preview 链接预览元信息，由抓取服务填充
type Preview struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	URL          string    `gorm:"uniqueIndex;not null" json:"url"`
	Canonical    string    `gorm:"index" json:"canonical"`
	Title        string    `json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	Image        string    `json:"image"`
	SourcePostID *uint     `gorm:"index" json:"source_post_id"` // 第一个贴出该链接的帖子
	CreatedAt    time.Time `json:"created_at"`
}
