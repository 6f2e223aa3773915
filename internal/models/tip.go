package models

import (
	"time"
)

// Tip 记录某个用户对某个帖子的累计打赏次数
type Tip struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_post_tipper" json:"post_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_post_tipper" json:"user_id"`
	Count     int       `gorm:"default:0" json:"count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
