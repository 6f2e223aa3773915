package models

import (
	"time"
)

type Post struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	PostID    string `gorm:"uniqueIndex;size:36;not null" json:"post_id"` // 对外公开的 uuid
	Permalink string `gorm:"index;size:40" json:"permalink"`
	UserID    uint   `gorm:"not null;index" json:"user_id"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Title     string `json:"title"`                    // Optional
	Text      string `gorm:"type:text" json:"text"`    // Markdown 正文
	RepliedTo *uint  `gorm:"index" json:"replied_to"`  // 父帖子 ID，回复树
	PreviewID *uint  `gorm:"index" json:"preview_id"`  // 链接预览
	Preview   *Preview `gorm:"foreignKey:PreviewID" json:"preview,omitempty"`

	TotalReplies int `gorm:"default:0" json:"total_replies"`
	TotalVotes   int `gorm:"default:0" json:"total_votes"` // 增量计数器，只通过投票转移变化

	// 排名字段，由投票实时累加、由衰减定时任务统一重算
	Reputation          float64 `gorm:"default:1" json:"reputation"`
	LastUpvotesWeight   float64 `gorm:"default:0" json:"last_upvotes_weight"`
	LastDownvotesWeight float64 `gorm:"default:0" json:"last_downvotes_weight"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
