package models

import (
	"time"
)

type NotificationType string

const (
	NotificationTypeComment  NotificationType = "comment"
	NotificationTypeUpvote   NotificationType = "upvote"
	NotificationTypeDownvote NotificationType = "downvote"
	NotificationTypeTip      NotificationType = "tip"
	NotificationTypeInvite   NotificationType = "invite"
)

// NotificationGroup 按 (帖子, 事件类型) 聚合吵闹的互动事件，
// 由聚合定时任务统一刷成单条通知后把 count 归零（保留记录复用）
type NotificationGroup struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	PostID    uint             `gorm:"not null;uniqueIndex:idx_post_event" json:"post_id"`
	UserID    uint             `gorm:"not null;index" json:"user_id"` // 帖子作者，即通知接收人
	Type      NotificationType `gorm:"type:varchar(20);not null;uniqueIndex:idx_post_event" json:"type"`
	Count     int              `gorm:"default:0" json:"count"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

type Notification struct {
	ID     uint             `gorm:"primaryKey" json:"id"`
	UserID uint             `gorm:"not null;index" json:"user_id"` // Receiver
	User   User             `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	PostID *uint            `gorm:"index" json:"post_id"`
	Type   NotificationType `gorm:"type:varchar(20);not null" json:"type"`
	Text   string           `gorm:"type:text" json:"text"`
	IsRead bool             `gorm:"default:false;index" json:"is_read"`

	// 刷出时刻的帖子快照
	MetaCount   int    `gorm:"default:0" json:"meta_count"`
	MetaTitle   string `json:"meta_title"`
	MetaText    string `gorm:"type:text" json:"meta_text"`
	MetaPreview string `json:"meta_preview"`

	CreatedAt time.Time `json:"created_at"`
}
