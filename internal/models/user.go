package models

import (
	"time"
)

type User struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Username    string `gorm:"uniqueIndex;not null" json:"username"`
	DisplayName string `gorm:"size:100" json:"display_name"`
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Avatar      string `json:"avatar"`
	Balance     int64  `gorm:"default:0" json:"balance"`    // sats 余额，投票/打赏都从这里扣
	Reputation  int    `gorm:"default:1" json:"reputation"` // 用户声望，作为投票权重和邀请配额的底数
	InviteLimit int    `gorm:"default:0" json:"invite_limit"`
	Invited     int    `gorm:"default:0" json:"invited"` // 已发出的邀请数
	HasUnread   bool   `gorm:"default:false" json:"has_unread"`
	Role        string `gorm:"size:20;default:'user';not null" json:"role"` // user, system
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	// No DeletedAt for hard delete
}
