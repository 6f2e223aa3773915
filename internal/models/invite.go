package models

import (
	"time"
)

type Invite struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Email      string     `gorm:"uniqueIndex;not null" json:"email"`
	InviterID  uint       `gorm:"not null;index" json:"inviter_id"`
	Inviter    User       `gorm:"foreignKey:InviterID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"inviter"`
	Token      string     `gorm:"type:text" json:"-"`
	Status     string     `gorm:"size:20;default:'pending'" json:"status"` // pending, accepted
	Gift       int64      `gorm:"default:0" json:"gift"`                   // 随邀请赠送的 sats
	AcceptedAt *time.Time `json:"accepted_at"`
	CreatedAt  time.Time  `json:"created_at"`
}
