package models

import (
	"time"
)

const (
	VoteUp   = 1
	VoteDown = -1
)

type Vote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_post_vote" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_user_post_vote;index" json:"post_id"`
	Value     int       `gorm:"not null" json:"value"` // 1 or -1
	CreatedAt time.Time `json:"created_at"`
}

// The unique index on (user_id, post_id) is what enforces "a user holds at
// most one of upvote/downvote per post" at the storage level.
