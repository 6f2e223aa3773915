package services

import (
	"log"
	"satlink/internal/db"
	"satlink/internal/models"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TipService 打赏账本：1 sat 从打赏人转给作者，
// 并累计该用户对该帖的打赏次数。
type TipService struct{}

func NewTipService() *TipService {
	return &TipService{}
}

// Tip 对帖子作者打赏一次。
// 注意：不做余额充足校验（和发帖、投票不一致），账面可能出现负余额，
// 两条流水都会落账。
func (s *TipService) Tip(pid string, tipperID uint) error {
	var post models.Post
	if err := db.DB.Where("post_id = ?", pid).First(&post).Error; err != nil {
		return ErrPostNotFound
	}

	var tipper models.User
	if err := db.DB.First(&tipper, tipperID).Error; err != nil {
		return ErrUserNotFound
	}

	var author models.User
	if err := db.DB.First(&author, post.UserID).Error; err != nil {
		return ErrAuthorNotFound
	}

	if tipper.ID == author.ID {
		return ErrSelfTip
	}

	if err := Transfer(tipper.ID, author.ID, 1, ActionTipSent, ActionTipReceived); err != nil {
		return err
	}

	// 每用户每帖一条打赏记录，重复打赏原子 +1
	tip := models.Tip{PostID: post.ID, UserID: tipper.ID, Count: 1}
	err := db.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "post_id"}, {Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"count":      gorm.Expr("tips.count + 1"),
			"updated_at": time.Now(),
		}),
	}).Create(&tip).Error
	if err != nil {
		return err
	}

	if err := BumpGroup(post.ID, author.ID, models.NotificationTypeTip); err != nil {
		log.Printf("bump tip group for post %d failed: %v", post.ID, err)
	}
	return nil
}
