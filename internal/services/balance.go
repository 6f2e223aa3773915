package services

import (
	"fmt"
	"satlink/internal/db"
	"satlink/internal/models"

	"gorm.io/gorm"
)

// 余额动作常量，写进 BalanceLog 便于对账
const (
	ActionPostCost       = "post cost"
	ActionUpvoteCost     = "upvote cost"
	ActionUpvoteReward   = "upvote reward"
	ActionDownvoteCost   = "downvote cost"
	ActionDownvoteSink   = "downvote sink"
	ActionTipSent        = "tip sent"
	ActionTipReceived    = "tip received"
	ActionInviteGiftSent = "invite gift sent"
)

// Debit 使用事务扣减余额并记录明细。余额列只做原子增减，
// 绝不读出整行改完写回，避免并发投票之间互相覆盖。
func Debit(userID uint, amount int64, action string) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		entry := models.BalanceLog{
			UserID: userID,
			Amount: -amount,
			Action: action,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		return tx.Model(&models.User{}).
			Where("id = ?", userID).
			UpdateColumn("balance", gorm.Expr("balance - ?", amount)).
			Error
	})
}

// Credit 使用事务增加余额并记录明细
func Credit(userID uint, amount int64, action string) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		entry := models.BalanceLog{
			UserID: userID,
			Amount: amount,
			Action: action,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		return tx.Model(&models.User{}).
			Where("id = ?", userID).
			UpdateColumn("balance", gorm.Expr("balance + ?", amount)).
			Error
	})
}

// Transfer 把 amount 从 from 转给 to。两步各自原子，但整体不是事务：
// 转出成功而转入失败时返回 ErrPartialTransfer，已扣的部分不回滚。
func Transfer(fromID, toID uint, amount int64, debitAction, creditAction string) error {
	if err := Debit(fromID, amount, debitAction); err != nil {
		return fmt.Errorf("debit user %d: %w", fromID, err)
	}
	if err := Credit(toID, amount, creditAction); err != nil {
		return fmt.Errorf("%w: debited %d from user %d, credit to user %d failed: %v",
			ErrPartialTransfer, amount, fromID, toID, err)
	}
	return nil
}
