package services

import (
	"errors"
	"fmt"
	"log"
	"satlink/internal/db"
	"satlink/internal/models"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NotificationAggregator 把同一帖子上反复出现的互动事件
// （赞、踩、评论、打赏）按 (帖子, 类型) 聚合计数，
// 定时刷成单条通知投递，避免一票一条地轰炸作者。
// 推送通道由外部注入，不持有全局单例。
type NotificationAggregator struct {
	interval time.Duration
	pusher   Pusher
}

func NewNotificationAggregator(interval time.Duration, pusher Pusher) *NotificationAggregator {
	return &NotificationAggregator{interval: interval, pusher: pusher}
}

// BumpGroup 给 (post, type) 分组计数 +1，没有分组就建一个。
// 同一帖子的并发事件靠 ON CONFLICT 的原子自增合并，不走读改写。
func BumpGroup(postID, userID uint, ntype models.NotificationType) error {
	group := models.NotificationGroup{
		PostID: postID,
		UserID: userID,
		Type:   ntype,
		Count:  1,
	}
	return db.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "post_id"}, {Name: "type"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"count":      gorm.Expr("notification_groups.count + 1"),
			"updated_at": time.Now(),
		}),
	}).Create(&group).Error
}

// Start 启动定时刷出任务。单个周期失败只记日志，下个周期重试。
func (a *NotificationAggregator) Start() {
	go func() {
		ticker := time.NewTicker(a.interval)
		defer ticker.Stop()
		for range ticker.C {
			if err := a.FlushOnce(); err != nil {
				log.Printf("[CRON]: Notification flush failed: %v", err)
			}
		}
	}()
}

// FlushOnce 把所有 count > 0 的分组各刷成一条通知。
// 每个分组是独立的工作单元，单组失败不阻塞其余分组。
func (a *NotificationAggregator) FlushOnce() error {
	log.Println("[CRON]: Flushing notification groups")

	var groups []models.NotificationGroup
	if err := db.DB.Where("count > ?", 0).Find(&groups).Error; err != nil {
		return err
	}

	for _, group := range groups {
		if err := a.flushGroup(group); err != nil {
			log.Printf("flush group %d (post %d, %s) failed: %v",
				group.ID, group.PostID, group.Type, err)
		}
	}
	return nil
}

// flushMessage 通知正文，如 "7 upvote on your post."
func flushMessage(count int, ntype models.NotificationType) string {
	return fmt.Sprintf("%d %s on your post.", count, ntype)
}

func (a *NotificationAggregator) flushGroup(group models.NotificationGroup) error {
	var post models.Post
	err := db.DB.Preload("Preview").First(&post, group.PostID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// 帖子已不在，跳过但保留计数。帖子删除时会连分组一起清掉，
		// 所以这里只会在删除竞态的窗口里走到
		return nil
	}
	if err != nil {
		return err
	}

	previewTitle := ""
	if post.Preview != nil {
		previewTitle = post.Preview.Title
	}

	postID := group.PostID
	notification := models.Notification{
		UserID:      group.UserID,
		PostID:      &postID,
		Type:        group.Type,
		Text:        flushMessage(group.Count, group.Type),
		MetaCount:   group.Count,
		MetaTitle:   post.Title,
		MetaText:    post.Text,
		MetaPreview: previewTitle,
	}
	if err := db.DB.Create(&notification).Error; err != nil {
		return err
	}

	// fire-and-forget：推送失败不算刷出失败
	a.pusher.Notify(group.UserID, PushPayload{
		Type: string(group.Type),
		Text: notification.Text,
	})
	if err := db.DB.Model(&models.User{}).
		Where("id = ?", group.UserID).
		UpdateColumn("has_unread", true).Error; err != nil {
		log.Printf("mark user %d unread failed: %v", group.UserID, err)
	}

	// 清零但保留分组记录复用
	return db.DB.Model(&models.NotificationGroup{}).
		Where("id = ?", group.ID).
		UpdateColumn("count", 0).Error
}
