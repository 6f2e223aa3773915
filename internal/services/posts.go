package services

import (
	"fmt"
	"log"
	"satlink/internal/db"
	"satlink/internal/models"
	"satlink/internal/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PostService 帖子生命周期：创建、回复、编辑、级联删除。
// 新帖初始声望 1，权重 0，固定链接在创建/编辑时推导一次。
type PostService struct{}

func NewPostService() *PostService {
	return &PostService{}
}

// Create 发一篇新帖。发帖消耗 1 sat，余额不足直接拒绝。
func (s *PostService) Create(userID uint, title, text, previewURL string) (*models.Post, error) {
	var author models.User
	if err := db.DB.First(&author, userID).Error; err != nil {
		return nil, ErrUserNotFound
	}
	if author.Balance <= 0 {
		return nil, ErrInsufficientBalance
	}

	var preview *models.Preview
	if previewURL != "" {
		preview = GetPreviewService().FetchWithFallback(previewURL)
	}

	post, err := s.buildPost(userID, title, text, preview)
	if err != nil {
		return nil, err
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(post).Error
	})
	if err != nil {
		return nil, err
	}

	if err := Debit(author.ID, 1, ActionPostCost); err != nil {
		log.Printf("debit post cost for user %d failed: %v", author.ID, err)
	}

	// 预览记录指回第一个贴出该链接的帖子
	if preview != nil && preview.SourcePostID == nil {
		db.DB.Model(&models.Preview{}).
			Where("id = ? AND source_post_id IS NULL", preview.ID).
			UpdateColumn("source_post_id", post.ID)
	}

	return post, nil
}

// CreateReply 回复某个帖子。回复本身也是帖子（自引用成树），
// 父帖的 (post, comment) 通知分组计数 +1。
func (s *PostService) CreateReply(userID uint, parentPID, title, text, previewURL string) (*models.Post, error) {
	var parent models.Post
	if err := db.DB.Where("post_id = ?", parentPID).First(&parent).Error; err != nil {
		return nil, ErrPostNotFound
	}

	var author models.User
	if err := db.DB.First(&author, userID).Error; err != nil {
		return nil, ErrUserNotFound
	}
	if author.Balance <= 0 {
		return nil, ErrInsufficientBalance
	}

	var preview *models.Preview
	if previewURL != "" {
		preview = GetPreviewService().FetchWithFallback(previewURL)
	}

	post, err := s.buildPost(userID, title, text, preview)
	if err != nil {
		return nil, err
	}
	post.RepliedTo = &parent.ID

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		return tx.Model(&models.Post{}).
			Where("id = ?", parent.ID).
			UpdateColumn("total_replies", gorm.Expr("total_replies + 1")).Error
	})
	if err != nil {
		return nil, err
	}

	if err := Debit(author.ID, 1, ActionPostCost); err != nil {
		log.Printf("debit reply cost for user %d failed: %v", author.ID, err)
	}

	// 自己回自己的帖子不聚合通知
	if parent.UserID != userID {
		if err := BumpGroup(parent.ID, parent.UserID, models.NotificationTypeComment); err != nil {
			log.Printf("bump comment group for post %d failed: %v", parent.ID, err)
		}
	}

	return post, nil
}

// Edit 编辑帖子，固定链接跟着新内容重新推导
func (s *PostService) Edit(pid string, userID uint, title, text string) (*models.Post, error) {
	var post models.Post
	if err := db.DB.Where("post_id = ?", pid).First(&post).Error; err != nil {
		return nil, ErrPostNotFound
	}
	if post.UserID != userID {
		return nil, ErrNotPostOwner
	}

	previewTitle, previewDescription := "", ""
	if post.PreviewID != nil {
		var preview models.Preview
		if err := db.DB.First(&preview, *post.PreviewID).Error; err == nil {
			previewTitle = preview.Title
			previewDescription = preview.Description
		}
	}

	permalink, err := utils.DerivePermalink(title, previewTitle, previewDescription, text)
	if err != nil {
		return nil, fmt.Errorf("derive permalink: %w", err)
	}

	updates := map[string]interface{}{
		"title":     title,
		"text":      text,
		"permalink": permalink,
	}
	if err := db.DB.Model(&post).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// Delete 删除帖子并级联清掉整棵回复子树，连同投票、打赏和
// 通知分组（分组跟着帖子删，避免聚合器里留下永远刷不出去的孤儿）。
func (s *PostService) Delete(pid string, userID uint) error {
	var post models.Post
	if err := db.DB.Where("post_id = ?", pid).First(&post).Error; err != nil {
		return ErrPostNotFound
	}
	if post.UserID != userID {
		return ErrNotPostOwner
	}

	ids, err := s.collectTree(post.ID)
	if err != nil {
		return err
	}

	return db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id IN ?", ids).Delete(&models.Vote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id IN ?", ids).Delete(&models.Tip{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id IN ?", ids).Delete(&models.NotificationGroup{}).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", ids).Delete(&models.Post{}).Error
	})
}

// collectTree 宽度优先收集帖子和它的所有后代回复
func (s *PostService) collectTree(rootID uint) ([]uint, error) {
	ids := []uint{rootID}
	frontier := []uint{rootID}

	for len(frontier) > 0 {
		var children []models.Post
		if err := db.DB.Select("id").Where("replied_to IN ?", frontier).Find(&children).Error; err != nil {
			return nil, err
		}
		frontier = frontier[:0]
		for _, child := range children {
			ids = append(ids, child.ID)
			frontier = append(frontier, child.ID)
		}
	}
	return ids, nil
}

func (s *PostService) buildPost(userID uint, title, text string, preview *models.Preview) (*models.Post, error) {
	previewTitle, previewDescription := "", ""
	if preview != nil {
		previewTitle = preview.Title
		previewDescription = preview.Description
	}

	permalink, err := utils.DerivePermalink(title, previewTitle, previewDescription, text)
	if err != nil {
		return nil, fmt.Errorf("derive permalink: %w", err)
	}

	post := &models.Post{
		PostID:     uuid.NewString(),
		Permalink:  permalink,
		UserID:     userID,
		Title:      title,
		Text:       text,
		Reputation: 1, // initial post reputation
	}
	if preview != nil {
		post.PreviewID = &preview.ID
	}
	return post, nil
}
