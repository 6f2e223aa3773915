package services

import (
	"errors"
	"fmt"
	"log"
	"satlink/internal/db"
	"satlink/internal/models"

	"gorm.io/gorm"
)

// VoteService 投票账本：维护帖子的票集合、totalVotes 计数器
// 和两个加权票累加器，并完成投票的余额转移。
// 点踩的入账账户（系统账户）通过构造参数显式注入，不做硬编码查找。
type VoteService struct {
	systemAccountID uint
}

func NewVoteService(systemAccountID uint) *VoteService {
	return &VoteService{systemAccountID: systemAccountID}
}

// voteChange 一次投票转移对帖子计数字段的增量
type voteChange struct {
	votesDelta int     // applied to total_votes
	upDelta    float64 // applied to last_upvotes_weight
	downDelta  float64 // applied to last_downvotes_weight
	flip       bool    // 反向改票：改写已有投票行而不是新建
	noop       bool    // 同方向重复投票，不做任何变更
}

// voteTransition 根据投票人已有的投票（0 表示没投过）计算状态转移增量。
// 转移表：
//
//	无票 → 点赞: total +1, upWeight +rep
//	无票 → 点踩: total -1, downWeight +rep
//	有踩 → 点赞: total +2, upWeight +rep, downWeight -rep
//	有赞 → 点踩: total -2, downWeight +rep, upWeight -rep
//	同方向重复  : no-op
func voteTransition(existing, value, reputation int) voteChange {
	rep := float64(reputation)

	switch {
	case existing == value:
		return voteChange{noop: true}
	case value == models.VoteUp && existing == 0:
		return voteChange{votesDelta: 1, upDelta: rep}
	case value == models.VoteUp:
		return voteChange{votesDelta: 2, upDelta: rep, downDelta: -rep, flip: true}
	case existing == 0:
		return voteChange{votesDelta: -1, downDelta: rep}
	default:
		return voteChange{votesDelta: -2, downDelta: rep, upDelta: -rep, flip: true}
	}
}

// Apply 对帖子执行一次投票。所有前置检查先于任何写入；
// 投票行和帖子计数器在同一个事务里落库，计数器用原子列运算更新，
// 避免和并发投票或衰减任务互相丢更新。
func (s *VoteService) Apply(pid string, voterID uint, value int) (*models.Post, error) {
	if value != models.VoteUp && value != models.VoteDown {
		return nil, fmt.Errorf("invalid vote value %d", value)
	}

	var post models.Post
	if err := db.DB.Where("post_id = ?", pid).First(&post).Error; err != nil {
		return nil, ErrPostNotFound
	}

	var author models.User
	if err := db.DB.First(&author, post.UserID).Error; err != nil {
		return nil, ErrAuthorNotFound
	}

	var voter models.User
	if err := db.DB.First(&voter, voterID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	if voter.ID == author.ID {
		return nil, ErrSelfVote
	}
	if voter.Balance <= 0 {
		return nil, ErrInsufficientBalance
	}
	if value == models.VoteDown && s.systemAccountID == 0 {
		return nil, ErrSystemAccount
	}

	existingValue := 0
	var existing models.Vote
	err := db.DB.Where("user_id = ? AND post_id = ?", voter.ID, post.ID).First(&existing).Error
	if err == nil {
		existingValue = existing.Value
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	change := voteTransition(existingValue, value, voter.Reputation)
	if change.noop {
		// 同方向重复投票按无操作处理，原样返回当前状态
		return &post, nil
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if change.flip {
			if err := tx.Model(&models.Vote{}).
				Where("id = ?", existing.ID).
				UpdateColumn("value", value).Error; err != nil {
				return err
			}
		} else {
			vote := models.Vote{UserID: voter.ID, PostID: post.ID, Value: value}
			if err := tx.Create(&vote).Error; err != nil {
				return err
			}
		}

		updates := map[string]interface{}{
			"total_votes": gorm.Expr("total_votes + ?", change.votesDelta),
		}
		if change.upDelta != 0 {
			updates["last_upvotes_weight"] = gorm.Expr("last_upvotes_weight + ?", change.upDelta)
		}
		if change.downDelta != 0 {
			updates["last_downvotes_weight"] = gorm.Expr("last_downvotes_weight + ?", change.downDelta)
		}

		return tx.Model(&models.Post{}).
			Where("id = ?", post.ID).
			UpdateColumns(updates).Error
	})
	if err != nil {
		return nil, err
	}

	// 余额转移：点赞奖励作者，点踩入系统账户，作者拿不到踩票的 sat。
	// 两步非原子，转入失败按 ErrPartialTransfer 上报。
	if value == models.VoteUp {
		err = Transfer(voter.ID, author.ID, 1, ActionUpvoteCost, ActionUpvoteReward)
	} else {
		err = Transfer(voter.ID, s.systemAccountID, 1, ActionDownvoteCost, ActionDownvoteSink)
	}
	if err != nil {
		return nil, err
	}

	// 聚合通知计数。这里失败不影响投票本身，记日志等下次事件补上
	ntype := models.NotificationTypeUpvote
	if value == models.VoteDown {
		ntype = models.NotificationTypeDownvote
	}
	if err := BumpGroup(post.ID, author.ID, ntype); err != nil {
		log.Printf("bump %s group for post %d failed: %v", ntype, post.ID, err)
	}

	var updated models.Post
	if err := db.DB.First(&updated, post.ID).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}
