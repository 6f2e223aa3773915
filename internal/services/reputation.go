package services

import (
	"log"
	"satlink/internal/db"
	"satlink/internal/models"
	"time"

	"gorm.io/gorm"
)

// 衰减参数：每周期 0.998 的指数衰减让冷帖渐近归零，
// 0.9 倍的净加权票给新互动一个有界的提升；
// 低于 0.01 且没有新票的帖子直接落到 0，不留浮点残尾。
const (
	decayFactor     = 0.998
	weightFactor    = 0.9
	reputationFloor = 0.01
)

// ReputationService 帖子声望衰减引擎：定时全表重算，
// 投票时实时累加的权重在这里统一结算并清零。
type ReputationService struct {
	interval time.Duration
}

func NewReputationService(interval time.Duration) *ReputationService {
	return &ReputationService{interval: interval}
}

// Start 启动定时衰减任务。单个周期失败只记日志，进程不退出。
func (s *ReputationService) Start() {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for range ticker.C {
			if err := s.RunOnce(); err != nil {
				log.Printf("[CRON]: Post reputation sweep failed: %v", err)
			}
		}
	}()
}

// RunOnce 执行一轮衰减。整个重算是一条 UPDATE：
// 选择谓词跳过已完全衰减且没有新票的帖子；CASE 表达式在数据库端
// 一次性读权重、算新声望、把权重清零，逐行原子，
// 不给并发投票留下被覆盖或被重复计算的窗口。
func (s *ReputationService) RunOnce() error {
	log.Println("[CRON]: Calculating post reputation")

	res := db.DB.Model(&models.Post{}).
		Where("reputation <> 0 OR last_upvotes_weight <> 0 OR last_downvotes_weight <> 0").
		UpdateColumns(map[string]interface{}{
			"reputation": gorm.Expr(
				`CASE
					WHEN reputation > ? OR last_upvotes_weight <> 0 OR last_downvotes_weight <> 0
					THEN ? * reputation + ? * (last_upvotes_weight - last_downvotes_weight)
					ELSE 0
				END`,
				reputationFloor, decayFactor, weightFactor),
			"last_upvotes_weight":   0,
			"last_downvotes_weight": 0,
		})
	if res.Error != nil {
		return res.Error
	}

	log.Printf("[CRON]: Recalculated reputation for %d posts", res.RowsAffected)
	return nil
}

// NextReputation 和 RunOnce 里的 SQL 表达式等价的纯函数，
// 供测试和只读预览使用。
func NextReputation(reputation, lastUpvotesWeight, lastDownvotesWeight float64) float64 {
	if reputation > reputationFloor || lastUpvotesWeight != 0 || lastDownvotesWeight != 0 {
		return decayFactor*reputation + weightFactor*(lastUpvotesWeight-lastDownvotesWeight)
	}
	return 0
}
