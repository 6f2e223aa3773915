package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"satlink/internal/db"
	"satlink/internal/router"
	"satlink/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// envMinutes 从环境变量读分钟数，缺省或非法时用默认值
func envMinutes(key string, def int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Minute
		}
		log.Printf("invalid %s=%q, using default %d", key, v, def)
	}
	return time.Duration(def) * time.Minute
}

func main() {
	// 加载环境变量
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// 初始化数据库
	db.Init()

	hub := services.NewHub()
	mail := services.NewMailService()

	// 声望衰减定时任务（默认每 6 分钟）
	reputation := services.NewReputationService(envMinutes("REPUTATION_CRON_MINUTES", 6))
	reputation.Start()

	// 通知聚合定时任务（默认每 10 分钟）
	aggregator := services.NewNotificationAggregator(envMinutes("NOTIFY_CRON_MINUTES", 10), hub)
	aggregator.Start()

	// 初始化 Gin 引擎
	r := gin.Default()

	router.RegisterRoutes(r, router.Deps{
		Hub:             hub,
		Mail:            mail,
		SystemAccountID: db.SystemAccountID(),
	})

	// 启动服务器
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
