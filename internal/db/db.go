package db

import (
	"log"
	"os"
	"satlink/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=satlink port=5432 sslmode=disable"
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	// Auto Migrate
	err = DB.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Vote{},
		&models.Tip{},
		&models.NotificationGroup{},
		&models.Notification{},
		&models.Invite{},
		&models.Preview{},
		&models.BalanceLog{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	seedSystemAccount()
}

func systemAccountUsername() string {
	username := os.Getenv("SYSTEM_ACCOUNT_USERNAME")
	if username == "" {
		username = "system"
	}
	return username
}

// seedSystemAccount 确保点踩入账用的系统账户存在
func seedSystemAccount() {
	username := systemAccountUsername()

	var count int64
	DB.Model(&models.User{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		log.Println("System account already seeded, skipping")
		return
	}

	system := models.User{
		Username:    username,
		DisplayName: "System",
		Email:       username + "@satlink.internal",
		Role:        "system",
	}
	if err := DB.Create(&system).Error; err != nil {
		log.Printf("Failed to create system account %s: %v", username, err)
		return
	}
	log.Printf("System account %s created (id=%d)", username, system.ID)
}

// SystemAccountID 查出系统账户 ID，启动时注入给投票服务。
// 找不到返回 0，投票服务会把点踩请求拒掉。
func SystemAccountID() uint {
	var system models.User
	if err := DB.Where("username = ?", systemAccountUsername()).First(&system).Error; err != nil {
		log.Printf("System account not found: %v", err)
		return 0
	}
	return system.ID
}
