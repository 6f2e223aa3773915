package services

import (
	"errors"
	"log"
	"math"
	"os"
	"satlink/internal/db"
	"satlink/internal/models"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

const inviteTokenTTL = 30 * 24 * time.Hour

// InviteService 邀请配额管理。配额不是单调递减的存量，
// 而是每次发送时用当前声望重算：10^(声望-1) - 已邀请数。
// 声望涨了配额随之指数级变多。
type InviteService struct {
	mail   *MailService
	pusher Pusher
	secret []byte
}

func NewInviteService(mail *MailService, pusher Pusher) *InviteService {
	secret := os.Getenv("INVITE_JWT_SECRET")
	if secret == "" {
		secret = os.Getenv("JWT_SECRET")
	}
	if secret == "" {
		log.Println("⚠️ InviteService: no JWT secret configured, invite tokens signed with empty key")
	}
	return &InviteService{mail: mail, pusher: pusher, secret: []byte(secret)}
}

// Allowance 当前声望下还能发出的邀请数
func Allowance(reputation, invited int) int {
	if reputation < 1 {
		reputation = 1
	}
	return int(math.Pow(10, float64(reputation-1))) - invited
}

// Send 发出一封邀请。配额重算、唯一性检查和赠送余额校验
// 都在写入之前；配额扣减、已邀计数和邀请记录在同一个事务里落库。
func (s *InviteService) Send(inviterID uint, email string, gift int64) (*models.Invite, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var inviter models.User
	if err := db.DB.First(&inviter, inviterID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	limit := Allowance(inviter.Reputation, inviter.Invited)
	if err := db.DB.Model(&models.User{}).
		Where("id = ?", inviter.ID).
		UpdateColumn("invite_limit", limit).Error; err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, ErrInviteLimit
	}

	var count int64
	db.DB.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil, ErrUserExists
	}
	db.DB.Model(&models.Invite{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil, ErrAlreadyInvited
	}

	if inviter.Balance < gift {
		return nil, ErrInsufficientBalance
	}

	token, err := s.signToken(email)
	if err != nil {
		return nil, err
	}

	invite := models.Invite{
		Email:     email,
		InviterID: inviter.ID,
		Token:     token,
		Status:    "pending",
		Gift:      gift,
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&invite).Error; err != nil {
			return err
		}
		updates := map[string]interface{}{
			"invite_limit": gorm.Expr("invite_limit - 1"),
			"invited":      gorm.Expr("invited + 1"),
		}
		if gift > 0 {
			updates["balance"] = gorm.Expr("balance - ?", gift)
		}
		return tx.Model(&models.User{}).
			Where("id = ?", inviter.ID).
			UpdateColumns(updates).Error
	})
	if err != nil {
		return nil, err
	}
	if gift > 0 {
		entry := models.BalanceLog{UserID: inviter.ID, Amount: -gift, Action: ActionInviteGiftSent}
		if err := db.DB.Create(&entry).Error; err != nil {
			log.Printf("record invite gift log failed: %v", err)
		}
	}

	inviterName := inviter.DisplayName
	if inviterName == "" {
		inviterName = inviter.Username
	}
	s.mail.SendInviteEmail(email, inviterName, token, gift)

	// 给邀请人自己发一条即时通知
	notification := models.Notification{
		UserID: inviter.ID,
		Type:   models.NotificationTypeInvite,
		Text:   "Great! You have invited a new person",
	}
	if err := db.DB.Create(&notification).Error; err != nil {
		log.Printf("create invite notification failed: %v", err)
	} else {
		s.pusher.Notify(inviter.ID, PushPayload{
			Type: string(models.NotificationTypeInvite),
			Text: notification.Text,
		})
		db.DB.Model(&models.User{}).
			Where("id = ?", inviter.ID).
			UpdateColumn("has_unread", true)
	}

	return &invite, nil
}

// Check 校验待接受的邀请：记录存在、令牌匹配且未过期
func (s *InviteService) Check(email, token string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	var invite models.Invite
	if err := db.DB.Where("email = ?", email).First(&invite).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInviteNotFound
		}
		return err
	}
	if invite.Token != token {
		return ErrInviteToken
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !parsed.Valid {
		return ErrInviteToken
	}
	return nil
}

func (s *InviteService) signToken(email string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"exp":   jwt.NewNumericDate(time.Now().Add(inviteTokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
