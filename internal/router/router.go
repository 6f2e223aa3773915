package router

import (
	"satlink/internal/handlers"
	"satlink/internal/middleware"
	"satlink/internal/services"

	"github.com/gin-gonic/gin"
)

// Deps 路由依赖。推送通道和系统账户都在启动时装配好传进来，
// 服务内部不摸全局单例。
type Deps struct {
	Hub             *services.Hub
	Mail            *services.MailService
	SystemAccountID uint
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	// Handlers
	postHandler := handlers.NewPostHandler(services.NewPostService())
	voteHandler := handlers.NewVoteHandler(services.NewVoteService(deps.SystemAccountID))
	tipHandler := handlers.NewTipHandler(services.NewTipService())
	inviteHandler := handlers.NewInviteHandler(services.NewInviteService(deps.Mail, deps.Hub))
	notificationHandler := handlers.NewNotificationHandler(deps.Hub)

	r.Use(middleware.LoadUser())

	// 公共路由 (Public Routes)
	r.GET("/posts", postHandler.ListTrending) // 按声望排序的帖子列表
	r.GET("/posts/:pid", postHandler.Get)     // 帖子详情（含回复树第一层）

	r.POST("/invites/check", inviteHandler.Check) // 被邀请人校验邀请令牌

	// 受保护路由 (Protected Routes)
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.POST("/posts", postHandler.Create)                // 发帖
		authorized.POST("/posts/:pid/reply", postHandler.CreateReply) // 回复
		authorized.PUT("/posts/:pid", postHandler.Update)            // 编辑
		authorized.DELETE("/posts/:pid", postHandler.Delete)         // 删除（级联回复树）

		authorized.POST("/posts/:pid/upvote", voteHandler.Upvote)     // 点赞
		authorized.POST("/posts/:pid/downvote", voteHandler.Downvote) // 点踩
		authorized.POST("/posts/:pid/tip", tipHandler.Tip)            // 打赏

		authorized.POST("/invites", inviteHandler.Send) // 发邀请

		authorized.GET("/notifications", notificationHandler.List)              // 通知列表
		authorized.POST("/notifications/:id/read", notificationHandler.Read)    // 单条已读
		authorized.POST("/notifications/read-all", notificationHandler.ReadAll) // 全部已读
		authorized.GET("/events", notificationHandler.Events)                   // SSE 实时推送
	}
}
