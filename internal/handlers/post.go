package handlers

import (
	"net/http"
	"satlink/internal/db"
	"satlink/internal/middleware"
	"satlink/internal/models"
	"satlink/internal/services"
	"satlink/internal/utils"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	posts *services.PostService
}

func NewPostHandler(posts *services.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

type postRequest struct {
	Title      string `json:"title"`
	Text       string `json:"text"`
	PreviewURL string `json:"preview_url"`
}

func (h *PostHandler) Create(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	post, err := h.posts.Create(user.ID, req.Title, req.Text, req.PreviewURL)
	if err != nil {
		Error(c, err)
		return
	}
	JSON(c, http.StatusCreated, post)
}

func (h *PostHandler) CreateReply(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	post, err := h.posts.CreateReply(user.ID, c.Param("pid"), req.Title, req.Text, req.PreviewURL)
	if err != nil {
		Error(c, err)
		return
	}
	JSON(c, http.StatusCreated, post)
}

func (h *PostHandler) Get(c *gin.Context) {
	var post models.Post
	if err := db.DB.Preload("User").Preload("Preview").
		Where("post_id = ?", c.Param("pid")).First(&post).Error; err != nil {
		Error(c, services.ErrPostNotFound)
		return
	}

	var replies []models.Post
	db.DB.Preload("User").
		Where("replied_to = ?", post.ID).
		Order("reputation DESC, created_at ASC").
		Find(&replies)

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"post":    post,
		"html":    utils.RenderMarkdown(post.Text),
		"replies": replies,
	}})
}

func (h *PostHandler) Update(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	post, err := h.posts.Edit(c.Param("pid"), user.ID, req.Title, req.Text)
	if err != nil {
		Error(c, err)
		return
	}
	JSON(c, http.StatusOK, post)
}

func (h *PostHandler) Delete(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	if err := h.posts.Delete(c.Param("pid"), user.ID); err != nil {
		Error(c, err)
		return
	}
	JSON(c, http.StatusOK, gin.H{"deleted": true})
}

// ListTrending 按衰减后的声望排序的帖子列表
func (h *PostHandler) ListTrending(c *gin.Context) {
	page := utils.PageParam(c.Query("page"))
	perPage := 30

	var posts []models.Post
	db.DB.Preload("User").Preload("Preview").
		Where("replied_to IS NULL").
		Order("reputation DESC, created_at DESC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&posts)

	JSON(c, http.StatusOK, posts)
}
