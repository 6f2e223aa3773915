package services

import (
	"fmt"
	"io"
	"net/http"
	"satlink/internal/db"
	"satlink/internal/models"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	lru "github.com/hashicorp/golang-lru/v2"
	"gorm.io/gorm/clause"
)

// PreviewService 链接预览抓取：取 og 元信息，进库并做本地 LRU 缓存。
// 预览数据喂给固定链接推导和通知快照。
type PreviewService struct {
	client *http.Client
	cache  *lru.Cache[string, *models.Preview]
}

func NewPreviewService() *PreviewService {
	cache, err := lru.New[string, *models.Preview](500)
	if err != nil {
		panic(err)
	}
	return &PreviewService{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		cache: cache,
	}
}

// 全局单例
var previewService *PreviewService

// GetPreviewService 获取预览服务单例
func GetPreviewService() *PreviewService {
	if previewService == nil {
		previewService = NewPreviewService()
	}
	return previewService
}

// Fetch 返回 URL 的预览信息，顺序：缓存 → 数据库 → 抓取
func (s *PreviewService) Fetch(url string) (*models.Preview, error) {
	if cached, ok := s.cache.Get(url); ok {
		return cached, nil
	}

	var saved models.Preview
	if err := db.DB.Where("url = ? OR canonical = ?", url, url).First(&saved).Error; err == nil {
		s.cache.Add(url, &saved)
		return &saved, nil
	}

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("create preview request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch preview: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch preview: HTTP %d", resp.StatusCode)
	}

	preview, err := parsePreview(url, resp.Body)
	if err != nil {
		return nil, err
	}

	// URL 唯一，并发抓取时后到的直接丢弃
	if err := db.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(preview).Error; err != nil {
		return nil, err
	}
	s.cache.Add(url, preview)
	return preview, nil
}

// FetchWithFallback 抓取失败时返回 nil 而不是错误，
// 预览是锦上添花，不能挡住发帖
func (s *PreviewService) FetchWithFallback(url string) *models.Preview {
	preview, err := s.Fetch(url)
	if err != nil {
		return nil
	}
	return preview
}

// parsePreview 从 HTML 里提取 og:title / og:description / og:image / canonical，
// 没有 og 标签时退回 <title> 和 meta description
func parsePreview(url string, r io.Reader) (*models.Preview, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse preview html: %w", err)
	}

	title := doc.Find(`meta[property="og:title"]`).AttrOr("content", "")
	if title == "" {
		title = doc.Find("title").First().Text()
	}

	description := doc.Find(`meta[property="og:description"]`).AttrOr("content", "")
	if description == "" {
		description = doc.Find(`meta[name="description"]`).AttrOr("content", "")
	}

	image := doc.Find(`meta[property="og:image"]`).AttrOr("content", "")
	canonical := doc.Find(`link[rel="canonical"]`).AttrOr("href", "")

	return &models.Preview{
		URL:         url,
		Canonical:   strings.TrimSpace(canonical),
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Image:       strings.TrimSpace(image),
	}, nil
}
