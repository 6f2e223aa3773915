package utils

import (
	"bytes"
	"html/template"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	mdParser = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
		),
	)
	policy = bluemonday.UGCPolicy()

	// 裸 URL，链接剥离时一并去掉
	bareURLRegex = regexp.MustCompile(`https?://\S+`)
)

func init() {
	policy.AllowImages()
	policy.AddTargetBlankToFullyQualifiedLinks(true)
	policy.RequireNoReferrerOnLinks(true)
}

func RenderMarkdown(source string) template.HTML {
	var buf bytes.Buffer
	if err := mdParser.Convert([]byte(source), &buf); err != nil {
		return template.HTML(source) // Fallback
	}

	return template.HTML(policy.SanitizeBytes(buf.Bytes()))
}

// PlainText 把 Markdown 正文渲染后提取纯文本。
// stripLinks 时去掉超链接、图片和裸 URL，用于固定链接推导。
func PlainText(source string, stripLinks bool) string {
	var buf bytes.Buffer
	if err := mdParser.Convert([]byte(source), &buf); err != nil {
		return strings.TrimSpace(source)
	}

	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		return strings.TrimSpace(source)
	}

	if stripLinks {
		doc.Find("a, img").Remove()
	}

	// 按块级元素拼接，避免段落之间的文字粘连
	var parts []string
	doc.Find("body > *").Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			parts = append(parts, text)
		}
	})
	text := strings.Join(parts, " ")
	if text == "" {
		text = strings.TrimSpace(doc.Text())
	}

	if stripLinks {
		text = bareURLRegex.ReplaceAllString(text, "")
	}
	return strings.TrimSpace(text)
}
