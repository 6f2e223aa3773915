package utils

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	permalinkMaxLen = 40 // 最终 slug 上限
	excerptMaxLen   = 50 // 截取片段上限（按词边界）
	minUsableLen    = 15 // 短于这个长度的文本不值得单独做 slug
)

// ErrEmptyPermalink 所有候选文本归一化后都为空，属于调用方校验错误
var ErrEmptyPermalink = errors.New("no usable text for permalink")

var permalinkPunct = regexp.MustCompile("[-`_~!@#$%^&*()\\[\\]{}\\\\|;:'\",<.>/?\r\n]")
var whitespaceRun = regexp.MustCompile(`\s+`)

// DerivePermalink 从帖子可用的文本来源推导 URL slug。
// 候选优先级：标题 → 预览标题 → 预览描述 → 去链接正文 → 原始正文。
func DerivePermalink(title, previewTitle, previewDescription, body string) (string, error) {
	candidate := strings.TrimSpace(title)
	if candidate == "" {
		candidate = strings.TrimSpace(previewTitle)
	}
	if candidate == "" {
		candidate = strings.TrimSpace(previewDescription)
	}
	if candidate == "" {
		stripped := PlainText(body, true)
		if utf8.RuneCountInString(stripped) > minUsableLen {
			candidate = stripped
		} else {
			candidate = PlainText(body, false)
		}
	}

	var slug string
	excerpt := boundedExcerpt(candidate)
	if utf8.RuneCountInString(excerpt) > minUsableLen {
		slug = cleanPermalink(excerpt)
	} else {
		slug = cleanPermalink(candidate)
	}

	if slug == "" {
		return "", ErrEmptyPermalink
	}
	return slug, nil
}

// boundedExcerpt 取最长的 ≤50 字符前缀，且必须终止在词边界上。
// 整段文本不超过 50 字符时原样返回；找不到词边界时返回空串，
// 由调用方退回到完整候选文本。
func boundedExcerpt(text string) string {
	runes := []rune(text)
	if len(runes) <= excerptMaxLen {
		return text
	}
	for i := excerptMaxLen; i >= 1; i-- {
		if unicode.IsSpace(runes[i]) {
			return string(runes[:i])
		}
	}
	return ""
}

// cleanPermalink 归一化：小写、去标点和换行、截断到 40 字符、空白折叠成连字符
func cleanPermalink(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	text = permalinkPunct.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)

	runes := []rune(text)
	if len(runes) > permalinkMaxLen {
		text = string(runes[:permalinkMaxLen])
	}
	text = strings.TrimSpace(text)

	return whitespaceRun.ReplaceAllString(text, "-")
}
