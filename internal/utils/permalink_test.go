package utils

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestDerivePermalinkFromPreviewTitle(t *testing.T) {
	slug, err := DerivePermalink("", "Breaking: Market Rally Continues Today", "", "whatever body")
	if err != nil {
		t.Fatalf("DerivePermalink failed: %v", err)
	}
	expected := "breaking-market-rally-continues-today"
	if slug != expected {
		t.Errorf("Expected %q, got %q", expected, slug)
	}
}

func TestDerivePermalinkTitleWins(t *testing.T) {
	slug, err := DerivePermalink("An Explicit Title Beats Everything", "Preview Title Here", "desc", "body text")
	if err != nil {
		t.Fatalf("DerivePermalink failed: %v", err)
	}
	if slug != "an-explicit-title-beats-everything" {
		t.Errorf("title should take priority, got %q", slug)
	}
}

func TestDerivePermalinkFromBodyStripsLinks(t *testing.T) {
	body := "Check this amazing article about distributed systems https://example.com/a/b/c"
	slug, err := DerivePermalink("", "", "", body)
	if err != nil {
		t.Fatalf("DerivePermalink failed: %v", err)
	}
	if strings.Contains(slug, "example") || strings.Contains(slug, "https") {
		t.Errorf("slug should not contain link text, got %q", slug)
	}
	if !strings.HasPrefix(slug, "check-this-amazing") {
		t.Errorf("unexpected slug %q", slug)
	}
}

func TestDerivePermalinkShortStrippedBodyFallsBack(t *testing.T) {
	// 去掉链接后只剩下不到 15 字符，应退回原始正文
	body := "See [the full writeup on ranking algorithms](https://example.com/post)"
	slug, err := DerivePermalink("", "", "", body)
	if err != nil {
		t.Fatalf("DerivePermalink failed: %v", err)
	}
	if !strings.Contains(slug, "writeup") {
		t.Errorf("expected raw body fallback to keep link text, got %q", slug)
	}
}

func TestDerivePermalinkTruncatesTo40(t *testing.T) {
	title := strings.Repeat("verylongword ", 10)
	slug, err := DerivePermalink(title, "", "", "")
	if err != nil {
		t.Fatalf("DerivePermalink failed: %v", err)
	}
	if utf8.RuneCountInString(slug) > 40 {
		t.Errorf("slug longer than 40 chars: %q (%d)", slug, utf8.RuneCountInString(slug))
	}
	if strings.HasSuffix(slug, "-") || strings.HasPrefix(slug, "-") {
		t.Errorf("slug has dangling hyphen: %q", slug)
	}
}

func TestDerivePermalinkWordBoundary(t *testing.T) {
	// 超过 50 字符的候选文本要在词边界截断，不能劈开单词
	title := "alpha bravo charlie delta echo foxtrot golf hotel india juliett kilo"
	slug, err := DerivePermalink(title, "", "", "")
	if err != nil {
		t.Fatalf("DerivePermalink failed: %v", err)
	}
	for _, part := range strings.Split(slug, "-") {
		if !strings.Contains(title, part) {
			t.Errorf("slug fragment %q is a split word in %q", part, slug)
		}
	}
}

func TestDerivePermalinkPunctuation(t *testing.T) {
	slug, err := DerivePermalink("Hello, World! (What's @up?)", "", "", "")
	if err != nil {
		t.Fatalf("DerivePermalink failed: %v", err)
	}
	if slug != "hello-world-what-s-up" {
		t.Errorf("Expected hello-world-what-s-up, got %q", slug)
	}
}

func TestDerivePermalinkEmptyIsError(t *testing.T) {
	_, err := DerivePermalink("", "", "", "")
	if !errors.Is(err, ErrEmptyPermalink) {
		t.Fatalf("Expected ErrEmptyPermalink, got %v", err)
	}

	// 纯标点也一样
	_, err = DerivePermalink("?!?!", "", "", "...")
	if !errors.Is(err, ErrEmptyPermalink) {
		t.Fatalf("Expected ErrEmptyPermalink for punctuation-only input, got %v", err)
	}
}

func TestPlainTextStripsMarkup(t *testing.T) {
	text := PlainText("# Heading\n\nSome **bold** text here.", false)
	if strings.Contains(text, "#") || strings.Contains(text, "**") || strings.Contains(text, "<") {
		t.Errorf("markup leaked into plain text: %q", text)
	}
	if !strings.Contains(text, "Some bold text here.") {
		t.Errorf("unexpected plain text: %q", text)
	}
}
