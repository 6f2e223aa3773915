package services

import (
	"strings"
	"testing"
)

func TestParsePreviewOpenGraph(t *testing.T) {
	html := `<html><head>
		<title>Fallback Title</title>
		<meta property="og:title" content="Breaking: Market Rally Continues Today" />
		<meta property="og:description" content="Stocks climbed for a third straight session." />
		<meta property="og:image" content="https://example.com/chart.png" />
		<link rel="canonical" href="https://example.com/news/rally" />
	</head><body></body></html>`

	preview, err := parsePreview("https://example.com/news/rally?utm=x", strings.NewReader(html))
	if err != nil {
		t.Fatalf("parsePreview failed: %v", err)
	}
	if preview.Title != "Breaking: Market Rally Continues Today" {
		t.Errorf("title = %q", preview.Title)
	}
	if preview.Description != "Stocks climbed for a third straight session." {
		t.Errorf("description = %q", preview.Description)
	}
	if preview.Image != "https://example.com/chart.png" {
		t.Errorf("image = %q", preview.Image)
	}
	if preview.Canonical != "https://example.com/news/rally" {
		t.Errorf("canonical = %q", preview.Canonical)
	}
}

func TestParsePreviewFallbacks(t *testing.T) {
	html := `<html><head>
		<title>  Plain Old Title  </title>
		<meta name="description" content="A plain meta description." />
	</head><body></body></html>`

	preview, err := parsePreview("https://example.com/", strings.NewReader(html))
	if err != nil {
		t.Fatalf("parsePreview failed: %v", err)
	}
	if preview.Title != "Plain Old Title" {
		t.Errorf("title = %q, want og-less fallback to <title>", preview.Title)
	}
	if preview.Description != "A plain meta description." {
		t.Errorf("description = %q", preview.Description)
	}
	if preview.Canonical != "" || preview.Image != "" {
		t.Errorf("expected empty canonical/image, got %q / %q", preview.Canonical, preview.Image)
	}
}
