package models

import (
	"strings"

	"hraktech_web/content"
)

// SEO contains metadata for search engine optimization and social sharing
type SEO struct {
	Title         string // Page title
	Description   string // Meta description
	Keywords      string // Meta keywords (comma-separated)
	Author        string
	SiteName      string
	Canonical     string // Canonical URL
	OGTitle       string // Open Graph title (defaults to Title if empty)
	OGDesc        string // Open Graph description (defaults to Description if empty)
	OGImage       string // Absolute Open Graph image URL
	OGImageAlt    string
	OGType        string // Open Graph type (website, article, etc.)
	TwitterCard   string // Twitter card type (summary, summary_large_image)
	TwitterHandle string
	NoIndex       bool   // If true, adds noindex directive
	Locale        string // Open Graph locale (e.g. "fr_FR")
	Lang          string // html lang attribute
	ThemeColor    string
}

// SEOFromContent builds the landing page metadata from the seo and company
// sections. Relative image paths are resolved against baseURL.
func SEOFromContent(seo content.SEOConfig, company content.CompanyConfig, theme content.ThemeConfig, baseURL string) *SEO {
	baseURL = strings.TrimSuffix(baseURL, "/")
	if baseURL == "" {
		baseURL = strings.TrimSuffix(seo.URL, "/")
	}

	s := &SEO{
		Title:         seo.Title,
		Description:   seo.Description,
		Keywords:      strings.Join(seo.Keywords, ", "),
		Author:        seo.Author,
		SiteName:      company.Name,
		Canonical:     baseURL + "/",
		OGTitle:       seo.OpenGraph.Title,
		OGDesc:        seo.OpenGraph.Description,
		OGImage:       absoluteURL(baseURL, seo.OpenGraph.Image),
		OGImageAlt:    seo.OpenGraph.ImageAlt,
		OGType:        "website",
		TwitterCard:   "summary_large_image",
		TwitterHandle: company.Social.TwitterHandle,
		Locale:        seo.Locale,
		Lang:          "fr",
		ThemeColor:    theme.Colors.Primary,
	}
	if i := strings.IndexByte(seo.Locale, '_'); i > 0 {
		s.Lang = seo.Locale[:i]
	}
	return s
}

// WithNoIndex sets the noindex directive
func (s *SEO) WithNoIndex() *SEO {
	s.NoIndex = true
	return s
}

// Robots returns the robots meta directive.
func (s *SEO) Robots() string {
	if s.NoIndex {
		return "noindex, nofollow"
	}
	return "index, follow, max-image-preview:large, max-snippet:-1, max-video-preview:-1"
}

// GetOGTitle returns OGTitle or falls back to Title
func (s *SEO) GetOGTitle() string {
	if s.OGTitle != "" {
		return s.OGTitle
	}
	return s.Title
}

// GetOGDesc returns OGDesc or falls back to Description
func (s *SEO) GetOGDesc() string {
	if s.OGDesc != "" {
		return s.OGDesc
	}
	return s.Description
}

func absoluteURL(base, path string) string {
	if path == "" || strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return base + "/" + strings.TrimPrefix(path, "/")
}
