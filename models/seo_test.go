package models

import (
	"testing"

	"hraktech_web/content"

	"github.com/stretchr/testify/assert"
)

func TestSEOFromContent(t *testing.T) {
	cfg := content.GetFullConfig()
	s := SEOFromContent(cfg.SEO, cfg.Company, cfg.Theme, "https://staging.hraktech.com/")

	assert.Equal(t, cfg.SEO.Title, s.Title)
	assert.Equal(t, "https://staging.hraktech.com/", s.Canonical)
	assert.Equal(t, "https://staging.hraktech.com/static/images/logo-with-bg.png", s.OGImage)
	assert.Equal(t, "fr_FR", s.Locale)
	assert.Equal(t, "fr", s.Lang)
	assert.Equal(t, cfg.Company.Name, s.SiteName)
	assert.Contains(t, s.Keywords, "ERP Odoo")
	assert.Equal(t, "summary_large_image", s.TwitterCard)
	assert.Contains(t, s.Robots(), "index, follow")
}

func TestSEOFallbacks(t *testing.T) {
	s := SEOFromContent(content.SEOConfig{Title: "T", Description: "D", URL: "https://hraktech.com/", OpenGraph: content.OpenGraph{Image: "https://cdn.example/og.png"}}, content.CompanyConfig{}, content.ThemeConfig{}, "")

	assert.Equal(t, "https://hraktech.com/", s.Canonical)
	assert.Equal(t, "https://cdn.example/og.png", s.OGImage)
	assert.Equal(t, "T", s.GetOGTitle())
	assert.Equal(t, "D", s.GetOGDesc())
	assert.Equal(t, "noindex, nofollow", s.WithNoIndex().Robots())
}
