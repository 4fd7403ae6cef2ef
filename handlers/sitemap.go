package handlers

import (
	"encoding/xml"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type SitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float32 `xml:"priority,omitempty"`
}

type SitemapURLSet struct {
	XMLName string       `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// SitemapEntries lists the landing page and its section anchors.
func SitemapEntries(baseURL string) []SitemapURL {
	root := strings.TrimSuffix(baseURL, "/") + "/"
	return []SitemapURL{
		{Loc: root, ChangeFreq: "monthly", Priority: 1.0},
		{Loc: root + "#services", ChangeFreq: "monthly", Priority: 0.8},
		{Loc: root + "#technologies", ChangeFreq: "monthly", Priority: 0.8},
		{Loc: root + "#projects", ChangeFreq: "monthly", Priority: 0.7},
		{Loc: root + "#contact", ChangeFreq: "monthly", Priority: 0.9},
	}
}

// Sitemap generates the XML sitemap
func (s *Site) Sitemap(c echo.Context) error {
	urlSet := SitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  SitemapEntries(s.baseURL()),
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationXML)
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}

	encoder := xml.NewEncoder(c.Response().Writer)
	encoder.Indent("", "  ")
	return encoder.Encode(urlSet)
}

// Robots allows everything and points at the sitemap.
func (s *Site) Robots(c echo.Context) error {
	body := "User-agent: *\nAllow: /\n\nSitemap: " + s.baseURL() + "/sitemap.xml\n"
	return c.String(http.StatusOK, body)
}

func (s *Site) baseURL() string {
	if s.Config.AppURL != "" {
		return strings.TrimSuffix(s.Config.AppURL, "/")
	}
	return strings.TrimSuffix(s.Content.SEO.URL, "/")
}
