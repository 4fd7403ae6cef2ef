package handlers

import (
	"encoding/xml"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemap(t *testing.T) {
	e, _ := setupEcho(t, siteOptions{})

	rec, body := get(e, "/sitemap.xml")
	require.Equal(t, http.StatusOK, rec.Code)

	var set struct {
		URLs []SitemapURL `xml:"url"`
	}
	require.NoError(t, xml.Unmarshal([]byte(body), &set))

	want := []SitemapURL{
		{Loc: "https://hraktech.test/", ChangeFreq: "monthly", Priority: 1.0},
		{Loc: "https://hraktech.test/#services", ChangeFreq: "monthly", Priority: 0.8},
		{Loc: "https://hraktech.test/#technologies", ChangeFreq: "monthly", Priority: 0.8},
		{Loc: "https://hraktech.test/#projects", ChangeFreq: "monthly", Priority: 0.7},
		{Loc: "https://hraktech.test/#contact", ChangeFreq: "monthly", Priority: 0.9},
	}
	if diff := cmp.Diff(want, set.URLs); diff != "" {
		t.Errorf("sitemap mismatch (-want +got):\n%s", diff)
	}
}

func TestRobots(t *testing.T) {
	e, _ := setupEcho(t, siteOptions{})

	rec, body := get(e, "/robots.txt")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, "Sitemap: https://hraktech.test/sitemap.xml")
}

func TestHealth(t *testing.T) {
	e, _ := setupEcho(t, siteOptions{animated: true})

	_, body := get(e, "/healthz")
	assert.JSONEq(t, `{"status":"ok","motion":"pending"}`, body)

	get(e, "/motion/bundle.js")
	_, body = get(e, "/healthz")
	assert.JSONEq(t, `{"status":"ok","motion":"loaded"}`, body)
}
