package components

import (
	"context"

	"hraktech_web/middleware"
	"hraktech_web/models"

	"github.com/a-h/templ"
)

const (
	htmxScript   = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"
	lucideScript = "https://unpkg.com/lucide@0.460.0/dist/umd/lucide.min.js"
)

func meta(name, value string) templ.Component {
	if value == "" {
		return nil
	}
	return El("meta", []Attr{A("name", name), A("content", value)})
}

func property(name, value string) templ.Component {
	if value == "" {
		return nil
	}
	return El("meta", []Attr{A("property", name), A("content", value)})
}

// Head renders the document head: metadata, social cards, styles and the
// htmx and icon scripts.
func Head(seo *models.SEO) templ.Component {
	return Func(func(ctx context.Context) templ.Component {
		nonce := middleware.GetNonce(ctx)
		return El("head", nil,
			El("meta", []Attr{A("charset", "utf-8")}),
			El("meta", []Attr{A("name", "viewport"), A("content", "width=device-width, initial-scale=1")}),
			El("title", nil, Text(seo.Title)),
			meta("description", seo.Description),
			meta("keywords", seo.Keywords),
			meta("author", seo.Author),
			meta("robots", seo.Robots()),
			meta("theme-color", seo.ThemeColor),
			El("meta", []Attr{A("http-equiv", "Accept-CH"), A("content", middleware.ReducedMotionHint)}),
			canonical(seo.Canonical),

			property("og:type", seo.OGType),
			property("og:title", seo.GetOGTitle()),
			property("og:description", seo.GetOGDesc()),
			property("og:url", seo.Canonical),
			property("og:site_name", seo.SiteName),
			property("og:locale", seo.Locale),
			property("og:image", seo.OGImage),
			property("og:image:alt", seo.OGImageAlt),

			meta("twitter:card", seo.TwitterCard),
			meta("twitter:site", seo.TwitterHandle),
			meta("twitter:title", seo.GetOGTitle()),
			meta("twitter:description", seo.GetOGDesc()),
			meta("twitter:image", seo.OGImage),

			El("link", []Attr{A("rel", "icon"), A("type", "image/png"), A("href", middleware.AssetURL(ctx, "images/favicon.png"))}),
			El("link", []Attr{A("rel", "stylesheet"), A("href", middleware.AssetURL(ctx, "css/style.css"))}),
			El("script", []Attr{A("src", htmxScript), A("nonce", nonce), B("defer")}),
			El("script", []Attr{A("src", lucideScript), A("nonce", nonce), B("defer")}),
		)
	})
}

func canonical(href string) templ.Component {
	if href == "" {
		return nil
	}
	return El("link", []Attr{A("rel", "canonical"), A("href", href)})
}
