package components

import (
	"hraktech_web/content"

	"github.com/a-h/templ"
)

// Hero renders the opening section. Every title word is its own element so
// the entrance animation can stagger them.
func Hero(hero content.HeroConfig, company content.CompanyConfig) templ.Component {
	words := make([]templ.Component, 0, len(hero.Title.Words)+1)
	for _, w := range hero.Title.Words {
		words = append(words, El("span", []Attr{A("class", "word"), B("data-word")}, Text(w)), Text(" "))
	}
	words = append(words, El("span", []Attr{A("class", "word highlight"), B("data-word")}, Text(hero.Title.Highlight)))

	return El("section", []Attr{A("id", "hero"), A("class", "hero"), A("aria-labelledby", "hero-title")},
		El("div", []Attr{A("class", "container hero-inner")},
			El("span", []Attr{A("class", "badge"), B("data-reveal")}, Icon(hero.Badge.Icon), Text(hero.Badge.Text)),
			El("h1", []Attr{A("id", "hero-title")}, Group(words...)),
			El("p", []Attr{A("class", "hero-subtitle"), B("data-reveal")}, Text(hero.Subtitle.Main)),
			El("p", []Attr{A("class", "hero-secondary"), B("data-reveal")}, Text(hero.Subtitle.Secondary)),
			El("a", []Attr{A("class", "btn btn-primary btn-lg"), A("href", "#"+hero.CTA.Action), B("data-reveal")},
				Text(hero.CTA.Text), Icon("arrow-right"),
			),
			El("ul", []Attr{A("class", "hero-stats"), B("data-reveal")},
				Each(company.Stats, func(_ int, s content.CompanyStat) templ.Component {
					return El("li", nil, Icon(s.Icon), El("span", nil, Text(s.Label)))
				}),
			),
		),
	)
}
