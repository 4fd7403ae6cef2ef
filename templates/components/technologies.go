package components

import (
	"hraktech_web/content"

	"github.com/a-h/templ"
)

func Technologies(cfg content.TechnologiesConfig) templ.Component {
	var info templ.Component
	if cfg.AdditionalInfo.Title != "" {
		info = El("aside", []Attr{A("class", "tech-info")},
			El("h3", nil, Text(cfg.AdditionalInfo.Title)),
			El("p", nil, Text(cfg.AdditionalInfo.Description)),
			El("p", []Attr{A("class", "tech-list")}, Text(cfg.AdditionalInfo.Technologies)),
		)
	}
	return section("technologies",
		sectionHeader("technologies", cfg.Badge, cfg.Title, cfg.Description),
		El("div", []Attr{A("class", "grid grid-technologies")},
			Each(cfg.Items, func(_ int, tech content.TechnologyItem) templ.Component {
				return El("article", []Attr{
					A("class", "card tech-card tech-"+tech.Accent),
					A("style", "--brand:"+tech.Color+";--glow:"+tech.GlowColor),
				},
					El("img", []Attr{A("src", tech.Logo), A("alt", tech.Name), A("loading", "lazy"), A("width", "64"), A("height", "64")}),
					El("h3", nil, Text(tech.Name)),
					El("p", nil, Text(tech.Description)),
				)
			}),
		),
		info,
	)
}
