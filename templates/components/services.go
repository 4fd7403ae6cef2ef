package components

import (
	"hraktech_web/content"

	"github.com/a-h/templ"
)

func Services(cfg content.ServicesConfig) templ.Component {
	return section("services",
		sectionHeader("services", cfg.Badge, cfg.Title, cfg.Description),
		El("div", []Attr{A("class", "grid grid-services")},
			Each(cfg.Items, func(_ int, s content.ServiceItem) templ.Component {
				return El("article", []Attr{
					A("class", "card service-card"),
					A("id", "service-"+s.ID),
					A("style", "--accent:"+s.Color+";--accent-bg:"+s.BgColor),
				},
					El("div", []Attr{A("class", "card-icon")}, Icon(s.Icon)),
					El("h3", nil, Text(s.Title)),
					El("p", nil, Text(s.Description)),
				)
			}),
		),
		ctaLink(cfg.CTA),
	)
}

func ctaLink(cta content.CallToAction) templ.Component {
	if cta.Text == "" {
		return nil
	}
	return El("div", []Attr{A("class", "section-cta")},
		El("a", []Attr{A("class", "btn btn-outline"), A("href", "#"+cta.Action)}, Text(cta.Text)),
	)
}
