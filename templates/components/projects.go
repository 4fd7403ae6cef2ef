package components

import (
	"hraktech_web/content"

	"github.com/a-h/templ"
)

// Projects renders the categories in document order.
func Projects(cfg content.ProjectsConfig) templ.Component {
	var cta templ.Component
	if cfg.CTA.ButtonText != "" {
		cta = El("div", []Attr{A("class", "projects-cta")},
			El("h3", nil, Text(cfg.CTA.Title)),
			El("p", nil, Text(cfg.CTA.Description)),
			El("a", []Attr{A("class", "btn btn-primary"), A("href", "#"+cfg.CTA.Action)}, Text(cfg.CTA.ButtonText)),
		)
	}
	return section("projects",
		sectionHeader("projects", cfg.Badge, cfg.Title, cfg.Description),
		El("div", []Attr{A("class", "categories")},
			Each(cfg.Categories, func(_ int, cat content.ProjectCategory) templ.Component {
				return El("div", []Attr{
					A("class", "category"),
					A("data-category", cat.Key),
					A("style", "--accent:"+cat.Color+";--glow:"+cat.GlowColor),
				},
					El("h3", nil, Icon(cat.Icon), Text(cat.Title)),
					El("ul", []Attr{A("class", "project-list")},
						Each(cat.Projects, func(_ int, p content.Project) templ.Component {
							return El("li", []Attr{A("class", "project")}, projectName(p), El("p", nil, Text(p.Description)))
						}),
					),
				)
			}),
		),
		cta,
	)
}

func projectName(p content.Project) templ.Component {
	if p.URL == "" {
		return El("strong", nil, Text(p.Name))
	}
	return El("a", []Attr{A("href", p.URL), A("target", "_blank"), A("rel", "noopener noreferrer")},
		El("strong", nil, Text(p.Name)), Icon("external-link"),
	)
}
