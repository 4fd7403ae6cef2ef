package components

import (
	"context"
	"strconv"
	"strings"

	"hraktech_web/content"
	"hraktech_web/services/i18n"

	"github.com/a-h/templ"
)

// Footer renders the site footer. year fills the {year} placeholder of the
// copyright line.
func Footer(cfg content.FooterConfig, company content.CompanyConfig, year int) templ.Component {
	return Func(func(ctx context.Context) templ.Component {
		return footer(ctx, cfg, company, year)
	})
}

func footer(ctx context.Context, cfg content.FooterConfig, company content.CompanyConfig, year int) templ.Component {
	social := func(href, icon, label string) templ.Component {
		if href == "" {
			return nil
		}
		return El("a", []Attr{A("href", href), A("aria-label", label), A("target", "_blank"), A("rel", "noopener noreferrer")}, Icon(icon))
	}
	column := func(title string, body templ.Component) templ.Component {
		return El("div", []Attr{A("class", "footer-column")}, El("h4", nil, Text(title)), body)
	}

	return El("footer", []Attr{A("class", "footer")},
		El("div", []Attr{A("class", "container footer-grid")},
			El("div", []Attr{A("class", "footer-column footer-brand")},
				El("img", []Attr{A("src", company.Logo), A("alt", company.Name), A("width", "48"), A("height", "48"), A("loading", "lazy")}),
				El("p", nil, Text(cfg.Description)),
				El("div", []Attr{A("class", "socials")},
					social(company.Social.GitHub, "github", "GitHub"),
					social(company.Social.LinkedIn, "linkedin", "LinkedIn"),
					social(company.Social.Twitter, "twitter", "Twitter"),
				),
			),
			column(i18n.T(ctx, "footer.navigation"), El("ul", nil, Each(cfg.Navigation, func(_ int, item content.NavItem) templ.Component {
				return El("li", nil, El("a", []Attr{A("href", "#"+item.Section)}, Text(item.Label)))
			}))),
			column(i18n.T(ctx, "footer.services"), El("ul", nil, Each(cfg.Services, func(_ int, s string) templ.Component {
				return El("li", nil, Text(s))
			}))),
			column(i18n.T(ctx, "footer.contact"), El("ul", nil,
				El("li", nil, El("a", []Attr{A("href", "mailto:"+company.Contact.Email)}, Text(company.Contact.Email))),
				El("li", nil, Text(company.Contact.Phone)),
				El("li", nil, Text(company.Contact.Address)),
			)),
		),
		El("div", []Attr{A("class", "container footer-bottom")},
			El("p", nil, Text(strings.ReplaceAll(cfg.Copyright, "{year}", strconv.Itoa(year)))),
			El("ul", []Attr{A("class", "legal")}, Each(cfg.Legal, func(_ int, l content.LegalURL) templ.Component {
				return El("li", nil, El("a", []Attr{A("href", l.URL)}, Text(l.Label)))
			})),
		),
	)
}
