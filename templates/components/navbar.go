package components

import (
	"context"
	"strconv"

	"hraktech_web/content"
	"hraktech_web/services/i18n"
	"hraktech_web/ui"

	"github.com/a-h/templ"
)

// Navbar renders the fixed navigation bar and its mobile menu, closed. The
// client script toggles the menu and the scrolled style past
// data-scroll-threshold.
func Navbar(nav *ui.Navbar, company content.CompanyConfig) templ.Component {
	return Func(func(ctx context.Context) templ.Component {

		links := func(cls string) templ.Component {
			return El("ul", []Attr{A("class", cls)},
				Each(nav.Entries(), func(_ int, e ui.NavEntry) templ.Component {
					return El("li", nil,
						El("a", []Attr{A("href", e.Href()), A("data-nav-link", e.Section)}, Text(e.Label)),
					)
				}),
			)
		}
		cta := nav.CTA()

		return El("nav", []Attr{A("class", "navbar"), B("data-navbar"), A("data-scroll-threshold", strconv.Itoa(ui.ScrollThreshold))},
			El("a", []Attr{A("class", "skip-link"), A("href", "#main")}, Text(i18n.T(ctx, "a11y.skip_to_content"))),
			El("div", []Attr{A("class", "container navbar-inner")},
				El("a", []Attr{A("class", "brand"), A("href", "#hero")},
					El("img", []Attr{A("src", company.Logo), A("alt", company.Name), A("width", "40"), A("height", "40")}),
					El("span", nil, Text(company.Name)),
				),
				links("nav-links"),
				El("a", []Attr{A("class", "btn btn-primary nav-cta"), A("href", cta.Href())}, Text(cta.Label)),
				El("button", []Attr{
					A("type", "button"),
					A("class", "menu-toggle"),
					B("data-menu-toggle"),
					A("aria-controls", "mobile-menu"),
					A("aria-expanded", "false"),
					A("aria-label", i18n.T(ctx, "a11y.open_menu")),
					A("data-open-label", i18n.T(ctx, "a11y.open_menu")),
					A("data-close-label", i18n.T(ctx, "a11y.close_menu")),
				}, Icon("menu")),
			),
			El("div", []Attr{A("id", "mobile-menu"), A("class", "mobile-menu"), B("hidden")},
				links("mobile-links"),
				El("a", []Attr{A("class", "btn btn-primary"), A("href", cta.Href())}, Text(cta.Label)),
			),
		)
	})
}
