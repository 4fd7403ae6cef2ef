package components

import (
	"hraktech_web/content"

	"github.com/a-h/templ"
)

// Icon renders a lucide placeholder replaced client side.
func Icon(name string) templ.Component {
	if name == "" {
		return nil
	}
	return El("i", []Attr{A("data-lucide", name), A("aria-hidden", "true")})
}

// sectionHeader renders the badge, two-tone heading and lead shared by the
// content sections.
func sectionHeader(id, badge string, title content.SectionTitle, description string) templ.Component {
	var sub templ.Component
	if title.Subtitle != "" {
		sub = El("span", []Attr{A("class", "subtitle")}, Text(title.Subtitle))
	}
	var lead templ.Component
	if description != "" {
		lead = El("p", []Attr{A("class", "section-lead")}, Text(description))
	}
	var pill templ.Component
	if badge != "" {
		pill = El("span", []Attr{A("class", "badge")}, Text(badge))
	}
	return El("header", []Attr{A("class", "section-header")},
		pill,
		El("h2", []Attr{A("id", id+"-title")},
			Text(title.Main+" "),
			El("span", []Attr{A("class", "highlight")}, Text(title.Highlight)),
			sub,
		),
		lead,
	)
}

// section wraps children in a landmark labelled by its heading.
func section(id string, children ...templ.Component) templ.Component {
	return El("section", []Attr{A("id", id), A("class", "section section-"+id), A("aria-labelledby", id+"-title")},
		El("div", []Attr{A("class", "container")}, children...),
	)
}
