// Package ui holds the state of the interactive page components: navigation,
// the testimonial carousel and the contact form. Rendering lives in
// templates/components; this package only decides what to render.
package ui

import (
	"hraktech_web/content"
	"hraktech_web/motion"
)

// ScrollThreshold is the scroll offset in pixels past which the navbar turns
// opaque.
const ScrollThreshold = 50

// NavEntry is one interactive navigation target.
type NavEntry struct {
	Label   string
	Section string
}

// Href is the in-page anchor the entry scrolls to.
func (e NavEntry) Href() string { return "#" + e.Section }

// Navbar is the ordered list of in-page targets plus the call to action.
// Scroll styling and the mobile menu are browser state; ScrollThreshold is
// rendered for the client script.
type Navbar struct {
	entries []NavEntry
	cta     NavEntry
}

// NewNavbar builds entries in configuration order.
func NewNavbar(cfg content.NavigationConfig) *Navbar {
	entries := make([]NavEntry, 0, len(cfg.Items))
	for _, item := range cfg.Items {
		entries = append(entries, NavEntry{Label: item.Label, Section: item.Section})
	}
	section := cfg.CTA.Action
	if section == "" {
		section = "contact"
	}
	return &Navbar{
		entries: entries,
		cta:     NavEntry{Label: cfg.CTA.Text, Section: section},
	}
}

func (n *Navbar) Entries() []NavEntry { return append([]NavEntry(nil), n.entries...) }

func (n *Navbar) CTA() NavEntry { return n.cta }

// Mount registers the navbar's entrance animation.
func (n *Navbar) Mount(scope *motion.Scope) {
	scope.Animate(motion.Tween{
		Target:   "nav[data-navbar]",
		From:     map[string]any{"opacity": 0, "y": -20},
		Duration: 0.6,
		Ease:     "power2.out",
	})
}
