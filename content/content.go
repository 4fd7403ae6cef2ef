// Package content resolves the site's configuration document.
//
// The document is embedded at build time and parsed once. Presentational
// components read it through GetSection, which binds every section key to its
// struct type at compile time, or through GetFullConfig when they need data
// from several sections. Nothing in this package mutates the parsed document
// and callers must treat returned slices as read-only.
package content

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

//go:embed website.json
var document []byte

// SectionKey names a top-level section of the document.
type SectionKey string

const (
	KeyCompany      SectionKey = "company"
	KeySEO          SectionKey = "seo"
	KeyHero         SectionKey = "hero"
	KeyServices     SectionKey = "services"
	KeyTechnologies SectionKey = "technologies"
	KeyProjects     SectionKey = "projects"
	KeyTestimonials SectionKey = "testimonials"
	KeyContact      SectionKey = "contact"
	KeyFooter       SectionKey = "footer"
	KeyNavigation   SectionKey = "navigation"
	KeyTheme        SectionKey = "theme"
)

// Keys returns every section key in document order.
func Keys() []SectionKey {
	return []SectionKey{
		KeyCompany, KeySEO, KeyHero, KeyServices, KeyTechnologies, KeyProjects,
		KeyTestimonials, KeyContact, KeyFooter, KeyNavigation, KeyTheme,
	}
}

// Section binds a key to the type of its sub-tree.
type Section[T any] struct {
	key SectionKey
	get func(*WebsiteConfig) T
}

// Key returns the section's document key.
func (s Section[T]) Key() SectionKey { return s.key }

// From extracts the section from an explicit document.
func (s Section[T]) From(cfg *WebsiteConfig) T { return s.get(cfg) }

var (
	Company      = Section[CompanyConfig]{KeyCompany, func(c *WebsiteConfig) CompanyConfig { return c.Company }}
	SEO          = Section[SEOConfig]{KeySEO, func(c *WebsiteConfig) SEOConfig { return c.SEO }}
	Hero         = Section[HeroConfig]{KeyHero, func(c *WebsiteConfig) HeroConfig { return c.Hero }}
	Services     = Section[ServicesConfig]{KeyServices, func(c *WebsiteConfig) ServicesConfig { return c.Services }}
	Technologies = Section[TechnologiesConfig]{KeyTechnologies, func(c *WebsiteConfig) TechnologiesConfig { return c.Technologies }}
	Projects     = Section[ProjectsConfig]{KeyProjects, func(c *WebsiteConfig) ProjectsConfig { return c.Projects }}
	Testimonials = Section[TestimonialsConfig]{KeyTestimonials, func(c *WebsiteConfig) TestimonialsConfig { return c.Testimonials }}
	Contact      = Section[ContactConfig]{KeyContact, func(c *WebsiteConfig) ContactConfig { return c.Contact }}
	Footer       = Section[FooterConfig]{KeyFooter, func(c *WebsiteConfig) FooterConfig { return c.Footer }}
	Navigation   = Section[NavigationConfig]{KeyNavigation, func(c *WebsiteConfig) NavigationConfig { return c.Navigation }}
	Theme        = Section[ThemeConfig]{KeyTheme, func(c *WebsiteConfig) ThemeConfig { return c.Theme }}
)

var (
	loadOnce sync.Once
	loaded   *WebsiteConfig
)

// MustLoad parses the embedded document on first use and panics if it does
// not satisfy the schema. The server calls it at startup so a broken document
// never reaches a request.
func MustLoad() *WebsiteConfig {
	loadOnce.Do(func() {
		cfg, err := Parse(document)
		if err != nil {
			panic(fmt.Sprintf("content: embedded website.json is invalid: %v", err))
		}
		loaded = cfg
	})
	return loaded
}

// GetFullConfig returns the whole document.
func GetFullConfig() *WebsiteConfig {
	return MustLoad()
}

// GetSection returns one typed section of the embedded document.
func GetSection[T any](s Section[T]) T {
	return s.get(MustLoad())
}

// Lookup returns the section stored under key as an untyped value.
func Lookup(key SectionKey) (any, bool) {
	return lookupIn(MustLoad(), key)
}

func lookupIn(cfg *WebsiteConfig, key SectionKey) (any, bool) {
	switch key {
	case KeyCompany:
		return cfg.Company, true
	case KeySEO:
		return cfg.SEO, true
	case KeyHero:
		return cfg.Hero, true
	case KeyServices:
		return cfg.Services, true
	case KeyTechnologies:
		return cfg.Technologies, true
	case KeyProjects:
		return cfg.Projects, true
	case KeyTestimonials:
		return cfg.Testimonials, true
	case KeyContact:
		return cfg.Contact, true
	case KeyFooter:
		return cfg.Footer, true
	case KeyNavigation:
		return cfg.Navigation, true
	case KeyTheme:
		return cfg.Theme, true
	}
	return nil, false
}

// Parse decodes a configuration document. Missing sections, unknown sections
// and unknown fields are all rejected.
func Parse(data []byte) (*WebsiteConfig, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}

	known := make(map[SectionKey]bool, len(Keys()))
	var missing []string
	for _, key := range Keys() {
		known[key] = true
		if _, ok := top[string(key)]; !ok {
			missing = append(missing, string(key))
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing sections: %v", missing)
	}

	var unknown []string
	for name := range top {
		if !known[SectionKey(name)] {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("unknown sections: %v", unknown)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var cfg WebsiteConfig
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode sections: %w", err)
	}
	return &cfg, nil
}

// Raw returns the embedded document bytes.
func Raw() []byte {
	out := make([]byte, len(document))
	copy(out, document)
	return out
}
