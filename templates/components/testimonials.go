package components

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hraktech_web/content"
	"hraktech_web/services/i18n"

	"github.com/a-h/templ"
)

// CarouselView is the rendered carousel state. Every control sends it back
// so the server can rebuild the carousel without a session.
type CarouselView struct {
	Index    int
	Autoplay bool
	Interval time.Duration
}

// CarouselURL is the fragment endpoint for an operation on the carousel.
func CarouselURL(op string, index int, autoplay bool) string {
	return fmt.Sprintf("/htmx/testimonials?op=%s&index=%d&autoplay=%t", op, index, autoplay)
}

func Testimonials(cfg content.TestimonialsConfig, view CarouselView) templ.Component {
	return section("testimonials",
		sectionHeader("testimonials", cfg.Badge, cfg.Title, cfg.Description),
		TestimonialCarousel(cfg.Items, view),
	)
}

// TestimonialCarousel renders the current testimonial with its controls.
// While autoplay is on the container polls for the next entry; the first
// manual move renders a container without the poll.
func TestimonialCarousel(items []content.Testimonial, view CarouselView) templ.Component {
	return Func(func(ctx context.Context) templ.Component {
		if len(items) == 0 {
			return El("div", []Attr{A("id", "testimonial-carousel"), A("class", "carousel carousel-empty")})
		}
		current := items[view.Index%len(items)]

		attrs := []Attr{
			A("id", "testimonial-carousel"),
			A("class", "carousel testimonial-card"),
			A("aria-roledescription", "carousel"),
			A("aria-live", "polite"),
		}
		if view.Autoplay {
			attrs = append(attrs,
				A("hx-get", CarouselURL("tick", view.Index, true)),
				A("hx-trigger", fmt.Sprintf("every %dms", view.Interval.Milliseconds())),
				A("hx-swap", "outerHTML"),
			)
		}

		control := func(op, label, icon string) templ.Component {
			return El("button", []Attr{
				A("type", "button"),
				A("class", "carousel-arrow carousel-"+op),
				A("aria-label", label),
				A("hx-get", CarouselURL(op, view.Index, view.Autoplay)),
				A("hx-target", "#testimonial-carousel"),
				A("hx-swap", "outerHTML"),
			}, Icon(icon))
		}

		return El("div", attrs,
			El("figure", []Attr{A("class", "testimonial")},
				El("blockquote", nil, El("p", nil, Text(current.Comment))),
				Stars(current.Rating),
				El("figcaption", nil,
					El("span", []Attr{A("class", "avatar"), A("aria-hidden", "true")}, Text(current.Image)),
					El("strong", nil, Text(current.Name)),
					El("span", nil, Text(current.Position+", "+current.Company)),
				),
			),
			El("div", []Attr{A("class", "carousel-controls")},
				control("prev", i18n.T(ctx, "a11y.previous_testimonial"), "chevron-left"),
				El("div", []Attr{A("class", "carousel-dots")},
					Each(items, func(i int, _ content.Testimonial) templ.Component {
						return El("button", Attrs([]Attr{
							A("type", "button"),
							A("class", dotClass(i == view.Index)),
							A("aria-label", i18n.T(ctx, "a11y.go_to_testimonial", map[string]interface{}{"index": i + 1})),
							A("hx-get", CarouselURL("goto", i, view.Autoplay)),
							A("hx-target", "#testimonial-carousel"),
							A("hx-swap", "outerHTML"),
						}, If(i == view.Index, A("aria-current", "true"))))
					}),
				),
				control("next", i18n.T(ctx, "a11y.next_testimonial"), "chevron-right"),
			),
		)
	})
}

// Stars renders a five star rating.
func Stars(rating int) templ.Component {
	return Func(func(ctx context.Context) templ.Component {
		var b strings.Builder
		for i := 1; i <= 5; i++ {
			if i <= rating {
				b.WriteString("★")
			} else {
				b.WriteString("☆")
			}
		}
		return El("div", []Attr{
			A("class", "stars"),
			A("role", "img"),
			A("aria-label", i18n.T(ctx, "a11y.rating", map[string]interface{}{"rating": rating})),
		}, Text(b.String()))
	})
}

func dotClass(active bool) string {
	if active {
		return "carousel-dot active"
	}
	return "carousel-dot"
}
