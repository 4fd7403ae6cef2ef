package ui

import "hraktech_web/motion"

// reveal is the shared scroll-triggered entrance used by the content
// sections.
func reveal(target, trigger string, stagger float64) motion.Tween {
	return motion.Tween{
		Target:        target,
		From:          map[string]any{"opacity": 0, "y": 40},
		Duration:      0.8,
		Stagger:       stagger,
		Ease:          "power3.out",
		ScrollTrigger: &motion.ScrollTrigger{Trigger: trigger, Start: "top 80%"},
	}
}

// MountHero registers the hero entrance: title words one after another, then
// the subtitle and call to action.
func MountHero(scope *motion.Scope) {
	scope.Animate(motion.Tween{
		Target:   "#hero [data-word]",
		From:     map[string]any{"opacity": 0, "y": 30},
		Duration: 0.7,
		Stagger:  0.12,
		Ease:     "power3.out",
	})
	scope.Animate(motion.Tween{
		Target:   "#hero [data-reveal]",
		From:     map[string]any{"opacity": 0, "y": 20},
		Duration: 0.6,
		Delay:    0.5,
		Stagger:  0.1,
		Ease:     "power2.out",
	})
}

// MountSections registers the scroll-triggered reveals of every content
// section below the hero.
func MountSections(scope *motion.Scope) {
	scope.Animate(reveal("#services .card", "#services", 0.15))
	scope.Animate(reveal("#technologies .card", "#technologies", 0.1))
	scope.Animate(reveal("#projects .category", "#projects", 0.2))
	scope.Animate(reveal("#testimonials .testimonial-card", "#testimonials", 0))
	scope.Animate(reveal("footer .footer-column", "footer", 0.1))
}
