package motion

import (
	"os"
	"strings"
)

// Environment describes where the guard runs.
type Environment interface {
	// Interactive is false when output is rendered for non-interactive
	// consumers (static export, prerendering) where no engine is used.
	Interactive() bool
	// PrefersReducedMotion is read once per Guard; later changes are not
	// observed.
	PrefersReducedMotion() bool
}

// ServerEnvironment serves pages to browsers. The reduced-motion preference is
// read from an environment variable when first asked.
type ServerEnvironment struct {
	Enabled bool
	// ReducedMotionVar names the variable holding the site-wide preference.
	// Defaults to PREFERS_REDUCED_MOTION.
	ReducedMotionVar string
}

func (e ServerEnvironment) Interactive() bool { return e.Enabled }

func (e ServerEnvironment) PrefersReducedMotion() bool {
	name := e.ReducedMotionVar
	if name == "" {
		name = "PREFERS_REDUCED_MOTION"
	}
	switch strings.ToLower(strings.TrimSpace(os.Getenv(name))) {
	case "true", "1", "yes", "on", "reduce":
		return true
	}
	return false
}

// StaticEnvironment is used for static exports and snapshots.
type StaticEnvironment struct{}

func (StaticEnvironment) Interactive() bool          { return false }
func (StaticEnvironment) PrefersReducedMotion() bool { return true }
