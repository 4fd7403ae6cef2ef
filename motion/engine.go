package motion

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrAlreadyRegistered is returned when a plugin is registered twice on the
// same engine.
var ErrAlreadyRegistered = errors.New("motion: plugin already registered")

// Engine is a loaded animation engine script. It carries its own plugin
// registration markers so registration state travels with the instance.
type Engine struct {
	Name   string
	Global string // browser global the script defines, e.g. "gsap"
	Source []byte

	mu         sync.Mutex
	registered map[string]bool
	order      []string
}

// Extension is a plugin script for an Engine, e.g. ScrollTrigger.
type Extension struct {
	Name   string
	Source []byte
}

// IsRegistered reports whether the named plugin was registered on e.
func (e *Engine) IsRegistered(name string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.registered[name]
}

// RegisterPlugin marks ext as registered. A second registration of the same
// plugin fails with ErrAlreadyRegistered.
func (e *Engine) RegisterPlugin(ext *Extension) error {
	if ext == nil || ext.Name == "" {
		return errors.New("motion: plugin has no name")
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.registered == nil {
		e.registered = make(map[string]bool)
	}
	if e.registered[ext.Name] {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, ext.Name)
	}
	e.registered[ext.Name] = true
	e.order = append(e.order, ext.Name)
	return nil
}

// Plugins returns registered plugin names in registration order.
func (e *Engine) Plugins() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.order...)
}

// Handle is the cached animation capability set. It is created once per
// Guard and shared read-only by every caller.
type Handle struct {
	Engine               *Engine
	ScrollExtension      *Extension
	PrefersReducedMotion bool

	bundleOnce sync.Once
	bundle     []byte
	version    string
}

// Animated reports whether consumers may start animations with h.
func (h *Handle) Animated() bool {
	return h != nil && !h.PrefersReducedMotion
}

// Bundle concatenates the engine, the extension and the registration call
// into one script for the browser.
func (h *Handle) Bundle() []byte {
	h.bundleOnce.Do(func() {
		var buf bytes.Buffer
		buf.Write(h.Engine.Source)
		buf.WriteString("\n;\n")
		if h.ScrollExtension != nil {
			buf.Write(h.ScrollExtension.Source)
			buf.WriteString("\n;\n")
		}
		plugins := h.Engine.Plugins()
		sort.Strings(plugins)
		global := h.Engine.Global
		if global == "" {
			global = "gsap"
		}
		for _, name := range plugins {
			fmt.Fprintf(&buf, "if (window.%[1]s && window.%[2]s && !window.%[1]s.__registered%[2]s) { window.%[1]s.registerPlugin(window.%[2]s); window.%[1]s.__registered%[2]s = true; }\n", global, name)
		}
		h.bundle = buf.Bytes()
		sum := sha256.Sum256(h.bundle)
		h.version = hex.EncodeToString(sum[:])[:8]
	})
	return h.bundle
}

// Version is a short content hash of Bundle, used for cache busting.
func (h *Handle) Version() string {
	h.Bundle()
	return h.version
}
