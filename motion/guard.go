// Package motion loads the optional client animation engine at most once per
// process and hands components a revocable scope to declare animations in.
//
// Animation is cosmetic. Every failure in this package degrades to "no
// animation" and is never returned to callers.
package motion

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// Guard is the process-scoped cache of the animation Handle.
type Guard struct {
	env    Environment
	loader Loader
	log    zerolog.Logger
	onLoad func(ok bool)

	handle atomic.Pointer[Handle]
	group  singleflight.Group
}

// Option configures a Guard.
type Option func(*Guard)

// WithLogger sets the logger used for swallowed failures.
func WithLogger(l zerolog.Logger) Option {
	return func(g *Guard) { g.log = l }
}

// WithLoadObserver is called after every underlying load attempt.
func WithLoadObserver(fn func(ok bool)) Option {
	return func(g *Guard) { g.onLoad = fn }
}

// NewGuard creates a guard. Create one per process and share it.
func NewGuard(env Environment, loader Loader, opts ...Option) *Guard {
	g := &Guard{
		env:    env,
		loader: loader,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Acquire returns the shared Handle, loading it on first use. It returns nil
// when the environment is not interactive, when loading fails, or when ctx is
// done before the in-flight load finishes. Concurrent first callers wait on a
// single load.
func (g *Guard) Acquire(ctx context.Context) *Handle {
	if g == nil || g.env == nil || !g.env.Interactive() {
		return nil
	}
	if h := g.handle.Load(); h != nil {
		return h
	}

	// The load is shared, so it must not inherit one caller's cancellation.
	loadCtx := context.WithoutCancel(ctx)
	ch := g.group.DoChan("handle", func() (any, error) {
		if h := g.handle.Load(); h != nil {
			return h, nil
		}
		h, err := g.load(loadCtx)
		if g.onLoad != nil {
			g.onLoad(err == nil)
		}
		if err != nil {
			return nil, err
		}
		g.handle.Store(h)
		return h, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			g.log.Debug().Err(res.Err).Msg("animation engine unavailable")
			return nil
		}
		return res.Val.(*Handle)
	case <-ctx.Done():
		return nil
	}
}

// Cached returns the handle without triggering a load.
func (g *Guard) Cached() *Handle {
	if g == nil {
		return nil
	}
	return g.handle.Load()
}

func (g *Guard) load(ctx context.Context) (h *Handle, err error) {
	defer func() {
		if r := recover(); r != nil {
			h, err = nil, fmt.Errorf("motion: loader panicked: %v", r)
		}
	}()

	if g.loader == nil {
		return nil, errors.New("motion: no loader configured")
	}
	engine, err := g.loader.LoadEngine(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load engine: %w", err)
	}
	ext, err := g.loader.LoadScrollExtension(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load scroll extension: %w", err)
	}

	if !engine.IsRegistered(ext.Name) {
		if err := engine.RegisterPlugin(ext); err != nil && !errors.Is(err, ErrAlreadyRegistered) {
			return nil, fmt.Errorf("failed to register %s: %w", ext.Name, err)
		}
	}

	h = &Handle{
		Engine:               engine,
		ScrollExtension:      ext,
		PrefersReducedMotion: g.env.PrefersReducedMotion(),
	}
	g.log.Info().
		Str("engine", engine.Name).
		Strs("plugins", engine.Plugins()).
		Bool("reduced_motion", h.PrefersReducedMotion).
		Msg("animation engine ready")
	return h, nil
}
