package motion

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// Tween declares one animation for the client engine. Target is a CSS
// selector; From/To hold engine properties such as opacity or y.
type Tween struct {
	Target        string         `json:"target"`
	From          map[string]any `json:"from,omitempty"`
	To            map[string]any `json:"to,omitempty"`
	Duration      float64        `json:"duration"`
	Delay         float64        `json:"delay,omitempty"`
	Stagger       float64        `json:"stagger,omitempty"`
	Ease          string         `json:"ease,omitempty"`
	Repeat        int            `json:"repeat,omitempty"` // -1 repeats forever
	Yoyo          bool           `json:"yoyo,omitempty"`
	ScrollTrigger *ScrollTrigger `json:"scrollTrigger,omitempty"`
}

// ScrollTrigger links a tween to the scroll position of Trigger.
type ScrollTrigger struct {
	Trigger string `json:"trigger"`
	Start   string `json:"start,omitempty"`
	End     string `json:"end,omitempty"`
	Scrub   bool   `json:"scrub,omitempty"`
}

// Animation is a tween registered in a Scope.
type Animation struct {
	Tween
	killed bool
}

// Killed reports whether the animation was cancelled.
func (a *Animation) Killed() bool { return a.killed }

type listener struct {
	target string
	event  string
	fn     func()
}

// Scope collects every animation, listener and timer a component acquires
// during setup. Revoke releases all of them exactly once.
//
// Callbacks registered with Every or After must not call Revoke.
type Scope struct {
	handle *Handle

	ctx    context.Context
	cancel context.CancelFunc

	mu         sync.Mutex
	revoked    bool
	animations []*Animation
	listeners  []*listener
	releases   []func()
	done       chan struct{}
	wg         sync.WaitGroup
}

// NewScope opens a scope bound to h. h may be nil; animations are then
// refused but listeners and timers still work.
func NewScope(h *Handle) *Scope {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scope{
		handle: h,
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}
}

// Handle returns the capability set the scope was opened with.
func (s *Scope) Handle() *Handle { return s.handle }

// Context is cancelled when the scope is revoked.
func (s *Scope) Context() context.Context { return s.ctx }

// Animate registers t. It returns nil without registering anything when no
// engine is available, the user prefers reduced motion, or the scope has been
// revoked.
func (s *Scope) Animate(t Tween) *Animation {
	if !s.handle.Animated() {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.revoked {
		return nil
	}
	a := &Animation{Tween: t}
	s.animations = append(s.animations, a)
	return a
}

// Listen attaches fn to event on target until the scope is revoked.
func (s *Scope) Listen(target, event string, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.revoked {
		return
	}
	s.listeners = append(s.listeners, &listener{target: target, event: event, fn: fn})
}

// Dispatch invokes the listeners attached to target for event and returns how
// many ran.
func (s *Scope) Dispatch(target, event string) int {
	s.mu.Lock()
	var fns []func()
	for _, l := range s.listeners {
		if l.target == target && l.event == event {
			fns = append(fns, l.fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
	return len(fns)
}

// Every calls fn on each interval tick until the returned stop function is
// called or the scope is revoked.
func (s *Scope) Every(interval time.Duration, fn func()) (stop func()) {
	return s.spawn(interval > 0, func(stopped <-chan struct{}) {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-s.done:
				return
			case <-stopped:
				return
			case <-ticker.C:
				fn()
			}
		}
	})
}

// After calls fn once after delay unless stopped or revoked first.
func (s *Scope) After(delay time.Duration, fn func()) (stop func()) {
	return s.spawn(true, func(stopped <-chan struct{}) {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-s.done:
		case <-stopped:
		case <-timer.C:
			fn()
		}
	})
}

func (s *Scope) spawn(ok bool, run func(stopped <-chan struct{})) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.revoked || !ok {
		return func() {}
	}

	stopped := make(chan struct{})
	var once sync.Once
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		run(stopped)
	}()
	return func() { once.Do(func() { close(stopped) }) }
}

// Defer registers a release function. Releases run in reverse order.
func (s *Scope) Defer(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.revoked {
		fn()
		return
	}
	s.releases = append(s.releases, fn)
}

// Revoke kills every animation, detaches every listener, stops every timer
// and runs deferred releases. It is idempotent and returns once no timer
// goroutine is left running.
func (s *Scope) Revoke() {
	s.mu.Lock()
	if s.revoked {
		s.mu.Unlock()
		return
	}
	s.revoked = true
	for _, a := range s.animations {
		a.killed = true
	}
	s.listeners = nil
	releases := s.releases
	s.releases = nil
	close(s.done)
	s.cancel()
	s.mu.Unlock()

	s.wg.Wait()
	for i := len(releases) - 1; i >= 0; i-- {
		releases[i]()
	}
}

// Revoked reports whether Revoke has run.
func (s *Scope) Revoked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revoked
}

// Active returns the animations that are still live.
func (s *Scope) Active() []Tween {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Tween
	for _, a := range s.animations {
		if !a.killed {
			out = append(out, a.Tween)
		}
	}
	return out
}

// Plan is the JSON document the client bootstrap script replays.
type Plan struct {
	Tweens []Tween `json:"tweens"`
}

// Plan serializes the live animations.
func (s *Scope) Plan() ([]byte, error) {
	tweens := s.Active()
	if tweens == nil {
		tweens = []Tween{}
	}
	return json.Marshal(Plan{Tweens: tweens})
}
