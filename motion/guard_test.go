package motion

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEnv struct {
	interactive bool
	reduced     atomic.Bool
	reads       atomic.Int32
}

func (e *fakeEnv) Interactive() bool { return e.interactive }

func (e *fakeEnv) PrefersReducedMotion() bool {
	e.reads.Add(1)
	return e.reduced.Load()
}

type fakeLoader struct {
	engineLoads atomic.Int32
	extLoads    atomic.Int32
	release     chan struct{} // when set, LoadEngine blocks until closed
	engineErr   error
	extErr      error
	engine      *Engine
	panics      bool
}

func (l *fakeLoader) LoadEngine(ctx context.Context) (*Engine, error) {
	l.engineLoads.Add(1)
	if l.release != nil {
		<-l.release
	}
	if l.panics {
		panic("boom")
	}
	if l.engineErr != nil {
		return nil, l.engineErr
	}
	if l.engine != nil {
		return l.engine, nil
	}
	return &Engine{Name: "gsap", Global: "gsap", Source: []byte("window.gsap={}")}, nil
}

func (l *fakeLoader) LoadScrollExtension(ctx context.Context) (*Extension, error) {
	l.extLoads.Add(1)
	if l.extErr != nil {
		return nil, l.extErr
	}
	return &Extension{Name: "ScrollTrigger", Source: []byte("window.ScrollTrigger={}")}, nil
}

func TestAcquireNonInteractive(t *testing.T) {
	loader := &fakeLoader{}
	g := NewGuard(&fakeEnv{interactive: false}, loader)

	assert.Nil(t, g.Acquire(context.Background()))
	assert.Zero(t, loader.engineLoads.Load())

	var nilGuard *Guard
	assert.Nil(t, nilGuard.Acquire(context.Background()))
	assert.Nil(t, NewGuard(StaticEnvironment{}, loader).Acquire(context.Background()))
}

func TestAcquireCachesHandle(t *testing.T) {
	loader := &fakeLoader{}
	env := &fakeEnv{interactive: true}
	g := NewGuard(env, loader)

	first := g.Acquire(context.Background())
	require.NotNil(t, first)
	second := g.Acquire(context.Background())

	assert.Same(t, first, second)
	assert.Same(t, first, g.Cached())
	assert.Equal(t, int32(1), loader.engineLoads.Load())
	assert.Equal(t, int32(1), loader.extLoads.Load())
	assert.Equal(t, int32(1), env.reads.Load())
	assert.Equal(t, []string{"ScrollTrigger"}, first.Engine.Plugins())
}

func TestAcquireConcurrentCallersShareOneLoad(t *testing.T) {
	loader := &fakeLoader{release: make(chan struct{})}
	g := NewGuard(&fakeEnv{interactive: true}, loader)

	const callers = 32
	handles := make([]*Handle, callers)
	var started, wg sync.WaitGroup
	started.Add(callers)
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func(i int) {
			defer wg.Done()
			started.Done()
			handles[i] = g.Acquire(context.Background())
		}(i)
	}
	started.Wait()
	// Give every caller time to join the in-flight load.
	time.Sleep(20 * time.Millisecond)
	close(loader.release)
	wg.Wait()

	assert.Equal(t, int32(1), loader.engineLoads.Load())
	require.NotNil(t, handles[0])
	for _, h := range handles {
		assert.Same(t, handles[0], h)
	}
}

func TestReducedMotionIsFrozen(t *testing.T) {
	env := &fakeEnv{interactive: true}
	g := NewGuard(env, &fakeLoader{})

	h := g.Acquire(context.Background())
	require.NotNil(t, h)
	assert.False(t, h.PrefersReducedMotion)

	env.reduced.Store(true)
	again := g.Acquire(context.Background())
	assert.Same(t, h, again)
	assert.False(t, again.PrefersReducedMotion)
	assert.Equal(t, int32(1), env.reads.Load())
}

func TestServerEnvironmentReducedMotionIsFrozen(t *testing.T) {
	t.Setenv("TEST_REDUCED_MOTION", "reduce")
	env := ServerEnvironment{Enabled: true, ReducedMotionVar: "TEST_REDUCED_MOTION"}
	g := NewGuard(env, &fakeLoader{})

	h := g.Acquire(context.Background())
	require.NotNil(t, h)
	assert.True(t, h.PrefersReducedMotion)
	assert.False(t, h.Animated())

	t.Setenv("TEST_REDUCED_MOTION", "false")
	assert.False(t, env.PrefersReducedMotion())
	assert.True(t, g.Acquire(context.Background()).PrefersReducedMotion)
}

func TestAcquireSwallowsFailures(t *testing.T) {
	tests := []struct {
		name   string
		loader *fakeLoader
	}{
		{"engine error", &fakeLoader{engineErr: errors.New("network down")}},
		{"extension error", &fakeLoader{extErr: errors.New("404")}},
		{"loader panic", &fakeLoader{panics: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var observed []bool
			g := NewGuard(&fakeEnv{interactive: true}, tt.loader, WithLoadObserver(func(ok bool) {
				observed = append(observed, ok)
			}))
			assert.NotPanics(t, func() {
				assert.Nil(t, g.Acquire(context.Background()))
			})
			assert.Nil(t, g.Cached())
			assert.Equal(t, []bool{false}, observed)
		})
	}
}

func TestAcquireRetriesAfterFailure(t *testing.T) {
	loader := &fakeLoader{engineErr: errors.New("temporarily unavailable")}
	g := NewGuard(&fakeEnv{interactive: true}, loader)

	assert.Nil(t, g.Acquire(context.Background()))
	loader.engineErr = nil
	assert.NotNil(t, g.Acquire(context.Background()))
	assert.Equal(t, int32(2), loader.engineLoads.Load())
}

func TestAcquireSkipsRegisteredPlugin(t *testing.T) {
	engine := &Engine{Name: "gsap", Source: []byte("x")}
	require.NoError(t, engine.RegisterPlugin(&Extension{Name: "ScrollTrigger"}))

	g := NewGuard(&fakeEnv{interactive: true}, &fakeLoader{engine: engine})
	h := g.Acquire(context.Background())
	require.NotNil(t, h)
	assert.Equal(t, []string{"ScrollTrigger"}, h.Engine.Plugins())
}

func TestAcquireCancelledCallerDoesNotAbortLoad(t *testing.T) {
	loader := &fakeLoader{release: make(chan struct{})}
	g := NewGuard(&fakeEnv{interactive: true}, loader)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan *Handle)
	go func() { done <- g.Acquire(ctx) }()
	time.Sleep(10 * time.Millisecond)
	cancel()
	assert.Nil(t, <-done)

	close(loader.release)
	h := g.Acquire(context.Background())
	require.NotNil(t, h)
	assert.Equal(t, int32(1), loader.engineLoads.Load())
}

func TestRegisterPluginTwice(t *testing.T) {
	engine := &Engine{Name: "gsap"}
	ext := &Extension{Name: "ScrollTrigger"}
	require.NoError(t, engine.RegisterPlugin(ext))
	err := engine.RegisterPlugin(ext)
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
	assert.True(t, engine.IsRegistered("ScrollTrigger"))
	assert.Error(t, engine.RegisterPlugin(&Extension{}))
}

func TestHandleBundle(t *testing.T) {
	g := NewGuard(&fakeEnv{interactive: true}, &fakeLoader{})
	h := g.Acquire(context.Background())
	require.NotNil(t, h)

	bundle := string(h.Bundle())
	assert.True(t, strings.HasPrefix(bundle, "window.gsap={}"))
	assert.Contains(t, bundle, "window.ScrollTrigger={}")
	assert.Equal(t, 1, strings.Count(bundle, "registerPlugin(window.ScrollTrigger)"))
	assert.Len(t, h.Version(), 8)
	assert.Equal(t, h.Version(), h.Version())
}

type mapSource map[string]string

func (m mapSource) Get(ctx context.Context, key string) (io.ReadCloser, string, error) {
	v, ok := m[key]
	if !ok {
		return nil, "", errors.New("not found")
	}
	return io.NopCloser(strings.NewReader(v)), "application/javascript", nil
}

func TestAssetLoader(t *testing.T) {
	t.Run("loads both scripts", func(t *testing.T) {
		l := NewAssetLoader(mapSource{
			DefaultEngineKey:    "engine",
			DefaultExtensionKey: "extension",
		})
		engine, err := l.LoadEngine(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "engine", string(engine.Source))

		ext, err := l.LoadScrollExtension(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "ScrollTrigger", ext.Name)
	})

	t.Run("missing asset", func(t *testing.T) {
		_, err := NewAssetLoader(mapSource{}).LoadEngine(context.Background())
		assert.Error(t, err)
	})

	t.Run("empty asset", func(t *testing.T) {
		_, err := NewAssetLoader(mapSource{DefaultEngineKey: ""}).LoadEngine(context.Background())
		assert.ErrorContains(t, err, "empty")
	})

	t.Run("no source", func(t *testing.T) {
		_, err := (&AssetLoader{}).LoadEngine(context.Background())
		assert.Error(t, err)
	})

	t.Run("guard degrades when assets are absent", func(t *testing.T) {
		g := NewGuard(ServerEnvironment{Enabled: true}, NewAssetLoader(mapSource{}))
		assert.Nil(t, g.Acquire(context.Background()))
	})
}
