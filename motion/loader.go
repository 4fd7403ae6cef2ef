package motion

import (
	"context"
	"fmt"
	"io"
)

// Loader obtains the engine and its scroll-linked extension.
type Loader interface {
	LoadEngine(ctx context.Context) (*Engine, error)
	LoadScrollExtension(ctx context.Context) (*Extension, error)
}

// AssetSource is the read side of an object store. services.StorageProvider
// satisfies it.
type AssetSource interface {
	Get(ctx context.Context, key string) (io.ReadCloser, string, error)
}

// Default object keys for the engine scripts.
const (
	DefaultEngineKey    = "gsap.min.js"
	DefaultExtensionKey = "ScrollTrigger.min.js"
)

// maxScriptSize bounds a single script read.
const maxScriptSize = 4 << 20

// AssetLoader reads engine scripts from an AssetSource.
type AssetLoader struct {
	Source       AssetSource
	EngineKey    string
	ExtensionKey string
}

// NewAssetLoader returns a loader reading the default keys from source.
func NewAssetLoader(source AssetSource) *AssetLoader {
	return &AssetLoader{
		Source:       source,
		EngineKey:    DefaultEngineKey,
		ExtensionKey: DefaultExtensionKey,
	}
}

func (l *AssetLoader) LoadEngine(ctx context.Context) (*Engine, error) {
	src, err := l.read(ctx, l.EngineKey)
	if err != nil {
		return nil, err
	}
	return &Engine{Name: "gsap", Global: "gsap", Source: src}, nil
}

func (l *AssetLoader) LoadScrollExtension(ctx context.Context) (*Extension, error) {
	src, err := l.read(ctx, l.ExtensionKey)
	if err != nil {
		return nil, err
	}
	return &Extension{Name: "ScrollTrigger", Source: src}, nil
}

func (l *AssetLoader) read(ctx context.Context, key string) ([]byte, error) {
	if l.Source == nil {
		return nil, fmt.Errorf("no asset source configured")
	}
	rc, _, err := l.Source.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", key, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, maxScriptSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if len(data) > maxScriptSize {
		return nil, fmt.Errorf("%s exceeds %d bytes", key, maxScriptSize)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%s is empty", key)
	}
	return data, nil
}
