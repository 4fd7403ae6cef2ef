package services

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"hraktech_web/config"
	"hraktech_web/motion"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage(t *testing.T) {
	tempDir := t.TempDir()

	storage := NewLocalStorage(tempDir)
	ctx := context.Background()
	content := "window.gsap = {};"
	key := "gsap.min.js"
	size := int64(len(content))

	t.Run("UploadReader creates file", func(t *testing.T) {
		result, err := storage.UploadReader(ctx, strings.NewReader(content), key, ContentTypeFor(key), size)
		require.NoError(t, err)
		assert.Equal(t, key, result.Key)
		assert.Equal(t, size, result.FileSize)

		_, err = os.Stat(filepath.Join(tempDir, key))
		assert.NoError(t, err)
	})

	t.Run("Get retrieves file content", func(t *testing.T) {
		reader, contentType, err := storage.Get(ctx, key)
		require.NoError(t, err)
		defer reader.Close()

		got, _ := io.ReadAll(reader)
		assert.Equal(t, content, string(got))
		assert.Equal(t, "text/javascript; charset=utf-8", contentType)
	})

	t.Run("keys cannot escape the base directory", func(t *testing.T) {
		_, err := storage.UploadReader(ctx, strings.NewReader("x"), "../outside.js", "text/javascript", 1)
		require.NoError(t, err)
		_, err = os.Stat(filepath.Join(tempDir, "outside.js"))
		assert.NoError(t, err)

		_, _, err = storage.Get(ctx, "")
		assert.Error(t, err)
	})

	t.Run("Delete removes file", func(t *testing.T) {
		assert.NoError(t, storage.Delete(ctx, key))
		_, err := os.Stat(filepath.Join(tempDir, key))
		assert.True(t, os.IsNotExist(err))
		assert.NoError(t, storage.Delete(ctx, key), "deleting a missing file is not an error")
	})

	t.Run("URLs and paths", func(t *testing.T) {
		expected := "/" + filepath.ToSlash(filepath.Join(tempDir, "some/key.js"))
		assert.Equal(t, expected, storage.GetPublicURL("some/key.js"))

		signed, err := storage.GetSignedURL(ctx, "some/key.js", time.Hour)
		assert.NoError(t, err)
		assert.Equal(t, expected, signed)
		assert.True(t, storage.IsConfigured())
		assert.Equal(t, "local", storage.Name())
	})
}

func TestLocalStorageFeedsAssetLoader(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, motion.DefaultEngineKey), []byte("/* engine */"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, motion.DefaultExtensionKey), []byte("/* scroll */"), 0o644))

	loader := motion.NewAssetLoader(NewLocalStorage(dir))
	engine, err := loader.LoadEngine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/* engine */", string(engine.Source))

	ext, err := loader.LoadScrollExtension(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ScrollTrigger", ext.Name)
}

func TestNewStorageFallsBackToLocal(t *testing.T) {
	cfg := &config.Config{MotionAssetDir: t.TempDir()}
	store := NewStorage(context.Background(), cfg, zerolog.Nop())
	assert.Equal(t, "local", store.Name())
	assert.Equal(t, "gsap.min.js", MotionAssetKey(store, "vendor", "gsap.min.js"))
}

func TestMotionAssetKeyPrefixesR2(t *testing.T) {
	assert.Equal(t, "vendor/gsap.min.js", MotionAssetKey(&R2Storage{}, "vendor", "gsap.min.js"))
	assert.Equal(t, "gsap.min.js", MotionAssetKey(&R2Storage{}, "", "gsap.min.js"))
}

func TestNewMotionLoaderKeys(t *testing.T) {
	local := NewMotionLoader(NewLocalStorage(t.TempDir()), "vendor")
	assert.Equal(t, motion.DefaultEngineKey, local.EngineKey)

	remote := NewMotionLoader(&R2Storage{}, "vendor")
	assert.Equal(t, "vendor/"+motion.DefaultEngineKey, remote.EngineKey)
	assert.Equal(t, "vendor/"+motion.DefaultExtensionKey, remote.ExtensionKey)
}

func TestContentTypeFor(t *testing.T) {
	assert.Equal(t, "text/css; charset=utf-8", ContentTypeFor("style.CSS"))
	assert.Equal(t, "image/png", ContentTypeFor("og.png"))
	assert.Equal(t, "application/octet-stream", ContentTypeFor("README"))
}
