package middleware

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// VersionedAssets are the static files whose URLs carry a content hash.
var VersionedAssets = []string{
	"css/style.css",
	"js/motion.js",
	"images/favicon.png",
}

var (
	assetVersions     = map[string]string{}
	assetVersionsMu   sync.RWMutex
	assetVersionsOnce sync.Once
)

// InitAssetVersions computes file hashes for cache busting at startup
func InitAssetVersions(staticDir string, log zerolog.Logger) {
	assetVersionsOnce.Do(func() {
		versions := make(map[string]string, len(VersionedAssets))
		for _, name := range VersionedAssets {
			version, err := computeFileHash(filepath.Join(staticDir, name))
			if err != nil {
				log.Warn().Err(err).Str("asset", name).Msg("Failed to hash asset")
				continue
			}
			versions[name] = version
		}

		assetVersionsMu.Lock()
		assetVersions = versions
		assetVersionsMu.Unlock()
		log.Info().Int("assets", len(versions)).Msg("Asset versions initialized")
	})
}

// computeFileHash returns the first 8 characters of the MD5 hash of a file
func computeFileHash(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", err
	}
	return hex.EncodeToString(hash.Sum(nil))[:8], nil
}

// AssetVersion returns the version hash of a static file, or "1" when it was
// not hashed.
// Note: ctx is for API consistency with other template helpers; versions are
// computed once at startup.
func AssetVersion(ctx context.Context, name string) string {
	assetVersionsMu.RLock()
	defer assetVersionsMu.RUnlock()
	if v, ok := assetVersions[name]; ok {
		return v
	}
	return "1"
}

// AssetURL returns the cache-busted URL of a static file.
func AssetURL(ctx context.Context, name string) string {
	return "/static/" + name + "?v=" + AssetVersion(ctx, name)
}
