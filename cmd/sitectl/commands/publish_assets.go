package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"hraktech_web/logging"
	"hraktech_web/motion"
	"hraktech_web/services"
)

func publishAssetsCmd() *cobra.Command {
	var (
		from string
		ttl  time.Duration
	)
	cmd := &cobra.Command{
		Use:   "publish-assets",
		Short: "Upload the animation engine scripts to the configured storage",
		Long: "Upload the animation engine scripts to the configured storage.\n" +
			"If an upload or the final load check fails, the keys already written are deleted again.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			store := services.NewStorage(ctx, cfg, logging.WithComponent("storage"))
			return publishAssets(ctx, store, from, ttl, cmd.OutOrStdout(), logging.WithComponent("publish"))
		},
	}
	cmd.Flags().StringVar(&from, "from", "node_modules/gsap/dist", "directory holding gsap.min.js and ScrollTrigger.min.js")
	cmd.Flags().DurationVar(&ttl, "url-ttl", time.Hour, "lifetime of the printed signed URLs")
	return cmd
}

func publishAssets(ctx context.Context, store services.StorageProvider, from string, ttl time.Duration, out io.Writer, log zerolog.Logger) (err error) {
	var published []string
	defer func() {
		if err == nil {
			return
		}
		for _, key := range published {
			if derr := store.Delete(ctx, key); derr != nil {
				log.Warn().Err(derr).Str("key", key).Msg("Failed to roll back asset")
				continue
			}
			log.Info().Str("key", key).Msg("Asset rolled back")
		}
	}()

	for _, name := range []string{motion.DefaultEngineKey, motion.DefaultExtensionKey} {
		key := services.MotionAssetKey(store, cfg.MotionAssetPrefix, name)
		size, err := uploadFile(ctx, store, filepath.Join(from, name), key)
		if err != nil {
			return err
		}
		published = append(published, key)

		url, err := store.GetSignedURL(ctx, key, ttl)
		if err != nil {
			return err
		}
		log.Info().Str("key", key).Str("storage", store.Name()).Int64("size", size).Msg("Asset published")
		fmt.Fprintf(out, "%s\t%s\n", key, url)
	}

	// The published scripts must load as a working engine.
	if _, err := services.NewMotionLoader(store, cfg.MotionAssetPrefix).LoadEngine(ctx); err != nil {
		return fmt.Errorf("published engine is unreadable: %w", err)
	}
	return nil
}

func uploadFile(ctx context.Context, store services.StorageProvider, src, key string) (int64, error) {
	f, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, err
	}
	if _, err := store.UploadReader(ctx, f, key, services.ContentTypeFor(key), info.Size()); err != nil {
		return 0, fmt.Errorf("failed to upload %s: %w", filepath.Base(src), err)
	}
	return info.Size(), nil
}
