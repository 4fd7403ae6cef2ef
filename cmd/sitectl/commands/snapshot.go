package commands

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"hraktech_web/logging"
	"hraktech_web/services"
)

func snapshotCmd() *cobra.Command {
	var (
		url     string
		out     string
		upload  string
		timeout time.Duration
		opts    = services.DefaultSnapshotOptions()
	)
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Capture the rendered site as PNG or PDF with headless Chrome",
		RunE: func(cmd *cobra.Command, args []string) error {
			if url == "" {
				url = cfg.AppURL + "/"
			}
			if opts.ChromePath == "" {
				opts.ChromePath = cfg.ChromePath
			}
			if err := opts.Validate(); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()
			data, err := services.CaptureSnapshot(ctx, url, opts)
			if err != nil {
				return err
			}

			if out != "" {
				if err := os.WriteFile(out, data, 0o644); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", out, len(data))
			}
			if upload != "" {
				store := services.NewStorage(ctx, cfg, logging.WithComponent("storage"))
				res, err := store.UploadReader(ctx, bytes.NewReader(data), upload, opts.ContentType(), int64(len(data)))
				if err != nil {
					return fmt.Errorf("failed to upload snapshot: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "uploaded %s to %s\n", res.Key, store.GetPublicURL(res.Key))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&url, "url", "", "page to capture (default APP_URL)")
	cmd.Flags().StringVarP(&out, "out", "o", "snapshot.png", "output file, empty to skip")
	cmd.Flags().StringVar(&upload, "upload", "", "also store the capture under this key")
	cmd.Flags().StringVar(&opts.Format, "format", opts.Format, "png or pdf")
	cmd.Flags().Int64Var(&opts.Width, "width", opts.Width, "viewport width")
	cmd.Flags().Int64Var(&opts.Height, "height", opts.Height, "viewport height, 0 for the full page")
	cmd.Flags().BoolVar(&opts.ReducedMotion, "reduced-motion", opts.ReducedMotion, "emulate prefers-reduced-motion")
	cmd.Flags().DurationVar(&opts.Settle, "settle", opts.Settle, "wait after load before capturing")
	cmd.Flags().DurationVar(&timeout, "timeout", time.Minute, "overall capture timeout")
	return cmd
}
