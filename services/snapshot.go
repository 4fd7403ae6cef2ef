package services

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Snapshot formats.
const (
	SnapshotPNG = "png"
	SnapshotPDF = "pdf"
)

// SnapshotOptions controls a headless capture of the rendered site.
type SnapshotOptions struct {
	Format        string // png or pdf
	Width         int64  // viewport width in CSS pixels
	Height        int64  // viewport height; 0 captures the full page for png
	ReducedMotion bool   // emulate prefers-reduced-motion so entrance animations are skipped
	Settle        time.Duration
	ChromePath    string
}

// DefaultSnapshotOptions returns the Open Graph image settings (1200x630).
func DefaultSnapshotOptions() SnapshotOptions {
	return SnapshotOptions{
		Format:        SnapshotPNG,
		Width:         1200,
		Height:        630,
		ReducedMotion: true,
		Settle:        500 * time.Millisecond,
	}
}

// Validate rejects options chromedp cannot honor.
func (o SnapshotOptions) Validate() error {
	if o.Format != SnapshotPNG && o.Format != SnapshotPDF {
		return fmt.Errorf("unsupported snapshot format %q", o.Format)
	}
	if o.Width <= 0 || o.Height < 0 {
		return fmt.Errorf("invalid viewport %dx%d", o.Width, o.Height)
	}
	return nil
}

// ContentType returns the MIME type of the capture.
func (o SnapshotOptions) ContentType() string {
	if o.Format == SnapshotPDF {
		return ContentTypeFor("x.pdf")
	}
	return ContentTypeFor("x.png")
}

// CaptureSnapshot loads url in headless Chrome and returns a screenshot or a
// PDF of the page.
func CaptureSnapshot(ctx context.Context, url string, opts SnapshotOptions) ([]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.WindowSize(int(opts.Width), int(max(opts.Height, 800))),
	)
	// Custom Chrome path (headless-shell in Docker)
	if opts.ChromePath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(opts.ChromePath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer allocCancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	var out []byte
	actions := []chromedp.Action{
		emulation.SetDeviceMetricsOverride(opts.Width, max(opts.Height, 1), 1, false),
	}
	if opts.ReducedMotion {
		actions = append(actions, emulation.SetEmulatedMedia().WithFeatures([]*emulation.MediaFeature{
			{Name: "prefers-reduced-motion", Value: "reduce"},
		}))
	}
	actions = append(actions,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(opts.Settle),
	)

	switch {
	case opts.Format == SnapshotPDF:
		actions = append(actions, chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithDisplayHeaderFooter(false).
				Do(ctx)
			if err != nil {
				return err
			}
			out = buf
			return nil
		}))
	case opts.Height == 0:
		actions = append(actions, chromedp.FullScreenshot(&out, 90))
	default:
		actions = append(actions, chromedp.CaptureScreenshot(&out))
	}

	if err := chromedp.Run(browserCtx, actions...); err != nil {
		return nil, fmt.Errorf("failed to capture %s: %w", url, err)
	}
	return out, nil
}
