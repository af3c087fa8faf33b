package pdf

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	log "github.com/sirupsen/logrus"
)

const defaultTimeout = 30 * time.Second

var ErrDisabled = errors.New("pdf export is disabled")

// Renderer turns a complete HTML document into a PDF.
type Renderer interface {
	Render(ctx context.Context, html string) ([]byte, error)
}

type Options struct {
	Landscape bool
	// Timeout bounds a whole rendering, browser start included.
	Timeout time.Duration
}

// ChromeRenderer prints documents with a headless Chromium driven by chromedp.
// A browser is started per rendering, nothing is kept between calls.
type ChromeRenderer struct {
	opts Options
}

func NewChromeRenderer(opts Options) *ChromeRenderer {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	return &ChromeRenderer{opts: opts}
}

func (r *ChromeRenderer) Render(ctx context.Context, html string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opts.Timeout)
	defer cancel()

	browserCtx, browserCancel := chromedp.NewContext(ctx)
	defer browserCancel()

	started := time.Now()
	var document []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithLandscape(r.opts.Landscape).
				WithPreferCSSPageSize(true).
				Do(ctx)
			if err != nil {
				return err
			}
			document = data
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("pdf: chromedp run failed: %w", err)
	}
	log.Debugf("Rendered PDF of %d bytes in %s", len(document), time.Since(started))
	return document, nil
}

// DisabledRenderer is used when PDF export is switched off in configuration.
type DisabledRenderer struct{}

func (DisabledRenderer) Render(ctx context.Context, html string) ([]byte, error) {
	return nil, ErrDisabled
}
