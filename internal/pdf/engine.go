// Package pdf prints HTML documents to PDF through a headless Chrome
// instance driven over the DevTools protocol.
package pdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Letter dimensions in inches with half-inch margins on all sides.
const (
	paperWidth  = 8.5
	paperHeight = 11
	pageMargin  = 0.5
)

// Renderer converts an HTML document into PDF bytes. Implementations
// must be safe for concurrent use.
type Renderer interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
}

// Engine renders via a locally installed Chrome or Chromium binary.
type Engine struct {
	// ChromePath overrides binary discovery when set.
	ChromePath string
	// Timeout bounds one render run, browser startup included.
	Timeout time.Duration
}

func NewEngine(chromePath string, timeout time.Duration) *Engine {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Engine{ChromePath: chromePath, Timeout: timeout}
}

// RenderPDF writes the document to a temp file, loads it over file://
// and prints it. The temp file avoids data-URL size limits on large
// documents.
func (e *Engine) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, e.Timeout)
	defer cancel()

	dir, err := os.MkdirTemp("", "resume-render-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	htmlPath := filepath.Join(dir, "resume.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o600); err != nil {
		return nil, fmt.Errorf("write html: %w", err)
	}

	opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	opts = append(opts,
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if e.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(e.ChromePath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var buf []byte
	err = chromedp.Run(browserCtx,
		chromedp.EmulateViewport(816, 1056, chromedp.EmulateScale(2)),
		chromedp.Navigate("file://"+htmlPath),
		// The document is fully self-contained (inline CSS, no
		// external fetches), so DOM readiness is network idle.
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var printErr error
			buf, _, printErr = page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				WithPaperWidth(paperWidth).
				WithPaperHeight(paperHeight).
				WithMarginTop(pageMargin).
				WithMarginBottom(pageMargin).
				WithMarginLeft(pageMargin).
				WithMarginRight(pageMargin).
				Do(ctx)
			return printErr
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("print to pdf: %w", err)
	}
	return buf, nil
}

var _ Renderer = (*Engine)(nil)
