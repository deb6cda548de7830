/*
Package cdp provides a browser.Evaluator driving Chrome through the Chrome
DevTools Protocol, using chromedp.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cdp

import (
	"context"
	"fmt"

	"github.com/chromedp/chromedp"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/stylecheck/browser"
)

// tracer traces with key 'stylecheck.browser'.
func tracer() tracing.Trace {
	return tracing.Select("stylecheck.browser")
}

// Tab is a headless Chrome tab showing a single page.
type Tab struct {
	ctx         context.Context
	cancelTab   context.CancelFunc
	cancelAlloc context.CancelFunc
}

var _ browser.Evaluator = &Tab{}
var _ browser.Resizer = &Tab{}

// Open starts a headless Chrome, sets the viewport size and navigates to
// url. The tab lives until Close is called or ctx is cancelled.
func Open(ctx context.Context, url string, width, height int) (*Tab, error) {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, chromedp.DefaultExecAllocatorOptions[:]...)
	tabCtx, cancelTab := chromedp.NewContext(allocCtx)
	t := &Tab{ctx: tabCtx, cancelTab: cancelTab, cancelAlloc: cancelAlloc}
	tracer().Debugf("opening %s at %dx%d", url, width, height)
	err := chromedp.Run(tabCtx,
		chromedp.EmulateViewport(int64(width), int64(height)),
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
	)
	if err != nil {
		t.Close()
		return nil, fmt.Errorf("opening %s: %w", url, err)
	}
	return t, nil
}

// Evaluate evaluates a JavaScript expression in the page. The deadline of
// ctx, if any, limits the evaluation.
func (t *Tab) Evaluate(ctx context.Context, expression string, out any) error {
	runCtx, cancel := t.bounded(ctx)
	defer cancel()
	return chromedp.Run(runCtx, chromedp.Evaluate(expression, out))
}

// Resize emulates a viewport of the given size.
func (t *Tab) Resize(ctx context.Context, width, height int) error {
	runCtx, cancel := t.bounded(ctx)
	defer cancel()
	return chromedp.Run(runCtx, chromedp.EmulateViewport(int64(width), int64(height)))
}

// bounded derives a context for chromedp actions, which have to run on the
// tab's context, carrying over the deadline of ctx.
func (t *Tab) bounded(ctx context.Context) (context.Context, context.CancelFunc) {
	if deadline, ok := ctx.Deadline(); ok {
		return context.WithDeadline(t.ctx, deadline)
	}
	return context.WithCancel(t.ctx)
}

// Close closes the tab and shuts down the browser.
func (t *Tab) Close() {
	t.cancelTab()
	t.cancelAlloc()
}
