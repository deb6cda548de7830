/*
Package pw provides a browser.Evaluator driving a browser through
Playwright, using playwright-go.

The Playwright driver and browsers have to be installed beforehand, see
https://github.com/playwright-community/playwright-go.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package pw

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/stylecheck/browser"
	"github.com/playwright-community/playwright-go"
)

// tracer traces with key 'stylecheck.browser'.
func tracer() tracing.Trace {
	return tracing.Select("stylecheck.browser")
}

// Page is a Chromium page controlled by Playwright.
type Page struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	page    playwright.Page
}

var _ browser.Evaluator = &Page{}
var _ browser.Resizer = &Page{}

// Open launches a headless Chromium, opens a page with the given viewport
// size and navigates to url.
func Open(url string, width, height int) (*Page, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("starting playwright: %w", err)
	}
	p := &Page{pw: pw}
	if p.browser, err = pw.Chromium.Launch(); err != nil {
		p.Close()
		return nil, fmt.Errorf("launching chromium: %w", err)
	}
	p.page, err = p.browser.NewPage(playwright.BrowserNewPageOptions{
		Viewport: &playwright.Size{Width: width, Height: height},
	})
	if err != nil {
		p.Close()
		return nil, err
	}
	tracer().Debugf("opening %s at %dx%d", url, width, height)
	if _, err = p.page.Goto(url); err != nil {
		p.Close()
		return nil, fmt.Errorf("opening %s: %w", url, err)
	}
	return p, nil
}

// Evaluate evaluates a JavaScript expression in the page. Playwright
// returns decoded values, which are re-encoded to JSON to unmarshal them
// into out.
func (p *Page) Evaluate(ctx context.Context, expression string, out any) error {
	var result any
	err := await(ctx, func() (err error) {
		result, err = p.page.Evaluate(expression)
		return
	})
	if err != nil {
		return err
	}
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// Resize sets the viewport size of the page.
func (p *Page) Resize(ctx context.Context, width, height int) error {
	return await(ctx, func() error {
		return p.page.SetViewportSize(width, height)
	})
}

// await runs call, returning early with the context's error if ctx is done
// first. Playwright calls cannot be cancelled; an abandoned call finishes
// in the background and its result is dropped.
func await(ctx context.Context, call func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	done := make(chan error, 1)
	go func() {
		done <- call()
	}()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		tracer().Errorf("playwright call abandoned: %v", ctx.Err())
		return ctx.Err()
	}
}

// Close shuts down the browser and the Playwright driver.
func (p *Page) Close() {
	if p.browser != nil {
		if err := p.browser.Close(); err != nil {
			tracer().Errorf("closing browser: %v", err)
		}
	}
	if err := p.pw.Stop(); err != nil {
		tracer().Errorf("stopping playwright: %v", err)
	}
}
