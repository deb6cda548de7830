package pw

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/stylecheck/browser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAwaitHonoursDeadline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecheck.browser")
	defer teardown()
	//
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	release := make(chan struct{})
	defer close(release)
	start := time.Now()
	err := await(ctx, func() error {
		<-release
		return nil
	})
	assert.True(t, errors.Is(err, context.DeadlineExceeded), "have %v", err)
	assert.Less(t, time.Since(start), 5*time.Second)
	//
	boom := errors.New("boom")
	assert.Equal(t, boom, await(context.Background(), func() error { return boom }))
	assert.NoError(t, await(context.Background(), func() error { return nil }))
	cancelled, stop := context.WithCancel(context.Background())
	stop()
	called := false
	err = await(cancelled, func() error { called = true; return nil })
	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, called, "a done context should not start a call")
}

// Needs an installed Playwright driver, set STYLECHECK_PLAYWRIGHT=1 to run.
func TestPageGeometry(t *testing.T) {
	if os.Getenv("STYLECHECK_PLAYWRIGHT") == "" {
		t.Skip("STYLECHECK_PLAYWRIGHT not set")
	}
	teardown := gotestingadapter.QuickConfig(t, "stylecheck.browser")
	defer teardown()
	//
	path, err := filepath.Abs("../../dom/static/testdata/supblocks.html")
	require.NoError(t, err)
	pg, err := Open("file://"+path, 900, 800)
	require.NoError(t, err)
	defer pg.Close()
	page := browser.New(pg)
	w, err := page.ViewportWidth()
	require.NoError(t, err)
	assert.Equal(t, 900, w)
	els, err := page.QueryAll(".supblock")
	require.NoError(t, err)
	require.Len(t, els, 3)
	a, err := page.BoundingRect(els[0])
	require.NoError(t, err)
	b, err := page.BoundingRect(els[1])
	require.NoError(t, err)
	assert.Equal(t, a.Width, b.Width)
	assert.False(t, a.OverlapsVertically(b))
}
