package pdf

import (
	"bytes"
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChromeRenderer_DefaultTimeout(t *testing.T) {
	renderer := NewChromeRenderer(Options{})

	assert.Equal(t, defaultTimeout, renderer.opts.Timeout)
}

func TestDisabledRenderer(t *testing.T) {
	_, err := DisabledRenderer{}.Render(context.Background(), "<html></html>")

	assert.ErrorIs(t, err, ErrDisabled)
}

func TestChromeRenderer_Render(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}
	if !chromeAvailable() {
		t.Skip("no chrome or chromium binary found")
	}
	renderer := NewChromeRenderer(Options{Landscape: true, Timeout: time.Minute})

	document, err := renderer.Render(context.Background(), "<html><body><h1>March 2024</h1></body></html>")

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(document, []byte("%PDF")))
}

func chromeAvailable() bool {
	for _, name := range []string{"google-chrome", "chromium", "chromium-browser", "headless-shell"} {
		if _, err := exec.LookPath(name); err == nil {
			return true
		}
	}
	return false
}
