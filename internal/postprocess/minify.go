// Package postprocess optionally shrinks an engine's rendered output before
// it reaches its destination (a file, an HTTP response, the live-reload
// preview). It is wholly independent of execution: render first, minify
// after.
package postprocess

import (
	"bytes"
	"sync"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/html"
)

var (
	minifierOnce sync.Once
	minifier     *minify.M
)

// sharedMinifier builds the minify.M registry exactly once; minify.M is
// safe for concurrent use once configured, so every caller shares it.
func sharedMinifier() *minify.M {
	minifierOnce.Do(func() {
		minifier = minify.New()
		minifier.AddFunc("text/html", html.Minify)
	})
	return minifier
}

// HTML minifies rendered output understood to be an HTML fragment.
// Templates emitting plain text should not call this.
func HTML(output string) (string, error) {
	var buf bytes.Buffer
	if err := sharedMinifier().Minify("text/html", &buf, bytes.NewBufferString(output)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
