package renderer

import (
	"fmt"
	"io"
	"os"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to a writer
type DefaultLogger struct {
	w io.Writer
}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(dl.w, format, args...)
}

// NewDefaultLogger creates a logger writing to w, or to stdout when w is nil
func NewDefaultLogger(w io.Writer) core.Logger {
	if w == nil {
		w = os.Stdout
	}
	return &DefaultLogger{w: w}
}

// NopLogger discards everything
type NopLogger struct{}

func (NopLogger) Printf(format string, args ...interface{}) {}

// prefixLogger tags every line with a render id
type prefixLogger struct {
	prefix string
	next   core.Logger
}

func (pl prefixLogger) Printf(format string, args ...interface{}) {
	pl.next.Printf("[%s] "+format, append([]interface{}{pl.prefix}, args...)...)
}
