// Package ui writes command results. A Renderer exists per output format:
// styled terminal tables, plain text, and JSON for scripts.
package ui

import (
	"io"

	"github.com/arthur-debert/xcupdate/pkg/errors"
	"github.com/arthur-debert/xcupdate/pkg/ui/json"
	"github.com/arthur-debert/xcupdate/pkg/ui/terminal"
	"github.com/arthur-debert/xcupdate/pkg/ui/text"
)

// Renderer writes the values built by pkg/ui/display.
type Renderer interface {
	// RenderResult writes an UpdateResult, ListResult or StatusResult.
	RenderResult(result interface{}) error

	// RenderError writes a failure, including its code when it has one.
	RenderError(err error) error

	// RenderMessage writes a single line, such as a config path.
	RenderMessage(msg string) error
}

// NewRenderer returns the renderer for format, resolving FormatAuto
// against output.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch Resolve(format, output) {
	case FormatTerminal:
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return json.New(output)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format).
			WithDetail("format", int(format))
	}
}

// ForFlag parses a --format value and returns its renderer.
func ForFlag(flag string, output io.Writer) (Renderer, error) {
	format, err := ParseFormat(flag)
	if err != nil {
		return nil, err
	}
	return NewRenderer(format, output)
}
