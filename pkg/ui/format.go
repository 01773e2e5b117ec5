package ui

import (
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/xcupdate/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects how reports, listings and help topics are written.
type Format int

const (
	// FormatAuto picks FormatTerminal or FormatText from the output.
	FormatAuto Format = iota
	// FormatTerminal writes styled tables and banners.
	FormatTerminal
	// FormatText writes plain lines, for pipes and logs.
	FormatText
	// FormatJSON writes the report for scripts.
	FormatJSON
)

var formatNames = map[string]Format{
	"":         FormatAuto,
	"auto":     FormatAuto,
	"term":     FormatTerminal,
	"terminal": FormatTerminal,
	"text":     FormatText,
	"plain":    FormatText,
	"json":     FormatJSON,
}

func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTerminal:
		return "term"
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// Styled reports whether output in this format may carry escape sequences.
func (f Format) Styled() bool {
	return f == FormatTerminal
}

// ParseFormat reads the --format flag. Names are case insensitive.
func ParseFormat(s string) (Format, error) {
	if f, ok := formatNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return f, nil
	}
	return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format: %s (want auto, term, text or json)", s).
		WithDetail("flag", "format").
		WithDetail("value", s)
}

// Resolve turns FormatAuto into a concrete format for w. Writers that are
// not files, such as buffers in tests, get FormatTerminal.
func Resolve(f Format, w io.Writer) Format {
	if f != FormatAuto {
		return f
	}
	if file, ok := w.(*os.File); ok {
		return DetectFormat(file)
	}
	return FormatTerminal
}

// DetectFormat inspects a file descriptor. NO_COLOR, pipes and terminals
// without color all get FormatText.
func DetectFormat(output *os.File) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return FormatText
	}
	if termenv.ColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
