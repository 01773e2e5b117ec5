// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/xcupdate/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.UpdateResult:
		sections, summary := display.UpdateSections(v)
		if err := r.sections(sections); err != nil {
			return err
		}
		_, err := fmt.Fprintln(r.output, summary.Text)
		return err
	case *display.ListResult:
		return r.list(v)
	case *display.StatusResult:
		return r.sections(display.StatusSections(v))
	default:
		// For unknown types, just print them
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) sections(sections []display.Section) error {
	var b strings.Builder
	for _, s := range sections {
		fmt.Fprintf(&b, "%s:\n", s.Title)
		for _, item := range s.Items {
			fmt.Fprintf(&b, "  %s\n", item)
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(r.output, b.String())
	return err
}

func (r *Renderer) list(res *display.ListResult) error {
	var b strings.Builder
	for _, g := range res.Groups {
		fmt.Fprintf(&b, "%s:\n", g.Track)
		if len(g.Entries) == 0 {
			b.WriteString("  (none)\n")
		}
		for _, e := range g.Entries {
			fmt.Fprintf(&b, "  %s%s\n", e.Version, markers(e))
		}
		b.WriteString("\n")
	}
	for _, w := range res.Warnings {
		fmt.Fprintf(&b, "warning: %s\n", w)
	}
	_, err := io.WriteString(r.output, b.String())
	return err
}

func markers(e display.VersionEntry) string {
	var tags []string
	if e.Latest {
		tags = append(tags, "latest")
	}
	if e.Installed {
		tags = append(tags, "installed")
	}
	tags = append(tags, e.Links...)
	if len(tags) == 0 {
		return ""
	}
	return " [" + strings.Join(tags, ", ") + "]"
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
