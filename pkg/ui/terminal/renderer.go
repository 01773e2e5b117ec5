// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/xcupdate/pkg/ui/display"
	"github.com/arthur-debert/xcupdate/pkg/ui/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

// Renderer provides rich terminal output using lipgloss styles
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.UpdateResult:
		var b strings.Builder
		if v.Report.DryRun {
			b.WriteString(styles.GetStyle("DryRun").Render("DRY RUN") + "\n\n")
		}
		sections, summary := display.UpdateSections(v)
		writeSections(&b, sections)
		b.WriteString(kindStyle(summary.Kind).Render(summary.Text) + "\n")
		return r.write(b.String())
	case *display.ListResult:
		return r.write(renderList(v))
	case *display.StatusResult:
		var b strings.Builder
		writeSections(&b, display.StatusSections(v))
		return r.write(b.String())
	default:
		// For unknown types, just print them
		return r.write(fmt.Sprintf("%+v\n", result))
	}
}

func (r *Renderer) write(s string) error {
	_, err := io.WriteString(r.output, s)
	return err
}

func writeSections(b *strings.Builder, sections []display.Section) {
	for _, s := range sections {
		b.WriteString(styles.GetStyle("SubHeader").Render(s.Title) + "\n")
		style := kindStyle(s.Kind)
		for _, item := range s.Items {
			b.WriteString("  " + style.Render(item) + "\n")
		}
		b.WriteString("\n")
	}
}

func kindStyle(k display.Kind) lipgloss.Style {
	switch k {
	case display.KindSuccess:
		return styles.GetStyle("Success")
	case display.KindWarning:
		return styles.GetStyle("Warning")
	case display.KindError:
		return styles.GetStyle("Error")
	case display.KindMuted:
		return styles.GetStyle("Muted")
	default:
		return styles.GetStyle("Info")
	}
}

// renderList draws one table per track.
func renderList(res *display.ListResult) string {
	var b strings.Builder
	for _, g := range res.Groups {
		trackStyle := styles.GetStyle("Stable")
		if g.Track == "prerelease" {
			trackStyle = styles.GetStyle("Prerelease")
		}
		b.WriteString(styles.MergeStyles("SubHeader").Inherit(trackStyle).Render(strings.ToUpper(g.Track)) + "\n")

		if len(g.Entries) == 0 {
			b.WriteString("  " + styles.GetStyle("Muted").Render("(none)") + "\n\n")
			continue
		}

		data := pterm.TableData{{"Version", "Status", "Links", "Path"}}
		for _, e := range g.Entries {
			data = append(data, []string{
				styles.GetStyle("Version").Render(e.Version),
				status(e),
				styles.GetStyle("Link").Render(strings.Join(e.Links, ", ")),
				styles.GetStyle("Path").Render(e.Path),
			})
		}
		table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			table = fmt.Sprintf("%v", data)
		}
		b.WriteString(table + "\n\n")
	}
	for _, w := range res.Warnings {
		b.WriteString(styles.GetStyle("Warning").Render("warning: "+w) + "\n")
	}
	return b.String()
}

func status(e display.VersionEntry) string {
	var parts []string
	if e.Installed {
		parts = append(parts, styles.GetStyle("Success").Render("installed"))
	} else {
		parts = append(parts, styles.GetStyle("Muted").Render("available"))
	}
	if e.Latest {
		parts = append(parts, styles.GetStyle("Badge").Render("latest"))
	}
	return strings.Join(parts, " ")
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	return r.write(styles.GetStyle("Error").Render(fmt.Sprintf("Error: %v", err)) + "\n")
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	return r.write(styles.GetStyle("Info").Render(msg) + "\n")
}
