package topics

import (
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/muesli/termenv"
)

// Renderer formats a topic's content. ext is the topic file's extension,
// including the dot.
type Renderer interface {
	Render(content string, ext string) string
}

// RendererFunc lets a plain function act as a Renderer.
type RendererFunc func(content string, ext string) string

func (f RendererFunc) Render(content string, ext string) string {
	return f(content, ext)
}

// PlainRenderer prints topics exactly as stored.
type PlainRenderer struct{}

func (r *PlainRenderer) Render(content string, ext string) string {
	return content
}

// Glamour style names accepted by MarkdownRenderer besides a style file path.
const (
	StyleAuto  = styles.AutoStyle
	StyleNoTTY = styles.NoTTYStyle
)

// MarkdownRenderer renders .md topics with glamour. Topics with any other
// extension pass through untouched, as does content glamour rejects.
type MarkdownRenderer struct {
	// Style is a glamour style name or a JSON style file. Empty means StyleAuto.
	Style string
	// Width wraps paragraphs. Zero keeps glamour's default.
	Width int
}

// NewMarkdownRenderer returns a renderer using style.
func NewMarkdownRenderer(style string) *MarkdownRenderer {
	return &MarkdownRenderer{Style: style}
}

func (r *MarkdownRenderer) Render(content string, ext string) string {
	if ext != ".md" {
		return content
	}

	var options []glamour.TermRendererOption
	switch r.Style {
	case "", StyleAuto:
		options = append(options, glamour.WithAutoStyle())
	case StyleNoTTY:
		// notty still goes through termenv; Ascii keeps it free of escapes.
		options = append(options,
			glamour.WithStandardStyle(StyleNoTTY),
			glamour.WithColorProfile(termenv.Ascii))
	default:
		options = append(options, glamour.WithStylePath(r.Style))
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	tr, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := tr.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
