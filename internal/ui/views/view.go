package views

import (
	"strings"

	"multipick/internal/domain"
)

// Renderer composes the full screen: title, record list, filter prompt,
// status bar and help line
type Renderer struct {
	styles *Styles
	rows   *RowRenderer
}

// NewRenderer creates a renderer
func NewRenderer(styles *Styles, rows *RowRenderer) *Renderer {
	return &Renderer{styles: styles, rows: rows}
}

// ListParams carries everything the list view needs for one frame
type ListParams struct {
	Visible    []*domain.Record
	Cursor     int
	Offset     int
	Height     int
	Width      int
	Mode       string
	FilterLine string // rendered filter input, "" when not filtering
	StatusLine string
	ShowHelp   bool
}

// HeaderHeight is the number of lines above the first record row, used by
// mouse hit-testing
const HeaderHeight = 2

// Render draws one frame
func (r *Renderer) Render(p ListParams) string {
	var b strings.Builder

	// Exactly HeaderHeight lines precede the first row
	title := r.styles.Title.Render("multipick") + "  " + r.styles.Mode.Render("["+p.Mode+"]")
	b.WriteString(title)
	b.WriteString("\n\n")

	if len(p.Visible) == 0 {
		b.WriteString(r.styles.Dim.Render("  no items"))
		b.WriteString("\n")
	}

	end := p.Offset + p.Height
	if end > len(p.Visible) {
		end = len(p.Visible)
	}
	for i := p.Offset; i < end; i++ {
		b.WriteString(r.rows.RenderRow(p.Visible[i], i == p.Cursor, p.Width))
		b.WriteString("\n")
	}

	if p.FilterLine != "" {
		b.WriteString(r.styles.Filter.Render("/" + p.FilterLine))
		b.WriteString("\n")
	}

	if p.StatusLine != "" {
		b.WriteString(r.styles.Status.Render(p.StatusLine))
		b.WriteString("\n")
	}

	if p.ShowHelp {
		b.WriteString(r.styles.Help.Render(helpLine))
	}

	return b.String()
}

const helpLine = "click: select  ctrl+click/space: toggle  shift+click/V: range  " +
	"x: flip field  /: filter  m: mode  i: inspect  esc: clear  q: quit"
