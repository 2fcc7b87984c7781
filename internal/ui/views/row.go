package views

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"multipick/internal/domain"
)

// Visual types for the selection projection
const (
	VisualHighlight = "highlight"
	VisualCheckbox  = "checkbox"
)

// CheckboxWidth is the number of leading cells occupied by the checkbox
// affordance, used by mouse hit-testing
const CheckboxWidth = 4

// RowRenderer renders one record line
type RowRenderer struct {
	styles    *Styles
	labelPath string
	visual    string
}

// NewRowRenderer creates a row renderer for the given label path and
// visual type
func NewRowRenderer(styles *Styles, labelPath, visual string) *RowRenderer {
	return &RowRenderer{
		styles:    styles,
		labelPath: labelPath,
		visual:    visual,
	}
}

// RenderRow renders a record. The record's Selected projection drives the
// visual: a background style for highlight, a checked box for checkbox.
func (r *RowRenderer) RenderRow(record *domain.Record, isCursor bool, width int) string {
	cursor := "  "
	if isCursor {
		cursor = r.styles.Cursor.Render("> ")
	}

	label := record.Field(r.labelPath)
	if label == "" {
		label = record.Raw()
	}

	switch r.visual {
	case VisualCheckbox:
		box := "[ ] "
		if record.Selected {
			box = r.styles.Checkbox.Render("[x] ")
		}
		line := box + r.truncate(label, width-CheckboxWidth-2)
		if isCursor {
			line = r.styles.CursorRow.Render(line)
		}
		return cursor + line

	default:
		line := r.truncate(label, width-2)
		if record.Selected {
			line = r.styles.Selected.Render(line)
		}
		if isCursor {
			line = r.styles.CursorRow.Render(line)
		}
		return cursor + line
	}
}

func (r *RowRenderer) truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// RenderCount formats the selected-count fragment for the status bar
func RenderCount(selected, visible, total int) string {
	if visible == total {
		return fmt.Sprintf("%d selected of %d", selected, total)
	}
	return fmt.Sprintf("%d selected, %d/%d shown", selected, visible, total)
}
