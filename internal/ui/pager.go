package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
	"github.com/tidwall/sjson"

	"multipick/internal/domain"
)

// inspectPagerMsg contains the result of an inspect pager command
type inspectPagerMsg struct {
	err error
}

// InspectOps shows the selected records in the ov pager
type InspectOps struct {
	program       *tea.Program // reference to Bubble Tea program for terminal management
	selectedField string       // field name stamped onto exported records
}

// NewInspectOps creates a new inspect operations instance
func NewInspectOps(program *tea.Program, selectedField string) *InspectOps {
	return &InspectOps{
		program:       program,
		selectedField: selectedField,
	}
}

// SetProgram wires the running program once it exists
func (o *InspectOps) SetProgram(program *tea.Program) {
	o.program = program
}

// ShowSelection opens the selected records' JSON in the ov pager
func (o *InspectOps) ShowSelection(records []*domain.Record) error {
	if o.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := o.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = o.program.RestoreTerminal()
	}()

	reader := strings.NewReader(renderSelectionDocument(records, o.selectedField))

	root, err := oviewer.NewRoot(reader)
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	// Run the oviewer (this will take over the terminal)
	return root.Run()
}

// renderSelectionDocument formats the selection as a JSON array, one record
// per entry in selection order. When selectedField is set each exported
// record is stamped with that field so downstream consumers see membership
// without diffing against the source file.
func renderSelectionDocument(records []*domain.Record, selectedField string) string {
	if len(records) == 0 {
		return "[]\n"
	}

	var b strings.Builder
	b.WriteString("[\n")
	for i, r := range records {
		raw := r.Raw()
		if selectedField != "" {
			if annotated, err := sjson.Set(raw, selectedField, true); err == nil {
				raw = annotated
			}
		}
		b.WriteString("  ")
		b.WriteString(raw)
		if i < len(records)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("]\n")
	return b.String()
}
