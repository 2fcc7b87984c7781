package ui

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"multipick/internal/config"
	"multipick/internal/controller"
	"multipick/internal/domain"
	"multipick/internal/eventbus"
	"multipick/internal/selection"
	"multipick/internal/ui/logic"
	"multipick/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus      eventbus.EventBus
	config   *config.Config
	settings config.SelectionSettings

	// Collections: records is the full source, visible the filtered view
	records []*domain.Record
	visible []*domain.Record

	ctrl    *controller.Controller[*domain.Record]
	groupID string

	filter      *logic.Filter
	filterQuery string
	filtering   bool
	filterInput textinput.Model

	cursor     int
	offset     int
	width      int
	height     int
	listHeight int

	styles   *views.Styles
	renderer *views.Renderer
	inspect  *InspectOps

	statusMessage string
	showHelp      bool
}

// NewModel creates a new UI model. The record collection is the required
// host binding; constructing the controller fails without it.
func NewModel(bus eventbus.EventBus, cfg *config.Config, records []*domain.Record, groupID string) (*Model, error) {
	settings := cfg.Selection

	styles := views.NewStyles(settings.SelectedStyle)
	rows := views.NewRowRenderer(styles, settings.Label, settings.Visual)

	input := textinput.New()
	input.Placeholder = "filter"
	input.Prompt = ""

	m := &Model{
		bus:         bus,
		config:      cfg,
		settings:    settings,
		records:     records,
		visible:     records,
		groupID:     groupID,
		filter:      logic.NewFilter(settings.Label),
		filterInput: input,
		listHeight:  20,
		styles:      styles,
		renderer:    views.NewRenderer(styles, rows),
		inspect:     NewInspectOps(nil, settings.SelectedField),
		showHelp:    true,
	}

	trackBy := settings.TrackBy
	ctrl, err := controller.New(controller.Options[*domain.Record]{
		Key:     func(r *domain.Record) string { return r.Field(trackBy) },
		Mode:    selection.ParseMode(settings.Mode),
		GroupID: groupID,
		Binding: controller.Binding[*domain.Record]{
			Full:    func() []*domain.Record { return m.records },
			Visible: func() []*domain.Record { return m.visible },
		},
		Project: func(r *domain.Record, sel bool) { r.Selected = sel },
		OnChange: func(r *domain.Record, sel bool) {
			verb := "deselected"
			if sel {
				verb = "selected"
			}
			m.statusMessage = fmt.Sprintf("%s %s", verb, r.Field(trackBy))
		},
		Bus: bus,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create selection controller: %w", err)
	}
	m.ctrl = ctrl

	return m, nil
}

// SetProgram wires the running Bubble Tea program for pager terminal
// handoff
func (m *Model) SetProgram(p *tea.Program) {
	m.inspect.SetProgram(p)
}

// Controller exposes the selection controller to the host wiring
func (m *Model) Controller() *controller.Controller[*domain.Record] {
	return m.ctrl
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.listHeight = msg.Height - 6
		if m.listHeight < 3 {
			m.listHeight = 3
		}
		m.clampViewport()
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFiltering(msg)
		}
		return m.updateNormal(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case inspectPagerMsg:
		if msg.err != nil {
			m.statusMessage = fmt.Sprintf("pager error: %v", msg.err)
			log.Printf("Inspect pager failed: %v", msg.err)
		}
		return m, nil

	case EventMsg:
		return m.handleEvent(msg.Event)
	}

	return m, nil
}

// updateNormal handles keys outside the filter prompt
func (m *Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		m.moveCursor(-1)

	case "down", "j":
		m.moveCursor(1)

	case "pgup":
		m.moveCursor(-m.listHeight)

	case "pgdown":
		m.moveCursor(m.listHeight)

	case "g", "home":
		m.cursor = 0
		m.clampViewport()

	case "G", "end":
		m.cursor = len(m.visible) - 1
		m.clampViewport()

	case "enter":
		// Keyboard equivalent of a plain click
		m.clickCursor(false, false)

	case " ":
		// Keyboard equivalent of a ctrl-click toggle
		m.clickCursor(true, false)

	case "V":
		// Keyboard equivalent of a shift-click range
		m.clickCursor(false, true)

	case "x":
		// Flip the projection field directly, then reconcile: the
		// programmatic-change path rather than a click
		if r, ok := m.cursorRecord(); ok {
			r.Selected = !r.Selected
			m.ctrl.Reconcile(r, r.Selected)
		}

	case "m":
		m.cycleMode()

	case "i":
		records := m.selectionSnapshot()
		return m, func() tea.Msg {
			return inspectPagerMsg{err: m.inspect.ShowSelection(records)}
		}

	case "/":
		m.filtering = true
		m.filterInput.SetValue(m.filterQuery)
		m.filterInput.Focus()
		return m, textinput.Blink

	case "esc":
		if m.filterQuery != "" {
			m.setFilter("")
		} else {
			m.ctrl.Clear()
			m.statusMessage = "selection cleared"
		}

	case "?":
		m.showHelp = !m.showHelp
	}

	return m, nil
}

// updateFiltering handles keys while the filter prompt is open
func (m *Model) updateFiltering(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filtering = false
		m.filterInput.Blur()
		m.setFilter("")
		return m, nil

	case "enter":
		m.filtering = false
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.setFilter(m.filterInput.Value())
	return m, cmd
}

// updateMouse hit-tests a mouse event to a row and target kind, then runs
// it through the controller as one normalized click
func (m *Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.moveCursor(-1)
		return m, nil
	case msg.Button == tea.MouseButtonWheelDown:
		m.moveCursor(1)
		return m, nil
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	row := msg.Y - views.HeaderHeight + m.offset
	if row < m.offset || row >= m.offset+m.listHeight || row >= len(m.visible) {
		return m, nil
	}

	target := selection.TargetItem
	if m.settings.Visual == views.VisualCheckbox &&
		msg.X >= 2 && msg.X < 2+views.CheckboxWidth {
		target = selection.TargetCheckbox
	}

	m.cursor = row
	m.ctrl.HandleClick(&selection.Click[*domain.Record]{
		Item:   m.visible[row],
		Ctrl:   msg.Ctrl || msg.Alt, // alt stands in for meta
		Shift:  msg.Shift,
		Target: target,
	})
	return m, nil
}

// handleEvent reacts to bus events forwarded into the UI loop
func (m *Model) handleEvent(event eventbus.DomainEvent) (tea.Model, tea.Cmd) {
	switch e := event.(type) {
	case eventbus.ErrorEvent:
		m.statusMessage = fmt.Sprintf("error: %s", e.Message)
	case eventbus.ItemsLoadedEvent:
		m.statusMessage = fmt.Sprintf("loaded %d items from %s", e.Count, e.Source)
	}
	return m, nil
}

// View implements tea.Model
func (m *Model) View() string {
	filterLine := ""
	if m.filtering {
		filterLine = m.filterInput.View()
	} else if m.filterQuery != "" {
		filterLine = m.filterQuery
	}

	status := views.RenderCount(len(m.ctrl.Selected()), len(m.visible), len(m.records))
	if m.statusMessage != "" {
		status += "  " + m.statusMessage
	}
	if !m.config.UISettings.ShowStatusBar {
		status = ""
	}

	return m.renderer.Render(views.ListParams{
		Visible:    m.visible,
		Cursor:     m.cursor,
		Offset:     m.offset,
		Height:     m.listHeight,
		Width:      m.width,
		Mode:       string(m.ctrl.Mode()),
		FilterLine: filterLine,
		StatusLine: status,
		ShowHelp:   m.showHelp,
	})
}

// clickCursor synthesizes a click on the cursor record so keyboard input
// flows through the same entry point as the mouse
func (m *Model) clickCursor(ctrl, shift bool) {
	r, ok := m.cursorRecord()
	if !ok {
		return
	}
	m.ctrl.HandleClick(&selection.Click[*domain.Record]{
		Item:  r,
		Ctrl:  ctrl,
		Shift: shift,
	})
}

// selectionSnapshot copies the live selection sequence. Commands run on
// their own goroutine while the update loop keeps mutating the shared
// backing array, so they must never hold the live slice.
func (m *Model) selectionSnapshot() []*domain.Record {
	return append([]*domain.Record(nil), m.ctrl.Selected()...)
}

func (m *Model) cursorRecord() (*domain.Record, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return nil, false
	}
	return m.visible[m.cursor], true
}

func (m *Model) cycleMode() {
	var next selection.Mode
	switch m.ctrl.Mode() {
	case selection.ModeSingle:
		next = selection.ModeMulti
	case selection.ModeMulti:
		next = selection.ModeAdditive
	default:
		next = selection.ModeSingle
	}
	m.ctrl.SetMode(next)
	m.statusMessage = fmt.Sprintf("mode: %s", next)
}

// setFilter recomputes the visible view; the full collection is untouched
func (m *Model) setFilter(query string) {
	m.filterQuery = query
	m.visible = m.filter.Apply(m.records, query)
	m.clampViewport()
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampViewport()
}

func (m *Model) clampViewport() {
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.listHeight {
		m.offset = m.cursor - m.listHeight + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}
