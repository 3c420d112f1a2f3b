package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/fieldpick/fieldpick/pkg/calendar"
	"github.com/fieldpick/fieldpick/pkg/models"
	"github.com/fieldpick/fieldpick/pkg/overlay"
)

// App is the demo form: a column of date fields sharing one picker overlay.
// It implements tea.Model for the event loop and overlay.Surface for the
// picker (see surface.go).
type App struct {
	mgr   *overlay.Manager
	sched *teaScheduler

	fields     []*FormField
	focus      int
	gridFocus  bool
	gridCursor int

	width     int
	height    int
	statusMsg string

	// Surface-side overlay state.
	overlayVisible bool
	overlayPos     overlay.Point
	overlayCfg     *models.FieldConfig
	gridYear       int
	gridMonth      time.Month
	cells          []calendar.Cell
	panelCache     string
	observers      map[int]func()
	nextObserver   int
	events         map[overlay.Field]overlay.FieldEvents
}

// NewApp builds the demo form and registers every configured field with the
// shared overlay manager.
func NewApp(cfg *models.DemoConfig) (*App, error) {
	if cfg == nil || len(cfg.Fields) == 0 {
		return nil, errors.New("no fields configured")
	}

	a := &App{
		focus:     -1,
		sched:     &teaScheduler{},
		observers: make(map[int]func()),
		events:    make(map[overlay.Field]overlay.FieldEvents),
	}
	a.mgr = overlay.NewManager(a, a.sched)
	a.mgr.SetVisibilityFunc(func(visible bool) {
		if visible {
			a.statusMsg = "picker open · arrows navigate · enter picks · esc closes"
		} else {
			a.statusMsg = ""
		}
	})

	for _, df := range cfg.Fields {
		placeholder := ""
		if df.Config != nil {
			placeholder = df.Config.Placeholder
		}
		f := NewFormField(df.Label, placeholder, df.Value)
		if err := a.mgr.Registry().Register(f, df.Config); err != nil {
			return nil, fmt.Errorf("field %q: %w", df.Label, err)
		}
		a.fields = append(a.fields, f)
	}
	return a, nil
}

// Manager exposes the overlay manager, mainly for tests.
func (a *App) Manager() *overlay.Manager { return a.mgr }

func (a *App) Init() tea.Cmd {
	return a.setFocus(0)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Resize is the terminal's scroll/box-change equivalent: every
		// live geometry observer repositions the overlay.
		for _, fn := range a.observers {
			fn()
		}

	case deferredFireMsg:
		msg.fn()

	case tea.KeyMsg:
		return a.handleKey(msg)

	default:
		if a.focus >= 0 && !a.gridFocus {
			f := a.fields[a.focus]
			var cmd tea.Cmd
			f.input, cmd = f.input.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	cmds = append(cmds, a.sched.drain()...)
	return a, tea.Batch(cmds...)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit

	case "esc":
		if !a.mgr.Visible() {
			return a, tea.Quit
		}
		if a.gridFocus {
			a.gridFocus = false
			cmds = append(cmds, a.fields[a.focus].input.Focus())
		}
		a.mgr.Escape()

	case "tab":
		cmds = append(cmds, a.setFocus((a.focus+1)%len(a.fields)))

	case "shift+tab":
		cmds = append(cmds, a.setFocus((a.focus+len(a.fields)-1)%len(a.fields)))

	default:
		if a.gridFocus {
			cmds = append(cmds, a.handleGridKey(msg))
		} else {
			cmds = append(cmds, a.handleFieldKey(msg))
		}
	}

	cmds = append(cmds, a.sched.drain()...)
	return a, tea.Batch(cmds...)
}

func (a *App) handleFieldKey(msg tea.KeyMsg) tea.Cmd {
	if a.focus < 0 {
		return nil
	}
	f := a.fields[a.focus]

	if msg.String() == "down" && a.mgr.Visible() {
		a.enterGrid()
		return nil
	}

	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if f.input.Value() != before {
		if ev, ok := a.events[overlay.Field(f)]; ok && ev.KeyUp != nil {
			ev.KeyUp()
		}
	}
	return cmd
}

func (a *App) handleGridKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up":
		if a.gridCursor < calendar.GridColumns {
			return a.leaveGrid()
		}
		a.gridCursor -= calendar.GridColumns

	case "down":
		if a.gridCursor+calendar.GridColumns < calendar.GridCells {
			a.gridCursor += calendar.GridColumns
		}

	case "left":
		if a.gridCursor > 0 {
			a.gridCursor--
		}

	case "right":
		if a.gridCursor < calendar.GridCells-1 {
			a.gridCursor++
		}

	case "enter":
		if a.gridCursor < len(a.cells) {
			a.mgr.Pick(a.cells[a.gridCursor].Date)
			// The field keeps host focus after a pick; the overlay only
			// reopens on the next focus transition.
			return a.fields[a.focus].input.Focus()
		}

	case "pgup":
		a.mgr.PrevMonth()
		a.seedCursor()

	case "pgdown":
		a.mgr.NextMonth()
		a.seedCursor()

	case "[":
		year, month := a.mgr.DisplayMonth()
		a.mgr.SetDisplay(year-1, month)
		a.seedCursor()

	case "]":
		year, month := a.mgr.DisplayMonth()
		a.mgr.SetDisplay(year+1, month)
		a.seedCursor()
	}
	return nil
}

// setFocus moves form focus to field i, firing the blur/focus events the
// registry wired. The blur schedules a deferred hide; the focus lands
// within the delay window and keeps the overlay open on the new field.
func (a *App) setFocus(i int) tea.Cmd {
	var cmds []tea.Cmd

	if a.gridFocus {
		a.gridFocus = false
		a.mgr.ControlBlurred()
	}
	if a.focus >= 0 && a.focus < len(a.fields) {
		prev := a.fields[a.focus]
		prev.input.Blur()
		if ev, ok := a.events[overlay.Field(prev)]; ok && ev.Blur != nil {
			ev.Blur()
		}
	}

	a.focus = i
	f := a.fields[i]
	cmds = append(cmds, f.input.Focus())
	if ev, ok := a.events[overlay.Field(f)]; ok && ev.Focus != nil {
		ev.Focus()
	}
	return tea.Batch(cmds...)
}

// enterGrid moves focus from the field into the day grid. The field blur
// and the grid's control focus race exactly like a browser focus transfer:
// the deferred hide scheduled by the blur finds the control active and
// leaves the overlay open.
func (a *App) enterGrid() {
	f := a.fields[a.focus]
	f.input.Blur()
	if ev, ok := a.events[overlay.Field(f)]; ok && ev.Blur != nil {
		ev.Blur()
	}
	a.mgr.ControlFocused()
	a.gridFocus = true
	a.seedCursor()
}

// leaveGrid returns focus from the grid to the attached field.
func (a *App) leaveGrid() tea.Cmd {
	a.gridFocus = false
	a.mgr.ControlBlurred()
	f := a.fields[a.focus]
	cmd := f.input.Focus()
	if ev, ok := a.events[overlay.Field(f)]; ok && ev.Focus != nil {
		ev.Focus()
	}
	return cmd
}

// seedCursor places the grid cursor on the selected day, else today, else
// the first day of the displayed month.
func (a *App) seedCursor() {
	first := 0
	for i, c := range a.cells {
		switch {
		case c.Selected:
			a.gridCursor = i
			return
		case c.Today && !c.OtherMonth:
			first = i
		case !c.OtherMonth && c.Date.Day == 1 && first == 0:
			first = i
		}
	}
	a.gridCursor = first
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	lines := []string{TitleStyle.Render("fieldpick"), ""}
	for i, f := range a.fields {
		style := LabelStyle
		if i == a.focus {
			style = FocusedLabelStyle
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			style.Width(labelWidth).Render(f.Label),
			f.input.View(),
		)
		lines = append(lines, row, "")
	}

	base := strings.Join(lines, "\n")
	if a.overlayVisible {
		base = composeOverlay(base, a.renderPanel(), a.overlayPos)
	}

	help := "tab: next field · down: open grid · enter: pick · pgup/pgdn: month · [/]: year · esc: close/quit"
	footer := HelpStyle.Render(wordwrap.String(help, a.width-2))
	if a.statusMsg != "" {
		footer = lipgloss.JoinVertical(lipgloss.Left, footer, StatusStyle.Render(a.statusMsg))
	}

	gap := a.height - lipgloss.Height(base) - lipgloss.Height(footer) - 1
	if gap < 1 {
		gap = 1
	}
	return base + strings.Repeat("\n", gap) + footer
}
