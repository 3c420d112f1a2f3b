package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fieldpick/fieldpick/pkg/calendar"
	"github.com/fieldpick/fieldpick/pkg/models"
	"github.com/fieldpick/fieldpick/pkg/overlay"
)

// Form layout constants, in terminal cells.
const (
	headerHeight   = 2
	fieldRowHeight = 2
	labelWidth     = 14
	inputWidth     = 20
)

// deferredFireMsg delivers a scheduler callback back into the update loop.
type deferredFireMsg struct {
	fn func()
}

// teaScheduler bridges overlay.Scheduler onto bubbletea commands. After
// collects pending timers; the app drains them into tea.Tick commands after
// every manager interaction. The callback runs when the tick message
// arrives, so state is checked at fire time.
type teaScheduler struct {
	pending []tea.Cmd
}

func (s *teaScheduler) After(d time.Duration, fn func()) {
	s.pending = append(s.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return deferredFireMsg{fn: fn}
	}))
}

func (s *teaScheduler) drain() []tea.Cmd {
	cmds := s.pending
	s.pending = nil
	return cmds
}

// The App doubles as the overlay.Surface for the terminal host: the overlay
// panel is part of the app's own view, and element geometry is derived from
// the form layout.

// CellSlots implements overlay.Surface. The panel always renders the full
// six-week grid.
func (a *App) CellSlots() int {
	return calendar.GridCells
}

// ShowOverlay implements overlay.Surface.
func (a *App) ShowOverlay() {
	a.overlayVisible = true
}

// HideOverlay implements overlay.Surface.
func (a *App) HideOverlay() {
	a.overlayVisible = false
	a.gridFocus = false
}

// MoveOverlay implements overlay.Surface.
func (a *App) MoveOverlay(p overlay.Point) {
	a.overlayPos = p
}

// ApplyConfig implements overlay.Surface: the month/year header and weekday
// row pick up the attached field's locale names and year range.
func (a *App) ApplyConfig(cfg *models.FieldConfig) {
	a.overlayCfg = cfg
	a.gridCursor = 0
}

// RenderMonth implements overlay.Surface.
func (a *App) RenderMonth(year int, month time.Month, cells []calendar.Cell) {
	a.gridYear = year
	a.gridMonth = month
	a.cells = cells
	a.panelCache = a.renderPanel()
}

// FieldRect implements overlay.Surface.
func (a *App) FieldRect(f overlay.Field) overlay.Rect {
	for i, field := range a.fields {
		if overlay.Field(field) == f {
			return overlay.Rect{
				X: labelWidth,
				Y: headerHeight + i*fieldRowHeight,
				W: inputWidth,
				H: 1,
			}
		}
	}
	return overlay.Rect{}
}

// OverlayRect implements overlay.Surface.
func (a *App) OverlayRect() overlay.Rect {
	return overlay.Rect{
		X: a.overlayPos.X,
		Y: a.overlayPos.Y,
		W: lipgloss.Width(a.panelCache),
		H: lipgloss.Height(a.panelCache),
	}
}

// TableRect implements overlay.Surface: the grid area inside the panel
// border, below the month and weekday headers.
func (a *App) TableRect() overlay.Rect {
	r := a.OverlayRect()
	return overlay.Rect{X: r.X + 1, Y: r.Y + 3, W: r.W - 2, H: r.H - 4}
}

// ClippingAncestor implements overlay.Surface: in a terminal the viewport
// itself is the only clipping container.
func (a *App) ClippingAncestor(overlay.Field) (overlay.Clip, bool) {
	if a.width == 0 || a.height == 0 {
		return overlay.Clip{}, false
	}
	return overlay.Clip{
		Bounds:  overlay.Rect{W: a.width, H: a.height},
		ClientW: a.width,
		ClientH: a.height,
	}, true
}

// ObserveGeometry implements overlay.Surface. Terminal resizes are the only
// geometry changes; the app fires every live observer on WindowSizeMsg.
func (a *App) ObserveGeometry(_ overlay.Field, fn func()) (release func()) {
	id := a.nextObserver
	a.nextObserver++
	a.observers[id] = fn
	return func() { delete(a.observers, id) }
}

// BindField implements overlay.Surface.
func (a *App) BindField(f overlay.Field, ev overlay.FieldEvents) (release func()) {
	a.events[f] = ev
	return func() { delete(a.events, f) }
}

// ResolveFields implements overlay.Surface: "*" matches every form field,
// anything else matches by label.
func (a *App) ResolveFields(selector string) []overlay.Field {
	var out []overlay.Field
	for _, f := range a.fields {
		if selector == "*" || f.Label == selector {
			out = append(out, f)
		}
	}
	return out
}
