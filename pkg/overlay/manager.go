package overlay

import (
	"errors"
	"time"

	"github.com/fieldpick/fieldpick/pkg/calendar"
	"github.com/fieldpick/fieldpick/pkg/models"
)

// HideDelay is how long a blur waits before the deferred hide check runs.
// Focus landing on any in-widget control within this window keeps the
// overlay open.
const HideDelay = 300 * time.Millisecond

// ErrNoCellSlots reports a surface without a single day-cell slot. This is
// an integration error: the overlay aborts instead of rendering a grid with
// nowhere to put it.
var ErrNoCellSlots = errors.New("surface exposes no day-cell slots")

// Manager owns the single shared overlay and serializes its attachment to
// registered fields. At most one field is attached at a time; attaching a
// new field fully tears down the previous binding. All methods are meant
// for the host's single event loop.
type Manager struct {
	surface  Surface
	sched    Scheduler
	registry *Registry

	hideDelay    time.Duration
	onVisibility func(visible bool)
	now          func(*time.Location) calendar.DateTime

	attached        *binding
	displayYear     int
	displayMonth    time.Month
	selected        *calendar.DateTime
	pointerActive   bool
	visible         bool
	releaseObserver func()
}

// NewManager creates a manager for the given surface. A nil scheduler
// falls back to TimerScheduler.
func NewManager(surface Surface, sched Scheduler) *Manager {
	if sched == nil {
		sched = TimerScheduler{}
	}
	m := &Manager{
		surface:   surface,
		sched:     sched,
		hideDelay: HideDelay,
		now:       calendar.Now,
	}
	m.registry = newRegistry(m)
	return m
}

// Registry returns the field registry backing this manager.
func (m *Manager) Registry() *Registry { return m.registry }

// SetVisibilityFunc installs the optional callback fired whenever the
// overlay becomes visible or hidden.
func (m *Manager) SetVisibilityFunc(fn func(visible bool)) {
	m.onVisibility = fn
}

// Visible reports whether the overlay is currently shown.
func (m *Manager) Visible() bool { return m.visible }

// AttachedField returns the field currently owning the overlay, or nil.
func (m *Manager) AttachedField() Field {
	if m.attached == nil {
		return nil
	}
	return m.attached.field
}

// AttachedConfig returns the attached field's merged configuration, or nil.
func (m *Manager) AttachedConfig() *models.FieldConfig {
	if m.attached == nil {
		return nil
	}
	return m.attached.config
}

// DisplayMonth returns the month the grid currently shows.
func (m *Manager) DisplayMonth() (int, time.Month) {
	return m.displayYear, m.displayMonth
}

// Selected returns a copy of the currently selected date, or nil.
func (m *Manager) Selected() *calendar.DateTime {
	if m.selected == nil {
		return nil
	}
	sel := *m.selected
	return &sel
}

// Show attaches the overlay to f and makes it visible. Showing the already
// attached field only re-renders and repositions. Showing a different field
// first hides and fully resets the previous binding.
func (m *Manager) Show(f Field) error {
	b := m.registry.lookup(f)
	if b == nil {
		return errors.New("field is not registered")
	}
	if m.surface.CellSlots() < 1 {
		return ErrNoCellSlots
	}

	if m.attached != nil && m.attached != b {
		m.Hide()
	}
	if m.attached == nil {
		m.attached = b
		m.surface.ApplyConfig(b.config)
		m.seedFromField(b)
		m.releaseObserver = m.surface.ObserveGeometry(f, m.Reposition)
	}

	m.rebuild()
	m.surface.ShowOverlay()
	m.Reposition()
	if !m.visible {
		m.visible = true
		m.notify()
	}
	return nil
}

// Hide detaches the current field, hides the overlay and clears the
// pointer-active flag. Safe to call when already detached.
func (m *Manager) Hide() {
	m.pointerActive = false
	if m.attached == nil && !m.visible {
		return
	}
	if m.releaseObserver != nil {
		m.releaseObserver()
		m.releaseObserver = nil
	}
	m.attached = nil
	m.selected = nil
	m.surface.HideOverlay()
	if m.visible {
		m.visible = false
		m.notify()
	}
}

// HideIfInactive hides the overlay unless focus still rests on the field or
// one of the overlay's controls. Deferred hide checks land here; the flag
// is sampled now, at fire time, never at schedule time.
func (m *Manager) HideIfInactive() {
	if m.pointerActive {
		return
	}
	m.Hide()
}

// FieldFocused handles a field gaining focus: it claims ownership and shows
// the overlay, cancelling any pending deferred hide by way of the flag. The
// flag is raised after Show so tearing down a previously attached field
// cannot lower it again.
func (m *Manager) FieldFocused(f Field) error {
	err := m.Show(f)
	m.pointerActive = err == nil
	return err
}

// FieldBlurred handles a field losing focus. Malformed text is discarded
// rather than left silently wrong, then a deferred hide check is scheduled.
func (m *Manager) FieldBlurred(f Field) {
	if b := m.registry.lookup(f); b != nil {
		if v := f.Value(); v != "" {
			if _, err := b.format.Parse(v); err != nil {
				f.SetValue("")
			}
		}
	}
	m.pointerActive = false
	m.scheduleHideCheck()
}

// ControlFocused marks focus on an overlay-internal control, keeping any
// pending deferred hide from acting.
func (m *Manager) ControlFocused() {
	m.pointerActive = true
}

// ControlBlurred marks an overlay-internal control losing focus and
// schedules the deferred hide check.
func (m *Manager) ControlBlurred() {
	m.pointerActive = false
	m.scheduleHideCheck()
}

// Pick accepts a grid-cell selection: the date is serialized into the
// field, the field's change notification fires through SetValue, and the
// overlay hides. Time-of-day components of the previous selection carry
// over so a datetime format keeps its clock reading.
func (m *Manager) Pick(dt calendar.DateTime) {
	if m.attached == nil {
		return
	}
	b := m.attached

	sel := dt
	if m.selected != nil {
		sel.Hour = m.selected.Hour
		sel.Minute = m.selected.Minute
		sel.Second = m.selected.Second
	}
	b.field.SetValue(b.format.Serialize(sel))
	m.selected = &sel
	m.displayYear, m.displayMonth = sel.Year, sel.Month
	m.Hide()
}

// NextMonth advances the displayed month without touching the selection.
func (m *Manager) NextMonth() { m.shiftMonth(1) }

// PrevMonth rewinds the displayed month without touching the selection.
func (m *Manager) PrevMonth() { m.shiftMonth(-1) }

func (m *Manager) shiftMonth(delta int) {
	if m.attached == nil {
		return
	}
	t := time.Date(m.displayYear, m.displayMonth, 1, 0, 0, 0, 0, time.UTC).AddDate(0, delta, 0)
	m.displayYear, m.displayMonth = t.Year(), t.Month()
	m.rebuild()
}

// SetDisplay jumps the grid to the given month. The year is clamped to the
// attached field's configured range.
func (m *Manager) SetDisplay(year int, month time.Month) {
	if m.attached == nil {
		return
	}
	cfg := m.attached.config
	if year < cfg.StartYear {
		year = cfg.StartYear
	}
	if year > cfg.EndYear {
		year = cfg.EndYear
	}
	if month < time.January {
		month = time.January
	}
	if month > time.December {
		month = time.December
	}
	m.displayYear, m.displayMonth = year, month
	m.rebuild()
}

// FieldEdited handles the keyup path: while the user types into the
// attached field, a parsable value moves the selection and grid with it.
// Unparsable intermediate text leaves the grid alone.
func (m *Manager) FieldEdited(f Field) {
	if m.attached == nil || m.attached.field != f {
		return
	}
	b := m.attached
	dt, err := b.format.Parse(f.Value())
	if err != nil || !b.format.HasDate() {
		return
	}
	sel := dt
	m.selected = &sel
	m.displayYear, m.displayMonth = dt.Year, dt.Month
	m.rebuild()
}

// Reposition re-runs the placement computation against current geometry.
// Called on show and from the per-field geometry observer.
func (m *Manager) Reposition() {
	if m.attached == nil {
		return
	}
	f := m.attached.field

	var clip *Clip
	if c, ok := m.surface.ClippingAncestor(f); ok {
		clip = &c
	}
	p := Place(m.surface.FieldRect(f), m.surface.OverlayRect(), m.surface.TableRect(), clip)
	m.surface.MoveOverlay(p)
}

// Escape handles the global Escape key: it hides the overlay when open.
func (m *Manager) Escape() {
	if m.visible {
		m.Hide()
	}
}

// seedFromField derives the initial display month and selection from the
// field's current text, falling back to "now" in the field's configured
// zone when the text is empty, unparsable, or the format has no date part.
func (m *Manager) seedFromField(b *binding) {
	now := m.now(b.loc)
	dt, err := b.format.Parse(b.field.Value())
	if err != nil || !b.format.HasDate() {
		m.selected = nil
		m.displayYear, m.displayMonth = now.Year, now.Month
		return
	}
	sel := dt
	m.selected = &sel
	m.displayYear, m.displayMonth = dt.Year, dt.Month
}

func (m *Manager) rebuild() {
	if m.attached == nil {
		return
	}
	today := m.now(m.attached.loc)
	cells := calendar.BuildMonth(m.displayYear, m.displayMonth, today, m.selected, m.attached.holidays)
	m.surface.RenderMonth(m.displayYear, m.displayMonth, cells)
}

func (m *Manager) scheduleHideCheck() {
	m.sched.After(m.hideDelay, m.HideIfInactive)
}

func (m *Manager) notify() {
	if m.onVisibility != nil {
		m.onVisibility(m.visible)
	}
}
