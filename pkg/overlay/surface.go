package overlay

import (
	"time"

	"github.com/fieldpick/fieldpick/pkg/calendar"
	"github.com/fieldpick/fieldpick/pkg/models"
)

// Field is one registered input field. SetValue overwrites the field's text
// and is expected to dispatch the host's change notification so external
// listeners observe the update.
type Field interface {
	Value() string
	SetValue(string)
}

// FieldEvents bundles the handlers the registry wires to a field. The host
// invokes Focus/Blur when the field gains or loses focus and KeyUp after
// the field's text changes through typing.
type FieldEvents struct {
	Focus func()
	Blur  func()
	KeyUp func()
}

// Surface is the host UI the overlay renders through. A terminal host lives
// in pkg/tui; tests use an in-memory fake. All coordinates are in the
// host's units.
type Surface interface {
	// CellSlots reports how many day-cell slots the rendering surface
	// exposes. Fewer than one is an integration error and aborts Show.
	CellSlots() int

	ShowOverlay()
	HideOverlay()
	MoveOverlay(Point)

	// ApplyConfig rebuilds the overlay's locale-dependent controls
	// (month/year selectors, weekday header) for a newly attached field.
	ApplyConfig(cfg *models.FieldConfig)

	// RenderMonth replaces the day cells with a freshly built month grid.
	RenderMonth(year int, month time.Month, cells []calendar.Cell)

	FieldRect(f Field) Rect
	OverlayRect() Rect
	TableRect() Rect

	// ClippingAncestor returns the geometry of the nearest ancestor of f
	// that clips overflow, or ok=false when no such ancestor constrains
	// the overlay.
	ClippingAncestor(f Field) (Clip, bool)

	// ObserveGeometry starts watching scroll/resize/box-size changes
	// affecting f and calls fn on each. The returned release func stops
	// the observation; it must be called on detach to keep reposition
	// callbacks from accumulating across attach cycles.
	ObserveGeometry(f Field, fn func()) (release func())

	// BindField wires focus/blur/keyup delivery for f. The returned
	// release func undoes the wiring on unregistration.
	BindField(f Field, ev FieldEvents) (release func())

	// ResolveFields resolves a selector string to zero or more fields.
	ResolveFields(selector string) []Field
}

// Scheduler runs a callback after a delay. The overlay never cancels a
// scheduled callback; deferred hides re-check state when they fire, so a
// stale timer is a no-op.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// TimerScheduler is the production Scheduler backed by time.AfterFunc.
type TimerScheduler struct{}

// After implements Scheduler.
func (TimerScheduler) After(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}
