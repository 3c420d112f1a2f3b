package overlay

import (
	"fmt"
	"time"

	"github.com/fieldpick/fieldpick/pkg/calendar"
	"github.com/fieldpick/fieldpick/pkg/dateformat"
	"github.com/fieldpick/fieldpick/pkg/models"
)

// holidayFormat decodes the "Y-m-d" holiday entries of a field config.
var holidayFormat = mustCompile("Y-m-d")

func mustCompile(format string) *dateformat.Format {
	f, err := dateformat.Compile(format)
	if err != nil {
		panic(err)
	}
	return f
}

// binding is one registered field with its merged configuration, compiled
// once at registration and immutable afterwards.
type binding struct {
	field         Field
	config        *models.FieldConfig
	format        *dateformat.Format
	loc           *time.Location
	holidays      []calendar.DateTime
	releaseEvents func()
}

// Registry records the configuration and event wiring of every registered
// field. The manager consults it on attach; it never renders anything
// itself.
type Registry struct {
	mgr      *Manager
	bindings map[Field]*binding
}

func newRegistry(mgr *Manager) *Registry {
	return &Registry{mgr: mgr, bindings: make(map[Field]*binding)}
}

// Register stores f with cfg merged over the defaults and wires its
// focus/blur/keyup handlers to the manager. Registering an already
// registered field is a no-op.
func (r *Registry) Register(f Field, cfg *models.FieldConfig) error {
	if _, ok := r.bindings[f]; ok {
		return nil
	}

	merged := models.DefaultFieldConfig().Merge(cfg)
	format, err := dateformat.Compile(merged.Format)
	if err != nil {
		return fmt.Errorf("field format %q: %w", merged.Format, err)
	}

	holidays := make([]calendar.DateTime, 0, len(merged.Holidays))
	for _, h := range merged.Holidays {
		dt, err := holidayFormat.Parse(h)
		if err != nil {
			return fmt.Errorf("holiday %q: %w", h, err)
		}
		holidays = append(holidays, dt)
	}

	b := &binding{
		field:    f,
		config:   merged,
		format:   format,
		loc:      merged.Location(),
		holidays: holidays,
	}
	b.releaseEvents = r.mgr.surface.BindField(f, FieldEvents{
		Focus: func() { _ = r.mgr.FieldFocused(f) },
		Blur:  func() { r.mgr.FieldBlurred(f) },
		KeyUp: func() { r.mgr.FieldEdited(f) },
	})
	r.bindings[f] = b
	return nil
}

// Unregister reverses the event wiring and drops the binding. A field
// currently owning the overlay is hidden first so its geometry observers
// are released.
func (r *Registry) Unregister(f Field) {
	b, ok := r.bindings[f]
	if !ok {
		return
	}
	if r.mgr.AttachedField() == f {
		r.mgr.Hide()
	}
	if b.releaseEvents != nil {
		b.releaseEvents()
	}
	delete(r.bindings, f)
}

// Assign registers a single field or every field a selector string resolves
// to. Already-initialized fields are skipped silently; a selector matching
// zero fields is not an error.
func (r *Registry) Assign(target any, cfg *models.FieldConfig) error {
	switch t := target.(type) {
	case Field:
		return r.Register(t, cfg)
	case string:
		for _, f := range r.mgr.surface.ResolveFields(t) {
			if err := r.Register(f, cfg); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("assign target must be a Field or selector string, got %T", target)
	}
}

// Registered reports whether f has been registered.
func (r *Registry) Registered(f Field) bool {
	_, ok := r.bindings[f]
	return ok
}

func (r *Registry) lookup(f Field) *binding {
	return r.bindings[f]
}
