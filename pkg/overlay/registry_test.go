package overlay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fieldpick/fieldpick/pkg/models"
)

func TestRegisterMergesDefaults(t *testing.T) {
	mgr, _, _ := newTestManager(t)
	f := &stubField{}

	err := mgr.Registry().Register(f, &models.FieldConfig{Format: "d.m.Y"})
	assert.NoError(t, err)

	b := mgr.Registry().lookup(f)
	assert.NotNil(t, b)
	assert.Equal(t, "d.m.Y", b.config.Format)
	assert.Equal(t, time.Now().Year()-10, b.config.StartYear)
	assert.Equal(t, time.Now().Year()+10, b.config.EndYear)
	assert.Len(t, b.config.MonthNames, 12)
	assert.Len(t, b.config.WeekdayNames, 7)
}

func TestRegisterIsIdempotent(t *testing.T) {
	mgr, surface, _ := newTestManager(t)
	f := &stubField{}

	assert.NoError(t, mgr.Registry().Register(f, &models.FieldConfig{Format: "d.m.Y"}))
	assert.NoError(t, mgr.Registry().Register(f, &models.FieldConfig{Format: "Y-m-d"}))

	// The second registration is skipped silently: first config wins and
	// the event wiring is not duplicated.
	assert.Equal(t, "d.m.Y", mgr.Registry().lookup(f).config.Format)
	assert.Len(t, surface.events, 1)
}

func TestRegisterRejectsBadFormat(t *testing.T) {
	mgr, _, _ := newTestManager(t)

	err := mgr.Registry().Register(&stubField{}, &models.FieldConfig{Format: "no tokens"})
	assert.Error(t, err)
}

func TestRegisterRejectsBadHoliday(t *testing.T) {
	mgr, _, _ := newTestManager(t)

	err := mgr.Registry().Register(&stubField{}, &models.FieldConfig{
		Holidays: []string{"1970-02-30"},
	})
	assert.Error(t, err)
}

func TestRegisterParsesHolidays(t *testing.T) {
	mgr, _, _ := newTestManager(t)
	f := &stubField{}

	err := mgr.Registry().Register(f, &models.FieldConfig{
		Holidays: []string{"1970-01-01", "2024-03-08"},
	})
	assert.NoError(t, err)

	b := mgr.Registry().lookup(f)
	assert.Len(t, b.holidays, 2)
	assert.Equal(t, 1970, b.holidays[0].Year)
	assert.Equal(t, time.March, b.holidays[1].Month)
}

func TestRegisterWiresFieldEvents(t *testing.T) {
	mgr, surface, sched := newTestManager(t)
	f := &stubField{value: "2024-02-10"}
	assert.NoError(t, mgr.Registry().Register(f, nil))

	ev, ok := surface.events[f]
	assert.True(t, ok, "registration wires focus/blur/keyup")

	ev.Focus()
	assert.True(t, mgr.Visible())
	assert.Equal(t, Field(f), mgr.AttachedField())

	ev.Blur()
	sched.fire()
	assert.False(t, mgr.Visible())
}

func TestUnregisterReleasesEverything(t *testing.T) {
	mgr, surface, _ := newTestManager(t)
	f := &stubField{value: "2024-02-10"}
	assert.NoError(t, mgr.Registry().Register(f, nil))
	mustFocus(t, mgr, f)

	mgr.Registry().Unregister(f)

	assert.False(t, mgr.Visible(), "unregistering the attached field hides the overlay")
	assert.Nil(t, mgr.AttachedField())
	assert.Equal(t, 0, surface.observerCount, "geometry observers released")
	assert.Empty(t, surface.events, "event wiring released")
	assert.False(t, mgr.Registry().Registered(f))

	// A second unregister is harmless.
	mgr.Registry().Unregister(f)
}

func TestAssignSingleField(t *testing.T) {
	mgr, _, _ := newTestManager(t)
	f := &stubField{}

	assert.NoError(t, mgr.Registry().Assign(f, nil))
	assert.True(t, mgr.Registry().Registered(f))
}

func TestAssignSelector(t *testing.T) {
	mgr, surface, _ := newTestManager(t)
	a, b := &stubField{}, &stubField{}
	surface.resolved = []Field{a, b}

	assert.NoError(t, mgr.Registry().Assign("form .date", nil))
	assert.True(t, mgr.Registry().Registered(a))
	assert.True(t, mgr.Registry().Registered(b))
}

func TestAssignSelectorMatchingNothing(t *testing.T) {
	mgr, _, _ := newTestManager(t)

	assert.NoError(t, mgr.Registry().Assign(".missing", nil), "zero matches is not an error")
}

func TestAssignRejectsOtherTypes(t *testing.T) {
	mgr, _, _ := newTestManager(t)

	assert.Error(t, mgr.Registry().Assign(42, nil))
}
