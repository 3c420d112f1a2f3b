package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/fieldpick/fieldpick/pkg/calendar"
	"github.com/fieldpick/fieldpick/pkg/dateformat"
	"github.com/fieldpick/fieldpick/pkg/models"
	"github.com/fieldpick/fieldpick/pkg/overlay"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	app, err := NewApp(models.DefaultDemoConfig())
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return app
}

func TestNewAppRegistersAllFields(t *testing.T) {
	app := newTestApp(t)

	assert.Len(t, app.fields, 3)
	for _, f := range app.fields {
		assert.True(t, app.mgr.Registry().Registered(f), "field %q registered", f.Label)
	}
}

func TestNewAppRejectsEmptyConfig(t *testing.T) {
	_, err := NewApp(&models.DemoConfig{})
	assert.Error(t, err)

	_, err = NewApp(nil)
	assert.Error(t, err)
}

func TestNewAppRejectsBadFieldFormat(t *testing.T) {
	_, err := NewApp(&models.DemoConfig{Fields: []models.DemoField{
		{Label: "Broken", Config: &models.FieldConfig{Format: "nope"}},
	}})
	assert.Error(t, err)
}

func TestInitFocusesFirstFieldAndOpensOverlay(t *testing.T) {
	app := newTestApp(t)
	app.Init()

	assert.True(t, app.mgr.Visible())
	assert.Equal(t, overlay.Field(app.fields[0]), app.mgr.AttachedField())
	assert.True(t, app.fields[0].Focused())
	assert.True(t, app.overlayVisible)
}

func TestTabReattachesOverlayToNextField(t *testing.T) {
	app := newTestApp(t)
	app.Init()

	app.Update(tea.KeyMsg{Type: tea.KeyTab})

	assert.Equal(t, overlay.Field(app.fields[1]), app.mgr.AttachedField())
	assert.True(t, app.mgr.Visible(), "overlay stays open across the focus transfer")
	assert.False(t, app.fields[0].Focused())
	assert.True(t, app.fields[1].Focused())
	assert.Len(t, app.observers, 1, "previous field's geometry observer released")
}

func TestDownEntersGridAndUpLeavesIt(t *testing.T) {
	app := newTestApp(t)
	app.Init()

	app.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.True(t, app.gridFocus)
	assert.True(t, app.mgr.Visible(), "entering the grid keeps the overlay open")

	// Walk to the top row, then up once more to return to the field.
	for app.gridCursor >= calendar.GridColumns {
		app.Update(tea.KeyMsg{Type: tea.KeyUp})
	}
	app.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.False(t, app.gridFocus)
	assert.True(t, app.fields[0].Focused())
	assert.True(t, app.mgr.Visible())
}

func TestEnterPicksDateIntoField(t *testing.T) {
	app := newTestApp(t)
	app.Init()

	app.Update(tea.KeyMsg{Type: tea.KeyDown})
	app.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, app.mgr.Visible(), "pick hides the overlay")
	assert.False(t, app.gridFocus)

	value := app.fields[0].Value()
	assert.NotEmpty(t, value)
	format, err := dateformat.Compile("Y-m-d")
	assert.NoError(t, err)
	_, err = format.Parse(value)
	assert.NoError(t, err, "picked value %q round-trips through the field format", value)
}

func TestEscapeHidesThenQuits(t *testing.T) {
	app := newTestApp(t)
	app.Init()

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, app.mgr.Visible())

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotNil(t, cmd, "esc with the overlay closed quits")
}

func TestMonthNavigationKeys(t *testing.T) {
	app := newTestApp(t)
	app.Init()
	app.Update(tea.KeyMsg{Type: tea.KeyDown})

	year, month := app.mgr.DisplayMonth()
	app.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	gotYear, gotMonth := app.mgr.DisplayMonth()

	next := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	assert.Equal(t, next.Year(), gotYear)
	assert.Equal(t, next.Month(), gotMonth)
	assert.True(t, app.mgr.Visible(), "navigation never hides the overlay")
}

func TestTypingValidDateMovesGrid(t *testing.T) {
	app := newTestApp(t)
	app.Init()

	for _, r := range "2031-11-05" {
		app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	year, month := app.mgr.DisplayMonth()
	assert.Equal(t, 2031, year)
	assert.Equal(t, time.November, month)
}

func TestResolveFields(t *testing.T) {
	app := newTestApp(t)

	assert.Len(t, app.ResolveFields("*"), 3)
	assert.Len(t, app.ResolveFields("Birthday"), 1)
	assert.Empty(t, app.ResolveFields("No such field"))
}

func TestRenderPanelShowsMonthAndFlags(t *testing.T) {
	app := newTestApp(t)
	cfg := models.DefaultFieldConfig()
	app.ApplyConfig(cfg)

	today := calendar.DateTime{Year: 2024, Month: time.February, Day: 15}
	selected := calendar.DateTime{Year: 2024, Month: time.February, Day: 29}
	cells := calendar.BuildMonth(2024, time.February, today, &selected, nil)
	app.RenderMonth(2024, time.February, cells)

	panel := app.renderPanel()
	assert.Contains(t, panel, "February 2024")
	assert.Contains(t, panel, "Mo")
	assert.Contains(t, panel, "29")
}

func TestRenderPanelEmptyBeforeAttach(t *testing.T) {
	app := newTestApp(t)
	assert.Empty(t, app.renderPanel())
}

func TestSeedCursorPrefersSelection(t *testing.T) {
	app := newTestApp(t)
	app.ApplyConfig(models.DefaultFieldConfig())

	selected := calendar.DateTime{Year: 2024, Month: time.February, Day: 29}
	app.RenderMonth(2024, time.February, calendar.BuildMonth(2024, time.February, calendar.DateTime{}, &selected, nil))
	app.seedCursor()

	assert.True(t, app.cells[app.gridCursor].Selected)
}

func TestComposeOverlay(t *testing.T) {
	base := "line one\nline two\nline three"
	panel := "AAA\nBBB"

	out := composeOverlay(base, panel, overlay.Point{X: 4, Y: 1})
	lines := strings.Split(out, "\n")

	assert.Equal(t, "line one", lines[0])
	assert.Equal(t, "lineAAA", lines[1])
	assert.Equal(t, "lineBBB", lines[2])
}

func TestComposeOverlayExtendsShortBase(t *testing.T) {
	out := composeOverlay("top", "XX", overlay.Point{X: 2, Y: 3})
	lines := strings.Split(out, "\n")

	assert.Len(t, lines, 4)
	assert.Equal(t, "  XX", lines[3])
}

func TestViewRendersFormAndOverlay(t *testing.T) {
	app := newTestApp(t)
	app.Init()

	view := app.View()
	assert.Contains(t, view, "fieldpick")
	assert.Contains(t, view, "Due date")
	// The overlay panel is spliced into the view while visible.
	assert.Contains(t, view, "Mo")
}
