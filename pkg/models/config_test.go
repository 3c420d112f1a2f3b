package models

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultFieldConfig(t *testing.T) {
	cfg := DefaultFieldConfig()
	year := time.Now().Year()

	if cfg.Format != "Y-m-d" {
		t.Errorf("Format = %q, want Y-m-d", cfg.Format)
	}
	if cfg.StartYear != year-10 || cfg.EndYear != year+10 {
		t.Errorf("year range = %d-%d, want %d-%d", cfg.StartYear, cfg.EndYear, year-10, year+10)
	}
	if len(cfg.MonthNames) != 12 {
		t.Errorf("month names = %d, want 12", len(cfg.MonthNames))
	}
	if len(cfg.WeekdayNames) != 7 {
		t.Errorf("weekday names = %d, want 7", len(cfg.WeekdayNames))
	}
}

func TestMerge(t *testing.T) {
	defaults := DefaultFieldConfig()

	t.Run("nil config yields defaults", func(t *testing.T) {
		merged := defaults.Merge(nil)
		if merged.Format != defaults.Format {
			t.Errorf("Format = %q, want default", merged.Format)
		}
	})

	t.Run("set fields win", func(t *testing.T) {
		merged := defaults.Merge(&FieldConfig{Format: "d.m.Y", StartYear: 2000})
		if merged.Format != "d.m.Y" {
			t.Errorf("Format = %q, want d.m.Y", merged.Format)
		}
		if merged.StartYear != 2000 {
			t.Errorf("StartYear = %d, want 2000", merged.StartYear)
		}
		if merged.EndYear != defaults.EndYear {
			t.Errorf("EndYear = %d, want default %d", merged.EndYear, defaults.EndYear)
		}
		if len(merged.MonthNames) != 12 {
			t.Error("unset month names fall back to defaults")
		}
	})

	t.Run("holidays and placeholder pass through", func(t *testing.T) {
		merged := defaults.Merge(&FieldConfig{Holidays: []string{"1970-01-01"}, Placeholder: "pick"})
		if len(merged.Holidays) != 1 || merged.Placeholder != "pick" {
			t.Errorf("merged = %+v, want holidays and placeholder kept", merged)
		}
	})
}

func TestLocation(t *testing.T) {
	if loc := (&FieldConfig{}).Location(); loc != time.Local {
		t.Errorf("empty zone = %v, want local", loc)
	}
	if loc := (&FieldConfig{TimeZone: "not/azone"}).Location(); loc != time.Local {
		t.Errorf("unknown zone = %v, want local fallback", loc)
	}
	loc := (&FieldConfig{TimeZone: "Europe/Berlin"}).Location()
	if loc.String() != "Europe/Berlin" {
		t.Errorf("zone = %v, want Europe/Berlin", loc)
	}
}

func TestLoadDemoConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "form.yaml")
	content := `fields:
  - label: Due date
    value: "2024-02-29"
    config:
      format: Y-m-d
      holidays:
        - "1970-01-01"
  - label: Birthday
    config:
      format: d.m.Y
      time_zone: Europe/Berlin
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDemoConfig(path)
	if err != nil {
		t.Fatalf("LoadDemoConfig failed: %v", err)
	}
	if len(cfg.Fields) != 2 {
		t.Fatalf("fields = %d, want 2", len(cfg.Fields))
	}
	if cfg.Fields[0].Value != "2024-02-29" {
		t.Errorf("value = %q", cfg.Fields[0].Value)
	}
	if cfg.Fields[0].Config.Holidays[0] != "1970-01-01" {
		t.Errorf("holidays = %v", cfg.Fields[0].Config.Holidays)
	}
	if cfg.Fields[1].Config.TimeZone != "Europe/Berlin" {
		t.Errorf("time zone = %q", cfg.Fields[1].Config.TimeZone)
	}
}

func TestLoadDemoConfigErrors(t *testing.T) {
	if _, err := LoadDemoConfig("/nonexistent/form.yaml"); err == nil {
		t.Error("missing file should fail")
	}

	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.yaml")
	if err := os.WriteFile(empty, []byte("fields: []\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDemoConfig(empty); err == nil {
		t.Error("a config without fields should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("{not yaml"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDemoConfig(bad); err == nil {
		t.Error("malformed yaml should fail")
	}
}
