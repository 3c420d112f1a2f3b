package models

import "time"

// FieldConfig holds the per-field picker configuration. It is merged over
// DefaultFieldConfig at registration time and immutable afterwards.
type FieldConfig struct {
	Format       string   `yaml:"format"`
	StartYear    int      `yaml:"start_year"`
	EndYear      int      `yaml:"end_year"`
	MonthNames   []string `yaml:"month_names,omitempty"`
	WeekdayNames []string `yaml:"weekday_names,omitempty"`
	Holidays     []string `yaml:"holidays,omitempty"` // "Y-m-d"; year 1970 recurs every year
	TimeZone     string   `yaml:"time_zone,omitempty"`
	Placeholder  string   `yaml:"placeholder,omitempty"`
}

// DefaultFieldConfig returns the documented defaults: ISO format, a ten-year
// window around the current year, English names and the local time zone.
func DefaultFieldConfig() *FieldConfig {
	year := time.Now().Year()
	return &FieldConfig{
		Format:    "Y-m-d",
		StartYear: year - 10,
		EndYear:   year + 10,
		MonthNames: []string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		WeekdayNames: []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"},
	}
}

// Merge fills the zero-valued fields of cfg from the defaults and returns
// the result. A nil cfg yields the plain defaults.
func (d *FieldConfig) Merge(cfg *FieldConfig) *FieldConfig {
	if cfg == nil {
		c := *d
		return &c
	}
	merged := *cfg
	if merged.Format == "" {
		merged.Format = d.Format
	}
	if merged.StartYear == 0 {
		merged.StartYear = d.StartYear
	}
	if merged.EndYear == 0 {
		merged.EndYear = d.EndYear
	}
	if len(merged.MonthNames) == 0 {
		merged.MonthNames = d.MonthNames
	}
	if len(merged.WeekdayNames) == 0 {
		merged.WeekdayNames = d.WeekdayNames
	}
	if merged.TimeZone == "" {
		merged.TimeZone = d.TimeZone
	}
	return &merged
}

// Location resolves the configured time zone, falling back to the local
// zone when unset or unknown.
func (c *FieldConfig) Location() *time.Location {
	if c.TimeZone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.Local
	}
	return loc
}
