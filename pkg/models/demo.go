package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DemoField describes one input field of the demo form.
type DemoField struct {
	Label  string       `yaml:"label"`
	Value  string       `yaml:"value,omitempty"`
	Config *FieldConfig `yaml:"config,omitempty"`
}

// DemoConfig is the top-level demo form configuration file.
type DemoConfig struct {
	Fields []DemoField `yaml:"fields"`
}

// DefaultDemoConfig returns the form shown when no config file is given:
// a date field, a dotted-format field with a recurring holiday, and a
// datetime field.
func DefaultDemoConfig() *DemoConfig {
	return &DemoConfig{
		Fields: []DemoField{
			{
				Label:  "Due date",
				Config: &FieldConfig{Placeholder: "Y-m-d"},
			},
			{
				Label: "Birthday",
				Config: &FieldConfig{
					Format:      "d.m.Y",
					Placeholder: "d.m.Y",
					Holidays:    []string{"1970-01-01", "1970-12-25"},
				},
			},
			{
				Label: "Appointment",
				Config: &FieldConfig{
					Format:      "Y-m-d H:i",
					Placeholder: "Y-m-d H:i",
				},
			},
		},
	}
}

// LoadDemoConfig reads a demo form configuration from a YAML file.
func LoadDemoConfig(path string) (*DemoConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg DemoConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if len(cfg.Fields) == 0 {
		return nil, fmt.Errorf("config %s defines no fields", path)
	}
	return &cfg, nil
}
