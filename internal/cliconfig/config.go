package cliconfig

import (
	"fmt"
	"strconv"
)

// Config holds CLI configuration for voxview.
type Config struct {
	Input string
	Out   string

	UpAxis      string
	FieldOfView float64
	MarkerColor string
	MarkerSize  int

	ShowNonSolid bool
	SkipBadLines bool
	StrictFlags  bool

	Watch     bool
	ServeAddr string
	Verbose   bool
}

// DefaultConfig returns a Config with default values. The camera and marker
// defaults match the visualizer this tool replaces: red markers of size 5
// and a y-up view with a 60 degree field of view.
func DefaultConfig() Config {
	return Config{
		Input:       "terrain_map.txt",
		Out:         "voxels.html",
		UpAxis:      "y",
		FieldOfView: 60,
		MarkerColor: "#ff0000",
		MarkerSize:  5,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("input is required")
	}
	if c.Out == "" && c.ServeAddr == "" {
		return fmt.Errorf("out is required unless serving")
	}

	switch c.UpAxis {
	case "x", "y", "z":
	default:
		return fmt.Errorf("up-axis must be x, y or z, got %q", c.UpAxis)
	}

	if c.FieldOfView <= 0 || c.FieldOfView >= 180 {
		return fmt.Errorf("fov must be between 0 and 180 degrees exclusive, got %v", c.FieldOfView)
	}
	if c.MarkerSize <= 0 {
		return fmt.Errorf("marker-size must be positive")
	}
	if c.MarkerColor == "" {
		return fmt.Errorf("marker-color is required")
	}

	// Serve mode already re-renders per request.
	if c.Watch && c.ServeAddr != "" {
		return fmt.Errorf("watch and serve are mutually exclusive")
	}

	return nil
}

// configSetter helps apply configuration values while respecting flag
// precedence. It only applies values if the corresponding flag hasn't been
// explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setFloat sets a float64 value if positive and flag not changed.
func (s *configSetter) setFloat(flag string, value float64, dst *float64) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if
// valid. Used for environment variables, which arrive as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setFloatFromString parses a string to float64 and sets the destination if
// valid. Used for environment variables, which arrive as strings.
func (s *configSetter) setFloatFromString(flag, value string, dst *float64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if f <= 0 {
		return nil
	}
	*dst = f
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true" and "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
