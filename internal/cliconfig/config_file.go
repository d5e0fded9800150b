package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config for TOML decoding. Booleans are pointers so an
// absent key can be told apart from an explicit false.
type FileConfig struct {
	Input        string  `toml:"input"`
	Out          string  `toml:"out"`
	UpAxis       string  `toml:"up_axis"`
	FieldOfView  float64 `toml:"field_of_view"`
	MarkerColor  string  `toml:"marker_color"`
	MarkerSize   int     `toml:"marker_size"`
	ShowNonSolid *bool   `toml:"show_non_solid"`
	SkipBadLines *bool   `toml:"skip_bad_lines"`
	StrictFlags  *bool   `toml:"strict_flags"`
	Watch        *bool   `toml:"watch"`
	ServeAddr    string  `toml:"serve_addr"`
	Verbose      *bool   `toml:"verbose"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path,
// ~/.voxview/config.toml, if the user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".voxview", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("input", fc.Input, &cfg.Input)
	s.setString("out", fc.Out, &cfg.Out)
	s.setString("up-axis", fc.UpAxis, &cfg.UpAxis)
	s.setString("marker-color", fc.MarkerColor, &cfg.MarkerColor)
	s.setString("serve", fc.ServeAddr, &cfg.ServeAddr)

	s.setFloat("fov", fc.FieldOfView, &cfg.FieldOfView)
	s.setInt("marker-size", fc.MarkerSize, &cfg.MarkerSize)

	s.setBool("show-non-solid", fc.ShowNonSolid, &cfg.ShowNonSolid)
	s.setBool("skip-bad-lines", fc.SkipBadLines, &cfg.SkipBadLines)
	s.setBool("strict-flags", fc.StrictFlags, &cfg.StrictFlags)
	s.setBool("watch", fc.Watch, &cfg.Watch)
	s.setBool("verbose", fc.Verbose, &cfg.Verbose)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
