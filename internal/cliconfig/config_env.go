package cliconfig

import "os"

// ApplyEnvConfig applies VOXVIEW_* environment variables to the Config.
// Env values override file config but lose to explicitly set flags.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("input", os.Getenv("VOXVIEW_INPUT"), &cfg.Input)
	s.setString("out", os.Getenv("VOXVIEW_OUT"), &cfg.Out)
	s.setString("up-axis", os.Getenv("VOXVIEW_UP_AXIS"), &cfg.UpAxis)
	s.setString("marker-color", os.Getenv("VOXVIEW_MARKER_COLOR"), &cfg.MarkerColor)
	s.setString("serve", os.Getenv("VOXVIEW_SERVE_ADDR"), &cfg.ServeAddr)

	if err := s.setFloatFromString("fov", os.Getenv("VOXVIEW_FOV"), &cfg.FieldOfView); err != nil {
		return err
	}
	if err := s.setIntFromString("marker-size", os.Getenv("VOXVIEW_MARKER_SIZE"), &cfg.MarkerSize); err != nil {
		return err
	}

	s.setBoolFromString("show-non-solid", os.Getenv("VOXVIEW_SHOW_NON_SOLID"), &cfg.ShowNonSolid)
	s.setBoolFromString("skip-bad-lines", os.Getenv("VOXVIEW_SKIP_BAD_LINES"), &cfg.SkipBadLines)
	s.setBoolFromString("strict-flags", os.Getenv("VOXVIEW_STRICT_FLAGS"), &cfg.StrictFlags)
	s.setBoolFromString("watch", os.Getenv("VOXVIEW_WATCH"), &cfg.Watch)
	s.setBoolFromString("verbose", os.Getenv("VOXVIEW_VERBOSE"), &cfg.Verbose)

	return nil
}
