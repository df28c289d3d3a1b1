// Package config loads the stepper's construction-time options.
//
// Options come from a YAML file stored in the platform config directory:
//   - Linux: $XDG_CONFIG_HOME/numberstepper/config.yaml or $HOME/.config/numberstepper/config.yaml
//   - macOS: $HOME/.config/numberstepper/config.yaml
//   - Windows: %LOCALAPPDATA%\numberstepper\config.yaml
//
// # File Format
//
//	version: 1
//	stepper:
//	  button_size: 35
//	  step: 5
//	  value: 10
//	  min_value: 0
//	  max_value: 100
//	display:
//	  density: 0.1
//
// # Error Handling
//
// A malformed option never fails the load. It is logged at warn level and
// the option keeps its default, so the stepper always starts. Read errors
// other than a missing file, and unsupported versions, are returned.
//
// Only options are stored here. The committed value is never written back.
package config
