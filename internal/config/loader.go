package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"sync"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/muurk/numberstepper/internal/logging"
)

const (
	appName        = "numberstepper"
	configFile     = "config.yaml"
	currentVersion = 1
)

// Mutex for thread-safe file operations
var fileMutex sync.Mutex

// GetConfigDir returns the OS-appropriate configuration directory for the application.
// This follows platform conventions:
//   - Linux: $XDG_CONFIG_HOME/numberstepper or $HOME/.config/numberstepper
//   - macOS: $HOME/.config/numberstepper
//   - Windows: %LOCALAPPDATA%\numberstepper
func GetConfigDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			baseDir = filepath.Join(userProfile, "AppData", "Local", appName)
		} else {
			baseDir = filepath.Join(localAppData, appName)
		}

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".config", appName)

	default:
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome != "" {
			baseDir = filepath.Join(xdgConfigHome, appName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".config", appName)
		}
	}

	return baseDir, nil
}

// GetConfigPath returns the full path to the configuration file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

// rawFile mirrors File but keeps option values as nodes so each one can
// fail to decode on its own.
type rawFile struct {
	Version int                  `yaml:"version"`
	Stepper map[string]yaml.Node `yaml:"stepper"`
	Display map[string]yaml.Node `yaml:"display"`
}

// LoadDefault loads options from the default config path.
func LoadDefault() (Options, error) {
	path, err := GetConfigPath()
	if err != nil {
		return Defaults(), fmt.Errorf("failed to get config path: %w", err)
	}
	return Load(path)
}

// Load reads options from path. A missing file yields the defaults.
// Malformed values are logged and replaced by their defaults; only I/O
// failures and unsupported versions are returned as errors.
func Load(path string) (Options, error) {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	opts := Defaults()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		logging.Debug("No config file, using defaults", zap.String("path", path))
		return opts, nil
	}
	if err != nil {
		return opts, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes options from YAML data. See Load for error semantics.
func Parse(data []byte) (Options, error) {
	opts := Defaults()

	var raw rawFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		logging.LogConfigFallback("document", "", err)
		return opts, nil
	}

	if raw.Version != 0 && raw.Version != currentVersion {
		return opts, fmt.Errorf("unsupported config version: %d (expected %d)", raw.Version, currentVersion)
	}

	decodeOption(raw.Stepper, KeyButtonSize, &opts.ButtonSize, positive)
	decodeOption(raw.Stepper, KeyStep, &opts.Step, finite)
	decodeOption(raw.Stepper, KeyValue, &opts.Value, finite)
	decodeOption(raw.Stepper, KeyMinValue, &opts.MinValue, finite)
	decodeOption(raw.Stepper, KeyMaxValue, &opts.MaxValue, finite)
	decodeOption(raw.Display, KeyDensity, &opts.Density, positive)

	warnUnknown("stepper", raw.Stepper, KeyButtonSize, KeyStep, KeyValue, KeyMinValue, KeyMaxValue)
	warnUnknown("display", raw.Display, KeyDensity)

	return opts, nil
}

func decodeOption(section map[string]yaml.Node, key string, dst *float64, check func(float64) error) {
	node, ok := section[key]
	if !ok {
		return
	}

	var v float64
	if err := node.Decode(&v); err != nil {
		logging.LogConfigFallback(key, node.Value, err)
		return
	}
	if err := check(v); err != nil {
		logging.LogConfigFallback(key, node.Value, err)
		return
	}
	*dst = v
}

func warnUnknown(section string, values map[string]yaml.Node, known ...string) {
	for key := range values {
		found := false
		for _, k := range known {
			if k == key {
				found = true
				break
			}
		}
		if !found {
			logging.Warn("Unknown config option",
				zap.String("section", section),
				zap.String("option", key),
			)
		}
	}
}

// Sanitize applies the same checks Parse uses to options that did not come
// from a file, such as command-line overrides. Invalid values are logged
// and replaced by their defaults.
func (o Options) Sanitize() Options {
	d := Defaults()
	checks := []struct {
		key   string
		dst   *float64
		def   float64
		check func(float64) error
	}{
		{KeyButtonSize, &o.ButtonSize, d.ButtonSize, positive},
		{KeyStep, &o.Step, d.Step, finite},
		{KeyValue, &o.Value, d.Value, finite},
		{KeyMinValue, &o.MinValue, d.MinValue, finite},
		{KeyMaxValue, &o.MaxValue, d.MaxValue, finite},
		{KeyDensity, &o.Density, d.Density, positive},
	}
	for _, c := range checks {
		if err := c.check(*c.dst); err != nil {
			logging.LogConfigFallback(c.key, strconv.FormatFloat(*c.dst, 'g', -1, 64), err)
			*c.dst = c.def
		}
	}
	return o
}

func finite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("value must be finite")
	}
	return nil
}

func positive(v float64) error {
	if err := finite(v); err != nil {
		return err
	}
	if v <= 0 {
		return fmt.Errorf("value must be positive")
	}
	return nil
}

// WriteDefault writes a commented default config file to path, creating
// its directory. Existing files are left untouched unless overwrite is set.
// Performs an atomic write to prevent corruption on crash.
func WriteDefault(path string, overwrite bool) error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	defaults := Defaults()
	file := defaults.ToFile()
	// Unbounded defaults are left out so the file stays readable.
	file.Stepper.MinValue = 0
	file.Stepper.MaxValue = 100

	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# numberstepper configuration
#
# stepper.step is floored at 1. Equal min_value and max_value make the
# field read-only. display.density converts logical units to terminal
# cells (button_size) and rows (keyboard detection threshold).
#
# Location: ` + path + `

`)
	data = append(header, data...)

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}
