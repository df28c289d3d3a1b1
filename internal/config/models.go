package config

import "math"

// Option keys as they appear in the configuration file.
const (
	KeyButtonSize = "button_size"
	KeyStep       = "step"
	KeyValue      = "value"
	KeyMinValue   = "min_value"
	KeyMaxValue   = "max_value"
	KeyDensity    = "density"
)

// Options holds everything the stepper reads at construction time.
type Options struct {
	ButtonSize float64 `yaml:"button_size"` // Button width in logical units
	Step       float64 `yaml:"step"`        // Quantization unit, floored at 1 by the stepper
	Value      float64 `yaml:"value"`       // Initial committed value
	MinValue   float64 `yaml:"min_value"`   // Inclusive lower bound
	MaxValue   float64 `yaml:"max_value"`   // Inclusive upper bound
	Density    float64 `yaml:"density"`     // Terminal cells per logical unit
}

// File is the on-disk layout of config.yaml.
type File struct {
	Version int          `yaml:"version"`
	Stepper StepperBlock `yaml:"stepper"`
	Display DisplayBlock `yaml:"display"`
}

// StepperBlock is the "stepper" section of config.yaml.
type StepperBlock struct {
	ButtonSize float64 `yaml:"button_size"`
	Step       float64 `yaml:"step"`
	Value      float64 `yaml:"value"`
	MinValue   float64 `yaml:"min_value"`
	MaxValue   float64 `yaml:"max_value"`
}

// DisplayBlock is the "display" section of config.yaml.
type DisplayBlock struct {
	Density float64 `yaml:"density"`
}

// Defaults returns the options used when nothing is configured.
func Defaults() Options {
	return Options{
		ButtonSize: 35,
		Step:       1,
		Value:      0,
		MinValue:   -math.MaxFloat64,
		MaxValue:   math.MaxFloat64,
		Density:    0.1,
	}
}

// ButtonCells converts the button size to a width in terminal cells,
// truncating like a pixel conversion. The result is at least 1.
func (o Options) ButtonCells() int {
	cells := int(o.ButtonSize * o.Density)
	if cells < 1 {
		return 1
	}
	return cells
}

// ToFile converts options to the file layout.
func (o Options) ToFile() File {
	return File{
		Version: currentVersion,
		Stepper: StepperBlock{
			ButtonSize: o.ButtonSize,
			Step:       o.Step,
			Value:      o.Value,
			MinValue:   o.MinValue,
			MaxValue:   o.MaxValue,
		},
		Display: DisplayBlock{Density: o.Density},
	}
}
