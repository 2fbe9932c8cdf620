package config

import "github.com/automoto/tooth/controller"

// InputBinding lists the keys that drive one button. Key names follow the
// host's naming ("ArrowLeft", "X", "Space"...).
type InputBinding struct {
	Keys []string `toml:"keys"`
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[controller.Button]InputBinding

	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[controller.Button]InputBinding{
			controller.Left:  {Keys: []string{"ArrowLeft", "A"}},
			controller.Right: {Keys: []string{"ArrowRight", "D"}},
			controller.Up:    {Keys: []string{"ArrowUp", "W"}},
			controller.Down:  {Keys: []string{"ArrowDown", "S"}},
			controller.Start: {Keys: []string{"Enter", "Escape"}},
			controller.A:     {Keys: []string{"X", "Space"}},
			controller.B:     {Keys: []string{"Z"}},
			controller.C:     {Keys: []string{"C"}},
		},
		AnalogDeadzone: 0.25,
	}
}
