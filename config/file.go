package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/automoto/tooth/controller"
)

// File is the optional TOML settings file. Physics tuning is compiled in and
// cannot be overridden from here.
type File struct {
	Window  WindowFile          `toml:"window"`
	Level   LevelFile           `toml:"level"`
	Debug   DebugFile           `toml:"debug"`
	Logging LoggingConfig       `toml:"logging"`
	Keys    map[string][]string `toml:"keys"` // button name -> key names
}

type WindowFile struct {
	Scale int    `toml:"scale"`
	Title string `toml:"title"`
}

type LevelFile struct {
	Manifest string `toml:"manifest"`
	Slot     string `toml:"slot"`
}

type DebugFile struct {
	Overlay  bool `toml:"overlay"`
	SkipFade bool `toml:"skip_fade"`
}

// Load reads a settings file over the current defaults.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	f := defaults()
	if err := toml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return f, nil
}

func defaults() *File {
	return &File{
		Window: WindowFile{
			Scale: C.Scale,
			Title: C.Title,
		},
		Level: LevelFile{
			Manifest: Debug.LevelPath,
			Slot:     Level.CustomSlotName,
		},
		Debug: DebugFile{
			Overlay:  Debug.Overlay,
			SkipFade: Debug.SkipFade,
		},
		Logging: Logging,
	}
}

// Apply copies the file's settings into the global configuration.
func (f *File) Apply() error {
	if f.Window.Scale < 1 {
		return fmt.Errorf("window scale %d: must be at least 1", f.Window.Scale)
	}
	bindings := make(map[controller.Button]InputBinding, len(Input.Bindings))
	for b, keys := range Input.Bindings {
		bindings[b] = keys
	}
	for name, keys := range f.Keys {
		b, ok := controller.ParseButton(name)
		if !ok {
			return fmt.Errorf("keys: unknown button %q", name)
		}
		bindings[b] = InputBinding{Keys: keys}
	}

	C.Scale = f.Window.Scale
	C.Title = f.Window.Title
	Debug.LevelPath = f.Level.Manifest
	Debug.Overlay = f.Debug.Overlay
	Debug.SkipFade = f.Debug.SkipFade
	Level.CustomSlotName = f.Level.Slot
	Logging = f.Logging
	Input.Bindings = bindings
	return nil
}
