package leveldata

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/automoto/tooth/config"
	"github.com/automoto/tooth/foreground"
	"github.com/automoto/tooth/terrain"
	"gopkg.in/yaml.v3"
)

// ErrInvalidManifest wraps every validation failure.
var ErrInvalidManifest = errors.New("invalid manifest")

//go:embed demo/demo.yaml demo/demo.bin
var demoFS embed.FS

// ParseManifest decodes a YAML manifest, fills in defaults and validates it.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if m.Size == [2]int32{} {
		m.Size = config.Level.DefaultSize
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks that the level fits the grid and that every entity is of a
// known kind and inside the level.
func (m *Manifest) Validate() error {
	if m.Level == "" {
		return fmt.Errorf("%w: no level file", ErrInvalidManifest)
	}
	if m.Size[0] < 1 || m.Size[1] < 1 || m.Size[0] > foreground.Size || m.Size[1] > foreground.Size {
		return fmt.Errorf("%w: size %dx%d outside 1..%d", ErrInvalidManifest, m.Size[0], m.Size[1], foreground.Size)
	}
	if !m.inside(m.Spawn[0], m.Spawn[1]) {
		return fmt.Errorf("%w: spawn (%d,%d) outside the level", ErrInvalidManifest, m.Spawn[0], m.Spawn[1])
	}
	for i, e := range m.Entities {
		switch e.Kind {
		case KindKey, KindLock, KindStar:
		case KindSign:
			if e.Text == "" {
				return fmt.Errorf("%w: entity %d: sign without text", ErrInvalidManifest, i)
			}
		default:
			return fmt.Errorf("%w: entity %d: unknown kind %q", ErrInvalidManifest, i, e.Kind)
		}
		if !m.inside(e.X, e.Y) {
			return fmt.Errorf("%w: entity %d (%s) at (%d,%d) outside the level", ErrInvalidManifest, i, e.Kind, e.X, e.Y)
		}
	}
	return nil
}

func (m *Manifest) inside(x, y int32) bool {
	return x >= 0 && y >= 0 && x < m.Size[0] && y < m.Size[1]
}

// Marshal encodes the manifest as YAML.
func (m *Manifest) Marshal() ([]byte, error) {
	return yaml.Marshal(m)
}

// LoadManifest reads and validates the manifest at name in fsys.
func LoadManifest(fsys fs.FS, name string) (*Manifest, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", name, err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return m, nil
}

// LoadLevel reads a manifest and the terrain it points at. The terrain is
// parsed once so a broken file fails here rather than at decode time.
func LoadLevel(fsys fs.FS, name string) (*Manifest, []byte, error) {
	m, err := LoadManifest(fsys, name)
	if err != nil {
		return nil, nil, err
	}
	binPath := path.Join(path.Dir(name), m.Level)
	src, err := fs.ReadFile(fsys, binPath)
	if err != nil {
		return nil, nil, fmt.Errorf("read level %s: %w", binPath, err)
	}
	if _, err := terrain.ParseLevel(src); err != nil {
		return nil, nil, fmt.Errorf("level %s: %w", binPath, err)
	}
	return m, src, nil
}

// Demo returns the level built into the binary.
func Demo() (*Manifest, []byte, error) {
	return LoadLevel(demoFS, "demo/demo.yaml")
}
