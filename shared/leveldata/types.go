// Package leveldata loads level files: the binary terrain plus a YAML
// manifest naming the spawn point and the entities. It also imports Tiled
// maps and keeps named level slots on disk.
// It has no dependencies on ebitengine or donburi; pure data only.
package leveldata

// Entity kinds a manifest may place.
const (
	KindKey   = "key"
	KindLock  = "lock"
	KindSign  = "sign"
	KindStar  = "star"
	KindSpawn = "spawn" // TMX only; becomes Manifest.Spawn
)

// Manifest describes one level. Coordinates are in tiles.
type Manifest struct {
	Name     string       `yaml:"name"`
	Level    string       `yaml:"level"` // binary terrain, relative to the manifest
	Size     [2]int32     `yaml:"size"`
	Spawn    [2]int32     `yaml:"spawn"`
	Entities []EntitySpec `yaml:"entities,omitempty"`
}

// EntitySpec places one entity standing on the bottom of tile (X, Y).
type EntitySpec struct {
	Kind string `yaml:"kind"`
	X    int32  `yaml:"x"`
	Y    int32  `yaml:"y"`
	Text string `yaml:"text,omitempty"`
}
