package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"strconv"
	"strings"

	"github.com/automoto/tooth/foreground"
	"github.com/automoto/tooth/terrain"
	"github.com/lafriks/go-tiled"
)

// Layer and object group names ImportTMX looks for. When the map has no
// layer called TerrainLayer the first tile layer is used.
const (
	TerrainLayer = "terrain"
	EntityGroup  = "entities"
)

// ImportTMX converts a Tiled map into a level and its manifest. A tile's id
// in the level is its tileset property "id" (decimal or 0x hex) when set,
// else its index in the tileset. Objects in the entities group become
// manifest entities named by the object name; an object named "spawn" sets
// the spawn point.
func ImportTMX(fsys fs.FS, tmxPath string) (*terrain.Level, *Manifest, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.Width > foreground.Size || levelMap.Height > foreground.Size {
		return nil, nil, fmt.Errorf("TMX %s: %dx%d map does not fit %dx%d grid",
			tmxPath, levelMap.Width, levelMap.Height, foreground.Size, foreground.Size)
	}

	stem := strings.TrimSuffix(path.Base(tmxPath), path.Ext(tmxPath))
	m := &Manifest{
		Name:  stem,
		Level: stem + ".bin",
		Size:  [2]int32{int32(levelMap.Width), int32(levelMap.Height)},
	}

	layer := terrainLayer(levelMap)
	if layer == nil {
		return nil, nil, fmt.Errorf("TMX %s: no tile layer", tmxPath)
	}
	cells := make([]uint8, levelMap.Width*levelMap.Height)
	for i, tile := range layer.Tiles {
		if i >= len(cells) || tile.IsNil() {
			continue
		}
		id, err := tileID(tile)
		if err != nil {
			return nil, nil, fmt.Errorf("TMX %s: tile at (%d,%d): %w", tmxPath, i%levelMap.Width, i/levelMap.Width, err)
		}
		cells[i] = id
	}
	lvl := &terrain.Level{Land: packRects(cells, levelMap.Width, levelMap.Height)}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, og := range levelMap.ObjectGroups {
		if og.Name != EntityGroup {
			continue
		}
		for _, o := range og.Objects {
			// objects stand on the bottom row they cover
			x := int32((o.X + o.Width/2) / tileW)
			y := int32((o.Y + max(o.Height, 1) - 1) / tileH)
			kind := strings.ToLower(o.Name)
			if kind == KindSpawn {
				m.Spawn = [2]int32{x, y}
				continue
			}
			m.Entities = append(m.Entities, EntitySpec{
				Kind: kind,
				X:    x,
				Y:    y,
				Text: o.Properties.GetString("text"),
			})
		}
	}

	if err := m.Validate(); err != nil {
		return nil, nil, fmt.Errorf("TMX %s: %w", tmxPath, err)
	}
	return lvl, m, nil
}

func terrainLayer(levelMap *tiled.Map) *tiled.Layer {
	for _, layer := range levelMap.Layers {
		if layer.Name == TerrainLayer {
			return layer
		}
	}
	if len(levelMap.Layers) > 0 {
		return levelMap.Layers[0]
	}
	return nil
}

func tileID(tile *tiled.LayerTile) (uint8, error) {
	if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
		if s := tilesetTile.Properties.GetString("id"); s != "" {
			v, err := strconv.ParseUint(s, 0, 8)
			if err != nil {
				return 0, fmt.Errorf("id property %q: %w", s, err)
			}
			return uint8(v), nil
		}
	}
	if tile.ID > 0xFF {
		return 0, fmt.Errorf("tileset index %d does not fit a byte", tile.ID)
	}
	return uint8(tile.ID), nil
}

// packRects covers the non-empty cells with land records, growing each
// rectangle right then down over cells of the same id.
func packRects(cells []uint8, w, h int) []terrain.LandRecord {
	done := make([]bool, len(cells))
	var out []terrain.LandRecord
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			id := cells[y*w+x]
			if id == foreground.TileEmpty || done[y*w+x] {
				continue
			}
			rw := 1
			for x+rw < w && rw < 0xFF && cells[y*w+x+rw] == id && !done[y*w+x+rw] {
				rw++
			}
			rh := 1
		grow:
			for y+rh < h && rh < 0xFF {
				for i := x; i < x+rw; i++ {
					if cells[(y+rh)*w+i] != id || done[(y+rh)*w+i] {
						break grow
					}
				}
				rh++
			}
			for j := y; j < y+rh; j++ {
				for i := x; i < x+rw; i++ {
					done[j*w+i] = true
				}
			}
			out = append(out, terrain.LandRecord{
				X: uint8(x), Y: uint8(y), W: uint8(rw), H: uint8(rh), Tile: id,
			})
		}
	}
	return out
}
