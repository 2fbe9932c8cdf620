// Package terrain decodes the binary level format into a tile grid.
//
// A level is a big-endian u16 length, that many bytes of land records, then
// object chunks until the input ends:
//
//	land:  x y params [w] [h] tile
//	chunk: loc len op...
//
// Land params carry width in the high nibble and height in the low nibble; a
// zero nibble means the value follows as its own byte. A chunk loc carries
// chunk x in the high nibble and chunk y in the low nibble, each chunk
// addressing a 16x16 tile region.
package terrain

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	// ErrTruncated means a declared length or opcode runs past the input.
	ErrTruncated = errors.New("terrain: truncated level data")
	// ErrTooLarge means a section does not fit its length field.
	ErrTooLarge = errors.New("terrain: section too large")
)

// LandRecord fills a W x H rectangle at (X, Y) with Tile.
type LandRecord struct {
	X, Y uint8
	W, H uint8
	Tile uint8
}

// Op is one object opcode inside a chunk. X and Y are chunk-relative; Param
// holds the opcode's parameter byte and Data the trailing raw bytes of an
// uncompressed run.
type Op struct {
	ID    uint8
	X, Y  uint8
	Param uint8
	Data  []byte
}

// Chunk is a run of object opcodes addressed to one 16x16 region.
type Chunk struct {
	X, Y uint8
	Ops  []Op
}

// Level is the parsed form of a level file. Encode writes it back.
type Level struct {
	Land   []LandRecord
	Chunks []Chunk
}

// ParseLevel reads a level file without painting it.
func ParseLevel(src []byte) (*Level, error) {
	if len(src) < 2 {
		return nil, fmt.Errorf("land length: %w", ErrTruncated)
	}
	n := int(binary.BigEndian.Uint16(src))
	if len(src) < 2+n {
		return nil, fmt.Errorf("land section wants %d bytes, have %d: %w", n, len(src)-2, ErrTruncated)
	}

	lvl := &Level{}
	land := src[2 : 2+n]
	for off := 0; off < len(land); {
		rec, used, err := parseLand(land[off:])
		if err != nil {
			return nil, fmt.Errorf("land record at %d: %w", 2+off, err)
		}
		lvl.Land = append(lvl.Land, rec)
		off += used
	}

	rest := src[2+n:]
	for off := 0; off < len(rest); {
		if len(rest)-off < 2 {
			return nil, fmt.Errorf("chunk header at %d: %w", 2+n+off, ErrTruncated)
		}
		loc, size := rest[off], int(rest[off+1])
		body := rest[off+2:]
		if len(body) < size {
			return nil, fmt.Errorf("chunk at %d wants %d bytes, have %d: %w", 2+n+off, size, len(body), ErrTruncated)
		}
		ops, err := parseOps(body[:size])
		if err != nil {
			return nil, fmt.Errorf("chunk at %d: %w", 2+n+off, err)
		}
		lvl.Chunks = append(lvl.Chunks, Chunk{X: loc >> 4, Y: loc & 0x0F, Ops: ops})
		off += 2 + size
	}
	return lvl, nil
}

func parseLand(b []byte) (LandRecord, int, error) {
	if len(b) < 3 {
		return LandRecord{}, 0, ErrTruncated
	}
	rec := LandRecord{X: b[0], Y: b[1], W: b[2] >> 4, H: b[2] & 0x0F}
	i := 3
	if rec.W == 0 {
		if i >= len(b) {
			return LandRecord{}, 0, ErrTruncated
		}
		rec.W = b[i]
		i++
	}
	if rec.H == 0 {
		if i >= len(b) {
			return LandRecord{}, 0, ErrTruncated
		}
		rec.H = b[i]
		i++
	}
	if i >= len(b) {
		return LandRecord{}, 0, ErrTruncated
	}
	rec.Tile = b[i]
	return rec, i + 1, nil
}

func parseOps(b []byte) ([]Op, error) {
	var ops []Op
	for i := 0; i < len(b); {
		id := b[i]
		if id == OpGroundStretch {
			if i+2 > len(b) {
				return nil, fmt.Errorf("opcode %#02x at %d: %w", id, i, ErrTruncated)
			}
			ops = append(ops, Op{ID: id, Param: b[i+1]})
			i += 2
			continue
		}
		if i+3 > len(b) {
			return nil, fmt.Errorf("opcode %#02x at %d: %w", id, i, ErrTruncated)
		}
		op := Op{ID: id, X: b[i+1] >> 4, Y: b[i+1] & 0x0F, Param: b[i+2]}
		i += 3
		if id == OpUncompressed {
			n := op.width() * op.height()
			if i+n > len(b) {
				return nil, fmt.Errorf("uncompressed run of %d at %d: %w", n, i, ErrTruncated)
			}
			op.Data = append([]byte(nil), b[i:i+n]...)
			i += n
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// Encode writes the level in the binary format, using the short params form
// wherever a dimension fits a nibble.
func (l *Level) Encode() ([]byte, error) {
	var land []byte
	for _, r := range l.Land {
		land = appendLand(land, r)
	}
	if len(land) > 0xFFFF {
		return nil, fmt.Errorf("land section of %d bytes: %w", len(land), ErrTooLarge)
	}

	out := binary.BigEndian.AppendUint16(make([]byte, 0, 2+len(land)), uint16(len(land)))
	out = append(out, land...)
	for _, c := range l.Chunks {
		var body []byte
		for _, op := range c.Ops {
			body = appendOp(body, op)
		}
		if len(body) > 0xFF {
			return nil, fmt.Errorf("chunk (%d,%d) of %d bytes: %w", c.X, c.Y, len(body), ErrTooLarge)
		}
		out = append(out, c.X<<4|c.Y&0x0F, uint8(len(body)))
		out = append(out, body...)
	}
	return out, nil
}

func appendLand(b []byte, r LandRecord) []byte {
	var params uint8
	if r.W > 0 && r.W < 0x10 {
		params |= r.W << 4
	}
	if r.H > 0 && r.H < 0x10 {
		params |= r.H
	}
	b = append(b, r.X, r.Y, params)
	if params>>4 == 0 {
		b = append(b, r.W)
	}
	if params&0x0F == 0 {
		b = append(b, r.H)
	}
	return append(b, r.Tile)
}

func appendOp(b []byte, op Op) []byte {
	if op.ID == OpGroundStretch {
		return append(b, op.ID, op.Param)
	}
	b = append(b, op.ID, op.X<<4|op.Y&0x0F, op.Param)
	return append(b, op.Data...)
}
