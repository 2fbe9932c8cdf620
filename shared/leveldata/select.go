package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
)

// SlotLoader is the part of *Store that Select reads from.
type SlotLoader interface {
	Load(slot string) (*Manifest, []byte, error)
}

// Select picks the level to play: the saved slot if it holds a level, then
// the manifest at path in fsys, then the embedded demo. from says which one
// was used. An empty slot or path skips that source; a slot that exists but
// fails to load is an error rather than a silent fallback.
func Select(store SlotLoader, slot string, fsys fs.FS, path string) (m *Manifest, src []byte, from string, err error) {
	if store != nil && slot != "" {
		m, src, err = store.Load(slot)
		switch {
		case err == nil:
			return m, src, "slot:" + slot, nil
		case !errors.Is(err, ErrNoLevel):
			return nil, nil, "", err
		}
	}
	if path != "" {
		if fsys == nil {
			return nil, nil, "", fmt.Errorf("level %s: no filesystem", path)
		}
		m, src, err = LoadLevel(fsys, path)
		if err != nil {
			return nil, nil, "", err
		}
		return m, src, "file:" + path, nil
	}
	m, src, err = Demo()
	if err != nil {
		return nil, nil, "", err
	}
	return m, src, "demo", nil
}
