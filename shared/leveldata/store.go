package leveldata

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/automoto/tooth/terrain"
	"github.com/quasilyte/gdata"
)

// AppName is the data directory the game and its tools share.
const AppName = "tooth"

// ErrNoLevel is returned by Store.Load for an empty slot.
var ErrNoLevel = errors.New("no level in slot")

var slotName = regexp.MustCompile(`^[a-z0-9_-]{1,32}$`)

// items is the part of *gdata.Manager the store needs.
type items interface {
	LoadItem(name string) ([]byte, error)
	SaveItem(name string, data []byte) error
}

// Store keeps levels in named slots in the user data directory. A slot is
// two items: the binary terrain and its manifest.
type Store struct {
	items items
}

// OpenStore opens the data directory for app.
func OpenStore(app string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: app,
	})
	if err != nil {
		return nil, fmt.Errorf("open level store: %w", err)
	}
	return &Store{items: m}, nil
}

func checkSlot(slot string) error {
	if !slotName.MatchString(slot) {
		return fmt.Errorf("bad slot name %q", slot)
	}
	return nil
}

// Save writes a level into slot, replacing what was there. The manifest's
// Level field is rewritten to the slot's terrain item.
func (s *Store) Save(slot string, m *Manifest, src []byte) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	if _, err := terrain.ParseLevel(src); err != nil {
		return fmt.Errorf("save slot %s: %w", slot, err)
	}
	saved := *m
	saved.Level = slot + "-level"
	if err := saved.Validate(); err != nil {
		return fmt.Errorf("save slot %s: %w", slot, err)
	}
	meta, err := saved.Marshal()
	if err != nil {
		return fmt.Errorf("save slot %s: %w", slot, err)
	}
	if err := s.items.SaveItem(slot+"-level", src); err != nil {
		return fmt.Errorf("save slot %s: %w", slot, err)
	}
	if err := s.items.SaveItem(slot+"-manifest", meta); err != nil {
		return fmt.Errorf("save slot %s: %w", slot, err)
	}
	return nil
}

// Load reads the level in slot. An empty slot is ErrNoLevel.
func (s *Store) Load(slot string) (*Manifest, []byte, error) {
	if err := checkSlot(slot); err != nil {
		return nil, nil, err
	}
	meta, err := s.items.LoadItem(slot + "-manifest")
	if err != nil {
		return nil, nil, fmt.Errorf("load slot %s: %w", slot, err)
	}
	src, err := s.items.LoadItem(slot + "-level")
	if err != nil {
		return nil, nil, fmt.Errorf("load slot %s: %w", slot, err)
	}
	if len(meta) == 0 || len(src) == 0 {
		return nil, nil, fmt.Errorf("slot %s: %w", slot, ErrNoLevel)
	}

	m, err := ParseManifest(meta)
	if err != nil {
		return nil, nil, fmt.Errorf("load slot %s: %w", slot, err)
	}
	if _, err := terrain.ParseLevel(src); err != nil {
		return nil, nil, fmt.Errorf("load slot %s: %w", slot, err)
	}
	return m, src, nil
}

// Delete empties slot.
func (s *Store) Delete(slot string) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	// gdata treats nil data as a removed item
	if err := s.items.SaveItem(slot+"-manifest", nil); err != nil {
		return fmt.Errorf("delete slot %s: %w", slot, err)
	}
	if err := s.items.SaveItem(slot+"-level", nil); err != nil {
		return fmt.Errorf("delete slot %s: %w", slot, err)
	}
	return nil
}
