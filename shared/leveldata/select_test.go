package leveldata

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenSlots struct{}

func (brokenSlots) Load(string) (*Manifest, []byte, error) {
	return nil, nil, errors.New("disk on fire")
}

func TestSelect(t *testing.T) {
	m, src := testLevel(t)
	fileMeta, err := m.Marshal()
	require.NoError(t, err)
	fsys := fstest.MapFS{
		"lv/t.yaml": {Data: fileMeta},
		"lv/t.bin":  {Data: src},
	}

	store := &Store{items: memItems{}}

	_, _, from, err := Select(store, "custom", fsys, "")
	require.NoError(t, err)
	assert.Equal(t, "demo", from, "empty slot falls through to the demo")

	got, _, from, err := Select(store, "custom", fsys, "lv/t.yaml")
	require.NoError(t, err)
	assert.Equal(t, "file:lv/t.yaml", from)
	assert.Equal(t, "t", got.Name)

	require.NoError(t, store.Save("custom", m, src))
	_, gotSrc, from, err := Select(store, "custom", fsys, "lv/t.yaml")
	require.NoError(t, err)
	assert.Equal(t, "slot:custom", from)
	assert.Equal(t, src, gotSrc)

	_, _, _, err = Select(brokenSlots{}, "custom", fsys, "lv/t.yaml")
	assert.EqualError(t, err, "disk on fire")

	_, _, _, err = Select(nil, "", nil, "lv/t.yaml")
	assert.Error(t, err)
}
