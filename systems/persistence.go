package systems

import (
	"io/fs"
	"os"
	"path/filepath"

	cfg "github.com/automoto/tooth/config"
	"github.com/automoto/tooth/shared/leveldata"
	"go.uber.org/zap"
)

var levelStore *leveldata.Store

// InitPersistence opens the level store. The game still runs without it,
// it just cannot load saved levels.
func InitPersistence() error {
	s, err := leveldata.OpenStore(leveldata.AppName)
	if err != nil {
		logger.Warn("could not open level store", zap.Error(err))
		return err
	}
	levelStore = s
	return nil
}

// LevelStore returns the open store, nil if InitPersistence failed.
func LevelStore() *leveldata.Store {
	return levelStore
}

// LoadStartLevel picks the level the game starts on from the configured
// slot, the configured manifest path and the embedded demo, in that order.
func LoadStartLevel() (*leveldata.Manifest, []byte, error) {
	var slots leveldata.SlotLoader
	if levelStore != nil {
		slots = levelStore
	}
	var fsys fs.FS
	path := cfg.Debug.LevelPath
	if path != "" {
		fsys = os.DirFS(filepath.Dir(path))
		path = filepath.Base(path)
	}
	m, src, from, err := leveldata.Select(slots, cfg.Level.CustomSlotName, fsys, path)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("level loaded",
		zap.String("name", m.Name),
		zap.String("from", from),
		zap.Int32s("size", m.Size[:]),
		zap.Int("entities", len(m.Entities)))
	return m, src, nil
}
