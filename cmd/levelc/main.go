// Command levelc compiles a Tiled map into a binary level and its manifest.
//
//	levelc [-out dir] [-install slot] map.tmx
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/tooth/config"
	"github.com/automoto/tooth/shared/leveldata"
	"go.uber.org/zap"
)

func main() {
	out := flag.String("out", ".", "directory to write the .bin and .yaml into")
	install := flag.String("install", "", "also save the level into this slot of the game's level store")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] map.tmx\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	logger, err := config.NewLogger(config.Logging)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync() //nolint:errcheck

	if err := run(logger, flag.Arg(0), *out, *install); err != nil {
		logger.Fatal("levelc failed", zap.Error(err))
	}
}

func run(logger *zap.Logger, tmxPath, out, slot string) error {
	dir, name := filepath.Split(tmxPath)
	if dir == "" {
		dir = "."
	}
	lvl, m, err := leveldata.ImportTMX(os.DirFS(dir), name)
	if err != nil {
		return err
	}
	src, err := lvl.Encode()
	if err != nil {
		return fmt.Errorf("encode %s: %w", tmxPath, err)
	}
	meta, err := m.Marshal()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(out, 0o755); err != nil {
		return err
	}
	binPath := filepath.Join(out, m.Level)
	metaPath := filepath.Join(out, m.Name+".yaml")
	if err := os.WriteFile(binPath, src, 0o644); err != nil {
		return err
	}
	if err := os.WriteFile(metaPath, meta, 0o644); err != nil {
		return err
	}
	logger.Info("level compiled",
		zap.String("map", tmxPath),
		zap.String("level", binPath),
		zap.String("manifest", metaPath),
		zap.Int("land", len(lvl.Land)),
		zap.Int("bytes", len(src)),
		zap.Int("entities", len(m.Entities)))

	if slot == "" {
		return nil
	}
	store, err := leveldata.OpenStore(leveldata.AppName)
	if err != nil {
		return err
	}
	if err := store.Save(slot, m, src); err != nil {
		return err
	}
	logger.Info("level installed", zap.String("slot", slot))
	return nil
}
