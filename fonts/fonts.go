// Package fonts holds the font faces drawn by the HUD.
package fonts

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

type FontName string

const (
	Mono      FontName = "mono"
	MonoSmall FontName = "mono-small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts    = map[FontName]font.Face{}
	mu       sync.Mutex
	loadOnce sync.Once
)

// LoadDefaults registers the built-in faces. Get calls it on first use.
func LoadDefaults(size float64) {
	loadOnce.Do(func() {
		if err := LoadFontWithSize(Mono, gomono.TTF, size); err != nil {
			panic(err)
		}
		if err := LoadFontWithSize(MonoSmall, gomono.TTF, size*3/4); err != nil {
			panic(err)
		}
	})
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	mu.Lock()
	defer mu.Unlock()
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{
		Size:    size,
		Hinting: font.HintingFull,
	})
	return nil
}

func getFont(name FontName) font.Face {
	LoadDefaults(8)
	mu.Lock()
	defer mu.Unlock()
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
