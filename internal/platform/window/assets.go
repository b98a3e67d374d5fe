package window

import (
	"fmt"
	_ "image/png" // background images
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"

	"github.com/2022831007/SDL-Game-Project/internal/core"
)

// Assets holds the loaded font face and optional background image.
type Assets struct {
	Face       font.Face
	Background *ebiten.Image
}

// LoadAssets loads everything the skin names. Any configured asset that
// fails to load is an error; an empty skin yields Go Bold and no background.
func LoadAssets(skin core.Skin) (*Assets, error) {
	face, err := loadFace(skin.FontPath, skin.FontSize)
	if err != nil {
		return nil, err
	}

	a := &Assets{Face: face}
	if skin.BackgroundPath != "" {
		img, _, err := ebitenutil.NewImageFromFile(skin.BackgroundPath)
		if err != nil {
			return nil, fmt.Errorf("window: cannot load background %s: %w", skin.BackgroundPath, err)
		}
		a.Background = img
	}
	return a, nil
}

// loadFace parses the TrueType font at path, or the embedded Go Bold when
// path is empty. A non-positive size falls back to the 7x13 bitmap font.
func loadFace(path string, size int) (font.Face, error) {
	if size <= 0 && path == "" {
		return basicfont.Face7x13, nil
	}
	if size <= 0 {
		return nil, fmt.Errorf("window: font size must be positive, got %d", size)
	}

	data := gobold.TTF
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("window: cannot read font %s: %w", path, err)
		}
		data = b
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("window: cannot parse font %q: %w", path, err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("window: cannot create font face: %w", err)
	}
	return face, nil
}
