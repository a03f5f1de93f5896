package canvas

import (
	_ "embed"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
)

// IconFamily selects the embedded icon font. Its glyphs live in the
// private use area from U+F000.
const IconFamily = "icons"

//go:embed fonts/fontawesome-webfont.ttf
var iconTTF []byte

type fontKey struct {
	icons bool
	mono  bool
	bold  bool
}

func keyOf(f Font) fontKey {
	if f.Family == IconFamily {
		return fontKey{icons: true}
	}
	return fontKey{mono: isMonospace(f.Family), bold: f.Bold}
}

var (
	parseOnce sync.Once
	parsed    map[fontKey]*truetype.Font
	parseErr  error
)

// loadFonts parses the embedded fonts once per process
func loadFonts() (map[fontKey]*truetype.Font, error) {
	parseOnce.Do(func() {
		sources := map[fontKey][]byte{
			{mono: false, bold: false}: goregular.TTF,
			{mono: false, bold: true}:  gobold.TTF,
			{mono: true, bold: false}:  gomono.TTF,
			{mono: true, bold: true}:   gomonobold.TTF,
			{icons: true}:              iconTTF,
		}
		parsed = make(map[fontKey]*truetype.Font, len(sources))
		for key, ttf := range sources {
			f, err := truetype.Parse(ttf)
			if err != nil {
				parseErr = err
				return
			}
			parsed[key] = f
		}
	})
	return parsed, parseErr
}

var monoHints = []string{"mono", "courier", "consolas", "menlo", "monaco"}

// isMonospace maps a CSS-like family name onto the Go Mono face
func isMonospace(family string) bool {
	family = strings.ToLower(family)
	for _, hint := range monoHints {
		if strings.Contains(family, hint) {
			return true
		}
	}
	return false
}

type faceKey struct {
	fontKey
	size float64
}

// faceCache holds the faces of one surface. truetype faces keep a glyph
// cache and are not safe for concurrent use, so caches are never shared.
type faceCache struct {
	faces map[faceKey]font.Face
}

func newFaceCache() *faceCache {
	return &faceCache{faces: make(map[faceKey]font.Face)}
}

func (c *faceCache) face(f Font) (font.Face, error) {
	key := faceKey{fontKey: keyOf(f), size: f.Size}
	if face, ok := c.faces[key]; ok {
		return face, nil
	}

	fonts, err := loadFonts()
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(fonts[key.fontKey], &truetype.Options{
		Size:    f.Size,
		Hinting: font.HintingFull,
	})
	c.faces[key] = face
	return face, nil
}
