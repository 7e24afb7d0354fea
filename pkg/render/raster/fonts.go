package raster

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	kaolin "github.com/grindlemire/go-kaolin"
)

// Font ids registered by NewFonts.
const (
	FontRegular uint32 = iota
	FontBold
	FontMono
)

type faceKey struct {
	id   uint32
	size float64
}

// Fonts maps the font ids used in text styles to font sources and caches
// one face per id and size. It is safe for concurrent use.
type Fonts struct {
	mu      sync.Mutex
	sources map[uint32]*text.FontSource
	faces   map[faceKey]text.Face
}

// NewFonts loads the Go font family as FontRegular, FontBold and FontMono.
func NewFonts() (*Fonts, error) {
	f := &Fonts{
		sources: make(map[uint32]*text.FontSource),
		faces:   make(map[faceKey]text.Face),
	}
	for id, data := range map[uint32][]byte{
		FontRegular: goregular.TTF,
		FontBold:    gobold.TTF,
		FontMono:    gomono.TTF,
	} {
		if err := f.Register(id, data); err != nil {
			return nil, errors.Join(err, f.Close())
		}
	}
	return f, nil
}

// Register parses a TrueType or OpenType font and binds it to id,
// replacing any font already registered there.
func (f *Fonts) Register(id uint32, data []byte) error {
	src, err := text.NewFontSource(data)
	if err != nil {
		return fmt.Errorf("font %d: %w", id, err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if old, ok := f.sources[id]; ok {
		_ = old.Close()
	}
	f.sources[id] = src
	for k := range f.faces {
		if k.id == id {
			delete(f.faces, k)
		}
	}
	return nil
}

// Face returns the face for a text style. Unknown ids fall back to
// FontRegular; nil means no font is registered at all.
func (f *Fonts) Face(style kaolin.TextStyle) text.Face {
	size := style.FontSize
	if size <= 0 {
		size = kaolin.DefaultFontSize
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	id := style.FontID
	if _, ok := f.sources[id]; !ok {
		id = FontRegular
	}
	key := faceKey{id: id, size: size}
	if face, ok := f.faces[key]; ok {
		return face
	}
	src, ok := f.sources[id]
	if !ok {
		return nil
	}
	face := src.Face(size)
	f.faces[key] = face
	return face
}

// Measure implements kaolin.MeasureFunc with real glyph advances. The height
// is the face's line height.
func (f *Fonts) Measure(s string, style kaolin.TextStyle) (width, height float64) {
	face := f.Face(style)
	if face == nil {
		return 0, 0
	}
	return text.Measure(s, face)
}

// Close releases every font source.
func (f *Fonts) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var errs []error
	for id, src := range f.sources {
		if err := src.Close(); err != nil {
			errs = append(errs, fmt.Errorf("font %d: %w", id, err))
		}
	}
	clear(f.sources)
	clear(f.faces)
	return errors.Join(errs...)
}
