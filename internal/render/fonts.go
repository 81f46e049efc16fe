package render

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// FontSet is one parsed font with a face for each point size in use.
// Faces are created once and reused for every sticker.
type FontSet struct {
	font  *opentype.Font
	faces map[float64]font.Face
}

// LoadFontSet reads a TrueType/OpenType font file and prepares faces for
// the given sizes.
func LoadFontSet(path string, sizes ...float64) (*FontSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return ParseFontSet(data, sizes...)
}

// ParseFontSet is LoadFontSet for font data already in memory.
func ParseFontSet(data []byte, sizes ...float64) (*FontSet, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	fs := &FontSet{font: f, faces: make(map[float64]font.Face, len(sizes))}
	for _, size := range sizes {
		if _, ok := fs.faces[size]; ok {
			continue
		}
		// 72 DPI makes the size a pixel size, matching the template coordinates.
		face, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			fs.Close()
			return nil, fmt.Errorf("create font face %.0f: %w", size, err)
		}
		fs.faces[size] = face
	}
	return fs, nil
}

// Face returns the face prepared for size.
func (fs *FontSet) Face(size float64) (font.Face, error) {
	face, ok := fs.faces[size]
	if !ok {
		return nil, fmt.Errorf("no font face for size %.0f", size)
	}
	return face, nil
}

// Close releases all faces.
func (fs *FontSet) Close() error {
	var first error
	for size, face := range fs.faces {
		if err := face.Close(); err != nil && first == nil {
			first = err
		}
		delete(fs.faces, size)
	}
	return first
}
