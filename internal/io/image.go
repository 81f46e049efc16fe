package ioutils

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"

	_ "image/jpeg" // JPEG decoder registration

	"golang.org/x/image/draw"
)

// ImageService provides image processing operations for sticker rendering.
//
// ImageService is used to:
//   - Load a template into an editable RGBA copy (the file is never modified)
//   - Resize a composed sticker to the fixed output size
//   - Encode the result as PNG
//
// Example usage:
//
//	svc := NewImageService()
//
//	canvas, _ := svc.Load(ctx, "templates/bahaar.png")
//	// ... draw on canvas ...
//	sticker := svc.Resize(ctx, canvas, 507, 512)
//	data, _ := svc.EncodePNG(ctx, sticker)
type ImageService struct{}

// NewImageService creates a new ImageService.
func NewImageService() *ImageService {
	return &ImageService{}
}

// Load decodes the image at path and returns a copy of it as *image.RGBA
// with its origin at (0, 0).
//
// PNG and JPEG inputs are supported.
func (s *ImageService) Load(ctx context.Context, path string) (*image.RGBA, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return Copy(src), nil
}

// Copy returns an RGBA copy of img translated to the origin.
func Copy(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// Resize scales img to exactly width x height pixels.
//
// Unlike a fit-within resize the aspect ratio is not preserved; stickers
// have a fixed size whatever the template proportions are.
//
// The Catmull-Rom algorithm is used for high-quality resizing.
//
// Example:
//
//	// A 1000x1010 template becomes 507x512
//	out := svc.Resize(ctx, canvas, 507, 512)
func (s *ImageService) Resize(ctx context.Context, img image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))

	// Use Catmull-Rom for high-quality scaling
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)

	return dst
}

// EncodePNG encodes img as PNG.
func (s *ImageService) EncodePNG(ctx context.Context, img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
