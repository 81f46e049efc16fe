package ioutils

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureFolder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Farvardin")

	created, err := EnsureFolder(path)
	if err != nil {
		t.Fatalf("EnsureFolder unexpected error: %v", err)
	}
	if !created {
		t.Error("first EnsureFolder should report created")
	}

	created, err = EnsureFolder(path)
	if err != nil {
		t.Fatalf("second EnsureFolder unexpected error: %v", err)
	}
	if created {
		t.Error("second EnsureFolder should report existing folder")
	}
}

func TestEnsureFolder_FileInTheWay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Mehr")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := EnsureFolder(path); err == nil {
		t.Error("EnsureFolder should fail when a file has the folder name")
	}
}

func TestEnsureFolder_MissingParent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "Mehr")
	if _, err := EnsureFolder(path); err == nil {
		t.Error("EnsureFolder should fail when the parent does not exist")
	}
}

func TestDirExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}

	if !DirExists(dir) {
		t.Error("DirExists(dir) = false")
	}
	if DirExists(file) {
		t.Error("DirExists(file) = true")
	}
	if DirExists(filepath.Join(dir, "nope")) {
		t.Error("DirExists(missing) = true")
	}
}

func TestWriteFile_Overwrites(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "۰۱.png")

	if err := WriteFile(ctx, path, []byte("first")); err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(ctx, path, []byte("2")); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "2" {
		t.Errorf("file content = %q, want %q", got, "2")
	}
}

func TestWriteFile_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "x")
	if err := WriteFile(ctx, path, []byte("x")); err == nil {
		t.Error("WriteFile should fail on a cancelled context")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("file should not be written on a cancelled context")
	}
}

func writeTestPNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 40, G: 120, B: 200, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestImageService_LoadResizeEncode(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "template.png")
	writeTestPNG(t, path, 100, 80)

	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	svc := NewImageService()
	canvas, err := svc.Load(ctx, path)
	if err != nil {
		t.Fatalf("Load unexpected error: %v", err)
	}
	if canvas.Bounds() != image.Rect(0, 0, 100, 80) {
		t.Errorf("canvas bounds = %v", canvas.Bounds())
	}

	// Drawing on the canvas must not touch the template file.
	canvas.Set(0, 0, color.White)
	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(before, after) {
		t.Error("template file changed")
	}

	resized := svc.Resize(ctx, canvas, 507, 512)
	if resized.Bounds() != image.Rect(0, 0, 507, 512) {
		t.Errorf("resized bounds = %v, want 507x512", resized.Bounds())
	}

	data, err := svc.EncodePNG(ctx, resized)
	if err != nil {
		t.Fatalf("EncodePNG unexpected error: %v", err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("encoded data is not a PNG: %v", err)
	}
	if cfg.Width != 507 || cfg.Height != 512 {
		t.Errorf("PNG size = %dx%d, want 507x512", cfg.Width, cfg.Height)
	}
}

func TestImageService_LoadMissing(t *testing.T) {
	svc := NewImageService()
	if _, err := svc.Load(context.Background(), filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Load should fail for a missing file")
	}
}

func TestCopy_TranslatesOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 20, 30))
	src.Set(10, 10, color.RGBA{R: 255, A: 255})

	dst := Copy(src)
	if dst.Bounds() != image.Rect(0, 0, 10, 20) {
		t.Fatalf("bounds = %v", dst.Bounds())
	}
	if got := dst.RGBAAt(0, 0); got.R != 255 {
		t.Errorf("pixel (0,0) = %v, want red", got)
	}
}
