package contactsheet

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeFrame(t *testing.T, dir string, index int, c color.Color) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 64, 36))
	for y := 0; y < 36; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(dir, fmt.Sprintf("shot.%04d.png", index))
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create frame: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode frame: %v", err)
	}
	return path
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 6; i++ {
		writeFrame(t, dir, i, color.RGBA{R: uint8(40 * i), G: 80, B: 120, A: 255})
	}

	out := filepath.Join(dir, "sheet.png")
	opts := DefaultOptions()
	opts.Columns = 3
	opts.ThumbWidth = 64

	if err := Generate(filepath.Join(dir, "shot.*.png"), out, opts); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open sheet: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode sheet: %v", err)
	}

	// 6 thumbs in 3 columns is a 2-row grid.
	wantW := 3*(64+opts.Gap) + opts.Gap
	if img.Bounds().Dx() != wantW {
		t.Errorf("expected sheet width %d, got %d", wantW, img.Bounds().Dx())
	}
}

func TestGenerate_NoFrames(t *testing.T) {
	dir := t.TempDir()

	err := Generate(filepath.Join(dir, "missing.*.png"), filepath.Join(dir, "sheet.png"), DefaultOptions())
	if err == nil {
		t.Fatal("expected error when no frames match")
	}
}

func TestSample(t *testing.T) {
	paths := []string{"a", "b", "c", "d", "e", "f", "g", "h"}

	got := sample(paths, 4)
	if len(got) != 4 {
		t.Fatalf("expected 4 samples, got %d", len(got))
	}
	if got[0] != "a" || got[3] != "h" {
		t.Errorf("expected first and last frames kept, got %v", got)
	}

	if got := sample(paths, 0); len(got) != len(paths) {
		t.Errorf("expected all paths with zero cap, got %d", len(got))
	}
	if got := sample(paths, 20); len(got) != len(paths) {
		t.Errorf("expected all paths when cap exceeds count, got %d", len(got))
	}
}
