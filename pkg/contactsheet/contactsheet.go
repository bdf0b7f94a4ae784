// Package contactsheet composes captured frames into a single grid poster,
// a quick visual index of a playblast without playing the video.
package contactsheet

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
)

// Options controls the sheet layout.
type Options struct {
	// Columns is the number of thumbnails per row.
	Columns int
	// ThumbWidth is the width of each thumbnail in pixels. Height follows
	// the source aspect ratio.
	ThumbWidth int
	// Gap is the spacing between thumbnails in pixels.
	Gap int
	// MaxFrames caps how many frames appear on the sheet. Frames beyond the
	// cap are sampled evenly across the sequence. Zero means all frames.
	MaxFrames int
	// Label draws the source file name under each thumbnail.
	Label bool
}

// DefaultOptions returns the layout used by the CLI.
func DefaultOptions() Options {
	return Options{
		Columns:    4,
		ThumbWidth: 320,
		Gap:        8,
		MaxFrames:  16,
		Label:      true,
	}
}

var background = color.RGBA{R: 34, G: 34, B: 34, A: 255}

// Generate reads the frame files matching pattern (a filepath glob), lays
// them out in a grid, and writes the sheet as a PNG to outputPath.
func Generate(pattern, outputPath string, opts Options) error {
	if opts.Columns <= 0 {
		opts.Columns = 4
	}
	if opts.ThumbWidth <= 0 {
		opts.ThumbWidth = 320
	}

	paths, err := filepath.Glob(pattern)
	if err != nil {
		return fmt.Errorf("glob frames: %w", err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no frames match %s", pattern)
	}
	sort.Strings(paths)
	paths = sample(paths, opts.MaxFrames)

	thumbs := make([]image.Image, 0, len(paths))
	var thumbHeight int
	for _, p := range paths {
		img, err := loadPNG(p)
		if err != nil {
			return fmt.Errorf("load frame %s: %w", p, err)
		}
		if thumbHeight == 0 {
			b := img.Bounds()
			thumbHeight = opts.ThumbWidth * b.Dy() / b.Dx()
		}
		thumbs = append(thumbs, resize(img, opts.ThumbWidth, thumbHeight))
	}

	labelHeight := 0
	if opts.Label {
		labelHeight = 16
	}

	cols := opts.Columns
	rows := int(math.Ceil(float64(len(thumbs)) / float64(cols)))
	cellW := opts.ThumbWidth + opts.Gap
	cellH := thumbHeight + labelHeight + opts.Gap

	dc := gg.NewContext(cols*cellW+opts.Gap, rows*cellH+opts.Gap)
	dc.SetColor(background)
	dc.Clear()

	for i, thumb := range thumbs {
		x := opts.Gap + (i%cols)*cellW
		y := opts.Gap + (i/cols)*cellH
		dc.DrawImage(thumb, x, y)

		if opts.Label {
			dc.SetColor(color.White)
			dc.DrawString(filepath.Base(paths[i]), float64(x), float64(y+thumbHeight+12))
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := dc.SavePNG(outputPath); err != nil {
		return fmt.Errorf("write contact sheet: %w", err)
	}
	return nil
}

// sample picks at most max entries, spread evenly, always keeping the first
// and last frame.
func sample(paths []string, max int) []string {
	if max <= 0 || len(paths) <= max {
		return paths
	}
	out := make([]string, 0, max)
	step := float64(len(paths)-1) / float64(max-1)
	for i := 0; i < max; i++ {
		out = append(out, paths[int(math.Round(float64(i)*step))])
	}
	return out
}

func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return png.Decode(f)
}

func resize(img image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}
