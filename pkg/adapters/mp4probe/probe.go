// Package mp4probe summarizes finished MP4/MOV artifacts for the log stream.
package mp4probe

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Eyevinn/mp4ff/mp4"
)

// Prober reads ISO BMFF containers and produces a one-line description of
// the video inside.
type Prober struct{}

// New creates a new Prober.
func New() *Prober {
	return &Prober{}
}

// Describe returns a summary line like
// "mp4 (isom): avc1 1920x1080, 2.0s". Non-MP4 extensions are rejected up
// front so the caller can skip image sequences cheaply.
func (p *Prober) Describe(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "mp4", "mov", "m4v":
	default:
		return "", fmt.Errorf("not an mp4 container: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	mp4File, err := mp4.DecodeFile(f)
	if err != nil {
		return "", fmt.Errorf("decode mp4: %w", err)
	}

	brand := ""
	if mp4File.Ftyp != nil {
		brand = mp4File.Ftyp.MajorBrand()
	}

	moov := mp4File.Moov
	if moov == nil && mp4File.Init != nil {
		moov = mp4File.Init.Moov
	}
	if moov == nil {
		return "", fmt.Errorf("no moov box in %s", path)
	}

	var duration string
	if moov.Mvhd != nil && moov.Mvhd.Timescale > 0 {
		seconds := float64(moov.Mvhd.Duration) / float64(moov.Mvhd.Timescale)
		duration = fmt.Sprintf("%.1fs", seconds)
	}

	video := describeVideoTrack(moov)
	if video == "" {
		return "", fmt.Errorf("no video track found in %s", path)
	}

	desc := ext
	if brand != "" {
		desc += " (" + brand + ")"
	}
	desc += ": " + video
	if duration != "" {
		desc += ", " + duration
	}
	return desc, nil
}

func describeVideoTrack(moov *mp4.MoovBox) string {
	for _, trak := range moov.Traks {
		if trak.Mdia == nil || trak.Mdia.Hdlr == nil || trak.Mdia.Hdlr.HandlerType != "vide" {
			continue
		}
		if trak.Mdia.Minf == nil || trak.Mdia.Minf.Stbl == nil || trak.Mdia.Minf.Stbl.Stsd == nil {
			continue
		}
		for _, child := range trak.Mdia.Minf.Stbl.Stsd.Children {
			switch child.Type() {
			case "avc1", "avc3", "av01", "hvc1", "hev1":
				codec := child.Type()
				if trak.Tkhd != nil {
					w := int(trak.Tkhd.Width >> 16)
					h := int(trak.Tkhd.Height >> 16)
					if w > 0 && h > 0 {
						return fmt.Sprintf("%s %dx%d", codec, w, h)
					}
				}
				return codec
			}
		}
	}
	return ""
}
