package mp4probe

import (
	"strings"
	"testing"

	"github.com/Eyevinn/mp4ff/mp4"
)

func TestDescribe_RejectsNonMP4Extension(t *testing.T) {
	p := New()

	if _, err := p.Describe("/out/shot010.0001.png"); err == nil {
		t.Error("expected error for image path")
	}
	if _, err := p.Describe("/out/shot010.avi"); err == nil {
		t.Error("expected error for avi path")
	}
}

func TestDescribe_MissingFile(t *testing.T) {
	p := New()

	if _, err := p.Describe("/nonexistent/shot010.mp4"); err == nil {
		t.Error("expected error for missing file")
	}
}

func buildMoov(handlerType, sampleType string, width, height int) *mp4.MoovBox {
	moov := &mp4.MoovBox{}
	moov.AddChild(&mp4.MvhdBox{Timescale: 1000, Duration: 2000})

	stsd := &mp4.StsdBox{}
	if sampleType != "" {
		stsd.AddChild(mp4.NewVisualSampleEntryBox(sampleType))
	}

	stbl := &mp4.StblBox{}
	stbl.AddChild(stsd)

	minf := &mp4.MinfBox{}
	minf.AddChild(stbl)

	mdia := &mp4.MdiaBox{}
	mdia.AddChild(&mp4.HdlrBox{HandlerType: handlerType})
	mdia.AddChild(minf)

	trak := &mp4.TrakBox{}
	trak.AddChild(&mp4.TkhdBox{
		Width:  mp4.Fixed32(width << 16),
		Height: mp4.Fixed32(height << 16),
	})
	trak.AddChild(mdia)

	moov.AddChild(trak)
	return moov
}

func TestDescribeVideoTrack(t *testing.T) {
	moov := buildMoov("vide", "avc1", 1920, 1080)

	desc := describeVideoTrack(moov)
	if desc != "avc1 1920x1080" {
		t.Errorf("expected avc1 1920x1080, got %q", desc)
	}
}

func TestDescribeVideoTrack_NoVideoTrack(t *testing.T) {
	moov := buildMoov("soun", "avc1", 0, 0)

	if desc := describeVideoTrack(moov); desc != "" {
		t.Errorf("expected empty description for audio track, got %q", desc)
	}
}

func TestDescribeVideoTrack_UnknownSampleType(t *testing.T) {
	moov := buildMoov("vide", "", 1920, 1080)

	if desc := describeVideoTrack(moov); desc != "" {
		t.Errorf("expected empty description for empty stsd, got %q", desc)
	}
}

func TestDescribeVideoTrack_CodecOnlyWithoutDimensions(t *testing.T) {
	moov := buildMoov("vide", "avc1", 0, 0)

	desc := describeVideoTrack(moov)
	if desc != "avc1" {
		t.Errorf("expected bare codec, got %q", desc)
	}
	if strings.Contains(desc, "0x0") {
		t.Errorf("dimensions should be omitted when zero, got %q", desc)
	}
}
