package settings

import (
	"testing"

	"github.com/user/playblast/pkg/catalog"
	"github.com/user/playblast/pkg/mocks"
)

func TestNew_Defaults(t *testing.T) {
	s := New(mocks.NewHost())

	if s.Container() != ContainerMP4 {
		t.Errorf("expected default container mp4, got %s", s.Container())
	}
	if s.Codec() != "h264" {
		t.Errorf("expected default codec h264, got %s", s.Codec())
	}
	if s.H264Quality() != "High" || s.H264Preset() != "fast" {
		t.Errorf("unexpected h264 defaults: %s/%s", s.H264Quality(), s.H264Preset())
	}
	if s.ImageQuality() != 100 {
		t.Errorf("expected image quality 100, got %d", s.ImageQuality())
	}
	if s.Camera() != "" {
		t.Errorf("expected no camera by default, got %s", s.Camera())
	}
}

func TestSetCamera(t *testing.T) {
	host := mocks.NewHost()
	s := New(host)

	if err := s.SetCamera("shotCam"); err != nil {
		t.Fatalf("SetCamera failed: %v", err)
	}
	if s.Camera() != "shotCam" {
		t.Errorf("expected shotCam, got %s", s.Camera())
	}

	if err := s.SetCamera("bogusCam"); err == nil {
		t.Fatal("expected error for unknown camera")
	}
	// The previous selection survives the rejected set.
	if s.Camera() != "shotCam" {
		t.Errorf("expected camera unchanged after rejection, got %s", s.Camera())
	}

	if err := s.SetCamera(""); err != nil {
		t.Fatalf("clearing camera failed: %v", err)
	}
	if s.Camera() != "" {
		t.Errorf("expected cleared camera, got %s", s.Camera())
	}
}

func TestResolution_RenderPreset(t *testing.T) {
	host := mocks.NewHost()
	s := New(host)

	w, h, err := s.Resolution()
	if err != nil {
		t.Fatalf("Resolution failed: %v", err)
	}
	if w != 1920 || h != 1080 {
		t.Errorf("expected render globals 1920x1080, got %dx%d", w, h)
	}

	// Render-globals edits are picked up on the next read.
	host.RenderWidth, host.RenderHeight = 1280, 720
	w, h, _ = s.Resolution()
	if w != 1280 || h != 720 {
		t.Errorf("expected updated globals 1280x720, got %dx%d", w, h)
	}
}

func TestResolution_Presets(t *testing.T) {
	s := New(mocks.NewHost())

	tests := []struct {
		preset string
		w, h   int
	}{
		{"HD 1080", 1920, 1080},
		{"HD 720", 1280, 720},
		{"HD 540", 960, 540},
	}
	for _, tt := range tests {
		if err := s.SetResolutionPreset(tt.preset); err != nil {
			t.Fatalf("SetResolutionPreset(%s) failed: %v", tt.preset, err)
		}
		w, h, err := s.Resolution()
		if err != nil {
			t.Fatalf("Resolution failed: %v", err)
		}
		if w != tt.w || h != tt.h {
			t.Errorf("%s: expected %dx%d, got %dx%d", tt.preset, tt.w, tt.h, w, h)
		}
	}

	if err := s.SetResolutionPreset("4K"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestSetResolution_Explicit(t *testing.T) {
	s := New(mocks.NewHost())

	if err := s.SetResolution(640, 480); err != nil {
		t.Fatalf("SetResolution failed: %v", err)
	}
	w, h, _ := s.Resolution()
	if w != 640 || h != 480 {
		t.Errorf("expected 640x480, got %dx%d", w, h)
	}

	if err := s.SetResolution(0, 480); err == nil {
		t.Error("expected error for zero width")
	}
	if err := s.SetResolution(640, -1); err == nil {
		t.Error("expected error for negative height")
	}
	// Rejected sets leave the stored resolution alone.
	w, h, _ = s.Resolution()
	if w != 640 || h != 480 {
		t.Errorf("expected resolution unchanged, got %dx%d", w, h)
	}
}

func TestFrameRange_Presets(t *testing.T) {
	host := mocks.NewHost()
	host.RenderRange = [2]float64{1.6, 48.9}
	s := New(host)

	// Preset bounds are integer-truncated.
	start, end, err := s.FrameRange()
	if err != nil {
		t.Fatalf("FrameRange failed: %v", err)
	}
	if start != 1 || end != 48 {
		t.Errorf("expected truncated 1-48, got %d-%d", start, end)
	}

	if err := s.SetFrameRangePreset("Playback"); err != nil {
		t.Fatalf("SetFrameRangePreset failed: %v", err)
	}
	start, end, _ = s.FrameRange()
	if start != 1 || end != 24 {
		t.Errorf("expected playback 1-24, got %d-%d", start, end)
	}

	if err := s.SetFrameRangePreset("Animation"); err != nil {
		t.Fatalf("SetFrameRangePreset failed: %v", err)
	}
	start, end, _ = s.FrameRange()
	if start != 1 || end != 120 {
		t.Errorf("expected animation 1-120, got %d-%d", start, end)
	}

	if err := s.SetFrameRangePreset("Everything"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestSetFrameRange_Explicit(t *testing.T) {
	s := New(mocks.NewHost())

	if err := s.SetFrameRange(10, 20); err != nil {
		t.Fatalf("SetFrameRange failed: %v", err)
	}
	start, end, _ := s.FrameRange()
	if start != 10 || end != 20 {
		t.Errorf("expected 10-20, got %d-%d", start, end)
	}

	if err := s.SetFrameRange(20, 10); err == nil {
		t.Error("expected error for end before start")
	}
	start, end, _ = s.FrameRange()
	if start != 10 || end != 20 {
		t.Errorf("expected range unchanged after rejection, got %d-%d", start, end)
	}
}

func TestVisibility_ViewportSnapshot(t *testing.T) {
	host := mocks.NewHost()
	s := New(host)

	vis, err := s.Visibility("modelPanel4")
	if err != nil {
		t.Fatalf("Visibility failed: %v", err)
	}
	if len(vis) != catalog.Len() {
		t.Fatalf("expected %d entries, got %d", catalog.Len(), len(vis))
	}

	// With nothing configured the live viewport is snapshotted, so a
	// viewport change shows up on the next read.
	host.Visibility[0] = false
	vis, _ = s.Visibility("modelPanel4")
	if vis[0] {
		t.Error("expected snapshot to track the live viewport")
	}
}

func TestVisibility_PresetAndExplicit(t *testing.T) {
	host := mocks.NewHost()
	s := New(host)

	if err := s.SetVisibilityPreset("Geo"); err != nil {
		t.Fatalf("SetVisibilityPreset failed: %v", err)
	}
	vis, _ := s.Visibility("modelPanel4")
	visible := 0
	for _, v := range vis {
		if v {
			visible++
		}
	}
	if visible != 2 {
		t.Errorf("Geo preset should show 2 categories, got %d", visible)
	}

	// A stored vector no longer tracks the viewport.
	host.Visibility[0] = false
	again, _ := s.Visibility("modelPanel4")
	if len(again) != catalog.Len() {
		t.Fatalf("unexpected vector length %d", len(again))
	}

	// Mutating the returned copy must not affect the stored vector.
	again[5] = !again[5]
	third, _ := s.Visibility("modelPanel4")
	if third[5] == again[5] {
		t.Error("expected returned visibility to be a defensive copy")
	}

	if err := s.SetVisibility(make([]bool, 3)); err == nil {
		t.Error("expected error for wrong-length vector")
	}

	s.ClearVisibility()
	cleared, _ := s.Visibility("modelPanel4")
	if cleared[0] {
		t.Error("expected cleared settings to snapshot the viewport again")
	}
}

func TestSetVisibilityPreset_Viewport(t *testing.T) {
	s := New(mocks.NewHost())

	if err := s.SetVisibilityPreset("Geo"); err != nil {
		t.Fatalf("SetVisibilityPreset failed: %v", err)
	}
	if err := s.SetVisibilityPreset("Viewport"); err != nil {
		t.Fatalf("SetVisibilityPreset(Viewport) failed: %v", err)
	}

	// Viewport preset reverts to the live snapshot.
	vis, _ := s.Visibility("modelPanel4")
	for i, v := range vis {
		if !v {
			t.Errorf("expected entry %d visible from live viewport", i)
		}
	}
}

func TestSetEncoding(t *testing.T) {
	s := New(mocks.NewHost())

	if err := s.SetEncoding(ContainerMOV, "h264"); err != nil {
		t.Fatalf("SetEncoding failed: %v", err)
	}
	if s.Container() != ContainerMOV || s.Codec() != "h264" {
		t.Errorf("unexpected encoding: %s/%s", s.Container(), s.Codec())
	}

	if err := s.SetEncoding(ContainerImage, "png"); err != nil {
		t.Fatalf("SetEncoding failed: %v", err)
	}

	// An invalid pair is rejected as a whole.
	if err := s.SetEncoding(ContainerMP4, "png"); err == nil {
		t.Fatal("expected error for mp4/png")
	}
	if s.Container() != ContainerImage || s.Codec() != "png" {
		t.Errorf("expected encoding unchanged after rejection: %s/%s", s.Container(), s.Codec())
	}

	if err := s.SetEncoding("avi", "h264"); err == nil {
		t.Error("expected error for unknown container")
	}
}

func TestRequiresEncoder(t *testing.T) {
	s := New(mocks.NewHost())

	if !s.RequiresEncoder() {
		t.Error("mp4 should require the encoder")
	}

	if err := s.SetEncoding(ContainerImage, "jpg"); err != nil {
		t.Fatalf("SetEncoding failed: %v", err)
	}
	if s.RequiresEncoder() {
		t.Error("Image should not require the encoder")
	}
}

func TestSetH264Settings(t *testing.T) {
	s := New(mocks.NewHost())

	if err := s.SetH264Settings("Very high", "veryslow"); err != nil {
		t.Fatalf("SetH264Settings failed: %v", err)
	}
	if s.CRF() != 18 {
		t.Errorf("expected CRF 18 for Very high, got %d", s.CRF())
	}

	if err := s.SetH264Settings("Ultra", "fast"); err == nil {
		t.Error("expected error for unknown quality")
	}
	if err := s.SetH264Settings("High", "warp"); err == nil {
		t.Error("expected error for unknown preset")
	}
	if s.H264Quality() != "Very high" || s.H264Preset() != "veryslow" {
		t.Errorf("expected settings unchanged after rejection: %s/%s", s.H264Quality(), s.H264Preset())
	}
}

func TestCRFTable(t *testing.T) {
	s := New(mocks.NewHost())

	tests := []struct {
		quality string
		crf     int
	}{
		{"Very high", 18},
		{"High", 20},
		{"Medium", 23},
		{"Low", 26},
	}
	for _, tt := range tests {
		if err := s.SetH264Settings(tt.quality, "fast"); err != nil {
			t.Fatalf("SetH264Settings(%s) failed: %v", tt.quality, err)
		}
		if s.CRF() != tt.crf {
			t.Errorf("%s: expected CRF %d, got %d", tt.quality, tt.crf, s.CRF())
		}
	}
}

func TestSetImageQuality(t *testing.T) {
	s := New(mocks.NewHost())

	if err := s.SetImageQuality(75); err != nil {
		t.Fatalf("SetImageQuality failed: %v", err)
	}
	if s.ImageQuality() != 75 {
		t.Errorf("expected 75, got %d", s.ImageQuality())
	}

	if err := s.SetImageQuality(0); err == nil {
		t.Error("expected error for zero quality")
	}
	if err := s.SetImageQuality(101); err == nil {
		t.Error("expected error for quality over 100")
	}
	if s.ImageQuality() != 75 {
		t.Errorf("expected quality unchanged after rejection, got %d", s.ImageQuality())
	}
}

func TestFFmpegPathPreference(t *testing.T) {
	host := mocks.NewHost()
	s := New(host)

	s.SetFFmpegPath("/opt/ffmpeg/bin/ffmpeg")
	if err := s.SaveFFmpegPathPreference(); err != nil {
		t.Fatalf("SaveFFmpegPathPreference failed: %v", err)
	}
	if host.Prefs[FFmpegPathPreference] != "/opt/ffmpeg/bin/ffmpeg" {
		t.Errorf("preference not persisted: %q", host.Prefs[FFmpegPathPreference])
	}

	fresh := New(host)
	fresh.LoadFFmpegPathPreference()
	if fresh.FFmpegPath() != "/opt/ffmpeg/bin/ffmpeg" {
		t.Errorf("expected restored path, got %q", fresh.FFmpegPath())
	}
}

func TestPresetNameLists(t *testing.T) {
	if got := ResolutionPresetNames(); got[0] != RenderPreset {
		t.Errorf("expected Render first, got %s", got[0])
	}
	if got := FrameRangePresetNames(); len(got) != 3 {
		t.Errorf("expected 3 frame range presets, got %d", len(got))
	}
	if got := ContainerNames(); len(got) != 3 {
		t.Errorf("expected 3 containers, got %d", len(got))
	}
	if got := CodecsFor(ContainerImage); len(got) != 3 {
		t.Errorf("expected 3 image codecs, got %v", got)
	}
	if got := CodecsFor("avi"); got != nil {
		t.Errorf("expected nil codecs for unknown container, got %v", got)
	}
}
