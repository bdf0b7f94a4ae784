package webhost

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/user/playblast/pkg/catalog"
)

func TestNew_Defaults(t *testing.T) {
	h := New(Options{})

	if w, ht, _ := h.RenderResolution(); w != 1920 || ht != 1080 {
		t.Errorf("expected 1920x1080 default resolution, got %dx%d", w, ht)
	}

	unit, err := h.CurrentTimeUnit()
	if err != nil {
		t.Fatalf("CurrentTimeUnit failed: %v", err)
	}
	if unit != "film" {
		t.Errorf("expected film time unit, got %s", unit)
	}

	start, end, err := h.PlaybackRange()
	if err != nil {
		t.Fatalf("PlaybackRange failed: %v", err)
	}
	if start != 1 || end != 48 {
		t.Errorf("expected playback range 1-48, got %v-%v", start, end)
	}
}

func TestHost_ActiveViewportAndCamera(t *testing.T) {
	h := New(Options{})

	vp, err := h.ActiveViewport()
	if err != nil {
		t.Fatalf("ActiveViewport failed: %v", err)
	}
	if vp != ViewportName {
		t.Errorf("expected %s, got %s", ViewportName, vp)
	}

	cam, err := h.ActiveCamera(vp)
	if err != nil {
		t.Fatalf("ActiveCamera failed: %v", err)
	}
	if cam != defaultCamera {
		t.Errorf("expected %s, got %s", defaultCamera, cam)
	}

	if _, err := h.ActiveCamera("otherPanel"); err == nil {
		t.Error("expected error for unknown viewport")
	}
}

func TestHost_SetActiveCamera(t *testing.T) {
	h := New(Options{})

	if err := h.SetActiveCamera(ViewportName, "shotCam"); err != nil {
		t.Fatalf("SetActiveCamera failed: %v", err)
	}

	cam, _ := h.ActiveCamera(ViewportName)
	if cam != "shotCam" {
		t.Errorf("expected shotCam, got %s", cam)
	}

	if err := h.SetActiveCamera(ViewportName, "noSuchCam"); err == nil {
		t.Error("expected error for unknown camera")
	}
}

func TestHost_ListCameras(t *testing.T) {
	h := New(Options{})

	cameras, err := h.ListCameras()
	if err != nil {
		t.Fatalf("ListCameras failed: %v", err)
	}
	if len(cameras) != len(cameraPresets) {
		t.Errorf("expected %d cameras, got %d", len(cameraPresets), len(cameras))
	}

	found := false
	for _, c := range cameras {
		if c == "persp" {
			found = true
		}
	}
	if !found {
		t.Error("expected persp in camera list")
	}
}

func TestHost_Visibility(t *testing.T) {
	h := New(Options{})

	vis, err := h.ViewportVisibility(ViewportName)
	if err != nil {
		t.Fatalf("ViewportVisibility failed: %v", err)
	}
	if len(vis) != catalog.Len() {
		t.Fatalf("expected %d entries, got %d", catalog.Len(), len(vis))
	}
	for i, v := range vis {
		if !v {
			t.Errorf("expected entry %d visible by default", i)
		}
	}

	updated := make([]bool, catalog.Len())
	if err := h.SetViewportVisibility(ViewportName, updated); err != nil {
		t.Fatalf("SetViewportVisibility failed: %v", err)
	}

	vis, _ = h.ViewportVisibility(ViewportName)
	for i, v := range vis {
		if v {
			t.Errorf("expected entry %d hidden after update", i)
		}
	}

	// A returned vector is a copy; mutating it must not leak back.
	vis[0] = true
	again, _ := h.ViewportVisibility(ViewportName)
	if again[0] {
		t.Error("expected returned visibility to be independent of caller mutation")
	}

	if err := h.SetViewportVisibility(ViewportName, make([]bool, 3)); err == nil {
		t.Error("expected error for wrong-length vector")
	}
}

func TestHost_Preferences(t *testing.T) {
	h := New(Options{Preferences: map[string]string{"seeded": "yes"}})

	if v, ok := h.Preference("seeded"); !ok || v != "yes" {
		t.Errorf("expected seeded preference, got %q ok=%v", v, ok)
	}

	if _, ok := h.Preference("missing"); ok {
		t.Error("expected missing preference to report not found")
	}

	if err := h.SetPreference("player", "/usr/bin/mpv"); err != nil {
		t.Fatalf("SetPreference failed: %v", err)
	}
	if v, _ := h.Preference("player"); v != "/usr/bin/mpv" {
		t.Errorf("expected stored preference, got %q", v)
	}
}

func TestHost_AudioTrack(t *testing.T) {
	h := New(Options{})
	track, err := h.AudioTrack()
	if err != nil {
		t.Fatalf("AudioTrack failed: %v", err)
	}
	if track != nil {
		t.Error("expected nil track when no audio configured")
	}

	h = New(Options{AudioFile: "/audio/shot.wav", AudioFrameOffset: 5})
	track, err = h.AudioTrack()
	if err != nil {
		t.Fatalf("AudioTrack failed: %v", err)
	}
	if track == nil || track.FilePath != "/audio/shot.wav" || track.FrameOffset != 5 {
		t.Errorf("unexpected track: %+v", track)
	}
}

func TestHost_CloseRemovesScenePage(t *testing.T) {
	page := filepath.Join(t.TempDir(), "scene.html")
	if err := os.WriteFile(page, []byte(scenePage), 0644); err != nil {
		t.Fatalf("write scene page: %v", err)
	}

	h := New(Options{})
	h.pagePath = page

	if err := h.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if _, err := os.Stat(page); !os.IsNotExist(err) {
		t.Errorf("scene page should be removed on close: %v", err)
	}
	if h.pagePath != "" {
		t.Error("page path should be cleared after removal")
	}
}

func TestCatalogIndex(t *testing.T) {
	if idx := catalogIndex("Polygons"); idx < 0 {
		t.Error("expected Polygons in catalog")
	}
	if idx := catalogIndex("polygons"); idx < 0 {
		t.Error("expected case-insensitive lookup")
	}
	if idx := catalogIndex("Not A Category"); idx != -1 {
		t.Errorf("expected -1 for unknown label, got %d", idx)
	}
}

func TestSceneLayers_LabelsExist(t *testing.T) {
	for label := range sceneLayers {
		if catalogIndex(label) < 0 {
			t.Errorf("scene layer label %q not in catalog", label)
		}
	}
}
