// Package mocks provides mock implementations for testing.
package mocks

import (
	"github.com/user/playblast/pkg/catalog"
	"github.com/user/playblast/pkg/ports"
)

// Host is a mock implementation of ports.Host backed by a small in-memory
// scene. NewHost fills in sensible defaults; individual Func fields override
// single methods per test.
type Host struct {
	// Scene state driving the default behavior.
	Cameras       []string
	Viewport      string
	Camera        string
	Visibility    []bool
	TimeUnit      string
	Playback      [2]float64
	Animation     [2]float64
	RenderRange   [2]float64
	RenderWidth   int
	RenderHeight  int
	Scene         string
	Project       string
	Prefs         map[string]string
	Audio         *ports.AudioTrack
	CaptureErr    error

	// Recorded interactions.
	Captures       []ports.CaptureOptions
	CameraSets     []string
	VisibilitySets [][]bool
	PumpCount      int

	// Per-method overrides.
	ListCamerasFunc           func() ([]string, error)
	ActiveViewportFunc        func() (string, error)
	ActiveCameraFunc          func(viewport string) (string, error)
	SetActiveCameraFunc       func(viewport, camera string) error
	ViewportVisibilityFunc    func(viewport string) ([]bool, error)
	SetViewportVisibilityFunc func(viewport string, visibility []bool) error
	CurrentTimeUnitFunc       func() (string, error)
	PlaybackRangeFunc         func() (float64, float64, error)
	AnimationRangeFunc        func() (float64, float64, error)
	RenderFrameRangeFunc      func() (float64, float64, error)
	RenderResolutionFunc      func() (int, int, error)
	SceneNameFunc             func() string
	ProjectRootFunc           func() string
	PreferenceFunc            func(name string) (string, bool)
	SetPreferenceFunc         func(name, value string) error
	CaptureFunc               func(opts ports.CaptureOptions) error
	AudioTrackFunc            func() (*ports.AudioTrack, error)
	ProcessEventsFunc         func()
}

// NewHost creates a mock host with one viewport, two cameras, a film time
// unit and all viewport categories visible.
func NewHost() *Host {
	visibility := make([]bool, catalog.Len())
	for i := range visibility {
		visibility[i] = true
	}
	return &Host{
		Cameras:      []string{"persp", "shotCam"},
		Viewport:     "modelPanel4",
		Camera:       "persp",
		Visibility:   visibility,
		TimeUnit:     "film",
		Playback:     [2]float64{1, 24},
		Animation:    [2]float64{1, 120},
		RenderRange:  [2]float64{1, 48},
		RenderWidth:  1920,
		RenderHeight: 1080,
		Scene:        "shot010",
		Project:      "/projects/demo",
		Prefs:        map[string]string{},
	}
}

func (m *Host) ListCameras() ([]string, error) {
	if m.ListCamerasFunc != nil {
		return m.ListCamerasFunc()
	}
	return append([]string(nil), m.Cameras...), nil
}

func (m *Host) ActiveViewport() (string, error) {
	if m.ActiveViewportFunc != nil {
		return m.ActiveViewportFunc()
	}
	return m.Viewport, nil
}

func (m *Host) ActiveCamera(viewport string) (string, error) {
	if m.ActiveCameraFunc != nil {
		return m.ActiveCameraFunc(viewport)
	}
	return m.Camera, nil
}

func (m *Host) SetActiveCamera(viewport, camera string) error {
	if m.SetActiveCameraFunc != nil {
		return m.SetActiveCameraFunc(viewport, camera)
	}
	m.Camera = camera
	m.CameraSets = append(m.CameraSets, camera)
	return nil
}

func (m *Host) ViewportVisibility(viewport string) ([]bool, error) {
	if m.ViewportVisibilityFunc != nil {
		return m.ViewportVisibilityFunc(viewport)
	}
	return append([]bool(nil), m.Visibility...), nil
}

func (m *Host) SetViewportVisibility(viewport string, visibility []bool) error {
	if m.SetViewportVisibilityFunc != nil {
		return m.SetViewportVisibilityFunc(viewport, visibility)
	}
	m.Visibility = append([]bool(nil), visibility...)
	m.VisibilitySets = append(m.VisibilitySets, append([]bool(nil), visibility...))
	return nil
}

func (m *Host) CurrentTimeUnit() (string, error) {
	if m.CurrentTimeUnitFunc != nil {
		return m.CurrentTimeUnitFunc()
	}
	return m.TimeUnit, nil
}

func (m *Host) PlaybackRange() (float64, float64, error) {
	if m.PlaybackRangeFunc != nil {
		return m.PlaybackRangeFunc()
	}
	return m.Playback[0], m.Playback[1], nil
}

func (m *Host) AnimationRange() (float64, float64, error) {
	if m.AnimationRangeFunc != nil {
		return m.AnimationRangeFunc()
	}
	return m.Animation[0], m.Animation[1], nil
}

func (m *Host) RenderFrameRange() (float64, float64, error) {
	if m.RenderFrameRangeFunc != nil {
		return m.RenderFrameRangeFunc()
	}
	return m.RenderRange[0], m.RenderRange[1], nil
}

func (m *Host) RenderResolution() (int, int, error) {
	if m.RenderResolutionFunc != nil {
		return m.RenderResolutionFunc()
	}
	return m.RenderWidth, m.RenderHeight, nil
}

func (m *Host) SceneName() string {
	if m.SceneNameFunc != nil {
		return m.SceneNameFunc()
	}
	return m.Scene
}

func (m *Host) ProjectRoot() string {
	if m.ProjectRootFunc != nil {
		return m.ProjectRootFunc()
	}
	return m.Project
}

func (m *Host) Preference(name string) (string, bool) {
	if m.PreferenceFunc != nil {
		return m.PreferenceFunc(name)
	}
	value, ok := m.Prefs[name]
	return value, ok
}

func (m *Host) SetPreference(name, value string) error {
	if m.SetPreferenceFunc != nil {
		return m.SetPreferenceFunc(name, value)
	}
	m.Prefs[name] = value
	return nil
}

func (m *Host) Capture(opts ports.CaptureOptions) error {
	if m.CaptureFunc != nil {
		return m.CaptureFunc(opts)
	}
	m.Captures = append(m.Captures, opts)
	return m.CaptureErr
}

func (m *Host) AudioTrack() (*ports.AudioTrack, error) {
	if m.AudioTrackFunc != nil {
		return m.AudioTrackFunc()
	}
	return m.Audio, nil
}

func (m *Host) ProcessEvents() {
	if m.ProcessEventsFunc != nil {
		m.ProcessEventsFunc()
		return
	}
	m.PumpCount++
}

// Ensure Host implements ports.Host
var _ ports.Host = (*Host)(nil)
