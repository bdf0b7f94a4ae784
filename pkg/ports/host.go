// Package ports defines interfaces for external dependencies.
package ports

// CaptureOptions carries the full option set for the host's frame-capture
// primitive. It mirrors the host call one to one so the orchestrator can be
// tested against the exact values it sends.
type CaptureOptions struct {
	// Filename is the output path without frame number or extension.
	Filename string

	Width  int
	Height int

	// Percent scales the capture relative to the viewport (100 = full size).
	Percent int

	StartFrame int
	EndFrame   int

	// ClearCache discards cached playblast frames before capturing.
	ClearCache bool

	// ForceOverwrite replaces existing frame files without prompting.
	ForceOverwrite bool

	// Format is the capture output kind. Always "image" for frame sequences.
	Format string

	// Compression is the image codec for individual frames (png, jpg, tif).
	Compression string

	// Quality is the image compression quality, 1-100.
	Quality int

	// IndexFromZero numbers frames from zero instead of the start frame.
	// Required by sequential-input encoders.
	IndexFromZero bool

	// FramePadding is the zero-padding width of the frame number.
	FramePadding int

	// ShowOrnaments bakes viewport overlays (grid, HUD) into the capture.
	ShowOrnaments bool

	// Viewer opens the capture result in the host's default viewer.
	Viewer bool
}

// AudioTrack describes the audio source linked to the host's time slider.
type AudioTrack struct {
	// FilePath is the backing audio file.
	FilePath string
	// FrameOffset is the frame at which the audio starts.
	FrameOffset float64
}

// Host abstracts the authoring application the playblast runs inside.
// Implementations exist per host; tests use the mock in pkg/mocks and the
// CLI ships a headless-browser demo host.
type Host interface {
	// ListCameras returns the names of all cameras in the scene.
	ListCameras() ([]string, error)

	// ActiveViewport returns the identifier of the focused viewport panel.
	// An error means no viewport is active.
	ActiveViewport() (string, error)

	// ActiveCamera returns the camera the given viewport looks through.
	ActiveCamera(viewport string) (string, error)

	// SetActiveCamera points the given viewport at a camera.
	SetActiveCamera(viewport, camera string) error

	// ViewportVisibility returns the per-category visibility of a viewport
	// as a bool vector aligned with catalog.Entries.
	ViewportVisibility(viewport string) ([]bool, error)

	// SetViewportVisibility applies a catalog-aligned visibility vector to
	// a viewport.
	SetViewportVisibility(viewport string, visibility []bool) error

	// CurrentTimeUnit returns the host's time unit name (film, ntsc, ...)
	// or a literal "<rate>fps" string.
	CurrentTimeUnit() (string, error)

	// PlaybackRange returns the current playback slider bounds.
	PlaybackRange() (start, end float64, err error)

	// AnimationRange returns the full animation range bounds.
	AnimationRange() (start, end float64, err error)

	// RenderFrameRange returns the render-globals frame range.
	RenderFrameRange() (start, end float64, err error)

	// RenderResolution returns the render-globals output resolution.
	RenderResolution() (width, height int, err error)

	// SceneName returns the current scene's base name, or "" if unsaved.
	SceneName() string

	// ProjectRoot returns the root directory of the current project.
	ProjectRoot() string

	// Preference returns a persisted string preference.
	Preference(name string) (value string, ok bool)

	// SetPreference stores a string preference across sessions.
	SetPreference(name, value string) error

	// Capture runs the host's frame-capture primitive.
	Capture(opts CaptureOptions) error

	// AudioTrack returns the audio source linked to the time slider, or nil
	// when none is linked.
	AudioTrack() (*AudioTrack, error)

	// ProcessEvents services the host's UI event queue once. Long waits on
	// external processes call this in a loop to keep the host responsive.
	ProcessEvents()
}
