// Package settings holds the capture configuration and resolves presets to
// concrete values at the moment of use.
package settings

import (
	"fmt"
	"strings"

	"github.com/user/playblast/pkg/catalog"
	"github.com/user/playblast/pkg/ports"
)

// Container formats.
const (
	ContainerMOV = "mov"
	ContainerMP4 = "mp4"
	// ContainerImage keeps the capture as an image sequence on disk, no
	// encoding pass.
	ContainerImage = "Image"
)

// Resolution presets. RenderPreset reads the host render globals; the HD
// presets are fixed pixel sizes.
const RenderPreset = "Render"

var resolutionPresets = map[string][2]int{
	"HD 1080": {1920, 1080},
	"HD 720":  {1280, 720},
	"HD 540":  {960, 540},
}

// Frame range presets.
var frameRangePresets = []string{"Render", "Playback", "Animation"}

// videoCodecs is the fixed container/codec compatibility table.
var videoCodecs = map[string][]string{
	ContainerMOV:   {"h264"},
	ContainerMP4:   {"h264"},
	ContainerImage: {"jpg", "png", "tif"},
}

// h264Qualities maps quality names to x264 CRF values.
var h264Qualities = map[string]int{
	"Very high": 18,
	"High":      20,
	"Medium":    23,
	"Low":       26,
}

var h264Presets = []string{"veryslow", "slow", "medium", "fast", "faster", "ultrafast"}

// Defaults for a fresh session.
const (
	DefaultContainer    = ContainerMP4
	DefaultCodec        = "h264"
	DefaultH264Quality  = "High"
	DefaultH264Preset   = "fast"
	DefaultImageQuality = 100
	DefaultResolution   = RenderPreset
	DefaultFrameRange   = RenderPreset
)

// FFmpegPathPreference is the host preference key the encoder path persists
// under across sessions.
const FFmpegPathPreference = "PlayblastFFmpegPath"

// Settings is the mutable capture configuration. Setters validate their
// input and leave the previous valid state unchanged on error; interactive
// callers log the returned error and carry on, which preserves the
// never-raise contract while keeping failures inspectable.
//
// Presets are stored by name and resolved against the host on every read,
// never cached in resolved form.
type Settings struct {
	host ports.Host

	ffmpegPath string

	camera string

	resolutionPreset string
	width, height    int

	frameRangePreset     string
	startFrame, endFrame int

	container string
	codec     string

	h264Quality string
	h264Preset  string

	imageQuality int

	// visibility is nil when unset, meaning "snapshot the live viewport".
	visibility []bool
}

// New creates Settings with session defaults against the given host.
func New(host ports.Host) *Settings {
	return &Settings{
		host:             host,
		resolutionPreset: DefaultResolution,
		frameRangePreset: DefaultFrameRange,
		container:        DefaultContainer,
		codec:            DefaultCodec,
		h264Quality:      DefaultH264Quality,
		h264Preset:       DefaultH264Preset,
		imageQuality:     DefaultImageQuality,
	}
}

// SetFFmpegPath stores the external encoder binary path. An empty path is
// accepted here; it fails validation at execute time instead.
func (s *Settings) SetFFmpegPath(path string) {
	s.ffmpegPath = path
}

// FFmpegPath returns the configured encoder binary path.
func (s *Settings) FFmpegPath() string {
	return s.ffmpegPath
}

// LoadFFmpegPathPreference restores the encoder path persisted in the host.
func (s *Settings) LoadFFmpegPathPreference() {
	if path, ok := s.host.Preference(FFmpegPathPreference); ok && path != "" {
		s.ffmpegPath = path
	}
}

// SaveFFmpegPathPreference persists the encoder path in the host.
func (s *Settings) SaveFFmpegPathPreference() error {
	return s.host.SetPreference(FFmpegPathPreference, s.ffmpegPath)
}

// SetCamera selects the capture camera. An empty name means "use whatever
// camera the active viewport looks through at execute time".
func (s *Settings) SetCamera(name string) error {
	if name == "" {
		s.camera = ""
		return nil
	}

	cameras, err := s.host.ListCameras()
	if err != nil {
		return fmt.Errorf("list cameras: %w", err)
	}
	for _, c := range cameras {
		if c == name {
			s.camera = name
			return nil
		}
	}
	return fmt.Errorf("camera does not exist: %s", name)
}

// Camera returns the configured camera name, or "" for the active one.
func (s *Settings) Camera() string {
	return s.camera
}

// SetResolutionPreset selects a named resolution preset.
func (s *Settings) SetResolutionPreset(name string) error {
	if name != RenderPreset {
		if _, ok := resolutionPresets[name]; !ok {
			return fmt.Errorf("invalid resolution preset: %s. Expected one of %s",
				name, strings.Join(ResolutionPresetNames(), ", "))
		}
	}
	s.resolutionPreset = name
	s.width, s.height = 0, 0
	return nil
}

// SetResolution stores an explicit pixel resolution.
func (s *Settings) SetResolution(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid resolution: (%d, %d). Values must be greater than zero", width, height)
	}
	s.resolutionPreset = ""
	s.width, s.height = width, height
	return nil
}

// Resolution resolves the configured resolution to concrete pixel values.
// Presets are looked up at call time so render-globals edits are picked up.
func (s *Settings) Resolution() (width, height int, err error) {
	switch {
	case s.resolutionPreset == RenderPreset:
		return s.host.RenderResolution()
	case s.resolutionPreset != "":
		wh, ok := resolutionPresets[s.resolutionPreset]
		if !ok {
			return 0, 0, fmt.Errorf("invalid resolution preset: %s", s.resolutionPreset)
		}
		return wh[0], wh[1], nil
	default:
		return s.width, s.height, nil
	}
}

// ResolutionPresetNames returns the resolution preset names, largest first.
func ResolutionPresetNames() []string {
	return []string{RenderPreset, "HD 1080", "HD 720", "HD 540"}
}

// SetFrameRangePreset selects a named frame range preset.
func (s *Settings) SetFrameRangePreset(name string) error {
	for _, p := range frameRangePresets {
		if p == name {
			s.frameRangePreset = name
			return nil
		}
	}
	return fmt.Errorf("invalid frame range preset: %s. Expected one of %s",
		name, strings.Join(frameRangePresets, ", "))
}

// SetFrameRange stores an explicit start/end frame pair.
func (s *Settings) SetFrameRange(start, end int) error {
	if end < start {
		return fmt.Errorf("invalid frame range: (%d, %d). End frame must not precede start frame", start, end)
	}
	s.frameRangePreset = ""
	s.startFrame, s.endFrame = start, end
	return nil
}

// FrameRange resolves the configured frame range. Preset bounds read from
// the host are integer-truncated.
func (s *Settings) FrameRange() (start, end int, err error) {
	var fstart, fend float64
	switch s.frameRangePreset {
	case "":
		return s.startFrame, s.endFrame, nil
	case "Render":
		fstart, fend, err = s.host.RenderFrameRange()
	case "Playback":
		fstart, fend, err = s.host.PlaybackRange()
	case "Animation":
		fstart, fend, err = s.host.AnimationRange()
	default:
		return 0, 0, fmt.Errorf("invalid frame range preset: %s", s.frameRangePreset)
	}
	if err != nil {
		return 0, 0, err
	}
	return int(fstart), int(fend), nil
}

// FrameRangePresetNames returns the frame range preset names.
func FrameRangePresetNames() []string {
	return append([]string(nil), frameRangePresets...)
}

// SetVisibilityPreset selects a named visibility preset. "Viewport" clears
// any stored vector so the live viewport is snapshotted at resolve time.
func (s *Settings) SetVisibilityPreset(name string) error {
	vector, err := catalog.ExpandPreset(name)
	if err != nil {
		return err
	}
	s.visibility = vector
	return nil
}

// SetVisibility stores an explicit catalog-aligned visibility vector.
func (s *Settings) SetVisibility(visibility []bool) error {
	if len(visibility) != catalog.Len() {
		return fmt.Errorf("invalid visibility vector: got %d entries, want %d", len(visibility), catalog.Len())
	}
	s.visibility = append([]bool(nil), visibility...)
	return nil
}

// ClearVisibility reverts to the implicit "Viewport" behavior.
func (s *Settings) ClearVisibility() {
	s.visibility = nil
}

// Visibility resolves the visibility vector. When nothing is configured the
// live viewport's current per-category flags are snapshotted, so repeated
// calls track the viewport.
func (s *Settings) Visibility(viewport string) ([]bool, error) {
	if s.visibility == nil {
		return s.host.ViewportVisibility(viewport)
	}
	return append([]bool(nil), s.visibility...), nil
}

// SetEncoding selects the container format and codec. Invalid pairs are
// rejected as a whole; the previously accepted pair stays in effect.
func (s *Settings) SetEncoding(container, codec string) error {
	codecs, ok := videoCodecs[container]
	if !ok {
		return fmt.Errorf("invalid container: %s. Expected one of %s",
			container, strings.Join(ContainerNames(), ", "))
	}
	for _, c := range codecs {
		if c == codec {
			s.container = container
			s.codec = codec
			return nil
		}
	}
	return fmt.Errorf("invalid encoder: %s. Expected one of %s for container %s",
		codec, strings.Join(codecs, ", "), container)
}

// Container returns the configured container format.
func (s *Settings) Container() string {
	return s.container
}

// Codec returns the configured codec.
func (s *Settings) Codec() string {
	return s.codec
}

// ContainerNames returns the known container formats in a stable order.
func ContainerNames() []string {
	return []string{ContainerMOV, ContainerMP4, ContainerImage}
}

// CodecsFor returns the codecs valid for a container.
func CodecsFor(container string) []string {
	return append([]string(nil), videoCodecs[container]...)
}

// RequiresEncoder reports whether the configured container needs the
// external encoder pass.
func (s *Settings) RequiresEncoder() bool {
	return s.container != ContainerImage
}

// SetH264Settings selects the x264 quality name and speed preset.
func (s *Settings) SetH264Settings(quality, preset string) error {
	if _, ok := h264Qualities[quality]; !ok {
		return fmt.Errorf("invalid h264 quality: %s. Expected one of %s",
			quality, strings.Join(H264QualityNames(), ", "))
	}
	valid := false
	for _, p := range h264Presets {
		if p == preset {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid h264 preset: %s. Expected one of %s",
			preset, strings.Join(h264Presets, ", "))
	}
	s.h264Quality = quality
	s.h264Preset = preset
	return nil
}

// H264Quality returns the configured quality name.
func (s *Settings) H264Quality() string {
	return s.h264Quality
}

// H264Preset returns the configured speed preset.
func (s *Settings) H264Preset() string {
	return s.h264Preset
}

// CRF returns the x264 CRF value for the configured quality.
func (s *Settings) CRF() int {
	return h264Qualities[s.h264Quality]
}

// H264QualityNames returns quality names ordered best to worst.
func H264QualityNames() []string {
	return []string{"Very high", "High", "Medium", "Low"}
}

// H264PresetNames returns the speed preset names slowest to fastest.
func H264PresetNames() []string {
	return append([]string(nil), h264Presets...)
}

// SetImageQuality sets the frame compression quality for image-sequence
// output.
func (s *Settings) SetImageQuality(quality int) error {
	if quality <= 0 || quality > 100 {
		return fmt.Errorf("invalid image quality: %d. Expected a value between 1 and 100", quality)
	}
	s.imageQuality = quality
	return nil
}

// ImageQuality returns the frame compression quality.
func (s *Settings) ImageQuality() int {
	return s.imageQuality
}
