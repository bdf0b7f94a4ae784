// Package orchestrator drives the end-to-end playblast: precondition
// checks, the viewport state transaction around the capture primitive, and
// the encode/cleanup/viewer steps afterwards.
package orchestrator

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/user/playblast/pkg/encoder"
	"github.com/user/playblast/pkg/ports"
	"github.com/user/playblast/pkg/settings"
)

// DefaultPadding is the frame-number padding used when the caller passes
// zero or a negative value.
const DefaultPadding = 4

// tempDirName is the subdirectory holding intermediate frames while a video
// container is being produced.
const tempDirName = "playblast_temp"

// QuicktimePreference is the host preference naming an external player to
// open mov/mp4 artifacts with instead of the platform default.
const QuicktimePreference = "PlayblastCmdQuicktime"

// sceneFallback substitutes for {scene} when the scene was never saved.
const sceneFallback = "untitled"

// Options are the per-run parameters of Execute.
type Options struct {
	// OutputDir is the destination directory. {project} expands to the
	// host's project root.
	OutputDir string
	// Filename is the artifact base name. {scene} expands to the current
	// scene name.
	Filename string
	// Padding is the frame-number width; values <= 0 fall back to
	// DefaultPadding.
	Padding int
	// ShowOrnaments bakes viewport overlays into the capture.
	ShowOrnaments bool
	// ShowInViewer opens the finished artifact.
	ShowInViewer bool
	// Overwrite replaces an existing artifact at the output path.
	Overwrite bool
}

// Phase is the orchestrator's current position in a run.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseValidating
	PhaseCapturingFrames
	PhaseEncodingVideo
	PhaseCleanup
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseValidating:
		return "validating"
	case PhaseCapturingFrames:
		return "capturing"
	case PhaseEncodingVideo:
		return "encoding"
	case PhaseCleanup:
		return "cleanup"
	default:
		return "unknown"
	}
}

// ViewportState is the viewport configuration saved before a capture and
// restored afterwards: the camera the viewport looks through and the
// catalog-aligned visibility vector. It is passed around explicitly so the
// save/apply/restore transaction has no hidden state.
type ViewportState struct {
	Camera     string
	Visibility []bool
}

// VideoEncoder runs the external encode pass over a captured sequence.
type VideoEncoder interface {
	Encode(ctx context.Context, job encoder.Job) error
}

// ArtifactProber describes a finished video artifact for the log stream.
// Optional; a nil prober skips the description.
type ArtifactProber interface {
	Describe(path string) (string, error)
}

// Orchestrator coordinates one playblast at a time against a single host
// viewport. Invocation is synchronous; the viewport is exclusively owned
// for the duration of Execute.
type Orchestrator struct {
	settings *settings.Settings
	host     ports.Host
	fs       ports.FileSystem
	encoder  VideoEncoder
	viewer   ports.Viewer
	prober   ArtifactProber
	logger   ports.Logger

	phase Phase
}

// New creates an Orchestrator. prober may be nil.
func New(
	s *settings.Settings,
	host ports.Host,
	fs ports.FileSystem,
	enc VideoEncoder,
	viewer ports.Viewer,
	prober ArtifactProber,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		settings: s,
		host:     host,
		fs:       fs,
		encoder:  enc,
		viewer:   viewer,
		prober:   prober,
		logger:   logger,
	}
}

// Phase returns the orchestrator's current phase.
func (o *Orchestrator) Phase() Phase {
	return o.phase
}

// Execute runs one playblast. Every failure is reported on the log stream;
// the returned error carries the same information for non-interactive
// callers. The viewport's camera and visibility are restored on all paths
// once they have been touched.
func (o *Orchestrator) Execute(ctx context.Context, opts Options) error {
	err := o.run(ctx, opts)
	if err != nil {
		o.logger.Error("%s", err)
	}
	return err
}

func (o *Orchestrator) run(ctx context.Context, opts Options) error {
	o.phase = PhaseValidating
	defer func() { o.phase = PhaseIdle }()

	if o.settings.RequiresEncoder() {
		if err := o.validateFFmpeg(); err != nil {
			return err
		}
	}

	viewport, err := o.host.ActiveViewport()
	if err != nil {
		return fmt.Errorf("an active viewport is not selected, select a viewport and retry: %w", err)
	}

	outputDir := o.resolveOutputDir(opts.OutputDir)
	if outputDir == "" {
		return fmt.Errorf("output directory path not set")
	}
	filename := o.resolveFilename(opts.Filename)
	if filename == "" {
		return fmt.Errorf("output file name not set")
	}

	padding := opts.Padding
	if padding <= 0 {
		padding = DefaultPadding
	}

	requiresEncoder := o.settings.RequiresEncoder()

	var artifactPath, tempDir, captureTarget string
	var forceOverwrite, indexFromZero, captureViewer bool
	var compression string
	var quality int

	if requiresEncoder {
		artifactPath = filepath.Join(outputDir, filename+"."+o.settings.Container())
		exists, err := o.fs.Exists(artifactPath)
		if err != nil {
			return fmt.Errorf("check output file: %w", err)
		}
		if exists && !opts.Overwrite {
			return fmt.Errorf("output file already exists, enable overwrite to replace it: %s", artifactPath)
		}

		tempDir = filepath.Join(outputDir, tempDirName)
		if err := o.fs.MkdirAll(tempDir); err != nil {
			return fmt.Errorf("create temporary directory: %w", err)
		}
		captureTarget = filepath.Join(tempDir, filename)

		// Intermediate frames are always regenerable, so they are force
		// overwritten and captured as max-quality png regardless of the
		// image settings. Zero-based numbering matches the sequential
		// input pattern handed to ffmpeg.
		forceOverwrite = true
		compression = "png"
		quality = 100
		indexFromZero = true
		captureViewer = false
	} else {
		if err := o.fs.MkdirAll(outputDir); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
		captureTarget = filepath.Join(outputDir, filename)
		forceOverwrite = opts.Overwrite
		compression = o.settings.Codec()
		quality = o.settings.ImageQuality()
		indexFromZero = false
		captureViewer = opts.ShowInViewer
	}

	width, height, err := o.settings.Resolution()
	if err != nil {
		return fmt.Errorf("resolve resolution: %w", err)
	}
	startFrame, endFrame, err := o.settings.FrameRange()
	if err != nil {
		return fmt.Errorf("resolve frame range: %w", err)
	}

	captureOpts := ports.CaptureOptions{
		Filename:       captureTarget,
		Width:          width,
		Height:         height,
		Percent:        100,
		StartFrame:     startFrame,
		EndFrame:       endFrame,
		ClearCache:     true,
		ForceOverwrite: forceOverwrite,
		Format:         "image",
		Compression:    compression,
		Quality:        quality,
		IndexFromZero:  indexFromZero,
		FramePadding:   padding,
		ShowOrnaments:  opts.ShowOrnaments,
		Viewer:         captureViewer,
	}
	o.logger.Debug("playblast options: %+v", captureOpts)

	captureErr := o.captureWithViewportTransaction(viewport, captureOpts)
	if captureErr != nil {
		return captureErr
	}

	if !requiresEncoder {
		o.logger.Info("Playblast written to %s", captureTarget)
		return nil
	}

	o.phase = PhaseEncodingVideo
	encodeErr := o.encodeSequence(ctx, tempDir, filename, padding, artifactPath, startFrame)

	o.phase = PhaseCleanup
	o.removeTempDir(tempDir)

	if encodeErr != nil {
		return encodeErr
	}

	o.logger.Info("Playblast written to %s", artifactPath)
	o.describeArtifact(artifactPath)

	if opts.ShowInViewer {
		o.openInViewer(artifactPath)
	}
	return nil
}

// captureWithViewportTransaction saves the viewport state, applies the
// capture camera and visibility, invokes the capture primitive, and restores
// the saved state whether or not the capture succeeded.
func (o *Orchestrator) captureWithViewportTransaction(viewport string, captureOpts ports.CaptureOptions) error {
	saved, err := o.saveViewportState(viewport)
	if err != nil {
		return err
	}

	camera := o.settings.Camera()
	if camera == "" {
		camera = saved.Camera
	}
	if err := o.requireCamera(camera); err != nil {
		return err
	}

	visibility, err := o.settings.Visibility(viewport)
	if err != nil {
		return fmt.Errorf("resolve visibility: %w", err)
	}

	if err := o.applyViewportState(viewport, ViewportState{Camera: camera, Visibility: visibility}); err != nil {
		// Nothing was captured; put the viewport back before bailing.
		o.restoreViewportState(viewport, saved)
		return err
	}

	o.phase = PhaseCapturingFrames
	captureErr := o.host.Capture(captureOpts)

	o.restoreViewportState(viewport, saved)

	if captureErr != nil {
		return fmt.Errorf("failed to create playblast: %w", captureErr)
	}
	return nil
}

func (o *Orchestrator) saveViewportState(viewport string) (ViewportState, error) {
	camera, err := o.host.ActiveCamera(viewport)
	if err != nil {
		return ViewportState{}, fmt.Errorf("get active camera: %w", err)
	}
	visibility, err := o.host.ViewportVisibility(viewport)
	if err != nil {
		return ViewportState{}, fmt.Errorf("get viewport visibility: %w", err)
	}
	return ViewportState{Camera: camera, Visibility: visibility}, nil
}

func (o *Orchestrator) applyViewportState(viewport string, state ViewportState) error {
	if err := o.host.SetActiveCamera(viewport, state.Camera); err != nil {
		return fmt.Errorf("set active camera: %w", err)
	}
	if err := o.host.SetViewportVisibility(viewport, state.Visibility); err != nil {
		return fmt.Errorf("set viewport visibility: %w", err)
	}
	return nil
}

// restoreViewportState is best effort: a failed restore is reported but
// never masks the capture outcome.
func (o *Orchestrator) restoreViewportState(viewport string, state ViewportState) {
	if err := o.applyViewportState(viewport, state); err != nil {
		o.logger.Warn("Failed to restore viewport state: %s", err)
	}
}

func (o *Orchestrator) requireCamera(camera string) error {
	cameras, err := o.host.ListCameras()
	if err != nil {
		return fmt.Errorf("list cameras: %w", err)
	}
	for _, c := range cameras {
		if c == camera {
			return nil
		}
	}
	return fmt.Errorf("camera does not exist: %s", camera)
}

func (o *Orchestrator) encodeSequence(ctx context.Context, tempDir, filename string, padding int, artifactPath string, startFrame int) error {
	codec := o.settings.Codec()
	if codec != "h264" {
		return fmt.Errorf("encoding failed, unsupported encoder (%s) for container (%s)", codec, o.settings.Container())
	}

	pattern := filepath.Join(tempDir, fmt.Sprintf("%s.%%0%dd.png", filename, padding))
	job := encoder.Job{
		FFmpegPath:   o.settings.FFmpegPath(),
		FramePattern: pattern,
		OutputPath:   artifactPath,
		StartFrame:   startFrame,
		CRF:          o.settings.CRF(),
		Preset:       o.settings.H264Preset(),
	}
	return o.encoder.Encode(ctx, job)
}

// validateFFmpeg checks the encoder binary is configured and points at a
// file. The path itself is a deferred setting, so this runs per execute.
func (o *Orchestrator) validateFFmpeg() error {
	path := o.settings.FFmpegPath()
	if path == "" {
		return fmt.Errorf("ffmpeg executable path not set")
	}
	exists, err := o.fs.Exists(path)
	if err != nil {
		return fmt.Errorf("check ffmpeg path: %w", err)
	}
	if !exists {
		return fmt.Errorf("ffmpeg executable path does not exist: %s", path)
	}
	isDir, err := o.fs.IsDir(path)
	if err != nil {
		return fmt.Errorf("check ffmpeg path: %w", err)
	}
	if isDir {
		return fmt.Errorf("invalid ffmpeg path: %s", path)
	}
	return nil
}

func (o *Orchestrator) resolveOutputDir(dir string) string {
	if strings.Contains(dir, "{project}") {
		dir = strings.ReplaceAll(dir, "{project}", o.host.ProjectRoot())
	}
	return dir
}

func (o *Orchestrator) resolveFilename(filename string) string {
	if strings.Contains(filename, "{scene}") {
		scene := o.host.SceneName()
		if scene == "" {
			scene = sceneFallback
		}
		filename = strings.ReplaceAll(filename, "{scene}", scene)
	}
	return filename
}

// removeTempDir deletes the intermediate frame files and their directory.
// Failures are warnings; the artifact itself is already in place.
func (o *Orchestrator) removeTempDir(tempDir string) {
	frames, err := o.fs.List(tempDir, "*.png")
	if err != nil {
		o.logger.Warn("Failed to remove temporary directory: %s", tempDir)
		return
	}
	for _, frame := range frames {
		if err := o.fs.Remove(frame); err != nil {
			o.logger.Warn("Failed to remove temporary frame: %s", frame)
		}
	}
	if err := o.fs.Remove(tempDir); err != nil {
		o.logger.Warn("Failed to remove temporary directory: %s", tempDir)
	}
}

func (o *Orchestrator) describeArtifact(path string) {
	if o.prober == nil {
		return
	}
	desc, err := o.prober.Describe(path)
	if err != nil {
		o.logger.Debug("artifact probe failed: %s", err)
		return
	}
	o.logger.Info("%s", desc)
}

// openInViewer opens the artifact, preferring the player named by the
// QuicktimePreference host preference for mov/mp4 containers.
func (o *Orchestrator) openInViewer(path string) {
	exists, err := o.fs.Exists(path)
	if err != nil || !exists {
		o.logger.Error("Failed to open in viewer, file does not exist: %s", path)
		return
	}

	container := o.settings.Container()
	if container == settings.ContainerMOV || container == settings.ContainerMP4 {
		if player, ok := o.host.Preference(QuicktimePreference); ok && player != "" {
			if err := o.viewer.OpenWith(player, path); err != nil {
				o.logger.Warn("Failed to open %s with %s: %s", path, player, err)
			}
			return
		}
	}

	if err := o.viewer.Open(path); err != nil {
		o.logger.Warn("Failed to open %s in viewer: %s", path, err)
	}
}
