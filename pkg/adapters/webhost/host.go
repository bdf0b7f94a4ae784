// Package webhost implements ports.Host on top of a headless browser. It
// renders a procedural demo scene in Chrome and captures viewport frames as
// image files, so the full playblast pipeline can run without an authoring
// application attached.
package webhost

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"golang.org/x/image/tiff"

	"github.com/user/playblast/pkg/catalog"
	"github.com/user/playblast/pkg/ports"
)

// ViewportName identifies the single viewport panel the demo host exposes.
const ViewportName = "webPanel1"

// Options configures the demo host.
type Options struct {
	// ChromePath is an explicit Chrome/Chromium executable. Empty means
	// CHROME_PATH then system defaults.
	ChromePath string

	// Width and Height are the viewport dimensions in pixels.
	Width  int
	Height int

	// TimeUnit is the reported time unit (film, ntsc, "29.97fps", ...).
	TimeUnit string

	// PlaybackStart and PlaybackEnd bound the playback range.
	PlaybackStart float64
	PlaybackEnd   float64

	// AnimationStart and AnimationEnd bound the full animation range.
	AnimationStart float64
	AnimationEnd   float64

	// RenderStart and RenderEnd bound the render frame range.
	RenderStart float64
	RenderEnd   float64

	// SceneName is the reported scene base name. Empty means unsaved.
	SceneName string

	// ProjectRoot is the reported project directory.
	ProjectRoot string

	// AudioFile and AudioFrameOffset describe a linked audio track. An
	// empty AudioFile means no audio.
	AudioFile        string
	AudioFrameOffset float64

	// Preferences seeds the persisted-preference store.
	Preferences map[string]string
}

func (o *Options) applyDefaults() {
	if o.Width <= 0 {
		o.Width = 1920
	}
	if o.Height <= 0 {
		o.Height = 1080
	}
	if o.TimeUnit == "" {
		o.TimeUnit = "film"
	}
	if o.PlaybackEnd <= o.PlaybackStart {
		o.PlaybackStart, o.PlaybackEnd = 1, 48
	}
	if o.AnimationEnd <= o.AnimationStart {
		o.AnimationStart, o.AnimationEnd = 1, 120
	}
	if o.RenderEnd <= o.RenderStart {
		o.RenderStart, o.RenderEnd = o.PlaybackStart, o.PlaybackEnd
	}
	if o.ProjectRoot == "" {
		o.ProjectRoot, _ = os.Getwd()
	}
}

// Host is a ports.Host backed by a headless Chrome page.
type Host struct {
	opts Options

	allocCtx    context.Context
	allocCancel context.CancelFunc
	ctx         context.Context
	cancel      context.CancelFunc

	// pagePath is the scene page written to the OS temp dir by Launch and
	// removed by Close.
	pagePath string

	mu         sync.Mutex
	camera     string
	visibility []bool
	prefs      map[string]string
}

// New creates a demo host. Launch must be called before capturing.
func New(opts Options) *Host {
	opts.applyDefaults()

	visibility := make([]bool, catalog.Len())
	for i := range visibility {
		visibility[i] = true
	}

	prefs := make(map[string]string, len(opts.Preferences))
	for k, v := range opts.Preferences {
		prefs[k] = v
	}

	return &Host{
		opts:       opts,
		camera:     defaultCamera,
		visibility: visibility,
		prefs:      prefs,
	}
}

// Launch starts the headless browser and loads the demo scene.
func (h *Host) Launch(ctx context.Context) error {
	chromedpOpts := []chromedp.ExecAllocatorOption{
		chromedp.NoFirstRun,
		chromedp.NoDefaultBrowserCheck,
		chromedp.Flag("headless", "new"),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("hide-scrollbars", true),
		chromedp.Flag("mute-audio", true),
	}

	chromePath := ResolveChromePath(h.opts.ChromePath)
	if chromePath == "" {
		return fmt.Errorf("chrome not found: install Chrome/Chromium, set CHROME_PATH, or use --chrome-path")
	}
	chromedpOpts = append(chromedpOpts, chromedp.ExecPath(chromePath))

	h.allocCtx, h.allocCancel = chromedp.NewExecAllocator(ctx, chromedpOpts...)
	h.ctx, h.cancel = chromedp.NewContext(h.allocCtx)

	h.pagePath = filepath.Join(os.TempDir(), fmt.Sprintf("playblast_scene_%d.html", os.Getpid()))
	if err := os.WriteFile(h.pagePath, []byte(scenePage), 0644); err != nil {
		return fmt.Errorf("write scene page: %w", err)
	}

	if err := chromedp.Run(h.ctx,
		chromedp.EmulateViewport(int64(h.opts.Width), int64(h.opts.Height)),
		chromedp.Navigate("file://"+h.pagePath),
		chromedp.WaitReady("body"),
	); err != nil {
		return fmt.Errorf("load scene: %w", err)
	}

	return nil
}

// Close shuts down the browser and removes the scene page file.
func (h *Host) Close() error {
	if h.cancel != nil {
		h.cancel()
		time.Sleep(100 * time.Millisecond)
	}
	if h.allocCancel != nil {
		h.allocCancel()
	}
	if h.pagePath != "" {
		os.Remove(h.pagePath)
		h.pagePath = ""
	}
	return nil
}

// ListCameras returns the demo scene's camera presets.
func (h *Host) ListCameras() ([]string, error) {
	names := make([]string, 0, len(cameraPresets))
	for name := range cameraPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// ActiveViewport returns the single demo viewport.
func (h *Host) ActiveViewport() (string, error) {
	return ViewportName, nil
}

// ActiveCamera returns the camera the viewport looks through.
func (h *Host) ActiveCamera(viewport string) (string, error) {
	if viewport != ViewportName {
		return "", fmt.Errorf("unknown viewport: %s", viewport)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.camera, nil
}

// SetActiveCamera points the viewport at a camera preset.
func (h *Host) SetActiveCamera(viewport, camera string) error {
	if viewport != ViewportName {
		return fmt.Errorf("unknown viewport: %s", viewport)
	}
	if _, ok := cameraPresets[camera]; !ok {
		return fmt.Errorf("unknown camera: %s", camera)
	}

	h.mu.Lock()
	h.camera = camera
	h.mu.Unlock()

	return h.eval(fmt.Sprintf("window.__scene.setCamera(%q)", camera))
}

// ViewportVisibility returns the current visibility vector.
func (h *Host) ViewportVisibility(viewport string) ([]bool, error) {
	if viewport != ViewportName {
		return nil, fmt.Errorf("unknown viewport: %s", viewport)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]bool, len(h.visibility))
	copy(out, h.visibility)
	return out, nil
}

// SetViewportVisibility applies a visibility vector. Only the categories the
// demo scene actually draws take effect; the rest are stored and reported
// back unchanged.
func (h *Host) SetViewportVisibility(viewport string, visibility []bool) error {
	if viewport != ViewportName {
		return fmt.Errorf("unknown viewport: %s", viewport)
	}
	if len(visibility) != catalog.Len() {
		return fmt.Errorf("visibility vector has %d entries, want %d", len(visibility), catalog.Len())
	}

	h.mu.Lock()
	copy(h.visibility, visibility)
	h.mu.Unlock()

	for label, key := range sceneLayers {
		idx := catalogIndex(label)
		if idx < 0 {
			continue
		}
		if err := h.eval(fmt.Sprintf("window.__scene.setLayer(%q, %t)", key, visibility[idx])); err != nil {
			return err
		}
	}
	return nil
}

// CurrentTimeUnit returns the configured time unit.
func (h *Host) CurrentTimeUnit() (string, error) {
	return h.opts.TimeUnit, nil
}

// PlaybackRange returns the configured playback bounds.
func (h *Host) PlaybackRange() (float64, float64, error) {
	return h.opts.PlaybackStart, h.opts.PlaybackEnd, nil
}

// AnimationRange returns the configured animation bounds.
func (h *Host) AnimationRange() (float64, float64, error) {
	return h.opts.AnimationStart, h.opts.AnimationEnd, nil
}

// RenderFrameRange returns the configured render bounds.
func (h *Host) RenderFrameRange() (float64, float64, error) {
	return h.opts.RenderStart, h.opts.RenderEnd, nil
}

// RenderResolution returns the configured viewport resolution.
func (h *Host) RenderResolution() (int, int, error) {
	return h.opts.Width, h.opts.Height, nil
}

// SceneName returns the configured scene name.
func (h *Host) SceneName() string {
	return h.opts.SceneName
}

// ProjectRoot returns the configured project directory.
func (h *Host) ProjectRoot() string {
	return h.opts.ProjectRoot
}

// Preference returns a stored preference value.
func (h *Host) Preference(name string) (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	v, ok := h.prefs[name]
	return v, ok
}

// SetPreference stores a preference value for the session.
func (h *Host) SetPreference(name, value string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.prefs[name] = value
	return nil
}

// Capture renders each frame of the range and writes it as an image file.
func (h *Host) Capture(opts ports.CaptureOptions) error {
	if h.ctx == nil {
		return fmt.Errorf("host not launched")
	}
	if opts.EndFrame < opts.StartFrame {
		return fmt.Errorf("end frame %d before start frame %d", opts.EndFrame, opts.StartFrame)
	}

	ext := opts.Compression
	if ext == "" {
		ext = "png"
	}

	width, height := opts.Width, opts.Height
	if opts.Percent > 0 && opts.Percent != 100 {
		width = width * opts.Percent / 100
		height = height * opts.Percent / 100
	}
	if err := chromedp.Run(h.ctx, chromedp.EmulateViewport(int64(width), int64(height))); err != nil {
		return fmt.Errorf("set viewport size: %w", err)
	}

	if err := h.eval(fmt.Sprintf("window.__scene.setOrnaments(%t)", opts.ShowOrnaments)); err != nil {
		return err
	}

	padding := opts.FramePadding
	if padding <= 0 {
		padding = 4
	}

	for frame := opts.StartFrame; frame <= opts.EndFrame; frame++ {
		index := frame
		if opts.IndexFromZero {
			index = frame - opts.StartFrame
		}
		path := fmt.Sprintf("%s.%0*d.%s", opts.Filename, padding, index, ext)

		if !opts.ForceOverwrite {
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("frame file already exists: %s", path)
			}
		}

		buf, err := h.screenshot(frame, ext, opts.Quality)
		if err != nil {
			return fmt.Errorf("capture frame %d: %w", frame, err)
		}

		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("create frame directory: %w", err)
		}
		if err := os.WriteFile(path, buf, 0644); err != nil {
			return fmt.Errorf("write frame %d: %w", frame, err)
		}
	}

	return nil
}

// screenshot advances the scene to a frame and grabs the viewport in the
// requested encoding. Chrome emits png and jpeg natively; tif is re-encoded
// from a png grab.
func (h *Host) screenshot(frame int, ext string, quality int) ([]byte, error) {
	params := page.CaptureScreenshot()
	switch ext {
	case "jpg":
		params = params.WithFormat(page.CaptureScreenshotFormatJpeg).WithQuality(int64(quality))
	default:
		params = params.WithFormat(page.CaptureScreenshotFormatPng)
	}

	var buf []byte
	err := chromedp.Run(h.ctx,
		chromedp.Evaluate(fmt.Sprintf("window.__scene.setFrame(%d)", frame), nil),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			buf, err = params.Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}

	if ext == "tif" {
		return encodeTIFF(buf)
	}
	return buf, nil
}

func encodeTIFF(pngData []byte) ([]byte, error) {
	img, err := png.Decode(bytes.NewReader(pngData))
	if err != nil {
		return nil, fmt.Errorf("decode frame: %w", err)
	}
	var out bytes.Buffer
	if err := tiff.Encode(&out, img, &tiff.Options{Compression: tiff.Deflate}); err != nil {
		return nil, fmt.Errorf("encode tiff: %w", err)
	}
	return out.Bytes(), nil
}

// AudioTrack returns the configured audio source, or nil when none is set.
func (h *Host) AudioTrack() (*ports.AudioTrack, error) {
	if h.opts.AudioFile == "" {
		return nil, nil
	}
	return &ports.AudioTrack{
		FilePath:    h.opts.AudioFile,
		FrameOffset: h.opts.AudioFrameOffset,
	}, nil
}

// ProcessEvents is a no-op. The browser runs its own event loop.
func (h *Host) ProcessEvents() {}

func (h *Host) eval(expr string) error {
	if h.ctx == nil {
		return nil
	}
	if err := chromedp.Run(h.ctx, chromedp.Evaluate(expr, nil)); err != nil {
		return fmt.Errorf("evaluate %s: %w", expr, err)
	}
	return nil
}

// catalogIndex returns the catalog position of a label, or -1.
func catalogIndex(label string) int {
	for i, entry := range catalog.Entries {
		if strings.EqualFold(entry.Label, label) {
			return i
		}
	}
	return -1
}

// Ensure Host implements ports.Host
var _ ports.Host = (*Host)(nil)
