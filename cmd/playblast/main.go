// Package main provides the CLI entry point for playblast.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/playblast/pkg/adapters/execrunner"
	"github.com/user/playblast/pkg/adapters/logger"
	"github.com/user/playblast/pkg/adapters/mp4probe"
	"github.com/user/playblast/pkg/adapters/osfilesystem"
	"github.com/user/playblast/pkg/adapters/viewerapp"
	"github.com/user/playblast/pkg/adapters/webhost"
	"github.com/user/playblast/pkg/catalog"
	"github.com/user/playblast/pkg/config"
	"github.com/user/playblast/pkg/contactsheet"
	"github.com/user/playblast/pkg/encoder"
	"github.com/user/playblast/pkg/orchestrator"
	"github.com/user/playblast/pkg/ports"
	"github.com/user/playblast/pkg/settings"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:  "playblast",
		Usage: l10n.T("Capture viewport animation and encode it as video"),
		Commands: []*cli.Command{
			recordCommand(),
			presetsCommand(),
			versionCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func recordCommand() *cli.Command {
	return &cli.Command{
		Name:  "record",
		Usage: l10n.T("Record the demo scene as a playblast"),
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: l10n.T("Path to a YAML configuration file")},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: l10n.T("Output directory ({project} expands to the project root)")},
			&cli.StringFlag{Name: "filename", Aliases: []string{"f"}, Usage: l10n.T("Output file name ({scene} expands to the scene name)")},
			&cli.StringFlag{Name: "ffmpeg", Usage: l10n.T("Path to the ffmpeg executable")},
			&cli.StringFlag{Name: "camera", Usage: l10n.T("Camera to capture through (default: active viewport camera)")},
			&cli.StringFlag{Name: "resolution", Usage: l10n.T("Resolution preset (Render, HD 1080, HD 720, HD 540)")},
			&cli.IntFlag{Name: "width", Aliases: []string{"W"}, Usage: l10n.T("Explicit output width in pixels")},
			&cli.IntFlag{Name: "height", Aliases: []string{"H"}, Usage: l10n.T("Explicit output height in pixels")},
			&cli.StringFlag{Name: "frame-range", Usage: l10n.T("Frame range preset (Render, Playback, Animation)")},
			&cli.IntFlag{Name: "start", Usage: l10n.T("Explicit start frame")},
			&cli.IntFlag{Name: "end", Usage: l10n.T("Explicit end frame")},
			&cli.StringFlag{Name: "visibility", Usage: l10n.T("Visibility preset (Viewport, Geo, Dynamics)")},
			&cli.StringFlag{Name: "container", Usage: l10n.T("Container format (mov, mp4, Image)")},
			&cli.StringFlag{Name: "codec", Usage: l10n.T("Codec (h264 for video, jpg/png/tif for Image)")},
			&cli.StringFlag{Name: "h264-quality", Usage: l10n.T("H.264 quality (Very high, High, Medium, Low)")},
			&cli.StringFlag{Name: "h264-preset", Usage: l10n.T("H.264 speed preset (veryslow ... ultrafast)")},
			&cli.IntFlag{Name: "image-quality", Usage: l10n.T("Frame compression quality for Image output (1-100)")},
			&cli.IntFlag{Name: "padding", Usage: l10n.T("Frame number padding width")},
			&cli.BoolFlag{Name: "overwrite", Usage: l10n.T("Replace an existing output file")},
			&cli.BoolFlag{Name: "no-ornaments", Usage: l10n.T("Hide viewport overlays in the capture")},
			&cli.BoolFlag{Name: "viewer", Usage: l10n.T("Open the result when finished")},
			&cli.StringFlag{Name: "chrome-path", Usage: l10n.T("Path to Chrome executable (falls back to CHROME_PATH env, then system default)")},
			&cli.StringFlag{Name: "audio", Usage: l10n.T("Audio file linked to the timeline")},
			&cli.Float64Flag{Name: "audio-offset", Usage: l10n.T("Frame at which the audio starts")},
			&cli.StringFlag{Name: "contact-sheet", Usage: l10n.T("Write a frame-grid poster PNG to this path (Image container only)")},
			&cli.StringFlag{Name: "log-level", Aliases: []string{"l"}, Value: "info", Usage: l10n.T("Log level (debug, info, warn, error)")},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"Q"}, Usage: l10n.T("Suppress all log output")},
		},
		Action: runRecord,
	}
}

func runRecord(c *cli.Context) error {
	cfg, err := buildConfig(c)
	if err != nil {
		return err
	}

	var log ports.Logger
	if c.Bool("quiet") {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(c.String("log-level")))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn(l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	host := webhost.New(cfg.ToHostOptions())
	if err := host.Launch(ctx); err != nil {
		return err
	}
	defer host.Close()

	s := settings.New(host)
	if err := cfg.ApplySettings(s); err != nil {
		return err
	}

	// An explicit encoder path is persisted for later sessions; otherwise
	// the previously persisted one is restored.
	if s.FFmpegPath() == "" {
		s.LoadFFmpegPathPreference()
	} else if err := s.SaveFFmpegPathPreference(); err != nil {
		log.Warn(l10n.F("Failed to persist ffmpeg path: %s", err))
	}

	fs := osfilesystem.New()
	enc := encoder.New(host, fs, execrunner.New(), log)

	orch := orchestrator.New(s, host, fs, enc, viewerapp.New(), mp4probe.New(), log)

	if err := orch.Execute(ctx, cfg.ToOrchestratorOptions()); err != nil {
		return err
	}

	if cfg.ContactSheet.Enabled {
		if err := writeContactSheet(cfg, s, host, log); err != nil {
			log.Warn(l10n.F("Failed to write contact sheet: %s", err))
		}
	}

	return nil
}

// buildConfig loads the YAML configuration (or defaults) and applies CLI
// flag overrides.
func buildConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if c.IsSet("output") {
		cfg.OutputDir = c.String("output")
	}
	if c.IsSet("filename") {
		cfg.Filename = c.String("filename")
	}
	if c.IsSet("ffmpeg") {
		cfg.FFmpegPath = c.String("ffmpeg")
	}
	if c.IsSet("camera") {
		cfg.Camera = c.String("camera")
	}
	if c.IsSet("resolution") {
		cfg.ResolutionPreset = c.String("resolution")
		cfg.Width, cfg.Height = 0, 0
	}
	if c.IsSet("width") {
		cfg.Width = c.Int("width")
	}
	if c.IsSet("height") {
		cfg.Height = c.Int("height")
	}
	if c.IsSet("frame-range") {
		cfg.FrameRangePreset = c.String("frame-range")
		cfg.StartFrame, cfg.EndFrame = 0, 0
	}
	if c.IsSet("start") {
		cfg.StartFrame = c.Int("start")
	}
	if c.IsSet("end") {
		cfg.EndFrame = c.Int("end")
	}
	if c.IsSet("visibility") {
		cfg.VisibilityPreset = c.String("visibility")
	}
	if c.IsSet("container") {
		cfg.Container = c.String("container")
	}
	if c.IsSet("codec") {
		cfg.Codec = c.String("codec")
	}
	if c.IsSet("h264-quality") {
		cfg.H264Quality = c.String("h264-quality")
	}
	if c.IsSet("h264-preset") {
		cfg.H264Preset = c.String("h264-preset")
	}
	if c.IsSet("image-quality") {
		cfg.ImageQuality = c.Int("image-quality")
	}
	if c.IsSet("padding") {
		cfg.Padding = c.Int("padding")
	}
	if c.IsSet("overwrite") {
		cfg.Overwrite = c.Bool("overwrite")
	}
	if c.IsSet("no-ornaments") {
		cfg.ShowOrnaments = !c.Bool("no-ornaments")
	}
	if c.IsSet("viewer") {
		cfg.ShowInViewer = c.Bool("viewer")
	}
	if c.IsSet("chrome-path") {
		cfg.Host.ChromePath = c.String("chrome-path")
	}
	if c.IsSet("audio") {
		cfg.Host.AudioFile = c.String("audio")
	}
	if c.IsSet("audio-offset") {
		cfg.Host.AudioFrameOffset = c.Float64("audio-offset")
	}
	if c.IsSet("contact-sheet") {
		cfg.ContactSheet.Enabled = true
		cfg.ContactSheet.Output = c.String("contact-sheet")
	}

	if cfg.OutputDir == "" {
		cfg.OutputDir = "./playblast"
	}

	return cfg, nil
}

// writeContactSheet lays the captured frames out in a grid. Video containers
// delete their intermediate frames, so the sheet is only available for Image
// output.
func writeContactSheet(cfg config.Config, s *settings.Settings, host ports.Host, log ports.Logger) error {
	if s.RequiresEncoder() {
		return fmt.Errorf("contact sheet requires the Image container; frames for video output are not kept")
	}

	outputDir := strings.ReplaceAll(cfg.OutputDir, "{project}", host.ProjectRoot())
	scene := host.SceneName()
	if scene == "" {
		scene = "untitled"
	}
	filename := strings.ReplaceAll(cfg.Filename, "{scene}", scene)

	pattern := filepath.Join(outputDir, filename+".*."+s.Codec())
	output := cfg.ContactSheet.Output
	if output == "" {
		output = filepath.Join(outputDir, filename+"_sheet.png")
	}

	opts := contactsheet.DefaultOptions()
	if cfg.ContactSheet.Columns > 0 {
		opts.Columns = cfg.ContactSheet.Columns
	}
	if cfg.ContactSheet.ThumbWidth > 0 {
		opts.ThumbWidth = cfg.ContactSheet.ThumbWidth
	}
	opts.MaxFrames = cfg.ContactSheet.MaxFrames

	if err := contactsheet.Generate(pattern, output, opts); err != nil {
		return err
	}
	log.Info(l10n.F("Contact sheet saved to %s", output))
	return nil
}

func presetsCommand() *cli.Command {
	return &cli.Command{
		Name:  "presets",
		Usage: l10n.T("List the available presets and formats"),
		Action: func(c *cli.Context) error {
			fmt.Println(l10n.T("Resolution presets:"))
			for _, name := range settings.ResolutionPresetNames() {
				fmt.Printf("  %s\n", name)
			}

			fmt.Println(l10n.T("Frame range presets:"))
			for _, name := range settings.FrameRangePresetNames() {
				fmt.Printf("  %s\n", name)
			}

			fmt.Println(l10n.T("Visibility presets:"))
			for _, name := range catalog.PresetNames() {
				fmt.Printf("  %s\n", name)
			}

			fmt.Println(l10n.T("Containers and codecs:"))
			for _, container := range settings.ContainerNames() {
				fmt.Printf("  %s: %s\n", container, strings.Join(settings.CodecsFor(container), ", "))
			}

			fmt.Println(l10n.T("H.264 qualities:"))
			for _, name := range settings.H264QualityNames() {
				fmt.Printf("  %s\n", name)
			}

			fmt.Println(l10n.T("H.264 speed presets:"))
			for _, name := range settings.H264PresetNames() {
				fmt.Printf("  %s\n", name)
			}

			fmt.Println(l10n.T("Show categories:"))
			for _, entry := range catalog.Entries {
				fmt.Printf("  %s\n", entry.Label)
			}
			return nil
		},
	}
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: l10n.T("Show version information"),
		Action: func(c *cli.Context) error {
			fmt.Println(l10n.F("playblast version %s", version))
			return nil
		},
	}
}
