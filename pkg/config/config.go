// Package config provides configuration loading and management.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/user/playblast/pkg/adapters/webhost"
	"github.com/user/playblast/pkg/orchestrator"
	"github.com/user/playblast/pkg/settings"
)

// Config represents the full configuration for a playblast run.
type Config struct {
	// Encoder
	FFmpegPath string `yaml:"ffmpeg_path"`

	// Output
	OutputDir     string `yaml:"output_dir"`
	Filename      string `yaml:"filename"`
	Padding       int    `yaml:"padding"`
	Overwrite     bool   `yaml:"overwrite"`
	ShowOrnaments bool   `yaml:"ornaments"`
	ShowInViewer  bool   `yaml:"viewer"`

	// Capture
	Camera           string `yaml:"camera"`
	ResolutionPreset string `yaml:"resolution_preset"`
	Width            int    `yaml:"width"`
	Height           int    `yaml:"height"`
	FrameRangePreset string `yaml:"frame_range_preset"`
	StartFrame       int    `yaml:"start_frame"`
	EndFrame         int    `yaml:"end_frame"`
	VisibilityPreset string `yaml:"visibility_preset"`

	// Encoding
	Container    string `yaml:"container"`
	Codec        string `yaml:"codec"`
	H264Quality  string `yaml:"h264_quality"`
	H264Preset   string `yaml:"h264_preset"`
	ImageQuality int    `yaml:"image_quality"`

	// Demo host
	Host HostConfig `yaml:"host"`

	// Contact sheet
	ContactSheet ContactSheetConfig `yaml:"contact_sheet"`

	// Debug
	LogLevel string `yaml:"log_level"`
}

// HostConfig configures the headless-browser demo host.
type HostConfig struct {
	ChromePath       string  `yaml:"chrome_path"`
	Width            int     `yaml:"width"`
	Height           int     `yaml:"height"`
	TimeUnit         string  `yaml:"time_unit"`
	PlaybackStart    float64 `yaml:"playback_start"`
	PlaybackEnd      float64 `yaml:"playback_end"`
	AnimationStart   float64 `yaml:"animation_start"`
	AnimationEnd     float64 `yaml:"animation_end"`
	RenderStart      float64 `yaml:"render_start"`
	RenderEnd        float64 `yaml:"render_end"`
	SceneName        string  `yaml:"scene_name"`
	ProjectRoot      string  `yaml:"project_root"`
	AudioFile        string  `yaml:"audio_file"`
	AudioFrameOffset float64 `yaml:"audio_frame_offset"`
}

// ContactSheetConfig configures the optional frame-grid poster.
type ContactSheetConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Output     string `yaml:"output"`
	Columns    int    `yaml:"columns"`
	ThumbWidth int    `yaml:"thumb_width"`
	MaxFrames  int    `yaml:"max_frames"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Filename:      "{scene}",
		Padding:       4,
		ShowOrnaments: true,
		ShowInViewer:  false,

		ResolutionPreset: settings.DefaultResolution,
		FrameRangePreset: settings.DefaultFrameRange,
		VisibilityPreset: "Viewport",

		Container:    settings.DefaultContainer,
		Codec:        settings.DefaultCodec,
		H264Quality:  settings.DefaultH264Quality,
		H264Preset:   settings.DefaultH264Preset,
		ImageQuality: settings.DefaultImageQuality,

		Host: HostConfig{
			TimeUnit:  "film",
			SceneName: "demo",
		},

		ContactSheet: ContactSheetConfig{
			Columns:    4,
			ThumbWidth: 320,
			MaxFrames:  16,
		},

		LogLevel: "info",
	}
}

// LoadFromFile loads configuration from a YAML file on top of the defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// ApplySettings pushes the capture and encoding fields into Settings. The
// first setter rejection aborts the apply.
func (c Config) ApplySettings(s *settings.Settings) error {
	s.SetFFmpegPath(c.FFmpegPath)

	if err := s.SetCamera(c.Camera); err != nil {
		return err
	}

	if c.Width > 0 && c.Height > 0 {
		if err := s.SetResolution(c.Width, c.Height); err != nil {
			return err
		}
	} else if err := s.SetResolutionPreset(c.ResolutionPreset); err != nil {
		return err
	}

	if c.StartFrame != 0 || c.EndFrame != 0 {
		if err := s.SetFrameRange(c.StartFrame, c.EndFrame); err != nil {
			return err
		}
	} else if err := s.SetFrameRangePreset(c.FrameRangePreset); err != nil {
		return err
	}

	if err := s.SetVisibilityPreset(c.VisibilityPreset); err != nil {
		return err
	}

	if err := s.SetEncoding(c.Container, c.Codec); err != nil {
		return err
	}
	if err := s.SetH264Settings(c.H264Quality, c.H264Preset); err != nil {
		return err
	}
	if err := s.SetImageQuality(c.ImageQuality); err != nil {
		return err
	}

	return nil
}

// ToOrchestratorOptions converts the output fields to orchestrator.Options.
func (c Config) ToOrchestratorOptions() orchestrator.Options {
	return orchestrator.Options{
		OutputDir:     c.OutputDir,
		Filename:      c.Filename,
		Padding:       c.Padding,
		ShowOrnaments: c.ShowOrnaments,
		ShowInViewer:  c.ShowInViewer,
		Overwrite:     c.Overwrite,
	}
}

// ToHostOptions converts the host fields to webhost.Options.
func (c Config) ToHostOptions() webhost.Options {
	return webhost.Options{
		ChromePath:       c.Host.ChromePath,
		Width:            c.Host.Width,
		Height:           c.Host.Height,
		TimeUnit:         c.Host.TimeUnit,
		PlaybackStart:    c.Host.PlaybackStart,
		PlaybackEnd:      c.Host.PlaybackEnd,
		AnimationStart:   c.Host.AnimationStart,
		AnimationEnd:     c.Host.AnimationEnd,
		RenderStart:      c.Host.RenderStart,
		RenderEnd:        c.Host.RenderEnd,
		SceneName:        c.Host.SceneName,
		ProjectRoot:      c.Host.ProjectRoot,
		AudioFile:        c.Host.AudioFile,
		AudioFrameOffset: c.Host.AudioFrameOffset,
	}
}
