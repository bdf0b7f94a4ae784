// Package encoder builds and runs the external ffmpeg invocation that turns
// a captured frame sequence into an H.264 video.
package encoder

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/user/playblast/pkg/ports"
)

// Job describes one encode of a numbered frame sequence.
type Job struct {
	// FFmpegPath is the encoder binary.
	FFmpegPath string
	// FramePattern is the numbered input pattern, e.g. dir/shot.%04d.png.
	FramePattern string
	// OutputPath is the final artifact. Always overwritten.
	OutputPath string
	// StartFrame is the scene frame the sequence starts at, used for audio
	// sync.
	StartFrame int
	// CRF is the x264 constant rate factor.
	CRF int
	// Preset is the x264 speed preset.
	Preset string
}

// namedRates maps host time-unit names to frames per second.
var namedRates = map[string]float64{
	"game":  15,
	"film":  24,
	"pal":   25,
	"ntsc":  30,
	"show":  48,
	"palf":  50,
	"ntscf": 60,
}

// FrameRate converts a host time-unit name to frames per second. Besides
// the named units, a literal "<rate>fps" string is parsed as a float. Any
// other value is a configuration error.
func FrameRate(unit string) (float64, error) {
	if fps, ok := namedRates[unit]; ok {
		return fps, nil
	}
	if strings.HasSuffix(unit, "fps") {
		if fps, err := strconv.ParseFloat(strings.TrimSuffix(unit, "fps"), 64); err == nil {
			return fps, nil
		}
	}
	return 0, fmt.Errorf("unsupported frame rate: %s", unit)
}

// AudioOffsetSeconds computes how far into the audio file playback starts
// when the capture begins at startFrame and the audio is anchored at
// audioFrameOffset.
func AudioOffsetSeconds(startFrame int, audioFrameOffset, frameRate float64) float64 {
	return (float64(startFrame) - audioFrameOffset) / frameRate
}

// BuildArgs assembles the ffmpeg argument list for a job. audio may be nil;
// when present the audio input is seeked by audioOffset seconds and padded
// or trimmed to the video length.
func BuildArgs(job Job, frameRate float64, audio *ports.AudioTrack, audioOffset float64) []string {
	args := []string{
		"-y",
		"-framerate", formatFloat(frameRate),
		"-i", job.FramePattern,
	}

	if audio != nil {
		args = append(args, "-ss", formatFloat(audioOffset), "-i", audio.FilePath)
	}

	args = append(args,
		"-c:v", "libx264",
		"-crf:v", strconv.Itoa(job.CRF),
		"-preset:v", job.Preset,
		"-profile", "high",
		"-level", "4.0",
		"-pix_fmt", "yuv420p",
	)

	if audio != nil {
		args = append(args, "-filter_complex", "[1:0] apad", "-shortest")
	}

	return append(args, job.OutputPath)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Invoker runs encode jobs through the external encoder while keeping the
// host event queue serviced.
type Invoker struct {
	host   ports.Host
	fs     ports.FileSystem
	runner ports.CommandRunner
	logger ports.Logger
}

// New creates an Invoker.
func New(host ports.Host, fs ports.FileSystem, runner ports.CommandRunner, logger ports.Logger) *Invoker {
	return &Invoker{
		host:   host,
		fs:     fs,
		runner: runner,
		logger: logger,
	}
}

// Encode runs ffmpeg for the given job, blocking until the process exits.
// Its stderr is forwarded to the log stream line by line as it arrives.
func (i *Invoker) Encode(ctx context.Context, job Job) error {
	unit, err := i.host.CurrentTimeUnit()
	if err != nil {
		return fmt.Errorf("query time unit: %w", err)
	}
	frameRate, err := FrameRate(unit)
	if err != nil {
		return err
	}

	audio, audioOffset, err := i.resolveAudio(job.StartFrame, frameRate)
	if err != nil {
		return err
	}

	args := BuildArgs(job, frameRate, audio, audioOffset)
	i.logger.Info("%s %s", job.FFmpegPath, strings.Join(args, " "))

	ffmpegLog := i.logger.WithComponent("ffmpeg")
	onLine := func(line string) {
		ffmpegLog.Info("%s", line)
	}

	if err := i.runner.Run(ctx, job.FFmpegPath, args, onLine, i.host.ProcessEvents); err != nil {
		return fmt.Errorf("ffmpeg: %w", err)
	}
	return nil
}

// resolveAudio looks up the host's linked audio track. A linked track whose
// backing file is missing on disk is ignored rather than failing the encode.
func (i *Invoker) resolveAudio(startFrame int, frameRate float64) (*ports.AudioTrack, float64, error) {
	audio, err := i.host.AudioTrack()
	if err != nil {
		return nil, 0, fmt.Errorf("query audio track: %w", err)
	}
	if audio == nil {
		return nil, 0, nil
	}

	exists, err := i.fs.Exists(audio.FilePath)
	if err != nil {
		return nil, 0, fmt.Errorf("check audio file: %w", err)
	}
	if !exists {
		return nil, 0, nil
	}

	return audio, AudioOffsetSeconds(startFrame, audio.FrameOffset, frameRate), nil
}
