package transcode

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/zainaaazz/FullStackWebApplication/config"
)

// Transcoder re-encodes a raw upload into a web-playable MP4
type Transcoder interface {
	Transcode(ctx context.Context, inputPath, outputPath string) error
}

// ErrTimeout ffmpeg did not finish within the configured timeout
var ErrTimeout = errors.New("transcode timed out")

// FFmpeg runs the ffmpeg binary as a child process
type FFmpeg struct {
	path    string
	preset  string
	crf     int
	timeout time.Duration
	logger  *zap.Logger
}

// NewFFmpeg creates an FFmpeg transcoder from the media config
func NewFFmpeg(cfg *config.MediaConfig, logger *zap.Logger) *FFmpeg {
	path := cfg.FFmpegPath
	if path == "" {
		path = "ffmpeg"
	}
	preset := cfg.Preset
	if preset == "" {
		preset = "fast"
	}
	crf := cfg.CRF
	if crf <= 0 {
		crf = 23
	}
	return &FFmpeg{path: path, preset: preset, crf: crf, timeout: cfg.TranscodeTimeout, logger: logger}
}

// Args ffmpeg arguments for an H.264/AAC MP4 with the moov atom at the front
func Args(inputPath, outputPath, preset string, crf int) []string {
	return []string{
		"-y",
		"-i", inputPath,
		"-c:v", "libx264",
		"-preset", preset,
		"-crf", strconv.Itoa(crf),
		"-c:a", "aac",
		"-b:a", "128k",
		"-movflags", "+faststart",
		outputPath,
	}
}

func (f *FFmpeg) Transcode(ctx context.Context, inputPath, outputPath string) error {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, f.path, Args(inputPath, outputPath, f.preset, f.crf)...)
	cmd.Stderr = &stderr

	start := time.Now()
	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%w after %s", ErrTimeout, f.timeout)
		}
		return fmt.Errorf("ffmpeg failed: %w: %s", err, tail(stderr.String(), 512))
	}

	f.logger.Debug("transcode finished",
		zap.String("input", inputPath),
		zap.Duration("took", time.Since(start)),
	)
	return nil
}

// tail last n bytes of ffmpeg's stderr; the error summary is at the end
func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
