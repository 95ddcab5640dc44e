package transcript

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"vttext/internal/config"
	"vttext/internal/fileutil"
	"vttext/internal/logging"
	"vttext/internal/vtt"
)

// Request describes one conversion.
type Request struct {
	InputPath string
	// OutputPath is optional; when empty the transcript is only returned.
	OutputPath string
}

// Result carries the transcript and what the filter did to produce it.
type Result struct {
	Lines      []string
	Stats      vtt.Stats
	OutputPath string
	RunID      string
	Duration   time.Duration
}

// Text joins the transcript lines with newlines, without a trailing newline.
func (r Result) Text() string {
	return strings.Join(r.Lines, "\n")
}

// Service converts caption files using the configured decoding and output rules.
type Service struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewService constructs a Service. A nil cfg uses defaults; a nil logger discards logs.
func NewService(cfg *config.Config, logger *slog.Logger) *Service {
	if cfg == nil {
		defaults := config.Default()
		cfg = &defaults
	}
	return &Service{cfg: cfg, logger: logging.NewComponentLogger(logger, "transcript")}
}

// Convert reads req.InputPath, deduplicates its captions, and writes the
// transcript to req.OutputPath when one is given.
func (s *Service) Convert(ctx context.Context, req Request) (Result, error) {
	started := time.Now()
	logger, runID := logging.WithRunID(s.logger, "")
	result := Result{RunID: runID}

	input := req.InputPath
	logger.Debug("conversion started",
		logging.String("input", input),
		logging.String("output", req.OutputPath),
		logging.String("encoding", s.cfg.Input.Encoding),
	)

	raw, err := os.ReadFile(input)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return result, fmt.Errorf("%w: %s", ErrInputNotFound, input)
		}
		return result, processingError("read", input, err)
	}

	text, err := decodeText(raw, s.cfg.Input.Encoding)
	if err != nil {
		return result, processingError("decode", input, err)
	}

	lines, stats, err := ConvertReader(strings.NewReader(text), vtt.NewSeen())
	if err != nil {
		return result, processingError("read", input, err)
	}
	result.Lines = lines
	result.Stats = stats

	if req.OutputPath != "" {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if err := s.write(req.OutputPath, result); err != nil {
			logger.Warn("transcript write failed",
				logging.Error(err),
				logging.String("output", req.OutputPath),
				logging.String(logging.FieldEventType, "write_failed"),
				logging.String(logging.FieldErrorHint, "check that the output directory exists and is writable"),
			)
			return result, processingError("write", req.OutputPath, err)
		}
		result.OutputPath = req.OutputPath
	}

	result.Duration = time.Since(started)
	logger.Info("conversion complete",
		logging.Int("lines_read", stats.Lines),
		logging.Int("captions_emitted", stats.Emitted),
		logging.Int("duplicates", stats.Duplicates),
		logging.Duration("duration", result.Duration),
	)
	return result, nil
}

func (s *Service) write(path string, result Result) error {
	payload := result.Text() + "\n"
	return fileutil.WriteFile(path, []byte(payload), fileutil.WriteOptions{
		Atomic: s.cfg.Output.Atomic,
		Lock:   s.cfg.Output.Lock,
		Mode:   s.cfg.OutputFileMode(),
	})
}

// ConvertReader streams r line by line through a sequencer bound to seen.
// Lines end at "\n", "\r\n", or a lone "\r".
func ConvertReader(r io.Reader, seen *vtt.Seen) ([]string, vtt.Stats, error) {
	seq := vtt.NewSequencer(seen)
	var out []string
	reader := bufio.NewReader(r)
	for {
		chunk, err := reader.ReadString('\n')
		if chunk != "" {
			chunk = strings.TrimSuffix(strings.TrimSuffix(chunk, "\n"), "\r")
			for _, line := range strings.Split(chunk, "\r") {
				if caption, ok := seq.Accept(line); ok {
					out = append(out, caption)
				}
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return out, seq.Stats(), err
		}
	}
	return out, seq.Stats(), nil
}
