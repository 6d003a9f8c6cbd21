package generator

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/phambaophuc/map-poster-api/internal/config"
	"github.com/phambaophuc/map-poster-api/internal/models"
)

// ScriptRunner runs the poster script as a subprocess, one invocation per
// request, no retries.
type ScriptRunner struct {
	cfg    config.GeneratorConfig
	logger *zap.Logger
}

func NewScriptRunner(cfg config.GeneratorConfig, logger *zap.Logger) *ScriptRunner {
	return &ScriptRunner{cfg: cfg, logger: logger}
}

func (r *ScriptRunner) Generate(ctx context.Context, req *models.PosterRequest, width, height float64) (*Artifact, error) {
	// Idempotent; the script expects the directory to exist.
	if err := os.MkdirAll(r.cfg.OutputDir, 0o755); err != nil {
		return nil, &GenerationError{ExitCode: -1, Stderr: err.Error()}
	}

	argv := r.buildArgv(req, width, height)

	runCtx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, argv[0], argv[1:]...)
	cmd.Dir = r.cfg.WorkDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	runErr := cmd.Run()

	if runCtx.Err() == context.DeadlineExceeded {
		r.logger.Warn("Poster generation timed out",
			zap.String("city", req.City),
			zap.String("theme", req.Theme),
			zap.Duration("budget", r.cfg.Timeout))
		return nil, ErrTimeout
	}

	if runErr != nil {
		exitCode := -1
		if ee, ok := runErr.(*exec.ExitError); ok && ee.ProcessState != nil {
			exitCode = ee.ProcessState.ExitCode()
		}
		errText := stderr.String()
		if errText == "" {
			errText = runErr.Error()
		}
		r.logger.Error("Poster generation failed",
			zap.String("city", req.City),
			zap.String("theme", req.Theme),
			zap.Int("exit_code", exitCode))
		return nil, &GenerationError{ExitCode: exitCode, Stderr: errText}
	}

	r.logger.Info("Poster generated",
		zap.String("city", req.City),
		zap.String("country", req.Country),
		zap.String("theme", req.Theme),
		zap.Duration("took", time.Since(start)))

	path, err := LocateLatest(r.cfg.OutputDir, req.Theme)
	if err != nil {
		var notFound *OutputNotFoundError
		if errors.As(err, &notFound) {
			notFound.Stdout = stdout.String()
		}
		return nil, err
	}

	return &Artifact{Path: path, Stdout: stdout.String()}, nil
}

// buildArgv assembles the flat argument list. The request must have its
// defaults applied. Optional fields are omitted entirely when absent, never
// passed as empty strings.
func (r *ScriptRunner) buildArgv(req *models.PosterRequest, width, height float64) []string {
	argv := append([]string{}, r.cfg.Runner...)
	argv = append(argv, r.cfg.ScriptPath,
		"--city", req.City,
		"--country", req.Country,
		"--theme", req.Theme,
		"--width", formatInches(width),
		"--height", formatInches(height),
		"--distance", strconv.Itoa(*req.Distance),
	)
	if req.DisplayCity != "" {
		argv = append(argv, "--display-city", req.DisplayCity)
	}
	if req.DisplayCountry != "" {
		argv = append(argv, "--display-country", req.DisplayCountry)
	}
	if req.FontFamily != "" {
		argv = append(argv, "--font-family", req.FontFamily)
	}
	return argv
}

// formatInches renders 3.6 as "3.6" and 12 as "12".
func formatInches(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
