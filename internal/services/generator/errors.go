package generator

import (
	"errors"
	"fmt"
)

// ErrTimeout marks a run that exceeded the wall-clock budget. Distinct from
// a nonzero exit so the API can answer 504 instead of 500.
var ErrTimeout = errors.New("Poster generation timed out")

// GenerationError is a nonzero exit from the poster script.
type GenerationError struct {
	ExitCode int
	Stderr   string
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("Poster generation failed: %s", e.Stderr)
}

// OutputNotFoundError means the script exited zero but no matching artifact
// was found in the output directory.
type OutputNotFoundError struct {
	DirMissing bool
	Stdout     string
}

func (e *OutputNotFoundError) Error() string {
	if e.DirMissing {
		return "Poster output directory not found"
	}
	return fmt.Sprintf("Generated poster file not found. stdout: %s", e.Stdout)
}
