// Package safety provides the stage isolation wrapper: a failing analysis
// stage persists a diagnostic snapshot and is reported as degraded instead of
// aborting the run.
package safety

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rzimmerman2022/genetic-analyzer-ultra/internal/domain"
)

// Guard wraps stage execution. One guard serves a whole run; dumps land in
// its dump directory.
type Guard struct {
	logger  *logrus.Logger
	dumpDir string
}

// NewGuard creates a guard writing crash dumps under dumpDir. The directory
// is created on first use, not up front.
func NewGuard(logger *logrus.Logger, dumpDir string) *Guard {
	return &Guard{logger: logger, dumpDir: dumpDir}
}

// crashDump is the persisted diagnostic snapshot for one failed stage.
type crashDump struct {
	Stage          string    `json:"stage"`
	Timestamp      time.Time `json:"timestamp_utc"`
	ErrorType      string    `json:"error_type"`
	ErrorMessage   string    `json:"error_message"`
	PartialResults any       `json:"partial_results,omitempty"`
}

// Run executes one stage. Errors and panics are caught, a diagnostic snapshot
// including the partial results is written, and a StageError is returned so
// the caller can record the degradation and continue with later stages.
func (g *Guard) Run(stage string, partial any, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = g.fail(stage, partial, fmt.Errorf("panic: %v", r))
		}
	}()
	if stageErr := fn(); stageErr != nil {
		return g.fail(stage, partial, stageErr)
	}
	return nil
}

func (g *Guard) fail(stage string, partial any, stageErr error) error {
	dump := crashDump{
		Stage:          stage,
		Timestamp:      time.Now().UTC(),
		ErrorType:      fmt.Sprintf("%T", stageErr),
		ErrorMessage:   stageErr.Error(),
		PartialResults: partial,
	}

	path := g.persist(stage, dump)
	g.logger.WithFields(logrus.Fields{
		"stage": stage,
		"dump":  path,
	}).WithError(stageErr).Error("Stage failed; continuing with remaining stages")

	return &domain.StageError{Stage: stage, DumpPath: path, Err: stageErr}
}

// persist writes the dump and returns its path, or "" if even the dump could
// not be written. A dump failure must never mask the stage failure.
func (g *Guard) persist(stage string, dump crashDump) string {
	if err := os.MkdirAll(g.dumpDir, 0o755); err != nil {
		g.logger.WithError(err).Warn("Could not create crash dump directory")
		return ""
	}
	path := filepath.Join(g.dumpDir, fmt.Sprintf("crash_%s_%d.json", stage, dump.Timestamp.Unix()))
	raw, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		// Partial results may not serialize; retry without them.
		dump.PartialResults = nil
		raw, err = json.MarshalIndent(dump, "", "  ")
		if err != nil {
			return ""
		}
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		g.logger.WithError(err).Warn("Could not write crash dump")
		return ""
	}
	return path
}
