// Package provenance records run metadata and computes the deterministic
// reproducibility hash over the canonically serialized result tree.
package provenance

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/rzimmerman2022/genetic-analyzer-ultra/internal/domain"
)

// Recorder accumulates the provenance of one analysis run.
type Recorder struct {
	logger *logrus.Logger
	record domain.ProvenanceRecord
}

// NewRecorder starts the provenance for a run: fresh run id, pinned script
// and database versions, start timestamp in UTC.
func NewRecorder(logger *logrus.Logger, scriptVersion string, dbVersions map[string]string) *Recorder {
	return &Recorder{
		logger: logger,
		record: domain.ProvenanceRecord{
			RunID:            uuid.NewString(),
			ScriptVersion:    scriptVersion,
			DatabaseVersions: dbVersions,
			StartTime:        time.Now().UTC(),
		},
	}
}

// RunID returns the run identifier assigned at construction.
func (r *Recorder) RunID() string {
	return r.record.RunID
}

// Finalize stamps the end time, hashes the result tree, and returns the
// completed record. The tree's own provenance slot is excluded from the hash
// so the hash does not depend on itself.
func (r *Recorder) Finalize(tree *domain.ResultTree) (*domain.ProvenanceRecord, error) {
	hash, err := HashResults(tree)
	if err != nil {
		return nil, err
	}
	record := r.record
	record.EndTime = time.Now().UTC()
	record.ResultHash = hash

	r.logger.WithFields(logrus.Fields{
		"run_id": record.RunID,
		"hash":   hash,
	}).Info("Finalized run provenance")

	return &record, nil
}

// HashResults computes the SHA-256 of the canonical serialization of the
// result tree. Canonical means: JSON with all object keys sorted and
// timestamps coerced to RFC 3339 UTC. Two identical trees always hash
// identically; any changed value changes the hash.
func HashResults(tree *domain.ResultTree) (string, error) {
	// The provenance slot holds the hash itself, so it is excluded.
	stripped := *tree
	stripped.Provenance = nil

	canonical, err := canonicalJSON(&stripped)
	if err != nil {
		return "", fmt.Errorf("canonicalize results: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

// canonicalJSON round-trips the value through a generic map so that every
// object's keys are emitted in sorted order regardless of struct field order.
func canonicalJSON(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, err
	}
	return json.Marshal(generic)
}
