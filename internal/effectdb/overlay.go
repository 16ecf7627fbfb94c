package effectdb

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rzimmerman2022/genetic-analyzer-ultra/internal/domain"
)

// Overlay is a user-supplied extension of the built-in tables, loaded from a
// YAML file. Records replace built-ins with the same rsID; score models
// replace built-ins with the same key.
type Overlay struct {
	Version     string                       `yaml:"version"`
	DiseaseRisk []domain.EffectRecord        `yaml:"disease_risk"`
	ScoreModels map[string]domain.ScoreModel `yaml:"score_models"`
}

// LoadOverlay parses and validates an overlay file.
func LoadOverlay(path string) (*Overlay, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read overlay: %w", err)
	}
	var ov Overlay
	if err := yaml.Unmarshal(raw, &ov); err != nil {
		return nil, fmt.Errorf("parse overlay %s: %w", path, err)
	}
	for i := range ov.DiseaseRisk {
		if err := ov.DiseaseRisk[i].Validate(); err != nil {
			return nil, fmt.Errorf("overlay %s: %w", path, err)
		}
	}
	for key, model := range ov.ScoreModels {
		if model.PopulationSD <= 0 {
			return nil, fmt.Errorf("overlay %s: score model %s: %w", path, key, domain.ErrZeroPopulationSD)
		}
	}
	return &ov, nil
}

// Apply merges the overlay into the database. The overlay version, when set,
// is recorded alongside the pinned database versions so it lands in the
// provenance record.
func (db *Database) Apply(ov *Overlay) {
	for _, rec := range ov.DiseaseRisk {
		db.DiseaseRisk[rec.RSID] = rec
	}
	for key, model := range ov.ScoreModels {
		model.Key = key
		db.ScoreModels[key] = model
	}
	if ov.Version != "" {
		db.versions["Overlay"] = ov.Version
	}
}
