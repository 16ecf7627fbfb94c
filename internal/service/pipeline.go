package service

import (
	"context"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/rzimmerman2022/genetic-analyzer-ultra/internal/domain"
	"github.com/rzimmerman2022/genetic-analyzer-ultra/internal/effectdb"
	"github.com/rzimmerman2022/genetic-analyzer-ultra/internal/genotype"
	"github.com/rzimmerman2022/genetic-analyzer-ultra/internal/provenance"
	"github.com/rzimmerman2022/genetic-analyzer-ultra/internal/safety"
)

// Pipeline drives a full analysis run: each stage executes under the
// safeguard, failed stages degrade to a crash dump plus a StageError, and the
// surviving results are validated, hashed, and returned.
type Pipeline struct {
	logger  *logrus.Logger
	db      *effectdb.Database
	risk    *RiskCalculator
	scores  *ScoreEngine
	harness *Harness
	guard   *safety.Guard
	panel   ReferencePanel
}

// NewPipeline assembles a pipeline. panel may be nil; ancestry then reports
// its no-panel state explicitly.
func NewPipeline(logger *logrus.Logger, db *effectdb.Database, guard *safety.Guard, panel ReferencePanel) *Pipeline {
	return &Pipeline{
		logger:  logger,
		db:      db,
		risk:    NewRiskCalculator(logger),
		scores:  NewScoreEngine(logger),
		harness: NewHarness(logger),
		guard:   guard,
		panel:   panel,
	}
}

// Run executes every stage against the sample. The returned errors are the
// per-stage failures (each a *domain.StageError); the result tree always
// contains whatever the surviving stages produced. The tree is owned by the
// caller once returned.
func (p *Pipeline) Run(ctx context.Context, sample *genotype.Sample) (*domain.ResultTree, []error) {
	recorder := provenance.NewRecorder(p.logger, effectdb.AnalysisVersion, p.db.Versions())
	p.logger.WithFields(logrus.Fields{
		"run_id":   recorder.RunID(),
		"variants": len(sample.Calls),
	}).Info("Starting analysis run")

	tree := &domain.ResultTree{}
	var stageErrs []error

	stages := []struct {
		name string
		fn   func() error
	}{
		{"basic_stats", func() error {
			tree.Stats = ComputeStats(p.logger, sample.Calls, sample.CallRate)
			return nil
		}},
		{"disease_risk", func() error {
			results, err := p.diseaseRisk(sample)
			tree.DiseaseRisk = results
			return err
		}},
		{"polygenic_scores", func() error {
			results, err := p.polygenicScores(sample)
			tree.PolygenicScores = results
			return err
		}},
		{"pharmacogenomics", func() error {
			tree.Pharmacogenomics = ComputePharmacogenomics(p.logger, sample.ByRSID, p.db.Pharmacogenes)
			return nil
		}},
		{"rare_variants", func() error {
			tree.RareVariants = ScreenRareVariants(p.logger, sample.ByRSID, p.db.RareVariants)
			return nil
		}},
		{"ancestry", func() error {
			tree.Ancestry = ComputeAncestry(p.logger, sample.ByRSID, p.db.AncestryMarkers, p.panel)
			return nil
		}},
		{"traits", func() error {
			tree.Traits = ComputeTraits(p.logger, sample.ByRSID, p.db.Traits)
			return nil
		}},
		{"validation", func() error {
			tree.Validation = p.harness.Run(tree)
			return nil
		}},
	}

	for _, stage := range stages {
		if ctx.Err() != nil {
			stageErrs = append(stageErrs, ctx.Err())
			break
		}
		if err := p.guard.Run(stage.name, tree, stage.fn); err != nil {
			stageErrs = append(stageErrs, err)
		}
	}

	if err := p.guard.Run("provenance", tree, func() error {
		record, err := recorder.Finalize(tree)
		if err != nil {
			return err
		}
		tree.Provenance = record
		return nil
	}); err != nil {
		stageErrs = append(stageErrs, err)
	}

	p.logger.WithFields(logrus.Fields{
		"run_id":        recorder.RunID(),
		"failed_stages": len(stageErrs),
	}).Info("Analysis run complete")

	return tree, stageErrs
}

// diseaseRisk scores every disease-risk record present in the sample, grouped
// by condition category. A malformed genotype fails only its own variant.
func (p *Pipeline) diseaseRisk(sample *genotype.Sample) (map[string][]domain.VariantRiskResult, error) {
	rsids := make([]string, 0, len(p.db.DiseaseRisk))
	for rsid := range p.db.DiseaseRisk {
		rsids = append(rsids, rsid)
	}
	sort.Strings(rsids)

	results := make(map[string][]domain.VariantRiskResult)
	for _, rsid := range rsids {
		rec := p.db.DiseaseRisk[rsid]
		call, ok := sample.ByRSID[rsid]
		if !ok {
			continue
		}
		result, err := p.risk.Compute(call, rec)
		if err != nil {
			p.logger.WithFields(logrus.Fields{
				"rsid":     rsid,
				"genotype": call.Genotype,
			}).WithError(err).Warn("Skipping variant")
			continue
		}
		category := categorizeTrait(rec.Trait)
		results[category] = append(results[category], *result)
	}
	return results, nil
}

// polygenicScores evaluates every score model. A failing model fails the
// stage so the safeguard captures it, but earlier models' results survive in
// the partial map.
func (p *Pipeline) polygenicScores(sample *genotype.Sample) (map[string]domain.PolygenicScoreResult, error) {
	keys := make([]string, 0, len(p.db.ScoreModels))
	for key := range p.db.ScoreModels {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	results := make(map[string]domain.PolygenicScoreResult)
	for _, key := range keys {
		score, err := p.scores.Compute(sample.ByRSID, p.db.ScoreModels[key])
		if err != nil {
			return results, err
		}
		results[key] = *score
	}
	return results, nil
}

// categorizeTrait groups disease-risk findings by condition family for the
// result tree.
func categorizeTrait(trait string) string {
	t := strings.ToLower(trait)
	switch {
	case strings.Contains(t, "alzheimer") || strings.Contains(t, "parkinson") || strings.Contains(t, "dementia"):
		return "neurodegenerative"
	case strings.Contains(t, "coronary") || strings.Contains(t, "heart") || strings.Contains(t, "cardio"):
		return "cardiovascular"
	case strings.Contains(t, "diabetes") || strings.Contains(t, "folate") || strings.Contains(t, "homocysteine"):
		return "metabolic"
	case strings.Contains(t, "caffeine") || strings.Contains(t, "metaboli"):
		return "drug_metabolism"
	default:
		return "other"
	}
}
