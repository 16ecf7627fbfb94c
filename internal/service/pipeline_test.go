package service

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rzimmerman2022/genetic-analyzer-ultra/internal/domain"
	"github.com/rzimmerman2022/genetic-analyzer-ultra/internal/effectdb"
	"github.com/rzimmerman2022/genetic-analyzer-ultra/internal/genotype"
	"github.com/rzimmerman2022/genetic-analyzer-ultra/internal/safety"
)

func testSample(calls ...domain.GenotypeCall) *genotype.Sample {
	sample := &genotype.Sample{
		Calls:    calls,
		ByRSID:   make(map[string]domain.GenotypeCall, len(calls)),
		CallRate: 0.99,
	}
	for _, call := range calls {
		sample.ByRSID[call.RSID] = call
	}
	return sample
}

func TestPipelineRun(t *testing.T) {
	db, err := effectdb.New()
	require.NoError(t, err)

	sample := testSample(
		domain.GenotypeCall{RSID: "rs429358", Chromosome: "19", Genotype: "CT"},
		domain.GenotypeCall{RSID: "rs7412", Chromosome: "19", Genotype: "CC"},
		domain.GenotypeCall{RSID: "rs7903146", Chromosome: "10", Genotype: "CT"},
		domain.GenotypeCall{RSID: "rs762551", Chromosome: "15", Genotype: "AC"},
		domain.GenotypeCall{RSID: "rs4988235", Chromosome: "2", Genotype: "AG"},
		domain.GenotypeCall{RSID: "rs28940279", Chromosome: "6", Genotype: "AG"},
		domain.GenotypeCall{RSID: "rs1426654", Chromosome: "15", Genotype: "AA"},
	)

	guard := safety.NewGuard(testLogger(), t.TempDir())
	pipeline := NewPipeline(testLogger(), db, guard, nil)

	tree, stageErrs := pipeline.Run(context.Background(), sample)
	assert.Empty(t, stageErrs)

	require.NotNil(t, tree.Stats)
	assert.Equal(t, 7, tree.Stats.TotalVariants)

	require.NotEmpty(t, tree.DiseaseRisk)
	apoe := tree.DiseaseRisk["neurodegenerative"]
	require.NotEmpty(t, apoe)

	require.NotEmpty(t, tree.PolygenicScores)
	for key, score := range tree.PolygenicScores {
		assert.GreaterOrEqual(t, score.Percentile, 0.0, key)
		assert.LessOrEqual(t, score.Percentile, 100.0, key)
	}

	require.NotEmpty(t, tree.RareVariants)
	assert.Equal(t, "rs28940279", tree.RareVariants[0].RSID)

	require.NotNil(t, tree.Ancestry)
	require.NotEmpty(t, tree.Traits)
	require.NotEmpty(t, tree.Validation)

	require.NotNil(t, tree.Provenance)
	assert.NotEmpty(t, tree.Provenance.RunID)
	assert.Len(t, tree.Provenance.ResultHash, 64)
	assert.False(t, tree.Provenance.EndTime.Before(tree.Provenance.StartTime))
}

func TestPipelineStageIsolation(t *testing.T) {
	db, err := effectdb.New()
	require.NoError(t, err)
	// Sabotage one score model; the stage must fail without taking down
	// the rest of the run.
	db.ScoreModels["BROKEN"] = domain.ScoreModel{
		Key:          "BROKEN",
		Name:         "Broken model",
		Variants:     map[string]domain.ScoreVariant{"rs1": {Weight: 1, EffectAllele: "A"}},
		PopulationSD: 0,
	}

	dumpDir := t.TempDir()
	guard := safety.NewGuard(testLogger(), dumpDir)
	pipeline := NewPipeline(testLogger(), db, guard, nil)

	sample := testSample(
		domain.GenotypeCall{RSID: "rs429358", Chromosome: "19", Genotype: "CT"},
	)
	tree, stageErrs := pipeline.Run(context.Background(), sample)

	require.Len(t, stageErrs, 1)
	var stageErr *domain.StageError
	require.True(t, errors.As(stageErrs[0], &stageErr))
	assert.Equal(t, "polygenic_scores", stageErr.Stage)
	assert.ErrorIs(t, stageErr, domain.ErrZeroPopulationSD)
	assert.FileExists(t, stageErr.DumpPath)

	// Later stages still ran.
	require.NotNil(t, tree.Ancestry)
	require.NotEmpty(t, tree.Validation)
	require.NotNil(t, tree.Provenance)

	entries, err := os.ReadDir(dumpDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestPipelineCancelledContext(t *testing.T) {
	db, err := effectdb.New()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	guard := safety.NewGuard(testLogger(), t.TempDir())
	pipeline := NewPipeline(testLogger(), db, guard, nil)
	_, stageErrs := pipeline.Run(ctx, testSample())

	require.NotEmpty(t, stageErrs)
	assert.ErrorIs(t, stageErrs[0], context.Canceled)
}

func TestCategorizeTrait(t *testing.T) {
	assert.Equal(t, "neurodegenerative", categorizeTrait("Alzheimer's disease risk"))
	assert.Equal(t, "cardiovascular", categorizeTrait("Coronary artery disease"))
	assert.Equal(t, "metabolic", categorizeTrait("Type 2 diabetes"))
	assert.Equal(t, "drug_metabolism", categorizeTrait("Caffeine metabolism"))
	assert.Equal(t, "other", categorizeTrait("Something else"))
}
