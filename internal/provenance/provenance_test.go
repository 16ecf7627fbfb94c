package provenance

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rzimmerman2022/genetic-analyzer-ultra/internal/domain"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func sampleTree() *domain.ResultTree {
	rr := 1.4
	return &domain.ResultTree{
		DiseaseRisk: map[string][]domain.VariantRiskResult{
			"metabolic": {
				{RSID: "rs7903146", Genotype: "CT", EffectAlleleCount: 1, RelativeRisk: &rr},
			},
		},
		PolygenicScores: map[string]domain.PolygenicScoreResult{
			"CAD_PRS": {Key: "CAD_PRS", RawScore: 0.2, ZScore: 0.2, Percentile: 57.9},
		},
	}
}

func TestHashDeterministic(t *testing.T) {
	first, err := HashResults(sampleTree())
	require.NoError(t, err)
	second, err := HashResults(sampleTree())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 64)
}

func TestHashSensitivity(t *testing.T) {
	base, err := HashResults(sampleTree())
	require.NoError(t, err)

	changed := sampleTree()
	score := changed.PolygenicScores["CAD_PRS"]
	score.RawScore = 0.21
	changed.PolygenicScores["CAD_PRS"] = score

	hash, err := HashResults(changed)
	require.NoError(t, err)
	assert.NotEqual(t, base, hash)
}

func TestHashIgnoresProvenanceSlot(t *testing.T) {
	base, err := HashResults(sampleTree())
	require.NoError(t, err)

	withProvenance := sampleTree()
	withProvenance.Provenance = &domain.ProvenanceRecord{RunID: "abc", ResultHash: "something"}

	hash, err := HashResults(withProvenance)
	require.NoError(t, err)
	assert.Equal(t, base, hash)
}

func TestRecorderFinalize(t *testing.T) {
	recorder := NewRecorder(testLogger(), "3.2.0", map[string]string{"ClinVar": "2025-03-01"})
	require.NotEmpty(t, recorder.RunID())

	record, err := recorder.Finalize(sampleTree())
	require.NoError(t, err)

	assert.Equal(t, recorder.RunID(), record.RunID)
	assert.Equal(t, "3.2.0", record.ScriptVersion)
	assert.Equal(t, "2025-03-01", record.DatabaseVersions["ClinVar"])
	assert.NotEmpty(t, record.ResultHash)
	assert.False(t, record.EndTime.Before(record.StartTime))
	assert.Equal(t, record.StartTime, record.StartTime.UTC())
}

func TestRecorderDistinctRunIDs(t *testing.T) {
	a := NewRecorder(testLogger(), "3.2.0", nil)
	b := NewRecorder(testLogger(), "3.2.0", nil)
	assert.NotEqual(t, a.RunID(), b.RunID())
}
