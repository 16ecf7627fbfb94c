package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rzimmerman2022/genetic-analyzer-ultra/internal/domain"
)

func findingByRule(findings []domain.ValidationFinding, name string) *domain.ValidationFinding {
	for i := range findings {
		if findings[i].RuleName == name {
			return &findings[i]
		}
	}
	return nil
}

func riskTree(rsid string, rr float64, count int) *domain.ResultTree {
	return &domain.ResultTree{
		DiseaseRisk: map[string][]domain.VariantRiskResult{
			"neurodegenerative": {
				{RSID: rsid, RelativeRisk: &rr, EffectAlleleCount: count},
			},
		},
	}
}

func TestDirectionRulePass(t *testing.T) {
	harness := NewHarness(testLogger())
	findings := harness.Run(riskTree("rs429358", 3.0, 1))

	finding := findingByRule(findings, "APOE_Alz_Direction")
	require.NotNil(t, finding)
	assert.Equal(t, domain.StatusPass, finding.Status)
}

func TestDirectionRuleConflict(t *testing.T) {
	harness := NewHarness(testLogger())
	// A protective-classified ratio where the literature says risk.
	findings := harness.Run(riskTree("rs429358", 0.62, 1))

	finding := findingByRule(findings, "APOE_Alz_Direction")
	require.NotNil(t, finding)
	assert.Equal(t, domain.StatusDirectionConflict, finding.Status)
}

func TestDirectionRuleNotApplicable(t *testing.T) {
	harness := NewHarness(testLogger())

	findings := harness.Run(&domain.ResultTree{})
	finding := findingByRule(findings, "APOE_Alz_Direction")
	require.NotNil(t, finding)
	assert.Equal(t, domain.StatusNotApplicable, finding.Status)

	// Present but carrying no effect alleles.
	findings = harness.Run(riskTree("rs429358", 1.0, 0))
	finding = findingByRule(findings, "APOE_Alz_Direction")
	require.NotNil(t, finding)
	assert.Equal(t, domain.StatusNotApplicable, finding.Status)
}

func TestBenchmarkRule(t *testing.T) {
	harness := NewHarness(testLogger())

	// Within 10% of benchmark 3.0.
	findings := harness.Run(riskTree("rs429358", 2.85, 1))
	finding := findingByRule(findings, "APOE_e4_OR_Benchmark")
	require.NotNil(t, finding)
	assert.Equal(t, domain.StatusPass, finding.Status)

	// Outside tolerance.
	findings = harness.Run(riskTree("rs429358", 4.0, 1))
	finding = findingByRule(findings, "APOE_e4_OR_Benchmark")
	require.NotNil(t, finding)
	assert.Equal(t, domain.StatusConcern, finding.Status)

	// Homozygous carriers are scaled estimates, not comparable.
	findings = harness.Run(riskTree("rs429358", 5.2, 2))
	finding = findingByRule(findings, "APOE_e4_OR_Benchmark")
	require.NotNil(t, finding)
	assert.Equal(t, domain.StatusNotApplicable, finding.Status)
}

func TestPercentileBounds(t *testing.T) {
	harness := NewHarness(testLogger())
	tree := &domain.ResultTree{
		PolygenicScores: map[string]domain.PolygenicScoreResult{
			"BAD": {Percentile: 120, ZScore: 4},
		},
	}
	findings := harness.Run(tree)
	finding := findingByRule(findings, "PRS_Percentile_Bounds")
	require.NotNil(t, finding)
	assert.Equal(t, domain.StatusConcern, finding.Status)
}

func TestScoreCoverageThin(t *testing.T) {
	harness := NewHarness(testLogger())
	tree := &domain.ResultTree{
		PolygenicScores: map[string]domain.PolygenicScoreResult{
			"THIN": {Percentile: 50, VariantsFound: 1, VariantsTotal: 7, VariantsUsed: "1/7"},
		},
	}
	findings := harness.Run(tree)
	finding := findingByRule(findings, "PRS_Score_Coverage")
	require.NotNil(t, finding)
	assert.Equal(t, domain.StatusConcern, finding.Status)
}

func TestHarnessReportsEveryRule(t *testing.T) {
	harness := NewHarness(testLogger())
	findings := harness.Run(&domain.ResultTree{})

	require.Len(t, findings, len(harness.rules))
	for _, finding := range findings {
		assert.True(t, finding.Status.IsValid(), "rule %s", finding.RuleName)
		assert.NotEmpty(t, finding.Details, "rule %s", finding.RuleName)
	}
}
