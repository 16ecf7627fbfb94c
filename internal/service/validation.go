package service

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/rzimmerman2022/genetic-analyzer-ultra/internal/domain"
)

// Rule is one validation check over the completed result tree. Rules are
// read-only consumers; they never mutate the tree.
type Rule struct {
	Name  string
	Check func(tree *domain.ResultTree) domain.ValidationFinding
}

// Harness runs an ordered rule set against a result tree and reports one
// finding per rule. Findings are regenerated each run and never carried over.
type Harness struct {
	logger *logrus.Logger
	rules  []Rule
}

// NewHarness creates a validation harness with the built-in rule set.
func NewHarness(logger *logrus.Logger) *Harness {
	h := &Harness{logger: logger}
	h.rules = []Rule{
		directionRule("APOE_Alz_Direction", "rs429358", directionRisk),
		directionRule("APOE_e2_Direction", "rs7412", directionProtective),
		directionRule("TCF7L2_T2D_Direction", "rs7903146", directionRisk),
		directionRule("TREM2_Alz_Direction", "rs75932628", directionRisk),
		benchmarkRule("APOE_e4_OR_Benchmark", "rs429358", 3.0),
		benchmarkRule("TCF7L2_OR_Benchmark", "rs7903146", 1.40),
		{Name: "PRS_Percentile_Bounds", Check: percentileBounds},
		{Name: "PRS_Score_Coverage", Check: scoreCoverage},
		{Name: "CI_Bounds_Ordered", Check: ciOrdered},
		{Name: "Genotype_Call_Rate", Check: callRateFloor},
	}
	return h
}

// Run evaluates every rule in order.
func (h *Harness) Run(tree *domain.ResultTree) []domain.ValidationFinding {
	findings := make([]domain.ValidationFinding, 0, len(h.rules))
	for _, rule := range h.rules {
		finding := rule.Check(tree)
		finding.RuleName = rule.Name
		if finding.Status != domain.StatusPass && finding.Status != domain.StatusNotApplicable {
			h.logger.WithFields(logrus.Fields{
				"rule":   rule.Name,
				"status": finding.Status,
			}).Warn("Validation rule flagged")
		}
		findings = append(findings, finding)
	}
	return findings
}

type expectedDirection int

const (
	directionRisk expectedDirection = iota
	directionProtective
)

// directionRule checks that a well-replicated marker's computed relative risk
// points the direction the literature established. The check runs the
// computed ratio through the effect classifier and compares labels, so the
// rule and the reported category can never disagree. A conflict almost always
// means a strand or allele-coding error upstream, not new biology.
func directionRule(name, rsid string, expected expectedDirection) Rule {
	return Rule{
		Name: name,
		Check: func(tree *domain.ResultTree) domain.ValidationFinding {
			result := findVariant(tree, rsid)
			if result == nil {
				return domain.ValidationFinding{
					Status:  domain.StatusNotApplicable,
					Details: fmt.Sprintf("%s not present in sample", rsid),
				}
			}
			if result.RelativeRisk == nil || result.EffectAlleleCount == 0 {
				return domain.ValidationFinding{
					Status:  domain.StatusNotApplicable,
					Details: fmt.Sprintf("%s carries no effect alleles", rsid),
				}
			}
			category := CategorizeOR(result.RelativeRisk)
			conflict := (expected == directionRisk && category.Protective()) ||
				(expected == directionProtective && !category.Protective() && category != "negligible")
			if conflict {
				return domain.ValidationFinding{
					Status: domain.StatusDirectionConflict,
					Details: fmt.Sprintf("%s classified %s, contradicting the established effect direction",
						rsid, category),
				}
			}
			return domain.ValidationFinding{
				Status:  domain.StatusPass,
				Details: fmt.Sprintf("%s effect direction matches the literature", rsid),
			}
		},
	}
}

// benchmarkTolerance is the default relative deviation allowed between a
// computed heterozygous relative risk and its literature benchmark.
const benchmarkTolerance = 0.10

// benchmarkRule compares the computed heterozygous relative risk against the
// literature per-allele odds ratio. Other allele counts are scaled estimates
// and not comparable, so they report NOT_APPLICABLE.
func benchmarkRule(name, rsid string, expected float64) Rule {
	return Rule{
		Name: name,
		Check: func(tree *domain.ResultTree) domain.ValidationFinding {
			result := findVariant(tree, rsid)
			if result == nil || result.RelativeRisk == nil {
				return domain.ValidationFinding{
					Status:  domain.StatusNotApplicable,
					Details: fmt.Sprintf("%s has no computed relative risk", rsid),
				}
			}
			if result.EffectAlleleCount != 1 {
				return domain.ValidationFinding{
					Status:  domain.StatusNotApplicable,
					Details: fmt.Sprintf("%s benchmark applies to heterozygous carriers only", rsid),
				}
			}
			deviation := math.Abs(*result.RelativeRisk-expected) / expected
			if deviation > benchmarkTolerance {
				return domain.ValidationFinding{
					Status: domain.StatusConcern,
					Details: fmt.Sprintf("%s relative risk %.3f deviates %.0f%% from benchmark %.2f",
						rsid, *result.RelativeRisk, deviation*100, expected),
				}
			}
			return domain.ValidationFinding{
				Status:  domain.StatusPass,
				Details: fmt.Sprintf("%s within %.0f%% of benchmark %.2f", rsid, benchmarkTolerance*100, expected),
			}
		},
	}
}

func findVariant(tree *domain.ResultTree, rsid string) *domain.VariantRiskResult {
	for _, results := range tree.DiseaseRisk {
		for i := range results {
			if results[i].RSID == rsid {
				return &results[i]
			}
		}
	}
	return nil
}

func percentileBounds(tree *domain.ResultTree) domain.ValidationFinding {
	if len(tree.PolygenicScores) == 0 {
		return domain.ValidationFinding{Status: domain.StatusNotApplicable, Details: "no polygenic scores computed"}
	}
	for key, score := range tree.PolygenicScores {
		if math.IsNaN(score.ZScore) || math.IsInf(score.ZScore, 0) ||
			score.Percentile < 0 || score.Percentile > 100 {
			return domain.ValidationFinding{
				Status:  domain.StatusConcern,
				Details: fmt.Sprintf("%s has percentile %.2f / z %.3f outside sane bounds", key, score.Percentile, score.ZScore),
			}
		}
	}
	return domain.ValidationFinding{Status: domain.StatusPass, Details: "all percentiles within [0, 100]"}
}

// scoreCoverage flags models where fewer than half the markers were genotyped;
// a thin score is reported but should not be over-read.
func scoreCoverage(tree *domain.ResultTree) domain.ValidationFinding {
	if len(tree.PolygenicScores) == 0 {
		return domain.ValidationFinding{Status: domain.StatusNotApplicable, Details: "no polygenic scores computed"}
	}
	for key, score := range tree.PolygenicScores {
		if score.VariantsTotal > 0 && float64(score.VariantsFound) < 0.5*float64(score.VariantsTotal) {
			return domain.ValidationFinding{
				Status:  domain.StatusConcern,
				Details: fmt.Sprintf("%s used only %s markers", key, score.VariantsUsed),
			}
		}
	}
	return domain.ValidationFinding{Status: domain.StatusPass, Details: "all score models adequately covered"}
}

func ciOrdered(tree *domain.ResultTree) domain.ValidationFinding {
	check := func(ci *domain.ConfidenceInterval) bool {
		return ci == nil || ci.Lower <= ci.Upper
	}
	for trait, results := range tree.DiseaseRisk {
		for _, result := range results {
			if !check(result.RelativeRiskCI) {
				return domain.ValidationFinding{
					Status:  domain.StatusConcern,
					Details: fmt.Sprintf("inverted confidence interval on %s (%s)", result.RSID, trait),
				}
			}
		}
	}
	for key, score := range tree.PolygenicScores {
		if !check(score.RawScoreCI) || !check(score.ZScoreCI) {
			return domain.ValidationFinding{
				Status:  domain.StatusConcern,
				Details: fmt.Sprintf("inverted confidence interval on score %s", key),
			}
		}
	}
	return domain.ValidationFinding{Status: domain.StatusPass, Details: "all confidence intervals ordered"}
}

func callRateFloor(tree *domain.ResultTree) domain.ValidationFinding {
	if tree.Stats == nil {
		return domain.ValidationFinding{Status: domain.StatusNotApplicable, Details: "sample statistics unavailable"}
	}
	if tree.Stats.CallRate < 0.97 {
		return domain.ValidationFinding{
			Status:  domain.StatusConcern,
			Details: fmt.Sprintf("call rate %.4f below 0.97 quality floor", tree.Stats.CallRate),
		}
	}
	return domain.ValidationFinding{Status: domain.StatusPass, Details: fmt.Sprintf("call rate %.4f", tree.Stats.CallRate)}
}
