package service

import (
	"fmt"
	"math"
	"sort"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/rzimmerman2022/genetic-analyzer-ultra/internal/domain"
)

// ciDivisor converts a 95% confidence interval width to a standard error
// (width / 2*1.96).
const ciDivisor = 3.92

// stdNormal is the reference distribution for percentile conversion.
var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// ScoreEngine computes polygenic scores against a reference population
// distribution.
type ScoreEngine struct {
	logger *logrus.Logger
}

// NewScoreEngine creates a polygenic score engine.
func NewScoreEngine(logger *logrus.Logger) *ScoreEngine {
	return &ScoreEngine{logger: logger}
}

// Compute evaluates one score model against the sample. Markers absent from
// the sample contribute nothing; the result reports how many of the model's
// markers were found. The z-score confidence interval is present only when at
// least one used variant supplied weight uncertainty.
func (se *ScoreEngine) Compute(calls map[string]domain.GenotypeCall, model domain.ScoreModel) (*domain.PolygenicScoreResult, error) {
	if model.PopulationSD <= 0 {
		return nil, fmt.Errorf("score model %s: %w", model.Key, domain.ErrZeroPopulationSD)
	}

	rsids := make([]string, 0, len(model.Variants))
	for rsid := range model.Variants {
		rsids = append(rsids, rsid)
	}
	sort.Strings(rsids)

	var (
		raw           float64
		variance      float64
		haveVariance  bool
		found         int
		contributions []domain.VariantContribution
	)

	for _, rsid := range rsids {
		variant := model.Variants[rsid]
		call, ok := calls[rsid]
		if !ok {
			continue
		}
		if err := call.Validate(); err != nil {
			return nil, err
		}
		found++

		effective := ResolveStrand(call.Genotype, variant.EffectAllele)
		count := countAllele(effective, variant.EffectAllele)
		contribution := float64(count) * variant.Weight
		raw += contribution

		if sd := weightSE(variant); sd != nil {
			variance += float64(count*count) * (*sd) * (*sd)
			haveVariance = true
		}

		contributions = append(contributions, domain.VariantContribution{
			RSID:         rsid,
			Genotype:     effective,
			AlleleCount:  count,
			Weight:       variant.Weight,
			Contribution: contribution,
		})
	}

	z := (raw - model.PopulationMean) / model.PopulationSD
	percentile := stdNormal.CDF(z) * 100

	result := &domain.PolygenicScoreResult{
		Key:            model.Key,
		Name:           model.Name,
		RawScore:       raw,
		ZScore:         z,
		Percentile:     percentile,
		VariantsFound:  found,
		VariantsTotal:  len(model.Variants),
		VariantsUsed:   fmt.Sprintf("%d/%d", found, len(model.Variants)),
		Interpretation: interpretScore(z, percentile, model),
		PMID:           model.PMID,
		Contributions:  contributions,
	}

	if haveVariance {
		margin := 1.96 * math.Sqrt(variance)
		result.RawScoreCI = &domain.ConfidenceInterval{Lower: raw - margin, Upper: raw + margin}
		result.ZScoreCI = &domain.ConfidenceInterval{
			Lower: (raw - margin - model.PopulationMean) / model.PopulationSD,
			Upper: (raw + margin - model.PopulationMean) / model.PopulationSD,
		}
	}

	se.logger.WithFields(logrus.Fields{
		"model":      model.Key,
		"raw_score":  raw,
		"z_score":    z,
		"percentile": percentile,
		"variants":   result.VariantsUsed,
	}).Debug("Computed polygenic score")

	return result, nil
}

// weightSE returns the standard error of a variant weight, preferring an
// explicit SE over one derived from the weight's confidence interval.
func weightSE(v domain.ScoreVariant) *float64 {
	if v.SEWeight != nil {
		return v.SEWeight
	}
	if v.WeightCI != nil {
		se := (v.WeightCI.Upper - v.WeightCI.Lower) / ciDivisor
		return &se
	}
	return nil
}

// interpretScore renders the score for its family: percentile bands for risk
// and education scores, a natural-unit deviation for height.
func interpretScore(z, percentile float64, model domain.ScoreModel) string {
	switch model.Family {
	case domain.FamilyHeight:
		// PopulationSD is in mm; the report reads in cm.
		cm := z * model.PopulationSD / 10
		return fmt.Sprintf("Predicted height deviation: %+.1f cm from population average", cm)
	case domain.FamilyEducation:
		switch {
		case percentile >= 80:
			return "High genetic predisposition for educational attainment"
		case percentile >= 20:
			return "Average genetic predisposition for educational attainment"
		default:
			return "Below average genetic predisposition for educational attainment"
		}
	case domain.FamilyDiseaseRisk:
		switch {
		case percentile >= 95:
			return "High genetic risk (top 5%)"
		case percentile >= 80:
			return "Moderately high genetic risk (top 20%)"
		case percentile >= 20:
			return "Average genetic risk"
		default:
			return "Low genetic risk (bottom 20%)"
		}
	default:
		return "Score calculated"
	}
}
