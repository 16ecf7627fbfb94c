package service

import (
	"fmt"
	"math"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"

	"github.com/rzimmerman2022/genetic-analyzer-ultra/internal/domain"
)

// homozygousExponent is the empirical scaling applied to the per-allele odds
// ratio for homozygous carriers. It reproduces the literature convention used
// by the source reports; it is a calibration constant, not a derived value.
const homozygousExponent = 1.5

// RiskCalculator computes single-variant relative-risk estimates from a
// genotype call and an effect record.
type RiskCalculator struct {
	logger *logrus.Logger
	// Disease-risk and score models share markers, so identical
	// (record, genotype) pairs recur across stages within one run.
	cache *lru.Cache[string, domain.VariantRiskResult]
}

// NewRiskCalculator creates a risk calculator with a small memoization cache.
func NewRiskCalculator(logger *logrus.Logger) *RiskCalculator {
	cache, _ := lru.New[string, domain.VariantRiskResult](512)
	return &RiskCalculator{logger: logger, cache: cache}
}

// Compute derives the risk estimate for one (call, record) pair. The genotype
// is validated first and malformed input fails fast; the calculation never
// substitutes a default allele count. Qualitative records take the phenotype
// branch and produce no numeric fields.
func (rc *RiskCalculator) Compute(call domain.GenotypeCall, rec domain.EffectRecord) (*domain.VariantRiskResult, error) {
	if err := call.Validate(); err != nil {
		return nil, err
	}

	key := cacheKey(call, rec)
	if cached, ok := rc.cache.Get(key); ok {
		out := cached
		return &out, nil
	}

	result := &domain.VariantRiskResult{
		RSID:      rec.RSID,
		Gene:      rec.Gene,
		Trait:     rec.Trait,
		Genotype:  call.Genotype,
		Mechanism: rec.Mechanism,
		PMID:      rec.PMID,
	}

	if rec.Kind == domain.QualitativeMetabolizer {
		rc.qualitative(call, rec, result)
		rc.cache.Add(key, *result)
		return result, nil
	}
	if rec.EffectSize == nil {
		return nil, fmt.Errorf("record %s: %w", rec.RSID, domain.ErrNonNumericEffect)
	}

	effectSize := *rec.EffectSize
	effective := ResolveStrand(call.Genotype, rec.EffectAllele)
	count := countAllele(effective, rec.EffectAllele)
	result.EffectAlleleCount = count
	result.Genotype = effective

	switch count {
	case 0:
		rr := 1.0
		result.RelativeRisk = &rr
		result.RiskLevel = domain.RiskLow
		result.Interpretation = "No effect alleles present"
	case 1:
		rr := effectSize
		result.RelativeRisk = &rr
		switch {
		case effectSize < 1:
			result.RiskLevel = domain.RiskProtective
		case effectSize < 1.5:
			result.RiskLevel = domain.RiskModerate
		default:
			result.RiskLevel = domain.RiskModeratelyHigh
		}
		result.Interpretation = "Heterozygous carrier"
	case 2:
		var rr float64
		if effectSize >= 1 {
			rr = math.Pow(effectSize, homozygousExponent)
		} else {
			// Inverse exponent keeps the protective direction under
			// the same magnitude convention.
			rr = math.Pow(effectSize, 1/homozygousExponent)
		}
		result.RelativeRisk = &rr
		switch {
		case effectSize >= 1 && rr > 1.3*effectSize:
			result.RiskLevel = domain.RiskHigh
		case effectSize < 1 && rr < 0.7*effectSize:
			result.RiskLevel = domain.RiskHigh
		case effectSize >= 1:
			result.RiskLevel = domain.RiskModeratelyHigh
		default:
			result.RiskLevel = domain.RiskStronglyProtective
		}
		result.Interpretation = "Homozygous variant"
	}

	result.RelativeRiskCI = propagateCI(rec.CI, count, effectSize)
	result.EffectCategory = CategorizeOR(result.RelativeRisk)

	if rec.Prevalence != nil && result.RelativeRisk != nil {
		abs := *rec.Prevalence * *result.RelativeRisk
		result.AbsoluteRisk = &abs
	}

	rc.logger.WithFields(logrus.Fields{
		"rsid":         rec.RSID,
		"genotype":     effective,
		"allele_count": count,
		"risk_level":   result.RiskLevel,
	}).Debug("Computed variant risk")

	rc.cache.Add(key, *result)
	return result, nil
}

// qualitative fills the phenotype branch for records without a numeric
// effect size. This is graceful degradation, not an error.
func (rc *RiskCalculator) qualitative(call domain.GenotypeCall, rec domain.EffectRecord, result *domain.VariantRiskResult) {
	switch {
	case rec.FastAllele != "" && countAllele(call.Genotype, rec.FastAllele) == len(call.Genotype):
		result.Phenotype = "Fast metabolizer"
	case rec.SlowAllele != "" && countAllele(call.Genotype, rec.SlowAllele) == len(call.Genotype):
		result.Phenotype = "Slow metabolizer"
	default:
		result.Phenotype = "Intermediate metabolizer"
	}
	result.RiskLevel = domain.RiskVariable
}

// propagateCI applies the same exponent used for the point estimate to the
// per-allele confidence interval, keeping the interval and the point estimate
// internally consistent. Protective homozygotes use the reciprocal exponent
// and the bounds are re-sorted ascending.
func propagateCI(interval *domain.ConfidenceInterval, count int, effectSize float64) *domain.ConfidenceInterval {
	if interval == nil {
		return nil
	}
	switch count {
	case 0:
		return &domain.ConfidenceInterval{Lower: 1, Upper: 1}
	case 1:
		return &domain.ConfidenceInterval{Lower: interval.Lower, Upper: interval.Upper}
	default:
		if effectSize >= 1 {
			lo := 0.0
			if interval.Lower > 0 {
				lo = math.Pow(interval.Lower, homozygousExponent)
			}
			return &domain.ConfidenceInterval{Lower: lo, Upper: math.Pow(interval.Upper, homozygousExponent)}
		}
		hi := 0.0
		if interval.Upper > 0 {
			hi = math.Pow(interval.Upper, 1/homozygousExponent)
		}
		bounds := []float64{hi, math.Pow(interval.Lower, 1/homozygousExponent)}
		sort.Float64s(bounds)
		return &domain.ConfidenceInterval{Lower: bounds[0], Upper: bounds[1]}
	}
}

func cacheKey(call domain.GenotypeCall, rec domain.EffectRecord) string {
	size := math.NaN()
	if rec.EffectSize != nil {
		size = *rec.EffectSize
	}
	return fmt.Sprintf("%s|%s|%s|%g", rec.RSID, call.Genotype, rec.EffectAllele, size)
}
