package service

import "github.com/rzimmerman2022/genetic-analyzer-ultra/internal/domain"

// effectBin is one magnitude bucket for odds-ratio classification. Bounds are
// inclusive and the bins are checked in order, so boundary values land in the
// earlier bin.
type effectBin struct {
	low, high float64
	label     string
}

// effectBins are the fixed literature-derived magnitude buckets. Protective
// ratios are inverted before lookup so OR 0.5 and OR 2.0 classify with the
// same magnitude.
var effectBins = []effectBin{
	{0.9, 1.1, "negligible"},
	{0.8, 0.9, "small"},
	{1.1, 1.25, "small"},
	{0.67, 0.8, "moderate"},
	{1.25, 1.5, "moderate"},
	{0.5, 0.67, "large"},
	{1.5, 2.0, "large"},
}

// CategorizeOR buckets an odds ratio into a qualitative magnitude/direction
// category. nil maps to "unknown", exactly 1 to "negligible", and
// non-positive values to a flag category since odds ratios are only defined
// for positive values. Protective ratios (<1) get a "_protective" suffix on
// any non-negligible label. Total: every finite positive input maps to
// exactly one label.
func CategorizeOR(or *float64) domain.EffectCategory {
	if or == nil {
		return "unknown"
	}
	v := *or
	switch {
	case v == 1:
		return "negligible"
	case v <= 0:
		return "very_large_protective_effect_or_error"
	}

	protective := v < 1
	effective := v
	if protective {
		effective = 1 / v
	}

	for _, bin := range effectBins {
		if bin.low <= effective && effective <= bin.high {
			if protective && bin.label != "negligible" {
				return domain.EffectCategory(bin.label + "_protective")
			}
			return domain.EffectCategory(bin.label)
		}
	}

	if protective {
		return "very_large_protective"
	}
	return "very_large_risk"
}
