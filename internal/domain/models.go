package domain

import (
	"fmt"
	"strings"
	"time"
)

// ConfidenceInterval is a 95% confidence interval on an effect estimate.
type ConfidenceInterval struct {
	Lower float64 `json:"lower" yaml:"lower"`
	Upper float64 `json:"upper" yaml:"upper"`
}

// EffectRecord is one row of the effect database: a literature-derived effect
// for a single marker. Records are immutable after database construction.
//
// EffectSize is nil for qualitative kinds; when present it must be > 0
// (odds ratios are strictly positive) and a value of exactly 1 means no
// effect.
type EffectRecord struct {
	RSID         string              `json:"rsid" yaml:"rsid"`
	Gene         string              `json:"gene" yaml:"gene"`
	Trait        string              `json:"trait" yaml:"trait"`
	Kind         EffectKind          `json:"kind" yaml:"kind"`
	EffectAllele string              `json:"effect_allele,omitempty" yaml:"effect_allele,omitempty"`
	OtherAllele  string              `json:"other_allele,omitempty" yaml:"other_allele,omitempty"`
	EffectSize   *float64            `json:"effect_size,omitempty" yaml:"effect_size,omitempty"`
	CI           *ConfidenceInterval `json:"ci_95,omitempty" yaml:"ci_95,omitempty"`
	MAF          float64             `json:"maf,omitempty" yaml:"maf,omitempty"`
	Prevalence   *float64            `json:"population_prevalence,omitempty" yaml:"population_prevalence,omitempty"`
	Mechanism    string              `json:"mechanism,omitempty" yaml:"mechanism,omitempty"`
	PMID         string              `json:"pmid,omitempty" yaml:"pmid,omitempty"`

	// Metabolizer alleles, set only for QualitativeMetabolizer records.
	FastAllele string `json:"fast_allele,omitempty" yaml:"fast_allele,omitempty"`
	SlowAllele string `json:"slow_allele,omitempty" yaml:"slow_allele,omitempty"`
}

// Validate checks the record invariants: a valid kind, and a strictly
// positive effect size for the numeric kinds.
func (r *EffectRecord) Validate() error {
	if r.RSID == "" {
		return fmt.Errorf("effect record validation: rsid is required")
	}
	if !r.Kind.IsValid() {
		return fmt.Errorf("effect record validation %s: %w", r.RSID, ErrInvalidEffectKind)
	}
	switch r.Kind {
	case RiskAlleleOR, ProtectiveAlleleOR:
		if r.EffectAllele == "" {
			return fmt.Errorf("effect record validation %s: effect allele is required", r.RSID)
		}
		if r.EffectSize != nil && *r.EffectSize <= 0 {
			return fmt.Errorf("effect record validation %s: %w", r.RSID, ErrNonPositiveEffectSize)
		}
	case QualitativeMetabolizer:
		if r.FastAllele == "" && r.SlowAllele == "" {
			return fmt.Errorf("effect record validation %s: metabolizer record needs a fast or slow allele", r.RSID)
		}
	}
	return nil
}

// GenotypeCall is one marker call from a genotyping sample: a one or two
// letter allele string of upper-case nucleotides.
type GenotypeCall struct {
	RSID       string `json:"rsid"`
	Chromosome string `json:"chromosome"`
	Position   int64  `json:"position"`
	Genotype   string `json:"genotype"`
}

// Validate enforces the genotype invariant: length 1 or 2, alphabet ACGT.
// Malformed genotypes fail fast; the scoring core never substitutes a
// default allele count.
func (c *GenotypeCall) Validate() error {
	n := len(c.Genotype)
	if n < 1 || n > 2 {
		return fmt.Errorf("genotype %q for %s: %w", c.Genotype, c.RSID, ErrMalformedGenotype)
	}
	for i := 0; i < n; i++ {
		switch c.Genotype[i] {
		case 'A', 'C', 'G', 'T':
		default:
			return fmt.Errorf("genotype %q for %s: %w", c.Genotype, c.RSID, ErrMalformedGenotype)
		}
	}
	return nil
}

// Heterozygous reports whether the call carries two distinct alleles.
func (c *GenotypeCall) Heterozygous() bool {
	return len(c.Genotype) == 2 && c.Genotype[0] != c.Genotype[1]
}

// VariantRiskResult is the computed risk estimate for one
// (EffectRecord, GenotypeCall) pair. It is derived, never stored
// independently, and recomputed each run.
type VariantRiskResult struct {
	RSID              string              `json:"rsid"`
	Gene              string              `json:"gene"`
	Trait             string              `json:"trait"`
	Genotype          string              `json:"genotype"`
	EffectAlleleCount int                 `json:"effect_allele_count"`
	RelativeRisk      *float64            `json:"relative_risk,omitempty"`
	RelativeRiskCI    *ConfidenceInterval `json:"relative_risk_ci_95,omitempty"`
	AbsoluteRisk      *float64            `json:"absolute_risk,omitempty"`
	RiskLevel         RiskLevel           `json:"risk_level,omitempty"`
	Interpretation    string              `json:"interpretation,omitempty"`
	EffectCategory    EffectCategory      `json:"effect_category,omitempty"`
	// Phenotype is set instead of the numeric fields for qualitative
	// metabolizer records.
	Phenotype string `json:"phenotype,omitempty"`
	Mechanism string `json:"mechanism,omitempty"`
	PMID      string `json:"pmid,omitempty"`
}

// EffectCategory is the qualitative magnitude/direction bucket returned by
// the effect classifier, e.g. "negligible", "moderate", "large_protective".
type EffectCategory string

// Protective reports whether the category carries the protective direction.
func (c EffectCategory) Protective() bool {
	return strings.Contains(string(c), "protective")
}

// String returns the string representation of the effect category.
func (c EffectCategory) String() string {
	return string(c)
}

// ScoreVariant is one marker entry in a polygenic score model: its per-allele
// weight, effect allele, and optional uncertainty on the weight.
type ScoreVariant struct {
	Weight       float64             `json:"weight" yaml:"weight"`
	EffectAllele string              `json:"effect_allele" yaml:"effect_allele"`
	SEWeight     *float64            `json:"se_weight,omitempty" yaml:"se_weight,omitempty"`
	WeightCI     *ConfidenceInterval `json:"ci_95_weight,omitempty" yaml:"ci_95_weight,omitempty"`
}

// ScoreModel is a named polygenic score: a weighted set of markers plus the
// reference-population distribution used for normalization.
type ScoreModel struct {
	Key            string                  `json:"key" yaml:"key"`
	Name           string                  `json:"name" yaml:"name"`
	Family         ScoreFamily             `json:"family" yaml:"family"`
	Variants       map[string]ScoreVariant `json:"variants" yaml:"variants"`
	PopulationMean float64                 `json:"population_mean" yaml:"population_mean"`
	PopulationSD   float64                 `json:"population_sd" yaml:"population_sd"`
	PMID           string                  `json:"pmid,omitempty" yaml:"pmid,omitempty"`
}

// VariantContribution is one marker's contribution to a polygenic score.
type VariantContribution struct {
	RSID         string  `json:"rsid"`
	Genotype     string  `json:"genotype"`
	AlleleCount  int     `json:"allele_count"`
	Weight       float64 `json:"weight"`
	Contribution float64 `json:"contribution"`
}

// PolygenicScoreResult is the output of the polygenic score engine for one
// model. CIs are nil when no model variant supplied uncertainty: absence of
// information is never reported as certainty.
type PolygenicScoreResult struct {
	Key            string                `json:"key"`
	Name           string                `json:"name"`
	RawScore       float64               `json:"raw_score"`
	RawScoreCI     *ConfidenceInterval   `json:"raw_score_ci_95,omitempty"`
	ZScore         float64               `json:"z_score"`
	ZScoreCI       *ConfidenceInterval   `json:"z_score_ci_95,omitempty"`
	Percentile     float64               `json:"percentile"`
	VariantsFound  int                   `json:"variants_found"`
	VariantsTotal  int                   `json:"variants_total"`
	VariantsUsed   string                `json:"variants_used"`
	Interpretation string                `json:"interpretation"`
	PMID           string                `json:"pmid,omitempty"`
	Contributions  []VariantContribution `json:"variant_details"`
}

// ValidationFinding is one validation-harness result, generated fresh each
// run and never persisted across runs except via the provenance hash.
type ValidationFinding struct {
	RuleName string        `json:"rule_name"`
	Status   FindingStatus `json:"status"`
	Details  string        `json:"details"`
}

// ProvenanceRecord captures the metadata needed to reproduce a run. The
// result hash is a pure deterministic function of the canonically serialized
// result tree.
type ProvenanceRecord struct {
	RunID            string            `json:"run_id"`
	ScriptVersion    string            `json:"analysis_script_version"`
	DatabaseVersions map[string]string `json:"database_versions_used"`
	StartTime        time.Time         `json:"analysis_start_time_utc"`
	EndTime          time.Time         `json:"analysis_end_time_utc,omitempty"`
	ResultHash       string            `json:"reproducibility_hash_sha256,omitempty"`
}
