// Package domain contains the core entities and types for consumer genotype
// analysis: effect-database records, genotype calls, per-variant risk results,
// polygenic score results, validation findings, and run provenance.
//
// Effect sizes are odds ratios (OR): the multiplicative change in outcome odds
// per copy of the effect allele relative to the reference allele. An OR of
// exactly 1 means no effect; ORs are only defined for positive values.
package domain

// EffectKind discriminates how an effect record is interpreted. It replaces
// the per-record key probing of earlier database layouts with a closed set of
// kinds that consumers switch on.
type EffectKind string

const (
	// RiskAlleleOR marks a record whose numeric effect size is the odds
	// ratio per copy of the effect allele, with OR > 1 meaning risk.
	RiskAlleleOR EffectKind = "risk_allele_or"
	// ProtectiveAlleleOR marks a record whose effect allele lowers odds
	// (OR < 1).
	ProtectiveAlleleOR EffectKind = "protective_allele_or"
	// QualitativeMetabolizer marks a record with no numeric effect size;
	// the genotype maps to a metabolizer phenotype label instead.
	QualitativeMetabolizer EffectKind = "qualitative_metabolizer"
	// TraitGenotype marks a record interpreted via a genotype→phenotype
	// lookup table.
	TraitGenotype EffectKind = "trait_genotype"
	// AncestryMarker marks an ancestry-informative marker with ancestral
	// and derived alleles.
	AncestryMarker EffectKind = "ancestry_marker"
)

// IsValid reports whether the effect kind is a member of the closed set.
func (k EffectKind) IsValid() bool {
	switch k {
	case RiskAlleleOR, ProtectiveAlleleOR, QualitativeMetabolizer, TraitGenotype, AncestryMarker:
		return true
	default:
		return false
	}
}

// String returns the string representation of the effect kind.
func (k EffectKind) String() string {
	return string(k)
}

// RiskLevel is the qualitative label attached to a single-variant risk
// estimate.
type RiskLevel string

const (
	RiskLow                RiskLevel = "Low"
	RiskModerate           RiskLevel = "Moderate"
	RiskModeratelyHigh     RiskLevel = "Moderately High"
	RiskHigh               RiskLevel = "High"
	RiskProtective         RiskLevel = "Protective"
	RiskStronglyProtective RiskLevel = "Strongly Protective"
	// RiskVariable is used for qualitative metabolizer records where the
	// impact depends on the substance involved.
	RiskVariable RiskLevel = "Variable by substance"
)

// IsValid reports whether the risk level is one of the defined labels.
func (r RiskLevel) IsValid() bool {
	switch r {
	case RiskLow, RiskModerate, RiskModeratelyHigh, RiskHigh,
		RiskProtective, RiskStronglyProtective, RiskVariable:
		return true
	default:
		return false
	}
}

// String returns the string representation of the risk level.
func (r RiskLevel) String() string {
	return string(r)
}

// FindingStatus is the outcome of a single validation rule.
type FindingStatus string

const (
	StatusPass              FindingStatus = "PASS"
	StatusConcern           FindingStatus = "CONCERN"
	StatusDirectionConflict FindingStatus = "DIRECTION_CONFLICT"
	StatusNotApplicable     FindingStatus = "NOT_APPLICABLE"
)

// IsValid reports whether the status is one of the defined outcomes.
func (s FindingStatus) IsValid() bool {
	switch s {
	case StatusPass, StatusConcern, StatusDirectionConflict, StatusNotApplicable:
		return true
	default:
		return false
	}
}

// String returns the string representation of the finding status.
func (s FindingStatus) String() string {
	return string(s)
}

// ScoreFamily selects how a polygenic score is interpreted for the reader.
// Disease-risk families read a high percentile as elevated risk; quantitative
// trait families read the z-score as a magnitude in natural units.
type ScoreFamily string

const (
	FamilyDiseaseRisk ScoreFamily = "disease_risk"
	FamilyHeight      ScoreFamily = "height"
	FamilyEducation   ScoreFamily = "education"
	FamilyOther       ScoreFamily = "other"
)

// IsValid reports whether the score family is a member of the closed set.
func (f ScoreFamily) IsValid() bool {
	switch f {
	case FamilyDiseaseRisk, FamilyHeight, FamilyEducation, FamilyOther:
		return true
	default:
		return false
	}
}

// String returns the string representation of the score family.
func (f ScoreFamily) String() string {
	return string(f)
}
