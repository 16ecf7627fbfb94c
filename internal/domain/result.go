package domain

// BasicStats summarizes the genotyping sample as a whole.
type BasicStats struct {
	TotalVariants         int            `json:"total_variants"`
	CallRate              float64        `json:"call_rate"`
	PerChromosome         map[string]int `json:"variants_per_chromosome"`
	Homozygous            int            `json:"homozygous_variants"`
	Heterozygous          int            `json:"heterozygous_variants"`
	HeterozygosityRate    float64        `json:"heterozygosity_rate"`
	TiTvRatio             float64        `json:"ti_tv_ratio"`
	InbreedingCoefficient float64        `json:"inbreeding_coefficient"`
	HWEDeviation          float64        `json:"hardy_weinberg_deviation"`
}

// StarAlleleCall is one pharmacogene variant observed in the sample.
type StarAlleleCall struct {
	RSID       string `json:"rsid"`
	Genotype   string `json:"genotype"`
	StarAllele string `json:"star_allele"`
	Function   string `json:"function"`
}

// PharmacogeneResult is the metabolizer prediction for one gene.
type PharmacogeneResult struct {
	Gene          string           `json:"gene"`
	Variants      []StarAlleleCall `json:"variants"`
	Phenotype     string           `json:"predicted_phenotype"`
	AffectedDrugs []string         `json:"affected_drugs"`
	Implications  string           `json:"clinical_implications"`
	PMID          string           `json:"pmid,omitempty"`
}

// RareFinding is one detected rare pathogenic variant.
type RareFinding struct {
	RSID          string `json:"rsid"`
	Gene          string `json:"gene"`
	Genotype      string `json:"genotype"`
	Condition     string `json:"condition"`
	Inheritance   string `json:"inheritance"`
	Pathogenicity string `json:"pathogenicity"`
	Significance  string `json:"clinical_significance"`
}

// AncestryMarkerCall is one ancestry-informative marker observed in the
// sample, with ancestral/derived allele counts.
type AncestryMarkerCall struct {
	RSID             string `json:"rsid"`
	Gene             string `json:"gene"`
	Trait            string `json:"trait"`
	Genotype         string `json:"genotype"`
	AncestralAlleles int    `json:"ancestral_alleles"`
	DerivedAlleles   int    `json:"derived_alleles"`
}

// AncestryResult is the marker-panel ancestry summary. PanelInference is
// "UNKNOWN" when no reference panel was configured.
type AncestryResult struct {
	Markers                []AncestryMarkerCall `json:"markers"`
	DerivedAlleleFrequency float64              `json:"derived_allele_frequency"`
	PreliminaryInference   string               `json:"preliminary_inference"`
	PanelInference         string               `json:"panel_inference"`
	Note                   string               `json:"note"`
}

// TraitFinding is one genotype→phenotype trait lookup result.
type TraitFinding struct {
	RSID      string `json:"rsid"`
	Gene      string `json:"gene"`
	Trait     string `json:"trait"`
	Genotype  string `json:"genotype"`
	Phenotype string `json:"phenotype"`
}

// ResultTree is the full structured output of one analysis run. It is owned
// exclusively by the pipeline driver; stages receive read-only views of their
// inputs and return fresh fragments that the driver attaches here. The
// validation harness and report collaborators consume it read-only.
type ResultTree struct {
	Stats            *BasicStats                      `json:"advanced_stats,omitempty"`
	DiseaseRisk      map[string][]VariantRiskResult   `json:"disease_risk,omitempty"`
	PolygenicScores  map[string]PolygenicScoreResult  `json:"polygenic_scores,omitempty"`
	Pharmacogenomics map[string]PharmacogeneResult    `json:"pharmacogenomics,omitempty"`
	RareVariants     []RareFinding                    `json:"rare_variants,omitempty"`
	Ancestry         *AncestryResult                  `json:"ancestry,omitempty"`
	Traits           map[string][]TraitFinding        `json:"traits,omitempty"`
	Validation       []ValidationFinding              `json:"validation_summary_report,omitempty"`
	Provenance       *ProvenanceRecord                `json:"provenance_data,omitempty"`
}
