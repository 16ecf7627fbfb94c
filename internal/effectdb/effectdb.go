// Package effectdb holds the static, versioned effect database: curated
// tables of literature-derived variant effects (disease risk, pharmacogenomic,
// trait, ancestry) and the named polygenic score models. The database is pure
// data, built once at startup and immutable for the run.
package effectdb

import (
	"fmt"

	"github.com/rzimmerman2022/genetic-analyzer-ultra/internal/domain"
)

// AnalysisVersion identifies the scoring methodology release.
const AnalysisVersion = "3.2.0"

// StarAllele describes one star-allele-defining variant of a pharmacogene.
// Variant is the defining nucleotide as reported by genotyping arrays; it is
// empty for indel-defined alleles, which arrays cannot call reliably.
type StarAllele struct {
	Allele   string `yaml:"allele"`
	Variant  string `yaml:"variant"`
	Function string `yaml:"function"` // none, decreased, normal, increased
}

// PharmacogeneDef is the variant table and drug list for one pharmacogene.
type PharmacogeneDef struct {
	Gene     string                `yaml:"gene"`
	Variants map[string]StarAllele `yaml:"variants"`
	Drugs    []string              `yaml:"drugs"`
	PMID     string                `yaml:"pmid"`
}

// TraitRecord maps genotypes of one marker to phenotype descriptions.
type TraitRecord struct {
	RSID      string            `yaml:"rsid"`
	Gene      string            `yaml:"gene"`
	Trait     string            `yaml:"trait"`
	Category  string            `yaml:"category"`
	Genotypes map[string]string `yaml:"genotypes"`
}

// AncestryMarkerDef is one ancestry-informative marker.
type AncestryMarkerDef struct {
	RSID      string `yaml:"rsid"`
	Gene      string `yaml:"gene"`
	Trait     string `yaml:"trait"`
	Ancestral string `yaml:"ancestral"`
	Derived   string `yaml:"derived"`
}

// RareRecord is one rare pathogenic variant screened for.
type RareRecord struct {
	RSID             string  `yaml:"rsid"`
	Gene             string  `yaml:"gene"`
	Condition        string  `yaml:"condition"`
	Inheritance      string  `yaml:"inheritance"`
	Pathogenicity    string  `yaml:"pathogenicity"`
	PathogenicAllele string  `yaml:"pathogenic_allele"`
	MAF              float64 `yaml:"maf"`
	Significance     string  `yaml:"clinical_significance"`
}

// Database is the complete effect database for one run.
type Database struct {
	DiseaseRisk     map[string]domain.EffectRecord
	Pharmacogenes   map[string]PharmacogeneDef
	Traits          map[string]TraitRecord
	AncestryMarkers map[string]AncestryMarkerDef
	RareVariants    map[string]RareRecord
	ScoreModels     map[string]domain.ScoreModel

	versions map[string]string
}

// New builds the database from the built-in tables and validates every
// record. The returned database must not be mutated afterwards.
func New() (*Database, error) {
	db := &Database{
		DiseaseRisk:     diseaseRiskTable(),
		Pharmacogenes:   pharmacogeneTable(),
		Traits:          traitTable(),
		AncestryMarkers: ancestryMarkerTable(),
		RareVariants:    rareVariantTable(),
		ScoreModels:     scoreModelTable(),
		versions:        databaseVersions(),
	}
	if err := db.validate(); err != nil {
		return nil, err
	}
	return db, nil
}

func (db *Database) validate() error {
	for rsid, rec := range db.DiseaseRisk {
		if err := rec.Validate(); err != nil {
			return fmt.Errorf("disease risk table: %w", err)
		}
		if rec.RSID != rsid {
			return fmt.Errorf("disease risk table: key %s does not match record rsid %s", rsid, rec.RSID)
		}
	}
	for key, model := range db.ScoreModels {
		if model.PopulationSD <= 0 {
			return fmt.Errorf("score model %s: %w", key, domain.ErrZeroPopulationSD)
		}
		if len(model.Variants) == 0 {
			return fmt.Errorf("score model %s: no variants", key)
		}
	}
	return nil
}

// Versions returns the database name → version tag mapping recorded in the
// provenance of every run. The returned map is a copy.
func (db *Database) Versions() map[string]string {
	out := make(map[string]string, len(db.versions))
	for k, v := range db.versions {
		out[k] = v
	}
	return out
}

// Model returns the named polygenic score model.
func (db *Database) Model(key string) (domain.ScoreModel, error) {
	model, ok := db.ScoreModels[key]
	if !ok {
		return domain.ScoreModel{}, fmt.Errorf("%q: %w", key, domain.ErrUnknownScoreModel)
	}
	return model, nil
}

// databaseVersions pins the external database releases the built-in tables
// were curated against.
func databaseVersions() map[string]string {
	return map[string]string{
		"ClinVar":                     "2025-03-01",
		"GWAS_Catalog":                "e110_r2025-02-15",
		"dbSNP":                       "Build 156",
		"gnomAD":                      "v4.0",
		"PharmGKB":                    "2025-03-10",
		"RefSeq":                      "Release 220",
		"SSGAC_EA_PRS_Model":          "Okbay_et_al_2022_NatureGenetics",
		"CardiogramC4D_CAD_PRS_Model": "Inouye_et_al_2018_JACC",
	}
}

func ptr(v float64) *float64 { return &v }

func ci(lo, hi float64) *domain.ConfidenceInterval {
	return &domain.ConfidenceInterval{Lower: lo, Upper: hi}
}
