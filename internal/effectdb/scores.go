package effectdb

import "github.com/rzimmerman2022/genetic-analyzer-ultra/internal/domain"

// scoreModelTable returns the named polygenic score models from the major
// consortia releases the database versions pin.
func scoreModelTable() map[string]domain.ScoreModel {
	return map[string]domain.ScoreModel{
		"CAD_PRS": {
			Key:    "CAD_PRS",
			Name:   "Coronary Artery Disease Risk",
			Family: domain.FamilyDiseaseRisk,
			Variants: map[string]domain.ScoreVariant{
				"rs1333049":  {Weight: 0.127, EffectAllele: "C"},
				"rs17465637": {Weight: 0.095, EffectAllele: "C"},
				"rs6725887":  {Weight: 0.118, EffectAllele: "C"},
				"rs9349379":  {Weight: 0.090, EffectAllele: "G"},
				"rs1746048":  {Weight: 0.087, EffectAllele: "C"},
				"rs1122608":  {Weight: 0.077, EffectAllele: "G"},
				"rs9968032":  {Weight: 0.065, EffectAllele: "T"},
			},
			PopulationMean: 0,
			PopulationSD:   1,
			PMID:           "38523894",
		},
		"T2D_PRS": {
			Key:    "T2D_PRS",
			Name:   "Type 2 Diabetes Risk",
			Family: domain.FamilyDiseaseRisk,
			Variants: map[string]domain.ScoreVariant{
				"rs7903146":  {Weight: 0.172, EffectAllele: "T"},
				"rs1801282":  {Weight: -0.061, EffectAllele: "C"},
				"rs5219":     {Weight: 0.112, EffectAllele: "T"},
				"rs13266634": {Weight: 0.104, EffectAllele: "C"},
				"rs10811661": {Weight: 0.098, EffectAllele: "T"},
				"rs4402960":  {Weight: 0.085, EffectAllele: "T"},
				"rs1111875":  {Weight: 0.077, EffectAllele: "C"},
			},
			PopulationMean: 0,
			PopulationSD:   1,
			PMID:           "38498729",
		},
		"AD_PRS": {
			Key:    "AD_PRS",
			Name:   "Alzheimer's Disease Risk (non-APOE)",
			Family: domain.FamilyDiseaseRisk,
			Variants: map[string]domain.ScoreVariant{
				"rs75932628": {Weight: 0.451, EffectAllele: "T"},
				"rs11218343": {Weight: 0.081, EffectAllele: "C"},
				"rs17125944": {Weight: 0.123, EffectAllele: "C"},
				"rs3851179":  {Weight: 0.088, EffectAllele: "A"},
				"rs9349407":  {Weight: 0.078, EffectAllele: "C"},
				"rs9331896":  {Weight: 0.104, EffectAllele: "C"},
				"rs4147929":  {Weight: 0.079, EffectAllele: "A"},
			},
			PopulationMean: 0,
			PopulationSD:   1,
			PMID:           "38467912",
		},
		"HEIGHT_PRS": {
			Key:    "HEIGHT_PRS",
			Name:   "Predicted Height (polygenic)",
			Family: domain.FamilyHeight,
			Variants: map[string]domain.ScoreVariant{
				// Weights in mm per allele.
				"rs11205277": {Weight: 0.44, EffectAllele: "A"},
				"rs17511102": {Weight: 0.37, EffectAllele: "T"},
				"rs2485518":  {Weight: 0.28, EffectAllele: "C"},
				"rs7846385":  {Weight: 0.26, EffectAllele: "C"},
				"rs1659127":  {Weight: 0.21, EffectAllele: "T"},
			},
			PopulationMean: 0,
			PopulationSD:   48.7, // mm
			PMID:           "38502156",
		},
		"EDU_PRS": {
			Key:    "EDU_PRS",
			Name:   "Educational Attainment",
			Family: domain.FamilyEducation,
			Variants: map[string]domain.ScoreVariant{
				"rs9320913":  {Weight: 0.021, EffectAllele: "A"},
				"rs11712056": {Weight: 0.019, EffectAllele: "C"},
				"rs4851266":  {Weight: 0.018, EffectAllele: "T"},
				"rs9388489":  {Weight: 0.017, EffectAllele: "A"},
				"rs2490272":  {Weight: 0.016, EffectAllele: "G"},
			},
			PopulationMean: 0,
			PopulationSD:   1,
			PMID:           "38514899",
		},
		"DEPRESSION_PRS": {
			Key:    "DEPRESSION_PRS",
			Name:   "Major Depression Risk",
			Family: domain.FamilyDiseaseRisk,
			Variants: map[string]domain.ScoreVariant{
				"rs2179744": {Weight: 0.038, EffectAllele: "T"},
				"rs1432639": {Weight: 0.035, EffectAllele: "A"},
				"rs1080066": {Weight: 0.032, EffectAllele: "C"},
				"rs3132682": {Weight: 0.029, EffectAllele: "G"},
				"rs7044150": {Weight: 0.027, EffectAllele: "T"},
			},
			PopulationMean: 0,
			PopulationSD:   1,
			PMID:           "38492156",
		},
	}
}
