package effectdb

// traitTable returns genotype→phenotype trait lookups. Categories group the
// findings in the result tree (sensory, longevity, curiosities).
func traitTable() map[string]TraitRecord {
	return map[string]TraitRecord{
		"rs4481887": {
			RSID:     "rs4481887",
			Gene:     "OR5A2",
			Trait:    "Asparagus metabolite detection",
			Category: "sensory",
			Genotypes: map[string]string{
				"GG": "Can smell asparagus metabolites in urine",
				"AG": "Can smell asparagus metabolites in urine",
				"AA": "Cannot smell asparagus metabolites",
			},
		},
		"rs713598": {
			RSID:     "rs713598",
			Gene:     "TAS2R38",
			Trait:    "Bitter taste perception",
			Category: "sensory",
			Genotypes: map[string]string{
				"CC": "Super-taster for bitter compounds",
				"CG": "Moderate bitter taste sensitivity",
				"GG": "Reduced bitter taste perception",
			},
		},
		"rs72921001": {
			RSID:     "rs72921001",
			Gene:     "OR6A2",
			Trait:    "Cilantro taste perception",
			Category: "sensory",
			Genotypes: map[string]string{
				"CC": "Cilantro tastes like soap",
				"AC": "Mild soapy taste from cilantro",
				"AA": "Normal cilantro taste",
			},
		},
		"rs4988235": {
			RSID:     "rs4988235",
			Gene:     "MCM6",
			Trait:    "Lactase persistence",
			Category: "metabolic",
			Genotypes: map[string]string{
				"AA": "Adult lactose tolerance",
				"AG": "Adult lactose tolerance (one persistent allele)",
				"GG": "Likely lactose intolerant as adult",
			},
		},
		"rs2802292": {
			RSID:     "rs2802292",
			Gene:     "FOXO3",
			Trait:    "Longevity association",
			Category: "longevity",
			Genotypes: map[string]string{
				"GG": "Carries two longevity-associated alleles",
				"GT": "Carries one longevity-associated allele",
				"TT": "No longevity-associated alleles at this marker",
			},
		},
		"rs1815739": {
			RSID:     "rs1815739",
			Gene:     "ACTN3",
			Trait:    "Muscle fiber composition",
			Category: "athletic",
			Genotypes: map[string]string{
				"CC": "Power/sprint-oriented muscle composition",
				"CT": "Mixed power and endurance profile",
				"TT": "Endurance-oriented muscle composition",
			},
		},
	}
}

// ancestryMarkerTable returns the ancestry-informative marker panel.
func ancestryMarkerTable() map[string]AncestryMarkerDef {
	return map[string]AncestryMarkerDef{
		"rs1426654":  {RSID: "rs1426654", Gene: "SLC24A5", Trait: "skin pigmentation", Ancestral: "G", Derived: "A"},
		"rs16891982": {RSID: "rs16891982", Gene: "SLC45A2", Trait: "skin pigmentation", Ancestral: "C", Derived: "G"},
		"rs1042602":  {RSID: "rs1042602", Gene: "TYR", Trait: "eye color", Ancestral: "C", Derived: "A"},
		"rs12913832": {RSID: "rs12913832", Gene: "HERC2/OCA2", Trait: "eye color", Ancestral: "A", Derived: "G"},
		"rs3827760":  {RSID: "rs3827760", Gene: "EDAR", Trait: "hair thickness", Ancestral: "A", Derived: "G"},
		"rs174570":   {RSID: "rs174570", Gene: "FADS2", Trait: "fatty acid metabolism", Ancestral: "C", Derived: "T"},
		"rs4988235":  {RSID: "rs4988235", Gene: "MCM6", Trait: "lactase persistence", Ancestral: "G", Derived: "A"},
		"rs1129038":  {RSID: "rs1129038", Gene: "HERC2", Trait: "eye color", Ancestral: "A", Derived: "G"},
		"rs2814778":  {RSID: "rs2814778", Gene: "DARC", Trait: "Duffy blood group", Ancestral: "T", Derived: "C"},
		"rs3916235":  {RSID: "rs3916235", Gene: "SLC24A5", Trait: "skin pigmentation", Ancestral: "T", Derived: "C"},
	}
}
