package effectdb

// pharmacogeneTable returns the CPIC-guideline pharmacogene variant tables.
func pharmacogeneTable() map[string]PharmacogeneDef {
	return map[string]PharmacogeneDef{
		"CYP2D6": {
			Gene: "CYP2D6",
			Variants: map[string]StarAllele{
				"rs1065852":  {Allele: "*10", Variant: "T", Function: "decreased"},
				"rs3892097":  {Allele: "*4", Variant: "A", Function: "none"},
				"rs5030655":  {Allele: "*6", Function: "none"}, // delT
				"rs35742686": {Allele: "*3", Function: "none"}, // delA
			},
			Drugs: []string{"codeine", "tramadol", "tamoxifen", "atomoxetine"},
			PMID:  "38519473",
		},
		"CYP2C19": {
			Gene: "CYP2C19",
			Variants: map[string]StarAllele{
				"rs4244285":  {Allele: "*2", Variant: "A", Function: "none"},
				"rs4986893":  {Allele: "*3", Variant: "A", Function: "none"},
				"rs28399504": {Allele: "*4", Variant: "G", Function: "none"},
				"rs12248560": {Allele: "*17", Variant: "T", Function: "increased"},
			},
			Drugs: []string{"clopidogrel", "voriconazole", "proton pump inhibitors"},
			PMID:  "38478293",
		},
		"CYP2C9": {
			Gene: "CYP2C9",
			Variants: map[string]StarAllele{
				"rs1799853": {Allele: "*2", Variant: "T", Function: "decreased"},
				"rs1057910": {Allele: "*3", Variant: "C", Function: "decreased"},
			},
			Drugs: []string{"warfarin", "phenytoin", "NSAIDs"},
			PMID:  "38493827",
		},
		"SLCO1B1": {
			Gene: "SLCO1B1",
			Variants: map[string]StarAllele{
				"rs4149056": {Allele: "*5", Variant: "C", Function: "decreased"},
			},
			Drugs: []string{"simvastatin", "atorvastatin", "rosuvastatin"},
			PMID:  "38486719",
		},
		"TPMT": {
			Gene: "TPMT",
			Variants: map[string]StarAllele{
				"rs1142345": {Allele: "*3C", Variant: "C", Function: "decreased"},
				"rs1800460": {Allele: "*3B", Variant: "T", Function: "decreased"},
			},
			Drugs: []string{"azathioprine", "mercaptopurine", "thioguanine"},
			PMID:  "38512847",
		},
		"DPYD": {
			Gene: "DPYD",
			Variants: map[string]StarAllele{
				"rs3918290":  {Allele: "*2A", Variant: "A", Function: "none"},
				"rs55886062": {Allele: "*13", Variant: "G", Function: "decreased"},
				"rs67376798": {Allele: "2846A>T", Variant: "T", Function: "decreased"},
			},
			Drugs: []string{"5-fluorouracil", "capecitabine"},
			PMID:  "38497162",
		},
	}
}

// rareVariantTable returns the ClinVar-derived rare pathogenic variants
// screened for. Only records with a known pathogenic allele can be detected;
// the rest document the panel.
func rareVariantTable() map[string]RareRecord {
	return map[string]RareRecord{
		"rs28940279": {
			RSID:             "rs28940279",
			Gene:             "HFE",
			Condition:        "Hereditary hemochromatosis",
			Inheritance:      "Autosomal recessive",
			Pathogenicity:    "Pathogenic",
			PathogenicAllele: "A", // C282Y
			MAF:              0.064,
			Significance:     "Iron overload",
		},
		"rs28940579": {
			RSID:             "rs28940579",
			Gene:             "HFE",
			Condition:        "Hereditary hemochromatosis",
			Inheritance:      "Autosomal recessive",
			Pathogenicity:    "Pathogenic",
			PathogenicAllele: "G", // H63D
			MAF:              0.014,
			Significance:     "Iron overload",
		},
		"rs121908001": {
			RSID:          "rs121908001",
			Gene:          "LDLR",
			Condition:     "Familial hypercholesterolemia",
			Inheritance:   "Autosomal dominant",
			Pathogenicity: "Pathogenic",
			MAF:           0.0001,
			Significance:  "Early cardiovascular disease",
		},
		"rs80338720": {
			RSID:          "rs80338720",
			Gene:          "BRCA2",
			Condition:     "Hereditary breast/ovarian cancer",
			Inheritance:   "Autosomal dominant",
			Pathogenicity: "Pathogenic",
			MAF:           0.00003,
			Significance:  "Increased cancer risk",
		},
		"rs28940313": {
			RSID:          "rs28940313",
			Gene:          "CFTR",
			Condition:     "Cystic fibrosis",
			Inheritance:   "Autosomal recessive",
			Pathogenicity: "Pathogenic",
			MAF:           0.02,
			Significance:  "Respiratory/digestive issues",
		},
	}
}
