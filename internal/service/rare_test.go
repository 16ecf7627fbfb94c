package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rzimmerman2022/genetic-analyzer-ultra/internal/domain"
	"github.com/rzimmerman2022/genetic-analyzer-ultra/internal/effectdb"
)

func rareDefs() map[string]effectdb.RareRecord {
	return map[string]effectdb.RareRecord{
		"rs28940279": {
			RSID:             "rs28940279",
			Gene:             "HFE",
			Condition:        "Hereditary hemochromatosis (C282Y)",
			Inheritance:      "autosomal recessive",
			Pathogenicity:    "pathogenic",
			PathogenicAllele: "A",
			Significance:     "iron overload risk when homozygous",
		},
		"rs80338720": {
			RSID:          "rs80338720",
			Gene:          "BRCA2",
			Condition:     "Hereditary breast/ovarian cancer",
			Pathogenicity: "pathogenic",
			// No callable allele on array data.
		},
	}
}

func TestScreenRareCarrier(t *testing.T) {
	calls := map[string]domain.GenotypeCall{
		"rs28940279": {RSID: "rs28940279", Genotype: "AG"},
	}
	findings := ScreenRareVariants(testLogger(), calls, rareDefs())

	require.Len(t, findings, 1)
	assert.Equal(t, "rs28940279", findings[0].RSID)
	assert.Contains(t, findings[0].Significance, "Carrier (heterozygous)")
}

func TestScreenRareHomozygous(t *testing.T) {
	calls := map[string]domain.GenotypeCall{
		"rs28940279": {RSID: "rs28940279", Genotype: "AA"},
	}
	findings := ScreenRareVariants(testLogger(), calls, rareDefs())

	require.Len(t, findings, 1)
	assert.Contains(t, findings[0].Significance, "Homozygous pathogenic genotype")
}

func TestScreenRareNoCarriage(t *testing.T) {
	calls := map[string]domain.GenotypeCall{
		"rs28940279": {RSID: "rs28940279", Genotype: "GG"},
		// Record without a pathogenic allele is never reported.
		"rs80338720": {RSID: "rs80338720", Genotype: "AT"},
	}
	findings := ScreenRareVariants(testLogger(), calls, rareDefs())
	assert.Empty(t, findings)
}
