package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rzimmerman2022/genetic-analyzer-ultra/internal/domain"
	"github.com/rzimmerman2022/genetic-analyzer-ultra/internal/effectdb"
)

func traitDefs() map[string]effectdb.TraitRecord {
	return map[string]effectdb.TraitRecord{
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
	}
}

func TestComputeTraits(t *testing.T) {
	calls := map[string]domain.GenotypeCall{
		"rs4988235": {RSID: "rs4988235", Genotype: "AG"},
	}
	results := ComputeTraits(testLogger(), calls, traitDefs())

	require.Len(t, results["metabolic"], 1)
	assert.Equal(t, "Adult lactose tolerance (one persistent allele)", results["metabolic"][0].Phenotype)
}

func TestComputeTraitsAlleleOrder(t *testing.T) {
	// Reported "GA" matches the table's "AG" after allele sorting.
	calls := map[string]domain.GenotypeCall{
		"rs4988235": {RSID: "rs4988235", Genotype: "GA"},
	}
	results := ComputeTraits(testLogger(), calls, traitDefs())

	require.Len(t, results["metabolic"], 1)
	assert.Equal(t, "Adult lactose tolerance (one persistent allele)", results["metabolic"][0].Phenotype)
}

func TestComputeTraitsUnmatchedGenotype(t *testing.T) {
	calls := map[string]domain.GenotypeCall{
		"rs4988235": {RSID: "rs4988235", Genotype: "CG"},
	}
	results := ComputeTraits(testLogger(), calls, traitDefs())

	require.Len(t, results["metabolic"], 1)
	assert.Contains(t, results["metabolic"][0].Phenotype, "not in lookup table")
}

func TestLookupGenotypeReverseComplement(t *testing.T) {
	table := map[string]string{"CC": "soapy"}
	phenotype, ok := lookupGenotype(table, "GG")
	require.True(t, ok)
	assert.Equal(t, "soapy", phenotype)
}
