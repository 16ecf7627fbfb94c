package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rzimmerman2022/genetic-analyzer-ultra/internal/domain"
	"github.com/rzimmerman2022/genetic-analyzer-ultra/internal/effectdb"
)

func cyp2c19() map[string]effectdb.PharmacogeneDef {
	return map[string]effectdb.PharmacogeneDef{
		"CYP2C19": {
			Gene: "CYP2C19",
			Variants: map[string]effectdb.StarAllele{
				"rs4244285":  {Allele: "*2", Variant: "A", Function: "none"},
				"rs12248560": {Allele: "*17", Variant: "T", Function: "increased"},
				"rs0000001":  {Allele: "*9", Function: "none"}, // indel, never counted
			},
			Drugs: []string{"clopidogrel", "omeprazole"},
		},
	}
}

func TestPharmacogenomicsPoorMetabolizer(t *testing.T) {
	calls := map[string]domain.GenotypeCall{
		"rs4244285": {RSID: "rs4244285", Genotype: "AA"},
	}
	results := ComputePharmacogenomics(testLogger(), calls, cyp2c19())

	result, ok := results["CYP2C19"]
	require.True(t, ok)
	assert.Equal(t, "Poor metabolizer", result.Phenotype)
	assert.Contains(t, result.AffectedDrugs, "clopidogrel")
}

func TestPharmacogenomicsIntermediate(t *testing.T) {
	calls := map[string]domain.GenotypeCall{
		"rs4244285": {RSID: "rs4244285", Genotype: "AG"},
	}
	results := ComputePharmacogenomics(testLogger(), calls, cyp2c19())
	assert.Equal(t, "Intermediate metabolizer", results["CYP2C19"].Phenotype)
}

func TestPharmacogenomicsRapid(t *testing.T) {
	calls := map[string]domain.GenotypeCall{
		"rs4244285":  {RSID: "rs4244285", Genotype: "GG"},
		"rs12248560": {RSID: "rs12248560", Genotype: "CT"},
		// Indel-defined allele without a nucleotide is never counted.
		"rs0000001": {RSID: "rs0000001", Genotype: "AA"},
	}
	results := ComputePharmacogenomics(testLogger(), calls, cyp2c19())
	assert.Equal(t, "Rapid metabolizer", results["CYP2C19"].Phenotype)
}

func TestPharmacogenomicsNoGenotypedVariants(t *testing.T) {
	results := ComputePharmacogenomics(testLogger(), nil, cyp2c19())
	assert.Empty(t, results)
}
