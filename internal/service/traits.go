package service

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/rzimmerman2022/genetic-analyzer-ultra/internal/domain"
	"github.com/rzimmerman2022/genetic-analyzer-ultra/internal/effectdb"
)

// ComputeTraits resolves genotype→phenotype lookups for the trait markers
// present in the sample, grouped by trait category. Genotypes absent from a
// lookup table are retried on the complementary strand before being reported
// as unmatched.
func ComputeTraits(logger *logrus.Logger, calls map[string]domain.GenotypeCall, records map[string]effectdb.TraitRecord) map[string][]domain.TraitFinding {
	rsids := make([]string, 0, len(records))
	for rsid := range records {
		rsids = append(rsids, rsid)
	}
	sort.Strings(rsids)

	results := make(map[string][]domain.TraitFinding)
	for _, rsid := range rsids {
		rec := records[rsid]
		call, ok := calls[rsid]
		if !ok || call.Validate() != nil {
			continue
		}

		phenotype, matched := lookupGenotype(rec.Genotypes, call.Genotype)
		if !matched {
			phenotype = fmt.Sprintf("Genotype %s not in lookup table", call.Genotype)
		}
		results[rec.Category] = append(results[rec.Category], domain.TraitFinding{
			RSID:      rsid,
			Gene:      rec.Gene,
			Trait:     rec.Trait,
			Genotype:  call.Genotype,
			Phenotype: phenotype,
		})
	}

	logger.WithField("categories", len(results)).Debug("Resolved trait lookups")
	return results
}

// lookupGenotype tries the genotype as reported, then allele-sorted, then the
// reverse complement of both. Lookup tables store one canonical orientation;
// samples do not.
func lookupGenotype(table map[string]string, genotype string) (string, bool) {
	for _, candidate := range []string{
		genotype,
		sortAlleles(genotype),
		ReverseComplement(genotype),
		sortAlleles(ReverseComplement(genotype)),
	} {
		if phenotype, ok := table[candidate]; ok {
			return phenotype, true
		}
	}
	return "", false
}

// sortAlleles orders a two-letter genotype alphabetically.
func sortAlleles(genotype string) string {
	if len(genotype) == 2 && genotype[0] > genotype[1] {
		return string([]byte{genotype[1], genotype[0]})
	}
	return genotype
}
