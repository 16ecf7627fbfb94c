package service

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/rzimmerman2022/genetic-analyzer-ultra/internal/domain"
	"github.com/rzimmerman2022/genetic-analyzer-ultra/internal/effectdb"
)

// ComputePharmacogenomics predicts metabolizer phenotypes gene by gene from
// the star-allele-defining variants present in the sample. Genes with no
// genotyped variants are omitted rather than guessed at.
func ComputePharmacogenomics(logger *logrus.Logger, calls map[string]domain.GenotypeCall, genes map[string]effectdb.PharmacogeneDef) map[string]domain.PharmacogeneResult {
	results := make(map[string]domain.PharmacogeneResult)

	for geneKey, def := range genes {
		var observed []domain.StarAlleleCall
		var noFunction, decreased, increased int

		rsids := make([]string, 0, len(def.Variants))
		for rsid := range def.Variants {
			rsids = append(rsids, rsid)
		}
		sort.Strings(rsids)

		for _, rsid := range rsids {
			star := def.Variants[rsid]
			if star.Variant == "" {
				// Indel-defined alleles are not callable from array data.
				continue
			}
			call, ok := calls[rsid]
			if !ok || call.Validate() != nil {
				continue
			}
			copies := countAllele(ResolveStrand(call.Genotype, star.Variant), star.Variant)
			observed = append(observed, domain.StarAlleleCall{
				RSID:       rsid,
				Genotype:   call.Genotype,
				StarAllele: star.Allele,
				Function:   star.Function,
			})
			switch star.Function {
			case "none":
				noFunction += copies
			case "decreased":
				decreased += copies
			case "increased":
				increased += copies
			}
		}

		if len(observed) == 0 {
			continue
		}

		phenotype, implications := metabolizerPhenotype(noFunction, decreased, increased)
		results[geneKey] = domain.PharmacogeneResult{
			Gene:          def.Gene,
			Variants:      observed,
			Phenotype:     phenotype,
			AffectedDrugs: def.Drugs,
			Implications:  implications,
			PMID:          def.PMID,
		}

		logger.WithFields(logrus.Fields{
			"gene":      def.Gene,
			"phenotype": phenotype,
			"variants":  len(observed),
		}).Debug("Predicted metabolizer phenotype")
	}

	return results
}

// metabolizerPhenotype applies the CPIC-style activity heuristic to the
// counted allele functions.
func metabolizerPhenotype(noFunction, decreased, increased int) (string, string) {
	switch {
	case noFunction >= 2:
		return "Poor metabolizer",
			"Standard doses may cause accumulation or loss of prodrug activation; dosing review advised"
	case noFunction == 1 || decreased >= 2:
		return "Intermediate metabolizer",
			"Reduced enzyme activity expected; some drugs may need dose adjustment"
	case increased >= 1:
		return "Rapid metabolizer",
			"Increased enzyme activity expected; standard doses may be less effective"
	default:
		return "Normal metabolizer",
			"No activity-reducing variants detected at the genotyped positions"
	}
}
