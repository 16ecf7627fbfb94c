package service

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/rzimmerman2022/genetic-analyzer-ultra/internal/domain"
	"github.com/rzimmerman2022/genetic-analyzer-ultra/internal/effectdb"
)

// ScreenRareVariants checks the sample against the curated rare pathogenic
// variant list. Records without a defined pathogenic allele cannot be called
// from array data and are skipped. Only carriers are reported.
func ScreenRareVariants(logger *logrus.Logger, calls map[string]domain.GenotypeCall, records map[string]effectdb.RareRecord) []domain.RareFinding {
	rsids := make([]string, 0, len(records))
	for rsid := range records {
		rsids = append(rsids, rsid)
	}
	sort.Strings(rsids)

	var findings []domain.RareFinding
	for _, rsid := range rsids {
		rec := records[rsid]
		if rec.PathogenicAllele == "" {
			continue
		}
		call, ok := calls[rsid]
		if !ok || call.Validate() != nil {
			continue
		}
		copies := countAllele(ResolveStrand(call.Genotype, rec.PathogenicAllele), rec.PathogenicAllele)
		if copies == 0 {
			continue
		}

		significance := "Carrier (heterozygous); " + rec.Significance
		if copies == 2 {
			significance = "Homozygous pathogenic genotype; " + rec.Significance
		}
		findings = append(findings, domain.RareFinding{
			RSID:          rsid,
			Gene:          rec.Gene,
			Genotype:      call.Genotype,
			Condition:     rec.Condition,
			Inheritance:   rec.Inheritance,
			Pathogenicity: rec.Pathogenicity,
			Significance:  significance,
		})

		logger.WithFields(logrus.Fields{
			"rsid":   rsid,
			"gene":   rec.Gene,
			"copies": copies,
		}).Info("Rare variant detected")
	}
	return findings
}
