package service

import (
	"github.com/montanaflynn/stats"
	"github.com/sirupsen/logrus"

	"github.com/rzimmerman2022/genetic-analyzer-ultra/internal/domain"
)

// expectedHetRate is the reference genome-wide heterozygosity for consumer
// genotyping arrays, used as the baseline for the inbreeding coefficient and
// the Hardy-Weinberg deviation.
const expectedHetRate = 0.327

// ComputeStats summarizes the sample: counts, heterozygosity, Ti/Tv, and
// deviation from the array-wide heterozygosity baseline. callRate comes from
// the loader, which sees the no-calls this function never does.
func ComputeStats(logger *logrus.Logger, calls []domain.GenotypeCall, callRate float64) *domain.BasicStats {
	perChrom := make(map[string]int)
	chromHet := make(map[string]*[2]int) // het, diploid total
	var hom, het, transitions, transversions int

	for _, call := range calls {
		perChrom[call.Chromosome]++
		if len(call.Genotype) != 2 {
			continue
		}
		counts, ok := chromHet[call.Chromosome]
		if !ok {
			counts = &[2]int{}
			chromHet[call.Chromosome] = counts
		}
		counts[1]++
		if call.Heterozygous() {
			het++
			counts[0]++
			if isTransition(call.Genotype[0], call.Genotype[1]) {
				transitions++
			} else {
				transversions++
			}
		} else {
			hom++
		}
	}

	// Averaging per-chromosome rates keeps one dense chromosome from
	// dominating the genome-wide estimate.
	var chromRates []float64
	for _, counts := range chromHet {
		if counts[1] > 0 {
			chromRates = append(chromRates, float64(counts[0])/float64(counts[1]))
		}
	}
	hetRate := 0.0
	if rate, err := stats.Mean(chromRates); err == nil {
		hetRate = rate
	} else if hom+het > 0 {
		hetRate = float64(het) / float64(hom+het)
	}

	titv := 0.0
	if transversions > 0 {
		titv = float64(transitions) / float64(transversions)
	}

	result := &domain.BasicStats{
		TotalVariants:         len(calls),
		CallRate:              callRate,
		PerChromosome:         perChrom,
		Homozygous:            hom,
		Heterozygous:          het,
		HeterozygosityRate:    hetRate,
		TiTvRatio:             titv,
		InbreedingCoefficient: 1 - hetRate/expectedHetRate,
		HWEDeviation:          hetRate - expectedHetRate,
	}

	logger.WithFields(logrus.Fields{
		"total_variants": result.TotalVariants,
		"het_rate":       hetRate,
		"ti_tv":          titv,
	}).Info("Computed sample statistics")

	return result
}

// isTransition reports whether the allele pair is a purine-purine or
// pyrimidine-pyrimidine exchange.
func isTransition(a, b byte) bool {
	return (a == 'A' && b == 'G') || (a == 'G' && b == 'A') ||
		(a == 'C' && b == 'T') || (a == 'T' && b == 'C')
}
