// Package service implements the variant-effect scoring and validation core:
// strand resolution, single-variant risk estimation, polygenic scoring,
// effect classification, rule-based validation, and the stage-driven
// pipeline that ties them together.
package service

// complement maps each nucleotide to its base-pairing partner.
var complement = map[byte]byte{'A': 'T', 'T': 'A', 'C': 'G', 'G': 'C'}

// ReverseComplement maps every base of the genotype A↔T and C↔G, order
// preserved. Bases outside ACGT pass through unchanged.
func ReverseComplement(genotype string) string {
	out := make([]byte, len(genotype))
	for i := 0; i < len(genotype); i++ {
		if c, ok := complement[genotype[i]]; ok {
			out[i] = c
		} else {
			out[i] = genotype[i]
		}
	}
	return string(out)
}

// strandAmbiguous reports whether the genotype's bases all lie within one of
// the two strand-ambiguous pairs {A,T} or {C,G}, so that the reporting strand
// cannot be determined from the genotype alone.
func strandAmbiguous(genotype string) bool {
	inAT, inCG := true, true
	for i := 0; i < len(genotype); i++ {
		switch genotype[i] {
		case 'A', 'T':
			inCG = false
		case 'C', 'G':
			inAT = false
		default:
			return false
		}
	}
	return inAT || inCG
}

// ResolveStrand returns the effective genotype to count the target allele
// against. If the target already occurs in the genotype the genotype is
// returned unchanged. Otherwise, when the genotype is strand-ambiguous and
// the complement of the target matches it, the complemented genotype is
// returned so counting sees the reported allele on the other strand. In all
// remaining cases the genotype is returned as is; an allele count of zero is
// then legitimate.
//
// Pure and deterministic; resolving the returned genotype again with the same
// target is a no-op.
func ResolveStrand(genotype, targetAllele string) string {
	if targetAllele == "" || len(targetAllele) != 1 {
		return genotype
	}
	target := targetAllele[0]
	for i := 0; i < len(genotype); i++ {
		if genotype[i] == target {
			return genotype
		}
	}
	comp, ok := complement[target]
	if !ok || !strandAmbiguous(genotype) {
		return genotype
	}
	for i := 0; i < len(genotype); i++ {
		if genotype[i] == comp {
			return ReverseComplement(genotype)
		}
	}
	return genotype
}

// countAllele counts occurrences of the single-letter allele in the genotype.
// The genotype length invariant bounds the result to {0,1,2}.
func countAllele(genotype, allele string) int {
	if len(allele) != 1 {
		return 0
	}
	n := 0
	for i := 0; i < len(genotype); i++ {
		if genotype[i] == allele[0] {
			n++
		}
	}
	return n
}
