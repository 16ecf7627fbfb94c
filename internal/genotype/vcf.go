package genotype

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/rzimmerman2022/genetic-analyzer-ultra/internal/domain"
)

// vcf fixed-column indexes.
const (
	vcfChrom  = 0
	vcfPos    = 1
	vcfID     = 2
	vcfRef    = 3
	vcfAlt    = 4
	vcfFormat = 8
	vcfSample = 9
)

// LoadVCF translates the first sample of a VCF into the shared call model.
// Only single-nucleotide, GT-bearing records with an rsID survive; everything
// else is counted as a diagnostic, not an error.
func LoadVCF(logger *logrus.Logger, path string) (*Sample, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vcf: %w", err)
	}
	defer file.Close()

	sample := &Sample{
		ByRSID:   make(map[string]domain.GenotypeCall),
		Source:   path,
		Metadata: make(map[string]string),
	}
	var skippedNoGT, skippedIndel, skippedNoID int

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "##") {
			if key, value, ok := strings.Cut(strings.TrimPrefix(line, "##"), "="); ok && !strings.Contains(key, "<") {
				sample.Metadata[key] = value
			}
			continue
		}
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) <= vcfSample {
			skippedNoGT++
			continue
		}
		rsid := fields[vcfID]
		if rsid == "." || rsid == "" {
			skippedNoID++
			continue
		}

		genotype, ok := genotypeFromGT(fields[vcfRef], fields[vcfAlt], fields[vcfFormat], fields[vcfSample])
		switch {
		case !ok:
			skippedNoGT++
			continue
		case genotype == "":
			skippedIndel++
			continue
		}

		if _, dup := sample.ByRSID[rsid]; dup {
			continue
		}
		position, _ := strconv.ParseInt(fields[vcfPos], 10, 64)
		call := domain.GenotypeCall{
			RSID:       rsid,
			Chromosome: strings.TrimPrefix(fields[vcfChrom], "chr"),
			Position:   position,
			Genotype:   genotype,
		}
		sample.Calls = append(sample.Calls, call)
		sample.ByRSID[rsid] = call
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read vcf %s: %w", path, err)
	}

	sample.NoCalls = skippedNoGT
	sample.Indels = skippedIndel
	if total := len(sample.Calls) + sample.NoCalls; total > 0 {
		sample.CallRate = float64(len(sample.Calls)) / float64(total)
	}

	logger.WithFields(logrus.Fields{
		"source":        path,
		"variants":      len(sample.Calls),
		"skipped_no_gt": skippedNoGT,
		"skipped_indel": skippedIndel,
		"skipped_no_id": skippedNoID,
	}).Info("Loaded VCF sample")

	return sample, nil
}

// genotypeFromGT resolves the GT field against REF/ALT into a two-letter
// genotype. It returns ok=false when no GT is present, the genotype is
// uncalled, or an allele index is malformed, and genotype="" with ok=true
// for indels.
func genotypeFromGT(ref, alt, format, sampleField string) (string, bool) {
	gtIndex := -1
	for i, key := range strings.Split(format, ":") {
		if key == "GT" {
			gtIndex = i
			break
		}
	}
	if gtIndex < 0 {
		return "", false
	}
	values := strings.Split(sampleField, ":")
	if gtIndex >= len(values) {
		return "", false
	}

	gt := strings.ReplaceAll(values[gtIndex], "|", "/")
	alleles := append([]string{ref}, strings.Split(alt, ",")...)

	var genotype strings.Builder
	for _, idx := range strings.Split(gt, "/") {
		if idx == "." {
			// Uncalled genotype.
			return "", false
		}
		n, err := strconv.Atoi(idx)
		if err != nil || n < 0 || n >= len(alleles) {
			return "", false
		}
		allele := alleles[n]
		if len(allele) != 1 || allele == "*" {
			return "", true
		}
		genotype.WriteString(allele)
	}
	return genotype.String(), true
}
