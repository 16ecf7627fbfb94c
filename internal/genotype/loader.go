// Package genotype loads raw genotyping samples: 23andMe-style tab-separated
// exports and single-sample VCFs, normalized into the shared call model with
// per-sample quality metadata.
package genotype

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"

	"github.com/rzimmerman2022/genetic-analyzer-ultra/internal/domain"
)

// Sample is one loaded genotyping dataset after quality filtering.
type Sample struct {
	Calls    []domain.GenotypeCall
	ByRSID   map[string]domain.GenotypeCall
	CallRate float64
	NoCalls  int
	Indels   int
	Source   string
	// Metadata holds the key:value pairs from the export's comment header,
	// e.g. the array build and generation timestamp.
	Metadata map[string]string
}

// rawRow mirrors the four-column consumer export layout. Field order matters:
// the format carries no header row once comments are stripped.
type rawRow struct {
	RSID       string `csv:"rsid"`
	Chromosome string `csv:"chromosome"`
	Position   int64  `csv:"position"`
	Genotype   string `csv:"genotype"`
}

// Load parses a 23andMe-style raw export. Comment lines contribute metadata;
// no-calls ("--") and indel codes (D/I) are counted and dropped; duplicate
// marker ids keep the first occurrence.
func Load(logger *logrus.Logger, path string) (*Sample, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read genotype file: %w", err)
	}

	metadata := make(map[string]string)
	var body strings.Builder
	for _, line := range strings.Split(string(raw), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			if key, value, ok := strings.Cut(strings.TrimLeft(trimmed, "# "), ":"); ok {
				metadata[strings.TrimSpace(key)] = strings.TrimSpace(value)
			}
			continue
		}
		body.WriteString(line)
		body.WriteByte('\n')
	}

	reader := csv.NewReader(strings.NewReader(body.String()))
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1

	var rows []*rawRow
	if err := gocsv.UnmarshalCSVWithoutHeaders(reader, &rows); err != nil {
		return nil, fmt.Errorf("parse genotype file %s: %w", path, err)
	}

	sample := &Sample{
		ByRSID:   make(map[string]domain.GenotypeCall, len(rows)),
		Source:   path,
		Metadata: metadata,
	}
	for _, row := range rows {
		genotype := strings.ToUpper(strings.TrimSpace(row.Genotype))
		switch {
		case genotype == "" || genotype == "--":
			sample.NoCalls++
			continue
		case strings.ContainsAny(genotype, "DI"):
			sample.Indels++
			continue
		}
		if _, dup := sample.ByRSID[row.RSID]; dup {
			continue
		}
		call := domain.GenotypeCall{
			RSID:       row.RSID,
			Chromosome: row.Chromosome,
			Position:   row.Position,
			Genotype:   genotype,
		}
		sample.Calls = append(sample.Calls, call)
		sample.ByRSID[row.RSID] = call
	}

	if total := len(sample.Calls) + sample.NoCalls; total > 0 {
		sample.CallRate = float64(len(sample.Calls)) / float64(total)
	}

	logger.WithFields(logrus.Fields{
		"source":    path,
		"variants":  len(sample.Calls),
		"no_calls":  sample.NoCalls,
		"indels":    sample.Indels,
		"call_rate": sample.CallRate,
	}).Info("Loaded genotype sample")

	return sample, nil
}
