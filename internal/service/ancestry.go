package service

import (
	"sort"

	"github.com/montanaflynn/stats"
	"github.com/sirupsen/logrus"

	"github.com/rzimmerman2022/genetic-analyzer-ultra/internal/domain"
	"github.com/rzimmerman2022/genetic-analyzer-ultra/internal/effectdb"
)

// panelUnknown is reported when no reference panel is configured. The absence
// of a panel is an explicit state, never a fabricated inference.
const panelUnknown = "UNKNOWN"

const ancestryNote = "Marker-level pattern only. A handful of ancestry-informative markers " +
	"cannot substitute for a genome-wide ancestry analysis."

// ReferencePanel infers a population label from observed ancestry markers
// against an external reference dataset. Implementations are optional; the
// analyzer runs without one.
type ReferencePanel interface {
	Infer(markers []domain.AncestryMarkerCall) (string, error)
}

// ComputeAncestry summarizes the ancestry-informative markers present in the
// sample. The preliminary inference is a coarse derived-allele-frequency
// heuristic; the panel inference is populated only when a reference panel was
// supplied and succeeds.
func ComputeAncestry(logger *logrus.Logger, calls map[string]domain.GenotypeCall, defs map[string]effectdb.AncestryMarkerDef, panel ReferencePanel) *domain.AncestryResult {
	rsids := make([]string, 0, len(defs))
	for rsid := range defs {
		rsids = append(rsids, rsid)
	}
	sort.Strings(rsids)

	var markers []domain.AncestryMarkerCall
	var derivedFractions []float64

	for _, rsid := range rsids {
		def := defs[rsid]
		call, ok := calls[rsid]
		if !ok || call.Validate() != nil {
			continue
		}
		effective := ResolveStrand(call.Genotype, def.Derived)
		derived := countAllele(effective, def.Derived)
		ancestral := countAllele(effective, def.Ancestral)
		markers = append(markers, domain.AncestryMarkerCall{
			RSID:             rsid,
			Gene:             def.Gene,
			Trait:            def.Trait,
			Genotype:         call.Genotype,
			AncestralAlleles: ancestral,
			DerivedAlleles:   derived,
		})
		derivedFractions = append(derivedFractions, float64(derived)/float64(len(effective)))
	}

	result := &domain.AncestryResult{
		Markers:        markers,
		PanelInference: panelUnknown,
		Note:           ancestryNote,
	}

	if freq, err := stats.Mean(derivedFractions); err == nil {
		result.DerivedAlleleFrequency = freq
		switch {
		case freq > 0.8:
			result.PreliminaryInference = "Predominantly European-pattern markers"
		case freq < 0.2:
			result.PreliminaryInference = "Predominantly African-pattern markers"
		default:
			result.PreliminaryInference = "Mixed or intermediate marker pattern"
		}
	} else {
		result.PreliminaryInference = "Insufficient markers for any inference"
	}

	if panel != nil && len(markers) > 0 {
		if inference, err := panel.Infer(markers); err == nil {
			result.PanelInference = inference
		} else {
			logger.WithError(err).Warn("Reference panel inference failed")
		}
	}

	logger.WithFields(logrus.Fields{
		"markers":      len(markers),
		"derived_freq": result.DerivedAlleleFrequency,
	}).Debug("Computed ancestry marker summary")

	return result
}
