package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rzimmerman2022/genetic-analyzer-ultra/internal/domain"
	"github.com/rzimmerman2022/genetic-analyzer-ultra/internal/effectdb"
)

type stubPanel struct {
	label string
	err   error
}

func (p *stubPanel) Infer(markers []domain.AncestryMarkerCall) (string, error) {
	return p.label, p.err
}

func ancestryDefs() map[string]effectdb.AncestryMarkerDef {
	return map[string]effectdb.AncestryMarkerDef{
		"rs1426654":  {RSID: "rs1426654", Gene: "SLC24A5", Ancestral: "G", Derived: "A"},
		"rs12913832": {RSID: "rs12913832", Gene: "HERC2/OCA2", Ancestral: "A", Derived: "G"},
	}
}

func TestComputeAncestryHighDerived(t *testing.T) {
	calls := map[string]domain.GenotypeCall{
		"rs1426654":  {RSID: "rs1426654", Genotype: "AA"},
		"rs12913832": {RSID: "rs12913832", Genotype: "GG"},
	}
	result := ComputeAncestry(testLogger(), calls, ancestryDefs(), nil)

	require.Len(t, result.Markers, 2)
	assert.InDelta(t, 1.0, result.DerivedAlleleFrequency, 1e-9)
	assert.Equal(t, "Predominantly European-pattern markers", result.PreliminaryInference)
	assert.Equal(t, "UNKNOWN", result.PanelInference)
	assert.NotEmpty(t, result.Note)
}

func TestComputeAncestryLowDerived(t *testing.T) {
	calls := map[string]domain.GenotypeCall{
		"rs1426654":  {RSID: "rs1426654", Genotype: "GG"},
		"rs12913832": {RSID: "rs12913832", Genotype: "AA"},
	}
	result := ComputeAncestry(testLogger(), calls, ancestryDefs(), nil)
	assert.InDelta(t, 0.0, result.DerivedAlleleFrequency, 1e-9)
	assert.Equal(t, "Predominantly African-pattern markers", result.PreliminaryInference)
}

func TestComputeAncestryNoMarkers(t *testing.T) {
	result := ComputeAncestry(testLogger(), nil, ancestryDefs(), nil)
	assert.Empty(t, result.Markers)
	assert.Equal(t, "Insufficient markers for any inference", result.PreliminaryInference)
}

func TestComputeAncestryPanel(t *testing.T) {
	calls := map[string]domain.GenotypeCall{
		"rs1426654": {RSID: "rs1426654", Genotype: "AG"},
	}

	result := ComputeAncestry(testLogger(), calls, ancestryDefs(), &stubPanel{label: "EUR"})
	assert.Equal(t, "EUR", result.PanelInference)

	// A failing panel keeps the explicit no-inference state.
	result = ComputeAncestry(testLogger(), calls, ancestryDefs(), &stubPanel{err: errors.New("panel offline")})
	assert.Equal(t, "UNKNOWN", result.PanelInference)
}
