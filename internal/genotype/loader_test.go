package genotype

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const rawExport = `# This data file generated by example export
# build: 37
rs4477212	1	82154	AA
rs3094315	1	752566	AG
rs3131972	1	752721	--
rs12562034	1	768448	DD
rs4040617	1	779322	gg
rs4040617	1	779322	AA
rs429358	19	45411941	CT
`

func TestLoad(t *testing.T) {
	path := writeTemp(t, "genome.txt", rawExport)

	sample, err := Load(testLogger(), path)
	require.NoError(t, err)

	assert.Len(t, sample.Calls, 4)
	assert.Equal(t, 1, sample.NoCalls)
	assert.Equal(t, 1, sample.Indels)
	assert.Equal(t, "37", sample.Metadata["build"])

	// Lowercase genotypes are normalized.
	assert.Equal(t, "GG", sample.ByRSID["rs4040617"].Genotype)

	// Duplicate rsIDs keep the first occurrence.
	assert.Equal(t, int64(779322), sample.ByRSID["rs4040617"].Position)

	call := sample.ByRSID["rs429358"]
	assert.Equal(t, "19", call.Chromosome)
	assert.Equal(t, int64(45411941), call.Position)
	assert.Equal(t, "CT", call.Genotype)

	assert.InDelta(t, 4.0/5.0, sample.CallRate, 1e-9)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(testLogger(), filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

const rawVCF = `##fileformat=VCFv4.2
##reference=GRCh37
#CHROM	POS	ID	REF	ALT	QUAL	FILTER	INFO	FORMAT	SAMPLE1
chr19	45411941	rs429358	T	C	.	PASS	.	GT:DP	0/1:35
chr19	45412079	rs7412	C	T	.	PASS	.	GT	0|0
chr10	114758349	rs7903146	C	T	.	PASS	.	GT	1/1
chr1	1000	.	A	G	.	PASS	.	GT	0/1
chr2	2000	rs999	A	AT	.	PASS	.	GT	0/1
chr3	3000	rs888	G	C	.	PASS	.	DP	12
chr4	4000	rs777	G	C	.	PASS	.	GT	./.
`

func TestLoadVCF(t *testing.T) {
	path := writeTemp(t, "sample.vcf", rawVCF)

	sample, err := LoadVCF(testLogger(), path)
	require.NoError(t, err)

	require.Len(t, sample.Calls, 3)
	assert.Equal(t, "TC", sample.ByRSID["rs429358"].Genotype)
	assert.Equal(t, "CC", sample.ByRSID["rs7412"].Genotype)
	assert.Equal(t, "TT", sample.ByRSID["rs7903146"].Genotype)

	// chr prefixes are stripped.
	assert.Equal(t, "19", sample.ByRSID["rs429358"].Chromosome)

	assert.Equal(t, "GRCh37", sample.Metadata["reference"])
	assert.Equal(t, 1, sample.Indels) // rs999 REF/ALT length mismatch
}

func TestGenotypeFromGT(t *testing.T) {
	tests := []struct {
		name     string
		ref, alt string
		format   string
		value    string
		want     string
		ok       bool
	}{
		{"het", "T", "C", "GT", "0/1", "TC", true},
		{"hom ref", "C", "T", "GT", "0|0", "CC", true},
		{"hom alt", "C", "T", "GT", "1/1", "TT", true},
		{"multiallelic", "A", "G,C", "GT", "1/2", "GC", true},
		{"gt not first", "A", "G", "DP:GT", "30:0/1", "AG", true},
		{"no gt key", "A", "G", "DP", "30", "", false},
		{"missing allele", "A", "G", "GT", "./.", "", false},
		{"indel alt", "A", "AT", "GT", "0/1", "", true},
		{"out of range index", "A", "G", "GT", "0/2", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := genotypeFromGT(tt.ref, tt.alt, tt.format, tt.value)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
