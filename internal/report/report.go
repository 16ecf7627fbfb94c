// Package report renders a completed result tree as a human-readable text
// report.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rzimmerman2022/genetic-analyzer-ultra/internal/domain"
)

// Options controls report contents.
type Options struct {
	// IncludeContributions adds the per-variant breakdown under each
	// polygenic score.
	IncludeContributions bool
}

// Render produces the full text report for one run.
func Render(tree *domain.ResultTree, opts Options) string {
	var b strings.Builder

	writeHeader(&b, tree)
	writeStats(&b, tree.Stats)
	writeDiseaseRisk(&b, tree.DiseaseRisk)
	writeScores(&b, tree.PolygenicScores, opts)
	writePharmacogenomics(&b, tree.Pharmacogenomics)
	writeRareVariants(&b, tree.RareVariants)
	writeAncestry(&b, tree.Ancestry)
	writeTraits(&b, tree.Traits)
	writeValidation(&b, tree.Validation)

	return b.String()
}

func section(b *strings.Builder, title string) {
	fmt.Fprintf(b, "\n%s\n%s\n", title, strings.Repeat("=", len(title)))
}

func writeHeader(b *strings.Builder, tree *domain.ResultTree) {
	b.WriteString("GENETIC ANALYSIS REPORT\n")
	b.WriteString(strings.Repeat("=", 23) + "\n\n")
	b.WriteString(disclaimer + "\n")
	if tree.Provenance != nil {
		fmt.Fprintf(b, "\nRun ID:          %s\n", tree.Provenance.RunID)
		fmt.Fprintf(b, "Methodology:     v%s\n", tree.Provenance.ScriptVersion)
		fmt.Fprintf(b, "Started (UTC):   %s\n", tree.Provenance.StartTime.Format("2006-01-02 15:04:05"))
		fmt.Fprintf(b, "Result hash:     %s\n", tree.Provenance.ResultHash)
	}
}

func writeStats(b *strings.Builder, stats *domain.BasicStats) {
	if stats == nil {
		return
	}
	section(b, "SAMPLE STATISTICS")
	fmt.Fprintf(b, "Variants analyzed:   %d\n", stats.TotalVariants)
	fmt.Fprintf(b, "Call rate:           %.4f\n", stats.CallRate)
	fmt.Fprintf(b, "Heterozygosity:      %.4f\n", stats.HeterozygosityRate)
	fmt.Fprintf(b, "Ti/Tv ratio:         %.2f\n", stats.TiTvRatio)
	fmt.Fprintf(b, "Inbreeding coeff:    %.4f\n", stats.InbreedingCoefficient)
}

func writeDiseaseRisk(b *strings.Builder, byCategory map[string][]domain.VariantRiskResult) {
	if len(byCategory) == 0 {
		return
	}
	section(b, "DISEASE RISK VARIANTS")
	for _, category := range sortedKeys(byCategory) {
		fmt.Fprintf(b, "\n[%s]\n", strings.ToUpper(category))
		for _, r := range byCategory[category] {
			fmt.Fprintf(b, "  %s (%s) %s: %s", r.RSID, r.Gene, r.Genotype, r.RiskLevel)
			if r.RelativeRisk != nil {
				fmt.Fprintf(b, ", RR %.2f", *r.RelativeRisk)
				if r.RelativeRiskCI != nil {
					fmt.Fprintf(b, " (95%% CI %.2f-%.2f)", r.RelativeRiskCI.Lower, r.RelativeRiskCI.Upper)
				}
			}
			if r.Phenotype != "" {
				fmt.Fprintf(b, ", %s", r.Phenotype)
			}
			fmt.Fprintf(b, "\n    %s", r.Trait)
			if r.Interpretation != "" {
				fmt.Fprintf(b, " (%s)", r.Interpretation)
			}
			b.WriteString("\n")
		}
	}
}

func writeScores(b *strings.Builder, scores map[string]domain.PolygenicScoreResult, opts Options) {
	if len(scores) == 0 {
		return
	}
	section(b, "POLYGENIC SCORES")
	for _, key := range sortedKeys(scores) {
		s := scores[key]
		fmt.Fprintf(b, "\n%s (%s)\n", s.Name, key)
		fmt.Fprintf(b, "  Raw score:  %.4f", s.RawScore)
		if s.RawScoreCI != nil {
			fmt.Fprintf(b, " (95%% CI %.4f to %.4f)", s.RawScoreCI.Lower, s.RawScoreCI.Upper)
		}
		fmt.Fprintf(b, "\n  Z-score:    %.3f\n", s.ZScore)
		fmt.Fprintf(b, "  Percentile: %.1f\n", s.Percentile)
		fmt.Fprintf(b, "  Markers:    %s\n", s.VariantsUsed)
		fmt.Fprintf(b, "  %s\n", s.Interpretation)
		if opts.IncludeContributions {
			for _, c := range s.Contributions {
				fmt.Fprintf(b, "    %-12s %s x%d  weight %+.4f  contributes %+.4f\n",
					c.RSID, c.Genotype, c.AlleleCount, c.Weight, c.Contribution)
			}
		}
	}
}

func writePharmacogenomics(b *strings.Builder, genes map[string]domain.PharmacogeneResult) {
	if len(genes) == 0 {
		return
	}
	section(b, "PHARMACOGENOMICS")
	for _, key := range sortedKeys(genes) {
		g := genes[key]
		fmt.Fprintf(b, "\n%s: %s\n", g.Gene, g.Phenotype)
		fmt.Fprintf(b, "  %s\n", g.Implications)
		if len(g.AffectedDrugs) > 0 {
			fmt.Fprintf(b, "  Affected drugs: %s\n", strings.Join(g.AffectedDrugs, ", "))
		}
	}
}

func writeRareVariants(b *strings.Builder, findings []domain.RareFinding) {
	section(b, "RARE VARIANT SCREEN")
	if len(findings) == 0 {
		b.WriteString("No screened rare pathogenic variants detected.\n")
		return
	}
	for _, f := range findings {
		fmt.Fprintf(b, "%s (%s) %s: %s\n  %s\n", f.RSID, f.Gene, f.Genotype, f.Condition, f.Significance)
	}
}

func writeAncestry(b *strings.Builder, ancestry *domain.AncestryResult) {
	if ancestry == nil {
		return
	}
	section(b, "ANCESTRY MARKERS")
	b.WriteString(ancestryDisclaimer + "\n\n")
	fmt.Fprintf(b, "Markers observed:        %d\n", len(ancestry.Markers))
	fmt.Fprintf(b, "Derived allele freq:     %.3f\n", ancestry.DerivedAlleleFrequency)
	fmt.Fprintf(b, "Preliminary inference:   %s\n", ancestry.PreliminaryInference)
	fmt.Fprintf(b, "Reference panel:         %s\n", ancestry.PanelInference)
}

func writeTraits(b *strings.Builder, byCategory map[string][]domain.TraitFinding) {
	if len(byCategory) == 0 {
		return
	}
	section(b, "TRAITS")
	for _, category := range sortedKeys(byCategory) {
		fmt.Fprintf(b, "\n[%s]\n", strings.ToUpper(category))
		for _, t := range byCategory[category] {
			fmt.Fprintf(b, "  %s (%s) %s: %s\n", t.RSID, t.Gene, t.Genotype, t.Phenotype)
		}
	}
}

func writeValidation(b *strings.Builder, findings []domain.ValidationFinding) {
	if len(findings) == 0 {
		return
	}
	section(b, "VALIDATION SUMMARY")
	for _, f := range findings {
		fmt.Fprintf(b, "%-24s %-18s %s\n", f.RuleName, f.Status, f.Details)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
