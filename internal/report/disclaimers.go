package report

// disclaimer is printed at the top of every report. The wording is fixed;
// downstream consumers key on it.
const disclaimer = `IMPORTANT: This report is for educational and research purposes only.
It is NOT a medical test, NOT a clinical diagnosis, and NOT medical advice.
Consumer genotyping arrays have known error rates and do not sequence genes.
Effect estimates come from population studies and may not apply to any
individual. Discuss any health concern with a qualified healthcare provider
and confirm any finding with a clinical-grade test before acting on it.`

// ancestryDisclaimer qualifies the marker-panel ancestry section.
const ancestryDisclaimer = `Ancestry here is a pattern over a handful of informative markers,
not a genome-wide ancestry analysis.`
