// Command analyzer runs the full genotype analysis pipeline over a consumer
// raw-data export or a single-sample VCF and writes the structured results,
// the text report, and the audit trail.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rzimmerman2022/genetic-analyzer-ultra/internal/config"
	"github.com/rzimmerman2022/genetic-analyzer-ultra/internal/effectdb"
	"github.com/rzimmerman2022/genetic-analyzer-ultra/internal/genotype"
	"github.com/rzimmerman2022/genetic-analyzer-ultra/internal/report"
	"github.com/rzimmerman2022/genetic-analyzer-ultra/internal/safety"
	"github.com/rzimmerman2022/genetic-analyzer-ultra/internal/service"
	"github.com/rzimmerman2022/genetic-analyzer-ultra/internal/store"
)

var (
	flagVCF     bool
	flagOutput  string
	flagOverlay string
	flagNoAudit bool
)

func main() {
	root := &cobra.Command{
		Use:   "analyzer",
		Short: "Consumer genotype risk analysis",
		Long: "analyzer scores a consumer genotyping export against curated " +
			"literature-derived effect tables: single-variant disease risk, " +
			"polygenic scores, pharmacogenomics, rare variant screening, " +
			"ancestry markers, and traits.",
		SilenceUsage: true,
	}

	analyze := &cobra.Command{
		Use:   "analyze <genotype-file>",
		Short: "Run the full analysis pipeline on one sample",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd.Context(), args[0])
		},
	}
	analyze.Flags().BoolVar(&flagVCF, "vcf", false, "treat the input as a single-sample VCF")
	analyze.Flags().StringVarP(&flagOutput, "output", "o", "", "output directory (overrides config)")
	analyze.Flags().StringVar(&flagOverlay, "overlay", "", "YAML overlay extending the effect database")
	analyze.Flags().BoolVar(&flagNoAudit, "no-audit", false, "skip the audit trail database")
	root.AddCommand(analyze)

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the analysis methodology version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("analyzer methodology v%s\n", effectdb.AnalysisVersion)
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func runAnalyze(ctx context.Context, input string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Logging)

	db, err := effectdb.New()
	if err != nil {
		return fmt.Errorf("build effect database: %w", err)
	}
	if overlay := firstNonEmpty(flagOverlay, cfg.Paths.OverlayDB); overlay != "" {
		ov, err := effectdb.LoadOverlay(overlay)
		if err != nil {
			return err
		}
		db.Apply(ov)
		logger.WithField("overlay", overlay).Info("Applied effect database overlay")
	}

	var sample *genotype.Sample
	if flagVCF || strings.HasSuffix(strings.ToLower(input), ".vcf") {
		sample, err = genotype.LoadVCF(logger, input)
	} else {
		sample, err = genotype.Load(logger, input)
	}
	if err != nil {
		return err
	}

	guard := safety.NewGuard(logger, cfg.Paths.DumpDir)
	pipeline := service.NewPipeline(logger, db, guard, nil)
	tree, stageErrs := pipeline.Run(ctx, sample)
	for _, stageErr := range stageErrs {
		logger.WithError(stageErr).Warn("Degraded stage")
	}

	outputDir := firstNonEmpty(flagOutput, cfg.Paths.OutputDir)
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	runID := "unknown"
	if tree.Provenance != nil {
		runID = tree.Provenance.RunID
	}

	raw, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	resultsPath := filepath.Join(outputDir, fmt.Sprintf("results_%s.json", runID))
	if err := os.WriteFile(resultsPath, raw, 0o644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}

	reportPath := filepath.Join(outputDir, fmt.Sprintf("report_%s.txt", runID))
	text := report.Render(tree, report.Options{IncludeContributions: cfg.Report.IncludeContributions})
	if err := os.WriteFile(reportPath, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if cfg.Audit.Enabled && !flagNoAudit && tree.Provenance != nil {
		audit, err := store.NewAuditStore(cfg.Audit.DBPath)
		if err != nil {
			logger.WithError(err).Warn("Audit store unavailable")
		} else {
			defer audit.Close()
			if err := audit.SaveRun(ctx, tree.Provenance, input, tree.Validation, len(stageErrs)); err != nil {
				logger.WithError(err).Warn("Could not persist audit record")
			}
		}
	}

	logger.WithFields(logrus.Fields{
		"results": resultsPath,
		"report":  reportPath,
	}).Info("Analysis written")

	if len(stageErrs) > 0 {
		fmt.Fprintf(os.Stderr, "completed with %d degraded stage(s); see %s\n", len(stageErrs), cfg.Paths.DumpDir)
	}
	return nil
}

func newLogger(cfg config.LoggingConfig) *logrus.Logger {
	logger := logrus.New()
	if level, err := logrus.ParseLevel(cfg.Level); err == nil {
		logger.SetLevel(level)
	}
	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
