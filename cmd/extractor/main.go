package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/superrjump/extractor/internal/batch"
	"github.com/superrjump/extractor/internal/config"
	"github.com/superrjump/extractor/internal/report"
	"github.com/superrjump/extractor/pkg/models"
	"github.com/superrjump/extractor/pkg/pdf"
)

func main() {
	// Command-line flags
	inputPDF := flag.String("input", "", "Path to the PDF file to parse (or use -batch for a directory)")
	output := flag.String("output", "", "Path to the output file (optional, defaults to questions.<format>)")
	format := flag.String("format", "", "Output format: json or csv (overrides config)")
	configPath := flag.String("config", "", "Path to a YAML config file (optional)")
	batchMode := flag.Bool("batch", false, "Process all matching PDF files in a directory")
	dir := flag.String("dir", ".", "Directory to search for PDF files (used with -batch)")
	verbose := flag.Bool("verbose", false, "Enable verbose output")

	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *format != "" {
		cfg.OutputFormat = *format
	}
	if *verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if *batchMode {
		processBatch(cfg, log, *dir, *output)
	} else {
		processSingle(cfg, log, *inputPDF, *output)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}

func processSingle(cfg *config.Config, log *zap.Logger, inputPDF, output string) {
	if inputPDF == "" {
		fmt.Fprintf(os.Stderr, "Error: input file required\n")
		fmt.Fprintf(os.Stderr, "Usage: extractor -input <pdf-file> [-output <file>] [-format json|csv] [-verbose]\n")
		os.Exit(1)
	}

	parser := pdf.NewParser(inputPDF, pdf.WithLogger(log))
	extraction, err := parser.Parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing PDF: %v\n", err)
		os.Exit(1)
	}

	if output == "" {
		output = filepath.Join(filepath.Dir(inputPDF), "questions."+cfg.OutputFormat)
	}
	writeExtraction(cfg, extraction, output)
}

func processBatch(cfg *config.Config, log *zap.Logger, dir, output string) {
	runner := batch.NewRunner(cfg, log)
	extractions, err := runner.Run(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	merged := batch.Merge(extractions, dir)
	log.Info("batch complete",
		zap.Int("files", len(extractions)),
		zap.Int("questions", merged.TotalCount))

	if output == "" {
		output = filepath.Join(dir, "questions."+cfg.OutputFormat)
	}
	writeExtraction(cfg, merged, output)
}

func writeExtraction(cfg *config.Config, extraction *models.Extraction, outputPath string) {
	exporter, err := report.ForFormat(cfg.OutputFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := exporter.Export(extraction, outputPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Successfully wrote %d questions to: %s\n", extraction.TotalCount, outputPath)
}
