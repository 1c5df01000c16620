package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/c360studio/ontopop/config"
	"github.com/c360studio/ontopop/export"
	"github.com/c360studio/ontopop/populator"
	"github.com/c360studio/ontopop/source"
)

// populateFlags holds the command-line overrides for one run.
type populateFlags struct {
	configPath  string
	input       string
	output      string
	format      string
	delimiter   string
	strictDates bool
	logLevel    string
}

// runPopulate executes the full ETL run: read rows, populate the graph,
// serialize the ontology, print the summary counts.
func runPopulate(flags populateFlags) error {
	logger := newLogger(flags.logLevel)
	slog.SetDefault(logger)

	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	format, err := export.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	inputs, err := source.ExpandInputs(cfg.Input.Path)
	if err != nil {
		return err
	}

	p := populator.New(populator.Options{
		StrictDates: cfg.Dates.Strict,
		Logger:      logger,
	})
	logger.Info("Populating ontology",
		"run_id", p.RunID(),
		"inputs", len(inputs),
		"format", format)

	for _, path := range inputs {
		logger.Debug("Processing input file", "path", path)
		if err := p.ProcessFile(path, source.WithDelimiter(cfg.DelimiterRune())); err != nil {
			return err
		}
	}

	serializer := export.NewSerializer(format)
	if err := serializer.WriteFile(p.Graph(), cfg.Output.Path); err != nil {
		return err
	}
	fmt.Printf("Ontology saved to %s\n", cfg.Output.Path)

	stats := p.Stats()
	fmt.Println("Ontology contains:")
	fmt.Printf("- %d software instances\n", stats.Software)
	fmt.Printf("- %d reviews\n", stats.Reviews)
	fmt.Printf("- %d reviewers\n", stats.Reviewers)

	return nil
}

// loadConfig layers command-line flags over the config file (or defaults).
func loadConfig(flags populateFlags) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if flags.configPath != "" {
		loaded, err := config.LoadFromFile(flags.configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	cfg.Merge(&config.Config{
		Input: config.InputConfig{
			Path:      flags.input,
			Delimiter: flags.delimiter,
		},
		Output: config.OutputConfig{
			Path:   flags.output,
			Format: flags.format,
		},
		Dates: config.DatesConfig{
			Strict: flags.strictDates,
		},
	})

	return cfg, nil
}

func newLogger(logLevel string) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
