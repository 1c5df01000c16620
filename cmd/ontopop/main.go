// Package main provides the ontopop binary entry point.
// Ontopop converts tabular software-review survey data into an RDF/OWL
// knowledge graph and serializes it to an ontology file.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "ontopop"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var flags populateFlags

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Survey CSV to RDF/OWL knowledge graph converter",
		Long: `Ontopop reads software-review survey rows from delimited files and
populates an RDF/OWL knowledge graph with Software, Review, and Reviewer
entities, deduplicated by their natural keys.

The graph is serialized to a single ontology file (RDF/XML by default;
Turtle and N-Triples are also supported) and a summary of entity counts
is printed at the end of the run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPopulate(flags)
		},
	}

	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.Flags().StringVarP(&flags.input, "input", "i", "", "Input file path or glob pattern")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output ontology file path")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "Output format (rdfxml, turtle, ntriples)")
	cmd.Flags().StringVar(&flags.delimiter, "delimiter", "", "Input field delimiter")
	cmd.Flags().BoolVar(&flags.strictDates, "strict-dates", false, "Treat unparseable evaluation dates as row errors")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}
