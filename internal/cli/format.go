package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/citemed/abstractfmt/internal/analyze"
	"github.com/citemed/abstractfmt/internal/model"
	"github.com/citemed/abstractfmt/internal/pipeline"
	"github.com/citemed/abstractfmt/internal/processor"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	outputPath   string
	outputFormat string
	lineWidth    int
	engine       string
	analyzeOnly  bool
	noCache      bool
)

func init() {
	rootCmd.Flags().StringVar(&outputFormat, "format", model.FormatMarkdown, "output format (markdown, html, plain)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write output to file instead of stdout")
	rootCmd.Flags().IntVar(&lineWidth, "line-width", 80, "maximum line width for text wrapping")
	rootCmd.Flags().StringVar(&engine, "engine", model.EngineProse, "analyzer engine (prose, punkt)")
	rootCmd.Flags().BoolVar(&analyzeOnly, "analyze", false, "print structure analysis instead of formatted text")
	rootCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable result caching")
}

func runFormat(cmd *cobra.Command, args []string) error {
	text, source, err := readInput(args)
	if err != nil {
		return err
	}

	if analyzeOnly {
		return writeOutput(formatAnalysis(analyze.Structure(text)))
	}

	cfg := buildConfig(cmd)

	if verbose {
		fmt.Fprintf(os.Stderr, "Input: %s (%d bytes)\n", source, len(text))
		fmt.Fprintf(os.Stderr, "Engine: %s\n", cfg.Analyzer.Engine)
		fmt.Fprintf(os.Stderr, "Format: %s\n", cfg.Format.Output)
		fmt.Fprintln(os.Stderr)
	}

	// The analyzer model loads here; absence is a startup failure.
	formatter, err := pipeline.New(cfg)
	if err != nil {
		return err
	}

	registry := processor.NewRegistry(formatter)
	out, err := registry.Process(text, processor.Options{})
	if errors.Is(err, model.ErrNoProcessorFound) {
		// Inputs outside every processor's heuristic (e.g., very short
		// notes) still get the plain formatting pipeline.
		if verbose {
			fmt.Fprintln(os.Stderr, "No processor matched; formatting as a plain abstract")
		}
		out, err = formatter.Format(text)
	}
	if err != nil {
		return fmt.Errorf("format: %w", err)
	}

	return writeOutput(out)
}

// readInput reads the abstract from the named file or from stdin
func readInput(args []string) (text, source string, err error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), "stdin", nil
}

func writeOutput(out string) error {
	if outputPath == "" {
		fmt.Println(out)
		return nil
	}
	if err := os.WriteFile(outputPath, []byte(out+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	fmt.Fprintf(os.Stderr, "Formatted abstract saved to: %s\n", outputPath)
	return nil
}

// buildConfig layers defaults, config file, and flags, highest
// priority last
func buildConfig(cmd *cobra.Command) *model.Config {
	cfg := model.DefaultConfig()

	// Config file / environment overrides
	if v := viper.GetString("format.output"); v != "" {
		cfg.Format.Output = v
	}
	if v := viper.GetInt("format.line_width"); v > 0 {
		cfg.Format.LineWidth = v
	}
	if v := viper.GetString("analyzer.engine"); v != "" {
		cfg.Analyzer.Engine = v
	}
	if v := viper.GetString("analyzer.model_path"); v != "" {
		cfg.Analyzer.ModelPath = v
	}
	if v := viper.GetInt("segment.max_sentences"); v > 0 {
		cfg.Segment.MaxSentences = v
	}
	if v := viper.GetInt("segment.merge_word_floor"); v > 0 {
		cfg.Segment.MergeWordFloor = v
	}
	if viper.IsSet("cache.enabled") {
		cfg.Cache.Enabled = viper.GetBool("cache.enabled")
	}

	// Flag overrides
	if cmd.Flags().Changed("format") {
		cfg.Format.Output = outputFormat
	}
	if cmd.Flags().Changed("line-width") {
		cfg.Format.LineWidth = lineWidth
	}
	if cmd.Flags().Changed("engine") {
		cfg.Analyzer.Engine = engine
	}
	if noCache {
		cfg.Cache.Enabled = false
	}
	return cfg
}

// formatAnalysis renders the structure report for --analyze
func formatAnalysis(s model.Structure) string {
	lines := []string{
		"ABSTRACT ANALYSIS",
		strings.Repeat("=", 50),
		fmt.Sprintf("Length: %d characters", s.TotalLength),
		fmt.Sprintf("Words: %d", s.WordCount),
		fmt.Sprintf("Sentences: %d", s.SentenceCount),
	}
	if s.SentenceCount > 0 {
		lines = append(lines, fmt.Sprintf("Average sentence length: %.1f words",
			float64(s.WordCount)/float64(s.SentenceCount)))
	}
	structured := "No"
	if s.HasStructuredSections {
		structured = "Yes"
	}
	lines = append(lines, "Structured sections: "+structured)

	if len(s.Headers) > 0 {
		lines = append(lines, "", "Section headers found:")
		for _, h := range s.Headers {
			lines = append(lines, fmt.Sprintf("  - %s: %q at position %d",
				h.Label, strings.TrimSpace(h.Text), h.Position))
		}
	}
	if len(s.TechnicalTerms) > 0 {
		lines = append(lines, "", fmt.Sprintf("Technical terms: %d", len(s.TechnicalTerms)))
		lines = append(lines, "  "+preview(s.TechnicalTerms))
	}
	if len(s.Measurements) > 0 {
		lines = append(lines, "", fmt.Sprintf("Measurements: %d", len(s.Measurements)))
		lines = append(lines, "  "+preview(s.Measurements))
	}
	return strings.Join(lines, "\n")
}

func preview(items []string) string {
	const max = 10
	if len(items) <= max {
		return strings.Join(items, ", ")
	}
	return strings.Join(items[:max], ", ") + "..."
}
