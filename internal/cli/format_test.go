package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeInputFile(t *testing.T, dir, text string) string {
	t.Helper()
	path := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("Writing input file: %v", err)
	}
	return path
}

func TestRunFormat_AnalyzeHonorsOutputFlag(t *testing.T) {
	dir := t.TempDir()
	input := writeInputFile(t, dir,
		"BACKGROUND: Imaging is slow. METHODS: We scanned one hundred twenty patients.")
	report := filepath.Join(dir, "report.txt")

	analyzeOnly = true
	outputPath = report
	defer func() {
		analyzeOnly = false
		outputPath = ""
	}()

	if err := runFormat(rootCmd, []string{input}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	data, err := os.ReadFile(report)
	if err != nil {
		t.Fatalf("Expected analysis written to %s: %v", report, err)
	}
	got := string(data)
	if !strings.Contains(got, "ABSTRACT ANALYSIS") {
		t.Errorf("Expected analysis report in output file, got %q", got)
	}
	if !strings.Contains(got, "BACKGROUND") {
		t.Errorf("Expected section headers in report, got %q", got)
	}
}

func TestRunFormat_ShortInputFallsBackToPipeline(t *testing.T) {
	dir := t.TempDir()
	input := writeInputFile(t, dir, "Too short to be an abstract.")
	result := filepath.Join(dir, "out.md")

	outputPath = result
	defer func() { outputPath = "" }()
	if err := rootCmd.Flags().Set("engine", "punkt"); err != nil {
		t.Fatalf("Setting engine flag: %v", err)
	}

	if err := runFormat(rootCmd, []string{input}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	data, err := os.ReadFile(result)
	if err != nil {
		t.Fatalf("Expected formatted output written to %s: %v", result, err)
	}
	if !strings.Contains(string(data), "Too short to be an abstract.") {
		t.Errorf("Expected the input formatted despite no processor matching, got %q", string(data))
	}
}

func TestReadInput_MissingFile(t *testing.T) {
	_, _, err := readInput([]string{"/nonexistent/abstract.txt"})
	if err == nil {
		t.Fatal("Expected error for missing input file")
	}
	if !strings.Contains(err.Error(), "/nonexistent/abstract.txt") {
		t.Errorf("Expected failing path in error, got %v", err)
	}
}
