package model

import "time"

// Output format identifiers accepted by the renderer
const (
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
	FormatPlain    = "plain"
)

// Analyzer engine identifiers
const (
	EngineProse = "prose" // Full NLP: sentence boundaries, POS tags, entities
	EnginePunkt = "punkt" // Boundary detection only, no entities
)

// Config holds all abstractfmt configuration
type Config struct {
	Format   FormatConfig   `yaml:"format" json:"format"`
	Analyzer AnalyzerConfig `yaml:"analyzer" json:"analyzer"`
	Segment  SegmentConfig  `yaml:"segment" json:"segment"`
	Cache    CacheConfig    `yaml:"cache" json:"cache"`
}

// FormatConfig controls rendering
type FormatConfig struct {
	Output    string `yaml:"output" json:"output"`         // markdown, html, or plain
	LineWidth int    `yaml:"line_width" json:"line_width"` // Cosmetic wrap width, > 0
}

// AnalyzerConfig selects and configures the NLP engine
type AnalyzerConfig struct {
	Engine    string `yaml:"engine" json:"engine"`
	ModelPath string `yaml:"model_path,omitempty" json:"model_path,omitempty"` // Optional custom prose model directory
}

// SegmentConfig tunes the paragraph segmentation heuristics
type SegmentConfig struct {
	MaxSentences   int `yaml:"max_sentences" json:"max_sentences"`       // Paragraph length ceiling
	MergeWordFloor int `yaml:"merge_word_floor" json:"merge_word_floor"` // Single-sentence paragraphs below this merge forward
}

// CacheConfig controls result memoization
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" json:"enabled"`
	TTL     time.Duration `yaml:"ttl" json:"ttl"`
}

// DefaultConfig returns the standard configuration
func DefaultConfig() *Config {
	return &Config{
		Format: FormatConfig{
			Output:    FormatMarkdown,
			LineWidth: 80,
		},
		Analyzer: AnalyzerConfig{
			Engine: EngineProse,
		},
		Segment: SegmentConfig{
			MaxSentences:   4,
			MergeWordFloor: 4,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     10 * time.Minute,
		},
	}
}
