package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command. Running it with an optional
// input file formats an abstract; subcommands cover version and
// configuration management.
var rootCmd = &cobra.Command{
	Use:   "abstractfmt [input_file]",
	Short: "Reformat dense scientific abstracts into readable paragraphs",
	Long: `abstractfmt reformats dense scientific-abstract text into readable
paragraphs by detecting discourse markers, named entities, and
structural cues, then re-segmenting the text and emphasizing
technical terms.

Reads from the given file, or from standard input when no file is
given.

Examples:
  echo "Your abstract here..." | abstractfmt
  abstractfmt input.txt
  abstractfmt --format html input.txt
  abstractfmt input.txt -o formatted.md
  abstractfmt --analyze input.txt`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runFormat,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number and build information for abstractfmt.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("abstractfmt v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.abstractfmt/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(home + "/.abstractfmt")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match ABSTRACTFMT_*
	viper.SetEnvPrefix("ABSTRACTFMT")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}
