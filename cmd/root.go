package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dotcommander/scorekit/internal/config"
	"github.com/dotcommander/scorekit/internal/discovery"
	"github.com/dotcommander/scorekit/internal/output"
	"github.com/dotcommander/scorekit/internal/template"
	"github.com/dotcommander/scorekit/internal/types"
)

var (
	templatesDir string
	quiet        bool
	verbose      bool
	outputFormat string
	outputFile   string
)

// exitFunc allows tests to intercept exits
var exitFunc = os.Exit

var rootCmd = &cobra.Command{
	Use:   "scorekit",
	Short: "ScoreKit - a configuration-driven assessment scoring engine",
	Long: `ScoreKit validates, scores, and reports on survey templates. A template
defines pillars, diagnostic and context questions, score bands, and
recommendations; answers are scored per pillar and mapped into a shareable
report.

Use 'validate' to check template files, 'score' to compute results from an
answer set, 'report' to render the full report, and 'serve' to expose the
engine over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&templatesDir, "templates-dir", "t", "", "Directory of template files to register alongside the built-ins")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "console", "Output format (console|json|markdown)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Output file (defaults to stdout)")

	viper.BindPFlag("templatesDir", rootCmd.PersistentFlags().Lookup("templates-dir"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
}

func initConfig() {
	configPaths := []string{".scorekitrc.json", ".scorekitrc.yaml", ".scorekitrc.yml"}
	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			viper.SetConfigFile(path)
			if err := viper.ReadInConfig(); err != nil {
				fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
				os.Exit(1)
			}
			break
		}
	}
}

// buildRegistry registers the built-in templates plus any templates found
// under cfg.TemplatesDir.
func buildRegistry(cfg *config.Config) (*template.Registry, error) {
	registry := template.NewRegistry()
	if err := template.RegisterBuiltins(registry); err != nil {
		return nil, fmt.Errorf("error registering built-in templates: %w", err)
	}
	if cfg.TemplatesDir != "" {
		n, err := template.LoadDir(registry, cfg.TemplatesDir)
		if err != nil {
			return nil, fmt.Errorf("error loading templates from %s: %w", cfg.TemplatesDir, err)
		}
		if cfg.Verbose {
			fmt.Fprintf(os.Stderr, "Loaded %d template(s) from %s\n", n, cfg.TemplatesDir)
		}
	}
	return registry, nil
}

// newFormatter resolves the output destination and format from config.
// The caller must call the returned closer when done.
func newFormatter(cfg *config.Config) (output.Formatter, func() error, error) {
	var w io.Writer = os.Stdout
	closer := func() error { return nil }

	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return nil, nil, fmt.Errorf("error creating output file: %w", err)
		}
		w = f
		closer = f.Close
	}

	formatter, err := output.NewFormatter(cfg.Format, w, cfg.Quiet, cfg.Verbose)
	if err != nil {
		_ = closer()
		return nil, nil, err
	}
	return formatter, closer, nil
}

// resolveTemplate treats ref as a file path when it exists on disk, and as a
// registered template id otherwise.
func resolveTemplate(registry *template.Registry, ref string) (*types.Template, error) {
	if _, err := os.Stat(ref); err == nil {
		data, err := os.ReadFile(ref)
		if err != nil {
			return nil, fmt.Errorf("error reading template file: %w", err)
		}
		parse := template.Parse
		if discovery.IsYAML(ref) {
			parse = template.ParseYAML
		}
		t, err := parse(data)
		if err != nil {
			return nil, fmt.Errorf("error parsing %s: %w", ref, err)
		}
		return t, nil
	}

	t, ok := registry.Get(ref)
	if !ok {
		return nil, fmt.Errorf("unknown template: %s", ref)
	}
	return t, nil
}
