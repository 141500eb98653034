package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/dotcommander/scorekit/internal/config"
	"github.com/dotcommander/scorekit/internal/template"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List registered templates",
	Long: `Lists the built-in templates plus any templates registered from
--templates-dir, with their version and question counts.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runTemplates(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}

func runTemplates() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	registry, err := buildRegistry(cfg)
	if err != nil {
		return err
	}

	templates := registry.List()
	sort.Slice(templates, func(i, j int) bool { return templates[i].ID < templates[j].ID })

	for _, t := range templates {
		diagnostic := len(template.DiagnosticQuestions(t))
		context := len(template.ContextQuestions(t))
		fmt.Printf("%s\t%s\t%q\t%d pillars, %d diagnostic + %d context questions\n",
			t.ID, t.Version, t.Name, len(t.Pillars), diagnostic, context)
	}
	if len(templates) == 0 {
		fmt.Println("No templates registered.")
	}
	return nil
}
