package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/dotcommander/scorekit/internal/config"
	"github.com/dotcommander/scorekit/internal/crm"
	"github.com/dotcommander/scorekit/internal/store"
	"github.com/dotcommander/scorekit/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP scoring service",
	Long: `The serve command exposes the engine over HTTP:

  GET  /                 health check
  GET  /templates        registered template summaries
  POST /score            score an answer set
  POST /report           score, persist, and return a report token
  GET  /report/:token    retrieve a stored report

Reports are persisted through the configured store driver (memory, file, or
redis). When a CRM API key is configured, report submissions with a lead
email are synced as contacts.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runServe(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	registry, err := buildRegistry(cfg)
	if err != nil {
		return err
	}

	reports, err := store.Open(cfg.Store.Driver, cfg.Store.Path, cfg.Store.Addr)
	if err != nil {
		return fmt.Errorf("error opening report store: %w", err)
	}

	crmClient := crm.NewClient(cfg.CRM.BaseURL, cfg.CRM.APIKey)

	service := web.New(registry, reports, crmClient, cfg.Serve.Host, cfg.Serve.Port)
	service.Start()
	fmt.Printf("scorekit listening on %s:%d\n", cfg.Serve.Host, cfg.Serve.Port)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	return service.Shutdown()
}
