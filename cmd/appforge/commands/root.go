package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/appforge/appforge/internal/config"
	"github.com/appforge/appforge/internal/db"
	"github.com/appforge/appforge/internal/genai"
	"github.com/appforge/appforge/internal/logging"
	"github.com/appforge/appforge/internal/store"
	"github.com/appforge/appforge/internal/tui"
)

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "appforge",
		Short: "Generate and refine web applications from a description",
		Long: `appforge is a TUI application that turns a natural-language description
into a complete web application project, which can then be refined
through a chat assistant.`,
		RunE: runTUI,
	}

	rootCmd.AddCommand(NewShowCommand())
	rootCmd.AddCommand(NewCatalogCommand())
	rootCmd.AddCommand(NewGenerateCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, logger, st, client, cleanup, err := bootstrap()
	if err != nil {
		return err
	}
	defer cleanup()

	logger.Info("starting workspace",
		zap.String("model", cfg.AI.Model),
		zap.String("endpoint", cfg.AI.Endpoint))

	return tui.Run(client, st, logger)
}

// bootstrap wires config, logging, storage and the generation client.
func bootstrap() (*config.Config, *zap.Logger, *store.Store, genai.Client, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(cfg.LogPath)
	if err != nil {
		return nil, nil, nil, nil, nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	conn, err := db.Open(cfg.DatabasePath())
	if err != nil {
		return nil, nil, nil, nil, nil, fmt.Errorf("failed to open history database: %w", err)
	}

	client, err := genai.NewOpenAIClient(&genai.Config{
		Endpoint:    cfg.AI.Endpoint,
		Model:       cfg.AI.Model,
		APIKey:      cfg.AI.APIKey,
		Temperature: cfg.AI.Temperature,
	}, logger)
	if err != nil {
		conn.Close()
		return nil, nil, nil, nil, nil, fmt.Errorf("failed to create generation client: %w", err)
	}

	cleanup := func() {
		conn.Close()
		_ = logger.Sync()
	}
	return cfg, logger, store.New(conn, logger), client, cleanup, nil
}
