package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"nb-query/config"
	"nb-query/internal/query"
	"nb-query/internal/query/render"
	nbRepo "nb-query/internal/query/repository/nb"
	"nb-query/internal/query/usecase"
	"nb-query/pkg/datemath"
	"nb-query/pkg/log"
)

// newRootCmd builds the nbq command tree. A nil uc is built from the
// configuration before any subcommand runs.
func newRootCmd(uc query.UseCase) *cobra.Command {
	var (
		nbURL   string
		verbose bool
	)

	root := &cobra.Command{
		Use:   "nbq",
		Short: "Query an nb notebook from the command line",
		Long:  "nbq searches a running nb web server, filters the results by type, tag and due date, and prints them as list markup or JSON.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if uc != nil {
				return nil
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if nbURL != "" {
				cfg.Nb.URL = nbURL
			}

			level := "error"
			if verbose {
				level = "debug"
			}
			logger := log.Init(log.ZapConfig{
				Level:        level,
				Mode:         cfg.Logger.Mode,
				Encoding:     cfg.Logger.Encoding,
				ColorEnabled: cfg.Logger.ColorEnabled,
			})

			uc, err = buildUseCase(cfg, logger)
			return err
		},
	}

	root.PersistentFlags().StringVar(&nbURL, "nb-url", "", "nb web server URL (overrides nb.url)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")

	// Silence Cobra's built-in error and usage printing so we control stderr output
	root.SilenceErrors = true
	root.SilenceUsage = true

	root.AddCommand(newQueryCmd(&uc))
	root.AddCommand(newPageCmd(&uc))
	return root
}

func buildUseCase(cfg *config.Config, logger log.Logger) (query.UseCase, error) {
	dateMathParser, err := datemath.NewParser(cfg.Query.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone: %w", err)
	}

	nbClient := nbRepo.NewClient(cfg.Nb.URL, cfg.Nb.SearchPath, cfg.Nb.Timeout)
	return usecase.New(
		logger,
		nbRepo.New(nbClient, cfg.Nb.RowSelector, logger),
		dateMathParser,
		datemath.NewCalendar(dateMathParser.Location()),
		render.New(cfg.Nb.SearchPath, cfg.Query.DateLayout),
		nil,
	), nil
}
