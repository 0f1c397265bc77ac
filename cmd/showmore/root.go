package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Alp4ka/showmore"
	"github.com/Alp4ka/showmore/internal/catalog"
	"github.com/Alp4ka/showmore/tui"
)

type rootFlags struct {
	file     string
	pageSize int
	logLevel string
	logFile  string
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:          "showmore",
		Short:        "Browse a catalog, revealing a few items at a time",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			model, closeLog, err := buildModel(flags)
			if err != nil {
				return err
			}
			defer closeLog() //nolint:errcheck // best effort on exit

			_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return fmt.Errorf("failed to run TUI: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "YAML catalog file (built-in demo catalog when empty)")
	cmd.Flags().IntVarP(&flags.pageSize, "page-size", "n", showmore.DefaultPageSize, "items revealed per activation")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	cmd.Flags().StringVar(&flags.logFile, "log-file", "", "write logs to this file")

	return cmd
}

func buildModel(flags rootFlags) (tui.Model, func() error, error) {
	logger, closeLog, err := newLogger(flags.logLevel, flags.logFile)
	if err != nil {
		return tui.Model{}, closeLog, fmt.Errorf("failed to open log file: %w", err)
	}

	c := catalog.Demo()
	if flags.file != "" {
		c, err = catalog.Load(flags.file)
		if err != nil {
			_ = closeLog()
			return tui.Model{}, func() error { return nil }, err
		}
	}

	logger.Info().
		Str("file", flags.file).
		Int("items", c.Len()).
		Int("page_size", flags.pageSize).
		Msg("catalog loaded")

	model := tui.NewModel(c.Cards(),
		showmore.WithPageSize(flags.pageSize),
		showmore.WithLogger(logger),
	)

	return model, closeLog, nil
}
