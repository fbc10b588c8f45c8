package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/kumab2221/ieee754-viewer/cmd/fpview/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive viewer: the field breakdown updates as you type",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func runTUI() error {
	prec, err := precision()
	if err != nil {
		return err
	}
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	_, err = tea.NewProgram(tui.New(prec, logger), tea.WithAltScreen()).Run()
	return err
}
