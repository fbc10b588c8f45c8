package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kumab2221/ieee754-viewer/cmd/fpview/ui"
	"github.com/kumab2221/ieee754-viewer/fpview"
)

var flagJSON bool

var inspectCmd = &cobra.Command{
	Use:   "inspect <literal>",
	Short: "Decompose one literal and print its bit fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prec, err := precision()
		if err != nil {
			return err
		}
		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer logger.Sync()

		code := runInspect(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], prec, flagJSON, logger)
		if code != exitSuccess {
			return exitStatus(code)
		}
		return nil
	},
}

func init() {
	inspectCmd.Flags().BoolVar(&flagJSON, "json", false, "emit the result as JSON")
}

func runInspect(stdout, stderr io.Writer, literal string, prec fpview.Precision, asJSON bool, logger *zap.Logger) int {
	res := fpview.BuildView(literal, prec)
	logger.Debug("classified literal",
		zap.String("input", literal),
		zap.String("state", res.State.String()),
		zap.String("reason", string(res.Reason)))

	if asJSON {
		if err := json.NewEncoder(stdout).Encode(res); err != nil {
			fmt.Fprintf(stderr, "fpview: encode result: %v\n", err)
			return exitInternal
		}
		return exitCode(res.State)
	}

	fmt.Fprintln(stdout, ui.RenderResult(ui.DefaultStyles(), res))
	return exitCode(res.State)
}
