// Command fpview inspects the IEEE 754 bit layout of floating-point
// literals: one-shot, in batch, or interactively while the literal is being
// typed.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kumab2221/ieee754-viewer/fplex"
	"github.com/kumab2221/ieee754-viewer/fpview"
)

const (
	exitSuccess    = 0
	exitIncomplete = 1
	exitInvalid    = 2
	exitInternal   = 10
)

const debugLogPath = "fpview.debug.log"

var (
	flagBits  int
	flagDebug bool
)

var rootCmd = &cobra.Command{
	Use:   "fpview",
	Short: "Inspect the IEEE 754 bit layout of floating-point literals",
	Long: `fpview classifies a floating-point literal and decomposes its IEEE 754
encoding (binary32 or binary64) into sign, exponent and mantissa fields.

Run without a subcommand for the interactive viewer, which updates the
field breakdown on every keystroke.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagBits, "bits", 64, "encoding width: 32 or 64")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "write a debug log to "+debugLogPath)
	rootCmd.AddCommand(inspectCmd, batchCmd, tuiCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var es exitStatus
		if errors.As(err, &es) {
			os.Exit(int(es))
		}
		fmt.Fprintf(os.Stderr, "fpview: %v\n", err)
		os.Exit(exitInternal)
	}
}

// exitStatus carries a non-zero process exit code out through cobra's RunE.
type exitStatus int

func (e exitStatus) Error() string {
	return fmt.Sprintf("exit status %d", int(e))
}

// exitCode maps a classification state to the process exit code: valid 0,
// incomplete 1, invalid 2.
func exitCode(s fplex.State) int {
	switch s {
	case fplex.StateIncomplete:
		return exitIncomplete
	case fplex.StateInvalid:
		return exitInvalid
	}
	return exitSuccess
}

func precision() (fpview.Precision, error) {
	switch flagBits {
	case 32:
		return fpview.Float32, nil
	case 64:
		return fpview.Float64, nil
	}
	return "", fmt.Errorf("unsupported width %d: use 32 or 64", flagBits)
}

// newLogger is a nop unless --debug is set; debug output goes to a file so
// it cannot corrupt the terminal the TUI owns.
func newLogger() (*zap.Logger, error) {
	if !flagDebug {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.OutputPaths = []string{debugLogPath}
	cfg.ErrorOutputPaths = cfg.OutputPaths
	return cfg.Build()
}
