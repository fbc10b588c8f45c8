package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kumab2221/ieee754-viewer/fpview"
)

var batchCmd = &cobra.Command{
	Use:   "batch [file|-]",
	Short: "Classify literals line by line, one JSON result per line",
	Long: `batch reads one literal per line from the given file (or stdin when the
argument is "-" or absent) and writes one JSON result per line.

The exit code reflects the worst outcome seen: 0 when every line is a valid
literal, 1 when any is incomplete, 2 when any is invalid, 10 on I/O failure.`,
	Args: cobra.MaximumNArgs(1),
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

		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		code := runBatch(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), path, prec, logger)
		if code != exitSuccess {
			return exitStatus(code)
		}
		return nil
	},
}

func runBatch(stdin io.Reader, stdout, stderr io.Writer, path string, prec fpview.Precision, logger *zap.Logger) int {
	in := stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(stderr, "fpview: %v\n", err)
			return exitInternal
		}
		defer f.Close()
		in = f
	}

	worst := exitSuccess
	lines := 0
	enc := json.NewEncoder(stdout)
	s := bufio.NewScanner(in)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for s.Scan() {
		lines++
		res := fpview.BuildView(s.Text(), prec)
		if err := enc.Encode(res); err != nil {
			fmt.Fprintf(stderr, "fpview: encode result: %v\n", err)
			return exitInternal
		}
		if c := exitCode(res.State); c > worst {
			worst = c
		}
	}
	if err := s.Err(); err != nil {
		fmt.Fprintf(stderr, "fpview: read input: %v\n", err)
		return exitInternal
	}

	logger.Debug("batch complete", zap.Int("lines", lines), zap.Int("exit", worst))
	return worst
}
