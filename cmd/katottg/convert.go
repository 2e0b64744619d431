package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/toponyms/internal/register"
	"github.com/JonMunkholm/toponyms/internal/translit"
)

func newConvertCmd(a *app) *cobra.Command {
	var (
		format  string
		output  string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "convert [input]",
		Short: "Convert register records to the romanized CSV artifact",
		Long: `Reads register records (extracted text, spreadsheet rows or an existing
artifact), fills in the three romanizations and writes the CSV artifact
ordered by code. Input "-" or no input reads stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := a.cfg.Convert.Input
			if len(args) == 1 {
				input = args[0]
			}
			if cmd.Flags().Changed("format") {
				a.cfg.Convert.Format = format
			}
			if cmd.Flags().Changed("output") {
				a.cfg.Convert.Output = output
			}
			if cmd.Flags().Changed("workers") {
				a.cfg.Convert.Workers = workers
			}
			if err := a.revalidate(); err != nil {
				return err
			}
			return a.runConvert(cmd, input)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "auto", "input format: auto, text, rows, csv (env KATOTTG_FORMAT)")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file, - for stdout (env KATOTTG_OUTPUT)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "conversion goroutines, 0 for GOMAXPROCS (env KATOTTG_WORKERS)")
	return cmd
}

func (a *app) runConvert(cmd *cobra.Command, input string) error {
	start := time.Now()

	recs, err := a.loadRecords(cmd, input)
	if err != nil {
		return err
	}

	out, closeOut, err := openOutput(cmd, a.cfg.Convert.Output)
	if err != nil {
		return err
	}
	if err := register.WriteCSV(out, recs); err != nil {
		closeOut()
		return err
	}
	if err := closeOut(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}

	slog.Info("conversion complete",
		"records", len(recs),
		"output", a.cfg.Convert.Output,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// loadRecords reads input in the configured format, romanizes every record
// and returns them ordered by code.
func (a *app) loadRecords(cmd *cobra.Command, input string) ([]register.Record, error) {
	format, err := register.ParseFormat(a.cfg.Convert.Format)
	if err != nil {
		return nil, err
	}

	in, closeIn, err := openInput(cmd, input)
	if err != nil {
		return nil, err
	}
	defer closeIn()

	recs, format, err := register.Read(in, input, format)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", displayName(input), err)
	}
	slog.Info("register read", "input", displayName(input), "format", format, "records", len(recs))

	if err := convert(cmd.Context(), recs, a.cfg.Convert.Workers); err != nil {
		return nil, err
	}
	register.SortByCodes(recs)
	return recs, nil
}

func convert(ctx context.Context, recs []register.Record, workers int) error {
	if err := register.NewConverter(translit.Default(), workers).ConvertAll(ctx, recs); err != nil {
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("conversion interrupted: %w", err)
		}
		return fmt.Errorf("convert: %w", err)
	}
	return nil
}

func openInput(cmd *cobra.Command, path string) (io.Reader, func() error, error) {
	if path == "" || path == "-" {
		return cmd.InOrStdin(), func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	return f, f.Close, nil
}

func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, f.Close, nil
}

func displayName(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}
	return path
}
