package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/zshift/report"
	"github.com/katalvlaran/zshift/shift"
)

var errXLSXNeedsOut = errors.New("zshift: xlsx output needs --out")

// runEstimate fits every request as one batch and writes the results.
func runEstimate(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	f, err := outputFormat()
	if err != nil {
		return err
	}
	if f == report.FormatXLSX && outPath == "" {
		return errXLSXNeedsOut
	}

	_, reqs, err := loadRequests(files)
	if err != nil {
		return err
	}

	n := workers
	if n <= 0 {
		n = settings.Workers
	}
	log := logger.With(zap.String("run_id", uuid.New().String()))
	log.Info("running batch", zap.Int("requests", len(reqs)), zap.Int("workers", n), zap.String("format", string(f)))

	results, err := shift.NewPipeline(log).RunBatch(ctx, reqs, n)
	if err != nil {
		return err
	}

	for i, res := range results {
		zs := shift.Values(res)
		if outPath == "" {
			if err := writeStdout(cmd.OutOrStdout(), f, files[i], len(results) > 1, zs); err != nil {
				return err
			}
			continue
		}
		path := outputPath(outPath, i, len(results))
		if err := writeFile(path, f, zs); err != nil {
			return err
		}
		log.Info("wrote results", zap.String("path", path), zap.Int("shifts", len(zs)))
	}

	return nil
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}

// outputFormat resolves --format, then ZSHIFT_OUTPUT_FORMAT, then table.
func outputFormat() (report.Format, error) {
	name := format
	if name == "" {
		name = settings.OutputFormat
	}
	if name == "" {
		return report.FormatTable, nil
	}

	return report.ParseFormat(name)
}

func writeStdout(w io.Writer, f report.Format, source string, heading bool, zs []float64) error {
	if heading {
		if _, err := fmt.Fprintf(w, "# %s\n", source); err != nil {
			return err
		}
	}

	return report.Write(w, f, zs)
}

func writeFile(path string, f report.Format, zs []float64) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("zshift: create output: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("zshift: close output: %w", cerr)
		}
	}()

	return report.Write(out, f, zs)
}

// outputPath returns base for a single request and base-<n>.ext (n from 1)
// when several requests share one --out.
func outputPath(base string, i, total int) string {
	if total == 1 {
		return base
	}
	ext := filepath.Ext(base)

	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(base, ext), i+1, ext)
}
