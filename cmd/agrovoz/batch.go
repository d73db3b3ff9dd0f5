package main

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hurttlocker/agrovoz/internal/extract"
)

func newBatchCmd(gf *globalFlags) *cobra.Command {
	var (
		userID  string
		workers string
	)

	cmd := &cobra.Command{
		Use:   "batch [file|-]",
		Short: "Extract records from a file with one sentence per line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := gf.resolve(workers)
			if err != nil {
				return err
			}
			defer func() { _ = a.logger.Sync() }()

			n, err := a.cfg.Workers()
			if err != nil {
				return err
			}

			src := "-"
			if len(args) == 1 {
				src = args[0]
			}
			lines, err := readLines(src, cmd.InOrStdin())
			if err != nil {
				return err
			}

			a.logger.Info("batch started", zap.String("source", src), zap.Int("lines", len(lines)), zap.Int("workers", n))

			outs, err := runBatch(cmd.Context(), a.pipeline, lines, userID, n, a.threshold)
			if err != nil {
				return err
			}

			review := 0
			for _, o := range outs {
				if o.NeedsReview {
					review++
				}
			}
			a.logger.Info("batch finished", zap.Int("records", len(outs)), zap.Int("needs_review", review))

			return writeMany(cmd.OutOrStdout(), a.format, outs)
		},
	}

	cmd.Flags().StringVarP(&userID, "user", "u", "", "user id to attach to every record")
	cmd.Flags().StringVarP(&workers, "workers", "w", "", "number of sentences processed in parallel")
	return cmd
}

// runBatch processes lines with at most workers goroutines. Results keep the
// input order.
func runBatch(ctx context.Context, p *extract.Pipeline, lines []string, userID string, workers int, threshold float64) ([]output, error) {
	outs := make([]output, len(lines))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, line := range lines {
		i, line := i, line
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			outs[i] = newOutput(p.Process(line, userID), threshold)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "batch interrupted")
	}
	return outs, nil
}

// readLines returns the non-blank lines of path, or of stdin when path is "-".
func readLines(path string, stdin io.Reader) ([]string, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "opening %s", path)
		}
		defer f.Close()
		r = f
	}

	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return lines, nil
}
