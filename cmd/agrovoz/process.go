package main

import (
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newProcessCmd(gf *globalFlags) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "process [text...]",
		Short: "Extract a record from one sentence (reads stdin when no text is given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := gf.resolve("")
			if err != nil {
				return err
			}
			defer func() { _ = a.logger.Sync() }()

			text := strings.Join(args, " ")
			if len(args) == 0 {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return errors.Wrap(err, "reading stdin")
				}
				text = strings.TrimSpace(string(b))
			}

			res := a.pipeline.Process(text, userID)
			out := newOutput(res, a.threshold)
			a.logger.Info("processed",
				zap.String("activity", string(res.Record.ActivityType)),
				zap.Float64("confidence", res.ExtractionConfidence),
				zap.Bool("needs_review", out.NeedsReview),
			)
			return writeOne(cmd.OutOrStdout(), a.format, out)
		},
	}

	cmd.Flags().StringVarP(&userID, "user", "u", "", "user id to attach to the record")
	return cmd
}
