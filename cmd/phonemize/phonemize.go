package main

import (
	"log/slog"

	"github.com/example/go-phonemize/internal/server"
	"github.com/spf13/cobra"
)

func newPhonemizeCmd() *cobra.Command {
	var inputText string
	var pretty bool

	cmd := &cobra.Command{
		Use:   "phonemize",
		Short: "Resolve text to per-word pronunciations",
		Long: "Reads lines from stdin (or --text), runs the full pipeline, and " +
			"prints one JSON record per sentence with each word's features and " +
			"space-joined phoneme string. Degraded words stay in the output with " +
			"their failure flag set.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			svc, _, err := buildService(cfg)
			if err != nil {
				return err
			}

			enc := newEncoder(cmd.OutOrStdout(), pretty)
			return forEachLine(inputText, cmd.InOrStdin(), func(line string) error {
				res, err := svc.Phonemize(cmd.Context(), line)
				if err != nil {
					return err
				}
				for _, warn := range res.Warnings {
					slog.Warn("degraded output", slog.String("detail", warn.String()))
				}
				for _, s := range server.BuildSentences(res) {
					if err := enc.Encode(s); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&inputText, "text", "", "Text to phonemize (if empty, read lines from stdin)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent JSON output")

	return cmd
}
