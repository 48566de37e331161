package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Zuo-Peng/chat-analyzer/internal/batch"
	"github.com/Zuo-Peng/chat-analyzer/internal/parse"
)

func batchCmd() *cobra.Command {
	var skipBad bool

	cmd := &cobra.Command{
		Use:   "batch [dir]",
		Short: "Analyze every transcript in a directory, one row per file",
		Long: `Analyze each transcript under dir (default: export_dir from the config)
separately. Output is TSV:
  path, messages, words, media, links, users, first, last

Transcripts are never merged; use 'wca analyze' for the full report of one file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			root := cfg.ExportDir
			if len(args) == 1 {
				root = args[0]
			}
			opts := cfg.ParseOptions()
			if skipBad {
				opts.OnBadTimestamp = parse.BadTimestampSkip
			}

			fmt.Fprintf(os.Stderr, "Scanning %s for *%s...\n", root, cfg.TranscriptExt)

			entries, stats, err := batch.AnalyzeAll(root, cfg.TranscriptExt, opts)
			if err != nil {
				return fmt.Errorf("batch: %w", err)
			}

			for _, e := range entries {
				fmt.Printf("%s\t%d\t%d\t%d\t%d\t%d\t%s\t%s\n",
					strings.ReplaceAll(e.Path, "\t", " "),
					e.Messages,
					e.Words,
					e.Media,
					e.Links,
					e.Users,
					e.First.Format("2006-01-02"),
					e.Last.Format("2006-01-02"),
				)
			}

			fmt.Fprintf(os.Stderr, "Done. %s\n", stats)
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipBad, "skip-bad-timestamps", false, "Skip lines with malformed timestamps instead of failing the file")

	return cmd
}
