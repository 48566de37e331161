package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Zuo-Peng/chat-analyzer/internal/parse"
	"github.com/Zuo-Peng/chat-analyzer/internal/render"
	"github.com/Zuo-Peng/chat-analyzer/internal/report"
	"github.com/Zuo-Peng/chat-analyzer/internal/tui"
)

func analyzeCmd() *cobra.Command {
	var asJSON, plain, skipBad bool
	var top, width int
	var section string

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Analyze an exported chat transcript",
		Long: `Parse a WhatsApp "Export chat" text file and show message, word, media,
link, activity, response-time, emoji and word statistics.

Opens an interactive viewer when stdout is a terminal. Use --plain or pipe the
output for a text report, --section to print a single section, or --json for
the raw aggregates.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			opts := cfg.ParseOptions()
			if skipBad {
				opts.OnBadTimestamp = parse.BadTimestampSkip
			}
			if !cmd.Flags().Changed("top") {
				top = cfg.TopN
			}

			path := args[0]
			log.Debug().Str("path", path).Msg("parsing transcript")
			res, err := parse.ParseFile(path, opts)
			if err != nil {
				return fmt.Errorf("parse %s: %w", path, err)
			}
			log.Debug().
				Int("messages", res.TotalMessages).
				Int("lines", res.Lines.Total).
				Int("blank", res.Lines.Blank).
				Int("system", res.Lines.System).
				Int("unmatched", res.Lines.Unmatched).
				Int("bad_timestamp", res.Lines.BadTimestamp).
				Msg("parsed transcript")

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}

			if res.TotalMessages == 0 {
				fmt.Fprintln(os.Stderr, "No messages found.")
				return nil
			}

			rep := report.Build(res, top)
			isTTY := term.IsTerminal(int(os.Stdout.Fd()))

			// Interactive viewer when stdout is a terminal; text report for pipes
			if isTTY && !plain && section == "" {
				return tui.Run(rep, filepath.Base(path))
			}

			if width == 0 && isTTY {
				if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
					width = w
				}
			}
			ropts := render.Options{Width: width, Color: cfg.Color && isTTY}

			if section != "" {
				s, ok := render.FindSection(render.Sections(rep, ropts), section)
				if !ok {
					return fmt.Errorf("unknown section %q", section)
				}
				fmt.Print(render.RenderSection(s, ropts.Color))
				return nil
			}

			fmt.Print(render.RenderReport(rep, ropts))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the aggregates as JSON")
	cmd.Flags().BoolVar(&plain, "plain", false, "Print a text report instead of the interactive viewer")
	cmd.Flags().BoolVar(&skipBad, "skip-bad-timestamps", false, "Skip lines with malformed timestamps instead of failing")
	cmd.Flags().IntVar(&top, "top", 10, "Number of emojis/words to list")
	cmd.Flags().IntVar(&width, "width", 0, "Wrap width for the text report (0 = terminal width or no wrap)")
	cmd.Flags().StringVar(&section, "section", "", "Print one section (overview, weekdays, months, years, peak, users, response, emojis, words)")

	return cmd
}
