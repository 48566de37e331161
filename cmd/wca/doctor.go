package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Zuo-Peng/chat-analyzer/internal/config"
	"github.com/Zuo-Peng/chat-analyzer/internal/parse"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor [file]",
		Short: "Self-check: show config and how a transcript's lines are classified",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			fmt.Println("=== Config ===")
			if cfg.Path == "" {
				path, _ := config.DefaultPath()
				if cfgPath != "" {
					path = cfgPath
				}
				fmt.Printf("  File: %s (NOT FOUND, using defaults)\n", path)
			} else {
				fmt.Printf("  File: %s (OK)\n", cfg.Path)
			}
			fmt.Printf("  top_n:            %d\n", cfg.TopN)
			fmt.Printf("  on_bad_timestamp: %s\n", cfg.OnBadTimestamp)
			fmt.Printf("  transcript_ext:   %s\n", cfg.TranscriptExt)
			fmt.Printf("  log_level:        %s\n", cfg.LogLevel)
			fmt.Printf("  color:            %t\n", cfg.Color)
			fmt.Printf("  export_dir:       %s\n", cfg.ExportDir)
			checkDir("export_dir", cfg.ExportDir)

			if len(args) == 0 {
				return nil
			}

			// classify with the skip policy so every bad line is counted
			fmt.Println("\n=== Transcript ===")
			path := args[0]
			res, err := parse.ParseFile(path, parse.Options{OnBadTimestamp: parse.BadTimestampSkip})
			if err != nil {
				return fmt.Errorf("parse %s: %w", path, err)
			}

			l := res.Lines
			fmt.Printf("  Path:           %s\n", path)
			fmt.Printf("  Lines:          %d\n", l.Total)
			fmt.Printf("  Messages:       %d\n", res.TotalMessages)
			fmt.Printf("  Blank:          %d\n", l.Blank)
			fmt.Printf("  System notices: %d\n", l.System)
			fmt.Printf("  Unmatched:      %d (continuation or malformed lines)\n", l.Unmatched)
			fmt.Printf("  Bad timestamps: %d\n", l.BadTimestamp)

			switch {
			case res.TotalMessages == 0:
				fmt.Println("  Status: NO MESSAGES (is this a dd/mm/yy 12-hour export?)")
			case l.BadTimestamp > 0 && cfg.ParseOptions().OnBadTimestamp == parse.BadTimestampFail:
				_, err := parse.ParseFile(path, cfg.ParseOptions())
				var tsErr *parse.TimestampError
				if errors.As(err, &tsErr) {
					fmt.Printf("  Status: FAILS under on_bad_timestamp=fail (first at line %d: %q)\n", tsErr.Line, tsErr.Text)
				}
			default:
				fmt.Println("  Status: OK")
			}
			return nil
		},
	}
}

func checkDir(name, path string) {
	if info, err := os.Stat(path); err != nil {
		fmt.Printf("  %s: %s (NOT FOUND)\n", name, path)
	} else if !info.IsDir() {
		fmt.Printf("  %s: %s (NOT A DIRECTORY)\n", name, path)
	} else {
		fmt.Printf("  %s: %s (OK)\n", name, path)
	}
}
