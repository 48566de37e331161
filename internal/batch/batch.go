package batch

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Zuo-Peng/chat-analyzer/internal/parse"
	"github.com/Zuo-Peng/chat-analyzer/internal/scan"
)

type Stats struct {
	Scanned  int
	Analyzed int
	Empty    int
	Errors   int
}

func (s Stats) String() string {
	return fmt.Sprintf("scanned=%d analyzed=%d empty=%d errors=%d",
		s.Scanned, s.Analyzed, s.Empty, s.Errors)
}

// Entry summarizes one transcript. Transcripts are never merged.
type Entry struct {
	Path     string
	Messages int
	Words    int
	Media    int
	Links    int
	Users    int
	First    time.Time
	Last     time.Time
}

// AnalyzeAll parses every transcript under root on its own. A file that fails
// to parse is logged and counted; it does not stop the run.
func AnalyzeAll(root, ext string, opts parse.Options) ([]Entry, Stats, error) {
	var stats Stats

	files, err := scan.ScanDir(root, ext)
	if err != nil {
		return nil, stats, fmt.Errorf("scan: %w", err)
	}
	stats.Scanned = len(files)

	var entries []Entry
	for _, fi := range files {
		res, err := parse.ParseFile(fi.Path, opts)
		if err != nil {
			stats.Errors++
			log.Warn().Err(err).Str("path", fi.Path).Msg("parse transcript")
			continue
		}
		if res.TotalMessages == 0 {
			stats.Empty++
			log.Debug().Str("path", fi.Path).Int("lines", res.Lines.Total).Msg("no messages in transcript")
			continue
		}

		entries = append(entries, Entry{
			Path:     fi.Path,
			Messages: res.TotalMessages,
			Words:    res.TotalWords,
			Media:    res.MediaShared,
			Links:    res.LinksShared,
			Users:    len(res.UserMessages),
			First:    res.FirstDate(),
			Last:     res.LastDate(),
		})
		stats.Analyzed++
	}

	return entries, stats, nil
}
