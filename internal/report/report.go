package report

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/Zuo-Peng/chat-analyzer/internal/parse"
)

const DefaultTopN = 10

type Count struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type UserShare struct {
	User     string  `json:"user"`
	Messages int     `json:"messages"`
	Percent  float64 `json:"percent"`
}

type ResponseStat struct {
	User       string  `json:"user"`
	AvgMinutes float64 `json:"avgMinutes"`
	Samples    int     `json:"samples"`
}

// Report is the presentation-ready view of a parse.Result.
type Report struct {
	TotalMessages int             `json:"totalMessages"`
	TotalWords    int             `json:"totalWords"`
	MediaShared   int             `json:"mediaShared"`
	LinksShared   int             `json:"linksShared"`
	First         time.Time       `json:"first"`
	Last          time.Time       `json:"last"`
	Weekdays      []Count         `json:"weekdays"`
	Months        []Count         `json:"months"`
	Years         []Count         `json:"years"`
	PeakHours     []Count         `json:"peakHours"` // 12-hour clock, "1".."12"
	Users         []UserShare     `json:"users"`
	Responses     []ResponseStat  `json:"responses"`
	TopEmojis     []Count         `json:"topEmojis"`
	TopWords      []Count         `json:"topWords"`
	Lines         parse.LineStats `json:"lines"`
}

func (r *Report) Empty() bool {
	return r.TotalMessages == 0
}

func Build(res *parse.Result, topN int) *Report {
	if topN <= 0 {
		topN = DefaultTopN
	}
	return &Report{
		TotalMessages: res.TotalMessages,
		TotalWords:    res.TotalWords,
		MediaShared:   res.MediaShared,
		LinksShared:   res.LinksShared,
		First:         res.FirstDate(),
		Last:          res.LastDate(),
		Weekdays:      weekdayCounts(res.Dates),
		Months:        monthCounts(res.Dates),
		Years:         yearCounts(res.Dates),
		PeakHours:     peakHours(res.Hours),
		Users:         userShares(res.UserMessages, res.TotalMessages),
		Responses:     responseStats(res),
		TopEmojis:     TopN(res.Emojis, topN),
		TopWords:      TopN(res.Words, topN),
		Lines:         res.Lines,
	}
}

// weekdayCounts always returns all seven days, Monday first.
func weekdayCounts(dates []time.Time) []Count {
	var n [7]int
	for _, d := range dates {
		n[d.Weekday()]++
	}
	out := make([]Count, 0, 7)
	for i := 1; i <= 7; i++ {
		wd := time.Weekday(i % 7)
		out = append(out, Count{Label: wd.String(), Count: n[wd]})
	}
	return out
}

func monthCounts(dates []time.Time) []Count {
	type ym struct {
		y int
		m time.Month
	}
	counts := make(map[ym]int)
	for _, d := range dates {
		counts[ym{d.Year(), d.Month()}]++
	}
	keys := make([]ym, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].y != keys[j].y {
			return keys[i].y < keys[j].y
		}
		return keys[i].m < keys[j].m
	})
	out := make([]Count, 0, len(keys))
	for _, k := range keys {
		out = append(out, Count{Label: fmt.Sprintf("%s %d", k.m, k.y), Count: counts[k]})
	}
	return out
}

func yearCounts(dates []time.Time) []Count {
	counts := make(map[int]int)
	for _, d := range dates {
		counts[d.Year()]++
	}
	years := make([]int, 0, len(counts))
	for y := range counts {
		years = append(years, y)
	}
	sort.Ints(years)
	out := make([]Count, 0, len(years))
	for _, y := range years {
		out = append(out, Count{Label: strconv.Itoa(y), Count: counts[y]})
	}
	return out
}

// peakHours folds 0-23 onto a 12-hour dial: 0 and 12 both count as 12.
func peakHours(hours []int) []Count {
	var n [13]int
	for _, h := range hours {
		h12 := h % 12
		if h12 == 0 {
			h12 = 12
		}
		n[h12]++
	}
	out := make([]Count, 0, 12)
	for h := 1; h <= 12; h++ {
		out = append(out, Count{Label: strconv.Itoa(h), Count: n[h]})
	}
	return out
}

func userShares(users map[string]int, total int) []UserShare {
	out := make([]UserShare, 0, len(users))
	for u, n := range users {
		s := UserShare{User: u, Messages: n}
		if total > 0 {
			s.Percent = float64(n) / float64(total) * 100
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Messages == out[j].Messages {
			return out[i].User < out[j].User
		}
		return out[i].Messages > out[j].Messages
	})
	return out
}

func responseStats(res *parse.Result) []ResponseStat {
	out := make([]ResponseStat, 0, len(res.AvgResponseTimes))
	for u, avg := range res.AvgResponseTimes {
		out = append(out, ResponseStat{User: u, AvgMinutes: avg, Samples: len(res.ResponseTimes[u])})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].User < out[j].User })
	return out
}

// TopN returns the limit most frequent items, most frequent first. Ties keep
// the order in which items were first seen.
func TopN(items []string, limit int) []Count {
	index := make(map[string]int)
	var counts []Count
	for _, it := range items {
		if i, ok := index[it]; ok {
			counts[i].Count++
			continue
		}
		index[it] = len(counts)
		counts = append(counts, Count{Label: it, Count: 1})
	}
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })
	if limit > 0 && len(counts) > limit {
		counts = counts[:limit]
	}
	if counts == nil {
		counts = []Count{}
	}
	return counts
}
