package parse

import "time"

// Message is one matched transcript line. It only lives long enough to be
// folded into a Result.
type Message struct {
	Timestamp time.Time
	Sender    string
	Body      string
	Words     []string
	Emojis    []string
	IsMedia   bool
	HasLink   bool
}

type LineStats struct {
	Total        int `json:"total"`
	Blank        int `json:"blank"`
	System       int `json:"system"`
	Unmatched    int `json:"unmatched"` // continuation lines and malformed lines
	BadTimestamp int `json:"badTimestamp"`
}

// Result holds the aggregates for a whole transcript.
type Result struct {
	TotalMessages    int                  `json:"totalMessages"`
	TotalWords       int                  `json:"totalWords"`
	MediaShared      int                  `json:"mediaShared"`
	LinksShared      int                  `json:"linksShared"`
	Dates            []time.Time          `json:"dates"`
	UserMessages     map[string]int       `json:"userMessages"`
	Words            []string             `json:"words"`
	Emojis           []string             `json:"emojis"`
	ResponseTimes    map[string][]float64 `json:"responseTimes"`
	AvgResponseTimes map[string]float64   `json:"avgResponseTimes"`
	Hours            []int                `json:"hours"`
	Lines            LineStats            `json:"lines"`
}

func newResult() *Result {
	return &Result{
		Dates:            []time.Time{},
		UserMessages:     make(map[string]int),
		Words:            []string{},
		Emojis:           []string{},
		ResponseTimes:    make(map[string][]float64),
		AvgResponseTimes: make(map[string]float64),
		Hours:            []int{},
	}
}

// add folds a message into the running totals.
func (r *Result) add(msg Message) {
	r.TotalMessages++
	r.UserMessages[msg.Sender]++

	ts := msg.Timestamp
	r.Dates = append(r.Dates, time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, ts.Location()))
	r.Hours = append(r.Hours, ts.Hour())

	r.Words = append(r.Words, msg.Words...)
	r.TotalWords += len(msg.Words)
	r.Emojis = append(r.Emojis, msg.Emojis...)

	if msg.IsMedia {
		r.MediaShared++
	}
	if msg.HasLink {
		r.LinksShared++
	}
}

func (r *Result) addResponse(sender string, minutes float64) {
	r.ResponseTimes[sender] = append(r.ResponseTimes[sender], minutes)
}

// finish computes the per-sender averages. Senders without samples get no entry.
func (r *Result) finish() {
	r.AvgResponseTimes = make(map[string]float64, len(r.ResponseTimes))
	for sender, times := range r.ResponseTimes {
		if len(times) == 0 {
			continue
		}
		sum := 0.0
		for _, t := range times {
			sum += t
		}
		r.AvgResponseTimes[sender] = sum / float64(len(times))
	}
}

// FirstDate and LastDate return the zero time for an empty transcript.
func (r *Result) FirstDate() time.Time {
	if len(r.Dates) == 0 {
		return time.Time{}
	}
	return r.Dates[0]
}

func (r *Result) LastDate() time.Time {
	if len(r.Dates) == 0 {
		return time.Time{}
	}
	return r.Dates[len(r.Dates)-1]
}
