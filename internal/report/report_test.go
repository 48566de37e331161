package report

import (
	"reflect"
	"testing"

	"github.com/Zuo-Peng/chat-analyzer/internal/parse"
)

const chat = "" +
	"30/12/22, 11:00 PM - Alice: see you next year 🎉\n" +
	"02/01/23, 12:30 AM - Bob: happy new year 🎉 🎉\n" +
	"02/01/23, 1:00 PM - Bob: <Media omitted>\n" +
	"03/02/23, 9:00 AM - Alice: year review https://example.com 😂\n"

func build(t *testing.T, data string, topN int) *Report {
	t.Helper()
	res, err := parse.ParseChat(data, parse.Options{})
	if err != nil {
		t.Fatalf("ParseChat: %v", err)
	}
	return Build(res, topN)
}

func TestBuild(t *testing.T) {
	r := build(t, chat, 3)

	t.Run("totals", func(t *testing.T) {
		if r.TotalMessages != 4 || r.MediaShared != 1 || r.LinksShared != 1 {
			t.Errorf("totals mismatch: %+v", r)
		}
		if r.First.Year() != 2022 || r.Last.Month() != 2 {
			t.Errorf("first/last mismatch: %v %v", r.First, r.Last)
		}
	})

	t.Run("weekdays", func(t *testing.T) {
		if len(r.Weekdays) != 7 || r.Weekdays[0].Label != "Monday" || r.Weekdays[6].Label != "Sunday" {
			t.Fatalf("weekday order mismatch: %v", r.Weekdays)
		}
		// 30 Dec 2022 Friday, 2 Jan 2023 Monday x2, 3 Feb 2023 Friday
		if r.Weekdays[0].Count != 2 || r.Weekdays[4].Count != 2 {
			t.Errorf("weekday counts mismatch: %v", r.Weekdays)
		}
	})

	t.Run("months and years", func(t *testing.T) {
		wantMonths := []Count{{"December 2022", 1}, {"January 2023", 2}, {"February 2023", 1}}
		if !reflect.DeepEqual(r.Months, wantMonths) {
			t.Errorf("months mismatch: got %v, want %v", r.Months, wantMonths)
		}
		wantYears := []Count{{"2022", 1}, {"2023", 3}}
		if !reflect.DeepEqual(r.Years, wantYears) {
			t.Errorf("years mismatch: got %v, want %v", r.Years, wantYears)
		}
	})

	t.Run("peak hours", func(t *testing.T) {
		// 23h -> 11, 0h -> 12, 13h -> 1, 9h -> 9
		got := map[string]int{}
		for _, c := range r.PeakHours {
			got[c.Label] = c.Count
		}
		if len(r.PeakHours) != 12 || got["11"] != 1 || got["12"] != 1 || got["1"] != 1 || got["9"] != 1 {
			t.Errorf("peak hours mismatch: %v", r.PeakHours)
		}
	})

	t.Run("users", func(t *testing.T) {
		want := []UserShare{{"Alice", 2, 50}, {"Bob", 2, 50}}
		if !reflect.DeepEqual(r.Users, want) {
			t.Errorf("users mismatch: got %v, want %v", r.Users, want)
		}
	})

	t.Run("responses", func(t *testing.T) {
		if len(r.Responses) != 2 || r.Responses[0].User != "Alice" || r.Responses[1].User != "Bob" {
			t.Fatalf("responses mismatch: %v", r.Responses)
		}
		if r.Responses[1].AvgMinutes != 2970 || r.Responses[1].Samples != 1 {
			t.Errorf("Bob response mismatch: %+v", r.Responses[1])
		}
	})

	t.Run("top emojis", func(t *testing.T) {
		want := []Count{{"🎉", 3}, {"😂", 1}}
		if !reflect.DeepEqual(r.TopEmojis, want) {
			t.Errorf("top emojis mismatch: got %v, want %v", r.TopEmojis, want)
		}
	})

	t.Run("top words limited", func(t *testing.T) {
		if len(r.TopWords) != 3 {
			t.Fatalf("top words length mismatch: got %d, want 3", len(r.TopWords))
		}
		// "year" is seen before the first 🎉
		if r.TopWords[0] != (Count{"year", 3}) || r.TopWords[1] != (Count{"🎉", 3}) {
			t.Errorf("top words mismatch: %v", r.TopWords)
		}
	})
}

func TestBuildEmpty(t *testing.T) {
	r := build(t, "nothing to see\n", 0)
	if !r.Empty() {
		t.Fatal("expected empty report")
	}
	if len(r.Users) != 0 || len(r.Months) != 0 || len(r.TopWords) != 0 {
		t.Errorf("expected no rows: %+v", r)
	}
	if len(r.Weekdays) != 7 || len(r.PeakHours) != 12 {
		t.Errorf("fixed axes missing: %d weekdays, %d hours", len(r.Weekdays), len(r.PeakHours))
	}
}

func TestTopNTieOrder(t *testing.T) {
	got := TopN([]string{"b", "a", "c", "a", "b", "d"}, 3)
	want := []Count{{"b", 2}, {"a", 2}, {"c", 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopN mismatch: got %v, want %v", got, want)
	}
}
