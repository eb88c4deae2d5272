package datemath_test

import (
	"testing"
	"time"

	"lifeos/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Europe/Berlin")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	today := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		relative string
		want     time.Time
		wantErr  bool
	}{
		{name: "Today", relative: "today", want: today},
		{name: "Tomorrow", relative: "Tomorrow", want: today.AddDate(0, 0, 1)},
		{name: "Yesterday", relative: "yesterday", want: today.AddDate(0, 0, -1)},
		{name: "In 3 days", relative: "in 3 days", want: today.AddDate(0, 0, 3)},
		{name: "In 2 weeks", relative: "in 2 weeks", want: today.AddDate(0, 0, 14)},
		{name: "In 1 month", relative: "in 1 month", want: today.AddDate(0, 1, 0)},
		{name: "Invalid duration pattern", relative: "in a few days", wantErr: true},
		{name: "Next Monday (from Wed)", relative: "next monday", want: today.AddDate(0, 0, 5)},
		{name: "Next Wednesday (from Wed)", relative: "next wed", want: today.AddDate(0, 0, 7)},
		{name: "Unknown expression", relative: "some random day", wantErr: true},
		{name: "Invalid Next Weekday", relative: "next funday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTodayUsesParserTimezone(t *testing.T) {
	parser, err := datemath.NewParser("Asia/Tokyo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 20:00 UTC on May 1 is already May 2 in Tokyo.
	now := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)
	if got := datemath.Key(parser.Today(now)); got != "2024-05-02" {
		t.Errorf("expected 2024-05-02, got %s", got)
	}
}

func TestParseDue(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	abs, err := parser.ParseDue("2024-06-10", base)
	if err != nil || abs.Relative || datemath.Key(abs.Date) != "2024-06-10" {
		t.Errorf("unexpected absolute parse: %+v, %v", abs, err)
	}

	rel, err := parser.ParseDue("tomorrow", base)
	if err != nil || !rel.Relative || datemath.Key(rel.Date) != "2024-05-02" {
		t.Errorf("unexpected relative parse: %+v, %v", rel, err)
	}

	if _, err := parser.ParseDue("10/06/2024", base); err == nil {
		t.Errorf("expected error for unsupported format")
	}
}

func TestParseWeekday(t *testing.T) {
	for _, name := range []string{"Mon", "monday", "MONDAY"} {
		if d, ok := datemath.ParseWeekday(name); !ok || d != time.Monday {
			t.Errorf("ParseWeekday(%q) = %v, %v", name, d, ok)
		}
	}
	if _, ok := datemath.ParseWeekday("mo"); ok {
		t.Errorf("two-letter names must be rejected")
	}
}

func TestMondayIndex(t *testing.T) {
	if datemath.MondayIndex(time.Monday) != 0 || datemath.MondayIndex(time.Sunday) != 6 {
		t.Errorf("unexpected Monday-based index")
	}
}
