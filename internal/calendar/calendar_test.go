package calendar

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "monday is returned unchanged",
			in:   date(2026, time.January, 12),
			want: date(2026, time.January, 12),
		},
		{
			name: "wednesday maps to preceding monday",
			in:   date(2026, time.January, 14),
			want: date(2026, time.January, 12),
		},
		{
			name: "sunday maps to preceding monday",
			in:   date(2026, time.January, 18),
			want: date(2026, time.January, 12),
		},
		{
			name: "saturday maps to preceding monday",
			in:   date(2026, time.January, 17),
			want: date(2026, time.January, 12),
		},
		{
			name: "crosses month boundary",
			in:   date(2026, time.February, 1),
			want: date(2026, time.January, 26),
		},
		{
			name: "crosses year boundary",
			in:   date(2026, time.January, 1),
			want: date(2025, time.December, 29),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeekStart(tt.in)
			if !got.Equal(tt.want) {
				t.Errorf("WeekStart(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestWeekStartProperties(t *testing.T) {
	// Idempotence and Monday alignment over a full year of dates.
	d := date(2026, time.January, 1)
	for i := 0; i < 365; i++ {
		ws := WeekStart(d)
		if ws.Weekday() != time.Monday {
			t.Fatalf("WeekStart(%v).Weekday() = %v, want Monday", d, ws.Weekday())
		}
		if again := WeekStart(ws); !again.Equal(ws) {
			t.Fatalf("WeekStart not idempotent for %v: %v != %v", d, again, ws)
		}
		if ws.After(d) {
			t.Fatalf("WeekStart(%v) = %v is after the input date", d, ws)
		}
		d = d.AddDate(0, 0, 1)
	}
}

func TestWeekEnd(t *testing.T) {
	monday := date(2026, time.January, 12)
	want := date(2026, time.January, 18)
	if got := WeekEnd(monday); !got.Equal(want) {
		t.Errorf("WeekEnd(%v) = %v, want %v", monday, got, want)
	}
}

func TestWeekDates(t *testing.T) {
	monday := date(2026, time.January, 12)
	dates := WeekDates(monday)

	if len(dates) != 7 {
		t.Fatalf("WeekDates returned %d dates, want 7", len(dates))
	}
	if !dates[0].Equal(monday) {
		t.Errorf("WeekDates[0] = %v, want %v", dates[0], monday)
	}
	wantWeekdays := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}
	for i, d := range dates {
		if d.Weekday() != wantWeekdays[i] {
			t.Errorf("WeekDates[%d].Weekday() = %v, want %v", i, d.Weekday(), wantWeekdays[i])
		}
		if i > 0 {
			if want := dates[i-1].AddDate(0, 0, 1); !d.Equal(want) {
				t.Errorf("WeekDates[%d] = %v, want %v (previous day + 1)", i, d, want)
			}
		}
	}
}

func TestNavigateWeek(t *testing.T) {
	monday := date(2026, time.January, 12)

	tests := []struct {
		name   string
		offset int
		want   time.Time
	}{
		{"next week", 1, date(2026, time.January, 19)},
		{"previous week", -1, date(2026, time.January, 5)},
		{"zero offset is identity", 0, monday},
		{"four weeks forward", 4, date(2026, time.February, 9)},
		{"ten weeks back", -10, date(2025, time.November, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NavigateWeek(monday, tt.offset); !got.Equal(tt.want) {
				t.Errorf("NavigateWeek(%v, %d) = %v, want %v", monday, tt.offset, got, tt.want)
			}
		})
	}

	t.Run("navigation is invertible", func(t *testing.T) {
		for offset := -52; offset <= 52; offset++ {
			there := NavigateWeek(monday, offset)
			back := NavigateWeek(there, -offset)
			if !back.Equal(monday) {
				t.Fatalf("NavigateWeek(NavigateWeek(W, %d), %d) = %v, want %v", offset, -offset, back, monday)
			}
		}
	})
}

func TestSameDate(t *testing.T) {
	a := time.Date(2026, time.January, 14, 8, 30, 0, 0, time.UTC)
	b := time.Date(2026, time.January, 14, 23, 59, 0, 0, time.UTC)
	if !SameDate(a, b) {
		t.Error("SameDate returned false for two times on the same date")
	}
	if SameDate(a, b.AddDate(0, 0, 1)) {
		t.Error("SameDate returned true for different dates")
	}
}

func TestFormatParseDate(t *testing.T) {
	d := date(2026, time.January, 12)
	s := FormatDate(d)
	if s != "2026-01-12" {
		t.Errorf("FormatDate = %q, want %q", s, "2026-01-12")
	}
	parsed, err := ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q) returned error: %v", s, err)
	}
	if !SameDate(parsed, d) {
		t.Errorf("ParseDate(FormatDate(%v)) = %v", d, parsed)
	}

	if _, err := ParseDate("01/12/2026"); err == nil {
		t.Error("ParseDate accepted a non-ISO date string")
	}
}

func TestWeekLabel(t *testing.T) {
	got := WeekLabel(date(2026, time.January, 12))
	want := "Jan 12 - Jan 18, 2026"
	if got != want {
		t.Errorf("WeekLabel = %q, want %q", got, want)
	}
}
