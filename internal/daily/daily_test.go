package daily

import (
	"testing"
	"time"
)

func TestDateKeyUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*3600)
	d := time.Date(2024, 3, 2, 5, 0, 0, 0, loc)
	if got := DateKey(d); got != "2024-03-01" {
		t.Fatalf("DateKey = %s, want 2024-03-01", got)
	}
}

func TestDayNumber(t *testing.T) {
	cases := map[string]int{"2021-06-19": 0, "2021-06-20": 1, "2021-07-19": 30, "2021-06-18": -1}
	for s, want := range cases {
		d, err := ParseDate(s)
		if err != nil {
			t.Fatal(err)
		}
		if got := DayNumber(d); got != want {
			t.Errorf("DayNumber(%s) = %d, want %d", s, got, want)
		}
	}
}

func TestWordIndexDeterministic(t *testing.T) {
	d := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	a := WordIndex(d, "salt", 50)
	if a != WordIndex(d.Add(time.Hour), "salt", 50) {
		t.Fatalf("same day gave different indexes")
	}
	if a < 0 || a >= 50 {
		t.Fatalf("index %d out of range", a)
	}
	if WordIndex(d, "salt", 0) != 0 {
		t.Fatalf("empty list should give 0")
	}
}

func TestIndex(t *testing.T) {
	d, _ := ParseDate("2021-06-21")
	if got := Index(d, "s", 50); got != 2 {
		t.Fatalf("Index = %d, want 2", got)
	}
	late, _ := ParseDate("2031-01-01")
	if got, want := Index(late, "s", 50), WordIndex(late, "s", 50); got != want {
		t.Fatalf("Index past history = %d, want %d", got, want)
	}
}
