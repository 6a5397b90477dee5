package schedule

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMondayOf(t *testing.T) {
	monday := date(2024, time.June, 3)
	// Все семь дней недели, включая воскресенье, дают один понедельник.
	for offset := 0; offset < 7; offset++ {
		d := monday.AddDate(0, 0, offset)
		if got := MondayOf(d); !got.Equal(monday) {
			t.Errorf("MondayOf(%s) = %s, ожидалось %s",
				d.Format(DateLayout), got.Format(DateLayout), monday.Format(DateLayout))
		}
	}
}

func TestSaturdayOf(t *testing.T) {
	want := date(2024, time.June, 8)
	if got := SaturdayOf(date(2024, time.June, 5)); !got.Equal(want) {
		t.Errorf("SaturdayOf = %s, ожидалось %s", got.Format(DateLayout), want.Format(DateLayout))
	}
}

func TestSessionIDOf(t *testing.T) {
	cases := []struct {
		d    time.Time
		want string
	}{
		{date(2024, time.June, 3), "2024-W23"},
		{date(2024, time.June, 9), "2024-W23"}, // воскресенье той же недели
		// Граница года: ISO-год отличается от григорианского.
		{date(2024, time.December, 30), "2025-W01"},
		{date(2021, time.January, 1), "2020-W53"},
	}
	for _, c := range cases {
		if got := SessionIDOf(c.d); got != c.want {
			t.Errorf("SessionIDOf(%s) = %q, ожидалось %q", c.d.Format(DateLayout), got, c.want)
		}
	}
}

// Идентификатор и окно недели всегда выводятся из одной недели:
// SessionIDOf от понедельника совпадает с SessionIDOf исходной даты.
func TestSessionIDMatchesMonday(t *testing.T) {
	for _, d := range []time.Time{
		date(2024, time.June, 9),
		date(2024, time.December, 31),
		date(2021, time.January, 2),
	} {
		if SessionIDOf(d) != SessionIDOf(MondayOf(d)) {
			t.Errorf("дата %s: SessionIDOf расходится с понедельником своей недели", d.Format(DateLayout))
		}
	}
}
