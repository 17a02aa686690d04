package date

import (
	"testing"
	"time"

	"github.com/matryer/is"
)

// 2026-10-20 is a Tuesday
var tuesday = time.Date(2026, 10, 20, 15, 30, 0, 0, time.UTC)

func TestNextWeekday(t *testing.T) {
	t.Run("Same weekday wraps to next week", func(t *testing.T) {
		is := is.New(t)
		next := NextWeekday(tuesday, time.Tuesday)
		is.Equal(Format(next), "2026-10-27")
	})
	t.Run("In a few days", func(t *testing.T) {
		is := is.New(t)
		next := NextWeekday(tuesday, time.Thursday)
		is.Equal(Format(next), "2026-10-22")
	})
	t.Run("Earlier weekday is next week", func(t *testing.T) {
		is := is.New(t)
		next := NextWeekday(tuesday, time.Monday)
		is.Equal(Format(next), "2026-10-26")
	})
	t.Run("Always at least one day ahead", func(t *testing.T) {
		for w := time.Sunday; w <= time.Saturday; w++ {
			is := is.New(t)
			next := NextWeekday(tuesday, w)
			days := int(next.Sub(StartOfDay(tuesday)).Hours() / 24)
			is.True(days >= 1 && days <= 7)
			is.Equal(next.Weekday(), w)
		}
	})
}

func TestInstant(t *testing.T) {
	is := is.New(t)

	_, ok := Instant(nil)
	is.True(!ok)

	bad := "next tuesday"
	_, ok = Instant(&bad)
	is.True(!ok)

	good := "2026-10-20"
	at, ok := Instant(&good)
	is.True(ok)
	is.Equal(at, time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC))
}

func TestStartOfDay(t *testing.T) {
	is := is.New(t)
	is.Equal(StartOfDay(tuesday), time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC))
}

func TestDaysBetween(t *testing.T) {
	is := is.New(t)
	tokyo := time.FixedZone("JST", 9*60*60)
	from := time.Date(2026, time.October, 20, 23, 30, 0, 0, tokyo)

	is.Equal(DaysBetween(from, time.Date(2026, time.October, 20, 0, 0, 0, 0, time.UTC)), 0)
	is.Equal(DaysBetween(from, time.Date(2026, time.October, 27, 0, 0, 0, 0, time.UTC)), 7)
	is.Equal(DaysBetween(from, time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC)), -2)
	// across a month boundary
	is.Equal(DaysBetween(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)), 31)
}
