package lexicon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cronverse/cronverse/pkg/lexicon"
	"github.com/cronverse/cronverse/pkg/schedule"
)

func TestUnitForShort(t *testing.T) {
	t.Run("lower case m is minutes", func(t *testing.T) {
		u, ok := lexicon.UnitForShort("m")
		require.True(t, ok)
		assert.Equal(t, schedule.UnitMinutes, u)
	})

	t.Run("upper case M is months", func(t *testing.T) {
		u, ok := lexicon.UnitForShort("M")
		require.True(t, ok)
		assert.Equal(t, schedule.UnitMonths, u)
	})

	t.Run("other abbreviations resolve", func(t *testing.T) {
		cases := map[string]schedule.Unit{
			"s": schedule.UnitSeconds,
			"h": schedule.UnitHours,
			"d": schedule.UnitDays,
			"w": schedule.UnitWeeks,
			"y": schedule.UnitYears,
		}
		for tok, want := range cases {
			u, ok := lexicon.UnitForShort(tok)
			require.True(t, ok, "token %q", tok)
			assert.Equal(t, want, u)
		}
	})

	t.Run("upper case variants of other letters miss", func(t *testing.T) {
		for _, tok := range []string{"S", "H", "D", "W", "Y"} {
			_, ok := lexicon.UnitForShort(tok)
			assert.False(t, ok, "token %q", tok)
		}
	})
}

func TestUnitForLong(t *testing.T) {
	t.Run("long forms are case-insensitive", func(t *testing.T) {
		for _, tok := range []string{"minutes", "Minutes", "MINUTE", "minute"} {
			u, ok := lexicon.UnitForLong(tok)
			require.True(t, ok, "token %q", tok)
			assert.Equal(t, schedule.UnitMinutes, u)
		}
	})

	t.Run("months long form is case-insensitive", func(t *testing.T) {
		u, ok := lexicon.UnitForLong("Months")
		require.True(t, ok)
		assert.Equal(t, schedule.UnitMonths, u)
	})

	t.Run("unknown words miss", func(t *testing.T) {
		_, ok := lexicon.UnitForLong("fortnight")
		assert.False(t, ok)
	})
}

func TestWeekdayFor(t *testing.T) {
	t.Run("full and three-letter names resolve", func(t *testing.T) {
		cases := map[string]schedule.Weekday{
			"monday": schedule.Monday,
			"mon":    schedule.Monday,
			"SUNDAY": schedule.Sunday,
			"Fri":    schedule.Friday,
		}
		for tok, want := range cases {
			d, ok := lexicon.WeekdayFor(tok)
			require.True(t, ok, "token %q", tok)
			assert.Equal(t, want, d)
		}
	})

	t.Run("unknown names miss", func(t *testing.T) {
		_, ok := lexicon.WeekdayFor("someday")
		assert.False(t, ok)
	})
}

func TestMonthFor(t *testing.T) {
	t.Run("full and three-letter names resolve", func(t *testing.T) {
		cases := map[string]int{
			"january":  1,
			"jan":      1,
			"May":      5,
			"SEP":      9,
			"december": 12,
		}
		for tok, want := range cases {
			m, ok := lexicon.MonthFor(tok)
			require.True(t, ok, "token %q", tok)
			assert.Equal(t, want, m)
		}
	})
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "january", lexicon.MonthName(1))
	assert.Equal(t, "december", lexicon.MonthName(12))
	assert.Equal(t, "unknown", lexicon.MonthName(0))
	assert.Equal(t, "unknown", lexicon.MonthName(13))
}

func TestOrdinalFor(t *testing.T) {
	t.Run("valid ordinals resolve", func(t *testing.T) {
		cases := map[string]int{
			"1st":  1,
			"2nd":  2,
			"3rd":  3,
			"4th":  4,
			"11th": 11,
			"21st": 21,
			"31st": 31,
		}
		for tok, want := range cases {
			n, ok := lexicon.OrdinalFor(tok)
			require.True(t, ok, "token %q", tok)
			assert.Equal(t, want, n)
		}
	})

	t.Run("mismatched suffixes miss", func(t *testing.T) {
		for _, tok := range []string{"1nd", "2st", "11st", "th", "fifth"} {
			_, ok := lexicon.OrdinalFor(tok)
			assert.False(t, ok, "token %q", tok)
		}
	})
}

func TestIsLast(t *testing.T) {
	assert.True(t, lexicon.IsLast("last"))
	assert.True(t, lexicon.IsLast("LAST"))
	assert.False(t, lexicon.IsLast("first"))
}
