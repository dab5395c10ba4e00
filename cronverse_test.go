package cronverse_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cronverse/cronverse"
	"github.com/cronverse/cronverse/pkg/emit"
	"github.com/cronverse/cronverse/pkg/schedule"
	"github.com/cronverse/cronverse/pkg/timeutil"
)

// testCodec pins the clock so every translation is reproducible
func testCodec() *cronverse.Codec {
	return cronverse.NewCodecWith(
		timeutil.NewFixedClock(time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)),
		timeutil.NewSystemDB(),
	)
}

func TestSeedScenarios(t *testing.T) {
	codec := testCodec()

	t.Run("30m to ncrontab", func(t *testing.T) {
		expr, err := codec.ToNCrontab("30m")
		require.NoError(t, err)
		assert.Equal(t, "0 */30 * * * *", expr)
	})

	t.Run("1d at 2pm to cron under UTC", func(t *testing.T) {
		expr, err := codec.ToCron("1d at 2pm", "UTC", "UTC")
		require.NoError(t, err)
		assert.Equal(t, "0 14 * * *", expr)
	})

	t.Run("every weekday at 2pm to ncrontab", func(t *testing.T) {
		expr, err := codec.ToNCrontab("every weekday at 2pm")
		require.NoError(t, err)
		assert.Equal(t, "0 0 14 * * 1-5", expr)
	})

	t.Run("1w on sunday at 3am to cron", func(t *testing.T) {
		expr, err := codec.ToCron("1w on sunday at 3am", "", "")
		require.NoError(t, err)
		assert.Equal(t, "0 3 * * 0", expr)
	})

	t.Run("unix daily expression to natural", func(t *testing.T) {
		text, err := codec.ToNatural("0 14 * * *", cronverse.DialectUnix)
		require.NoError(t, err)
		assert.Equal(t, "every day at 2pm", text)
	})

	t.Run("every 3 months to quartz calendar interval", func(t *testing.T) {
		out, err := codec.ToQuartz("every 3 months", "")
		require.NoError(t, err)
		ci, ok := out.(emit.QuartzCalendarInterval)
		require.True(t, ok, "expected calendar interval, got %T", out)
		assert.Equal(t, 3, ci.Interval)
		assert.Equal(t, schedule.UnitMonths, ci.Unit)
	})

	t.Run("every day at 12am is a formatting fixed point", func(t *testing.T) {
		spec, err := codec.Parse("every day at 12am")
		require.NoError(t, err)
		assert.Equal(t, "every day at 12am", codec.Format(spec))
	})

	t.Run("15pm fails with an ambiguous suffix at offset 2", func(t *testing.T) {
		_, err := codec.Parse("15pm")
		require.Error(t, err)
		var codecErr *schedule.Error
		require.ErrorAs(t, err, &codecErr)
		assert.Equal(t, schedule.KindAmbiguousTimeSuffix, codecErr.Kind)
		assert.Equal(t, 2, codecErr.Offset)
	})

	t.Run("every week on 15 is an incompatible constraint", func(t *testing.T) {
		_, err := codec.Parse("every week on 15")
		require.Error(t, err)
		kind, ok := schedule.KindOf(err)
		require.True(t, ok)
		assert.Equal(t, schedule.KindIncompatibleConstraint, kind)
	})

	t.Run("every 30 seconds cannot lower to unix", func(t *testing.T) {
		_, err := codec.ToCron("every 30 seconds", "", "")
		require.Error(t, err)
		kind, ok := schedule.KindOf(err)
		require.True(t, ok)
		assert.Equal(t, schedule.KindUnsupportedByDialect, kind)
	})
}

func TestFormatParseIdempotence(t *testing.T) {
	// format(parse(x)) is a fixed point after one pass
	codec := testCodec()
	inputs := []string{
		"30m",
		"1d",
		"1d at 2am",
		"every day",
		"every day at 2pm",
		"every day at 12am",
		"every day at 09:30",
		"every 5 minutes",
		"every 30 seconds",
		"monday",
		"every monday",
		"every weekday at 2pm",
		"every weekend",
		"1w on sunday at 3am",
		"every 2 weeks on monday",
		"every month on 15",
		"every 3 months",
		"every year in june",
		"every year on 15 in june at 9am",
		"every year between june and september",
		"every year in january,march,july",
		"2pm",
		"noon",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			spec, err := codec.Parse(input)
			require.NoError(t, err)
			once := codec.Format(spec)

			spec2, err := codec.Parse(once)
			require.NoError(t, err, "canonical form %q must reparse", once)
			twice := codec.Format(spec2)

			assert.Equal(t, once, twice, "canonical form must be stable")
		})
	}
}

func TestNaturalRoundTripThroughDialects(t *testing.T) {
	// text -> dialect -> text arrives at the canonical form of the input
	codec := testCodec()

	cases := []struct {
		text    string
		dialect string
	}{
		{"every day at 2pm", cronverse.DialectUnix},
		{"every weekday at 2pm", cronverse.DialectUnix},
		{"every 5 minutes", cronverse.DialectUnix},
		{"every 30 seconds", cronverse.DialectNCrontab},
		{"every monday", cronverse.DialectUnix},
		{"every month on 15 at 9am", cronverse.DialectUnix},
	}

	for _, tc := range cases {
		t.Run(tc.text+" via "+tc.dialect, func(t *testing.T) {
			spec, err := codec.Parse(tc.text)
			require.NoError(t, err)
			canonical := codec.Format(spec)

			var expr string
			switch tc.dialect {
			case cronverse.DialectUnix:
				expr, err = codec.ToCron(tc.text, "", "")
			case cronverse.DialectNCrontab:
				expr, err = codec.ToNCrontab(tc.text)
			}
			require.NoError(t, err)

			back, err := codec.ToNatural(expr, tc.dialect)
			require.NoError(t, err)
			assert.Equal(t, canonical, back)
		})
	}
}

func TestDeterminism(t *testing.T) {
	// Same input, same clock, same output
	clock := timeutil.NewFixedClock(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC))
	a := cronverse.NewCodecWith(clock, timeutil.NewSystemDB())
	b := cronverse.NewCodecWith(clock, timeutil.NewSystemDB())

	first, err := a.ToCron("every day at 2pm", "UTC", "UTC")
	require.NoError(t, err)
	second, err := b.ToCron("every day at 2pm", "UTC", "UTC")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestNotRoundTrippableKeepsCallersInformed(t *testing.T) {
	codec := testCodec()
	_, err := codec.ToNatural("5,17,29 * * * *", cronverse.DialectUnix)
	require.Error(t, err)
	kind, ok := schedule.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, schedule.KindNotRoundTrippable, kind)
}

func TestPackageLevelFunctions(t *testing.T) {
	expr, err := cronverse.ToNCrontab("30m")
	require.NoError(t, err)
	assert.Equal(t, "0 */30 * * * *", expr)

	text, err := cronverse.ToNatural("0 14 * * *", cronverse.DialectUnix)
	require.NoError(t, err)
	assert.Equal(t, "every day at 2pm", text)

	spec, err := cronverse.Parse("every monday")
	require.NoError(t, err)
	assert.Equal(t, "every monday", cronverse.Format(spec))
}
