package emit

import (
	"strings"

	"github.com/robfig/cron/v3"

	"github.com/cronverse/cronverse/pkg/schedule"
)

// robfig/cron validation is the single external boundary of the recognizer:
// a string that fails the dialect's parser is rejected before any template
// matching. Quartz is validated structurally instead; robfig has no year
// column and numbers weekdays differently.
var (
	unixParser = cron.NewParser(
		cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow,
	)
	ncrontabParser = cron.NewParser(
		cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow,
	)
)

// Recognize reconstructs the specification a dialect string was emitted
// from. It decodes only the shapes the forward emitters produce; any other
// field shape fails with NotRoundTrippable and the caller keeps the
// original cron string.
func Recognize(expression, dialect string) (schedule.Spec, error) {
	switch dialect {
	case DialectUnix:
		return recognizeUnix(expression)
	case DialectNCrontab:
		return recognizeNCrontab(expression)
	case DialectQuartz:
		return recognizeQuartz(expression)
	default:
		return schedule.Spec{}, schedule.ErrUnsupportedByDialect(dialect, "reverse recognition")
	}
}

func recognizeUnix(expression string) (schedule.Spec, error) {
	if _, err := unixParser.Parse(expression); err != nil {
		return schedule.Spec{}, schedule.ErrNotRoundTrippable(DialectUnix, "expression")
	}
	raw := strings.Fields(expression)
	if len(raw) != 5 {
		return schedule.Spec{}, schedule.ErrNotRoundTrippable(DialectUnix, "expression")
	}
	fields, err := classifyCore(raw, DialectUnix, 0)
	if err != nil {
		return schedule.Spec{}, err
	}
	return decodeCore(fields, DialectUnix)
}

func recognizeNCrontab(expression string) (schedule.Spec, error) {
	if _, err := ncrontabParser.Parse(expression); err != nil {
		return schedule.Spec{}, schedule.ErrNotRoundTrippable(DialectNCrontab, "expression")
	}
	raw := strings.Fields(expression)
	if len(raw) != 6 {
		return schedule.Spec{}, schedule.ErrNotRoundTrippable(DialectNCrontab, "expression")
	}
	return recognizeWithSeconds(raw, DialectNCrontab, 0)
}

func recognizeQuartz(expression string) (schedule.Spec, error) {
	raw := strings.Fields(expression)
	if len(raw) == 7 {
		if raw[6] != "*" {
			return schedule.Spec{}, schedule.ErrNotRoundTrippable(DialectQuartz, "year")
		}
		raw = raw[:6]
	}
	if len(raw) != 6 {
		return schedule.Spec{}, schedule.ErrNotRoundTrippable(DialectQuartz, "expression")
	}
	return recognizeWithSeconds(raw, DialectQuartz, 1)
}

// recognizeWithSeconds decodes a 6-column dialect: the seconds column is
// either a pure interval or a literal zero in front of a 5-column core
func recognizeWithSeconds(raw []string, dialect string, dowBase int) (schedule.Spec, error) {
	sec, ok := classifyField(raw[0], 0, schedule.MaxMinute)
	if !ok {
		return schedule.Spec{}, schedule.ErrNotRoundTrippable(dialect, "seconds")
	}
	rest, err := classifyCore(raw[1:], dialect, dowBase)
	if err != nil {
		return schedule.Spec{}, err
	}

	switch sec.kind {
	case kindEvery, kindStep:
		for _, f := range rest {
			if !f.every() {
				return schedule.Spec{}, schedule.ErrNotRoundTrippable(dialect, "seconds")
			}
		}
		interval := 1
		if sec.kind == kindStep {
			interval = sec.step
		}
		return schedule.New(interval, schedule.UnitSeconds)
	case kindSingle:
		if sec.value != 0 {
			return schedule.Spec{}, schedule.ErrNotRoundTrippable(dialect, "seconds")
		}
		return decodeCore(rest, dialect)
	default:
		return schedule.Spec{}, schedule.ErrNotRoundTrippable(dialect, "seconds")
	}
}

// classifyCore decodes the five shared columns, normalizing the weekday
// column to Unix numbering (0=Sunday)
func classifyCore(raw []string, dialect string, dowBase int) ([5]field, error) {
	var fields [5]field
	names := [5]string{"minute", "hour", "day of month", "month", "day of week"}
	mins := [5]int{0, 0, schedule.MinDayOfMonth, schedule.MinMonth, schedule.MinDayOfWeek + dowBase}
	maxs := [5]int{schedule.MaxMinute, schedule.MaxHour, schedule.MaxDayOfMonth, schedule.MaxMonth, schedule.MaxDayOfWeek + dowBase}
	for i, r := range raw {
		f, ok := classifyField(r, mins[i], maxs[i])
		if !ok {
			return fields, schedule.ErrNotRoundTrippable(dialect, names[i])
		}
		fields[i] = f
	}
	if dowBase != 0 {
		fields[4] = shiftDow(fields[4], -dowBase)
	}
	return fields, nil
}

// shiftDow rebases weekday values between dialect numberings
func shiftDow(f field, delta int) field {
	switch f.kind {
	case kindSingle:
		f.value += delta
	case kindRange:
		f.start += delta
		f.end += delta
	case kindList:
		shifted := make([]int, len(f.list))
		for i, v := range f.list {
			shifted[i] = v + delta
		}
		f.list = shifted
	}
	return f
}

// decodeCore reconstructs a specification from the five shared columns
func decodeCore(fields [5]field, dialect string) (schedule.Spec, error) {
	minute, hour, dom, month, dow := fields[0], fields[1], fields[2], fields[3], fields[4]
	dayEvery := dom.every() && month.every() && dow.every()

	switch {
	case minute.every() && hour.every():
		if !dayEvery {
			return schedule.Spec{}, schedule.ErrNotRoundTrippable(dialect, "day of month")
		}
		return schedule.New(1, schedule.UnitMinutes)

	case minute.kind == kindStep && hour.every():
		if !dayEvery {
			return schedule.Spec{}, schedule.ErrNotRoundTrippable(dialect, "day of month")
		}
		return schedule.New(minute.step, schedule.UnitMinutes)

	case minute.kind == kindSingle && hour.every():
		if minute.value != 0 || !dayEvery {
			return schedule.Spec{}, schedule.ErrNotRoundTrippable(dialect, "minute")
		}
		return schedule.New(1, schedule.UnitHours)

	case minute.kind == kindSingle && hour.kind == kindStep:
		if minute.value != 0 || !dayEvery {
			return schedule.Spec{}, schedule.ErrNotRoundTrippable(dialect, "minute")
		}
		return schedule.New(hour.step, schedule.UnitHours)

	case minute.kind == kindSingle && hour.kind == kindSingle:
		spec, err := decodeDaily(dom, month, dow, dialect)
		if err != nil {
			return schedule.Spec{}, err
		}
		if hour.value != 0 || minute.value != 0 {
			return spec.WithTimeOfDay(hour.value, minute.value)
		}
		return spec, nil

	default:
		return schedule.Spec{}, schedule.ErrNotRoundTrippable(dialect, "minute")
	}
}

// decodeDaily reconstructs the day and month constraints of a schedule with
// a fixed wall-clock time
func decodeDaily(dom, month, dow field, dialect string) (schedule.Spec, error) {
	// Pure daily and weekly shapes
	if dom.every() && month.every() {
		switch dow.kind {
		case kindEvery:
			return schedule.New(1, schedule.UnitDays)
		case kindSingle:
			spec, err := schedule.New(1, schedule.UnitWeeks)
			if err != nil {
				return schedule.Spec{}, err
			}
			return spec.WithDayOfWeek(schedule.Weekday(dow.value))
		default:
			if pattern, ok := dowPattern(dow); ok {
				spec, err := schedule.New(1, schedule.UnitDays)
				if err != nil {
					return schedule.Spec{}, err
				}
				return spec.WithDayPattern(pattern)
			}
			return schedule.Spec{}, schedule.ErrNotRoundTrippable(dialect, "day of week")
		}
	}

	// Multi-day interval
	if dom.kind == kindStep && month.every() && dow.every() {
		return schedule.New(dom.step, schedule.UnitDays)
	}

	// Monthly and yearly shapes
	interval := 1
	unit := schedule.UnitMonths
	var months schedule.MonthSpec
	switch month.kind {
	case kindEvery:
	case kindStep:
		interval = month.step
	case kindSingle:
		unit = schedule.UnitYears
		if month.value != 1 {
			months = schedule.MonthSingle{Month: month.value}
		}
	case kindRange:
		unit = schedule.UnitYears
		months = schedule.MonthRange{Start: month.start, End: month.end}
	case kindList:
		unit = schedule.UnitYears
		months = schedule.MonthList{List: month.list}
	}

	spec, err := schedule.New(interval, unit)
	if err != nil {
		return schedule.Spec{}, err
	}
	if months != nil {
		if spec, err = spec.WithMonths(months); err != nil {
			return schedule.Spec{}, err
		}
	}

	dowRestricted := !dow.every()
	switch dom.kind {
	case kindEvery:
	case kindSingle:
		// Day 1 with no weekday is the emitter's default anchor, not an
		// explicit constraint
		if dom.value != 1 || dowRestricted {
			if spec, err = spec.WithDayOfMonth(dom.value); err != nil {
				return schedule.Spec{}, err
			}
		}
	default:
		return schedule.Spec{}, schedule.ErrNotRoundTrippable(dialect, "day of month")
	}

	if dowRestricted {
		if dow.kind == kindSingle {
			if spec, err = spec.WithDayOfWeek(schedule.Weekday(dow.value)); err != nil {
				return schedule.Spec{}, err
			}
		} else if pattern, ok := dowPattern(dow); ok {
			if spec, err = spec.WithDayPattern(pattern); err != nil {
				return schedule.Spec{}, err
			}
		} else {
			return schedule.Spec{}, schedule.ErrNotRoundTrippable(dialect, "day of week")
		}
	}
	return spec, nil
}

// dowPattern matches the weekday-class shapes the emitters produce
func dowPattern(dow field) (schedule.DayPattern, bool) {
	if dow.kind == kindRange && dow.start == 1 && dow.end == 5 {
		return schedule.PatternWeekdays, true
	}
	if dow.kind == kindList && len(dow.list) == 2 && dow.list[0] == 0 && dow.list[1] == 6 {
		return schedule.PatternWeekends, true
	}
	return schedule.PatternNone, false
}
