package emit

import (
	"fmt"
	"strconv"
	"time"

	"github.com/cronverse/cronverse/pkg/schedule"
)

// MisfireFireAndProceed is the misfire hint carried by calendar-interval
// descriptors: fire once immediately, then continue on schedule.
const MisfireFireAndProceed = "FireAndProceed"

// QuartzOutput is the closed union returned by the Quartz emitter: either a
// 7-field cron expression or a calendar-interval descriptor for schedules
// cron cannot express.
type QuartzOutput interface {
	quartzOutput()
}

// QuartzCron is a point-in-time recurrence as a 7-field Quartz expression
// (sec min hr dom mon dow year). The zone travels with the expression so
// the host scheduler can honor DST boundaries.
type QuartzCron struct {
	Expression string
	TimeZone   string
}

func (QuartzCron) quartzOutput() {}

// QuartzCalendarInterval describes a pure interval for the host scheduler's
// calendar-interval trigger
type QuartzCalendarInterval struct {
	Interval    int
	Unit        schedule.Unit
	StartTime   time.Time
	TimeZone    string
	MisfireHint string
}

func (QuartzCalendarInterval) quartzOutput() {}

// Quartz lowers a specification to either a Quartz cron expression or a
// calendar-interval descriptor, chosen by the shape of the schedule
func Quartz(s schedule.Spec, env Env) (QuartzOutput, error) {
	loc, err := sourceZone(s, env)
	if err != nil {
		return nil, err
	}
	zone := loc.String()

	if !constrained(s) && needsCalendarInterval(s) {
		return QuartzCalendarInterval{
			Interval:    s.Interval(),
			Unit:        s.Unit(),
			StartTime:   env.Clock.Now().In(loc),
			TimeZone:    zone,
			MisfireHint: MisfireFireAndProceed,
		}, nil
	}

	expr, err := quartzCron(s)
	if err != nil {
		return nil, err
	}
	return QuartzCron{Expression: expr, TimeZone: zone}, nil
}

// constrained reports whether the specification carries any day, month or
// time constraint
func constrained(s schedule.Spec) bool {
	if _, ok := s.DayOfWeek(); ok {
		return true
	}
	if s.DayPattern() != schedule.PatternNone {
		return true
	}
	if _, ok := s.DayOfMonth(); ok {
		return true
	}
	if s.Months() != nil {
		return true
	}
	_, ok := s.TimeOfDay()
	return ok
}

// needsCalendarInterval reports whether an unconstrained interval goes to
// the calendar-interval descriptor: any interval above 1 for days, weeks,
// months or years, and second, minute or hour intervals a cron column
// cannot step through
func needsCalendarInterval(s schedule.Spec) bool {
	n := s.Interval()
	switch s.Unit() {
	case schedule.UnitSeconds:
		return n > schedule.MaxMinute || 60%n != 0
	case schedule.UnitMinutes:
		return n > schedule.MaxMinute
	case schedule.UnitHours:
		return n > schedule.MaxHour
	case schedule.UnitDays, schedule.UnitWeeks, schedule.UnitMonths, schedule.UnitYears:
		return n > 1
	default:
		return false
	}
}

// quartzCron builds the 7-field expression. Quartz requires one of the two
// day columns to be "?"; when both a day of month and a weekday are set,
// the day of month wins and the weekday column yields.
func quartzCron(s schedule.Spec) (string, error) {
	n := s.Interval()

	switch s.Unit() {
	case schedule.UnitSeconds:
		if n > schedule.MaxMinute || 60%n != 0 {
			return "", schedule.ErrUnsupportedByDialect(DialectQuartz,
				fmt.Sprintf("an interval of %d seconds", n))
		}
		return fmt.Sprintf("%s * * * * ? *", stepField(n)), nil

	case schedule.UnitMinutes:
		if n > schedule.MaxMinute {
			return "", schedule.ErrUnsupportedByDialect(DialectQuartz,
				fmt.Sprintf("an interval of %d minutes", n))
		}
		return fmt.Sprintf("0 %s * * * ? *", stepField(n)), nil

	case schedule.UnitHours:
		if n > schedule.MaxHour {
			return "", schedule.ErrUnsupportedByDialect(DialectQuartz,
				fmt.Sprintf("an interval of %d hours", n))
		}
		return fmt.Sprintf("0 0 %s * * ? *", stepField(n)), nil

	case schedule.UnitDays:
		if n > schedule.MaxDayOfMonth {
			return "", schedule.ErrUnsupportedByDialect(DialectQuartz,
				fmt.Sprintf("an interval of %d days", n))
		}
		if weekdayWithMultiDayInterval(s) {
			return "", schedule.ErrUnsupportedByDialect(DialectQuartz,
				"a weekday constraint with a multi-day interval")
		}
		hour, minute := quartzTime(s)
		dow, restricted := quartzDow(s)
		dom := stepField(n)
		if restricted {
			dom = "?"
		} else {
			dow = "?"
		}
		return fmt.Sprintf("0 %d %d %s * %s *", minute, hour, dom, dow), nil

	case schedule.UnitWeeks:
		if n > 1 {
			return "", schedule.ErrUnsupportedByDialect(DialectQuartz,
				fmt.Sprintf("an interval of %d weeks with constraints", n))
		}
		hour, minute := quartzTime(s)
		dow, restricted := quartzDow(s)
		if !restricted {
			dow = "*"
		}
		return fmt.Sprintf("0 %d %d ? * %s *", minute, hour, dow), nil

	case schedule.UnitMonths, schedule.UnitYears:
		if s.Unit() == schedule.UnitMonths && n > schedule.MaxMonth {
			return "", schedule.ErrUnsupportedByDialect(DialectQuartz,
				fmt.Sprintf("an interval of %d months", n))
		}
		if s.Unit() == schedule.UnitYears && n > 1 {
			return "", schedule.ErrUnsupportedByDialect(DialectQuartz,
				fmt.Sprintf("an interval of %d years with constraints", n))
		}
		if s.Months() != nil && n > 1 {
			return "", schedule.ErrUnsupportedByDialect(DialectQuartz,
				"a month constraint with a multi-month interval")
		}
		hour, minute := quartzTime(s)
		dom, dow := quartzDayColumns(s)
		return fmt.Sprintf("0 %d %d %s %s %s *", minute, hour, dom, monthField(s), dow), nil

	default:
		return "", schedule.ErrInvalidSchedule("unknown interval unit")
	}
}

// quartzTime reads the wall-clock time verbatim; Quartz schedules carry
// their zone, so no server-zone conversion applies
func quartzTime(s schedule.Spec) (hour, minute int) {
	if tod, ok := s.TimeOfDay(); ok {
		return tod.Hour, tod.Minute
	}
	return 0, 0
}

// quartzDow renders the weekday column in Quartz numbering
// (1=Sunday..7=Saturday)
func quartzDow(s schedule.Spec) (value string, restricted bool) {
	if d, ok := s.DayOfWeek(); ok {
		return strconv.Itoa(int(d) + 1), true
	}
	switch s.DayPattern() {
	case schedule.PatternWeekdays:
		return "2-6", true
	case schedule.PatternWeekends:
		return "1,7", true
	default:
		return "?", false
	}
}

// quartzDayColumns resolves the dom/dow pair for monthly and yearly
// schedules under Quartz's one-must-be-? rule
func quartzDayColumns(s schedule.Spec) (dom, dow string) {
	dowVal, dowRestricted := quartzDow(s)
	if day, ok := s.DayOfMonth(); ok {
		// Day of month wins; the weekday column yields
		return strconv.Itoa(day), "?"
	}
	if dowRestricted {
		return "?", dowVal
	}
	return "1", "?"
}
