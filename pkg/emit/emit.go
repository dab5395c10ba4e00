// Package emit lowers schedule specifications to cron strings in three
// dialects (Unix 5-field, NCrontab 6-field, Quartz) and recognizes those
// strings back into specifications. The recognizer is deliberately narrow:
// it decodes only the shapes the emitters produce.
package emit

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cronverse/cronverse/pkg/schedule"
	"github.com/cronverse/cronverse/pkg/timeutil"
)

// Dialect identifiers
const (
	DialectUnix     = "unix"
	DialectNCrontab = "ncrontab"
	DialectQuartz   = "quartz"
)

// Env bundles the injected collaborators every emitter needs
type Env struct {
	Clock timeutil.Clock
	Zones timeutil.TimeZoneDB
}

// DefaultEnv uses the host clock and zone database
func DefaultEnv() Env {
	return Env{Clock: timeutil.NewSystemClock(), Zones: timeutil.NewSystemDB()}
}

// stepField renders an interval step, collapsing */1 to *
func stepField(n int) string {
	if n == 1 {
		return "*"
	}
	return fmt.Sprintf("*/%d", n)
}

// sourceZone resolves the specification's zone, falling back to the host default
func sourceZone(s schedule.Spec, env Env) (*time.Location, error) {
	id := s.TimeZone()
	if id == "" {
		return env.Zones.SystemDefault(), nil
	}
	loc, err := env.Zones.ByID(id)
	if err != nil {
		return nil, &schedule.Error{
			Kind:    schedule.KindInvalidSchedule,
			Message: fmt.Sprintf("unknown time zone %q", id),
			Offset:  -1,
		}
	}
	return loc, nil
}

// resolveTime resolves the specification's wall-clock time into the server
// zone at the clock's reference instant. With no time set, both parts are 0.
// An empty serverZone means no conversion.
func resolveTime(s schedule.Spec, serverZone string, env Env) (hour, minute int, err error) {
	tod, ok := s.TimeOfDay()
	if !ok {
		return 0, 0, nil
	}
	if serverZone == "" {
		return tod.Hour, tod.Minute, nil
	}
	from, err := sourceZone(s, env)
	if err != nil {
		return 0, 0, err
	}
	to, err := env.Zones.ByID(serverZone)
	if err != nil {
		return 0, 0, &schedule.Error{
			Kind:    schedule.KindInvalidSchedule,
			Message: fmt.Sprintf("unknown server time zone %q", serverZone),
			Offset:  -1,
		}
	}
	return timeutil.Convert(from, to, env.Clock.Now(), tod.Hour, tod.Minute)
}

// monthField renders the month column: an explicit month specifier when one
// is set, otherwise the interval step for monthly schedules
func monthField(s schedule.Spec) string {
	if m := s.Months(); m != nil {
		return monthSpecField(m)
	}
	if s.Unit() == schedule.UnitMonths {
		return stepField(s.Interval())
	}
	if s.Unit() == schedule.UnitYears {
		return "1"
	}
	return "*"
}

// monthSpecField renders a month specifier as a cron month column
func monthSpecField(m schedule.MonthSpec) string {
	switch v := m.(type) {
	case schedule.MonthSingle:
		return strconv.Itoa(v.Month)
	case schedule.MonthRange:
		return fmt.Sprintf("%d-%d", v.Start, v.End)
	case schedule.MonthList:
		parts := make([]string, len(v.List))
		for i, mv := range v.List {
			parts[i] = strconv.Itoa(mv)
		}
		return strings.Join(parts, ",")
	default:
		return "*"
	}
}

// unixDow renders the day-of-week column with Unix numbering
// (0=Sunday..6=Saturday); restricted reports whether it constrains anything
func unixDow(s schedule.Spec) (value string, restricted bool) {
	if d, ok := s.DayOfWeek(); ok {
		return strconv.Itoa(int(d)), true
	}
	switch s.DayPattern() {
	case schedule.PatternWeekdays:
		return "1-5", true
	case schedule.PatternWeekends:
		return "0,6", true
	default:
		return "*", false
	}
}

// domField renders the day-of-month column for monthly and yearly schedules.
// Without an explicit day the column defaults to 1, unless a weekday
// constraint is set, in which case it stays open so vixie cron's
// either-field-matches rule cannot widen the schedule.
func domField(s schedule.Spec, wildcard string) string {
	if day, ok := s.DayOfMonth(); ok {
		return strconv.Itoa(day)
	}
	if _, ok := s.DayOfWeek(); ok {
		return wildcard
	}
	if s.DayPattern() != schedule.PatternNone {
		return wildcard
	}
	return "1"
}

// weekdayWithMultiDayInterval reports a day-step schedule that also carries
// a weekday constraint; no cron dialect can express both at once
func weekdayWithMultiDayInterval(s schedule.Spec) bool {
	if s.Unit() != schedule.UnitDays || s.Interval() == 1 {
		return false
	}
	if _, ok := s.DayOfWeek(); ok {
		return true
	}
	return s.DayPattern() != schedule.PatternNone
}
