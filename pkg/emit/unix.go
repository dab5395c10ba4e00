package emit

import (
	"fmt"

	"github.com/cronverse/cronverse/pkg/schedule"
)

// Unix lowers a specification to a Unix 5-field cron expression
// (min hr dom mon dow). The wall-clock time is converted from the
// specification's zone to serverZone at the clock's reference instant;
// an empty serverZone keeps the time as written.
func Unix(s schedule.Spec, serverZone string, env Env) (string, error) {
	fields, err := unixFields(s, serverZone, env, DialectUnix)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s %s %s %s",
		fields.minute, fields.hour, fields.dom, fields.month, fields.dow), nil
}

// cronFields is the shared 5-field core of the Unix-flavored dialects
type cronFields struct {
	minute string
	hour   string
	dom    string
	month  string
	dow    string
}

// unixFields lowers every unit except seconds to the 5-field core
func unixFields(s schedule.Spec, serverZone string, env Env, dialect string) (cronFields, error) {
	n := s.Interval()

	switch s.Unit() {
	case schedule.UnitSeconds:
		return cronFields{}, schedule.ErrUnsupportedByDialect(dialect, "an interval of seconds")

	case schedule.UnitMinutes:
		// Steps that do not divide 60 restart at the top of each hour, so
		// the gaps are uneven; Unix cron tolerates them, so they are
		// emitted as written.
		if n > schedule.MaxMinute {
			return cronFields{}, schedule.ErrUnsupportedByDialect(dialect,
				fmt.Sprintf("an interval of %d minutes", n))
		}
		return cronFields{minute: stepField(n), hour: "*", dom: "*", month: "*", dow: "*"}, nil

	case schedule.UnitHours:
		if n > schedule.MaxHour {
			return cronFields{}, schedule.ErrUnsupportedByDialect(dialect,
				fmt.Sprintf("an interval of %d hours", n))
		}
		return cronFields{minute: "0", hour: stepField(n), dom: "*", month: "*", dow: "*"}, nil

	case schedule.UnitDays:
		if n > schedule.MaxDayOfMonth {
			return cronFields{}, schedule.ErrUnsupportedByDialect(dialect,
				fmt.Sprintf("an interval of %d days", n))
		}
		if weekdayWithMultiDayInterval(s) {
			return cronFields{}, schedule.ErrUnsupportedByDialect(dialect,
				"a weekday constraint with a multi-day interval")
		}
		hour, minute, err := resolveTime(s, serverZone, env)
		if err != nil {
			return cronFields{}, err
		}
		dow, restricted := unixDow(s)
		dom := stepField(n)
		if restricted {
			dom = "*"
		}
		return cronFields{
			minute: fmt.Sprintf("%d", minute),
			hour:   fmt.Sprintf("%d", hour),
			dom:    dom,
			month:  "*",
			dow:    dow,
		}, nil

	case schedule.UnitWeeks:
		if n > 1 {
			return cronFields{}, schedule.ErrUnsupportedByDialect(dialect,
				fmt.Sprintf("an interval of %d weeks", n))
		}
		hour, minute, err := resolveTime(s, serverZone, env)
		if err != nil {
			return cronFields{}, err
		}
		dow, _ := unixDow(s)
		return cronFields{
			minute: fmt.Sprintf("%d", minute),
			hour:   fmt.Sprintf("%d", hour),
			dom:    "*",
			month:  "*",
			dow:    dow,
		}, nil

	case schedule.UnitMonths:
		if n > schedule.MaxMonth {
			return cronFields{}, schedule.ErrUnsupportedByDialect(dialect,
				fmt.Sprintf("an interval of %d months", n))
		}
		if s.Months() != nil && n > 1 {
			return cronFields{}, schedule.ErrUnsupportedByDialect(dialect,
				"a month constraint with a multi-month interval")
		}
		hour, minute, err := resolveTime(s, serverZone, env)
		if err != nil {
			return cronFields{}, err
		}
		dow, _ := unixDow(s)
		return cronFields{
			minute: fmt.Sprintf("%d", minute),
			hour:   fmt.Sprintf("%d", hour),
			dom:    domField(s, "*"),
			month:  monthField(s),
			dow:    dow,
		}, nil

	case schedule.UnitYears:
		if n > 1 {
			return cronFields{}, schedule.ErrUnsupportedByDialect(dialect,
				fmt.Sprintf("an interval of %d years", n))
		}
		hour, minute, err := resolveTime(s, serverZone, env)
		if err != nil {
			return cronFields{}, err
		}
		dow, _ := unixDow(s)
		return cronFields{
			minute: fmt.Sprintf("%d", minute),
			hour:   fmt.Sprintf("%d", hour),
			dom:    domField(s, "*"),
			month:  monthField(s),
			dow:    dow,
		}, nil

	default:
		return cronFields{}, schedule.ErrInvalidSchedule("unknown interval unit")
	}
}
