package parser

import "github.com/cronverse/cronverse/pkg/schedule"

// dayConstraints accumulates weekday, weekday-class and day-of-month tokens
// as they are consumed. Weekday and pattern are mutually exclusive; whichever
// is set last replaces the other.
type dayConstraints struct {
	weekday    schedule.Weekday
	hasWeekday bool
	pattern    schedule.DayPattern
	dayOfMonth int // 0 = unset
}

func (d *dayConstraints) setWeekday(w schedule.Weekday) {
	d.weekday = w
	d.hasWeekday = true
	d.pattern = schedule.PatternNone
}

func (d *dayConstraints) setPattern(p schedule.DayPattern) {
	d.pattern = p
	d.hasWeekday = false
}

func (d *dayConstraints) setDayOfMonth(day int) {
	d.dayOfMonth = day
}

// monthConstraints accumulates the month specifier; a later specifier
// replaces an earlier one entirely
type monthConstraints struct {
	spec schedule.MonthSpec
}

func (m *monthConstraints) set(spec schedule.MonthSpec) {
	m.spec = spec
}

// timeConstraints accumulates the time of day; the last time read wins
type timeConstraints struct {
	timeOfDay schedule.TimeOfDay
	hasTime   bool
}

func (t *timeConstraints) set(hour, minute int) {
	t.timeOfDay = schedule.TimeOfDay{Hour: hour, Minute: minute}
	t.hasTime = true
}

// collapse folds the accumulated constraints into a validated specification
func (p *parser) collapse(opts Options) (schedule.Spec, error) {
	spec, err := schedule.New(p.interval, p.unit)
	if err != nil {
		return schedule.Spec{}, err
	}
	if p.day.hasWeekday {
		if spec, err = spec.WithDayOfWeek(p.day.weekday); err != nil {
			return schedule.Spec{}, err
		}
	}
	if p.day.pattern != schedule.PatternNone {
		if spec, err = spec.WithDayPattern(p.day.pattern); err != nil {
			return schedule.Spec{}, err
		}
	}
	if p.day.dayOfMonth != 0 {
		if spec, err = spec.WithDayOfMonth(p.day.dayOfMonth); err != nil {
			return schedule.Spec{}, err
		}
	}
	if p.month.spec != nil {
		if spec, err = spec.WithMonths(p.month.spec); err != nil {
			return schedule.Spec{}, err
		}
	}
	if p.time.hasTime {
		if spec, err = spec.WithTimeOfDay(p.time.timeOfDay.Hour, p.time.timeOfDay.Minute); err != nil {
			return schedule.Spec{}, err
		}
	}
	if opts.TimeZone != "" {
		if spec, err = spec.WithTimeZone(opts.TimeZone); err != nil {
			return schedule.Spec{}, err
		}
	}
	return spec, nil
}
