package schedule

// TimeOfDay is a wall-clock firing moment. Seconds are always zero;
// sub-minute granularity is expressed only through UnitSeconds.
type TimeOfDay struct {
	Hour   int // 0..23
	Minute int // 0..59
}

// Spec is the immutable intermediate representation of a schedule.
// It is constructed by New and refined through the With* updaters, each of
// which returns a new value after re-checking every invariant. The zero
// value is not a valid Spec.
type Spec struct {
	interval     int
	unit         Unit
	dayOfWeek    Weekday
	hasDayOfWeek bool
	dayPattern   DayPattern
	dayOfMonth   int // 0 = unset
	months       MonthSpec
	timeOfDay    TimeOfDay
	hasTimeOfDay bool
	timeZone     string // IANA zone id; "" = host default
}

// New constructs a schedule firing every interval units
func New(interval int, unit Unit) (Spec, error) {
	s := Spec{interval: interval, unit: unit}
	if err := s.validate(); err != nil {
		return Spec{}, err
	}
	return s, nil
}

// MustNew is New for statically known-good values; it panics on error.
// Intended for tests and package-level tables only.
func MustNew(interval int, unit Unit) Spec {
	s, err := New(interval, unit)
	if err != nil {
		panic(err)
	}
	return s
}

// Interval returns how many units separate fires
func (s Spec) Interval() int { return s.interval }

// Unit returns the interval unit
func (s Spec) Unit() Unit { return s.unit }

// DayOfWeek returns the weekday constraint, if one is set
func (s Spec) DayOfWeek() (Weekday, bool) { return s.dayOfWeek, s.hasDayOfWeek }

// DayPattern returns the weekday-class constraint (PatternNone when unset)
func (s Spec) DayPattern() DayPattern { return s.dayPattern }

// DayOfMonth returns the day-of-month constraint, if one is set
func (s Spec) DayOfMonth() (int, bool) { return s.dayOfMonth, s.dayOfMonth != 0 }

// Months returns the month constraint, or nil when unconstrained
func (s Spec) Months() MonthSpec { return s.months }

// TimeOfDay returns the wall-clock firing time, if one is set
func (s Spec) TimeOfDay() (TimeOfDay, bool) { return s.timeOfDay, s.hasTimeOfDay }

// TimeZone returns the IANA zone id for TimeOfDay ("" = host default)
func (s Spec) TimeZone() string { return s.timeZone }

// WithDayOfWeek constrains the schedule to one weekday. Setting a weekday
// replaces any weekday-class pattern (last wins).
func (s Spec) WithDayOfWeek(d Weekday) (Spec, error) {
	s.dayOfWeek = d
	s.hasDayOfWeek = true
	s.dayPattern = PatternNone
	if err := s.validate(); err != nil {
		return Spec{}, err
	}
	return s, nil
}

// WithDayPattern constrains the schedule to a weekday class. Setting a
// pattern replaces any specific weekday (last wins).
func (s Spec) WithDayPattern(p DayPattern) (Spec, error) {
	s.dayPattern = p
	s.hasDayOfWeek = false
	if err := s.validate(); err != nil {
		return Spec{}, err
	}
	return s, nil
}

// WithDayOfMonth constrains the schedule to a day of the month. Days 29-31
// are accepted; cron dialects silently skip months that lack them.
func (s Spec) WithDayOfMonth(day int) (Spec, error) {
	// 0 is the internal "unset" marker, so the range is checked here too
	if day < MinDayOfMonth || day > MaxDayOfMonth {
		return Spec{}, ErrInvalidSchedule("day of month must be in 1..31")
	}
	s.dayOfMonth = day
	if err := s.validate(); err != nil {
		return Spec{}, err
	}
	return s, nil
}

// WithMonths constrains the schedule to a month specifier
func (s Spec) WithMonths(m MonthSpec) (Spec, error) {
	s.months = m
	if err := s.validate(); err != nil {
		return Spec{}, err
	}
	return s, nil
}

// WithTimeOfDay sets the wall-clock firing time
func (s Spec) WithTimeOfDay(hour, minute int) (Spec, error) {
	s.timeOfDay = TimeOfDay{Hour: hour, Minute: minute}
	s.hasTimeOfDay = true
	if err := s.validate(); err != nil {
		return Spec{}, err
	}
	return s, nil
}

// WithTimeZone sets the IANA source zone for TimeOfDay
func (s Spec) WithTimeZone(id string) (Spec, error) {
	s.timeZone = id
	if err := s.validate(); err != nil {
		return Spec{}, err
	}
	return s, nil
}

// Equal compares two specifications structurally
func (s Spec) Equal(o Spec) bool {
	return s.interval == o.interval &&
		s.unit == o.unit &&
		s.hasDayOfWeek == o.hasDayOfWeek &&
		(!s.hasDayOfWeek || s.dayOfWeek == o.dayOfWeek) &&
		s.dayPattern == o.dayPattern &&
		s.dayOfMonth == o.dayOfMonth &&
		monthSpecEqual(s.months, o.months) &&
		s.hasTimeOfDay == o.hasTimeOfDay &&
		(!s.hasTimeOfDay || s.timeOfDay == o.timeOfDay) &&
		s.timeZone == o.timeZone
}

// validate re-checks every IR invariant
func (s Spec) validate() *Error {
	if s.interval < 1 {
		return ErrInvalidSchedule("interval must be at least 1")
	}
	if s.hasDayOfWeek && s.dayPattern != PatternNone {
		return ErrInvalidSchedule("day of week and day pattern are mutually exclusive")
	}
	if s.hasDayOfWeek && (s.dayOfWeek < Sunday || s.dayOfWeek > Saturday) {
		return ErrInvalidSchedule("day of week must be Sunday..Saturday")
	}
	if s.hasDayOfWeek || s.dayPattern != PatternNone {
		switch s.unit {
		case UnitDays, UnitWeeks, UnitMonths, UnitYears:
		default:
			return ErrInvalidSchedule("weekday constraints require a unit of days, weeks, months or years")
		}
	}
	if s.dayOfMonth != 0 {
		if s.dayOfMonth < MinDayOfMonth || s.dayOfMonth > MaxDayOfMonth {
			return ErrInvalidSchedule("day of month must be in 1..31")
		}
		switch s.unit {
		case UnitMonths, UnitYears:
		default:
			return ErrInvalidSchedule("day of month requires a unit of months or years")
		}
	}
	if s.months != nil {
		if err := validateMonthSpec(s.months); err != nil {
			return err
		}
		switch s.unit {
		case UnitMonths, UnitYears:
		default:
			return ErrInvalidSchedule("month constraints require a unit of months or years")
		}
	}
	if s.hasTimeOfDay {
		if s.timeOfDay.Hour < MinHour || s.timeOfDay.Hour > MaxHour {
			return ErrInvalidSchedule("hour must be in 0..23")
		}
		if s.timeOfDay.Minute < MinMinute || s.timeOfDay.Minute > MaxMinute {
			return ErrInvalidSchedule("minute must be in 0..59")
		}
		switch s.unit {
		case UnitDays, UnitWeeks, UnitMonths, UnitYears:
		default:
			// An hourly or finer interval would ignore the wall-clock time;
			// refusing beats dropping it silently.
			return ErrInvalidSchedule("time of day requires a unit of days, weeks, months or years")
		}
	}
	return nil
}
