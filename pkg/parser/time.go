package parser

import (
	"strconv"
	"strings"

	"github.com/cronverse/cronverse/pkg/lexicon"
	"github.com/cronverse/cronverse/pkg/schedule"
)

// looksLikeTime reports whether a bare token reads as a time of day
func looksLikeTime(text string) bool {
	lower := strings.ToLower(text)
	if lower == lexicon.SuffixNoon || lower == lexicon.SuffixMidnight {
		return true
	}
	if strings.HasSuffix(lower, lexicon.SuffixAM) || strings.HasSuffix(lower, lexicon.SuffixPM) {
		digits, _ := splitDigits(text)
		return digits != ""
	}
	if idx := strings.IndexByte(text, ':'); idx > 0 {
		digits, _ := splitDigits(text)
		return len(digits) == idx
	}
	return false
}

// parseTimeOperand reads a time token: "2pm", "2:30pm", "14:30", "noon",
// "midnight". A detached suffix ("2 pm") is tolerated.
func (p *parser) parseTimeOperand(t token) error {
	if err := p.requireTimeUnit(t); err != nil {
		return err
	}

	lower := strings.ToLower(t.text)
	switch lower {
	case lexicon.SuffixNoon:
		p.time.set(12, 0)
		return nil
	case lexicon.SuffixMidnight:
		p.time.set(0, 0)
		return nil
	}

	base := t.text
	suffix := ""
	suffixOffset := -1
	if strings.HasSuffix(lower, lexicon.SuffixAM) || strings.HasSuffix(lower, lexicon.SuffixPM) {
		suffix = lower[len(lower)-2:]
		base = t.text[:len(t.text)-2]
		suffixOffset = t.offset + len(base)
		if base == "" {
			return schedule.ErrUnknownToken(t.offset, t.text)
		}
	}

	hour, minute, err := parseClock(base, t.offset)
	if err != nil {
		return err
	}

	// A detached am/pm token after an unsuffixed time
	if suffix == "" {
		if nt, ok := p.peek(); ok {
			nl := strings.ToLower(nt.text)
			if nl == lexicon.SuffixAM || nl == lexicon.SuffixPM {
				p.pos++
				suffix = nl
				suffixOffset = nt.offset
			}
		}
	}

	if suffix != "" {
		if hour < 1 || hour > 12 {
			return schedule.ErrAmbiguousTimeSuffix(suffixOffset, t.text)
		}
		if suffix == lexicon.SuffixPM && hour != 12 {
			hour += 12
		}
		if suffix == lexicon.SuffixAM && hour == 12 {
			hour = 0
		}
	} else if hour > schedule.MaxHour {
		return schedule.ErrNumberOutOfRange(t.offset, "hour", hour, schedule.MinHour, schedule.MaxHour)
	}

	p.time.set(hour, minute)
	return nil
}

// requireTimeUnit rejects a time of day for sub-daily units, where the
// wall-clock moment would not constrain anything
func (p *parser) requireTimeUnit(t token) error {
	switch p.unit {
	case schedule.UnitDays, schedule.UnitWeeks, schedule.UnitMonths, schedule.UnitYears:
		return nil
	default:
		return schedule.ErrIncompatibleConstraint(t.offset,
			"a time of day cannot be combined with a unit of "+p.unit.Plural())
	}
}

// parseClock reads "H" or "H:MM". The minute is range-checked here; the hour
// is range-checked by the caller, which knows whether a 12-hour suffix
// applies.
func parseClock(base string, offset int) (hour, minute int, err *schedule.Error) {
	hourPart := base
	minutePart := ""
	if idx := strings.IndexByte(base, ':'); idx >= 0 {
		hourPart = base[:idx]
		minutePart = base[idx+1:]
	}
	hour, aerr := strconv.Atoi(hourPart)
	if aerr != nil || hour < 0 {
		return 0, 0, schedule.ErrUnknownToken(offset, base)
	}
	if minutePart != "" {
		minute, aerr = strconv.Atoi(minutePart)
		if aerr != nil || minute < 0 {
			return 0, 0, schedule.ErrUnknownToken(offset, base)
		}
		if minute > schedule.MaxMinute {
			return 0, 0, schedule.ErrNumberOutOfRange(offset+len(hourPart)+1, "minute",
				minute, schedule.MinMinute, schedule.MaxMinute)
		}
	}
	return hour, minute, nil
}
