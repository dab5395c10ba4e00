// Package parser turns surface scheduling text ("every weekday at 2pm",
// "30m", "1w on sunday at 3am") into the schedule IR. Diagnostics carry the
// byte offset of the offending token in the original input.
package parser

import (
	"strconv"
	"strings"

	"github.com/cronverse/cronverse/pkg/lexicon"
	"github.com/cronverse/cronverse/pkg/schedule"
)

// Options adjust parsing behavior
type Options struct {
	// TimeZone is the IANA source zone recorded on the specification for
	// its time of day ("" = host default).
	TimeZone string
}

// token is a whitespace-delimited chunk of input with its byte offset
type token struct {
	text   string
	offset int
}

// parser consumes tokens left to right, accumulating constraints that are
// collapsed into the final specification once all tokens are read
type parser struct {
	input    string
	tokens   []token
	pos      int
	interval int
	unit     schedule.Unit
	day      dayConstraints
	month    monthConstraints
	time     timeConstraints
}

// Parse converts scheduling text into a validated specification
func Parse(text string) (schedule.Spec, error) {
	return ParseWithOptions(text, Options{})
}

// ParseWithOptions is Parse with explicit options
func ParseWithOptions(text string, opts Options) (schedule.Spec, error) {
	if strings.TrimSpace(text) == "" {
		return schedule.Spec{}, schedule.ErrEmptyInput()
	}
	p := &parser{input: text, tokens: tokenize(text), interval: 1}
	if err := p.parseHead(); err != nil {
		return schedule.Spec{}, err
	}
	for p.pos < len(p.tokens) {
		if err := p.parseConstraint(); err != nil {
			return schedule.Spec{}, err
		}
	}
	return p.collapse(opts)
}

// tokenize splits the input on whitespace, preserving byte offsets
func tokenize(input string) []token {
	var tokens []token
	i := 0
	for i < len(input) {
		for i < len(input) && isSpace(input[i]) {
			i++
		}
		if i >= len(input) {
			break
		}
		start := i
		for i < len(input) && !isSpace(input[i]) {
			i++
		}
		tokens = append(tokens, token{text: input[start:i], offset: start})
	}
	return tokens
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// peek returns the current token without consuming it
func (p *parser) peek() (token, bool) {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos], true
	}
	return token{}, false
}

// next consumes and returns the current token
func (p *parser) next() (token, bool) {
	t, ok := p.peek()
	if ok {
		p.pos++
	}
	return t, ok
}

// expectedMore reports a truncated input as an unknown-token failure at the
// end of the input
func (p *parser) expectedMore(what string) *schedule.Error {
	return &schedule.Error{
		Kind:    schedule.KindUnknownToken,
		Message: "expected " + what,
		Offset:  len(p.input),
	}
}

// parseHead reads the optional "every", the interval and the unit. A bare
// weekday name ("every monday") selects a weekly unit; a weekday class
// ("every weekday") selects a daily unit with the class as its pattern.
func (p *parser) parseHead() error {
	t, ok := p.peek()
	if ok && strings.EqualFold(t.text, lexicon.KeywordEvery) {
		p.pos++
	}
	t, ok = p.next()
	if !ok {
		return p.expectedMore("an interval or unit")
	}

	digits, rest := splitDigits(t.text)
	switch {
	case digits != "" && rest == "":
		// Numeric interval, unit in the following token
		n, err := strconv.Atoi(digits)
		if err != nil || n < 1 {
			e := schedule.ErrInvalidSchedule("interval must be at least 1")
			e.Offset = t.offset
			return e
		}
		p.interval = n
		ut, ok := p.next()
		if !ok {
			return p.expectedMore("a unit after the interval")
		}
		unit, err2 := unitFor(ut)
		if err2 != nil {
			return err2
		}
		p.unit = unit
		return nil

	case digits != "" && rest != "":
		// Compact form: "30m", "1d", "2M"
		n, err := strconv.Atoi(digits)
		if err != nil || n < 1 {
			e := schedule.ErrInvalidSchedule("interval must be at least 1")
			e.Offset = t.offset
			return e
		}
		p.interval = n
		unit, err2 := unitFor(token{text: rest, offset: t.offset + len(digits)})
		if err2 != nil {
			if looksLikeTime(t.text) {
				// "2pm" or "14:30" as the whole schedule: an implicit daily
				// schedule at that time
				p.interval = 1
				p.unit = schedule.UnitDays
				return p.parseTimeOperand(t)
			}
			return err2
		}
		p.unit = unit
		return nil

	default:
		// No interval: a unit word, weekday class or weekday name
		if unit, err := unitFor(t); err == nil {
			p.unit = unit
			return nil
		}
		if pattern, ok := patternFor(t.text); ok {
			p.unit = schedule.UnitDays
			p.day.setPattern(pattern)
			return nil
		}
		if wd, ok := lexicon.WeekdayFor(t.text); ok {
			p.unit = schedule.UnitWeeks
			p.day.setWeekday(wd)
			return nil
		}
		if looksLikeTime(t.text) {
			p.unit = schedule.UnitDays
			return p.parseTimeOperand(t)
		}
		return schedule.ErrUnknownToken(t.offset, t.text)
	}
}

// unitFor resolves a unit token: single-letter abbreviations verbatim
// (separating "m" minutes from "M" months), long forms case-insensitive
func unitFor(t token) (schedule.Unit, *schedule.Error) {
	if len(t.text) == 1 {
		if u, ok := lexicon.UnitForShort(t.text); ok {
			return u, nil
		}
		return 0, schedule.ErrUnknownToken(t.offset, t.text)
	}
	if u, ok := lexicon.UnitForLong(t.text); ok {
		return u, nil
	}
	return 0, schedule.ErrUnknownToken(t.offset, t.text)
}

// patternFor resolves a weekday-class token
func patternFor(text string) (schedule.DayPattern, bool) {
	switch strings.ToLower(text) {
	case "weekday", "weekdays":
		return schedule.PatternWeekdays, true
	case "weekend", "weekends":
		return schedule.PatternWeekends, true
	default:
		return schedule.PatternNone, false
	}
}

// parseConstraint reads one day, month or time constraint. Connectives are
// optional; "on friday", "friday", "in june" and "june" are all accepted.
func (p *parser) parseConstraint() error {
	t, _ := p.next()
	lower := strings.ToLower(t.text)

	switch lower {
	case lexicon.KeywordEvery, lexicon.KeywordAnd:
		// Redundant connective
		return nil
	case lexicon.KeywordOn:
		operand, ok := p.next()
		if !ok {
			return p.expectedMore("a day after \"on\"")
		}
		return p.parseDayOperand(operand)
	case lexicon.KeywordIn:
		operand, ok := p.next()
		if !ok {
			return p.expectedMore("a month after \"in\"")
		}
		return p.parseMonthOperand(operand)
	case lexicon.KeywordBetween:
		return p.parseBetween()
	case lexicon.KeywordAt:
		operand, ok := p.next()
		if !ok {
			return p.expectedMore("a time after \"at\"")
		}
		return p.parseTimeOperand(operand)
	}

	// Bare operands without a connective
	if _, ok := lexicon.WeekdayFor(t.text); ok {
		return p.parseDayOperand(t)
	}
	if _, ok := patternFor(t.text); ok {
		return p.parseDayOperand(t)
	}
	if _, ok := lexicon.MonthFor(t.text); ok || strings.Contains(t.text, ",") || strings.Contains(t.text, "-") {
		if isMonthOperand(t.text) {
			return p.parseMonthOperand(t)
		}
	}
	if looksLikeTime(t.text) {
		return p.parseTimeOperand(t)
	}
	if digits, rest := splitDigits(t.text); digits != "" && rest == "" {
		return p.parseDayOperand(t)
	}
	if _, ok := lexicon.OrdinalFor(t.text); ok {
		return p.parseDayOperand(t)
	}
	return schedule.ErrUnknownToken(t.offset, t.text)
}

// parseDayOperand handles weekday names, weekday classes, day-of-month
// numbers and ordinals
func (p *parser) parseDayOperand(t token) error {
	if wd, ok := lexicon.WeekdayFor(t.text); ok {
		if err := p.requireDayUnit(t, "a weekday"); err != nil {
			return err
		}
		p.day.setWeekday(wd)
		return nil
	}
	if pattern, ok := patternFor(t.text); ok {
		if err := p.requireDayUnit(t, "a weekday class"); err != nil {
			return err
		}
		p.day.setPattern(pattern)
		return nil
	}
	if lexicon.IsLast(t.text) {
		e := schedule.ErrUnsupportedByDialect("cron", "last-day-of-month scheduling")
		e.Offset = t.offset
		return e
	}
	if strings.Contains(t.text, "-") || strings.Contains(t.text, ",") {
		return schedule.ErrIncompatibleConstraint(t.offset, "day ranges and day lists are not supported")
	}

	day := 0
	if digits, rest := splitDigits(t.text); digits != "" && rest == "" {
		day, _ = strconv.Atoi(digits)
	} else if n, ok := lexicon.OrdinalFor(t.text); ok {
		day = n
	} else {
		return schedule.ErrUnknownToken(t.offset, t.text)
	}

	switch p.unit {
	case schedule.UnitMonths, schedule.UnitYears:
	default:
		return schedule.ErrIncompatibleConstraint(t.offset,
			"a day of month cannot be combined with a unit of "+p.unit.Plural())
	}
	if day < schedule.MinDayOfMonth || day > schedule.MaxDayOfMonth {
		return schedule.ErrNumberOutOfRange(t.offset, "day of month", day,
			schedule.MinDayOfMonth, schedule.MaxDayOfMonth)
	}
	p.day.setDayOfMonth(day)
	return nil
}

// requireDayUnit rejects weekday constraints for sub-daily units
func (p *parser) requireDayUnit(t token, what string) error {
	switch p.unit {
	case schedule.UnitDays, schedule.UnitWeeks, schedule.UnitMonths, schedule.UnitYears:
		return nil
	default:
		return schedule.ErrIncompatibleConstraint(t.offset,
			what+" cannot be combined with a unit of "+p.unit.Plural())
	}
}

// parseMonthOperand handles "june", "january,march,july" and "june-september"
func (p *parser) parseMonthOperand(t token) error {
	if err := p.requireMonthUnit(t); err != nil {
		return err
	}
	switch {
	case strings.Contains(t.text, ","):
		parts := strings.Split(t.text, ",")
		var list []int
		seen := make(map[int]bool)
		off := t.offset
		for _, part := range parts {
			m, ok := lexicon.MonthFor(part)
			if !ok {
				return schedule.ErrUnknownToken(off, part)
			}
			if !seen[m] {
				seen[m] = true
				list = append(list, m)
			}
			off += len(part) + 1
		}
		if len(list) == 1 {
			p.month.set(schedule.MonthSingle{Month: list[0]})
			return nil
		}
		p.month.set(schedule.MonthList{List: list})
		return nil

	case strings.Contains(t.text, "-"):
		parts := strings.SplitN(t.text, "-", 2)
		start, ok := lexicon.MonthFor(parts[0])
		if !ok {
			return schedule.ErrUnknownToken(t.offset, parts[0])
		}
		end, ok := lexicon.MonthFor(parts[1])
		if !ok {
			return schedule.ErrUnknownToken(t.offset+len(parts[0])+1, parts[1])
		}
		if start > end {
			return schedule.ErrIncompatibleConstraint(t.offset, "month range start must come before its end")
		}
		p.month.set(schedule.MonthRange{Start: start, End: end})
		return nil

	default:
		m, ok := lexicon.MonthFor(t.text)
		if !ok {
			return schedule.ErrUnknownToken(t.offset, t.text)
		}
		p.month.set(schedule.MonthSingle{Month: m})
		return nil
	}
}

// requireMonthUnit rejects month constraints unless the unit is months or years
func (p *parser) requireMonthUnit(t token) error {
	switch p.unit {
	case schedule.UnitMonths, schedule.UnitYears:
		return nil
	default:
		return schedule.ErrIncompatibleConstraint(t.offset,
			"a month constraint cannot be combined with a unit of "+p.unit.Plural())
	}
}

// parseBetween handles "between <month> and <month>". Weekday ranges are a
// recognized shape but not a supported one.
func (p *parser) parseBetween() error {
	first, ok := p.next()
	if !ok {
		return p.expectedMore("a month after \"between\"")
	}
	if _, isDay := lexicon.WeekdayFor(first.text); isDay {
		return schedule.ErrIncompatibleConstraint(first.offset, "weekday ranges are not supported")
	}
	if err := p.requireMonthUnit(first); err != nil {
		return err
	}
	start, ok := lexicon.MonthFor(first.text)
	if !ok {
		return schedule.ErrUnknownToken(first.offset, first.text)
	}
	conn, ok := p.next()
	if !ok {
		return p.expectedMore("\"and\" between the two months")
	}
	if !strings.EqualFold(conn.text, lexicon.KeywordAnd) && !strings.EqualFold(conn.text, lexicon.KeywordThrough) {
		return schedule.ErrUnknownToken(conn.offset, conn.text)
	}
	second, ok := p.next()
	if !ok {
		return p.expectedMore("a closing month")
	}
	end, ok := lexicon.MonthFor(second.text)
	if !ok {
		return schedule.ErrUnknownToken(second.offset, second.text)
	}
	if start > end {
		return schedule.ErrIncompatibleConstraint(first.offset, "month range start must come before its end")
	}
	p.month.set(schedule.MonthRange{Start: start, End: end})
	return nil
}

// splitDigits splits a token into its leading digits and the remainder
func splitDigits(s string) (digits, rest string) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i], s[i:]
}

// isMonthOperand reports whether every name in a comma or dash separated
// token resolves as a month
func isMonthOperand(text string) bool {
	seps := func(r rune) bool { return r == ',' || r == '-' }
	parts := strings.FieldsFunc(text, seps)
	if len(parts) == 0 {
		return false
	}
	for _, part := range parts {
		if _, ok := lexicon.MonthFor(part); !ok {
			return false
		}
	}
	return true
}
