// Package human renders a schedule specification as its canonical surface
// text: the fixed lowercase English form that the parser accepts back
// unchanged. Formatting is total on any invariant-satisfying specification
// and never fails.
package human

import (
	"fmt"
	"strings"

	"github.com/cronverse/cronverse/pkg/schedule"
)

// Format renders the canonical surface form of a specification. The parts
// present are resolved first, then emitted in one pass: head word, day
// constraint, month constraint, time of day.
func Format(s schedule.Spec) string {
	parts := []string{"every"}

	head, dayConsumed := headWord(s)
	parts = append(parts, head)

	if !dayConsumed {
		if d, ok := s.DayOfWeek(); ok {
			parts = append(parts, "on", d.String())
		} else if p := s.DayPattern(); p != schedule.PatternNone {
			parts = append(parts, "on", p.String()+"s")
		}
	}

	if day, ok := s.DayOfMonth(); ok {
		parts = append(parts, "on", fmt.Sprintf("%d", day))
	}

	if m := s.Months(); m != nil {
		parts = append(parts, monthWords(m)...)
	}

	if t, ok := s.TimeOfDay(); ok {
		parts = append(parts, "at", timeWord(t))
	}

	return strings.Join(parts, " ")
}

// headWord resolves the word following "every". A daily or weekly schedule
// whose weekday constraint dominates its semantics replaces the unit word
// ("every monday", "every weekday"); the second return reports whether the
// day constraint was consumed that way.
func headWord(s schedule.Spec) (string, bool) {
	if s.Interval() == 1 {
		switch s.Unit() {
		case schedule.UnitDays, schedule.UnitWeeks:
			if d, ok := s.DayOfWeek(); ok {
				return d.String(), true
			}
			if p := s.DayPattern(); p != schedule.PatternNone {
				return p.String(), true
			}
		}
		return s.Unit().String(), false
	}
	return fmt.Sprintf("%d %s", s.Interval(), s.Unit().Plural()), false
}
