package human

import (
	"fmt"
	"strings"

	"github.com/cronverse/cronverse/pkg/lexicon"
	"github.com/cronverse/cronverse/pkg/schedule"
)

// timeWord renders a time of day: whole hours in 12-hour form ("2pm",
// "12am"), anything with minutes in 24-hour HH:mm form ("09:30")
func timeWord(t schedule.TimeOfDay) string {
	if t.Minute != 0 {
		return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
	}
	switch {
	case t.Hour == 0:
		return "12am"
	case t.Hour < 12:
		return fmt.Sprintf("%dam", t.Hour)
	case t.Hour == 12:
		return "12pm"
	default:
		return fmt.Sprintf("%dpm", t.Hour-12)
	}
}

// monthWords renders a month specifier: "in june",
// "between june and september", "in january,march,july"
func monthWords(m schedule.MonthSpec) []string {
	switch v := m.(type) {
	case schedule.MonthSingle:
		return []string{"in", lexicon.MonthName(v.Month)}
	case schedule.MonthRange:
		return []string{"between", lexicon.MonthName(v.Start), "and", lexicon.MonthName(v.End)}
	case schedule.MonthList:
		names := make([]string, len(v.List))
		for i, mv := range v.List {
			names[i] = lexicon.MonthName(mv)
		}
		return []string{"in", strings.Join(names, ",")}
	default:
		return nil
	}
}
