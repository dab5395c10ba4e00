package emit

import (
	"fmt"

	"github.com/cronverse/cronverse/pkg/schedule"
)

// NCrontab lowers a specification to a 6-field cron expression with a
// leading seconds column (sec min hr dom mon dow). Second intervals must
// divide 60 so the step lines up with the minute boundary.
func NCrontab(s schedule.Spec, serverZone string, env Env) (string, error) {
	if s.Unit() == schedule.UnitSeconds {
		n := s.Interval()
		if n > schedule.MaxMinute || 60%n != 0 {
			return "", schedule.ErrUnsupportedByDialect(DialectNCrontab,
				fmt.Sprintf("an interval of %d seconds", n))
		}
		return fmt.Sprintf("%s * * * * *", stepField(n)), nil
	}

	fields, err := unixFields(s, serverZone, env, DialectNCrontab)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("0 %s %s %s %s %s",
		fields.minute, fields.hour, fields.dom, fields.month, fields.dow), nil
}
