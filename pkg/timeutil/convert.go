package timeutil

import (
	"fmt"
	"time"

	"github.com/cronverse/cronverse/pkg/schedule"
)

// ResolveLocal pins a wall-clock hour and minute to the reference instant's
// date in the given zone. A wall-clock moment swallowed by a DST gap, or
// repeated by a DST overlap, fails with AmbiguousLocalTime.
func ResolveLocal(zone *time.Location, ref time.Time, hour, minute int) (time.Time, error) {
	year, month, day := ref.In(zone).Date()
	t := time.Date(year, month, day, hour, minute, 0, 0, zone)
	if t.Hour() != hour || t.Minute() != minute {
		return time.Time{}, schedule.ErrAmbiguousLocalTime(zone.String(),
			fmt.Sprintf("%02d:%02d", hour, minute))
	}
	// An overlap repeats the moment under the offset in force a day earlier
	// or a day later; a second instant with the same wall clock is ambiguous
	for _, probe := range []time.Time{t.AddDate(0, 0, -1), t.AddDate(0, 0, 1)} {
		_, offset := probe.Zone()
		other := time.Date(year, month, day, hour, minute, 0, 0, time.UTC).Add(-time.Duration(offset) * time.Second)
		local := other.In(zone)
		if !other.Equal(t) && local.Hour() == hour && local.Minute() == minute {
			return time.Time{}, schedule.ErrAmbiguousLocalTime(zone.String(),
				fmt.Sprintf("%02d:%02d", hour, minute))
		}
	}
	return t, nil
}

// Convert translates a wall-clock time from one zone into another at the
// reference instant, applying that instant's offset. Returns the hour and
// minute in the target zone.
func Convert(from, to *time.Location, ref time.Time, hour, minute int) (int, int, error) {
	local, err := ResolveLocal(from, ref, hour, minute)
	if err != nil {
		return 0, 0, err
	}
	converted := local.In(to)
	return converted.Hour(), converted.Minute(), nil
}
