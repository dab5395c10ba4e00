package schedule

// MonthSpec is a closed union over the month constraints a schedule may
// carry: a single month, an inclusive range, or a de-duplicated list.
// A nil MonthSpec means no month constraint. The union is sealed; no
// variants can be defined outside this package.
type MonthSpec interface {
	monthSpec()

	// Months returns the constrained month numbers (1..12) in canonical order
	Months() []int
}

// MonthSingle constrains the schedule to one month.
type MonthSingle struct {
	Month int // 1..12
}

func (MonthSingle) monthSpec() {}

// Months returns the single constrained month
func (m MonthSingle) Months() []int { return []int{m.Month} }

// MonthRange constrains the schedule to an inclusive month range.
type MonthRange struct {
	Start int // 1..12
	End   int // 1..12, >= Start
}

func (MonthRange) monthSpec() {}

// Months enumerates the months covered by the range
func (m MonthRange) Months() []int {
	var months []int
	for v := m.Start; v <= m.End; v++ {
		months = append(months, v)
	}
	return months
}

// MonthList constrains the schedule to an explicit set of months,
// de-duplicated in first-seen order.
type MonthList struct {
	List []int // distinct values, each 1..12
}

func (MonthList) monthSpec() {}

// Months returns the listed months in first-seen order
func (m MonthList) Months() []int {
	months := make([]int, len(m.List))
	copy(months, m.List)
	return months
}

// monthSpecEqual compares two month specifiers structurally
func monthSpecEqual(a, b MonthSpec) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case MonthSingle:
		bv, ok := b.(MonthSingle)
		return ok && av == bv
	case MonthRange:
		bv, ok := b.(MonthRange)
		return ok && av == bv
	case MonthList:
		bv, ok := b.(MonthList)
		if !ok || len(av.List) != len(bv.List) {
			return false
		}
		for i := range av.List {
			if av.List[i] != bv.List[i] {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// validateMonthSpec checks the invariants of a month specifier
func validateMonthSpec(m MonthSpec) *Error {
	switch v := m.(type) {
	case nil:
		return nil
	case MonthSingle:
		if v.Month < MinMonth || v.Month > MaxMonth {
			return ErrInvalidSchedule("month must be in 1..12")
		}
	case MonthRange:
		if v.Start < MinMonth || v.Start > MaxMonth || v.End < MinMonth || v.End > MaxMonth {
			return ErrInvalidSchedule("month range bounds must be in 1..12")
		}
		if v.Start > v.End {
			return ErrInvalidSchedule("month range start must not exceed end")
		}
	case MonthList:
		if len(v.List) == 0 {
			return ErrInvalidSchedule("month list must not be empty")
		}
		seen := make(map[int]bool, len(v.List))
		for _, mv := range v.List {
			if mv < MinMonth || mv > MaxMonth {
				return ErrInvalidSchedule("month list entries must be in 1..12")
			}
			if seen[mv] {
				return ErrInvalidSchedule("month list entries must be distinct")
			}
			seen[mv] = true
		}
	}
	return nil
}
