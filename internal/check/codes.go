package check

// Diagnostic code constants
const (
	// CodeParseError indicates the schedule text does not parse
	CodeParseError = "SCHED-001"
	// CodeDialectUnsupported indicates a dialect cannot express the schedule
	CodeDialectUnsupported = "SCHED-002"
	// CodeDOMDOWConflict indicates both day-of-month and day-of-week are set
	CodeDOMDOWConflict = "SCHED-003"
	// CodeShortMonthSkip indicates a day of month that short months lack
	CodeShortMonthSkip = "SCHED-004"
	// CodeWeeklyWithoutDay indicates a weekly schedule with no weekday anchor
	CodeWeeklyWithoutDay = "SCHED-005"
	// CodeUnevenStep indicates a minute step that does not divide the hour
	CodeUnevenStep = "SCHED-006"
	// CodeEmissionInvalid indicates an emitted expression failed revalidation
	CodeEmissionInvalid = "SCHED-007"
	// CodeFileReadError indicates an error reading a manifest file
	CodeFileReadError = "SCHED-008"
	// CodeInvalidLine indicates an unparseable manifest line
	CodeInvalidLine = "SCHED-009"
)

// GetCodeSeverity returns the severity level for a given diagnostic code
func GetCodeSeverity(code string) Severity {
	switch code {
	case CodeDialectUnsupported, CodeDOMDOWConflict, CodeShortMonthSkip, CodeWeeklyWithoutDay:
		return SeverityWarn
	case CodeUnevenStep:
		return SeverityInfo
	case CodeParseError, CodeEmissionInvalid, CodeFileReadError, CodeInvalidLine:
		return SeverityError
	default:
		return SeverityError
	}
}

// GetCodeHint returns a hint for fixing an issue with the given code
func GetCodeHint(code string) string {
	switch code {
	case CodeParseError:
		return "Fix the schedule text. Try forms like \"every day at 2pm\" or \"every 30 minutes\"."
	case CodeDialectUnsupported:
		return "Pick a coarser interval or a different target dialect for this schedule."
	case CodeDOMDOWConflict:
		return "Consider using only a day of month OR a weekday. Unix cron runs when either matches."
	case CodeShortMonthSkip:
		return "Days 29-31 are silently skipped in months that lack them. Use 28 or the start of the next month."
	case CodeWeeklyWithoutDay:
		return "Add a weekday (\"every week on sunday\"); without one, cron dialects fire the schedule daily."
	case CodeUnevenStep:
		return "Steps that do not divide 60 restart at the top of each hour, so intervals are uneven."
	case CodeEmissionInvalid:
		return "This is a translation defect; please report the schedule text."
	case CodeFileReadError:
		return "Check that the manifest exists and is readable."
	case CodeInvalidLine:
		return "Manifest lines must read \"name: schedule text\"."
	default:
		return ""
	}
}
