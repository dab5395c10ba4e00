// Package check validates natural-language schedules against every cron
// dialect the codec targets, reporting issues with severity levels,
// diagnostic codes and fix hints.
package check

import (
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/cronverse/cronverse/internal/schedfile"
	"github.com/cronverse/cronverse/pkg/emit"
	"github.com/cronverse/cronverse/pkg/parser"
	"github.com/cronverse/cronverse/pkg/schedule"
)

// Issue represents a validation issue found in a schedule or manifest
type Issue struct {
	Severity   Severity // Severity level (info, warn, error)
	Code       string   // Diagnostic code (e.g., "SCHED-003")
	LineNumber int      // 0 for single-schedule checks
	Name       string   // Manifest entry name (if applicable)
	Text       string   // The schedule text (if applicable)
	Message    string   // Human-readable issue description
	Hint       string   // Optional fix suggestion
}

// ValidationResult contains the results of validating schedules
type ValidationResult struct {
	Valid            bool
	Issues           []Issue
	TotalSchedules   int
	ValidSchedules   int
	InvalidSchedules int
}

// Validator validates schedule text across the codec's dialects
type Validator struct {
	env            emit.Env
	unixParser     cron.Parser
	ncrontabParser cron.Parser
}

// NewValidator creates a new validator instance
func NewValidator(env emit.Env) *Validator {
	return &Validator{
		env: env,
		unixParser: cron.NewParser(
			cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow,
		),
		ncrontabParser: cron.NewParser(
			cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow,
		),
	}
}

// ValidateText validates a single natural-language schedule
func (v *Validator) ValidateText(text string) ValidationResult {
	result := ValidationResult{
		Valid:          true,
		TotalSchedules: 1,
		Issues:         []Issue{},
	}

	spec, err := parser.Parse(text)
	if err != nil {
		result.Valid = false
		result.InvalidSchedules = 1
		result.Issues = append(result.Issues, Issue{
			Severity: SeverityError,
			Code:     CodeParseError,
			Text:     text,
			Message:  fmt.Sprintf("Invalid schedule text: %s", err.Error()),
			Hint:     GetCodeHint(CodeParseError),
		})
		return result
	}

	result.ValidSchedules = 1
	result.Issues = append(result.Issues, v.specIssues(spec, text)...)
	result.Issues = append(result.Issues, v.dialectIssues(spec, text)...)
	return result
}

// specIssues flags semantic hazards that are legal in the IR but surprising
// once lowered to cron
func (v *Validator) specIssues(spec schedule.Spec, text string) []Issue {
	var issues []Issue

	if day, ok := spec.DayOfMonth(); ok && day >= 29 {
		issues = append(issues, Issue{
			Severity: SeverityWarn,
			Code:     CodeShortMonthSkip,
			Text:     text,
			Message:  fmt.Sprintf("Day %d does not exist in every month", day),
			Hint:     GetCodeHint(CodeShortMonthSkip),
		})
	}

	_, hasDow := spec.DayOfWeek()
	_, hasDom := spec.DayOfMonth()
	if hasDow && hasDom {
		issues = append(issues, Issue{
			Severity: SeverityWarn,
			Code:     CodeDOMDOWConflict,
			Text:     text,
			Message:  "Both a day of month and a weekday are set (Unix cron runs when either matches)",
			Hint:     GetCodeHint(CodeDOMDOWConflict),
		})
	}

	if spec.Unit() == schedule.UnitWeeks && !hasDow && spec.DayPattern() == schedule.PatternNone {
		issues = append(issues, Issue{
			Severity: SeverityWarn,
			Code:     CodeWeeklyWithoutDay,
			Text:     text,
			Message:  "Weekly schedule has no weekday anchor",
			Hint:     GetCodeHint(CodeWeeklyWithoutDay),
		})
	}

	if spec.Unit() == schedule.UnitMinutes && spec.Interval() > 1 && 60%spec.Interval() != 0 {
		issues = append(issues, Issue{
			Severity: SeverityInfo,
			Code:     CodeUnevenStep,
			Text:     text,
			Message:  fmt.Sprintf("A %d-minute step does not divide the hour evenly", spec.Interval()),
			Hint:     GetCodeHint(CodeUnevenStep),
		})
	}

	return issues
}

// dialectIssues lowers the specification to each dialect and reports what
// cannot be expressed; emitted strings are revalidated through robfig/cron
func (v *Validator) dialectIssues(spec schedule.Spec, text string) []Issue {
	var issues []Issue

	if expr, err := emit.Unix(spec, "", v.env); err != nil {
		issues = append(issues, dialectIssue(emit.DialectUnix, text, err))
	} else if _, perr := v.unixParser.Parse(expr); perr != nil {
		issues = append(issues, emissionIssue(emit.DialectUnix, text, expr, perr))
	}

	if expr, err := emit.NCrontab(spec, "", v.env); err != nil {
		issues = append(issues, dialectIssue(emit.DialectNCrontab, text, err))
	} else if _, perr := v.ncrontabParser.Parse(expr); perr != nil {
		issues = append(issues, emissionIssue(emit.DialectNCrontab, text, expr, perr))
	}

	if _, err := emit.Quartz(spec, v.env); err != nil {
		issues = append(issues, dialectIssue(emit.DialectQuartz, text, err))
	}

	return issues
}

func dialectIssue(dialect, text string, err error) Issue {
	if kind, ok := schedule.KindOf(err); ok && kind == schedule.KindUnsupportedByDialect {
		return Issue{
			Severity: SeverityWarn,
			Code:     CodeDialectUnsupported,
			Text:     text,
			Message:  fmt.Sprintf("Not expressible as %s: %s", dialect, err.Error()),
			Hint:     GetCodeHint(CodeDialectUnsupported),
		}
	}
	return Issue{
		Severity: SeverityError,
		Code:     CodeEmissionInvalid,
		Text:     text,
		Message:  fmt.Sprintf("Translation to %s failed: %s", dialect, err.Error()),
		Hint:     GetCodeHint(CodeEmissionInvalid),
	}
}

func emissionIssue(dialect, text, expr string, err error) Issue {
	return Issue{
		Severity: SeverityError,
		Code:     CodeEmissionInvalid,
		Text:     text,
		Message:  fmt.Sprintf("Emitted %s expression %q failed revalidation: %s", dialect, expr, err.Error()),
		Hint:     GetCodeHint(CodeEmissionInvalid),
	}
}

// ValidateManifest validates every schedule in a manifest file
func (v *Validator) ValidateManifest(reader schedfile.Reader, path string) ValidationResult {
	result := ValidationResult{
		Valid:  true,
		Issues: []Issue{},
	}

	lines, err := reader.ParseFile(path)
	if err != nil {
		result.Valid = false
		result.Issues = append(result.Issues, Issue{
			Severity: SeverityError,
			Code:     CodeFileReadError,
			Message:  fmt.Sprintf("Cannot read manifest: %s", err.Error()),
			Hint:     GetCodeHint(CodeFileReadError),
		})
		return result
	}

	for _, line := range lines {
		switch line.Type {
		case schedfile.LineTypeInvalid:
			result.Valid = false
			result.Issues = append(result.Issues, Issue{
				Severity:   SeverityError,
				Code:       CodeInvalidLine,
				LineNumber: line.LineNumber,
				Text:       line.Raw,
				Message:    "Unparseable manifest line",
				Hint:       GetCodeHint(CodeInvalidLine),
			})
		case schedfile.LineTypeEntry:
			result.TotalSchedules++
			entryResult := v.ValidateText(line.Entry.Text)
			for i := range entryResult.Issues {
				entryResult.Issues[i].LineNumber = line.LineNumber
				entryResult.Issues[i].Name = line.Entry.Name
			}
			result.Issues = append(result.Issues, entryResult.Issues...)
			if entryResult.Valid {
				result.ValidSchedules++
			} else {
				result.Valid = false
				result.InvalidSchedules++
			}
		}
	}

	return result
}
