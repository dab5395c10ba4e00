package check_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cronverse/cronverse/internal/check"
	"github.com/cronverse/cronverse/internal/schedfile"
	"github.com/cronverse/cronverse/internal/testutil"
	"github.com/cronverse/cronverse/pkg/emit"
)

func newValidator() *check.Validator {
	return check.NewValidator(emit.DefaultEnv())
}

// issueCodes collects the diagnostic codes in a result
func issueCodes(result check.ValidationResult) []string {
	codes := make([]string, 0, len(result.Issues))
	for _, issue := range result.Issues {
		codes = append(codes, issue.Code)
	}
	return codes
}

func TestValidateText(t *testing.T) {
	t.Run("clean schedule has no issues", func(t *testing.T) {
		result := newValidator().ValidateText("every weekday at 2pm")
		assert.True(t, result.Valid)
		assert.Empty(t, result.Issues)
		assert.Equal(t, 1, result.ValidSchedules)
	})

	t.Run("unparseable text is an error", func(t *testing.T) {
		result := newValidator().ValidateText("every florp")
		assert.False(t, result.Valid)
		assert.Equal(t, 1, result.InvalidSchedules)
		assert.Contains(t, issueCodes(result), check.CodeParseError)
	})

	t.Run("seconds warn for unix but stay valid", func(t *testing.T) {
		result := newValidator().ValidateText("every 30 seconds")
		assert.True(t, result.Valid)
		assert.Contains(t, issueCodes(result), check.CodeDialectUnsupported)
	})

	t.Run("day 31 warns about short months", func(t *testing.T) {
		result := newValidator().ValidateText("every month on 31")
		assert.True(t, result.Valid)
		assert.Contains(t, issueCodes(result), check.CodeShortMonthSkip)
	})

	t.Run("bare weekly warns about the missing weekday", func(t *testing.T) {
		result := newValidator().ValidateText("every week")
		assert.True(t, result.Valid)
		assert.Contains(t, issueCodes(result), check.CodeWeeklyWithoutDay)
	})

	t.Run("uneven minute steps are informational", func(t *testing.T) {
		result := newValidator().ValidateText("every 7 minutes")
		assert.True(t, result.Valid)

		found := false
		for _, issue := range result.Issues {
			if issue.Code == check.CodeUnevenStep {
				found = true
				assert.Equal(t, check.SeverityInfo, issue.Severity)
			}
		}
		assert.True(t, found)
	})

	t.Run("issues carry hints", func(t *testing.T) {
		result := newValidator().ValidateText("every month on 31")
		require.NotEmpty(t, result.Issues)
		for _, issue := range result.Issues {
			assert.NotEmpty(t, issue.Hint, "code %s", issue.Code)
		}
	})
}

func TestValidateManifest(t *testing.T) {
	manifest := `# schedules
backup: every day at 2am
pulse: every 30 seconds
broken: not even close to valid florp
bad line without colon
`

	path, cleanup := testutil.CreateTempManifest(t, manifest)
	defer cleanup()

	result := newValidator().ValidateManifest(schedfile.NewReader(), path)

	assert.False(t, result.Valid)
	assert.Equal(t, 3, result.TotalSchedules)
	assert.Equal(t, 2, result.ValidSchedules)
	assert.Equal(t, 1, result.InvalidSchedules)

	codes := issueCodes(result)
	assert.Contains(t, codes, check.CodeParseError)
	assert.Contains(t, codes, check.CodeInvalidLine)
	assert.Contains(t, codes, check.CodeDialectUnsupported)

	t.Run("issues carry manifest line numbers", func(t *testing.T) {
		for _, issue := range result.Issues {
			if issue.Code == check.CodeParseError {
				assert.Equal(t, 4, issue.LineNumber)
				assert.Equal(t, "broken", issue.Name)
			}
		}
	})
}

func TestValidateManifest_MissingFile(t *testing.T) {
	result := newValidator().ValidateManifest(schedfile.NewReader(), "/nonexistent/schedules.txt")
	assert.False(t, result.Valid)
	assert.Contains(t, issueCodes(result), check.CodeFileReadError)
}

func TestSeverity(t *testing.T) {
	assert.Equal(t, "info", check.SeverityInfo.String())
	assert.Equal(t, "warn", check.SeverityWarn.String())
	assert.Equal(t, "error", check.SeverityError.String())
	assert.True(t, check.SeverityError.IsError())
	assert.True(t, check.SeverityWarn.IsWarning())
	assert.False(t, check.SeverityInfo.IsError())
}

func TestCodeTables(t *testing.T) {
	t.Run("every code has a severity", func(t *testing.T) {
		codes := []string{
			check.CodeParseError, check.CodeDialectUnsupported, check.CodeDOMDOWConflict,
			check.CodeShortMonthSkip, check.CodeWeeklyWithoutDay, check.CodeUnevenStep,
			check.CodeEmissionInvalid, check.CodeFileReadError, check.CodeInvalidLine,
		}
		for _, code := range codes {
			assert.NotEqual(t, "unknown", check.GetCodeSeverity(code).String(), code)
			assert.NotEmpty(t, check.GetCodeHint(code), code)
		}
	})

	t.Run("unknown codes default to error", func(t *testing.T) {
		assert.Equal(t, check.SeverityError, check.GetCodeSeverity("SCHED-999"))
	})
}
