// Package cronverse translates a compact scheduling language ("every 30
// seconds", "every weekday at 2pm", "1d at 2am") into cron expressions of
// several dialects, and translates those expressions back into the
// canonical natural form.
//
// The codec is purely functional: every operation is synchronous, stateless
// and safe for concurrent use. The clock and time-zone database are
// injected collaborators, so the same input under the same clock always
// yields the same output.
package cronverse

import (
	"github.com/cronverse/cronverse/pkg/emit"
	"github.com/cronverse/cronverse/pkg/human"
	"github.com/cronverse/cronverse/pkg/parser"
	"github.com/cronverse/cronverse/pkg/schedule"
	"github.com/cronverse/cronverse/pkg/timeutil"
)

// Dialect identifiers accepted by ToNatural
const (
	DialectUnix     = emit.DialectUnix
	DialectNCrontab = emit.DialectNCrontab
	DialectQuartz   = emit.DialectQuartz
)

// Codec is the translation facade. The zero value is not usable; construct
// one with NewCodec or NewCodecWith.
type Codec struct {
	env emit.Env
}

// NewCodec returns a codec backed by the host clock and zone database
func NewCodec() *Codec {
	return NewCodecWith(timeutil.NewSystemClock(), timeutil.NewSystemDB())
}

// NewCodecWith returns a codec with explicit collaborators. Tests pin the
// clock with timeutil.NewFixedClock for reproducible zone conversions.
func NewCodecWith(clock timeutil.Clock, zones timeutil.TimeZoneDB) *Codec {
	return &Codec{env: emit.Env{Clock: clock, Zones: zones}}
}

// ToCron translates scheduling text into a Unix 5-field cron expression.
// The wall-clock time is read in userZone ("" = host zone) and converted to
// serverZone ("" = no conversion) at the clock's reference instant.
func (c *Codec) ToCron(text, serverZone, userZone string) (string, error) {
	spec, err := parser.ParseWithOptions(text, parser.Options{TimeZone: userZone})
	if err != nil {
		return "", err
	}
	return emit.Unix(spec, serverZone, c.env)
}

// ToNCrontab translates scheduling text into a 6-field cron expression with
// a leading seconds column
func (c *Codec) ToNCrontab(text string) (string, error) {
	spec, err := parser.Parse(text)
	if err != nil {
		return "", err
	}
	return emit.NCrontab(spec, "", c.env)
}

// ToQuartz translates scheduling text into either a 7-field Quartz cron
// expression or a calendar-interval descriptor, chosen by the shape of the
// schedule. The userZone ("" = host zone) travels with the output.
func (c *Codec) ToQuartz(text, userZone string) (emit.QuartzOutput, error) {
	spec, err := parser.ParseWithOptions(text, parser.Options{TimeZone: userZone})
	if err != nil {
		return nil, err
	}
	return emit.Quartz(spec, c.env)
}

// ToNatural translates a cron expression of the named dialect back into
// canonical scheduling text. Only the shapes the forward emitters produce
// are recognized; anything else fails with NotRoundTrippable.
func (c *Codec) ToNatural(expression, dialect string) (string, error) {
	spec, err := emit.Recognize(expression, dialect)
	if err != nil {
		return "", err
	}
	return human.Format(spec), nil
}

// Parse converts scheduling text into the intermediate representation
func (c *Codec) Parse(text string) (schedule.Spec, error) {
	return parser.Parse(text)
}

// Format renders the canonical surface form of a specification
func (c *Codec) Format(spec schedule.Spec) string {
	return human.Format(spec)
}

// defaultCodec backs the package-level convenience functions
var defaultCodec = NewCodec()

// ToCron translates text to Unix cron with the host collaborators
func ToCron(text, serverZone, userZone string) (string, error) {
	return defaultCodec.ToCron(text, serverZone, userZone)
}

// ToNCrontab translates text to 6-field cron with the host collaborators
func ToNCrontab(text string) (string, error) {
	return defaultCodec.ToNCrontab(text)
}

// ToQuartz translates text to Quartz output with the host collaborators
func ToQuartz(text, userZone string) (emit.QuartzOutput, error) {
	return defaultCodec.ToQuartz(text, userZone)
}

// ToNatural translates a dialect cron expression back to canonical text
func ToNatural(expression, dialect string) (string, error) {
	return defaultCodec.ToNatural(expression, dialect)
}

// Parse converts scheduling text into the intermediate representation
func Parse(text string) (schedule.Spec, error) {
	return defaultCodec.Parse(text)
}

// Format renders the canonical surface form of a specification
func Format(spec schedule.Spec) string {
	return human.Format(spec)
}
