// Package cron computes the occurrences of crontab-style schedules. It is a
// pure calculation package: it never executes anything and never reads the
// clock on its own.
package cron

import (
	"fmt"
	"strings"
)

// Schedule is the parsed form of a cron expression: one FieldSet per field.
// Values are immutable after Parse.
type Schedule struct {
	Second FieldSet
	Minute FieldSet
	Hour   FieldSet
	Dom    FieldSet
	Month  FieldSet
	Dow    FieldSet
}

// domain describes one schedule field: its name for error messages, its
// inclusive bounds, and the symbolic names accepted during parsing.
type domain struct {
	name     string
	min, max int
	names    []string
}

//nolint:gochecknoglobals
var (
	secondDomain = domain{"second", 0, 59, nil}
	minuteDomain = domain{"minute", 0, 59, nil}
	hourDomain   = domain{"hour", 0, 23, nil}
	domDomain    = domain{"day-of-month", 1, 31, nil}
	monthDomain  = domain{
		"month", 1, 12,
		[]string{
			"january", "february", "march", "april", "may", "june",
			"july", "august", "september", "october", "november", "december",
		},
	}
	dowDomain = domain{
		"day-of-week", 0, 6,
		[]string{
			"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
		},
	}
)

// Parse builds a Schedule from a cron expression of 5 or 6 whitespace-
// separated fields, read as "[second] minute hour day-of-month month
// day-of-week". When the second field is omitted it defaults to 0.
func Parse(expr string) (Schedule, error) {
	if strings.TrimSpace(expr) == "" {
		return Schedule{}, ErrEmptyExpression
	}

	tokens := strings.Fields(expr)
	if len(tokens) < 5 || len(tokens) > 6 {
		return Schedule{}, fmt.Errorf("%w: got %d", ErrFieldCount, len(tokens))
	}

	var err error
	field := func(token string, d domain) FieldSet {
		if err != nil {
			return FieldSet{}
		}
		f, e := NewFieldSet(token, d.min, d.max, d.names)
		if e != nil {
			err = fmt.Errorf("%s field %q: %w", d.name, token, e)
		}
		return f
	}

	// Fields are assigned from the last token backward so that the optional
	// second field, when present, ends up leftmost.
	n := len(tokens)
	s := Schedule{
		Dow:    field(tokens[n-1], dowDomain),
		Month:  field(tokens[n-2], monthDomain),
		Dom:    field(tokens[n-3], domDomain),
		Hour:   field(tokens[n-4], hourDomain),
		Minute: field(tokens[n-5], minuteDomain),
	}
	if n == 6 {
		s.Second = field(tokens[0], secondDomain)
	} else {
		s.Second = field("0", secondDomain)
	}
	if err != nil {
		return Schedule{}, err
	}

	return s, nil
}

// MustParse is Parse for expressions known to be valid; it panics otherwise.
func MustParse(expr string) Schedule {
	s, err := Parse(expr)
	if err != nil {
		panic(fmt.Errorf("cron.MustParse: %w", err))
	}
	return s
}
