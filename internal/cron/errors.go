package cron

import "errors"

// Parsing failures, all detected during Schedule construction. The search
// itself never fails; "no match before the bound" is the bound returned as an
// ordinary value.
var (
	ErrEmptyExpression = errors.New("empty schedule expression")
	ErrFieldCount      = errors.New("schedule expression must have 5 or 6 fields")
	ErrValueOutOfRange = errors.New("value out of range")
	ErrUnknownName     = errors.New("unknown name")
	ErrMalformedField  = errors.New("malformed field")
)
