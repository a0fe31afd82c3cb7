package cron

import (
	"fmt"
	"strconv"
	"strings"
)

// FieldSet is the set of allowed values for one schedule field, stored as a
// bit vector over the field's domain [min, max]. The largest domain (seconds
// and minutes) has 60 values, so a single uint64 always suffices.
//
// low and high are the tightest bounds enclosing every set bit; they only
// widen as subtokens accumulate, and scans never look outside them.
type FieldSet struct {
	bits      uint64
	min, max  int
	low, high int
}

// NewFieldSet parses one schedule token (a comma-separated list of subtokens)
// into the set of allowed values within [min, max]. names, when non-nil, maps
// index i to the value min+i and enables case-insensitive prefix resolution
// of symbolic values (e.g. "Mon", "january").
func NewFieldSet(token string, min, max int, names []string) (FieldSet, error) {
	f := FieldSet{
		bits: 0,
		min:  min,
		max:  max,
		low:  max + 1,
		high: min - 1,
	}

	if strings.TrimSpace(token) == "" {
		return FieldSet{}, fmt.Errorf("%w: empty field", ErrMalformedField)
	}

	for _, sub := range strings.Split(token, ",") {
		if err := f.add(sub, names); err != nil {
			return FieldSet{}, err
		}
	}

	return f, nil
}

// add expands one subtoken and merges its values into the set.
func (f *FieldSet) add(sub string, names []string) error {
	base, stepStr, hasStep := strings.Cut(sub, "/")

	step := 1
	if hasStep {
		n, err := strconv.Atoi(stepStr)
		if err != nil || n < 0 {
			return fmt.Errorf("%w: bad step %q in %q", ErrMalformedField, stepStr, sub)
		}
		step = n
	}

	var lo, hi int
	switch dash := strings.Index(base, "-"); {
	case base == "*":
		if step == 0 {
			return fmt.Errorf("%w: step cannot be zero in %q", ErrMalformedField, sub)
		}
		lo, hi = f.min, f.max

	case dash > 0: // a leading '-' is a negative number, not a range
		a, err := f.resolve(base[:dash], names)
		if err != nil {
			return err
		}
		b, err := f.resolve(base[dash+1:], names)
		if err != nil {
			return err
		}
		if step == 0 {
			return fmt.Errorf("%w: step cannot be zero in %q", ErrMalformedField, sub)
		}
		if a > b {
			a, b = b, a
		}
		lo, hi = a, b

	default:
		v, err := f.resolve(base, names)
		if err != nil {
			return err
		}
		switch step {
		case 1:
			lo, hi = v, v
		case 0:
			// Historical form "v/0": every value from v through the top of
			// the domain. Kept bit-for-bit compatible; do not generalize.
			lo, hi = v, f.max
			step = 1
		default:
			return fmt.Errorf("%w: step %d not allowed on single value %q", ErrMalformedField, step, sub)
		}
	}

	for v := lo; v <= hi; v += step {
		f.bits |= 1 << uint(v-f.min)
		if v < f.low {
			f.low = v
		}
		if v > f.high {
			f.high = v
		}
	}

	return nil
}

// resolve turns a numeric literal or a symbolic name into a domain value.
func (f *FieldSet) resolve(s string, names []string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: missing value", ErrMalformedField)
	}

	if v, err := strconv.Atoi(s); err == nil {
		if v < f.min || v > f.max {
			return 0, fmt.Errorf("%w: %d is not within [%d, %d]", ErrValueOutOfRange, v, f.min, f.max)
		}
		return v, nil
	}

	lower := strings.ToLower(s)
	for i, name := range names {
		if strings.HasPrefix(name, lower) {
			return f.min + i, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownName, s)
}

// First returns the smallest member of the set. The second result is false
// only for an empty set, which cannot come out of a successful NewFieldSet.
func (f FieldSet) First() (int, bool) {
	return f.Next(f.min)
}

// Next returns the smallest member that is at least start, or false when no
// member exists at or above start.
func (f FieldSet) Next(start int) (int, bool) {
	if start < f.low {
		start = f.low
	}
	for v := start; v <= f.high; v++ {
		if f.bits&(1<<uint(v-f.min)) != 0 {
			return v, true
		}
	}
	return 0, false
}

// Contains reports whether v is a member of the set.
func (f FieldSet) Contains(v int) bool {
	if v < f.min || v > f.max {
		return false
	}
	return f.bits&(1<<uint(v-f.min)) != 0
}

// first is First for sets known to be non-empty.
func (f FieldSet) first() int {
	v, _ := f.First()
	return v
}
