package cron_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scrama/croncon/internal/cron"
)

// members drains a FieldSet through successive Next calls.
func members(f cron.FieldSet) []int {
	var vals []int
	for v, ok := f.Next(0); ok; v, ok = f.Next(v + 1) {
		vals = append(vals, v)
	}
	return vals
}

func TestNewFieldSet(t *testing.T) {
	t.Parallel()

	weekdays := []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

	for name, tc := range map[string]struct {
		token    string
		min, max int
		names    []string
		expected []int
	}{
		"wildcard":       {"*", 0, 9, nil, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
		"wildcard-step":  {"*/4", 0, 9, nil, []int{0, 4, 8}},
		"single":         {"4", 0, 9, nil, []int{4}},
		"single-step1":   {"4/1", 0, 9, nil, []int{4}},
		"range":          {"1-3", 0, 9, nil, []int{1, 2, 3}},
		"range-swapped":  {"3-1", 0, 9, nil, []int{1, 2, 3}},
		"range-step":     {"0-8/2", 0, 9, nil, []int{0, 2, 4, 6, 8}},
		"range-step-rem": {"5-9/3", 0, 9, nil, []int{5, 8}},
		"swapped-step":   {"7-2/2", 0, 9, nil, []int{2, 4, 6}},
		"list":           {"1,4-6,9", 0, 9, nil, []int{1, 4, 5, 6, 9}},
		"list-overlap":   {"2-5,4-6", 0, 9, nil, []int{2, 3, 4, 5, 6}},
		"step-zero":      {"3/0", 0, 9, nil, []int{3, 4, 5, 6, 7, 8, 9}},
		"names":          {"mon-fri", 0, 6, weekdays, []int{1, 2, 3, 4, 5}},
		"names-prefix":   {"Su,TUE", 0, 6, weekdays, []int{0, 2}},
		"names-mixed":    {"saturday,0", 0, 6, weekdays, []int{0, 6}},
	} {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			f, err := cron.NewFieldSet(tc.token, tc.min, tc.max, tc.names)
			require.NoError(t, err)
			require.Equal(t, tc.expected, members(f))
		})
	}
}

func TestNewFieldSetError(t *testing.T) {
	t.Parallel()

	months := []string{
		"january", "february", "march", "april", "may", "june",
		"july", "august", "september", "october", "november", "december",
	}

	for name, tc := range map[string]struct {
		token    string
		min, max int
		names    []string
		expected error
	}{
		"empty":           {"", 0, 9, nil, cron.ErrMalformedField},
		"blank":           {"   ", 0, 9, nil, cron.ErrMalformedField},
		"too-big":         {"10", 0, 9, nil, cron.ErrValueOutOfRange},
		"negative":        {"-5", 0, 9, nil, cron.ErrValueOutOfRange},
		"range-too-big":   {"3-12", 0, 9, nil, cron.ErrValueOutOfRange},
		"unknown-name":    {"xyz", 1, 12, months, cron.ErrUnknownName},
		"name-no-names":   {"abc", 0, 9, nil, cron.ErrUnknownName},
		"open-range":      {"1-", 0, 9, nil, cron.ErrMalformedField},
		"bad-step":        {"1-3/x", 0, 9, nil, cron.ErrMalformedField},
		"negative-step":   {"1-3/-2", 0, 9, nil, cron.ErrMalformedField},
		"wildcard-step0":  {"*/0", 0, 9, nil, cron.ErrMalformedField},
		"range-step0":     {"1-3/0", 0, 9, nil, cron.ErrMalformedField},
		"single-step":     {"5/2", 0, 9, nil, cron.ErrMalformedField},
		"trailing-comma":  {"1,", 0, 9, nil, cron.ErrMalformedField},
		"stray-separator": {"1//2", 0, 9, nil, cron.ErrMalformedField},
	} {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := cron.NewFieldSet(tc.token, tc.min, tc.max, tc.names)
			require.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestFieldSetQueries(t *testing.T) {
	t.Parallel()

	f, err := cron.NewFieldSet("20,40,5", 0, 59, nil)
	require.NoError(t, err)

	first, ok := f.First()
	require.True(t, ok)
	require.Equal(t, 5, first)

	for _, tc := range [...]struct {
		start    int
		expected int
		ok       bool
	}{
		{0, 5, true},
		{5, 5, true},
		{6, 20, true},
		{20, 20, true},
		{21, 40, true},
		{40, 40, true},
		{41, 0, false},
		{60, 0, false},
	} {
		got, ok := f.Next(tc.start)
		require.Equal(t, tc.ok, ok, "Next(%d)", tc.start)
		require.Equal(t, tc.expected, got, "Next(%d)", tc.start)
	}

	require.True(t, f.Contains(20))
	require.False(t, f.Contains(21))
	require.False(t, f.Contains(-1))
	require.False(t, f.Contains(60))
}
