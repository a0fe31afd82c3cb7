package cron

import "time"

// EndOfTime is the default exclusive upper bound for a search: the largest
// instant the calendar arithmetic is defined over.
var EndOfTime = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC) //nolint:gochecknoglobals

// cursor holds the candidate calendar fields during a search. Fields may
// temporarily hold out-of-domain values (second 60, day 32, month 13); the
// per-field resolution turns those into carries.
type cursor struct {
	year, month, day, hour, minute, second int
}

func cursorAt(t time.Time) cursor {
	return cursor{t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second()}
}

// resetClock rewinds the time-of-day fields to their first allowed values.
func (c *cursor) resetClock(s Schedule) {
	c.second = s.Second.first()
	c.minute = s.Minute.first()
	c.hour = s.Hour.first()
}

// dateAtOrAfter reports whether the cursor's (year, month, day) has reached
// the calendar date of t. The cursor's day may be calendar-invalid here; the
// comparison is purely positional.
func (c cursor) dateAtOrAfter(t time.Time) bool {
	y, m, d := t.Date()
	switch {
	case c.year != y:
		return c.year > y
	case c.month != int(m):
		return c.month > int(m)
	default:
		return c.day >= d
	}
}

func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Next returns the earliest instant strictly after start that satisfies all
// six fields, or end unchanged when no such instant exists before it. The
// result is built in start's location; no zone conversion happens.
func (s Schedule) Next(start, end time.Time) time.Time {
	loc := start.Location()

	// The floor is exclusive: begin one second past it.
	floor := cursorAt(start)
	floor.second++

	for {
		cur, ok := s.resolve(floor, end)
		if !ok {
			return end
		}

		candidate := time.Date(cur.year, time.Month(cur.month), cur.day,
			cur.hour, cur.minute, cur.second, 0, loc)
		if !candidate.Before(end) {
			return end
		}
		if s.Dow.Contains(int(candidate.Weekday())) {
			return candidate
		}

		// Wrong weekday: advance the search floor to the start of the
		// candidate's next day and try again. The raw day+1 may not exist in
		// the month; resolution carries it.
		floor = cursor{cur.year, cur.month, cur.day + 1, 0, 0, 0}
	}
}

// resolve advances the floor cursor field by field, carrying exhausted fields
// upward, until the five non-weekday fields and the calendar agree. It
// reports false when the search ran into end while skipping impossible
// day/month combinations.
func (s Schedule) resolve(floor cursor, end time.Time) (cursor, bool) {
	cur := floor

	if v, ok := s.Second.Next(cur.second); ok {
		cur.second = v
	} else {
		cur.second = s.Second.first()
		cur.minute++
	}

	if v, ok := s.Minute.Next(cur.minute); ok {
		cur.minute = v
	} else {
		cur.minute = s.Minute.first()
		cur.hour++
	}
	if cur.minute > floor.minute {
		cur.second = s.Second.first()
	}

	if v, ok := s.Hour.Next(cur.hour); ok {
		cur.hour = v
	} else {
		cur.hour = s.Hour.first()
		cur.day++
	}
	if cur.hour > floor.hour {
		cur.second = s.Second.first()
		cur.minute = s.Minute.first()
	}

	// Day and month roll together: a resolved day may not exist in the
	// resolved month (February 30th), which exhausts the day all over again.
	exhausted := false
	for {
		if v, ok := s.Dom.Next(cur.day); ok && !exhausted {
			cur.day = v
		} else {
			exhausted = false
			cur.resetClock(s)
			cur.day = s.Dom.first()
			cur.month++
		}
		if cur.day > floor.day {
			cur.resetClock(s)
		}

		if v, ok := s.Month.Next(cur.month); ok {
			cur.month = v
		} else {
			cur.resetClock(s)
			cur.day = s.Dom.first()
			cur.month = s.Month.first()
			cur.year++
		}
		if cur.month > floor.month {
			cur.resetClock(s)
			cur.day = s.Dom.first()
		}

		if cur.day <= daysIn(cur.year, cur.month) {
			return cur, true
		}
		if cur.dateAtOrAfter(end) {
			return cur, false
		}
		exhausted = true
	}
}

// NextFire parses expr and returns the earliest instant strictly after start
// that matches it. The search stops at end, which is returned unchanged when
// no match exists before it; a zero end means EndOfTime. A fresh Schedule is
// built on every call. Callers searching from the present pass time.Now() as
// start.
func NextFire(expr string, start, end time.Time) (time.Time, error) {
	s, err := Parse(expr)
	if err != nil {
		return time.Time{}, err
	}
	if end.IsZero() {
		end = EndOfTime
	}
	return s.Next(start, end), nil
}
