package calendar

// WorkingDaysBetween returns the signed number of working days landed on
// while walking one calendar day at a time from `from` to `to`.
//
// Each step moves one day toward `to`; the day stepped onto is counted if
// it is a working day. `from` itself is never counted, `to` is counted when
// it is a working day. The result is positive when to is after from,
// negative when before and zero when they are the same day.
func (c *Calendar) WorkingDaysBetween(from, to Date) int {
	dir := 1
	if to.Before(from) {
		dir = -1
	}

	count := 0
	for cur := from; cur != to; {
		cur = cur.AddDays(dir)
		if c.IsWorkingDay(cur) {
			count++
		}
	}
	return count * dir
}

// Shift returns the date reached by stepping n working days from d,
// forward for positive n and backward for negative n. Non-working days
// are stepped over without being counted. Shift(d, 0) returns d even when
// d is not a working day.
func (c *Calendar) Shift(d Date, n int) Date {
	dir := 1
	if n < 0 {
		dir = -1
		n = -n
	}

	cur := d
	for shifted := 0; shifted < n; {
		cur = cur.AddDays(dir)
		if c.IsWorkingDay(cur) {
			shifted++
		}
	}
	return cur
}
