package timeplus

/*
arith.go implements the uniform arithmetic engine: add, subtract,
multiply, divide, negate, truncate, until and field access over
canonical values or any classifiable input, with the round-trip
transform preserving the caller's original representation.
*/

import "time"

/*
instantLike reports whether k denotes an absolute point in time rather
than a span. Scalar operations are undefined on such categories.
*/
func instantLike(k variantKind) bool {
	switch k {
	case kindInstant, kindZoned, kindOffset, kindLocalDateTime,
		kindLocalDate, kindLocalTime, kindYear, kindYearMonth, kindCalendar:
		return true
	}
	return false
}

/*
Add returns x shifted forward by y.

An instant-like x takes a duration-like y and returns a value of x's
original category; a duration-like x takes another duration-like y and
returns their [Duration] sum. A nil x behaves as the identity element:
Add(nil, y) is the duration coercion of y.
*/
func Add(x, y any) (any, error) {
	return shift(x, y, false)
}

/*
Subtract returns x shifted backward by y.

The operand rules mirror [Add]; Subtract(nil, y) is the negated
duration coercion of y.
*/
func Subtract(x, y any) (any, error) {
	return shift(x, y, true)
}

/*
shift implements Add and Subtract as one ordered dispatch: absent LHS
first, then span arithmetic, then the transform/apply round trip, with
duration text given one further attempt before failing.
*/
func shift(x, y any, negate bool) (any, error) {
	if isNilAny(x) {
		d, err := ToDuration(y)
		if err == nil && negate {
			d = d.Negate()
		}
		if err != nil {
			return nil, err
		}
		return d, nil
	}

	v, err := Classify(x)
	if err != nil {
		return nil, err
	}

	if v.kind == kindDuration || v.kind == kindAmount {
		var rhs Duration
		if rhs, err = ToDuration(y); err != nil {
			return nil, err
		}
		if negate {
			rhs = rhs.Negate()
		}
		return v.du.Add(rhs), nil
	}

	i, inv, terr := transformVariant(v)
	if terr != nil {
		// textual spans are not instant-parseable; give the duration
		// reading one attempt before surfacing the original failure
		if v.kind == kindText {
			if lhs, derr := durationFromText(v.txt); derr == nil {
				rhs, rerr := ToDuration(y)
				if rerr != nil {
					return nil, rerr
				}
				if negate {
					rhs = rhs.Negate()
				}
				return lhs.Add(rhs), nil
			}
		}
		return nil, terr
	}

	d, err := ToDuration(y)
	if err != nil {
		return nil, err
	}
	if negate {
		d = d.Negate()
	}

	return inv.Apply(i.plus(d))
}

/*
Multiply returns the [Duration] view of x scaled by factor. A point in
time has no meaningful scalar product, so any instant-like x fails
with [ErrUnsupportedOperation]; any other non-duration x is first
coerced to [Duration], with a coercion failure surfacing as such. A
nil x yields the zero duration.
*/
func Multiply(x any, factor int64) (Duration, error) {
	d, err := scalarOperand(x, "multiply")
	if err != nil {
		return Duration{}, err
	}
	return d.Multiply(factor)
}

/*
Negate returns the [Duration] view of x with its sign inverted. The
operand rules mirror [Multiply]; a nil x yields the zero duration.
*/
func Negate(x any) (Duration, error) {
	d, err := scalarOperand(x, "negate")
	if err != nil {
		return Duration{}, err
	}
	return d.Negate(), nil
}

/*
Divide returns x divided by the operand "by".

An integer "by" is a scalar divisor and yields a [Duration]; a
duration-like "by" yields the whole number of times it fits within x
(duration-ratio division) as an int64. A zero divisor of either form,
the zero-by-zero case included, fails with [ErrDivisionByZero]. The
operand rules for x mirror [Multiply].
*/
func Divide(x, by any) (any, error) {
	d, err := scalarOperand(x, "divide")
	if err != nil {
		return nil, err
	}

	var scalar int64
	switch tv := by.(type) {
	case int:
		scalar = int64(tv)
	case int64:
		scalar = tv
	default:
		od, oerr := ToDuration(by)
		if oerr != nil {
			return nil, oerr
		}
		if od.IsZero() {
			return nil, errorDivisionByZero
		}
		return d.divideByDuration(od), nil
	}

	if scalar == 0 {
		return nil, errorDivisionByZero
	}
	q, err := d.divideByScalar(scalar)
	if err != nil {
		return nil, err
	}
	return q, nil
}

/*
scalarOperand coerces the left operand of a scalar operation to
[Duration], rejecting instant-like categories outright.
*/
func scalarOperand(x any, op string) (Duration, error) {
	if isNilAny(x) {
		return Duration{}, nil
	}

	v, err := Classify(x)
	if err != nil {
		return Duration{}, err
	}
	if instantLike(v.kind) {
		return Duration{}, errorUnsupportedOperation(op, "instant")
	}

	return v.toDuration()
}

/*
TruncateTo returns x with all resolution finer than the referenced
unit dropped. Non-canonical instant-like categories round-trip through
the transform so the caller's original representation is preserved.
Truncation is idempotent; [Forever] is the no-truncation sentinel, and
units coarser than [Days] fail with [ErrUnsupportedOperation]. A nil x
yields the zero duration.
*/
func TruncateTo(x, unit any) (any, error) {
	u, err := ResolveUnit(unit)
	if err != nil {
		return nil, err
	}

	if isNilAny(x) {
		return Duration{}, nil
	}

	v, err := Classify(x)
	if err != nil {
		return nil, err
	}

	if v.kind == kindDuration || v.kind == kindAmount {
		return v.du.truncatedTo(u)
	}

	i, inv, err := transformVariant(v)
	if err != nil {
		// same courtesy as shift: textual spans get one duration reading
		if v.kind == kindText {
			if d, derr := durationFromText(v.txt); derr == nil {
				return d.truncatedTo(u)
			}
		}
		return nil, err
	}

	ti, err := i.truncatedTo(u)
	if err != nil {
		return nil, err
	}

	return inv.Apply(ti)
}

/*
Until returns the whole number of the referenced units elapsed from a
to b, truncating toward zero. Both operands may be any instant-like
classifiable input. Units coarser than [Days] carry no exact width on
an instant and fail with [ErrUnsupportedOperation].
*/
func Until(a, b, unit any) (int64, error) {
	u, err := ResolveUnit(unit)
	if err != nil {
		return 0, err
	}

	span, ok := u.timeSpan()
	if !ok {
		return 0, errorUnsupportedOperation("until in "+u.String(), "instant")
	}

	ia, err := ToInstant(a)
	if err != nil {
		return 0, err
	}
	ib, err := ToInstant(b)
	if err != nil {
		return 0, err
	}

	return durationBetween(ia, ib).divideByDuration(durationOf(0, span)), nil
}

/*
GetField returns the referenced calendar/clock field extracted from
the UTC civil decomposition of x's instant view. Calendar math is
delegated to the [time] package.
*/
func GetField(x, field any) (int64, error) {
	f, err := ResolveField(field)
	if err != nil {
		return 0, err
	}

	i, err := ToInstant(x)
	if err != nil {
		return 0, err
	}

	t := i.Cast()
	switch f {
	case NanoOfSecond:
		return int64(i.nsec), nil
	case MicroOfSecond:
		return int64(i.nsec) / 1_000, nil
	case MilliOfSecond:
		return int64(i.nsec) / nanosPerMilli, nil
	case NanoOfDay:
		return i.nanoOfDay(), nil
	case MilliOfDay:
		return i.nanoOfDay() / nanosPerMilli, nil
	case SecondOfMinute:
		return int64(t.Second()), nil
	case SecondOfDay:
		return floorMod(i.sec, secondsPerDay), nil
	case MinuteOfHour:
		return int64(t.Minute()), nil
	case MinuteOfDay:
		return floorMod(i.sec, secondsPerDay) / 60, nil
	case HourOfDay:
		return int64(t.Hour()), nil
	case DayOfWeek:
		if wd := int64(t.Weekday()); wd != 0 {
			return wd, nil
		}
		return 7, nil // ISO numbering: Sunday is 7
	case DayOfMonth:
		return int64(t.Day()), nil
	case DayOfYear:
		return int64(t.YearDay()), nil
	case MonthOfYear:
		return int64(t.Month()), nil
	case YearOfEra:
		return int64(t.Year()), nil
	case EpochDay:
		return i.epochDay(), nil
	case InstantSeconds:
		return i.sec, nil
	}

	return 0, errorUnknownField(field)
}

/*
WithField returns x with the referenced field overwritten by v, all
other fields preserved. Non-canonical categories round-trip through
the transform so the caller's original representation is preserved.
Values outside the field's legal range, and calendar-invalid results
such as day 30 of February, are rejected.
*/
func WithField(x, field any, v int64) (any, error) {
	f, err := ResolveField(field)
	if err != nil {
		return nil, err
	}

	if cerr := FieldRangeConstraint(f)(v); cerr != nil {
		return nil, errorFieldValueOutOfRange(f, v)
	}

	i, inv, err := Transform(x)
	if err != nil {
		return nil, err
	}

	ni, err := i.withField(f, v)
	if err != nil {
		return nil, err
	}

	return inv.Apply(ni)
}

/*
withField overwrites one field of the receiver's UTC civil
decomposition, delegating calendar normalization and validity to the
[time] package.
*/
func (r Instant) withField(f Field, v int64) (Instant, error) {
	t := r.Cast()
	y, mo, d := t.Date()
	h, mi, s := t.Clock()

	civil := func(t2 time.Time) Instant {
		return Instant{sec: t2.Unix(), nsec: int32(t2.Nanosecond())}
	}

	switch f {
	case NanoOfSecond:
		return Instant{sec: r.sec, nsec: int32(v)}, nil
	case MicroOfSecond:
		return Instant{sec: r.sec, nsec: int32(v * 1_000)}, nil
	case MilliOfSecond:
		return Instant{sec: r.sec, nsec: int32(v * nanosPerMilli)}, nil
	case NanoOfDay:
		return instantAtDayNano(r.epochDay(), v), nil
	case MilliOfDay:
		return instantAtDayNano(r.epochDay(), v*nanosPerMilli), nil
	case SecondOfMinute:
		return Instant{sec: r.sec + v - int64(s), nsec: r.nsec}, nil
	case SecondOfDay:
		return Instant{sec: r.epochDay()*secondsPerDay + v, nsec: r.nsec}, nil
	case MinuteOfHour:
		return Instant{sec: r.sec + (v-int64(mi))*60, nsec: r.nsec}, nil
	case MinuteOfDay:
		nod := v*60*nanosPerSecond + int64(s)*nanosPerSecond + int64(r.nsec)
		return instantAtDayNano(r.epochDay(), nod), nil
	case HourOfDay:
		return Instant{sec: r.sec + (v-int64(h))*3_600, nsec: r.nsec}, nil
	case DayOfWeek:
		cur := int64(t.Weekday())
		if cur == 0 {
			cur = 7
		}
		return Instant{sec: r.sec + (v-cur)*secondsPerDay, nsec: r.nsec}, nil
	case DayOfMonth:
		t2 := time.Date(y, mo, int(v), h, mi, s, int(r.nsec), time.UTC)
		if int64(t2.Day()) != v {
			return Instant{}, errorFieldValueOutOfRange(f, v)
		}
		return civil(t2), nil
	case DayOfYear:
		t2 := time.Date(y, time.January, int(v), h, mi, s, int(r.nsec), time.UTC)
		if int64(t2.YearDay()) != v {
			return Instant{}, errorFieldValueOutOfRange(f, v)
		}
		return civil(t2), nil
	case MonthOfYear:
		t2 := time.Date(y, time.Month(v), d, h, mi, s, int(r.nsec), time.UTC)
		if int64(t2.Month()) != v || t2.Day() != d {
			return Instant{}, errorFieldValueOutOfRange(f, v)
		}
		return civil(t2), nil
	case YearOfEra:
		t2 := time.Date(int(v), mo, d, h, mi, s, int(r.nsec), time.UTC)
		if t2.Month() != mo || t2.Day() != d {
			return Instant{}, errorFieldValueOutOfRange(f, v)
		}
		return civil(t2), nil
	case EpochDay:
		return instantAtDayNano(v, r.nanoOfDay()), nil
	case InstantSeconds:
		return Instant{sec: v, nsec: r.nsec}, nil
	}

	return Instant{}, errorUnknownField(f)
}

/*
EpochMillis returns the epoch-millisecond decomposition of x's instant
view: the recommended interchange form for output consumable by other
systems.
*/
func EpochMillis(x any) (int64, error) {
	i, err := ToInstant(x)
	if err != nil {
		return 0, err
	}
	return i.EpochMillis(), nil
}
