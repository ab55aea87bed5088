package timeplus

/*
duration.go implements the canonical Duration type: a signed span of
time expressed as seconds plus a sub-second nanosecond component.
*/

import (
	"math/big"
	"time"
)

/*
Amount is qualified through any foreign span type which can decompose
itself into total seconds plus a nanosecond remainder. Values bearing
this interface coerce to [Duration] without further ceremony.
*/
type Amount interface {
	Span() (secs int64, nanos int)
}

/*
Duration implements the canonical signed time span: seconds plus a
nanosecond component held in [0, 1e9). The sign of the span is carried
by the seconds field; a negative span is expressed as negative seconds
with adjusted nanoseconds, never as negative nanoseconds.

The zero value of this type is the zero-width span.
*/
type Duration struct {
	secs  int64
	nanos int32
}

/*
durationOf normalizes an arbitrary (seconds, nanoseconds) pair into
the canonical representation.
*/
func durationOf(secs, nanos int64) Duration {
	secs += floorDiv(nanos, nanosPerSecond)
	return Duration{secs: secs, nanos: int32(floorMod(nanos, nanosPerSecond))}
}

/*
millisDuration returns the [Duration] describing ms milliseconds. Zero
maps to the zero duration.
*/
func millisDuration(ms int64) Duration {
	return Duration{
		secs:  floorDiv(ms, millisPerSec),
		nanos: int32(floorMod(ms, millisPerSec) * nanosPerMilli),
	}
}

/*
NewDuration returns an instance of [Duration] alongside an error
following an attempt to marshal x.

Accepted input types are [Duration], [time.Duration], any [Amount],
string or []byte (a strict [ISO 8601] duration of the PnDTnHnMn.nS
form, with integer-millisecond digit text accepted as a fallback),
int/int64 (milliseconds; zero maps to the zero duration, not an absent
value), and nil (the zero duration).

[ISO 8601]: https://www.iso.org/iso-8601-date-and-time-format.html
*/
func NewDuration(x any, constraints ...Constraint[Duration]) (Duration, error) {
	var d Duration
	var err error

	switch tv := x.(type) {
	case nil:
		// absence is the identity element
	case Duration:
		d = tv
	case *Duration:
		if tv != nil {
			d = *tv
		}
	case time.Duration:
		d = durationOf(0, int64(tv))
	case Amount:
		if isNilAny(tv) {
			break
		}
		s, n := tv.Span()
		d = durationOf(s, int64(n))
	case string:
		d, err = durationFromText(tv)
	case []byte:
		d, err = durationFromText(string(tv))
	case int64:
		d = millisDuration(tv)
	case int:
		d = millisDuration(int64(tv))
	default:
		err = errorBadTypeForConstructor("Duration", x)
	}

	if len(constraints) > 0 && err == nil {
		var group ConstraintGroup[Duration] = constraints
		err = group.Constrain(d)
	}

	if err != nil {
		d = Duration{}
	}

	return d, err
}

/*
durationFromText attempts a strict ISO 8601 duration parse first and,
should that fail, an interpretation of the text as integer millisecond
digits. The duration parse error prevails when both attempts fail.
*/
func durationFromText(s string) (Duration, error) {
	d, err := parseISODuration(s)
	if err == nil {
		return d, nil
	}

	if ms, perr := pint(trimS(s), 10, 64); perr == nil {
		return millisDuration(ms), nil
	}

	return Duration{}, err
}

/*
Span returns the total-seconds and nanosecond decomposition of the
receiver instance, qualifying [Amount].
*/
func (r Duration) Span() (int64, int) { return r.secs, int(r.nanos) }

/*
Seconds returns the seconds component of the receiver instance.
*/
func (r Duration) Seconds() int64 { return r.secs }

/*
Nanoseconds returns the sub-second nanosecond component of the
receiver instance, always in [0, 1e9).
*/
func (r Duration) Nanoseconds() int { return int(r.nanos) }

/*
Millis returns the receiver expressed as total milliseconds,
truncating sub-millisecond resolution toward negative infinity.
*/
func (r Duration) Millis() int64 {
	return r.secs*millisPerSec + int64(r.nanos)/nanosPerMilli
}

/*
IsZero returns a Boolean value indicative of the receiver describing
the zero-width span.
*/
func (r Duration) IsZero() bool { return r.secs == 0 && r.nanos == 0 }

/*
IsNegative returns a Boolean value indicative of the receiver
describing a span of negative width.
*/
func (r Duration) IsNegative() bool { return r.secs < 0 }

/*
LessThan returns a Boolean value indicative of the receiver describing
a narrower span than o.
*/
func (r Duration) LessThan(o Duration) bool {
	if r.secs != o.secs {
		return r.secs < o.secs
	}
	return r.nanos < o.nanos
}

/*
Equal returns a Boolean value indicative of the receiver and o
describing spans of identical width.
*/
func (r Duration) Equal(o Duration) bool {
	return r.secs == o.secs && r.nanos == o.nanos
}

/*
Add returns the sum of the receiver and o.
*/
func (r Duration) Add(o Duration) Duration {
	return durationOf(r.secs+o.secs, int64(r.nanos)+int64(o.nanos))
}

/*
Negate returns the receiver with its sign inverted.
*/
func (r Duration) Negate() Duration {
	return durationOf(-r.secs, -int64(r.nanos))
}

func (r Duration) totalNanosBig() *big.Int {
	t := newBigInt(r.secs)
	t.Mul(t, bigNanosPerSecond)
	return t.Add(t, newBigInt(int64(r.nanos)))
}

var bigNanosPerSecond = newBigInt(nanosPerSecond)

func durationFromBigNanos(n *big.Int) (Duration, error) {
	q, m := new(big.Int).DivMod(n, bigNanosPerSecond, new(big.Int))
	if !q.IsInt64() {
		return Duration{}, errorDurationOverflow
	}
	return Duration{secs: q.Int64(), nanos: int32(m.Int64())}, nil
}

/*
Multiply returns the receiver scaled by n. The intermediate product is
computed at arbitrary precision so that sub-second carry never wraps; a
result whose seconds exceed the representable range is an error rather
than a silent truncation.
*/
func (r Duration) Multiply(n int64) (Duration, error) {
	t := r.totalNanosBig()
	return durationFromBigNanos(t.Mul(t, newBigInt(n)))
}

/*
divideByScalar returns the receiver divided by n, truncating toward
zero. Division by zero is the caller's burden to reject.
*/
func (r Duration) divideByScalar(n int64) (Duration, error) {
	q := new(big.Int).Quo(r.totalNanosBig(), newBigInt(n))
	// re-normalize through DivMod so nanos lands back in range
	return durationFromBigNanos(q)
}

/*
divideByDuration returns the whole number of times o fits within the
receiver, truncating toward zero.
*/
func (r Duration) divideByDuration(o Duration) int64 {
	q := new(big.Int).Quo(r.totalNanosBig(), o.totalNanosBig())
	return q.Int64()
}

/*
truncatedTo drops all resolution finer than u, truncating toward zero.
[Forever] is the no-truncation sentinel; units coarser than [Days]
carry no exact width and are rejected.
*/
func (r Duration) truncatedTo(u Unit) (Duration, error) {
	if u == Forever {
		return r, nil
	}

	span, ok := u.timeSpan()
	if !ok {
		return Duration{}, errorUnsupportedOperation("truncate to "+u.String(), "duration")
	}

	q := new(big.Int).Quo(r.totalNanosBig(), newBigInt(span))
	return durationFromBigNanos(q.Mul(q, newBigInt(span)))
}

/*
String returns the string representation of the receiver instance in
the [ISO 8601] PnDTnHnMn.nS designator form, e.g. "P2DT3H4M0.5S". The
zero duration renders as "PT0S"; negative spans bear a leading '-'.

[ISO 8601]: https://www.iso.org/iso-8601-date-and-time-format.html
*/
func (r Duration) String() string {
	d := r
	b := newStrBuilder()
	if d.IsNegative() {
		b.WriteByte('-')
		d = d.Negate()
	}
	b.WriteByte('P')

	days := d.secs / secondsPerDay
	rem := d.secs % secondsPerDay
	hours := rem / 3600
	mins := (rem % 3600) / 60
	secs := rem % 60

	if days > 0 {
		b.WriteString(fmtInt(days, 10))
		b.WriteByte('D')
	}

	if hours == 0 && mins == 0 && secs == 0 && d.nanos == 0 {
		if days == 0 {
			b.WriteString("T0S")
		}
		return b.String()
	}

	b.WriteByte('T')
	if hours > 0 {
		b.WriteString(fmtInt(hours, 10))
		b.WriteByte('H')
	}
	if mins > 0 {
		b.WriteString(fmtInt(mins, 10))
		b.WriteByte('M')
	}
	if secs > 0 || d.nanos > 0 {
		b.WriteString(fmtInt(secs, 10))
		if d.nanos > 0 {
			b.WriteByte('.')
			frac := fmtInt(int64(d.nanos)+nanosPerSecond, 10)[1:]
			for hasSfx(frac, "0") {
				frac = frac[:len(frac)-1]
			}
			b.WriteString(frac)
		}
		b.WriteByte('S')
	}

	return b.String()
}

/*
parseISODuration parses the strict PnDTnHnMn.nS designator form: an
optional leading '-', a mandatory 'P', an optional day component, and
an optional 'T' section bearing hour, minute and fractional-second
components in that order. At least one component must be present; week,
month and year designators are extensions and are rejected.
*/
func parseISODuration(s string) (Duration, error) {
	orig := s
	var neg bool
	if hasPfx(s, "-") {
		neg = true
		s = s[1:]
	}

	if len(s) == 0 || s[0] != 'P' {
		return Duration{}, errorMalformedDuration(orig)
	}
	s = s[1:]

	var datePart, timePart string
	if i := stridxb(s, 'T'); i >= 0 {
		datePart = s[:i]
		timePart = s[i+1:]
		if len(timePart) == 0 {
			return Duration{}, errorMalformedDuration(orig)
		}
	} else {
		datePart = s
	}

	var days, hours, mins, secs, frac int64
	var seen bool

	if len(datePart) > 0 {
		n, rest, err := scanDesignator(datePart, 'D')
		if err != nil || len(rest) > 0 {
			return Duration{}, errorMalformedDuration(orig)
		}
		days = n
		seen = true
	}

	if len(timePart) > 0 {
		rest := timePart
		var n int64
		var err error

		if n, rest, err = scanDesignator(rest, 'H'); err == nil {
			hours = n
			seen = true
		}
		if n, rest, err = scanDesignator(rest, 'M'); err == nil {
			mins = n
			seen = true
		}
		var fn int64
		if n, fn, rest, err = scanFractionalDesignator(rest, 'S'); err == nil {
			secs, frac = n, fn
			seen = true
		}
		if len(rest) > 0 {
			return Duration{}, errorMalformedDuration(orig)
		}
	}

	if !seen {
		return Duration{}, errorMalformedDuration(orig)
	}

	d := durationOf(days*secondsPerDay+hours*3600+mins*60+secs, frac)
	if neg {
		d = d.Negate()
	}

	return d, nil
}

/*
scanDesignator reads leading digits terminated by the designator
suffix, returning the remainder of the string. A missing designator is
reported as an error with the input returned intact, letting the
caller treat the component as absent.
*/
func scanDesignator(s string, suffix byte) (int64, string, error) {
	var i int
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == 0 || i >= len(s) || s[i] != suffix {
		return 0, s, mkerrf("missing designator ", string(rune(suffix)))
	}

	n, err := pint(s[:i], 10, 64)
	if err != nil {
		return 0, s, err
	}
	return n, s[i+1:], nil
}

/*
scanFractionalDesignator is scanDesignator extended with an optional
fraction of up to nine digits, returned as nanoseconds.
*/
func scanFractionalDesignator(s string, suffix byte) (int64, int64, string, error) {
	var i int
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == 0 {
		return 0, 0, s, mkerrf("missing designator ", string(rune(suffix)))
	}

	whole, err := pint(s[:i], 10, 64)
	if err != nil {
		return 0, 0, s, err
	}

	var frac int64
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		digits := j - (i + 1)
		if digits == 0 || digits > 9 {
			return 0, 0, s, mkerr("invalid fraction")
		}
		frac, _ = pint(s[i+1:j], 10, 64)
		frac *= pow10(9 - digits)
		i = j
	}

	if i >= len(s) || s[i] != suffix {
		return 0, 0, s, mkerrf("missing designator ", string(rune(suffix)))
	}

	return whole, frac, s[i+1:], nil
}
