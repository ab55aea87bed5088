package timeplus

/*
instant.go implements the canonical Instant type: an absolute,
zone-free point in time expressed as signed epoch seconds plus a
sub-second nanosecond component.
*/

import "time"

const (
	nanosPerSecond int64 = 1_000_000_000
	nanosPerMilli  int64 = 1_000_000
	millisPerSec   int64 = 1_000
	secondsPerDay  int64 = 86_400
	nanosPerDay    int64 = secondsPerDay * nanosPerSecond
)

/*
Instant implements the canonical absolute point in time: signed seconds
since the Unix epoch plus a nanosecond component in [0, 1e9). Instances
of this type are zone-free by construction and totally ordered by
(seconds, nanoseconds).

The zero value of this type is the epoch itself (1970-01-01T00:00:00Z).
*/
type Instant struct {
	sec  int64
	nsec int32
}

/*
NewInstant returns an instance of [Instant] alongside an error following
an attempt to marshal x.

Accepted input types are [Instant], [time.Time], string or []byte (an
ISO 8601 instant, with epoch-millisecond digit text accepted as a
fallback), and int/int64 (epoch milliseconds).
*/
func NewInstant(x any, constraints ...Constraint[Instant]) (Instant, error) {
	var i Instant
	var err error

	switch tv := x.(type) {
	case Instant:
		i = tv
	case *Instant:
		if tv == nil {
			err = errorBadTypeForConstructor("Instant", nil)
		} else {
			i = *tv
		}
	case time.Time:
		i = Instant{sec: tv.Unix(), nsec: int32(tv.Nanosecond())}
	case string:
		i, err = instantFromText(tv)
	case []byte:
		i, err = instantFromText(string(tv))
	case int64:
		i = FromEpochMillis(tv)
	case int:
		i = FromEpochMillis(int64(tv))
	default:
		err = errorBadTypeForConstructor("Instant", x)
	}

	if len(constraints) > 0 && err == nil {
		var group ConstraintGroup[Instant] = constraints
		err = group.Constrain(i)
	}

	if err != nil {
		i = Instant{}
	}

	return i, err
}

/*
instantFromText attempts a permissive ISO 8601 instant parse first and,
should that fail, an interpretation of the text as epoch-millisecond
digits. The parse error, which carries the offending position, prevails
when both attempts fail.
*/
func instantFromText(s string) (Instant, error) {
	i, _, err := parseInstantText(s, true)
	if err == nil {
		return i, nil
	}

	if ms, perr := pint(trimS(s), 10, 64); perr == nil {
		return FromEpochMillis(ms), nil
	}

	return Instant{}, err
}

/*
Now returns the current [Instant] as read from the host clock at call
time. No handle to the clock is retained.
*/
func Now() Instant {
	t := time.Now()
	return Instant{sec: t.Unix(), nsec: int32(t.Nanosecond())}
}

/*
FromEpochMillis returns the [Instant] described by ms milliseconds
since the Unix epoch. Negative inputs floor toward earlier time so that
the nanosecond component remains in range.
*/
func FromEpochMillis(ms int64) Instant {
	return Instant{
		sec:  floorDiv(ms, millisPerSec),
		nsec: int32(floorMod(ms, millisPerSec) * nanosPerMilli),
	}
}

/*
Second returns the epoch-second component of the receiver instance.
*/
func (r Instant) Second() int64 { return r.sec }

/*
Nanosecond returns the sub-second nanosecond component of the receiver
instance, always in [0, 1e9).
*/
func (r Instant) Nanosecond() int { return int(r.nsec) }

/*
EpochMillis returns the receiver expressed as milliseconds since the
Unix epoch, truncating any sub-millisecond resolution.
*/
func (r Instant) EpochMillis() int64 {
	return r.sec*millisPerSec + int64(r.nsec)/nanosPerMilli
}

/*
Cast returns the receiver instance cast as an instance of [time.Time]
in [time.UTC].
*/
func (r Instant) Cast() time.Time {
	return time.Unix(r.sec, int64(r.nsec)).UTC()
}

/*
Compare returns -1, 0 or 1 depending on whether the receiver sorts
before, equal to, or after o.
*/
func (r Instant) Compare(o Instant) int {
	switch {
	case r.sec < o.sec:
		return -1
	case r.sec > o.sec:
		return 1
	case r.nsec < o.nsec:
		return -1
	case r.nsec > o.nsec:
		return 1
	}
	return 0
}

/*
Before returns a Boolean value indicative of the receiver preceding o.
*/
func (r Instant) Before(o Instant) bool { return r.Compare(o) < 0 }

/*
After returns a Boolean value indicative of the receiver following o.
*/
func (r Instant) After(o Instant) bool { return r.Compare(o) > 0 }

/*
Equal returns a Boolean value indicative of the receiver and o
describing the same point in time.
*/
func (r Instant) Equal(o Instant) bool { return r.Compare(o) == 0 }

/*
String returns the string representation of the receiver instance:
the UTC rendering at millisecond precision with a literal 'Z' suffix.
*/
func (r Instant) String() string { return FormatUTC(r) }

func (r Instant) epochDay() int64 { return floorDiv(r.sec, secondsPerDay) }

func (r Instant) nanoOfDay() int64 {
	return floorMod(r.sec, secondsPerDay)*nanosPerSecond + int64(r.nsec)
}

func instantAtDayNano(epochDay, nanoOfDay int64) Instant {
	return Instant{
		sec:  epochDay*secondsPerDay + nanoOfDay/nanosPerSecond,
		nsec: int32(nanoOfDay % nanosPerSecond),
	}
}

/*
plus returns the receiver shifted forward by d.
*/
func (r Instant) plus(d Duration) Instant {
	sec := r.sec + d.secs
	n := int64(r.nsec) + int64(d.nanos)
	if n >= nanosPerSecond {
		sec++
		n -= nanosPerSecond
	}
	return Instant{sec: sec, nsec: int32(n)}
}

/*
minus returns the receiver shifted backward by d.
*/
func (r Instant) minus(d Duration) Instant { return r.plus(d.Negate()) }

/*
truncatedTo drops all resolution finer than u. Truncation operates on
the nano-of-day so that instants of any magnitude stay clear of 64-bit
overflow. [Forever] is the no-truncation sentinel; units coarser than
[Days] carry no exact width and are rejected.
*/
func (r Instant) truncatedTo(u Unit) (Instant, error) {
	if u == Forever {
		return r, nil
	}

	span, ok := u.timeSpan()
	if !ok {
		return Instant{}, errorUnsupportedOperation("truncate to "+u.String(), "instant")
	}

	nod := r.nanoOfDay()
	return instantAtDayNano(r.epochDay(), nod-nod%span), nil
}

/*
durationBetween returns the exact signed span from a to b.
*/
func durationBetween(a, b Instant) Duration {
	return durationOf(b.sec-a.sec, int64(b.nsec)-int64(a.nsec))
}

/*
FormatUTC returns the ISO 8601 rendering of i in UTC at millisecond
precision, suffixed with a literal 'Z'. This is the default
interchange rendering; [ParseInstant] round-trips its output.
*/
func FormatUTC(i Instant) string {
	b := make([]byte, 0, 24)
	b = appendCivil(b, i.Cast())
	b = append(b, '.')
	b = append3(b, int(int64(i.nsec)/nanosPerMilli))
	b = append(b, 'Z')
	return string(b)
}

/*
FormatIn returns the ISO 8601 rendering of i in the supplied location
at millisecond precision, bearing an explicit numeric offset in place
of 'Z'.
*/
func FormatIn(i Instant, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	t := i.Cast().In(loc)

	b := make([]byte, 0, 29)
	b = appendCivil(b, t)
	b = append(b, '.')
	b = append3(b, int(int64(i.nsec)/nanosPerMilli))

	_, off := t.Zone()
	sign := byte('+')
	if off < 0 {
		sign = '-'
		off = -off
	}
	b = append(b, sign)
	b = append2(b, off/3600)
	b = append(b, ':')
	b = append2(b, (off%3600)/60)
	return string(b)
}

// appendCivil renders yyyy-MM-ddTHH:mm:ss with zero heap allocations
// beyond the caller's buffer.
func appendCivil(b []byte, t time.Time) []byte {
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	b = append4(b, y)
	b = append(b, '-')
	b = append2(b, int(mo))
	b = append(b, '-')
	b = append2(b, d)
	b = append(b, 'T')
	b = append2(b, h)
	b = append(b, ':')
	b = append2(b, mi)
	b = append(b, ':')
	b = append2(b, s)
	return b
}

func append2(b []byte, v int) []byte {
	return append(b, byte('0'+v/10), byte('0'+v%10))
}

func append3(b []byte, v int) []byte {
	return append(b, byte('0'+v/100), byte('0'+(v/10)%10), byte('0'+v%10))
}

func append4(b []byte, v int) []byte {
	return append(b,
		byte('0'+(v/1000)%10),
		byte('0'+(v/100)%10),
		byte('0'+(v/10)%10),
		byte('0'+v%10))
}
