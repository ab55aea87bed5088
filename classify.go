package timeplus

/*
classify.go contains the category classifier: the closed tagged
variant into which every supported input representation is placed
prior to coercion, transformation or arithmetic.
*/

import "time"

type variantKind uint8

/*
Classification categories, ordered most-specific-first. Canonical
types pass through untagged as themselves; zone- or calendar-bearing
structural types are never widened to a generic "temporal"; raw
integers and raw text are classified last since their meaning is
ambiguous until parsed.
*/
const (
	kindUnknown variantKind = iota
	kindInstant
	kindDuration
	kindZoned
	kindOffset
	kindLocalDateTime
	kindLocalDate
	kindLocalTime
	kindYear
	kindYearMonth
	kindCalendar
	kindAmount
	kindEpochMillis
	kindText
	kindNil
)

var variantKindNames = map[variantKind]string{
	kindUnknown:       "unrecognized",
	kindInstant:       "instant",
	kindDuration:      "duration",
	kindZoned:         "zoned value",
	kindOffset:        "offset value",
	kindLocalDateTime: "local date-time",
	kindLocalDate:     "local date",
	kindLocalTime:     "local time",
	kindYear:          "year",
	kindYearMonth:     "year-month",
	kindCalendar:      "calendar date",
	kindAmount:        "amount",
	kindEpochMillis:   "epoch milliseconds",
	kindText:          "text",
	kindNil:           "absent",
}

func (r variantKind) String() string {
	if s, ok := variantKindNames[r]; ok {
		return s
	}
	return "unrecognized"
}

/*
TemporalVariant implements the tagged union of all categories known to
[Classify]. Instances of this type are produced per operation and
never retained.
*/
type TemporalVariant struct {
	kind variantKind

	in  Instant
	du  Duration
	tm  time.Time
	ldt LocalDateTime
	ld  LocalDate
	lt  LocalTime
	yr  Year
	ym  YearMonth
	cd  CalendarDate
	ms  int64
	txt string

	src any
}

/*
Category returns the name of the category into which the classified
input was placed, e.g. "instant", "zoned value", "local date".
*/
func (r TemporalVariant) Category() string { return r.kind.String() }

/*
Value returns the original input value residing within the receiver
instance.
*/
func (r TemporalVariant) Value() any { return r.src }

/*
IsZero returns a Boolean value indicative of the receiver being
unpopulated.
*/
func (r TemporalVariant) IsZero() bool { return r.kind == kindUnknown && r.src == nil }

/*
Classify places an arbitrary input value into its temporal category.
The function is pure; the only failure mode is [ErrUnclassifiable],
returned for any input belonging to no known category.
*/
func Classify(x any) (TemporalVariant, error) {
	if isNilAny(x) {
		return TemporalVariant{kind: kindNil}, nil
	}

	switch tv := x.(type) {
	case TemporalVariant:
		return tv, nil
	case Instant:
		return TemporalVariant{kind: kindInstant, in: tv, src: x}, nil
	case *Instant:
		return TemporalVariant{kind: kindInstant, in: *tv, src: x}, nil
	case Duration:
		return TemporalVariant{kind: kindDuration, du: tv, src: x}, nil
	case *Duration:
		return TemporalVariant{kind: kindDuration, du: *tv, src: x}, nil
	case time.Time:
		return classifyTime(tv), nil
	case *time.Time:
		return classifyTime(*tv), nil
	case LocalDateTime:
		return TemporalVariant{kind: kindLocalDateTime, ldt: tv, src: x}, nil
	case LocalDate:
		return TemporalVariant{kind: kindLocalDate, ld: tv, src: x}, nil
	case LocalTime:
		return TemporalVariant{kind: kindLocalTime, lt: tv, src: x}, nil
	case Year:
		return TemporalVariant{kind: kindYear, yr: tv, src: x}, nil
	case YearMonth:
		return TemporalVariant{kind: kindYearMonth, ym: tv, src: x}, nil
	case CalendarDate:
		return TemporalVariant{kind: kindCalendar, cd: tv, src: x}, nil
	case time.Duration:
		return TemporalVariant{kind: kindDuration, du: durationOf(0, int64(tv)), src: x}, nil
	case Amount:
		s, n := tv.Span()
		return TemporalVariant{kind: kindAmount, du: durationOf(s, int64(n)), src: x}, nil
	case int64:
		return TemporalVariant{kind: kindEpochMillis, ms: tv, src: x}, nil
	case int:
		return TemporalVariant{kind: kindEpochMillis, ms: int64(tv), src: x}, nil
	case string:
		return TemporalVariant{kind: kindText, txt: tv, src: x}, nil
	case []byte:
		return TemporalVariant{kind: kindText, txt: string(tv), src: x}, nil
	}

	return TemporalVariant{kind: kindUnknown, src: x}, errorUnclassifiable(x)
}

/*
classifyTime places a [time.Time] into the zoned or offset category.
A location bearing a name resembling a fixed numeric offset is an
offset value; anything else, UTC and named zones included, is zoned.
Either way the location itself is captured opaquely.
*/
func classifyTime(t time.Time) TemporalVariant {
	kind := kindZoned
	name := t.Location().String()
	if name == "" || hasPfx(name, "+") || hasPfx(name, "-") ||
		hasPfx(name, "UTC+") || hasPfx(name, "UTC-") {
		kind = kindOffset
	}
	return TemporalVariant{kind: kind, tm: t, src: t}
}
