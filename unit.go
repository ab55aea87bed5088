package timeplus

/*
unit.go contains the enumerated Unit and Field types alongside the
frozen symbolic alias registry through which either may be referenced
by short code, native name or keyword.
*/

/*
Unit implements an enumerated temporal granularity, ordered from the
finest ([Nanoseconds]) to the coarsest ([Forever]). Instances of this
type govern truncation, duration decomposition and "until" counting.

The zero value of this type is invalid.
*/
type Unit int

const (
	invalidUnit Unit = iota
	Nanoseconds
	Microseconds
	Milliseconds
	Seconds
	Minutes
	Hours
	HalfDays
	Days
	Weeks
	Months
	Years
	Decades
	Centuries
	Millennia
	Eras
	Forever
)

var unitNames = map[Unit]string{
	Nanoseconds:  "nanoseconds",
	Microseconds: "microseconds",
	Milliseconds: "milliseconds",
	Seconds:      "seconds",
	Minutes:      "minutes",
	Hours:        "hours",
	HalfDays:     "half-days",
	Days:         "days",
	Weeks:        "weeks",
	Months:       "months",
	Years:        "years",
	Decades:      "decades",
	Centuries:    "centuries",
	Millennia:    "millennia",
	Eras:         "eras",
	Forever:      "forever",
}

/*
String returns the canonical name of the receiver instance.
*/
func (r Unit) String() string {
	if s, ok := unitNames[r]; ok {
		return s
	}
	return "invalid-unit"
}

/*
Keyword returns the canonical symbolic keyword alias of the receiver
instance (the canonical name bearing a leading colon).
*/
func (r Unit) Keyword() string { return ":" + r.String() }

/*
IsValid returns a Boolean value indicative of the receiver being a
known member of the [Unit] enumeration.
*/
func (r Unit) IsValid() bool {
	_, ok := unitNames[r]
	return ok
}

/*
timeSpan returns the exact width of the receiver in nanoseconds. Units
coarser than [Days] have no exact width on the canonical timeline and
return false.
*/
func (r Unit) timeSpan() (int64, bool) {
	switch r {
	case Nanoseconds:
		return 1, true
	case Microseconds:
		return 1_000, true
	case Milliseconds:
		return 1_000_000, true
	case Seconds:
		return 1_000_000_000, true
	case Minutes:
		return 60_000_000_000, true
	case Hours:
		return 3_600_000_000_000, true
	case HalfDays:
		return 43_200_000_000_000, true
	case Days:
		return 86_400_000_000_000, true
	}
	return 0, false
}

/*
Field implements an enumerated calendar/clock component (e.g. the
day-of-year) used for extraction and "with" mutation. Fields are
distinct from [Unit] instances, which express granularity alone.

The zero value of this type is invalid.
*/
type Field int

const (
	invalidField Field = iota
	NanoOfSecond
	MicroOfSecond
	MilliOfSecond
	NanoOfDay
	MilliOfDay
	SecondOfMinute
	SecondOfDay
	MinuteOfHour
	MinuteOfDay
	HourOfDay
	DayOfWeek
	DayOfMonth
	DayOfYear
	MonthOfYear
	YearOfEra
	EpochDay
	InstantSeconds
)

var fieldNames = map[Field]string{
	NanoOfSecond:   "nano-of-second",
	MicroOfSecond:  "micro-of-second",
	MilliOfSecond:  "milli-of-second",
	NanoOfDay:      "nano-of-day",
	MilliOfDay:     "milli-of-day",
	SecondOfMinute: "second-of-minute",
	SecondOfDay:    "second-of-day",
	MinuteOfHour:   "minute-of-hour",
	MinuteOfDay:    "minute-of-day",
	HourOfDay:      "hour-of-day",
	DayOfWeek:      "day-of-week",
	DayOfMonth:     "day-of-month",
	DayOfYear:      "day-of-year",
	MonthOfYear:    "month-of-year",
	YearOfEra:      "year",
	EpochDay:       "epoch-day",
	InstantSeconds: "instant-seconds",
}

/*
String returns the canonical name of the receiver instance.
*/
func (r Field) String() string {
	if s, ok := fieldNames[r]; ok {
		return s
	}
	return "invalid-field"
}

/*
Keyword returns the canonical symbolic keyword alias of the receiver
instance (the canonical name bearing a leading colon).
*/
func (r Field) Keyword() string { return ":" + r.String() }

/*
IsValid returns a Boolean value indicative of the receiver being a
known member of the [Field] enumeration.
*/
func (r Field) IsValid() bool {
	_, ok := fieldNames[r]
	return ok
}

/*
Range returns the inclusive minimum and maximum legal values for the
receiver field when read from, or written to, an [Instant].
*/
func (r Field) Range() (min, max int64) {
	switch r {
	case NanoOfSecond:
		return 0, 999_999_999
	case MicroOfSecond:
		return 0, 999_999
	case MilliOfSecond:
		return 0, 999
	case NanoOfDay:
		return 0, 86_399_999_999_999
	case MilliOfDay:
		return 0, 86_399_999
	case SecondOfMinute, MinuteOfHour:
		return 0, 59
	case SecondOfDay:
		return 0, 86_399
	case MinuteOfDay:
		return 0, 1_439
	case HourOfDay:
		return 0, 23
	case DayOfWeek:
		return 1, 7
	case DayOfMonth:
		return 1, 31
	case DayOfYear:
		return 1, 366
	case MonthOfYear:
		return 1, 12
	case YearOfEra:
		return -999_999_999, 999_999_999
	case EpochDay:
		return -365_243_219_162, 365_241_780_471
	}
	// InstantSeconds (and anything unknown) is unbounded.
	return minInt64, maxInt64
}

const (
	minInt64 int64 = -1 << 63
	maxInt64 int64 = 1<<63 - 1
)

/*
unitAliases and fieldAliases comprise the process-wide symbolic
reference registry. Both are populated exactly once, below, and are
never mutated thereafter; no locking is required.
*/
var (
	unitAliases  = make(map[string]Unit)
	fieldAliases = make(map[string]Field)
)

func normalizeAlias(s string) string {
	s = lc(trimS(s))
	s = trimPfx(s, ":")
	b := newStrBuilder()
	for i := 0; i < len(s); i++ {
		if s[i] == '_' {
			b.WriteByte('-')
		} else {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

/*
ResolveUnit returns the [Unit] described by x, which may be a [Unit]
itself, a short textual code (e.g. "ms"), the canonical name, or a
symbolic keyword (e.g. ":days"). A nil x resolves to [Forever] by
design; any other unresolvable reference returns [ErrUnknownUnit].
*/
func ResolveUnit(x any) (Unit, error) {
	if isNilAny(x) {
		return Forever, nil
	}

	switch tv := x.(type) {
	case Unit:
		if tv.IsValid() {
			return tv, nil
		}
	case string:
		if u, ok := unitAliases[normalizeAlias(tv)]; ok {
			return u, nil
		}
	case []byte:
		if u, ok := unitAliases[normalizeAlias(string(tv))]; ok {
			return u, nil
		}
	}

	return invalidUnit, errorUnknownUnit(x)
}

/*
ResolveField returns the [Field] described by x, which may be a [Field]
itself, a short textual code, the canonical name, or a symbolic keyword
(e.g. ":day-of-year"). Unlike [ResolveUnit], absence is not defaulted:
any unresolvable reference, nil included, returns [ErrUnknownField].
*/
func ResolveField(x any) (Field, error) {
	switch tv := x.(type) {
	case Field:
		if tv.IsValid() {
			return tv, nil
		}
	case string:
		if f, ok := fieldAliases[normalizeAlias(tv)]; ok {
			return f, nil
		}
	case []byte:
		if f, ok := fieldAliases[normalizeAlias(string(tv))]; ok {
			return f, nil
		}
	}

	return invalidField, errorUnknownField(x)
}

func registerUnitAliases() {
	table := map[Unit][]string{
		Nanoseconds:  {"ns", "nano", "nanos", "nanosecond"},
		Microseconds: {"us", "micro", "micros", "microsecond"},
		Milliseconds: {"ms", "milli", "millis", "millisecond"},
		Seconds:      {"s", "sec", "secs", "second"},
		Minutes:      {"min", "mins", "minute"},
		Hours:        {"h", "hr", "hrs", "hour"},
		HalfDays:     {"halfdays", "half-day", "halfday"},
		Days:         {"d", "day"},
		Weeks:        {"wk", "wks", "week"},
		Months:       {"mo", "month"},
		Years:        {"y", "yr", "yrs", "year"},
		Decades:      {"decade"},
		Centuries:    {"century"},
		Millennia:    {"millennium"},
		Eras:         {"era"},
		Forever:      {},
	}

	for u, name := range unitNames {
		unitAliases[name] = u
	}
	for u, aliases := range table {
		for _, a := range aliases {
			unitAliases[a] = u
		}
	}
}

func registerFieldAliases() {
	table := map[Field][]string{
		NanoOfSecond:   {"nanoofsecond"},
		MicroOfSecond:  {"microofsecond"},
		MilliOfSecond:  {"milliofsecond"},
		NanoOfDay:      {"nanoofday"},
		MilliOfDay:     {"milliofday"},
		SecondOfMinute: {"secondofminute"},
		SecondOfDay:    {"secondofday"},
		MinuteOfHour:   {"minuteofhour"},
		MinuteOfDay:    {"minuteofday"},
		HourOfDay:      {"hourofday"},
		DayOfWeek:      {"dayofweek", "dow"},
		DayOfMonth:     {"dayofmonth", "dom"},
		DayOfYear:      {"dayofyear", "doy"},
		MonthOfYear:    {"monthofyear", "month-of-year", "month"},
		YearOfEra:      {"year-of-era", "yearofera"},
		EpochDay:       {"epochday"},
		InstantSeconds: {"instantseconds", "epoch-second", "epoch-seconds"},
	}

	for f, name := range fieldNames {
		fieldAliases[name] = f
	}
	for f, aliases := range table {
		for _, a := range aliases {
			fieldAliases[a] = f
		}
	}
}

/*
init freezes the symbolic alias registry before any concurrent access
may occur.
*/
func init() {
	registerUnitAliases()
	registerFieldAliases()
}
