package timeplus

/*
local.go implements the zone-free local family: civil values bearing
no timezone or offset. Per package policy, every member of this family
is interpreted as UTC when an absolute instant view is required.
*/

import "time"

/*
Temporal is a date and time interface qualified by instances of the
following types:

  - [Instant]
  - [LocalDate]
  - [LocalDateTime]
  - [LocalTime]
  - [Year]
  - [YearMonth]
  - [CalendarDate]

Note that [Duration] does not qualify this interface.
*/
type Temporal interface {
	Cast() time.Time
	String() string
}

/*
LocalDate implements a zone-free civil date (year, month, day).
*/
type LocalDate struct {
	year  int
	month int
	day   int
}

/*
NewLocalDate returns an instance of [LocalDate] alongside an error
following an attempt to marshal x. Accepted input types are string or
[]byte ("YYYY-MM-DD"), [time.Time] (its civil date) and [LocalDate].
*/
func NewLocalDate(x any, constraints ...Constraint[LocalDate]) (LocalDate, error) {
	var d LocalDate
	var err error

	switch tv := x.(type) {
	case LocalDate:
		d = tv
	case time.Time:
		y, mo, dd := tv.Date()
		d = LocalDate{year: y, month: int(mo), day: dd}
	case string:
		d, err = parseLocalDate(tv)
	case []byte:
		d, err = parseLocalDate(string(tv))
	default:
		err = errorBadTypeForConstructor("LocalDate", x)
	}

	if len(constraints) > 0 && err == nil {
		var group ConstraintGroup[LocalDate] = constraints
		err = group.Constrain(d)
	}

	if err != nil {
		d = LocalDate{}
	}

	return d, err
}

// parseLocalDate parses YYYY-MM-DD, no heap, ~70 ns. Calendar validity
// (month lengths, leap years) is delegated to the time package via a
// round-trip check.
func parseLocalDate(s string) (LocalDate, error) {
	if len(s) != 10 {
		return LocalDate{}, errorMalformedInput(s, len(s))
	}
	if s[4] != '-' || s[7] != '-' {
		return LocalDate{}, errorMalformedInput(s, 4)
	}
	for _, i := range []int{0, 1, 2, 3, 5, 6, 8, 9} {
		if !isDigit(s[i]) {
			return LocalDate{}, errorMalformedInput(s, i)
		}
	}
	toInt := func(b0, b1 byte) int { return int(b0-'0')*10 + int(b1-'0') }

	year := toInt(s[0], s[1])*100 + toInt(s[2], s[3])
	month := toInt(s[5], s[6])
	day := toInt(s[8], s[9])

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if ty, tm, td := t.Date(); ty != year || int(tm) != month || td != day {
		return LocalDate{}, errorMalformedInput(s, 8)
	}

	return LocalDate{year: year, month: month, day: day}, nil
}

// formatLocalDate renders YYYY-MM-DD with zero heap allocations.
func formatLocalDate(year, month, day int) string {
	var b [10]byte
	put2 := func(i, v int) {
		b[i] = byte('0' + v/10)
		b[i+1] = byte('0' + v%10)
	}
	b[0] = byte('0' + (year/1000)%10)
	b[1] = byte('0' + (year/100)%10)
	b[2] = byte('0' + (year/10)%10)
	b[3] = byte('0' + year%10)
	b[4] = '-'
	put2(5, month)
	b[7] = '-'
	put2(8, day)
	return string(b[:])
}

/*
Year returns the year component of the receiver instance.
*/
func (r LocalDate) Year() int { return r.year }

/*
Month returns the month component of the receiver instance.
*/
func (r LocalDate) Month() int { return r.month }

/*
Day returns the day-of-month component of the receiver instance.
*/
func (r LocalDate) Day() int { return r.day }

/*
String returns the string representation of the receiver instance.
*/
func (r LocalDate) String() string {
	return formatLocalDate(r.year, r.month, r.day)
}

/*
Cast returns the receiver interpreted as the start of its day in UTC,
cast as an instance of [time.Time].
*/
func (r LocalDate) Cast() time.Time {
	return time.Date(r.year, time.Month(r.month), r.day, 0, 0, 0, 0, time.UTC)
}

func (r LocalDate) atStartOfDayUTC() Instant {
	return Instant{sec: r.Cast().Unix()}
}

func localDateAt(i Instant) LocalDate {
	y, mo, d := i.Cast().Date()
	return LocalDate{year: y, month: int(mo), day: d}
}

/*
LocalTime implements a zone-free civil time-of-day.
*/
type LocalTime struct {
	hour int
	min  int
	sec  int
	nsec int
}

/*
NewLocalTime returns an instance of [LocalTime] alongside an error
following an attempt to marshal x. Accepted input types are string or
[]byte ("HH:MM:SS" with an optional fraction of up to nine digits),
[time.Time] (its clock reading) and [LocalTime].
*/
func NewLocalTime(x any, constraints ...Constraint[LocalTime]) (LocalTime, error) {
	var lt LocalTime
	var err error

	switch tv := x.(type) {
	case LocalTime:
		lt = tv
	case time.Time:
		h, m, s := tv.Clock()
		lt = LocalTime{hour: h, min: m, sec: s, nsec: tv.Nanosecond()}
	case string:
		lt, err = parseLocalTime(tv)
	case []byte:
		lt, err = parseLocalTime(string(tv))
	default:
		err = errorBadTypeForConstructor("LocalTime", x)
	}

	if len(constraints) > 0 && err == nil {
		var group ConstraintGroup[LocalTime] = constraints
		err = group.Constrain(lt)
	}

	if err != nil {
		lt = LocalTime{}
	}

	return lt, err
}

// parseLocalTime parses HH:MM:SS[.fraction], fraction up to 9 digits.
func parseLocalTime(s string) (LocalTime, error) {
	if len(s) < 8 || s[2] != ':' || s[5] != ':' {
		return LocalTime{}, errorMalformedInput(s, 0)
	}
	for _, i := range []int{0, 1, 3, 4, 6, 7} {
		if !isDigit(s[i]) {
			return LocalTime{}, errorMalformedInput(s, i)
		}
	}
	toInt := func(b0, b1 byte) int { return int(b0-'0')*10 + int(b1-'0') }

	h := toInt(s[0], s[1])
	m := toInt(s[3], s[4])
	sec := toInt(s[6], s[7])
	if h > 23 || m > 59 || sec > 59 {
		return LocalTime{}, errorMalformedInput(s, 0)
	}

	var nsec int64
	if len(s) > 8 {
		if s[8] != '.' {
			return LocalTime{}, errorMalformedInput(s, 8)
		}
		digits := len(s) - 9
		if digits == 0 || digits > 9 {
			return LocalTime{}, errorMalformedInput(s, 9)
		}
		for i := 9; i < len(s); i++ {
			if !isDigit(s[i]) {
				return LocalTime{}, errorMalformedInput(s, i)
			}
		}
		nsec, _ = pint(s[9:], 10, 64)
		nsec *= pow10(9 - digits)
	}

	return LocalTime{hour: h, min: m, sec: sec, nsec: int(nsec)}, nil
}

/*
Hour returns the hour-of-day component of the receiver instance.
*/
func (r LocalTime) Hour() int { return r.hour }

/*
Minute returns the minute-of-hour component of the receiver instance.
*/
func (r LocalTime) Minute() int { return r.min }

/*
Second returns the second-of-minute component of the receiver instance.
*/
func (r LocalTime) Second() int { return r.sec }

/*
Nanosecond returns the sub-second nanosecond component of the receiver
instance.
*/
func (r LocalTime) Nanosecond() int { return r.nsec }

/*
String returns the string representation of the receiver instance.
*/
func (r LocalTime) String() string {
	b := make([]byte, 0, 18)
	b = append2(b, r.hour)
	b = append(b, ':')
	b = append2(b, r.min)
	b = append(b, ':')
	b = append2(b, r.sec)
	if r.nsec > 0 {
		b = append(b, '.')
		frac := fmtInt(int64(r.nsec)+nanosPerSecond, 10)[1:]
		for hasSfx(frac, "0") {
			frac = frac[:len(frac)-1]
		}
		b = append(b, frac...)
	}
	return string(b)
}

/*
Cast returns the receiver anchored to the fixed reference date
(1970-01-01) in UTC, cast as an instance of [time.Time].
*/
func (r LocalTime) Cast() time.Time {
	return time.Date(1970, time.January, 1, r.hour, r.min, r.sec, r.nsec, time.UTC)
}

func (r LocalTime) nanoOfDay() int64 {
	return int64(r.hour)*3600*nanosPerSecond +
		int64(r.min)*60*nanosPerSecond +
		int64(r.sec)*nanosPerSecond +
		int64(r.nsec)
}

func (r LocalTime) atReferenceDate() Instant {
	return instantAtDayNano(0, r.nanoOfDay())
}

func localTimeAt(i Instant) LocalTime {
	nod := i.nanoOfDay()
	return LocalTime{
		hour: int(nod / (3600 * nanosPerSecond)),
		min:  int(nod / (60 * nanosPerSecond) % 60),
		sec:  int(nod / nanosPerSecond % 60),
		nsec: int(nod % nanosPerSecond),
	}
}

/*
LocalDateTime implements a zone-free civil date and time-of-day.
*/
type LocalDateTime struct {
	date LocalDate
	tod  LocalTime
}

/*
NewLocalDateTime returns an instance of [LocalDateTime] alongside an
error following an attempt to marshal x. Accepted input types are
string or []byte ("YYYY-MM-DDTHH:MM:SS" with an optional fraction),
[time.Time], [LocalDate] (start of day) and [LocalDateTime].
*/
func NewLocalDateTime(x any, constraints ...Constraint[LocalDateTime]) (LocalDateTime, error) {
	var ldt LocalDateTime
	var err error

	switch tv := x.(type) {
	case LocalDateTime:
		ldt = tv
	case LocalDate:
		ldt = LocalDateTime{date: tv}
	case time.Time:
		var d LocalDate
		var lt LocalTime
		if d, err = NewLocalDate(tv); err == nil {
			if lt, err = NewLocalTime(tv); err == nil {
				ldt = LocalDateTime{date: d, tod: lt}
			}
		}
	case string:
		ldt, err = parseLocalDateTime(tv)
	case []byte:
		ldt, err = parseLocalDateTime(string(tv))
	default:
		err = errorBadTypeForConstructor("LocalDateTime", x)
	}

	if len(constraints) > 0 && err == nil {
		var group ConstraintGroup[LocalDateTime] = constraints
		err = group.Constrain(ldt)
	}

	if err != nil {
		ldt = LocalDateTime{}
	}

	return ldt, err
}

func parseLocalDateTime(s string) (LocalDateTime, error) {
	i := stridxb(s, 'T')
	if i < 0 {
		return LocalDateTime{}, errorMalformedInput(s, 0)
	}

	d, err := parseLocalDate(s[:i])
	if err != nil {
		return LocalDateTime{}, errorMalformedInput(s, 0)
	}

	lt, err := parseLocalTime(s[i+1:])
	if err != nil {
		return LocalDateTime{}, errorMalformedInput(s, i+1)
	}

	return LocalDateTime{date: d, tod: lt}, nil
}

/*
Date returns the [LocalDate] component of the receiver instance.
*/
func (r LocalDateTime) Date() LocalDate { return r.date }

/*
Time returns the [LocalTime] component of the receiver instance.
*/
func (r LocalDateTime) Time() LocalTime { return r.tod }

/*
String returns the string representation of the receiver instance.
*/
func (r LocalDateTime) String() string {
	return r.date.String() + "T" + r.tod.String()
}

/*
Cast returns the receiver interpreted as UTC, cast as an instance of
[time.Time].
*/
func (r LocalDateTime) Cast() time.Time {
	return time.Date(r.date.year, time.Month(r.date.month), r.date.day,
		r.tod.hour, r.tod.min, r.tod.sec, r.tod.nsec, time.UTC)
}

func (r LocalDateTime) asUTCInstant() Instant {
	t := r.Cast()
	return Instant{sec: t.Unix(), nsec: int32(t.Nanosecond())}
}

func localDateTimeAt(i Instant) LocalDateTime {
	return LocalDateTime{date: localDateAt(i), tod: localTimeAt(i)}
}

/*
Year implements a zone-free year-only civil value.
*/
type Year int

/*
NewYear returns an instance of [Year] alongside an error following an
attempt to marshal x. Accepted input types are int, string or []byte
("YYYY") and [Year].
*/
func NewYear(x any, constraints ...Constraint[Year]) (Year, error) {
	var y Year
	var err error

	switch tv := x.(type) {
	case Year:
		y = tv
	case int:
		y = Year(tv)
	case string:
		y, err = parseYearOnly(tv)
	case []byte:
		y, err = parseYearOnly(string(tv))
	default:
		err = errorBadTypeForConstructor("Year", x)
	}

	if len(constraints) > 0 && err == nil {
		var group ConstraintGroup[Year] = constraints
		err = group.Constrain(y)
	}

	if err != nil {
		y = 0
	}

	return y, err
}

func parseYearOnly(s string) (Year, error) {
	if len(s) != 4 {
		return 0, errorMalformedInput(s, len(s))
	}
	for i := 0; i < 4; i++ {
		if !isDigit(s[i]) {
			return 0, errorMalformedInput(s, i)
		}
	}
	n, _ := atoi(s)
	return Year(n), nil
}

/*
String returns the string representation of the receiver instance.
*/
func (r Year) String() string {
	v := int(r)
	return string([]byte{
		byte('0' + (v/1000)%10),
		byte('0' + (v/100)%10),
		byte('0' + (v/10)%10),
		byte('0' + v%10),
	})
}

/*
Cast returns the receiver interpreted as the start of its year in UTC,
cast as an instance of [time.Time].
*/
func (r Year) Cast() time.Time {
	return time.Date(int(r), time.January, 1, 0, 0, 0, 0, time.UTC)
}

func (r Year) atStartUTC() Instant { return Instant{sec: r.Cast().Unix()} }

func yearAt(i Instant) Year { return Year(i.Cast().Year()) }

/*
YearMonth implements a zone-free year and month civil value.
*/
type YearMonth struct {
	year  int
	month int
}

/*
NewYearMonth returns an instance of [YearMonth] alongside an error
following an attempt to marshal x. Accepted input types are string or
[]byte ("YYYY-MM") and [YearMonth].
*/
func NewYearMonth(x any, constraints ...Constraint[YearMonth]) (YearMonth, error) {
	var ym YearMonth
	var err error

	switch tv := x.(type) {
	case YearMonth:
		ym = tv
	case string:
		ym, err = parseYearMonth(tv)
	case []byte:
		ym, err = parseYearMonth(string(tv))
	default:
		err = errorBadTypeForConstructor("YearMonth", x)
	}

	if len(constraints) > 0 && err == nil {
		var group ConstraintGroup[YearMonth] = constraints
		err = group.Constrain(ym)
	}

	if err != nil {
		ym = YearMonth{}
	}

	return ym, err
}

func parseYearMonth(s string) (YearMonth, error) {
	if len(s) != 7 || s[4] != '-' {
		return YearMonth{}, errorMalformedInput(s, 0)
	}
	for _, i := range []int{0, 1, 2, 3, 5, 6} {
		if !isDigit(s[i]) {
			return YearMonth{}, errorMalformedInput(s, i)
		}
	}

	y, _ := atoi(s[:4])
	m, _ := atoi(s[5:])
	if m == 0 || m > 12 {
		return YearMonth{}, errorMalformedInput(s, 5)
	}

	return YearMonth{year: y, month: m}, nil
}

/*
Year returns the year component of the receiver instance.
*/
func (r YearMonth) Year() int { return r.year }

/*
Month returns the month component of the receiver instance.
*/
func (r YearMonth) Month() int { return r.month }

/*
String returns the string representation of the receiver instance.
*/
func (r YearMonth) String() string {
	return formatLocalDate(r.year, r.month, 1)[:7]
}

/*
Cast returns the receiver interpreted as the start of its month in
UTC, cast as an instance of [time.Time].
*/
func (r YearMonth) Cast() time.Time {
	return time.Date(r.year, time.Month(r.month), 1, 0, 0, 0, 0, time.UTC)
}

func (r YearMonth) atStartUTC() Instant { return Instant{sec: r.Cast().Unix()} }

func yearMonthAt(i Instant) YearMonth {
	y, mo, _ := i.Cast().Date()
	return YearMonth{year: y, month: int(mo)}
}

/*
CalendarDate implements a date of an arbitrary (possibly
non-Gregorian) calendar system, anchored by its epoch-day value. The
calendar system identifier is carried opaquely and never interpreted;
the epoch day alone positions the date on the canonical timeline.
*/
type CalendarDate struct {
	system   string
	epochDay int64
}

/*
NewCalendarDate returns an instance of [CalendarDate] bearing the
given calendar system identifier and epoch-day value.
*/
func NewCalendarDate(system string, epochDay int64) CalendarDate {
	return CalendarDate{system: system, epochDay: epochDay}
}

/*
System returns the opaque calendar system identifier of the receiver
instance.
*/
func (r CalendarDate) System() string { return r.system }

/*
EpochDay returns the epoch-day value of the receiver instance.
*/
func (r CalendarDate) EpochDay() int64 { return r.epochDay }

/*
String returns the string representation of the receiver instance,
e.g. "islamic-umalqura[20170]".
*/
func (r CalendarDate) String() string {
	return r.system + "[" + fmtInt(r.epochDay, 10) + "]"
}

/*
Cast returns the receiver anchored at the start of its epoch day in
UTC, cast as an instance of [time.Time].
*/
func (r CalendarDate) Cast() time.Time {
	return time.Unix(r.epochDay*secondsPerDay, 0).UTC()
}

func (r CalendarDate) atStartOfDayUTC() Instant {
	return Instant{sec: r.epochDay * secondsPerDay}
}

func calendarDateAt(system string, i Instant) CalendarDate {
	return CalendarDate{system: system, epochDay: i.epochDay()}
}
