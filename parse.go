package timeplus

/*
parse.go implements strict positional ISO 8601 instant parsing, plus
the broader ParseTemporal entry point which admits offset-free and
partial civil forms.
*/

import "time"

/*
parsedOffset records whether the trailing offset designator was
present in parsed instant text, and its value.
*/
type parsedOffset struct {
	present bool
	zulu    bool
	seconds int
}

/*
ParseInstant returns the [Instant] described by text, which must
satisfy the grammar

	YYYY-MM-DD'T'HH:MM:SS[.fraction(0-6 digits)][±HH:MM|'Z']

with the offset designator mandatory: the offset is normalized away
and the result is zone-free. Any deviation from the grammar fails with
[ErrMalformedInput] carrying the offending text and position; there is
no partial or best-effort parse.

The optional resolution argument is a [Unit] reference (enum, short
code, native name or keyword) to which the parsed instant is
truncated; it defaults to [Milliseconds]. A nil resolution resolves to
[Forever], the no-truncation sentinel.
*/
func ParseInstant(text string, resolution ...any) (Instant, error) {
	u := Milliseconds
	if len(resolution) > 0 {
		var err error
		if u, err = ResolveUnit(resolution[0]); err != nil {
			return Instant{}, err
		}
	}

	i, _, err := parseInstantText(text, true)
	if err != nil {
		return Instant{}, err
	}

	return i.truncatedTo(u)
}

/*
ParseTemporal returns the most specific temporal value described by
text. A full date-time bearing an offset designator yields a zoned
[time.Time] (in [time.UTC] for 'Z', else a fixed-offset location);
without one it yields a zone-free [Instant], the local text
interpreted as UTC. Partial civil forms yield the corresponding
zone-free value: "YYYY-MM-DD" a [LocalDate], "YYYY-MM" a [YearMonth],
"YYYY" a [Year], and "HH:MM:SS[.f]" a [LocalTime].
*/
func ParseTemporal(text string) (any, error) {
	if stridxb(text, 'T') >= 0 {
		i, po, err := parseInstantText(text, false)
		if err != nil {
			return nil, err
		}
		if !po.present {
			return i, nil
		}
		if po.zulu {
			return i.Cast(), nil
		}
		return i.Cast().In(time.FixedZone(formatOffsetName(po.seconds), po.seconds)), nil
	}

	switch {
	// colon first: a fractional time-of-day may be ten characters wide
	case stridxb(text, ':') >= 0:
		return parseLocalTime(text)
	case len(text) == 10:
		return parseLocalDate(text)
	case len(text) == 7:
		return parseYearMonth(text)
	case len(text) == 4:
		return parseYearOnly(text)
	}

	return nil, errorMalformedInput(text, 0)
}

func formatOffsetName(seconds int) string {
	sign := byte('+')
	if seconds < 0 {
		sign = '-'
		seconds = -seconds
	}
	b := make([]byte, 0, 6)
	b = append(b, sign)
	b = append2(b, seconds/3600)
	b = append(b, ':')
	b = append2(b, (seconds%3600)/60)
	return string(b)
}

/*
parseInstantText scans the instant grammar positionally. The civil
portion is validated by round trip through the time package; the
returned instant is the civil reading minus the offset, zone-free.
*/
func parseInstantText(s string, requireOffset bool) (Instant, parsedOffset, error) {
	var po parsedOffset
	fail := func(pos int) (Instant, parsedOffset, error) {
		return Instant{}, parsedOffset{}, errorMalformedInput(s, pos)
	}

	if len(s) < 19 {
		return fail(len(s))
	}

	for _, i := range []int{0, 1, 2, 3, 5, 6, 8, 9, 11, 12, 14, 15, 17, 18} {
		if !isDigit(s[i]) {
			return fail(i)
		}
	}
	if s[4] != '-' || s[7] != '-' {
		return fail(4)
	}
	if s[10] != 'T' {
		return fail(10)
	}
	if s[13] != ':' || s[16] != ':' {
		return fail(13)
	}

	toInt := func(b0, b1 byte) int { return int(b0-'0')*10 + int(b1-'0') }

	year := toInt(s[0], s[1])*100 + toInt(s[2], s[3])
	month := toInt(s[5], s[6])
	day := toInt(s[8], s[9])
	hour := toInt(s[11], s[12])
	min := toInt(s[14], s[15])
	sec := toInt(s[17], s[18])

	if hour > 23 {
		return fail(11)
	}
	if min > 59 {
		return fail(14)
	}
	if sec > 59 {
		return fail(17)
	}

	civil := time.Date(year, time.Month(month), day, hour, min, sec, 0, time.UTC)
	if cy, cm, cd := civil.Date(); cy != year || int(cm) != month || cd != day {
		return fail(8)
	}

	idx := 19
	var nanos int64
	if idx < len(s) && s[idx] == '.' {
		j := idx + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		digits := j - (idx + 1)
		if digits == 0 || digits > 6 {
			return fail(j)
		}
		frac, _ := pint(s[idx+1:j], 10, 64)
		nanos = frac * pow10(9-digits)
		idx = j
	}

	var offSec int
	if idx < len(s) {
		switch s[idx] {
		case 'Z':
			po = parsedOffset{present: true, zulu: true}
			idx++
		case '+', '-':
			if len(s)-idx != 6 {
				return fail(idx)
			}
			if !isDigit(s[idx+1]) || !isDigit(s[idx+2]) ||
				s[idx+3] != ':' ||
				!isDigit(s[idx+4]) || !isDigit(s[idx+5]) {
				return fail(idx)
			}
			oh := toInt(s[idx+1], s[idx+2])
			om := toInt(s[idx+4], s[idx+5])
			if oh > 18 || om > 59 {
				return fail(idx + 1)
			}
			offSec = oh*3600 + om*60
			if s[idx] == '-' {
				offSec = -offSec
			}
			po = parsedOffset{present: true, seconds: offSec}
			idx += 6
		default:
			return fail(idx)
		}
	}

	if idx != len(s) {
		return fail(idx)
	}
	if requireOffset && !po.present {
		return fail(len(s))
	}

	return Instant{sec: civil.Unix() - int64(offSec), nsec: int32(nanos)}, po, nil
}
