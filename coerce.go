package timeplus

/*
coerce.go contains the coercion dispatcher: the per-category rules
which normalize a classified value into the canonical [Instant] or
[Duration] form.
*/

/*
ToInstant returns the canonical [Instant] view of x, which may be any
classifiable instant-like representation.

Zone-free local values are interpreted as UTC; this is deliberate
package policy ("if you don't have a zone, you are UTC") in preference
to any ambient system zone, because it is deterministic and testable.
Duration-like categories have no instant view and return
[ErrUnsupportedConversion].
*/
func ToInstant(x any) (Instant, error) {
	v, err := Classify(x)
	if err != nil {
		return Instant{}, err
	}
	return v.toInstant()
}

func (r TemporalVariant) toInstant() (Instant, error) {
	switch r.kind {
	case kindInstant:
		return r.in, nil
	case kindZoned, kindOffset:
		return Instant{sec: r.tm.Unix(), nsec: int32(r.tm.Nanosecond())}, nil
	case kindLocalDateTime:
		return r.ldt.asUTCInstant(), nil
	case kindLocalDate:
		return r.ld.atStartOfDayUTC(), nil
	case kindLocalTime:
		return r.lt.atReferenceDate(), nil
	case kindYear:
		return r.yr.atStartUTC(), nil
	case kindYearMonth:
		return r.ym.atStartUTC(), nil
	case kindCalendar:
		return r.cd.atStartOfDayUTC(), nil
	case kindEpochMillis:
		return FromEpochMillis(r.ms), nil
	case kindText:
		return instantFromText(r.txt)
	}

	return Instant{}, errorUnsupportedConversion(r.kind, "instant")
}

/*
ToDuration returns the canonical [Duration] view of x, which may be
any classifiable duration-like representation: a [Duration], a
[time.Duration], any [Amount], integer milliseconds (zero maps to the
zero duration, not an absent value), duration text (strict ISO 8601,
with integer-millisecond digits as a fallback), or nil (absence is the
zero duration). Instant-like categories have no duration view and
return [ErrUnsupportedConversion].
*/
func ToDuration(x any) (Duration, error) {
	v, err := Classify(x)
	if err != nil {
		return Duration{}, err
	}
	return v.toDuration()
}

func (r TemporalVariant) toDuration() (Duration, error) {
	switch r.kind {
	case kindDuration, kindAmount:
		return r.du, nil
	case kindEpochMillis:
		return millisDuration(r.ms), nil
	case kindText:
		return durationFromText(r.txt)
	case kindNil:
		return Duration{}, nil
	}

	return Duration{}, errorUnsupportedConversion(r.kind, "duration")
}
