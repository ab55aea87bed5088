package timeplus

/*
transform.go contains the round-trip transform: for every zone- or
calendar-bearing category it yields the canonical [Instant] view
together with a reconstruction recipe capable of rebuilding a value of
the original category from a (possibly arithmetic-shifted) instant.
*/

import "time"

/*
Inverse implements the reconstruction recipe half of a round-trip
transform pair: the classified category plus whatever zone or calendar
metadata was present at transform time. Instances of this type are
created fresh per operation and are never persisted.
*/
type Inverse struct {
	kind   variantKind
	loc    *time.Location
	system string
}

/*
Transform returns the canonical [Instant] view of x together with the
[Inverse] which reconstructs a value of x's original category from any
instant.

Per-category reconstruction rules:

  - an [Instant] reconstructs as itself
  - a zoned [time.Time] re-zones the new instant to the original location
  - an offset-bearing [time.Time] re-applies the original fixed offset queried from the source value
  - zone-free local values re-derive their category from the new instant assuming UTC; [LocalTime] discards the reference date
  - [Year] and [YearMonth] re-derive the enclosing period, UTC
  - a [CalendarDate] reconstructs a date of the same calendar system via the epoch day
  - raw integer and textual inputs, whose category is not structurally recoverable, reconstruct as the canonical [Instant]

Any other category fails with [ErrNoTransform].
*/
func Transform(x any) (Instant, Inverse, error) {
	v, cerr := Classify(x)
	if cerr != nil {
		return Instant{}, Inverse{}, errorNoTransform(x)
	}
	return transformVariant(v)
}

func transformVariant(v TemporalVariant) (Instant, Inverse, error) {
	switch v.kind {
	case kindDuration, kindAmount, kindNil, kindUnknown:
		return Instant{}, Inverse{}, errorNoTransform(v.src)
	}

	i, err := v.toInstant()
	if err != nil {
		return Instant{}, Inverse{}, err
	}

	inv := Inverse{kind: v.kind}
	switch v.kind {
	case kindZoned, kindOffset:
		inv.loc = v.tm.Location()
	case kindCalendar:
		inv.system = v.cd.System()
	case kindEpochMillis, kindText:
		// not structurally invertible; the canonical form stands in
		inv.kind = kindInstant
	}

	return i, inv, nil
}

/*
Apply reconstructs a value of the transformed category from i, per the
recipe held by the receiver instance.
*/
func (r Inverse) Apply(i Instant) (any, error) {
	switch r.kind {
	case kindInstant:
		return i, nil
	case kindZoned, kindOffset:
		return i.Cast().In(r.loc), nil
	case kindLocalDateTime:
		return localDateTimeAt(i), nil
	case kindLocalDate:
		return localDateAt(i), nil
	case kindLocalTime:
		return localTimeAt(i), nil
	case kindYear:
		return yearAt(i), nil
	case kindYearMonth:
		return yearMonthAt(i), nil
	case kindCalendar:
		return calendarDateAt(r.system, i), nil
	}

	return nil, errorNoTransform(i)
}
