package timeplus

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func ExampleNewLocalDateTime() {
	ldt, err := NewLocalDateTime(`2025-03-22T15:12:01.5`)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(ldt)
	// Output: 2025-03-22T15:12:01.5
}

func ExampleCalendarDate_String() {
	cd := NewCalendarDate(`islamic-umalqura`, 20170)
	fmt.Println(cd)
	// Output: islamic-umalqura[20170]
}

func TestNewLocalDate(t *testing.T) {
	d, err := NewLocalDate(`2025-03-22`)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if d.Year() != 2025 || d.Month() != 3 || d.Day() != 22 {
		t.Fatalf("%s failed [component cmp.]: %s", t.Name(), d)
	}
	if d.String() != `2025-03-22` {
		t.Fatalf("%s failed [render cmp.]: %s", t.Name(), d)
	}

	// from a zoned value: the civil date only
	d2, err := NewLocalDate(time.Date(2025, time.March, 22, 23, 59, 0, 0, time.UTC))
	if err != nil || d2 != d {
		t.Fatalf("%s failed [time.Time form]: %s, %v", t.Name(), d2, err)
	}

	for idx, bogus := range []string{
		``,
		`2025-3-22`,
		`2025/03/22`,
		`2025-02-30`, // calendar-invalid
		`2025-13-01`,
		`2025-00-10`,
	} {
		if _, err = NewLocalDate(bogus); !errors.Is(err, ErrMalformedInput) {
			t.Fatalf("%s failed [malformed %d (%q)]: %v", t.Name(), idx, bogus, err)
		}
	}

	// leap-year acceptance
	if _, err = NewLocalDate(`2024-02-29`); err != nil {
		t.Fatalf("%s failed [leap day]: %v", t.Name(), err)
	}
	if _, err = NewLocalDate(`2025-02-29`); err == nil {
		t.Fatalf("%s failed [non-leap day]: expected error, got nil", t.Name())
	}
}

func TestNewLocalTime(t *testing.T) {
	lt, err := NewLocalTime(`21:53:26.75`)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if lt.Hour() != 21 || lt.Minute() != 53 || lt.Second() != 26 || lt.Nanosecond() != 750_000_000 {
		t.Fatalf("%s failed [component cmp.]: %s", t.Name(), lt)
	}
	if lt.String() != `21:53:26.75` {
		t.Fatalf("%s failed [render cmp.]: %s", t.Name(), lt)
	}

	// the instant view anchors to the reference date
	i, err := ToInstant(lt)
	if err != nil {
		t.Fatalf("%s failed [coerce]: %v", t.Name(), err)
	}
	if got := FormatUTC(i); got != `1970-01-01T21:53:26.750Z` {
		t.Fatalf("%s failed [anchor cmp.]:\n\twant: %s\n\tgot:  %s",
			t.Name(), `1970-01-01T21:53:26.750Z`, got)
	}

	for idx, bogus := range []string{
		``,
		`21:53`,
		`24:00:00`,
		`21:60:00`,
		`21:53:26.`,
		`21:53:26.1234567890`,
		`21-53-26`,
	} {
		if _, err = NewLocalTime(bogus); !errors.Is(err, ErrMalformedInput) {
			t.Fatalf("%s failed [malformed %d (%q)]: %v", t.Name(), idx, bogus, err)
		}
	}
}

func TestNewLocalDateTime(t *testing.T) {
	ldt, err := NewLocalDateTime(`2025-03-22T15:12:01`)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if ldt.Date().String() != `2025-03-22` || ldt.Time().String() != `15:12:01` {
		t.Fatalf("%s failed [component cmp.]: %s", t.Name(), ldt)
	}

	// UTC interpretation
	i, err := ToInstant(ldt)
	if err != nil {
		t.Fatalf("%s failed [coerce]: %v", t.Name(), err)
	}
	if i.Second() != 1742656321 {
		t.Fatalf("%s failed [epoch cmp.]:\n\twant: %d\n\tgot:  %d",
			t.Name(), 1742656321, i.Second())
	}

	// a date alone anchors to start of day
	ldt2, err := NewLocalDateTime(ldt.Date())
	if err != nil {
		t.Fatalf("%s failed [date form]: %v", t.Name(), err)
	}
	if ldt2.String() != `2025-03-22T00:00:00` {
		t.Fatalf("%s failed [date form cmp.]: %s", t.Name(), ldt2)
	}

	if _, err = NewLocalDateTime(`2025-03-22 15:12:01`); !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("%s failed [bad separator]: %v", t.Name(), err)
	}
}

func TestYearAndYearMonth(t *testing.T) {
	y, err := NewYear(`2025`)
	if err != nil || y != Year(2025) {
		t.Fatalf("%s failed [year]: %v", t.Name(), err)
	}
	if y.String() != `2025` {
		t.Fatalf("%s failed [year render]: %s", t.Name(), y)
	}
	if i, _ := ToInstant(y); FormatUTC(i) != `2025-01-01T00:00:00.000Z` {
		t.Fatalf("%s failed [year anchor]: %s", t.Name(), FormatUTC(i))
	}

	ym, err := NewYearMonth(`2025-03`)
	if err != nil {
		t.Fatalf("%s failed [year-month]: %v", t.Name(), err)
	}
	if ym.Year() != 2025 || ym.Month() != 3 || ym.String() != `2025-03` {
		t.Fatalf("%s failed [year-month cmp.]: %s", t.Name(), ym)
	}
	if i, _ := ToInstant(ym); FormatUTC(i) != `2025-03-01T00:00:00.000Z` {
		t.Fatalf("%s failed [year-month anchor]: %s", t.Name(), FormatUTC(i))
	}

	if _, err = NewYear(`25`); !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("%s failed [short year]: %v", t.Name(), err)
	}
	if _, err = NewYearMonth(`2025-13`); !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("%s failed [bad month]: %v", t.Name(), err)
	}
}

func TestCalendarDate(t *testing.T) {
	cd := NewCalendarDate(`islamic-umalqura`, 20170)
	if cd.System() != `islamic-umalqura` || cd.EpochDay() != 20170 {
		t.Fatalf("%s failed [component cmp.]: %s", t.Name(), cd)
	}

	// the epoch day alone positions the date on the timeline
	i, err := ToInstant(cd)
	if err != nil {
		t.Fatalf("%s failed [coerce]: %v", t.Name(), err)
	}
	if i.Second() != 20170*86400 {
		t.Fatalf("%s failed [epoch cmp.]:\n\twant: %d\n\tgot:  %d",
			t.Name(), 20170*86400, i.Second())
	}
	if !cd.Cast().Equal(i.Cast()) {
		t.Fatalf("%s failed [cast cmp.]", t.Name())
	}
}

func TestTemporalInterface_codecov(t *testing.T) {
	date, _ := NewLocalDate(`2025-03-22`)
	tod, _ := NewLocalTime(`15:12:01`)
	ldt, _ := NewLocalDateTime(`2025-03-22T15:12:01`)

	for idx, tm := range []Temporal{
		Instant{},
		date,
		tod,
		ldt,
		Year(2025),
		YearMonth{year: 2025, month: 3},
		NewCalendarDate(`gregory`, 0),
	} {
		if tm.String() == `` {
			t.Fatalf("%s failed [render %d]", t.Name(), idx)
		}
		if tm.Cast().Location() != time.UTC {
			t.Fatalf("%s failed [location %d]", t.Name(), idx)
		}
	}
}
