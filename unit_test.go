package timeplus

import (
	"errors"
	"fmt"
	"testing"
)

func ExampleResolveUnit() {
	u, err := ResolveUnit(`:days`)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(u)
	// Output: days
}

func ExampleField_Keyword() {
	fmt.Println(DayOfYear.Keyword())
	// Output: :day-of-year
}

func TestResolveUnit(t *testing.T) {
	for idx, obj := range []struct {
		ref  any
		want Unit
	}{
		{Milliseconds, Milliseconds},
		{`ms`, Milliseconds},
		{`milli`, Milliseconds},
		{`millisecond`, Milliseconds},
		{`milliseconds`, Milliseconds},
		{`:milliseconds`, Milliseconds},
		{`MS`, Milliseconds}, // case-insensitive
		{` ms `, Milliseconds},
		{[]byte(`ms`), Milliseconds},
		{`half_days`, HalfDays}, // underscores fold to hyphens
		{`:half-days`, HalfDays},
		{`d`, Days},
		{`mo`, Months},
		{`forever`, Forever},
		{nil, Forever}, // absence defaults to the sentinel
	} {
		u, err := ResolveUnit(obj.ref)
		if err != nil {
			t.Fatalf("%s failed [ref %d (%v)]: %v", t.Name(), idx, obj.ref, err)
		}
		if u != obj.want {
			t.Fatalf("%s failed [ref %d cmp.]:\n\twant: %s\n\tgot:  %s",
				t.Name(), idx, obj.want, u)
		}
	}

	for idx, bogus := range []any{
		`fortnights`,
		``,
		Unit(999),
		invalidUnit,
		3.14,
	} {
		if _, err := ResolveUnit(bogus); !errors.Is(err, ErrUnknownUnit) {
			t.Fatalf("%s failed [bogus %d (%v)]: expected ErrUnknownUnit, got %v",
				t.Name(), idx, bogus, err)
		}
	}
}

func TestResolveField(t *testing.T) {
	for idx, obj := range []struct {
		ref  any
		want Field
	}{
		{DayOfYear, DayOfYear},
		{`day-of-year`, DayOfYear},
		{`doy`, DayOfYear},
		{`:day-of-year`, DayOfYear},
		{`day_of_year`, DayOfYear},
		{`dom`, DayOfMonth},
		{`dow`, DayOfWeek},
		{`month`, MonthOfYear},
		{`year`, YearOfEra},
		{`year-of-era`, YearOfEra},
		{`epoch-second`, InstantSeconds},
		{[]byte(`milli-of-second`), MilliOfSecond},
	} {
		f, err := ResolveField(obj.ref)
		if err != nil {
			t.Fatalf("%s failed [ref %d (%v)]: %v", t.Name(), idx, obj.ref, err)
		}
		if f != obj.want {
			t.Fatalf("%s failed [ref %d cmp.]:\n\twant: %s\n\tgot:  %s",
				t.Name(), idx, obj.want, f)
		}
	}

	// fields have no absence default
	for idx, bogus := range []any{
		nil,
		`dayofcentury`,
		Field(999),
		invalidField,
	} {
		if _, err := ResolveField(bogus); !errors.Is(err, ErrUnknownField) {
			t.Fatalf("%s failed [bogus %d (%v)]: expected ErrUnknownField, got %v",
				t.Name(), idx, bogus, err)
		}
	}
}

func TestUnit_codecov(t *testing.T) {
	for u := Nanoseconds; u <= Forever; u++ {
		if !u.IsValid() {
			t.Fatalf("%s failed [validity]: %s", t.Name(), u)
		}
		if u.Keyword() != ":"+u.String() {
			t.Fatalf("%s failed [keyword cmp.]: %s", t.Name(), u.Keyword())
		}
		if rt, err := ResolveUnit(u.String()); err != nil || rt != u {
			t.Fatalf("%s failed [name round trip]: %s, %v", t.Name(), u, err)
		}
		if rt, err := ResolveUnit(u.Keyword()); err != nil || rt != u {
			t.Fatalf("%s failed [keyword round trip]: %s, %v", t.Name(), u, err)
		}

		span, exact := u.timeSpan()
		if exact != (u <= Days) {
			t.Fatalf("%s failed [span exactness]: %s", t.Name(), u)
		}
		if exact && span < 1 {
			t.Fatalf("%s failed [span width]: %s", t.Name(), u)
		}
	}

	if invalidUnit.IsValid() || invalidUnit.String() != "invalid-unit" {
		t.Fatalf("%s failed [invalid unit]", t.Name())
	}
}

func TestField_codecov(t *testing.T) {
	for f := NanoOfSecond; f <= InstantSeconds; f++ {
		if !f.IsValid() {
			t.Fatalf("%s failed [validity]: %s", t.Name(), f)
		}
		if rt, err := ResolveField(f.String()); err != nil || rt != f {
			t.Fatalf("%s failed [name round trip]: %s, %v", t.Name(), f, err)
		}
		if rt, err := ResolveField(f.Keyword()); err != nil || rt != f {
			t.Fatalf("%s failed [keyword round trip]: %s, %v", t.Name(), f, err)
		}

		min, max := f.Range()
		if min > max {
			t.Fatalf("%s failed [range order]: %s", t.Name(), f)
		}
	}

	if invalidField.IsValid() || invalidField.String() != "invalid-field" {
		t.Fatalf("%s failed [invalid field]", t.Name())
	}
}
