package timeplus

import (
	"errors"
	"fmt"
	"testing"
)

func ExampleParseInstant_errorTaxonomy() {
	_, err := ParseInstant(`not an instant`)
	fmt.Println(errors.Is(err, ErrMalformedInput))
	// Output: true
}

func TestErrorTaxonomy(t *testing.T) {
	for idx, obj := range []struct {
		err  error
		base error
	}{
		{errorUnclassifiable(3.14), ErrUnclassifiable},
		{errorUnsupportedConversion(kindDuration, "instant"), ErrUnsupportedConversion},
		{errorMalformedInput(`bogus`, 0), ErrMalformedInput},
		{errorMalformedDuration(`bogus`), ErrMalformedInput},
		{errorUnknownUnit(`fortnights`), ErrUnknownUnit},
		{errorUnknownField(`dayofcentury`), ErrUnknownField},
		{errorUnsupportedOperation("multiply", "instant"), ErrUnsupportedOperation},
		{errorNoTransform(Duration{}), ErrNoTransform},
		{errorDivisionByZero, ErrDivisionByZero},
	} {
		if !errors.Is(obj.err, obj.base) {
			t.Fatalf("%s failed [case %d]: %v does not wrap %v",
				t.Name(), idx, obj.err, obj.base)
		}
		if obj.err.Error() == obj.base.Error() {
			t.Fatalf("%s failed [case %d]: no envelope detail in %q",
				t.Name(), idx, obj.err.Error())
		}
	}
}

func TestErrorEnvelopes(t *testing.T) {
	for idx, obj := range []struct {
		err error
		pfx string
	}{
		{errorDivisionByZero, `ARITHMETIC ERROR: `},
		{errorUnclassifiable(nil), `CLASSIFIER ERROR: `},
		{errorUnsupportedConversion(kindText, "duration"), `COERCION ERROR: `},
		{errorMalformedInput(`x`, 0), `PARSER ERROR: `},
		{errorUnknownUnit(42), `REGISTRY ERROR: `},
		{errorNoTransform(nil), `TRANSFORM ERROR: `},
	} {
		if !hasPfx(obj.err.Error(), obj.pfx) {
			t.Fatalf("%s failed [case %d]:\n\twant prefix: %s\n\tgot:         %s",
				t.Name(), idx, obj.pfx, obj.err.Error())
		}
	}
}

func TestMkerrf(t *testing.T) {
	if mkerrf() != nil {
		t.Fatalf("%s failed [empty]: expected nil", t.Name())
	}

	e1 := mkerrf("value ", int64(42), " out of range for field ", HourOfDay)
	if e1.Error() != `value 42 out of range for field hour-of-day` {
		t.Fatalf("%s failed [render cmp.]: %q", t.Name(), e1.Error())
	}

	// identical messages resolve to the identical cached instance
	e2 := mkerrf("value ", int64(42), " out of range for field ", HourOfDay)
	if e1 != e2 {
		t.Fatalf("%s failed [cache]: distinct instances for one message", t.Name())
	}

	if e3 := mkerrf("unit ", Days, ", kind ", kindText, ", pos ", 3); e3.Error() != `unit days, kind text, pos 3` {
		t.Fatalf("%s failed [parts cmp.]: %q", t.Name(), e3.Error())
	}
}
