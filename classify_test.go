package timeplus

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func ExampleClassify() {
	v, err := Classify(`2025-03-22T15:12:01Z`)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(v.Category())
	// Output: text
}

func TestClassify(t *testing.T) {
	date, _ := NewLocalDate(`2025-03-22`)
	tod, _ := NewLocalTime(`15:12:01`)
	ldt, _ := NewLocalDateTime(`2025-03-22T15:12:01`)
	yr, _ := NewYear(`2025`)
	ym, _ := NewYearMonth(`2025-03`)

	for idx, obj := range []struct {
		x    any
		want string
	}{
		{Instant{}, `instant`},
		{&Instant{}, `instant`},
		{Duration{}, `duration`},
		{&Duration{}, `duration`},
		{time.Second, `duration`},
		{testSpan{s: 1}, `amount`},
		{time.Date(2025, 3, 22, 15, 12, 1, 0, time.UTC), `zoned value`},
		{time.Date(2025, 3, 22, 15, 12, 1, 0, time.FixedZone("+02:00", 7200)), `offset value`},
		{time.Date(2025, 3, 22, 15, 12, 1, 0, time.FixedZone("", 7200)), `offset value`},
		{ldt, `local date-time`},
		{date, `local date`},
		{tod, `local time`},
		{yr, `year`},
		{ym, `year-month`},
		{NewCalendarDate(`islamic-umalqura`, 20170), `calendar date`},
		{int64(1742656321861), `epoch milliseconds`},
		{1742656321861, `epoch milliseconds`},
		{`2025-03-22T15:12:01Z`, `text`},
		{[]byte(`PT5S`), `text`},
		{nil, `absent`},
		{(*Instant)(nil), `absent`},
	} {
		v, err := Classify(obj.x)
		if err != nil {
			t.Fatalf("%s failed [case %d]: %v", t.Name(), idx, err)
		}
		if v.Category() != obj.want {
			t.Fatalf("%s failed [case %d cmp.]:\n\twant: %s\n\tgot:  %s",
				t.Name(), idx, obj.want, v.Category())
		}
	}
}

func TestClassify_passthrough(t *testing.T) {
	v, err := Classify(Instant{sec: 7})
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}

	// re-classifying a variant is the identity
	v2, err := Classify(v)
	if err != nil {
		t.Fatalf("%s failed [reclassify]: %v", t.Name(), err)
	}
	if v2.Category() != v.Category() {
		t.Fatalf("%s failed [reclassify cmp.]: %s != %s",
			t.Name(), v2.Category(), v.Category())
	}

	// the original input survives within the variant
	if i, ok := v.Value().(Instant); !ok || i.Second() != 7 {
		t.Fatalf("%s failed [value cmp.]: %v", t.Name(), v.Value())
	}
}

func TestClassify_unclassifiable(t *testing.T) {
	for idx, bogus := range []any{
		3.14,
		struct{}{},
		map[string]int{},
		make(chan int),
	} {
		v, err := Classify(bogus)
		if !errors.Is(err, ErrUnclassifiable) {
			t.Fatalf("%s failed [bogus %d]: expected ErrUnclassifiable, got %v",
				t.Name(), idx, err)
		}
		if v.Category() != `unrecognized` {
			t.Fatalf("%s failed [bogus %d category]: %s", t.Name(), idx, v.Category())
		}
	}

	if !(TemporalVariant{}).IsZero() {
		t.Fatalf("%s failed [zero variant]", t.Name())
	}
}
