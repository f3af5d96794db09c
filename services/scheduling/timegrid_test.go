package scheduling

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		in   string
		want TimeOfDay
	}{
		{"9:00 AM", TimeOfDay{9, 0}},
		{"9:05 am", TimeOfDay{9, 5}},
		{"9:00AM", TimeOfDay{9, 0}},
		{"9AM", TimeOfDay{9, 0}},
		{"9 PM", TimeOfDay{21, 0}},
		{"12:00 PM", TimeOfDay{12, 0}},
		{"12:30 AM", TimeOfDay{0, 30}},
		{"11:55 PM", TimeOfDay{23, 55}},
		{" 7:15 pm ", TimeOfDay{19, 15}},
	}
	for _, c := range cases {
		got, err := ParseTimeOfDay(c.in)
		if err != nil {
			t.Fatalf("ParseTimeOfDay(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseTimeOfDay(%q) = %+v, want %+v", c.in, got, c.want)
		}
	}
}

func TestParseTimeOfDayInvalid(t *testing.T) {
	for _, in := range []string{"", "hello", "13:00 AM", "0:30 PM", "9:60 AM", "14:00", "9-1"} {
		if _, err := ParseTimeOfDay(in); !errors.Is(err, ErrInvalidTimeFormat) {
			t.Fatalf("ParseTimeOfDay(%q): expected ErrInvalidTimeFormat, got %v", in, err)
		}
	}
}

func TestFormatTimeOfDay(t *testing.T) {
	cases := []struct {
		in   TimeOfDay
		want string
	}{
		{TimeOfDay{9, 5}, "9:05 AM"},
		{TimeOfDay{0, 0}, "12:00 AM"},
		{TimeOfDay{12, 0}, "12:00 PM"},
		{TimeOfDay{23, 55}, "11:55 PM"},
		{TimeOfDay{13, 30}, "1:30 PM"},
	}
	for _, c := range cases {
		if got := FormatTimeOfDay(c.in); got != c.want {
			t.Fatalf("FormatTimeOfDay(%+v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestGenerateMicroSlotsTiling(t *testing.T) {
	w := Window{Start: TimeOfDay{9, 0}, End: TimeOfDay{11, 0}}
	slots := GenerateMicroSlots(w, 5)

	if len(slots) != 24 {
		t.Fatalf("expected 24 slots, got %d", len(slots))
	}
	if slots[0].StartLabel() != "9:00 AM" || slots[0].EndLabel() != "9:05 AM" {
		t.Fatalf("unexpected first slot: %s", slots[0].Label())
	}
	if slots[len(slots)-1].EndLabel() != "11:00 AM" {
		t.Fatalf("unexpected last slot: %s", slots[len(slots)-1].Label())
	}
	// No gaps, no overlaps.
	for i := 1; i < len(slots); i++ {
		if slots[i].Start != slots[i-1].End {
			t.Fatalf("gap between %s and %s", slots[i-1].Label(), slots[i].Label())
		}
	}
}

func TestGenerateMicroSlotsBreakExclusion(t *testing.T) {
	bs, be := TimeOfDay{12, 0}, TimeOfDay{12, 30}
	w := Window{Start: TimeOfDay{9, 0}, End: TimeOfDay{13, 0}, BreakStart: &bs, BreakEnd: &be}
	slots := GenerateMicroSlots(w, 5)

	for _, s := range slots {
		if s.Start.Minutes() < be.Minutes() && s.End.Minutes() > bs.Minutes() {
			t.Fatalf("slot %s overlaps the break", s.Label())
		}
	}

	// Generation resumes exactly at break end.
	var firstAfter *MicroSlot
	for i := range slots {
		if slots[i].Start.Minutes() >= bs.Minutes() {
			firstAfter = &slots[i]
			break
		}
	}
	if firstAfter == nil || firstAfter.StartLabel() != "12:30 PM" {
		t.Fatalf("expected first post-break slot at 12:30 PM, got %v", firstAfter)
	}
}

func TestGenerateMicroSlotsIdempotent(t *testing.T) {
	bs, be := TimeOfDay{12, 0}, TimeOfDay{12, 30}
	w := Window{Start: TimeOfDay{9, 0}, End: TimeOfDay{13, 0}, BreakStart: &bs, BreakEnd: &be}
	if !reflect.DeepEqual(GenerateMicroSlots(w, 5), GenerateMicroSlots(w, 5)) {
		t.Fatal("expected identical output for identical input")
	}
}

func TestGenerateMicroSlotsEdgeCases(t *testing.T) {
	// Zero-length window.
	if got := GenerateMicroSlots(Window{Start: TimeOfDay{9, 0}, End: TimeOfDay{9, 0}}, 5); len(got) != 0 {
		t.Fatalf("zero-length window: expected no slots, got %d", len(got))
	}
	// Inverted window.
	if got := GenerateMicroSlots(Window{Start: TimeOfDay{11, 0}, End: TimeOfDay{9, 0}}, 5); len(got) != 0 {
		t.Fatalf("inverted window: expected no slots, got %d", len(got))
	}
	// Break equal to the whole window.
	bs, be := TimeOfDay{9, 0}, TimeOfDay{11, 0}
	w := Window{Start: TimeOfDay{9, 0}, End: TimeOfDay{11, 0}, BreakStart: &bs, BreakEnd: &be}
	if got := GenerateMicroSlots(w, 5); len(got) != 0 {
		t.Fatalf("break covering window: expected no slots, got %d", len(got))
	}
	// Zero-length break is a no-op.
	zs := TimeOfDay{10, 0}
	w = Window{Start: TimeOfDay{9, 0}, End: TimeOfDay{11, 0}, BreakStart: &zs, BreakEnd: &zs}
	if got := GenerateMicroSlots(w, 5); len(got) != 24 {
		t.Fatalf("zero-length break: expected 24 slots, got %d", len(got))
	}
}

func TestGenerateMicroSlotsLunchScenario(t *testing.T) {
	// Working day 9:00-13:00 with a 12:00-12:30 lunch: the morning tiles
	// through 11:55-12:00, then generation jumps to 12:30.
	bs, be := TimeOfDay{12, 0}, TimeOfDay{12, 30}
	w := Window{Start: TimeOfDay{9, 0}, End: TimeOfDay{13, 0}, BreakStart: &bs, BreakEnd: &be}
	slots := GenerateMicroSlots(w, 5)

	if len(slots) != 42 {
		t.Fatalf("expected 42 slots (36 morning + 6 after lunch), got %d", len(slots))
	}
	if slots[35].Label() != "11:55 AM - 12:00 PM" {
		t.Fatalf("unexpected last morning slot: %s", slots[35].Label())
	}
	if slots[36].Label() != "12:30 PM - 12:35 PM" {
		t.Fatalf("unexpected first post-lunch slot: %s", slots[36].Label())
	}
}
