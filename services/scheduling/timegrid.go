package scheduling

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultSlotMinutes is the length of one atomic bookable unit.
const DefaultSlotMinutes = 5

// TimeOfDay is a clock time with minute precision, no date or zone attached.
type TimeOfDay struct {
	Hour   int // 0..23
	Minute int // 0..59
}

// Minutes returns minutes from midnight.
func (t TimeOfDay) Minutes() int { return t.Hour*60 + t.Minute }

// Before reports whether t is strictly earlier than o.
func (t TimeOfDay) Before(o TimeOfDay) bool { return t.Minutes() < o.Minutes() }

func timeOfDayFromMinutes(m int) TimeOfDay {
	return TimeOfDay{Hour: (m / 60) % 24, Minute: m % 60}
}

// MicroSlot is one fixed-duration bookable unit inside a working window.
// Derived on demand, never persisted.
type MicroSlot struct {
	Start TimeOfDay
	End   TimeOfDay
}

// StartLabel returns the slot start in display form, e.g. "9:05 AM".
func (s MicroSlot) StartLabel() string { return FormatTimeOfDay(s.Start) }

// EndLabel returns the slot end in display form.
func (s MicroSlot) EndLabel() string { return FormatTimeOfDay(s.End) }

// Label returns the full "start - end" display form.
func (s MicroSlot) Label() string { return s.StartLabel() + " - " + s.EndLabel() }

// Window is a doctor's effective working window for one date, normalized
// from whichever schedule shape it was stored in.
type Window struct {
	Start      TimeOfDay
	End        TimeOfDay
	BreakStart *TimeOfDay
	BreakEnd   *TimeOfDay
}

// Accepts "9:00 AM", "9:00AM", "9 AM" and "9AM"; an optional dot style
// ("9 a.m.") shows up in some legacy rows.
var timeOfDayRe = regexp.MustCompile(`^\s*(\d{1,2})(?::(\d{2}))?\s*([AaPp])\.?[Mm]\.?\s*$`)

// ParseTimeOfDay parses an "H:MM AM/PM"-style string, tolerating the
// variants above. Returns ErrInvalidTimeFormat on anything else.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	m := timeOfDayRe.FindStringSubmatch(s)
	if m == nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	if hour < 1 || hour > 12 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	pm := strings.EqualFold(m[3], "p")
	if hour == 12 {
		hour = 0
	}
	if pm {
		hour += 12
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// FormatTimeOfDay renders a TimeOfDay on the 12-hour clock with the minute
// zero-padded: noon is "12:00 PM", midnight "12:00 AM".
func FormatTimeOfDay(t TimeOfDay) string {
	period := "AM"
	hour := t.Hour
	if hour >= 12 {
		period = "PM"
	}
	hour = hour % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, t.Minute, period)
}

// GenerateMicroSlots tiles the window with durationMin-length slots, ordered
// ascending. The walk jumps straight to the break end whenever the pointer
// sits inside the break or a candidate slot would straddle it, so no slot
// ever overlaps [BreakStart, BreakEnd). Inverted or zero-length windows
// yield an empty sequence; a zero-length break is a no-op.
func GenerateMicroSlots(w Window, durationMin int) []MicroSlot {
	if durationMin <= 0 {
		durationMin = DefaultSlotMinutes
	}
	start := w.Start.Minutes()
	end := w.End.Minutes()

	hasBreak := false
	var bs, be int
	if w.BreakStart != nil && w.BreakEnd != nil {
		bs, be = w.BreakStart.Minutes(), w.BreakEnd.Minutes()
		hasBreak = bs < be
	}

	var slots []MicroSlot
	for cur := start; cur < end; {
		if hasBreak && cur >= bs && cur < be {
			cur = be
			continue
		}
		slotEnd := cur + durationMin
		if slotEnd > end {
			break
		}
		if hasBreak && slotEnd > bs && cur < be {
			cur = be
			continue
		}
		slots = append(slots, MicroSlot{
			Start: timeOfDayFromMinutes(cur),
			End:   timeOfDayFromMinutes(slotEnd),
		})
		cur = slotEnd
	}
	return slots
}
