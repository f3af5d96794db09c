package scheduling

import (
	"strings"
	"time"

	"medicore/models"
)

// ResolveWindow determines the doctor's effective working window at one
// hospital for a calendar date.
//
// Approved leave always wins: if a leave record covers the date the result
// is ErrOnLeave even when a schedule entry matches. Otherwise structured
// entries (weekday list + explicit times) are the canonical path; legacy
// entries (single weekday + compact ranges like "9AM-1PM") are the fallback
// and never carry a break. Entries with unparseable times are skipped rather
// than treated as fatal; a bad row must not make the whole doctor invisible.
func ResolveWindow(entries []models.ScheduleEntry, leaves []models.LeaveRecord, date time.Time) (Window, error) {
	dateStr := date.Format("2006-01-02")
	for _, lv := range leaves {
		if lv.Status != models.LeaveStatusApproved {
			continue
		}
		if lv.FromDate <= dateStr && dateStr <= lv.ToDate {
			return Window{}, ErrOnLeave
		}
	}

	weekday := date.Weekday().String()

	for _, e := range entries {
		if !e.IsStructured() || !containsDay(e.Days, weekday) {
			continue
		}
		w, ok := structuredWindow(e)
		if !ok {
			continue
		}
		return w, nil
	}

	for _, e := range entries {
		if e.IsStructured() || len(e.Slots) == 0 {
			continue
		}
		if !strings.EqualFold(e.Day, weekday) {
			continue
		}
		w, ok := legacyWindow(e.Slots[0])
		if !ok {
			continue
		}
		return w, nil
	}

	return Window{}, ErrNotScheduled
}

func containsDay(days []string, weekday string) bool {
	for _, d := range days {
		if strings.EqualFold(d, weekday) {
			return true
		}
	}
	return false
}

func structuredWindow(e models.ScheduleEntry) (Window, bool) {
	start, err := ParseTimeOfDay(e.StartTime)
	if err != nil {
		return Window{}, false
	}
	end, err := ParseTimeOfDay(e.EndTime)
	if err != nil {
		return Window{}, false
	}
	w := Window{Start: start, End: end}
	if e.BreakStart != "" && e.BreakEnd != "" {
		bs, errS := ParseTimeOfDay(e.BreakStart)
		be, errE := ParseTimeOfDay(e.BreakEnd)
		if errS == nil && errE == nil {
			w.BreakStart, w.BreakEnd = &bs, &be
		}
	}
	return w, true
}

// legacyWindow reinterprets a compact range string such as "9AM-1PM".
func legacyWindow(rangeStr string) (Window, bool) {
	parts := strings.SplitN(rangeStr, "-", 2)
	if len(parts) != 2 {
		return Window{}, false
	}
	start, err := ParseTimeOfDay(strings.TrimSpace(parts[0]))
	if err != nil {
		return Window{}, false
	}
	end, err := ParseTimeOfDay(strings.TrimSpace(parts[1]))
	if err != nil {
		return Window{}, false
	}
	return Window{Start: start, End: end}, true
}
