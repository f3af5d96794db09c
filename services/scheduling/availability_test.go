package scheduling

import (
	"errors"
	"testing"
	"time"

	"medicore/models"
)

// 2025-01-01 is a Wednesday.
var wednesday = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestResolveWindowStructured(t *testing.T) {
	entries := []models.ScheduleEntry{{
		Days:       []string{"Monday", "wednesday", "Friday"},
		StartTime:  "09:00 AM",
		EndTime:    "01:00 PM",
		BreakStart: "12:00 PM",
		BreakEnd:   "12:30 PM",
	}}

	w, err := ResolveWindow(entries, nil, wednesday)
	if err != nil {
		t.Fatalf("ResolveWindow: %v", err)
	}
	if w.Start != (TimeOfDay{9, 0}) || w.End != (TimeOfDay{13, 0}) {
		t.Fatalf("unexpected window: %+v", w)
	}
	if w.BreakStart == nil || *w.BreakStart != (TimeOfDay{12, 0}) {
		t.Fatalf("unexpected break start: %v", w.BreakStart)
	}
	if w.BreakEnd == nil || *w.BreakEnd != (TimeOfDay{12, 30}) {
		t.Fatalf("unexpected break end: %v", w.BreakEnd)
	}
}

func TestResolveWindowLegacy(t *testing.T) {
	entries := []models.ScheduleEntry{{
		Day:   "Wednesday",
		Slots: []string{"9AM-1PM"},
	}}

	w, err := ResolveWindow(entries, nil, wednesday)
	if err != nil {
		t.Fatalf("ResolveWindow: %v", err)
	}
	if w.Start != (TimeOfDay{9, 0}) || w.End != (TimeOfDay{13, 0}) {
		t.Fatalf("unexpected window: %+v", w)
	}
	if w.BreakStart != nil || w.BreakEnd != nil {
		t.Fatal("legacy entries must not carry a break")
	}
}

func TestResolveWindowStructuredWinsOverLegacy(t *testing.T) {
	entries := []models.ScheduleEntry{
		{Day: "Wednesday", Slots: []string{"8AM-10AM"}},
		{Days: []string{"Wednesday"}, StartTime: "10:00 AM", EndTime: "4:00 PM"},
	}

	w, err := ResolveWindow(entries, nil, wednesday)
	if err != nil {
		t.Fatalf("ResolveWindow: %v", err)
	}
	if w.Start != (TimeOfDay{10, 0}) {
		t.Fatalf("expected structured entry to win, got start %+v", w.Start)
	}
}

func TestResolveWindowLeavePrecedence(t *testing.T) {
	entries := []models.ScheduleEntry{{
		Days: []string{"Wednesday"}, StartTime: "9:00 AM", EndTime: "1:00 PM",
	}}
	leaves := []models.LeaveRecord{{
		FromDate: "2024-12-30",
		ToDate:   "2025-01-02",
		Status:   models.LeaveStatusApproved,
	}}

	if _, err := ResolveWindow(entries, leaves, wednesday); !errors.Is(err, ErrOnLeave) {
		t.Fatalf("expected ErrOnLeave, got %v", err)
	}

	// Pending leave does not block.
	leaves[0].Status = "pending"
	if _, err := ResolveWindow(entries, leaves, wednesday); err != nil {
		t.Fatalf("pending leave must not block: %v", err)
	}

	// Leave outside the date range does not block.
	leaves[0].Status = models.LeaveStatusApproved
	leaves[0].FromDate, leaves[0].ToDate = "2025-01-05", "2025-01-08"
	if _, err := ResolveWindow(entries, leaves, wednesday); err != nil {
		t.Fatalf("out-of-range leave must not block: %v", err)
	}
}

func TestResolveWindowNotScheduled(t *testing.T) {
	entries := []models.ScheduleEntry{
		{Days: []string{"Monday"}, StartTime: "9:00 AM", EndTime: "1:00 PM"},
		{Day: "Friday", Slots: []string{"9AM-1PM"}},
	}
	if _, err := ResolveWindow(entries, nil, wednesday); !errors.Is(err, ErrNotScheduled) {
		t.Fatalf("expected ErrNotScheduled, got %v", err)
	}
	if _, err := ResolveWindow(nil, nil, wednesday); !errors.Is(err, ErrNotScheduled) {
		t.Fatalf("no entries: expected ErrNotScheduled, got %v", err)
	}
}

func TestResolveWindowSkipsMalformedEntries(t *testing.T) {
	entries := []models.ScheduleEntry{
		{Days: []string{"Wednesday"}, StartTime: "garbage", EndTime: "1:00 PM"},
		{Day: "Wednesday", Slots: []string{"9AM-1PM"}},
	}

	w, err := ResolveWindow(entries, nil, wednesday)
	if err != nil {
		t.Fatalf("expected fallback past the malformed entry: %v", err)
	}
	if w.Start != (TimeOfDay{9, 0}) || w.End != (TimeOfDay{13, 0}) {
		t.Fatalf("unexpected window: %+v", w)
	}
}

func TestResolveWindowMalformedBreakIgnored(t *testing.T) {
	entries := []models.ScheduleEntry{{
		Days: []string{"Wednesday"}, StartTime: "9:00 AM", EndTime: "1:00 PM",
		BreakStart: "noonish", BreakEnd: "12:30 PM",
	}}

	w, err := ResolveWindow(entries, nil, wednesday)
	if err != nil {
		t.Fatalf("ResolveWindow: %v", err)
	}
	if w.BreakStart != nil || w.BreakEnd != nil {
		t.Fatal("unparseable break must be dropped, not fatal")
	}
}
