package scheduling

import (
	"sort"
	"strings"

	"medicore/models"
)

// DefaultHourlyLimit caps how many appointments one clock hour may hold,
// regardless of how many 5-minute slots the raw math would allow.
const DefaultHourlyLimit = 12

// BuildHourlyView groups the window's micro-slots into hour buckets and
// overlays existing reservations, producing the patient-facing capacity
// summary ordered by hour.
func BuildHourlyView(w Window, existing []models.Appointment, slotMinutes, hourlyLimit int) []models.HourBlock {
	if hourlyLimit <= 0 {
		hourlyLimit = DefaultHourlyLimit
	}
	slots := GenerateMicroSlots(w, slotMinutes)

	byHour := make(map[int][]MicroSlot)
	for _, s := range slots {
		byHour[s.Start.Hour] = append(byHour[s.Start.Hour], s)
	}

	taken := activeStartTimes(existing)

	blocks := make([]models.HourBlock, 0, len(byHour))
	for hour, hourSlots := range byHour {
		total := len(hourSlots)
		if total > hourlyLimit {
			total = hourlyLimit
		}
		booked := 0
		for _, s := range hourSlots {
			if taken[s.StartLabel()] {
				booked++
			}
		}
		available := total - booked
		if available < 0 {
			available = 0
		}
		blocks = append(blocks, models.HourBlock{
			Hour:           hour,
			Label:          hourLabel(hour),
			TotalCapacity:  total,
			BookedCount:    booked,
			AvailableCount: available,
			IsFull:         booked >= total,
		})
	}

	sort.Slice(blocks, func(i, j int) bool { return blocks[i].Hour < blocks[j].Hour })
	return blocks
}

// ResolveBookingRequest maps a requested label onto a concrete micro-slot.
//
// An exact match against a generated slot is accepted as-is; the caller
// re-verifies occupancy, so this path may hand back a taken slot. Otherwise
// the label is treated as an hour block and the earliest untaken slot in
// that hour wins, giving deterministic first-come ordering.
func ResolveBookingRequest(w Window, existing []models.Appointment, requested string, slotMinutes int) (MicroSlot, error) {
	startStr, endStr, found := strings.Cut(requested, " - ")
	if !found {
		return MicroSlot{}, ErrInvalidSlotFormat
	}
	startStr, endStr = strings.TrimSpace(startStr), strings.TrimSpace(endStr)

	slots := GenerateMicroSlots(w, slotMinutes)
	for _, s := range slots {
		if s.StartLabel() == startStr && s.EndLabel() == endStr {
			return s, nil
		}
	}

	reqStart, err := ParseTimeOfDay(startStr)
	if err != nil {
		return MicroSlot{}, ErrInvalidSlotFormat
	}

	taken := activeStartTimes(existing)
	hourHasSlots := false
	for _, s := range slots {
		if s.Start.Hour != reqStart.Hour {
			continue
		}
		hourHasSlots = true
		if !taken[s.StartLabel()] {
			return s, nil
		}
	}
	if !hourHasSlots {
		return MicroSlot{}, ErrNoSlotsInHour
	}
	return MicroSlot{}, ErrHourFull
}

// activeStartTimes indexes the start times of non-cancelled reservations.
func activeStartTimes(existing []models.Appointment) map[string]bool {
	taken := make(map[string]bool, len(existing))
	for i := range existing {
		if existing[i].IsActive() {
			taken[existing[i].StartTime] = true
		}
	}
	return taken
}

func hourLabel(hour int) string {
	start := TimeOfDay{Hour: hour}
	end := TimeOfDay{Hour: (hour + 1) % 24}
	return FormatTimeOfDay(start) + " - " + FormatTimeOfDay(end)
}
