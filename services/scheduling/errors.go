package scheduling

import "errors"

var (
	// ErrInvalidTimeFormat is returned for time-of-day strings that cannot
	// be parsed. Callers skip the offending record rather than failing the
	// whole resolution.
	ErrInvalidTimeFormat = errors.New("invalid time format")

	// ErrNotScheduled means the doctor has no schedule entry covering the
	// requested weekday at this hospital.
	ErrNotScheduled = errors.New("doctor not scheduled this day")

	// ErrOnLeave means an approved leave record covers the requested date.
	ErrOnLeave = errors.New("doctor on leave")

	// ErrInvalidSlotFormat means the requested slot label is not of the
	// form "start - end".
	ErrInvalidSlotFormat = errors.New("invalid slot format")

	// ErrNoSlotsInHour means the requested hour block contains no
	// micro-slots at all for this working window.
	ErrNoSlotsInHour = errors.New("no slots in requested hour")

	// ErrHourFull means every micro-slot in the requested hour is taken.
	ErrHourFull = errors.New("requested hour is fully booked")
)
