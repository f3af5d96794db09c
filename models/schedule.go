package models

// ScheduleEntry is one availability record embedded in a doctor's hospital
// affiliation. Two historical shapes coexist and are never migrated:
//
//   - structured: Days + StartTime/EndTime (+ optional break), all
//     "H:MM AM/PM" strings;
//   - legacy: a single Day plus compact range strings such as "9AM-1PM".
//
// A record is treated as structured whenever Days is non-empty.
type ScheduleEntry struct {
	Days       []string `bson:"days,omitempty" json:"days,omitempty"`
	StartTime  string   `bson:"startTime,omitempty" json:"startTime,omitempty"`
	EndTime    string   `bson:"endTime,omitempty" json:"endTime,omitempty"`
	BreakStart string   `bson:"breakStart,omitempty" json:"breakStart,omitempty"`
	BreakEnd   string   `bson:"breakEnd,omitempty" json:"breakEnd,omitempty"`

	// Legacy fields.
	Day   string   `bson:"day,omitempty" json:"day,omitempty"`
	Slots []string `bson:"slots,omitempty" json:"slots,omitempty"`
}

// IsStructured reports whether the entry uses the current schema shape.
func (e ScheduleEntry) IsStructured() bool {
	return len(e.Days) > 0
}

// LeaveRecord is an approved absence range. Leave administration lives in an
// external workflow; this service only reads approved records.
type LeaveRecord struct {
	FromDate string `bson:"fromDate" json:"fromDate"` // "YYYY-MM-DD"
	ToDate   string `bson:"toDate" json:"toDate"`
	Status   string `bson:"status" json:"status"` // only "approved" blocks booking
	Reason   string `bson:"reason,omitempty" json:"reason,omitempty"`
}

const LeaveStatusApproved = "approved"
