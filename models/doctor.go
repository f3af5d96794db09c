package models

import "time"

// HospitalAffiliation binds a doctor to one facility, carrying the schedule
// records used to answer availability queries for that facility.
type HospitalAffiliation struct {
	HospitalID string          `bson:"hospitalId" json:"hospitalId"`
	Department string          `bson:"department,omitempty" json:"department,omitempty"`
	Schedule   []ScheduleEntry `bson:"schedule,omitempty" json:"schedule,omitempty"`
}

// DoctorProfile is the persisted doctor record.
type DoctorProfile struct {
	ID        string                `bson:"id" json:"id"`
	UserID    string                `bson:"userId" json:"userId"` // account of the doctor themselves
	Name      string                `bson:"name" json:"name"`
	Specialty string                `bson:"specialty,omitempty" json:"specialty,omitempty"`
	Hospitals []HospitalAffiliation `bson:"hospitals,omitempty" json:"hospitals,omitempty"`
	Leaves    []LeaveRecord         `bson:"leaves,omitempty" json:"leaves,omitempty"`
	CreatedAt time.Time             `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time             `bson:"updatedAt" json:"updatedAt"`
}

// AffiliationFor returns the affiliation matching hospitalID, or nil.
func (d *DoctorProfile) AffiliationFor(hospitalID string) *HospitalAffiliation {
	for i := range d.Hospitals {
		if d.Hospitals[i].HospitalID == hospitalID {
			return &d.Hospitals[i]
		}
	}
	return nil
}
