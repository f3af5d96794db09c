package models

import "time"

// HospitalRecord is a patient's per-facility registration. The MRN is minted
// on the first booking at a hospital and reused afterwards.
type HospitalRecord struct {
	HospitalID string    `bson:"hospitalId" json:"hospitalId"`
	MRN        string    `bson:"mrn" json:"mrn"`
	LastVisit  time.Time `bson:"lastVisit" json:"lastVisit"`
}

// PatientProfile is the persisted patient record.
type PatientProfile struct {
	ID        string           `bson:"id" json:"id"`
	Name      string           `bson:"name" json:"name"`
	Phone     string           `bson:"phone,omitempty" json:"phone,omitempty"`
	Records   []HospitalRecord `bson:"records,omitempty" json:"records,omitempty"`
	CreatedAt time.Time        `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time        `bson:"updatedAt" json:"updatedAt"`
}

// RecordFor returns the patient's record at hospitalID, or nil.
func (p *PatientProfile) RecordFor(hospitalID string) *HospitalRecord {
	for i := range p.Records {
		if p.Records[i].HospitalID == hospitalID {
			return &p.Records[i]
		}
	}
	return nil
}
