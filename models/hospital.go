package models

import "time"

// Hospital is the facility record. HelpdeskIDs are the accounts that receive
// booking-request notifications alongside the doctor.
type Hospital struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Address     string    `bson:"address,omitempty" json:"address,omitempty"`
	HelpdeskIDs []string  `bson:"helpdeskIds,omitempty" json:"helpdeskIds,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}
