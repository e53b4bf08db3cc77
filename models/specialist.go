package models

import "time"

// Specialist represents an interviewer resource: a person with a skill set
// and a daily availability window.
type Specialist struct {
	ID                string    `bson:"id" json:"id"`
	FullName          string    `bson:"full_name" json:"name"`
	AvailabilityStart string    `bson:"availability_start" json:"availability_start"` // wall clock, "HH:MM"
	AvailabilityEnd   string    `bson:"availability_end" json:"availability_end"`     // wall clock, "HH:MM"
	Skills            []string  `bson:"skills" json:"skills"`
	CreatedAt         time.Time `bson:"created_at" json:"created_at,omitzero"`
	UpdatedAt         time.Time `bson:"updated_at" json:"updated_at,omitzero"`
}

// SpecialistInput is the payload accepted by the specialist CRUD endpoints.
type SpecialistInput struct {
	FullName          string   `json:"name"`
	AvailabilityStart string   `json:"availability_start"`
	AvailabilityEnd   string   `json:"availability_end"`
	Skills            []string `json:"skills"`
}
