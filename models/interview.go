package models

import "time"

// Interview represents a confirmed applicant booking assigned to one specialist.
// An interview occupies the half-open interval [ArrivalTime, End()).
type Interview struct {
	ID              string    `bson:"id" json:"id"`
	ApplicantName   string    `bson:"applicant_name" json:"applicant_name"`
	ApplicantID     string    `bson:"applicant_id" json:"applicant_id"`
	ArrivalTime     time.Time `bson:"arrival_time" json:"arrival_time"`
	DurationMinutes int       `bson:"duration_minutes" json:"duration_minutes"`
	Skills          []string  `bson:"skills" json:"skills"`
	SpecialistID    string    `bson:"specialist_id" json:"specialist_id"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at,omitzero"`
}

// End returns the exclusive end of the occupied interval.
func (iv Interview) End() time.Time {
	return iv.ArrivalTime.Add(time.Duration(iv.DurationMinutes) * time.Minute)
}

// InterviewWithSpecialist is the listing shape: an interview joined with the
// name of the specialist it is booked against.
type InterviewWithSpecialist struct {
	Interview      `bson:",inline"`
	SpecialistName string `bson:"specialist_name" json:"specialist_name"`
}
