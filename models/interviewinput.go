package models

import "time"

// InterviewRequest holds a proposed booking as submitted by the caller.
// ArrivalTime is an RFC3339 date-time; DurationMinutes must be positive.
type InterviewRequest struct {
	ApplicantName   string    `json:"applicant_name"`
	ApplicantID     string    `json:"applicant_id"`
	ArrivalTime     time.Time `json:"arrival_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Skills          []string  `json:"skills"`
	SpecialistID    string    `json:"specialist_id"`
}
