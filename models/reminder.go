package models

import "time"

// ReminderPayload is the task body enqueued when an accepted interview
// should trigger a reminder shortly before the applicant arrives.
type ReminderPayload struct {
	InterviewID    string    `json:"interviewId"`
	SpecialistID   string    `json:"specialistId"`
	SpecialistName string    `json:"specialistName"`
	ApplicantName  string    `json:"applicantName"`
	ArrivalTime    time.Time `json:"arrivalTime"`
}
