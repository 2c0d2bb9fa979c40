package models

import "time"

// Appointment is a booked slot. ID is assigned by the store and grows with
// creation order.
type Appointment struct {
	ID            int64
	Date          time.Time
	CaregiverName string
	PatientName   string
	VaccineName   string
}

// Counterpart returns the other party of the appointment as seen by a
// principal of the given kind.
func (a *Appointment) Counterpart(viewer Kind) string {
	if viewer == KindCaregiver {
		return a.PatientName
	}
	return a.CaregiverName
}
