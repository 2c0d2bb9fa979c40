package models

import "time"

// Availability records that a caregiver offers appointments on Date.
type Availability struct {
	CaregiverName string
	Date          time.Time
}

// ScheduleRow is one line of the availability search: a caregiver available on
// the searched date paired with a known vaccine. Vaccine is empty and Doses is
// zero when the inventory holds no vaccines at all.
type ScheduleRow struct {
	CaregiverName string
	Vaccine       string
	Doses         int
}
