package models

// Vaccine is an inventory entry. Doses is never negative.
type Vaccine struct {
	Name  string
	Doses int
}
