// Package models defines the scheduler's persisted records and read models.
package models

import "fmt"

// Kind tells the two principal namespaces apart. The same username may exist
// once as a patient and once as a caregiver.
type Kind string

const (
	KindPatient   Kind = "patient"
	KindCaregiver Kind = "caregiver"
)

func (k Kind) Valid() bool {
	return k == KindPatient || k == KindCaregiver
}

// Principal is a registered user of either kind.
type Principal struct {
	Kind     Kind
	UserName string
	Salt     []byte
	Hash     []byte
}

func (p *Principal) String() string {
	return fmt.Sprintf("%s %s", p.Kind, p.UserName)
}
