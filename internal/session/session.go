// Package session tracks who is logged in to one interactive REPL.
package session

import (
	"fmt"

	"github.com/dmitrijs2005/vaxscheduler/internal/common"
	"github.com/dmitrijs2005/vaxscheduler/internal/models"
	"github.com/google/uuid"
)

var (
	ErrPatientRequired   = fmt.Errorf("%w: patient login required", common.ErrNotAuthorized)
	ErrCaregiverRequired = fmt.Errorf("%w: caregiver login required", common.ErrNotAuthorized)
)

// Session is either logged out or holds exactly one principal. The zero
// value is not usable; create sessions with New.
type Session struct {
	id       uuid.UUID
	role     models.Kind
	userName string
}

func New() *Session {
	return &Session{id: uuid.New()}
}

// ID identifies the session in logs.
func (s *Session) ID() string { return s.id.String() }

// Role is empty when logged out.
func (s *Session) Role() models.Kind { return s.role }

func (s *Session) UserName() string { return s.userName }

func (s *Session) LoggedIn() bool { return s.userName != "" }

func (s *Session) Login(p *models.Principal) error {
	if s.LoggedIn() {
		return common.ErrAlreadyLoggedIn
	}
	if p == nil || !p.Kind.Valid() || p.UserName == "" {
		return common.ErrInvalidInput
	}
	s.role = p.Kind
	s.userName = p.UserName
	return nil
}

func (s *Session) Logout() error {
	if !s.LoggedIn() {
		return common.ErrNotLoggedIn
	}
	s.role = ""
	s.userName = ""
	return nil
}

// RequireAny returns the logged-in username or common.ErrNotAuthorized.
func (s *Session) RequireAny() (string, error) {
	if !s.LoggedIn() {
		return "", common.ErrNotAuthorized
	}
	return s.userName, nil
}

func (s *Session) RequirePatient() (string, error) {
	if s.role != models.KindPatient {
		return "", ErrPatientRequired
	}
	return s.userName, nil
}

func (s *Session) RequireCaregiver() (string, error) {
	if s.role != models.KindCaregiver {
		return "", ErrCaregiverRequired
	}
	return s.userName, nil
}
