package session

import (
	"testing"

	"github.com/dmitrijs2005/vaxscheduler/internal/common"
	"github.com/dmitrijs2005/vaxscheduler/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_LoggedOutWithID(t *testing.T) {
	s := New()

	_, err := uuid.Parse(s.ID())
	require.NoError(t, err)
	assert.False(t, s.LoggedIn())
	assert.Empty(t, s.Role())
	assert.NotEqual(t, s.ID(), New().ID())
}

func TestSession_StateMachine(t *testing.T) {
	s := New()
	patient := &models.Principal{Kind: models.KindPatient, UserName: "pete"}
	caregiver := &models.Principal{Kind: models.KindCaregiver, UserName: "carol"}

	require.ErrorIs(t, s.Logout(), common.ErrNotLoggedIn)

	require.NoError(t, s.Login(patient))
	assert.Equal(t, models.KindPatient, s.Role())
	assert.Equal(t, "pete", s.UserName())

	require.ErrorIs(t, s.Login(caregiver), common.ErrAlreadyLoggedIn)
	assert.Equal(t, "pete", s.UserName(), "state unchanged after rejected login")

	require.NoError(t, s.Logout())
	assert.False(t, s.LoggedIn())

	require.NoError(t, s.Login(caregiver))
	assert.Equal(t, models.KindCaregiver, s.Role())
}

func TestSession_LoginRejectsBadPrincipal(t *testing.T) {
	s := New()
	require.ErrorIs(t, s.Login(nil), common.ErrInvalidInput)
	require.ErrorIs(t, s.Login(&models.Principal{Kind: "admin", UserName: "root"}), common.ErrInvalidInput)
	assert.False(t, s.LoggedIn())
}

func TestSession_Require(t *testing.T) {
	tests := []struct {
		name         string
		principal    *models.Principal
		anyErr       error
		patientErr   error
		caregiverErr error
	}{
		{name: "logged out", anyErr: common.ErrNotAuthorized, patientErr: ErrPatientRequired, caregiverErr: ErrCaregiverRequired},
		{name: "patient", principal: &models.Principal{Kind: models.KindPatient, UserName: "pete"}, caregiverErr: ErrCaregiverRequired},
		{name: "caregiver", principal: &models.Principal{Kind: models.KindCaregiver, UserName: "carol"}, patientErr: ErrPatientRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			if tt.principal != nil {
				require.NoError(t, s.Login(tt.principal))
			}

			check := func(name string, err, want error) {
				if want == nil {
					assert.NoError(t, err, name)
					assert.Equal(t, tt.principal.UserName, s.UserName())
					return
				}
				assert.ErrorIs(t, err, want, name)
				assert.ErrorIs(t, err, common.ErrNotAuthorized, name)
			}

			_, err := s.RequireAny()
			check("any", err, tt.anyErr)
			_, err = s.RequirePatient()
			check("patient", err, tt.patientErr)
			_, err = s.RequireCaregiver()
			check("caregiver", err, tt.caregiverErr)
		})
	}
}
