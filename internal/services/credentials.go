package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/vaxscheduler/internal/common"
	"github.com/dmitrijs2005/vaxscheduler/internal/cryptox"
	"github.com/dmitrijs2005/vaxscheduler/internal/logging"
	"github.com/dmitrijs2005/vaxscheduler/internal/models"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/repomanager"
)

// CredentialService creates accounts and checks passwords. Patients and
// caregivers live in separate namespaces.
type CredentialService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewCredentialService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *CredentialService {
	return &CredentialService{db: db, repomanager: m, logger: logger}
}

// Create registers userName under kind. The password must satisfy
// cryptox.IsStrongPassword; only its salted hash is stored.
func (s *CredentialService) Create(ctx context.Context, kind models.Kind, userName string, password []byte) error {
	if !kind.Valid() || userName == "" {
		return common.ErrInvalidInput
	}

	repo := s.repomanager.Principals(s.db, kind)

	exists, err := repo.Exists(ctx, userName)
	if err != nil {
		return storageErr(err)
	}
	if exists {
		return common.ErrUsernameTaken
	}

	if !cryptox.IsStrongPassword(password) {
		return common.ErrWeakPassword
	}

	salt := cryptox.NewSalt()
	p := &models.Principal{Kind: kind, UserName: userName, Salt: salt, Hash: cryptox.HashPassword(password, salt)}

	if err := repo.Create(ctx, p); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return common.ErrUsernameTaken
		}
		return storageErr(err)
	}

	s.logger.Info(ctx, "principal created", "kind", kind, "username", userName)
	return nil
}

// Login returns the principal when password matches. Unknown users and wrong
// passwords both yield common.ErrLoginFailed.
func (s *CredentialService) Login(ctx context.Context, kind models.Kind, userName string, password []byte) (*models.Principal, error) {
	if !kind.Valid() {
		return nil, common.ErrInvalidInput
	}

	p, err := s.repomanager.Principals(s.db, kind).GetByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// burn the same amount of work as a real check
			cryptox.VerifyPassword(password, cryptox.NewSalt(), nil)
			s.logger.Debug(ctx, "login for unknown principal", "kind", kind, "username", userName)
			return nil, common.ErrLoginFailed
		}
		return nil, storageErr(err)
	}

	if !cryptox.VerifyPassword(password, p.Salt, p.Hash) {
		s.logger.Debug(ctx, "password mismatch", "kind", kind, "username", userName)
		return nil, common.ErrLoginFailed
	}
	return p, nil
}
