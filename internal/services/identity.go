// Package services contains the application services of the quiz client.
// This file defines the identity & progress store: registration, login,
// the single active session and the learner's saved quiz position.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/journalquiz/internal/common"
	"github.com/dmitrijs2005/journalquiz/internal/cryptox"
	"github.com/dmitrijs2005/journalquiz/internal/dbx"
	"github.com/dmitrijs2005/journalquiz/internal/logging"
	"github.com/dmitrijs2005/journalquiz/internal/models"
	"github.com/dmitrijs2005/journalquiz/internal/repositories/kv"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Keys of the logical records kept in the kv store. Each value is a complete
// JSON document, read and written whole.
const (
	usersKey         = "users"
	currentUserKey   = "current_user"
	customQuizzesKey = "custom_quizzes"
)

// IdentityService manages learner records and the single active session.
//
// Contract:
//   - Register: create a record (unique email and phone) and log it in.
//     Beyond uniqueness it also refuses a blank email, phone or password
//     with common.ErrorMissingField; a blank name is accepted.
//   - Login: identifier is an email or a phone number.
//   - Logout: clear the session; idempotent.
//   - CurrentSession: the active record, or nil.
//   - SaveProgress: persist the quiz position; silently ignored when nobody
//     is logged in.
//   - ResetProgress: SaveProgress(0).
//
// Every mutation is committed before the method returns.
type IdentityService interface {
	Register(ctx context.Context, name, email string, password []byte, phone string) (*models.User, error)
	Login(ctx context.Context, identifier string, password []byte) (*models.User, error)
	Logout(ctx context.Context) error
	CurrentSession(ctx context.Context) (*models.User, error)
	SaveProgress(ctx context.Context, index int) error
	ResetProgress(ctx context.Context) error
}

type identityService struct {
	db     *sqlx.DB
	logger logging.Logger
	newID  func() string
}

// NewIdentityService constructs an IdentityService over the kv store in db.
func NewIdentityService(db *sqlx.DB, logger logging.Logger) IdentityService {
	return &identityService{
		db:     db,
		logger: logger,
		newID:  func() string { return uuid.NewString() },
	}
}

func (s *identityService) repo(db dbx.DBTX) kv.Repository {
	return kv.NewRepository(db)
}

func (s *identityService) Register(ctx context.Context, name, email string, password []byte, phone string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)
	if email == "" || phone == "" || len(password) == 0 {
		return nil, fmt.Errorf("email, phone and password are required: %w", common.ErrorMissingField)
	}

	var user models.User
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)

		users, err := loadUsers(ctx, repo)
		if err != nil {
			return err
		}
		for _, u := range users {
			if u.Email == email || u.Phone == phone {
				return ErrDuplicateIdentity
			}
		}

		salt, verifier := cryptox.HashPassword(password)
		user = models.User{
			ID:         s.newID(),
			Name:       name,
			Email:      email,
			Credential: models.Credential{Salt: salt, Verifier: verifier},
			Phone:      phone,
			Progress:   0,
		}

		if err := saveJSON(ctx, repo, usersKey, append(users, user)); err != nil {
			return err
		}
		return saveJSON(ctx, repo, currentUserKey, user)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "user registered", "user_id", user.ID)
	return &user, nil
}

func (s *identityService) Login(ctx context.Context, identifier string, password []byte) (*models.User, error) {
	identifier = strings.TrimSpace(identifier)

	var user *models.User
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)

		users, err := loadUsers(ctx, repo)
		if err != nil {
			return err
		}
		for i := range users {
			u := users[i]
			if u.Email != identifier && u.Phone != identifier {
				continue
			}
			if cryptox.CheckPassword(password, u.Credential.Salt, u.Credential.Verifier) {
				user = &u
				break
			}
		}
		if user == nil {
			return ErrInvalidCredentials
		}
		return saveJSON(ctx, repo, currentUserKey, user)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "user logged in", "user_id", user.ID)
	return user, nil
}

func (s *identityService) Logout(ctx context.Context) error {
	if err := s.repo(s.db).Delete(ctx, currentUserKey); err != nil {
		return err
	}
	s.logger.Debug(ctx, "session cleared")
	return nil
}

func (s *identityService) CurrentSession(ctx context.Context) (*models.User, error) {
	return loadCurrentUser(ctx, s.repo(s.db))
}

// SaveProgress writes index to the session snapshot and to the matching
// record in the users collection inside one transaction, so both always
// agree after the call.
func (s *identityService) SaveProgress(ctx context.Context, index int) error {
	if index < 0 {
		return ErrInvalidProgress
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)

		current, err := loadCurrentUser(ctx, repo)
		if err != nil {
			return err
		}
		if current == nil {
			return ErrNoActiveSession
		}

		current.Progress = index
		if err := saveJSON(ctx, repo, currentUserKey, current); err != nil {
			return err
		}

		users, err := loadUsers(ctx, repo)
		if err != nil {
			return err
		}
		for i := range users {
			if users[i].ID == current.ID {
				users[i].Progress = index
				return saveJSON(ctx, repo, usersKey, users)
			}
		}
		s.logger.Warn(ctx, "session user missing from users collection", "user_id", current.ID)
		return nil
	})
	if errors.Is(err, ErrNoActiveSession) {
		s.logger.Debug(ctx, "progress not saved: no active session", "index", index)
		return nil
	}
	return err
}

func (s *identityService) ResetProgress(ctx context.Context) error {
	return s.SaveProgress(ctx, 0)
}

func loadUsers(ctx context.Context, repo kv.Repository) ([]models.User, error) {
	var users []models.User
	if _, err := loadJSON(ctx, repo, usersKey, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func loadCurrentUser(ctx context.Context, repo kv.Repository) (*models.User, error) {
	var user models.User
	found, err := loadJSON(ctx, repo, currentUserKey, &user)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

// loadJSON decodes the value under key into v and reports whether the key
// was present.
func loadJSON(ctx context.Context, repo kv.Repository, key string, v any) (bool, error) {
	raw, err := repo.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func saveJSON(ctx context.Context, repo kv.Repository, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return repo.Set(ctx, key, raw)
}
