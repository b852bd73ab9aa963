// Package auth implements the launcher's local credential store: user
// registration and login with the historical validation rules, plus the
// single active session persisted across restarts.
package auth

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/derol/majestic-launcher/internal/common"
	"github.com/derol/majestic-launcher/internal/dbx"
	"github.com/derol/majestic-launcher/internal/launcher/storage"
	"github.com/derol/majestic-launcher/internal/logging"
)

// Service owns the user collection and the single active session.
//
// Contract:
//   - Register: validate, enforce login/email uniqueness, append the record,
//     persist, open a session. Structural problems come back as
//     ValidationErrors; a duplicate as common.ErrUserExists; persistence
//     failures as wrapped errors with no session opened.
//   - Login: exact-match login+password lookup; a miss is always
//     common.ErrInvalidCredentials so the caller cannot probe which logins exist.
//   - RestoreSession: best effort; absent or corrupt state means logged out.
//   - Logout: drop the persisted and in-memory session.
type Service struct {
	db     *sql.DB
	logger logging.Logger
	secret []byte

	mu      sync.Mutex
	current *Session
}

func NewService(db *sql.DB, logger logging.Logger, secret []byte) *Service {
	return &Service{db: db, logger: logger.With("component", "auth"), secret: secret}
}

func (s *Service) getStore() storage.Store {
	return storage.NewSQLiteStore(s.db)
}

func loadUsers(ctx context.Context, store storage.Store) ([]UserRecord, error) {
	raw, err := store.Get(ctx, storage.KeyUsers)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var users []UserRecord
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("failed to decode user collection: %w", err)
	}
	return users, nil
}

// Register validates the form, checks uniqueness and creates the account.
// The collection append and the session write happen in one transaction so
// the stored state is never half-updated.
func (s *Service) Register(ctx context.Context, login, email, password, confirm string) (*Session, error) {
	if errs := registrationErrors(login, email, password, confirm); len(errs) > 0 {
		return nil, errs
	}

	session := &Session{Login: login, Email: email}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		store := storage.NewSQLiteStore(tx)

		users, err := loadUsers(ctx, store)
		if err != nil {
			return err
		}
		for _, u := range users {
			if u.Login == login || u.Email == email {
				return common.ErrUserExists
			}
		}

		users = append(users, UserRecord{Login: login, Email: email, Password: password})
		raw, err := json.Marshal(users)
		if err != nil {
			return fmt.Errorf("failed to encode user collection: %w", err)
		}
		if err := store.Set(ctx, storage.KeyUsers, raw); err != nil {
			return err
		}

		return s.writeSession(ctx, store, session)
	})
	if err != nil {
		return nil, err
	}

	s.setCurrent(session)
	s.logger.Info(ctx, "user registered", "login", login)
	return session, nil
}

// Login authenticates against the stored collection. The comparison is
// case-sensitive on both fields.
func (s *Service) Login(ctx context.Context, login, password string) (*Session, error) {
	if errs := loginFormErrors(login, password); len(errs) > 0 {
		return nil, errs
	}

	store := s.getStore()

	users, err := loadUsers(ctx, store)
	if err != nil {
		return nil, err
	}

	var found *UserRecord
	for i := range users {
		if users[i].Login == login && users[i].Password == password {
			found = &users[i]
			break
		}
	}
	if found == nil {
		return nil, common.ErrInvalidCredentials
	}

	session := &Session{Login: found.Login, Email: found.Email}
	if err := s.writeSession(ctx, store, session); err != nil {
		return nil, err
	}

	s.setCurrent(session)
	s.logger.Info(ctx, "user logged in", "login", login)
	return session, nil
}

// RestoreSession loads the persisted session at startup. Any problem
// (missing key, unreadable store, corrupt token) means logged out; it is
// logged but never returned.
func (s *Service) RestoreSession(ctx context.Context) *Session {
	raw, err := s.getStore().Get(ctx, storage.KeySession)
	if err != nil {
		s.logger.Warn(ctx, "failed to read persisted session", "error", err)
		return nil
	}
	if raw == nil {
		return nil
	}

	session, err := parseSessionToken(string(raw), s.secret)
	if err != nil {
		s.logger.Warn(ctx, "discarding unreadable persisted session", "error", err)
		return nil
	}

	s.setCurrent(session)
	s.logger.Info(ctx, "session restored", "login", session.Login)
	return session
}

// Logout clears the persisted and the in-memory session. The in-memory
// session is dropped even when the delete fails.
func (s *Service) Logout(ctx context.Context) error {
	err := s.getStore().Delete(ctx, storage.KeySession)

	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err != nil {
		return fmt.Errorf("failed to clear persisted session: %w", err)
	}
	s.logger.Info(ctx, "user logged out")
	return nil
}

// Current returns the active session, or nil when logged out.
func (s *Service) Current() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Service) writeSession(ctx context.Context, store storage.Store, session *Session) error {
	token, err := issueSessionToken(session, s.secret)
	if err != nil {
		return fmt.Errorf("failed to issue session token: %w", err)
	}
	return store.Set(ctx, storage.KeySession, []byte(token))
}

func (s *Service) setCurrent(session *Session) {
	s.mu.Lock()
	s.current = session
	s.mu.Unlock()
}
