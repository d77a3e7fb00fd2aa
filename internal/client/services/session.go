// Package services contains the application services behind the CLI:
// the session store, the offer search engine, and the technology
// statistics view-model.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/jobtechradar/radar/internal/client/client"
	"github.com/jobtechradar/radar/internal/client/models"
	"github.com/jobtechradar/radar/internal/client/repositories/metadata"
	"github.com/jobtechradar/radar/internal/dbx"
	"github.com/jobtechradar/radar/internal/logging"
)

// ErrBusy is returned when a session-mutating call arrives while another
// one is still in flight. Callers should retry once the first completes.
var ErrBusy = errors.New("session operation already in progress")

// User-facing messages, matching the web UI's wording.
const (
	msgLoginFailed      = "Échec de la connexion. Vérifiez vos identifiants."
	msgRegisterFailed   = "Échec de l'inscription. Veuillez réessayer."
	msgRegisterDetailed = "Échec de l'inscription: %s"
)

// Session holds the authenticated identity shared by every view.
// Invariant: IsAuthenticated() ⇔ a token is held AND the user was
// successfully fetched with it. The only state that survives restarts is
// the bearer token, persisted through the metadata repository.
type Session struct {
	mu            sync.Mutex
	api           client.Client
	db            *sql.DB
	meta          metadata.Repository
	log           logging.Logger
	user          *models.User
	token         string
	authenticated bool
	errMsg        string
	loading       bool
}

func NewSession(api client.Client, repos *client.Repositories, log logging.Logger) *Session {
	return &Session{api: api, db: repos.DB, meta: repos.Metadata, log: log}
}

// Restore checks for a persisted token on startup and, if one exists,
// fetches the current user. On any failure the stale token is discarded
// and the session stays anonymous. Restore never fails from the caller's
// point of view; problems are only logged.
func (s *Session) Restore(ctx context.Context) {
	token, err := s.meta.Get(ctx, metadata.KeyToken)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.log.Warn(ctx, "session restore: token read failed", "error", err)
		}
		return
	}
	if token == "" {
		return
	}

	user, err := s.api.CurrentUser(ctx, token)
	if err != nil {
		s.log.Warn(ctx, "session restore: user fetch failed, dropping token", "error", err)
		if derr := s.meta.Delete(ctx, metadata.KeyToken); derr != nil {
			s.log.Error(ctx, "session restore: token delete failed", "error", derr)
		}
		return
	}

	s.mu.Lock()
	s.user = &user
	s.token = token
	s.authenticated = true
	s.mu.Unlock()
	s.log.Info(ctx, "session restored", "username", user.Username)
}

// beginOp is the single-flight guard for session-mutating operations.
func (s *Session) beginOp() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loading {
		return ErrBusy
	}
	s.loading = true
	s.errMsg = ""
	return nil
}

func (s *Session) endOp() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

// Login exchanges credentials for a bearer token, persists it, and
// fetches the user. On failure the previous session state is left in
// place and Err() carries a user-facing message. A concurrent mutating
// call gets ErrBusy.
func (s *Session) Login(ctx context.Context, identifier, secret string) error {
	if err := s.beginOp(); err != nil {
		return err
	}
	defer s.endOp()
	return s.doLogin(ctx, identifier, secret)
}

// doLogin assumes the single-flight guard is held.
func (s *Session) doLogin(ctx context.Context, identifier, secret string) error {
	token, err := s.api.Login(ctx, identifier, secret)
	if err != nil {
		s.setError(msgLoginFailed)
		s.log.Warn(ctx, "login failed", "identifier", identifier, "error", err)
		return err
	}

	if err := s.meta.Set(ctx, metadata.KeyToken, token); err != nil {
		s.setError(msgLoginFailed)
		return fmt.Errorf("persist token: %w", err)
	}

	user, err := s.api.CurrentUser(ctx, token)
	if err != nil {
		s.setError(msgLoginFailed)
		s.log.Warn(ctx, "login: user fetch failed", "error", err)
		return err
	}

	s.mu.Lock()
	s.user = &user
	s.token = token
	s.authenticated = true
	s.mu.Unlock()
	s.log.Info(ctx, "logged in", "username", user.Username)
	return nil
}

// Register creates an account and immediately logs in with the same
// credentials. A server-provided detail message is surfaced verbatim in
// the error message when available.
func (s *Session) Register(ctx context.Context, email, username, secret string) error {
	if err := s.beginOp(); err != nil {
		return err
	}
	defer s.endOp()

	if _, err := s.api.Register(ctx, email, username, secret); err != nil {
		if detail := client.Detail(err); detail != "" {
			s.setError(fmt.Sprintf(msgRegisterDetailed, detail))
		} else {
			s.setError(msgRegisterFailed)
		}
		s.log.Warn(ctx, "registration failed", "email", email, "error", err)
		return err
	}

	// Auto-login after registration, like the web UI.
	return s.doLogin(ctx, email, secret)
}

// Logout clears the persisted token and resets the session locally.
// It performs no network call.
func (s *Session) Logout(ctx context.Context) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return metadata.NewSQLiteRepository(tx).Clear(ctx)
	})
	if err != nil {
		return fmt.Errorf("clear persisted session: %w", err)
	}

	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.authenticated = false
	s.errMsg = ""
	s.mu.Unlock()
	return nil
}

func (s *Session) setError(msg string) {
	s.mu.Lock()
	s.errMsg = msg
	s.mu.Unlock()
}

func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// User returns a copy of the current user, or nil when anonymous.
func (s *Session) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Err returns the message from the last failed operation, empty after a
// success or a fresh attempt.
func (s *Session) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}
