// Package datastore owns every task and user record plus the current session,
// and mirrors that state into a durable blob store after each mutation.
//
// A Store is single-threaded: callers that share one across goroutines must
// serialize access (see usecase.Dispatcher).
package datastore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fastygo/taskboard/domain"
	"github.com/fastygo/taskboard/repository"
)

// DefaultKeyPrefix namespaces the three durable entries.
const DefaultKeyPrefix = "taskboard_"

// Config tunes a Store. Zero values fall back to defaults.
type Config struct {
	KeyPrefix string
	Now       func() time.Time
	NewID     func() string
}

// Store is the data-access layer for tasks, users and the session.
type Store struct {
	blobs  repository.BlobStore
	logger *zap.Logger
	now    func() time.Time
	newID  func() string
	keys   storageKeys

	tasks   []domain.Task
	users   []domain.User
	session domain.Session
}

// New builds a Store on top of blobs. Call Initialize before use.
func New(blobs repository.BlobStore, logger *zap.Logger, cfg Config) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = DefaultKeyPrefix
	}
	if cfg.Now == nil {
		cfg.Now = func() time.Time { return time.Now().UTC() }
	}
	if cfg.NewID == nil {
		cfg.NewID = uuid.NewString
	}
	return &Store{
		blobs:  blobs,
		logger: logger,
		now:    cfg.Now,
		newID:  cfg.NewID,
		keys:   newStorageKeys(cfg.KeyPrefix),
	}
}

// Initialize loads tasks, users and the session from durable storage.
// When no user list exists the default account is seeded and persisted.
func (s *Store) Initialize(ctx context.Context) error {
	state, err := s.load(ctx)
	if err != nil {
		return err
	}

	s.tasks = state.tasks
	s.users = state.users
	s.session.Clear()

	seeded := !state.hasUsers
	if seeded {
		s.users = []domain.User{DefaultUser()}
	}

	// The session is restored before the seed flush so the flush keeps it durable.
	if state.current != nil {
		if u := s.findUser(state.current.ID); u != nil {
			s.session.Set(cloneUser(u))
		} else {
			s.logger.Warn("discarding session for unknown user", zap.String("user_id", state.current.ID))
		}
	}

	if seeded {
		if err := s.persist(ctx); err != nil {
			return err
		}
		s.logger.Info("seeded default account", zap.String("username", DefaultUsername))
	}

	s.logger.Debug("store initialized",
		zap.Int("tasks", len(s.tasks)),
		zap.Int("users", len(s.users)),
		zap.Bool("session", s.session.Active()))
	return nil
}

// Login sets the session to the user matching username and password exactly.
// It returns (nil, nil) when nothing matches and leaves any prior session in place.
func (s *Store) Login(ctx context.Context, username, password string) (*domain.User, error) {
	var match *domain.User
	for i := range s.users {
		if s.users[i].Matches(username, password) {
			match = &s.users[i]
			break
		}
	}
	if match == nil {
		return nil, nil
	}

	snap := s.snapshot()
	s.session.Set(cloneUser(match))
	if err := s.persist(ctx); err != nil {
		return nil, s.rollback(ctx, snap, err)
	}
	return cloneUser(match), nil
}

// Logout clears the session and removes its durable entry.
func (s *Store) Logout(ctx context.Context) error {
	snap := s.snapshot()
	s.session.Clear()
	if err := s.blobs.Delete(ctx, s.keys.currentUser); err != nil {
		s.restore(snap)
		return domain.WrapError(domain.ErrCodeInternal, "clear session", err)
	}
	return nil
}

// CurrentUser returns a copy of the session user, or nil.
func (s *Store) CurrentUser() *domain.User {
	return cloneUser(s.session.User())
}

func (s *Store) IsAuthenticated() bool {
	return s.session.Active()
}

func (s *Store) findUser(id string) *domain.User {
	for i := range s.users {
		if s.users[i].ID == id {
			return &s.users[i]
		}
	}
	return nil
}

func (s *Store) requireSession() (string, error) {
	if !s.session.Active() {
		return "", domain.ErrUnauthenticated
	}
	return s.session.UserID(), nil
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
