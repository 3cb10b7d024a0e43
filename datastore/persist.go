package datastore

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/fastygo/taskboard/domain"
)

type storageKeys struct {
	tasks       string
	users       string
	currentUser string
}

func newStorageKeys(prefix string) storageKeys {
	return storageKeys{
		tasks:       prefix + "tasks",
		users:       prefix + "users",
		currentUser: prefix + "current_user",
	}
}

type loadedState struct {
	tasks    []domain.Task
	users    []domain.User
	hasUsers bool
	current  *domain.User
}

func (s *Store) load(ctx context.Context) (loadedState, error) {
	var state loadedState

	if _, err := s.decode(ctx, s.keys.tasks, &state.tasks); err != nil {
		return state, err
	}
	found, err := s.decode(ctx, s.keys.users, &state.users)
	if err != nil {
		return state, err
	}
	state.hasUsers = found
	// A stored JSON null decodes to a nil pointer, which means logged out.
	if _, err := s.decode(ctx, s.keys.currentUser, &state.current); err != nil {
		return state, err
	}
	return state, nil
}

func (s *Store) decode(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := s.blobs.Get(ctx, key)
	if err != nil {
		return false, domain.WrapError(domain.ErrCodeInternal, "load "+key, err)
	}
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, domain.WrapError(domain.ErrCodeInternal, "decode "+key, err)
	}
	return true, nil
}

// persist flushes the full state: both collections and the session entry.
func (s *Store) persist(ctx context.Context) error {
	tasks := s.tasks
	if tasks == nil {
		tasks = []domain.Task{}
	}
	if err := s.encode(ctx, s.keys.tasks, tasks); err != nil {
		return err
	}
	if err := s.encode(ctx, s.keys.users, s.users); err != nil {
		return err
	}

	if u := s.session.User(); u != nil {
		return s.encode(ctx, s.keys.currentUser, u)
	}
	if err := s.blobs.Delete(ctx, s.keys.currentUser); err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "persist "+s.keys.currentUser, err)
	}
	return nil
}

func (s *Store) encode(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "encode "+key, err)
	}
	if err := s.blobs.Set(ctx, key, payload); err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "persist "+key, fmt.Errorf("%d bytes: %w", len(payload), err))
	}
	return nil
}

// snapshot captures in-memory state so a failed flush can be undone.
type snapshot struct {
	tasks   []domain.Task
	users   []domain.User
	current *domain.User
}

func (s *Store) snapshot() snapshot {
	return snapshot{
		tasks:   append([]domain.Task(nil), s.tasks...),
		users:   append([]domain.User(nil), s.users...),
		current: cloneUser(s.session.User()),
	}
}

func (s *Store) restore(snap snapshot) {
	s.tasks = snap.tasks
	s.users = snap.users
	s.session.Set(snap.current)
}

// rollback restores snap in memory and rewrites it to storage, undoing any
// entries a partial flush already replaced. It returns cause.
func (s *Store) rollback(ctx context.Context, snap snapshot, cause error) error {
	s.restore(snap)
	if err := s.persist(context.WithoutCancel(ctx)); err != nil {
		s.logger.Error("rollback flush failed, storage may hold a newer state",
			zap.NamedError("cause", cause), zap.Error(err))
	}
	return cause
}
