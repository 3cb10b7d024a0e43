package auth

import (
	"context"

	"go.uber.org/zap"

	"github.com/fastygo/taskboard/domain"
	"github.com/fastygo/taskboard/usecase"
)

type UseCase struct {
	store      usecase.SessionStore
	dispatcher *usecase.Dispatcher
	logger     *zap.Logger
}

func New(store usecase.SessionStore, dispatcher *usecase.Dispatcher, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if dispatcher == nil {
		dispatcher = usecase.NewDispatcher(logger, nil)
	}
	return &UseCase{
		store:      store,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Login opens a session. A credential mismatch surfaces as domain.ErrInvalidCredentials.
func (uc *UseCase) Login(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := usecase.Query(ctx, uc.dispatcher, "login", func(ctx context.Context) (*domain.User, error) {
		return uc.store.Login(ctx, username, password)
	})
	if err != nil {
		uc.logger.Error("login failed", zap.Error(err))
		return nil, err
	}
	if user == nil {
		uc.logger.Info("invalid credentials", zap.String("username", username))
		return nil, domain.ErrInvalidCredentials
	}
	uc.logger.Info("user logged in", zap.String("user_id", user.ID))
	return user, nil
}

func (uc *UseCase) Logout(ctx context.Context) error {
	var previous *domain.User
	err := uc.dispatcher.Exec(ctx, "logout", func(ctx context.Context) error {
		previous = uc.store.CurrentUser()
		return uc.store.Logout(ctx)
	})
	if err != nil {
		uc.logger.Error("logout failed", zap.Error(err))
		return err
	}
	if previous != nil {
		uc.logger.Info("user logged out", zap.String("user_id", previous.ID))
	}
	return nil
}

// CurrentUser returns the session user or domain.ErrUnauthenticated.
func (uc *UseCase) CurrentUser(ctx context.Context) (*domain.User, error) {
	return usecase.Query(ctx, uc.dispatcher, "current_user", func(context.Context) (*domain.User, error) {
		if u := uc.store.CurrentUser(); u != nil {
			return u, nil
		}
		return nil, domain.ErrUnauthenticated
	})
}
