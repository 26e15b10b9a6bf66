package usecases

import (
	"context"

	"litrevu/internal/domain/user"
	"litrevu/internal/shared/errors"
	"litrevu/internal/shared/logger"
)

type AuthenticateUserCommand struct {
	Username string
	Password string
}

type AuthenticateUserResult struct {
	UserID   uint
	Username string
	Token    string
}

type AuthenticateUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	sessions SessionIssuer
	logger   logger.Interface
}

func NewAuthenticateUserUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	sessions SessionIssuer,
	logger logger.Interface,
) *AuthenticateUserUseCase {
	return &AuthenticateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		sessions: sessions,
		logger:   logger,
	}
}

func (uc *AuthenticateUserUseCase) Execute(ctx context.Context, cmd AuthenticateUserCommand) (*AuthenticateUserResult, error) {
	u, err := uc.userRepo.FindByUsername(ctx, cmd.Username)
	if err != nil {
		if errors.IsNotFoundError(err) {
			// Same message as a bad password so probing for usernames fails.
			return nil, errors.NewUnauthorizedError("invalid username or password")
		}
		uc.logger.Errorw("failed to look up user", "error", err)
		return nil, err
	}

	if err := uc.hasher.Verify(cmd.Password, u.PasswordHash()); err != nil {
		uc.logger.Infow("failed login attempt", "username", cmd.Username)
		return nil, errors.NewUnauthorizedError("invalid username or password")
	}

	token, err := uc.sessions.Issue(u.ID(), u.Username().String())
	if err != nil {
		uc.logger.Errorw("failed to issue session token", "error", err)
		return nil, errors.NewInternalError("failed to start session")
	}

	uc.logger.Infow("user authenticated", "user_id", u.ID())

	return &AuthenticateUserResult{
		UserID:   u.ID(),
		Username: u.Username().String(),
		Token:    token,
	}, nil
}
