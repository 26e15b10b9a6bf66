package usecases

import (
	"context"

	"litrevu/internal/domain/user"
	vo "litrevu/internal/domain/user/valueobjects"
	"litrevu/internal/shared/errors"
	"litrevu/internal/shared/logger"
)

type RegisterUserCommand struct {
	Username string
	Email    string
	Password string
}

type RegisterUserResult struct {
	UserID   uint
	Username string
	Token    string
}

type RegisterUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	sessions SessionIssuer
	welcome  WelcomeSender
	logger   logger.Interface
}

func NewRegisterUserUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	sessions SessionIssuer,
	welcome WelcomeSender,
	logger logger.Interface,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		sessions: sessions,
		welcome:  welcome,
		logger:   logger,
	}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (*RegisterUserResult, error) {
	uc.logger.Infow("executing register user use case", "username", cmd.Username)

	username, err := vo.NewUsername(cmd.Username)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if _, err := vo.NewPassword(cmd.Password); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.userRepo.ExistsByUsername(ctx, username.String())
	if err != nil {
		uc.logger.Errorw("failed to check username", "error", err)
		return nil, err
	}
	if exists {
		return nil, errors.NewConflictError("username already taken")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}

	newUser, err := user.NewUser(username, hash, cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to save user", "error", err)
		return nil, err
	}

	token, err := uc.sessions.Issue(newUser.ID(), newUser.Username().String())
	if err != nil {
		uc.logger.Errorw("failed to issue session token", "error", err)
		return nil, errors.NewInternalError("failed to start session")
	}

	// Welcome mail must not block or fail registration.
	if newUser.Email() != "" {
		go func(to, name string) {
			if err := uc.welcome.SendWelcomeEmail(to, name); err != nil {
				uc.logger.Warnw("failed to send welcome email", "error", err)
			}
		}(newUser.Email(), newUser.Username().String())
	}

	uc.logger.Infow("user registered successfully", "user_id", newUser.ID())

	return &RegisterUserResult{
		UserID:   newUser.ID(),
		Username: newUser.Username().String(),
		Token:    token,
	}, nil
}
