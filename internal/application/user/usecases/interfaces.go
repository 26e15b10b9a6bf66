package usecases

import "context"

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// SessionIssuer mints session tokens after a successful login or signup.
type SessionIssuer interface {
	Issue(userID uint, username string) (string, error)
}

// WelcomeSender delivers the post-registration welcome mail.
type WelcomeSender interface {
	SendWelcomeEmail(to, username string) error
}

// TransactionRunner executes a function inside one database transaction.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type RegisterUserExecutor interface {
	Execute(ctx context.Context, cmd RegisterUserCommand) (*RegisterUserResult, error)
}

type AuthenticateUserExecutor interface {
	Execute(ctx context.Context, cmd AuthenticateUserCommand) (*AuthenticateUserResult, error)
}

type FollowUserExecutor interface {
	Execute(ctx context.Context, cmd FollowUserCommand) (*FollowUserResult, error)
}

type UnfollowUserExecutor interface {
	Execute(ctx context.Context, cmd UnfollowUserCommand) (*UnfollowUserResult, error)
}

type ListFollowingsExecutor interface {
	Execute(ctx context.Context, query ListFollowingsQuery) (*ListFollowingsResult, error)
}

type DeleteUserExecutor interface {
	Execute(ctx context.Context, cmd DeleteUserCommand) error
}
