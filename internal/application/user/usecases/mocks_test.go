package usecases

import (
	"context"

	"litrevu/internal/domain/review"
	"litrevu/internal/domain/ticket"
	"litrevu/internal/domain/user"
	"litrevu/internal/shared/errors"
	"litrevu/internal/shared/logger"
)

type mockUserRepository struct {
	SaveFunc             func(ctx context.Context, u *user.User) error
	FindByIDFunc         func(ctx context.Context, id uint) (*user.User, error)
	FindByUsernameFunc   func(ctx context.Context, username string) (*user.User, error)
	ExistsByUsernameFunc func(ctx context.Context, username string) (bool, error)
	DeleteFunc           func(ctx context.Context, id uint) error
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.ExistsByUsernameFunc != nil {
		return m.ExistsByUsernameFunc(ctx, username)
	}
	return false, nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockFollowRepository struct {
	SaveFunc             func(ctx context.Context, edge *user.FollowEdge) error
	ExistsFunc           func(ctx context.Context, followerID, followedID uint) (bool, error)
	DeleteFunc           func(ctx context.Context, followerID, followedID uint) (bool, error)
	ListFollowedIDsFunc  func(ctx context.Context, followerID uint) ([]uint, error)
	ListFollowingsFunc   func(ctx context.Context, followerID uint) ([]*user.User, error)
	ListFollowersFunc    func(ctx context.Context, followedID uint) ([]*user.User, error)
	DeleteAllForUserFunc func(ctx context.Context, userID uint) error
}

func (m *mockFollowRepository) Save(ctx context.Context, edge *user.FollowEdge) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, edge)
	}
	return nil
}

func (m *mockFollowRepository) Exists(ctx context.Context, followerID, followedID uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, followerID, followedID)
	}
	return false, nil
}

func (m *mockFollowRepository) Delete(ctx context.Context, followerID, followedID uint) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, followerID, followedID)
	}
	return false, nil
}

func (m *mockFollowRepository) ListFollowedIDs(ctx context.Context, followerID uint) ([]uint, error) {
	if m.ListFollowedIDsFunc != nil {
		return m.ListFollowedIDsFunc(ctx, followerID)
	}
	return nil, nil
}

func (m *mockFollowRepository) ListFollowings(ctx context.Context, followerID uint) ([]*user.User, error) {
	if m.ListFollowingsFunc != nil {
		return m.ListFollowingsFunc(ctx, followerID)
	}
	return nil, nil
}

func (m *mockFollowRepository) ListFollowers(ctx context.Context, followedID uint) ([]*user.User, error) {
	if m.ListFollowersFunc != nil {
		return m.ListFollowersFunc(ctx, followedID)
	}
	return nil, nil
}

func (m *mockFollowRepository) DeleteAllForUser(ctx context.Context, userID uint) error {
	if m.DeleteAllForUserFunc != nil {
		return m.DeleteAllForUserFunc(ctx, userID)
	}
	return nil
}

type mockTicketRepository struct {
	ListByAuthorIDsFunc   func(ctx context.Context, authorIDs []uint) ([]*ticket.Ticket, error)
	DeleteByCreatorIDFunc func(ctx context.Context, creatorID uint) error
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error   { return nil }
func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error { return nil }
func (m *mockTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	return nil, nil
}
func (m *mockTicketRepository) Delete(ctx context.Context, id uint) error { return nil }

func (m *mockTicketRepository) ListByAuthorIDs(ctx context.Context, authorIDs []uint) ([]*ticket.Ticket, error) {
	if m.ListByAuthorIDsFunc != nil {
		return m.ListByAuthorIDsFunc(ctx, authorIDs)
	}
	return nil, nil
}

func (m *mockTicketRepository) HasReview(ctx context.Context, ticketID uint) (bool, error) {
	return false, nil
}

func (m *mockTicketRepository) DeleteByCreatorID(ctx context.Context, creatorID uint) error {
	if m.DeleteByCreatorIDFunc != nil {
		return m.DeleteByCreatorIDFunc(ctx, creatorID)
	}
	return nil
}

type mockReviewRepository struct {
	FindByTicketIDFunc   func(ctx context.Context, ticketID uint) (*review.Review, error)
	ListByAuthorIDsFunc  func(ctx context.Context, authorIDs []uint) ([]*review.Review, error)
	DeleteByTicketIDFunc func(ctx context.Context, ticketID uint) error
	DeleteByAuthorIDFunc func(ctx context.Context, authorID uint) error
}

func (m *mockReviewRepository) Save(ctx context.Context, r *review.Review) error   { return nil }
func (m *mockReviewRepository) Update(ctx context.Context, r *review.Review) error { return nil }
func (m *mockReviewRepository) FindByID(ctx context.Context, id uint) (*review.Review, error) {
	return nil, errors.NewNotFoundError("review not found")
}
func (m *mockReviewRepository) Delete(ctx context.Context, id uint) error { return nil }
func (m *mockReviewRepository) ExistsForTicket(ctx context.Context, ticketID uint) (bool, error) {
	return false, nil
}

func (m *mockReviewRepository) FindByTicketID(ctx context.Context, ticketID uint) (*review.Review, error) {
	if m.FindByTicketIDFunc != nil {
		return m.FindByTicketIDFunc(ctx, ticketID)
	}
	return nil, errors.NewNotFoundError("no review for this ticket")
}

func (m *mockReviewRepository) ListByAuthorIDs(ctx context.Context, authorIDs []uint) ([]*review.Review, error) {
	if m.ListByAuthorIDsFunc != nil {
		return m.ListByAuthorIDsFunc(ctx, authorIDs)
	}
	return nil, nil
}

func (m *mockReviewRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	if m.DeleteByTicketIDFunc != nil {
		return m.DeleteByTicketIDFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockReviewRepository) DeleteByAuthorID(ctx context.Context, authorID uint) error {
	if m.DeleteByAuthorIDFunc != nil {
		return m.DeleteByAuthorIDFunc(ctx, authorID)
	}
	return nil
}

type mockCommentRepository struct {
	DeleteByReviewIDFunc func(ctx context.Context, reviewID uint) error
	DeleteByAuthorIDFunc func(ctx context.Context, authorID uint) error
}

func (m *mockCommentRepository) Save(ctx context.Context, c *review.Comment) error { return nil }
func (m *mockCommentRepository) ListByReviewID(ctx context.Context, reviewID uint) ([]*review.Comment, error) {
	return nil, nil
}

func (m *mockCommentRepository) DeleteByReviewID(ctx context.Context, reviewID uint) error {
	if m.DeleteByReviewIDFunc != nil {
		return m.DeleteByReviewIDFunc(ctx, reviewID)
	}
	return nil
}

func (m *mockCommentRepository) DeleteByAuthorID(ctx context.Context, authorID uint) error {
	if m.DeleteByAuthorIDFunc != nil {
		return m.DeleteByAuthorIDFunc(ctx, authorID)
	}
	return nil
}

type mockHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(password, hash string) error
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockHasher) Verify(password, hash string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, hash)
	}
	return nil
}

type mockSessionIssuer struct {
	IssueFunc func(userID uint, username string) (string, error)
}

func (m *mockSessionIssuer) Issue(userID uint, username string) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(userID, username)
	}
	return "token", nil
}

type mockWelcomeSender struct {
	SendWelcomeEmailFunc func(to, username string) error
}

func (m *mockWelcomeSender) SendWelcomeEmail(to, username string) error {
	if m.SendWelcomeEmailFunc != nil {
		return m.SendWelcomeEmailFunc(to, username)
	}
	return nil
}

type mockTxRunner struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)              {}
func (m *mockLogger) Info(msg string, args ...any)               {}
func (m *mockLogger) Warn(msg string, args ...any)               {}
func (m *mockLogger) Error(msg string, args ...any)              {}
func (m *mockLogger) With(args ...any) logger.Interface          { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...any)    {}
func (m *mockLogger) Infow(msg string, keysAndValues ...any)     {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...any)     {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...any)    {}
