package usecases

import (
	"context"

	"litrevu/internal/domain/review"
	"litrevu/internal/domain/ticket"
	"litrevu/internal/domain/user"
	"litrevu/internal/shared/logger"
)

type mockFollowRepository struct {
	ListFollowedIDsFunc func(ctx context.Context, followerID uint) ([]uint, error)
}

func (m *mockFollowRepository) Save(ctx context.Context, edge *user.FollowEdge) error { return nil }
func (m *mockFollowRepository) Exists(ctx context.Context, followerID, followedID uint) (bool, error) {
	return false, nil
}
func (m *mockFollowRepository) Delete(ctx context.Context, followerID, followedID uint) (bool, error) {
	return false, nil
}

func (m *mockFollowRepository) ListFollowedIDs(ctx context.Context, followerID uint) ([]uint, error) {
	if m.ListFollowedIDsFunc != nil {
		return m.ListFollowedIDsFunc(ctx, followerID)
	}
	return nil, nil
}

func (m *mockFollowRepository) ListFollowings(ctx context.Context, followerID uint) ([]*user.User, error) {
	return nil, nil
}
func (m *mockFollowRepository) ListFollowers(ctx context.Context, followedID uint) ([]*user.User, error) {
	return nil, nil
}
func (m *mockFollowRepository) DeleteAllForUser(ctx context.Context, userID uint) error { return nil }

type mockTicketRepository struct {
	FindByIDFunc        func(ctx context.Context, id uint) (*ticket.Ticket, error)
	ListByAuthorIDsFunc func(ctx context.Context, authorIDs []uint) ([]*ticket.Ticket, error)
	HasReviewFunc       func(ctx context.Context, ticketID uint) (bool, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error   { return nil }
func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error { return nil }

func (m *mockTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
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
	if m.HasReviewFunc != nil {
		return m.HasReviewFunc(ctx, ticketID)
	}
	return false, nil
}

func (m *mockTicketRepository) DeleteByCreatorID(ctx context.Context, creatorID uint) error {
	return nil
}

type mockReviewRepository struct {
	ListByAuthorIDsFunc func(ctx context.Context, authorIDs []uint) ([]*review.Review, error)
}

func (m *mockReviewRepository) Save(ctx context.Context, r *review.Review) error   { return nil }
func (m *mockReviewRepository) Update(ctx context.Context, r *review.Review) error { return nil }
func (m *mockReviewRepository) FindByID(ctx context.Context, id uint) (*review.Review, error) {
	return nil, nil
}
func (m *mockReviewRepository) Delete(ctx context.Context, id uint) error { return nil }
func (m *mockReviewRepository) ExistsForTicket(ctx context.Context, ticketID uint) (bool, error) {
	return false, nil
}
func (m *mockReviewRepository) FindByTicketID(ctx context.Context, ticketID uint) (*review.Review, error) {
	return nil, nil
}

func (m *mockReviewRepository) ListByAuthorIDs(ctx context.Context, authorIDs []uint) ([]*review.Review, error) {
	if m.ListByAuthorIDsFunc != nil {
		return m.ListByAuthorIDsFunc(ctx, authorIDs)
	}
	return nil, nil
}

func (m *mockReviewRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error { return nil }
func (m *mockReviewRepository) DeleteByAuthorID(ctx context.Context, authorID uint) error { return nil }

type mockUserRepository struct {
	FindByIDFunc func(ctx context.Context, id uint) (*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	return nil, nil
}
func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return false, nil
}
func (m *mockUserRepository) Delete(ctx context.Context, id uint) error { return nil }

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)           {}
func (m *mockLogger) Info(msg string, args ...any)            {}
func (m *mockLogger) Warn(msg string, args ...any)            {}
func (m *mockLogger) Error(msg string, args ...any)           {}
func (m *mockLogger) With(args ...any) logger.Interface       { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...any) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...any) {}
