package usecases

import (
	"context"

	"litrevu/internal/domain/review"
	"litrevu/internal/domain/ticket"
	"litrevu/internal/domain/user"
	"litrevu/internal/shared/errors"
	"litrevu/internal/shared/logger"
)

type mockReviewRepository struct {
	SaveFunc            func(ctx context.Context, r *review.Review) error
	UpdateFunc          func(ctx context.Context, r *review.Review) error
	FindByIDFunc        func(ctx context.Context, id uint) (*review.Review, error)
	DeleteFunc          func(ctx context.Context, id uint) error
	ExistsForTicketFunc func(ctx context.Context, ticketID uint) (bool, error)
	FindByTicketIDFunc  func(ctx context.Context, ticketID uint) (*review.Review, error)
}

func (m *mockReviewRepository) Save(ctx context.Context, r *review.Review) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, r)
	}
	return nil
}

func (m *mockReviewRepository) Update(ctx context.Context, r *review.Review) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	return nil
}

func (m *mockReviewRepository) FindByID(ctx context.Context, id uint) (*review.Review, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockReviewRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockReviewRepository) ExistsForTicket(ctx context.Context, ticketID uint) (bool, error) {
	if m.ExistsForTicketFunc != nil {
		return m.ExistsForTicketFunc(ctx, ticketID)
	}
	return false, nil
}

func (m *mockReviewRepository) FindByTicketID(ctx context.Context, ticketID uint) (*review.Review, error) {
	if m.FindByTicketIDFunc != nil {
		return m.FindByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockReviewRepository) ListByAuthorIDs(ctx context.Context, authorIDs []uint) ([]*review.Review, error) {
	return nil, nil
}

func (m *mockReviewRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	return nil
}

func (m *mockReviewRepository) DeleteByAuthorID(ctx context.Context, authorID uint) error {
	return nil
}

type mockCommentRepository struct {
	SaveFunc             func(ctx context.Context, c *review.Comment) error
	ListByReviewIDFunc   func(ctx context.Context, reviewID uint) ([]*review.Comment, error)
	DeleteByReviewIDFunc func(ctx context.Context, reviewID uint) error
}

func (m *mockCommentRepository) Save(ctx context.Context, c *review.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCommentRepository) ListByReviewID(ctx context.Context, reviewID uint) ([]*review.Comment, error) {
	if m.ListByReviewIDFunc != nil {
		return m.ListByReviewIDFunc(ctx, reviewID)
	}
	return nil, nil
}

func (m *mockCommentRepository) DeleteByReviewID(ctx context.Context, reviewID uint) error {
	if m.DeleteByReviewIDFunc != nil {
		return m.DeleteByReviewIDFunc(ctx, reviewID)
	}
	return nil
}

func (m *mockCommentRepository) DeleteByAuthorID(ctx context.Context, authorID uint) error {
	return nil
}

type mockTicketRepository struct {
	SaveFunc     func(ctx context.Context, t *ticket.Ticket) error
	FindByIDFunc func(ctx context.Context, id uint) (*ticket.Ticket, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error { return nil }

func (m *mockTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, id uint) error { return nil }
func (m *mockTicketRepository) ListByAuthorIDs(ctx context.Context, authorIDs []uint) ([]*ticket.Ticket, error) {
	return nil, nil
}
func (m *mockTicketRepository) HasReview(ctx context.Context, ticketID uint) (bool, error) {
	return false, nil
}
func (m *mockTicketRepository) DeleteByCreatorID(ctx context.Context, creatorID uint) error {
	return nil
}

type mockUserRepository struct {
	FindByIDFunc func(ctx context.Context, id uint) (*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	return nil, errors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return false, nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error { return nil }

type mockBodyRenderer struct {
	ToHTMLSanitizedFunc func(markdown string) (string, error)
}

func (m *mockBodyRenderer) ToHTMLSanitized(markdown string) (string, error) {
	if m.ToHTMLSanitizedFunc != nil {
		return m.ToHTMLSanitizedFunc(markdown)
	}
	return "<p>" + markdown + "</p>", nil
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

func (m *mockLogger) Debug(msg string, args ...any)           {}
func (m *mockLogger) Info(msg string, args ...any)            {}
func (m *mockLogger) Warn(msg string, args ...any)            {}
func (m *mockLogger) Error(msg string, args ...any)           {}
func (m *mockLogger) With(args ...any) logger.Interface       { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...any) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...any) {}
