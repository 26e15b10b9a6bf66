package usecases

import (
	"context"

	"litrevu/internal/domain/review"
	"litrevu/internal/domain/ticket"
	"litrevu/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc              func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc            func(ctx context.Context, t *ticket.Ticket) error
	FindByIDFunc          func(ctx context.Context, id uint) (*ticket.Ticket, error)
	DeleteFunc            func(ctx context.Context, id uint) error
	ListByAuthorIDsFunc   func(ctx context.Context, authorIDs []uint) ([]*ticket.Ticket, error)
	HasReviewFunc         func(ctx context.Context, ticketID uint) (bool, error)
	DeleteByCreatorIDFunc func(ctx context.Context, creatorID uint) error
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

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
	if m.DeleteByCreatorIDFunc != nil {
		return m.DeleteByCreatorIDFunc(ctx, creatorID)
	}
	return nil
}

type mockReviewRepository struct {
	FindByTicketIDFunc   func(ctx context.Context, ticketID uint) (*review.Review, error)
	DeleteByTicketIDFunc func(ctx context.Context, ticketID uint) error
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
	if m.FindByTicketIDFunc != nil {
		return m.FindByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockReviewRepository) ListByAuthorIDs(ctx context.Context, authorIDs []uint) ([]*review.Review, error) {
	return nil, nil
}

func (m *mockReviewRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	if m.DeleteByTicketIDFunc != nil {
		return m.DeleteByTicketIDFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockReviewRepository) DeleteByAuthorID(ctx context.Context, authorID uint) error {
	return nil
}

type mockCommentRepository struct {
	DeleteByReviewIDFunc func(ctx context.Context, reviewID uint) error
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
	return nil
}

type mockImageRemover struct {
	RemoveFunc func(name string) error
}

func (m *mockImageRemover) Remove(name string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(name)
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

func (m *mockLogger) Debug(msg string, args ...any)           {}
func (m *mockLogger) Info(msg string, args ...any)            {}
func (m *mockLogger) Warn(msg string, args ...any)            {}
func (m *mockLogger) Error(msg string, args ...any)           {}
func (m *mockLogger) With(args ...any) logger.Interface       { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...any) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...any) {}
