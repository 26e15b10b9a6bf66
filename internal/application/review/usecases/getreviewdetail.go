package usecases

import (
	"context"
	"time"

	"litrevu/internal/domain/review"
	"litrevu/internal/domain/ticket"
	"litrevu/internal/domain/user"
	"litrevu/internal/shared/logger"
)

type GetReviewDetailQuery struct {
	ReviewID uint
	ViewerID uint
}

type CommentDTO struct {
	ID             uint      `json:"id"`
	AuthorID       uint      `json:"author_id"`
	AuthorUsername string    `json:"author_username"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
}

type ReviewDetailDTO struct {
	ID             uint         `json:"id"`
	TicketID       uint         `json:"ticket_id"`
	TicketTitle    string       `json:"ticket_title"`
	Rating         int          `json:"rating"`
	Stars          string       `json:"stars"`
	Headline       string       `json:"headline"`
	Body           string       `json:"body"`
	BodyHTML       string       `json:"body_html"`
	AuthorID       uint         `json:"author_id"`
	AuthorUsername string       `json:"author_username"`
	CreatedAt      time.Time    `json:"created_at"`
	IsOwner        bool         `json:"is_owner"`
	Comments       []CommentDTO `json:"comments"`
}

type GetReviewDetailUseCase struct {
	reviewRepo  review.Repository
	ticketRepo  ticket.Repository
	commentRepo review.CommentRepository
	userRepo    user.Repository
	renderer    BodyRenderer
	logger      logger.Interface
}

func NewGetReviewDetailUseCase(
	reviewRepo review.Repository,
	ticketRepo ticket.Repository,
	commentRepo review.CommentRepository,
	userRepo user.Repository,
	renderer BodyRenderer,
	logger logger.Interface,
) *GetReviewDetailUseCase {
	return &GetReviewDetailUseCase{
		reviewRepo:  reviewRepo,
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		renderer:    renderer,
		logger:      logger,
	}
}

func (uc *GetReviewDetailUseCase) Execute(ctx context.Context, query GetReviewDetailQuery) (*ReviewDetailDTO, error) {
	rv, err := uc.reviewRepo.FindByID(ctx, query.ReviewID)
	if err != nil {
		return nil, err
	}

	t, err := uc.ticketRepo.FindByID(ctx, rv.TicketID())
	if err != nil {
		return nil, err
	}

	comments, err := uc.commentRepo.ListByReviewID(ctx, rv.ID())
	if err != nil {
		uc.logger.Errorw("failed to list comments", "error", err)
		return nil, err
	}

	bodyHTML := ""
	if rv.Body() != "" {
		bodyHTML, err = uc.renderer.ToHTMLSanitized(rv.Body())
		if err != nil {
			uc.logger.Warnw("failed to render review body", "error", err)
			bodyHTML = ""
		}
	}

	usernames := map[uint]string{}
	resolve := func(id uint) string {
		if name, ok := usernames[id]; ok {
			return name
		}
		u, err := uc.userRepo.FindByID(ctx, id)
		if err != nil {
			usernames[id] = ""
			return ""
		}
		usernames[id] = u.Username().String()
		return usernames[id]
	}

	commentDTOs := make([]CommentDTO, 0, len(comments))
	for _, c := range comments {
		commentDTOs = append(commentDTOs, CommentDTO{
			ID:             c.ID(),
			AuthorID:       c.AuthorID(),
			AuthorUsername: resolve(c.AuthorID()),
			Content:        c.Content(),
			CreatedAt:      c.CreatedAt(),
		})
	}

	return &ReviewDetailDTO{
		ID:             rv.ID(),
		TicketID:       t.ID(),
		TicketTitle:    t.Title(),
		Rating:         rv.Rating(),
		Stars:          rv.StarsRating(),
		Headline:       rv.Headline(),
		Body:           rv.Body(),
		BodyHTML:       bodyHTML,
		AuthorID:       rv.AuthorID(),
		AuthorUsername: resolve(rv.AuthorID()),
		CreatedAt:      rv.CreatedAt(),
		IsOwner:        rv.IsOwnedBy(query.ViewerID),
		Comments:       commentDTOs,
	}, nil
}
