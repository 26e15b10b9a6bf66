package usecases

import (
	"context"
	"time"

	"litrevu/internal/domain/feed"
	"litrevu/internal/domain/ticket"
	"litrevu/internal/domain/user"
)

type TicketPostDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImagePath   string `json:"image_path,omitempty"`
	// HasReview drives the "write a review" affordance on feed cards.
	HasReview bool `json:"has_review"`
}

type ReviewPostDTO struct {
	TicketID    uint   `json:"ticket_id"`
	TicketTitle string `json:"ticket_title"`
	Rating      int    `json:"rating"`
	Stars       string `json:"stars"`
	Headline    string `json:"headline"`
	Body        string `json:"body"`
}

// FeedPostDTO is one card in the merged reverse-chronological feed. Exactly
// one of Ticket and Review is set, matching Kind.
type FeedPostDTO struct {
	Kind           string         `json:"kind"`
	ID             uint           `json:"id"`
	AuthorID       uint           `json:"author_id"`
	AuthorUsername string         `json:"author_username"`
	CreatedAt      time.Time      `json:"created_at"`
	IsOwn          bool           `json:"is_own"`
	Ticket         *TicketPostDTO `json:"ticket,omitempty"`
	Review         *ReviewPostDTO `json:"review,omitempty"`
}

type FeedResult struct {
	Posts []FeedPostDTO `json:"posts"`
}

// feedAssembler turns merged domain posts into DTOs, resolving author names
// and ticket context with memoized lookups.
type feedAssembler struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository

	usernames    map[uint]string
	ticketTitles map[uint]string
}

func newFeedAssembler(ticketRepo ticket.Repository, userRepo user.Repository) *feedAssembler {
	return &feedAssembler{
		ticketRepo:   ticketRepo,
		userRepo:     userRepo,
		usernames:    map[uint]string{},
		ticketTitles: map[uint]string{},
	}
}

func (a *feedAssembler) username(ctx context.Context, id uint) string {
	if name, ok := a.usernames[id]; ok {
		return name
	}
	name := ""
	if u, err := a.userRepo.FindByID(ctx, id); err == nil {
		name = u.Username().String()
	}
	a.usernames[id] = name
	return name
}

func (a *feedAssembler) ticketTitle(ctx context.Context, id uint) string {
	if title, ok := a.ticketTitles[id]; ok {
		return title
	}
	title := ""
	if t, err := a.ticketRepo.FindByID(ctx, id); err == nil {
		title = t.Title()
	}
	a.ticketTitles[id] = title
	return title
}

func (a *feedAssembler) assemble(ctx context.Context, posts []feed.Post, viewerID uint) ([]FeedPostDTO, error) {
	dtos := make([]FeedPostDTO, 0, len(posts))
	for _, p := range posts {
		switch p.Kind() {
		case feed.KindTicket:
			t := p.Ticket()
			hasReview, err := a.ticketRepo.HasReview(ctx, t.ID())
			if err != nil {
				return nil, err
			}
			a.ticketTitles[t.ID()] = t.Title()
			dtos = append(dtos, FeedPostDTO{
				Kind:           string(feed.KindTicket),
				ID:             t.ID(),
				AuthorID:       t.CreatorID(),
				AuthorUsername: a.username(ctx, t.CreatorID()),
				CreatedAt:      t.CreatedAt(),
				IsOwn:          t.CreatorID() == viewerID,
				Ticket: &TicketPostDTO{
					Title:       t.Title(),
					Description: t.Description(),
					ImagePath:   t.ImagePath(),
					HasReview:   hasReview,
				},
			})
		case feed.KindReview:
			rv := p.Review()
			dtos = append(dtos, FeedPostDTO{
				Kind:           string(feed.KindReview),
				ID:             rv.ID(),
				AuthorID:       rv.AuthorID(),
				AuthorUsername: a.username(ctx, rv.AuthorID()),
				CreatedAt:      rv.CreatedAt(),
				IsOwn:          rv.AuthorID() == viewerID,
				Review: &ReviewPostDTO{
					TicketID:    rv.TicketID(),
					TicketTitle: a.ticketTitle(ctx, rv.TicketID()),
					Rating:      rv.Rating(),
					Stars:       rv.StarsRating(),
					Headline:    rv.Headline(),
					Body:        rv.Body(),
				},
			})
		}
	}
	return dtos, nil
}
