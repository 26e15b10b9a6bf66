// Package feed merges tickets and reviews into a single reverse-chronological
// sequence of kind-tagged posts.
package feed

import (
	"sort"
	"time"

	"litrevu/internal/domain/review"
	"litrevu/internal/domain/ticket"
)

// Kind labels a post in the merged feed.
type Kind string

const (
	KindTicket Kind = "TICKET"
	KindReview Kind = "REVIEW"
)

// Post wraps either a ticket or a review; exactly one side is set.
type Post struct {
	kind   Kind
	ticket *ticket.Ticket
	review *review.Review
}

func NewTicketPost(t *ticket.Ticket) Post {
	return Post{kind: KindTicket, ticket: t}
}

func NewReviewPost(r *review.Review) Post {
	return Post{kind: KindReview, review: r}
}

func (p Post) Kind() Kind {
	return p.kind
}

func (p Post) ID() uint {
	if p.kind == KindReview {
		return p.review.ID()
	}
	return p.ticket.ID()
}

func (p Post) CreatedAt() time.Time {
	if p.kind == KindReview {
		return p.review.CreatedAt()
	}
	return p.ticket.CreatedAt()
}

// Ticket returns the wrapped ticket, or nil for review posts.
func (p Post) Ticket() *ticket.Ticket {
	return p.ticket
}

// Review returns the wrapped review, or nil for ticket posts.
func (p Post) Review() *review.Review {
	return p.review
}

// Merge concatenates tickets and reviews into one sequence sorted by creation
// time descending. Ties order by entity ID descending, and reviews ahead of
// tickets when both still match, so the order is total and reproducible.
func Merge(tickets []*ticket.Ticket, reviews []*review.Review) []Post {
	posts := make([]Post, 0, len(tickets)+len(reviews))
	for _, t := range tickets {
		posts = append(posts, NewTicketPost(t))
	}
	for _, r := range reviews {
		posts = append(posts, NewReviewPost(r))
	}

	sort.Slice(posts, func(i, j int) bool {
		ti, tj := posts[i].CreatedAt(), posts[j].CreatedAt()
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		if posts[i].ID() != posts[j].ID() {
			return posts[i].ID() > posts[j].ID()
		}
		return posts[i].Kind() == KindReview && posts[j].Kind() == KindTicket
	})

	return posts
}
