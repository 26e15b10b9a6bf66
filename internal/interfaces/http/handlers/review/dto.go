package review

import "litrevu/internal/application/review/usecases"

type ReviewFormRequest struct {
	Rating   *int   `form:"rating" binding:"required"`
	Headline string `form:"headline" binding:"required"`
	Body     string `form:"body"`
}

func (r *ReviewFormRequest) ToCreateCommand(ticketID, authorID uint) usecases.CreateReviewCommand {
	return usecases.CreateReviewCommand{
		TicketID: ticketID,
		Rating:   *r.Rating,
		Headline: r.Headline,
		Body:     r.Body,
		AuthorID: authorID,
	}
}

// CombinedFormRequest carries the ticket and review halves of the
// "review something new" form.
type CombinedFormRequest struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description"`
	Rating      *int   `form:"rating" binding:"required"`
	Headline    string `form:"headline" binding:"required"`
	Body        string `form:"body"`
}

func (r *CombinedFormRequest) ToCommand(authorID uint, imagePath string) usecases.CreateTicketWithReviewCommand {
	return usecases.CreateTicketWithReviewCommand{
		Title:       r.Title,
		Description: r.Description,
		ImagePath:   imagePath,
		Rating:      *r.Rating,
		Headline:    r.Headline,
		Body:        r.Body,
		AuthorID:    authorID,
	}
}

// EditActionRequest is the tagged update-or-delete form posted to the shared
// update endpoint.
type EditActionRequest struct {
	Action   string `form:"action" binding:"required,oneof=update delete"`
	Rating   *int   `form:"rating"`
	Headline string `form:"headline"`
	Body     string `form:"body"`
}

type CommentFormRequest struct {
	Content string `form:"content"`
}
