package ticket

import "litrevu/internal/application/ticket/usecases"

type TicketFormRequest struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description"`
}

func (r *TicketFormRequest) ToCreateCommand(creatorID uint, imagePath string) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Title:       r.Title,
		Description: r.Description,
		ImagePath:   imagePath,
		CreatorID:   creatorID,
	}
}

// EditActionRequest is the tagged update-or-delete form posted to the shared
// update endpoint.
type EditActionRequest struct {
	Action      string `form:"action" binding:"required,oneof=update delete"`
	Title       string `form:"title"`
	Description string `form:"description"`
}
