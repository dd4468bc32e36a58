package ticket

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/ticket/usecases"
)

type CreateTicketRequest struct {
	FirstName       string `json:"firstName" binding:"required,max=100"`
	LastName        string `json:"lastName" binding:"required,max=100"`
	Department      string `json:"department" binding:"required,max=100"`
	DestinationArea string `json:"destinationArea" binding:"required,max=100"`
	Subject         string `json:"subject" binding:"required,max=200"`
	Description     string `json:"description" binding:"required,max=5000"`
	Contact         string `json:"contact,omitempty" binding:"max=200"`
}

func (r *CreateTicketRequest) ToCommand() usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Department:      r.Department,
		DestinationArea: r.DestinationArea,
		Subject:         r.Subject,
		Description:     r.Description,
		Contact:         r.Contact,
	}
}

// UpdateTicketRequest is a partial update; absent fields keep their value.
// Unknown body fields fall away in binding.
type UpdateTicketRequest struct {
	FirstName       *string `json:"firstName"`
	LastName        *string `json:"lastName"`
	Department      *string `json:"department"`
	DestinationArea *string `json:"destinationArea"`
	Subject         *string `json:"subject"`
	Description     *string `json:"description"`
	Contact         *string `json:"contact"`
	Status          *string `json:"status"`
	Priority        *string `json:"priority"`
}

func (r *UpdateTicketRequest) ToCommand(ticketID uint) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketID:        ticketID,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Department:      r.Department,
		DestinationArea: r.DestinationArea,
		Subject:         r.Subject,
		Description:     r.Description,
		Contact:         r.Contact,
		Status:          r.Status,
		Priority:        r.Priority,
	}
}

type AddAnnotationRequest struct {
	Text   string `json:"text" binding:"required,max=10000"`
	Author string `json:"author" binding:"max=100"`
}

func parseListTicketsQuery(c *gin.Context) usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Search:   c.Query("search"),
	}
}
