package request

import (
	"shareit/internal/domain/booking"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"
)

type CreateBookingRequest struct {
	ItemID int64     `json:"itemId" binding:"required,gt=0"`
	Start  *DateTime `json:"start"`
	End    *DateTime `json:"end"`
}

// ToCommand leaves missing dates zero so the domain reports them.
func (r *CreateBookingRequest) ToCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		ItemID: r.ItemID,
		Start:  r.Start.Value(),
		End:    r.End.Value(),
	}
}

type DecideBookingQuery struct {
	Approved *bool `form:"approved" binding:"required"`
}

type ListBookingsQuery struct {
	State string `form:"state,default=ALL" binding:"booking_state"`
	PageQuery
}

func (q *ListBookingsQuery) ToState() booking.State {
	return booking.State(q.State)
}

type PageQuery struct {
	From *int `form:"from" binding:"omitempty,min=0"`
	Size *int `form:"size" binding:"omitempty,min=1"`
}

func (q *PageQuery) ToPage() (queries.Page, error) {
	return queries.NewPage(q.From, q.Size)
}
