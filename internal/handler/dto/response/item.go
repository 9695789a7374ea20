package response

import (
	"time"

	"shareit/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type BookingShortResponse struct {
	ID       int64     `json:"id"`
	BookerID int64     `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

type CommentResponse struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

type ItemResponse struct {
	ID          int64                 `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Available   bool                  `json:"available"`
	RequestID   *int64                `json:"requestId,omitempty"`
	LastBooking *BookingShortResponse `json:"lastBooking"`
	NextBooking *BookingShortResponse `json:"nextBooking"`
	Comments    []*CommentResponse    `json:"comments"`
}

func FromItemView(v *queries.ItemView) *ItemResponse {
	res := &ItemResponse{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Available:   v.Available,
		RequestID:   v.RequestID,
		Comments:    FromCommentViews(v.Comments),
	}
	if v.LastBooking != nil {
		res.LastBooking = &BookingShortResponse{}
		_ = copier.Copy(res.LastBooking, v.LastBooking)
	}
	if v.NextBooking != nil {
		res.NextBooking = &BookingShortResponse{}
		_ = copier.Copy(res.NextBooking, v.NextBooking)
	}
	return res
}

func FromItemViews(views []*queries.ItemView) []*ItemResponse {
	res := make([]*ItemResponse, len(views))
	for i, v := range views {
		res[i] = FromItemView(v)
	}
	return res
}

func FromCommentView(v *queries.CommentView) *CommentResponse {
	res := &CommentResponse{}
	_ = copier.Copy(res, v)
	return res
}

func FromCommentViews(views []*queries.CommentView) []*CommentResponse {
	res := make([]*CommentResponse, len(views))
	for i, v := range views {
		res[i] = FromCommentView(v)
	}
	return res
}
