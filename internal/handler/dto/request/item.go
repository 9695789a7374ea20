package request

import "shareit/internal/usecase/commands"

type CreateItemRequest struct {
	Name        string `json:"name" binding:"required,not_blank"`
	Description string `json:"description" binding:"required,not_blank"`
	Available   *bool  `json:"available" binding:"required"`
	RequestID   *int64 `json:"requestId" binding:"omitempty,gt=0"`
}

func (r *CreateItemRequest) ToCommand() commands.CreateItemRequest {
	return commands.CreateItemRequest{
		Name:        r.Name,
		Description: r.Description,
		Available:   *r.Available,
		RequestID:   r.RequestID,
	}
}

type UpdateItemRequest struct {
	Name        *string `json:"name" binding:"omitempty,not_blank"`
	Description *string `json:"description" binding:"omitempty,not_blank"`
	Available   *bool   `json:"available"`
}

func (r *UpdateItemRequest) ToCommand() commands.UpdateItemRequest {
	return commands.UpdateItemRequest{
		Name:        r.Name,
		Description: r.Description,
		Available:   r.Available,
	}
}

type SearchItemsQuery struct {
	Text string `form:"text"`
	PageQuery
}

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required,not_blank,max=2000"`
}
