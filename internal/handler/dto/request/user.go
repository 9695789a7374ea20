package request

import "shareit/internal/usecase/commands"

type CreateUserRequest struct {
	Name  string `json:"name" binding:"required,not_blank"`
	Email string `json:"email" binding:"required"`
}

func (r *CreateUserRequest) ToCommand() commands.CreateUserRequest {
	return commands.CreateUserRequest{Name: r.Name, Email: r.Email}
}

type UpdateUserRequest struct {
	Name  *string `json:"name" binding:"omitempty,not_blank"`
	Email *string `json:"email" binding:"omitempty,not_blank"`
}

func (r *UpdateUserRequest) ToCommand() commands.UpdateUserRequest {
	return commands.UpdateUserRequest{Name: r.Name, Email: r.Email}
}
