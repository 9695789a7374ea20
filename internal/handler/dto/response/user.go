package response

import (
	"shareit/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	res := &UserResponse{}
	_ = copier.Copy(res, v)
	return res
}

func FromUserViews(views []*queries.UserView) []*UserResponse {
	res := make([]*UserResponse, len(views))
	for i, v := range views {
		res[i] = FromUserView(v)
	}
	return res
}
