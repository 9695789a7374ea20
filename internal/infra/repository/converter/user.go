package converter

import (
	"shareit/internal/domain/user"
	sqlc "shareit/internal/infra/sqlc/generated"
)

func UserFromRow(row sqlc.Users) (*user.User, error) {
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, err
	}
	return user.ReconstructUser(row.ID, row.Name, email), nil
}
