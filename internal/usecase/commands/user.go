package commands

import (
	"context"

	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/usecase/shared"

	"github.com/jinzhu/copier"
)

type CreateUserRequest struct {
	Name  string
	Email string
}

// UpdateUserRequest is a partial update; nil fields keep their stored value.
type UpdateUserRequest struct {
	Name  *string
	Email *string
}

type CreateUserResult struct {
	UserID int64
}

type UserCommands interface {
	Create(ctx context.Context, req CreateUserRequest) (*CreateUserResult, error)
	Update(ctx context.Context, userID int64, req UpdateUserRequest) error
	Delete(ctx context.Context, userID int64) error
}

type userUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewUserUseCase(uow shared.UnitOfWork) UserCommands {
	return &userUseCaseImpl{uow: uow}
}

type userDraft struct {
	Name  string
	Email string
}

func (uc *userUseCaseImpl) Create(ctx context.Context, req CreateUserRequest) (*CreateUserResult, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, err
	}
	u, err := user.NewUser(req.Name, email)
	if err != nil {
		return nil, err
	}

	var createdID int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Users().Create(ctx, tx.DB(), u)
		if derr != nil {
			return emailConflict(derr)
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateUserResult{UserID: createdID}, nil
}

func (uc *userUseCaseImpl) Update(ctx context.Context, userID int64, req UpdateUserRequest) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByID(ctx, tx.DB(), userID)
		if err != nil {
			return orNotFound(err, ErrUserNotFound)
		}

		draft := userDraft{Name: u.Name(), Email: u.Email().Value()}
		if err = copier.CopyWithOption(&draft, &req, copier.Option{IgnoreEmpty: true}); err != nil {
			return err
		}

		if err = u.Rename(draft.Name); err != nil {
			return err
		}
		email, err := user.NewEmail(draft.Email)
		if err != nil {
			return err
		}
		u.ChangeEmail(email)

		if err = tx.Users().Update(ctx, tx.DB(), u); err != nil {
			return orNotFound(emailConflict(err), ErrUserNotFound)
		}
		return nil
	})
}

func (uc *userUseCaseImpl) Delete(ctx context.Context, userID int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().Delete(ctx, tx.DB(), userID); err != nil {
			return orNotFound(err, ErrUserNotFound)
		}
		return nil
	})
}

func emailConflict(err error) error {
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return user.ErrEmailDuplicate
	}
	return err
}
