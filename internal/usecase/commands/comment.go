package commands

import (
	"context"

	domcomment "shareit/internal/domain/comment"
	"shareit/internal/pkg/clock"
	"shareit/internal/usecase/shared"
)

type CreateCommentResult struct {
	CommentID int64
}

type CommentCommands interface {
	Create(ctx context.Context, authorID, itemID int64, text string) (*CreateCommentResult, error)
}

type commentUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCommentUseCase(uow shared.UnitOfWork, clk clock.Clock) CommentCommands {
	return &commentUseCaseImpl{uow: uow, clock: clk}
}

func (uc *commentUseCaseImpl) Create(ctx context.Context, authorID, itemID int64, text string) (*CreateCommentResult, error) {
	var createdID int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().UserByID(ctx, authorID); err != nil {
			return orNotFound(err, ErrUserNotFound)
		}
		if _, err := tx.Items().FindByID(ctx, tx.DB(), itemID); err != nil {
			return orNotFound(err, ErrItemNotFound)
		}

		services := &domcomment.Services{
			Clock:              uc.clock,
			EligibilityChecker: eligibility{reads: tx.Reads()},
		}
		c, err := domcomment.NewComment(ctx, services, itemID, authorID, text)
		if err != nil {
			return err
		}

		id, err := tx.Comments().Create(ctx, tx.DB(), c)
		if err != nil {
			return err
		}
		c.AssignID(id)
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateCommentResult{CommentID: createdID}, nil
}

// eligibility answers the comment rule from inside the running transaction.
type eligibility struct {
	reads shared.CommandReads
}

func (e eligibility) CanComment(ctx context.Context, input domcomment.EligibilityInput) error {
	ok, err := e.reads.HasFinishedApprovedBooking(ctx, input.ItemID, input.AuthorID, input.Now)
	if err != nil {
		return err
	}
	if !ok {
		return domcomment.ErrNotEligible
	}
	return nil
}
