package comment

import (
	"context"
	"time"

	"shareit/internal/pkg/errs"
)

var ErrNotEligible = errs.Validation("only a user who finished an approved booking of the item can comment")

type Comment struct {
	id       int64
	itemID   int64
	authorID int64
	text     Text
	created  time.Time
}

func NewComment(ctx context.Context, services *Services, itemID, authorID int64, body string) (*Comment, error) {
	text, err := NewText(body)
	if err != nil {
		return nil, err
	}

	now := services.Clock.Now()
	if err := services.EligibilityChecker.CanComment(ctx, EligibilityInput{
		ItemID:   itemID,
		AuthorID: authorID,
		Now:      now,
	}); err != nil {
		return nil, err
	}

	return &Comment{
		itemID:   itemID,
		authorID: authorID,
		text:     text,
		created:  now,
	}, nil
}

func (c *Comment) ID() int64          { return c.id }
func (c *Comment) ItemID() int64      { return c.itemID }
func (c *Comment) AuthorID() int64    { return c.authorID }
func (c *Comment) Text() Text         { return c.text }
func (c *Comment) Created() time.Time { return c.created }

func (c *Comment) AssignID(id int64) {
	c.id = id
}
