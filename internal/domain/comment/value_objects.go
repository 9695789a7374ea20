package comment

import (
	"strings"

	"shareit/internal/pkg/errs"
)

const MaxTextLength = 2000

var (
	ErrEmptyText   = errs.Validation("comment text cannot be empty")
	ErrTextTooLong = errs.Validation("comment text exceeds maximum length")
)

type Text struct {
	value string
}

func NewText(s string) (Text, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Text{}, ErrEmptyText
	}
	if len(t) > MaxTextLength {
		return Text{}, ErrTextTooLong
	}
	return Text{value: t}, nil
}

func (t Text) String() string { return t.value }
