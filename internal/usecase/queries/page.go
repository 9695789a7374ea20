package queries

import "shareit/internal/pkg/errs"

// MaxPageSize bounds one page; larger sizes are rejected, not truncated.
const MaxPageSize = 200

var ErrInvalidPage = errs.Validation("from must be >= 0 and size must be between 1 and 200")

// Page is an offset window applied after ordering. Size 0 means no limit.
type Page struct {
	From int
	Size int
}

func NewPage(from, size *int) (Page, error) {
	var p Page
	if from != nil {
		if *from < 0 {
			return Page{}, ErrInvalidPage
		}
		p.From = *from
	}
	if size != nil {
		if *size < 1 || *size > MaxPageSize {
			return Page{}, ErrInvalidPage
		}
		p.Size = *size
	}
	return p, nil
}

func (p Page) Limited() bool {
	return p.Size > 0
}
