package queries

import (
	"time"
)

type UserRef struct {
	ID   int64
	Name string
}

type ItemRef struct {
	ID   int64
	Name string
}

// BookingView is the booking projection returned by every booking operation.
type BookingView struct {
	ID          int64
	Start       time.Time
	End         time.Time
	Status      string
	Item        ItemRef
	Booker      UserRef
	ItemOwnerID int64
}

type UserView struct {
	ID    int64
	Name  string
	Email string
}

type BookingShortView struct {
	ID       int64
	BookerID int64
	Start    time.Time
	End      time.Time
}

type CommentView struct {
	ID         int64
	ItemID     int64
	Text       string
	AuthorName string
	Created    time.Time
}

type ItemView struct {
	ID          int64
	OwnerID     int64
	Name        string
	Description string
	Available   bool
	RequestID   *int64
	LastBooking *BookingShortView
	NextBooking *BookingShortView
	Comments    []*CommentView
}
