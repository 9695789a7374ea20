package shared

type UserSnapshot struct {
	ID    int64
	Name  string
	Email string
}
