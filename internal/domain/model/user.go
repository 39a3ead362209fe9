package model

// User represents an account managed by the service.
// ID is assigned by the store on first save and never changes afterwards.
type User struct {
	ID    int64
	Name  string
	Email string
}

// IsNew reports whether the user has not been persisted yet.
func (u User) IsNew() bool {
	return u.ID == 0
}
