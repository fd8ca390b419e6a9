package domain

// Identity is the authenticated actor derived from a verified bearer token.
// It is passed explicitly to handlers and services; there is no global
// "current user" state.
type Identity struct {
	UserID int64
	Name   string
	Email  string
}
