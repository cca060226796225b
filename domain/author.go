package domain

// User represents an authenticated identity.
// It is issued by the authentication boundary and never mutated here.
type User struct {
	ID   int64  `validate:"required"` // Unique identifier
	Name string // Display name, may be empty
}
