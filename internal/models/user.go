package models

// User is an account that can own players. IDs are sequential integers
// assigned by the store at creation time, string-encoded on the wire.
//
// The password is stored as given; this service does not hash credentials.
// Handlers are responsible for never echoing it back (see WithoutPassword).
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password,omitempty"`
}

// WithoutPassword returns a copy of the user safe to serialize in responses.
func (u User) WithoutPassword() User {
	u.Password = ""
	return u
}
