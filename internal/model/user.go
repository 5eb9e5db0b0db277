package model

// User is the identity record returned by the backend on register and on
// lookup by email. The backend never includes the password field in responses.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
