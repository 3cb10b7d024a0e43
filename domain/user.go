package domain

// User represents an account that can own tasks.
// Password is stored and compared verbatim; there is no hashing.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Matches performs the exact, case-sensitive credential comparison used by login.
func (u *User) Matches(username, password string) bool {
	return u != nil && u.Username == username && u.Password == password
}
