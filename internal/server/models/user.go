package models

// User is a registered account. Password holds the bcrypt digest, never
// the plaintext.
type User struct {
	ID       int64
	UserName string
	Email    string
	Password string
}
